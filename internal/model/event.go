package model

// Event represents an event record as returned by the upstream EMS API.
// Events are owned and mutated by the upstream service; this application
// treats them as immutable within a single fetch cycle and never writes
// them back. The EventDate field keeps the raw ISO-8601 string exactly as
// received so that day bucketing can normalize it on its own terms.
//
// Fields:
//  ID                – opaque upstream identifier (`_id`).
//  Title             – event title.
//  EventDate         – raw ISO-8601 date-time string (`eventDate`).
//  VenueName         – resolved venue name (`venue.name`), empty when the
//                      event has no venue attached.
//  OrganizerID       – identifier of the organizing account
//                      (`organizer._id`), empty when absent.
//  Status            – approval state (see EventStatus* constants).
//  ExpectedAttendees – head count the organizer expects.
type Event struct {
	ID                string
	Title             string
	EventDate         string
	VenueName         string
	OrganizerID       string
	Status            string
	ExpectedAttendees int
}

// Event approval states as used by the upstream API. Unknown values are
// tolerated and classify as the default display category.
const (
	EventStatusPending  = "pending"
	EventStatusApproved = "approved"
	EventStatusRejected = "rejected"
)
