package model

// Ticket represents a ticket record owned by the current viewer, as
// returned by the upstream EMS API. Tickets are fetched read-only and
// exist here purely so the classifier can answer "does the viewer hold a
// ticket for this event".
//
// Fields:
//  ID      – opaque upstream identifier (`_id`).
//  EventID – identifier of the referenced event (`eventId._id`).
type Ticket struct {
	ID      string
	EventID string
}
