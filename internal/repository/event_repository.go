package repository

import (
	"context"

	"github.com/iliyamo/event-calendar/internal/model"
)

// eventRecord mirrors the wire shape of GET /events. The upstream API
// returns Mongo-style documents; venue and organizer are populated
// sub-documents that may be absent entirely.
type eventRecord struct {
	ID                string `json:"_id"`
	Title             string `json:"title"`
	EventDate         string `json:"eventDate"`
	Status            string `json:"status"`
	ExpectedAttendees int    `json:"expectedAttendees"`
	Venue             *struct {
		Name string `json:"name"`
	} `json:"venue"`
	Organizer *struct {
		ID string `json:"_id"`
	} `json:"organizer"`
}

// EventRepo reads event records from the upstream EMS API.
type EventRepo struct {
	client *Client
}

// NewEventRepo constructs an EventRepo over the shared upstream client.
func NewEventRepo(client *Client) *EventRepo {
	return &EventRepo{client: client}
}

// ListAll fetches the full event list. The endpoint is public, but the
// credential is still forwarded when present so the upstream can apply
// any viewer-specific filtering it wants. Date strings are passed through
// raw; validation happens at bucketing time, per event.
func (r *EventRepo) ListAll(ctx context.Context, cred model.Credential) ([]model.Event, error) {
	var records []eventRecord
	if err := r.client.getJSON(ctx, "/events", cred, &records); err != nil {
		return nil, err
	}

	out := make([]model.Event, 0, len(records))
	for _, rec := range records {
		ev := model.Event{
			ID:                rec.ID,
			Title:             rec.Title,
			EventDate:         rec.EventDate,
			Status:            rec.Status,
			ExpectedAttendees: rec.ExpectedAttendees,
		}
		if rec.Venue != nil {
			ev.VenueName = rec.Venue.Name
		}
		if rec.Organizer != nil {
			ev.OrganizerID = rec.Organizer.ID
		}
		out = append(out, ev)
	}
	return out, nil
}
