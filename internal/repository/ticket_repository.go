package repository

import (
	"context"
	"encoding/json"

	"github.com/iliyamo/event-calendar/internal/model"
)

// ticketRecord mirrors the wire shape of GET /tickets/user/{id}. The
// eventId field is a populated sub-document in current responses but
// degrades to a bare identifier string when the upstream skips population,
// so decoding accepts both.
type ticketRecord struct {
	ID      string      `json:"_id"`
	EventID ticketEvent `json:"eventId"`
}

// ticketEvent decodes either {"_id": "..."} or "..." into an event id.
type ticketEvent struct {
	ID string
}

func (t *ticketEvent) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		t.ID = s
		return nil
	}
	var obj struct {
		ID string `json:"_id"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	t.ID = obj.ID
	return nil
}

// TicketRepo reads the viewer's ticket records from the upstream EMS API.
type TicketRepo struct {
	client *Client
}

// NewTicketRepo constructs a TicketRepo over the shared upstream client.
func NewTicketRepo(client *Client) *TicketRepo {
	return &TicketRepo{client: client}
}

// ListByViewer fetches the tickets owned by the given viewer. The endpoint
// requires authentication; callers must not invoke it for anonymous
// viewers (the loader enforces this).
func (r *TicketRepo) ListByViewer(ctx context.Context, cred model.Credential, viewerID string) ([]model.Ticket, error) {
	var records []ticketRecord
	if err := r.client.getJSON(ctx, "/tickets/user/"+viewerID, cred, &records); err != nil {
		return nil, err
	}

	out := make([]model.Ticket, 0, len(records))
	for _, rec := range records {
		out = append(out, model.Ticket{ID: rec.ID, EventID: rec.EventID.ID})
	}
	return out, nil
}
