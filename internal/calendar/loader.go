package calendar

import (
	"context"
	"sync"

	"github.com/iliyamo/event-calendar/internal/model"
)

// EventSource lists every event visible to the given credential. Satisfied
// by repository.EventRepo.
type EventSource interface {
	ListAll(ctx context.Context, cred model.Credential) ([]model.Event, error)
}

// TicketSource lists the tickets owned by a viewer. Satisfied by
// repository.TicketRepo.
type TicketSource interface {
	ListByViewer(ctx context.Context, cred model.Credential, viewerID string) ([]model.Ticket, error)
}

// Snapshot is the result of one completed load cycle: the full event list
// plus the viewer's tickets. For anonymous viewers Tickets is always an
// empty slice.
type Snapshot struct {
	Events  []model.Event
	Tickets []model.Ticket
}

// LoadError is the single failure surfaced by a load cycle. Either upstream
// request failing produces one combined LoadError; partial success is
// discarded. The Message is safe to show to the viewer verbatim.
type LoadError struct {
	Message string
	Err     error
}

func (e *LoadError) Error() string { return e.Message }

// Unwrap exposes the underlying upstream error so callers can match
// sentinels like repository.ErrUnauthorized.
func (e *LoadError) Unwrap() error { return e.Err }

// loadFailedMessage is the viewer-facing text for any failed load.
const loadFailedMessage = "Failed to load events. Please try again later."

// Loader performs the combined events+tickets fetch for one render. Both
// requests run concurrently and the result follows join semantics: the
// load succeeds only if every issued request succeeds.
type Loader struct {
	events  EventSource
	tickets TicketSource
}

// NewLoader constructs a Loader over the given sources.
func NewLoader(events EventSource, tickets TicketSource) *Loader {
	return &Loader{events: events, tickets: tickets}
}

// Load fetches the event list and, when a viewer is present, that viewer's
// tickets. Anonymous loads never issue the ticket request at all — the
// upstream endpoint would reject it — and resolve the ticket list to an
// empty slice. Both requests carry the supplied credential.
func (l *Loader) Load(ctx context.Context, cred model.Credential, viewer *model.Viewer) (Snapshot, error) {
	var (
		wg      sync.WaitGroup
		events  []model.Event
		tickets []model.Ticket
		evErr   error
		tkErr   error
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		events, evErr = l.events.ListAll(ctx, cred)
	}()

	if viewer != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tickets, tkErr = l.tickets.ListByViewer(ctx, cred, viewer.ID)
		}()
	}

	wg.Wait()

	if evErr != nil {
		return Snapshot{}, &LoadError{Message: loadFailedMessage, Err: evErr}
	}
	if tkErr != nil {
		return Snapshot{}, &LoadError{Message: loadFailedMessage, Err: tkErr}
	}

	if tickets == nil {
		tickets = []model.Ticket{}
	}
	if events == nil {
		events = []model.Event{}
	}
	return Snapshot{Events: events, Tickets: tickets}, nil
}
