package calendar

import "github.com/iliyamo/event-calendar/internal/model"

// DisplayCategory is a rendering-only classification of an event relative
// to the viewer. It selects a color swatch and a legend entry and is never
// persisted or sent upstream.
type DisplayCategory string

const (
	CategoryDefault   DisplayCategory = "default"
	CategoryApproved  DisplayCategory = "approved"
	CategoryPending   DisplayCategory = "pending"
	CategoryRejected  DisplayCategory = "rejected"
	CategoryHasTicket DisplayCategory = "has_ticket"
)

// Color returns the swatch name a category renders with. The names mirror
// the upstream web client's palette.
func (d DisplayCategory) Color() string {
	switch d {
	case CategoryApproved, CategoryHasTicket:
		return "green"
	case CategoryPending:
		return "yellow"
	case CategoryRejected:
		return "red"
	default:
		return "primary"
	}
}

// Classify assigns exactly one display category to an event for the given
// viewer. It is pure and total: every combination of inputs, including a
// nil viewer, unknown roles and unknown statuses, resolves to a category.
//
// Rules:
//   - anonymous viewers always see the default category.
//   - organizers see their own events colored by approval status; events
//     they do not organize stay default.
//   - regular users see events they hold a ticket for as has_ticket.
//   - venue owners currently see everything as default. The legend still
//     advertises a blanket "events at your venues" entry; the upstream
//     client has the same mismatch and it is carried over unchanged.
func Classify(viewer *model.Viewer, ev model.Event, tickets []model.Ticket) DisplayCategory {
	if viewer == nil {
		return CategoryDefault
	}

	switch viewer.Role {
	case model.RoleOrganizer:
		if ev.OrganizerID == "" || ev.OrganizerID != viewer.ID {
			return CategoryDefault
		}
		switch ev.Status {
		case model.EventStatusApproved:
			return CategoryApproved
		case model.EventStatusPending:
			return CategoryPending
		case model.EventStatusRejected:
			return CategoryRejected
		default:
			return CategoryDefault
		}

	case model.RoleUser:
		for _, t := range tickets {
			if t.EventID != "" && t.EventID == ev.ID {
				return CategoryHasTicket
			}
		}
		return CategoryDefault

	default:
		// venue_owner and any unrecognized role.
		return CategoryDefault
	}
}

// LegendEntry pairs a display category with the label shown next to its
// color swatch.
type LegendEntry struct {
	Category DisplayCategory `json:"category"`
	Color    string          `json:"color"`
	Label    string          `json:"label"`
}

// LegendFor returns the legend entries for the viewer's role. Anonymous
// viewers get no legend, matching the upstream client.
func LegendFor(viewer *model.Viewer) []LegendEntry {
	if viewer == nil {
		return nil
	}
	switch viewer.Role {
	case model.RoleOrganizer:
		return []LegendEntry{
			{Category: CategoryApproved, Color: CategoryApproved.Color(), Label: "Approved Events"},
			{Category: CategoryPending, Color: CategoryPending.Color(), Label: "Pending Events"},
			{Category: CategoryRejected, Color: CategoryRejected.Color(), Label: "Rejected Events"},
			{Category: CategoryDefault, Color: CategoryDefault.Color(), Label: "Other Events"},
		}
	case model.RoleUser:
		return []LegendEntry{
			{Category: CategoryHasTicket, Color: CategoryHasTicket.Color(), Label: "Events with Tickets"},
			{Category: CategoryDefault, Color: CategoryDefault.Color(), Label: "Available Events"},
		}
	case model.RoleVenueOwner:
		return []LegendEntry{
			{Category: CategoryDefault, Color: CategoryDefault.Color(), Label: "Events at Your Venues"},
		}
	default:
		return nil
	}
}
