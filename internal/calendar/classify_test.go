package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iliyamo/event-calendar/internal/model"
)

func TestClassify(t *testing.T) {
	organizer := &model.Viewer{ID: "org1", Role: model.RoleOrganizer}
	user := &model.Viewer{ID: "u1", Role: model.RoleUser}
	venueOwner := &model.Viewer{ID: "v1", Role: model.RoleVenueOwner}

	tickets := []model.Ticket{{ID: "T1", EventID: "E1"}}

	cases := []struct {
		name    string
		viewer  *model.Viewer
		event   model.Event
		tickets []model.Ticket
		want    DisplayCategory
	}{
		{"anonymous always default", nil, model.Event{ID: "E1", Status: model.EventStatusApproved}, tickets, CategoryDefault},
		{"organizer own approved", organizer, model.Event{ID: "E1", OrganizerID: "org1", Status: model.EventStatusApproved}, nil, CategoryApproved},
		{"organizer own pending", organizer, model.Event{ID: "E1", OrganizerID: "org1", Status: model.EventStatusPending}, nil, CategoryPending},
		{"organizer own rejected", organizer, model.Event{ID: "E1", OrganizerID: "org1", Status: model.EventStatusRejected}, nil, CategoryRejected},
		{"organizer own unknown status", organizer, model.Event{ID: "E1", OrganizerID: "org1", Status: "draft"}, nil, CategoryDefault},
		{"organizer foreign event", organizer, model.Event{ID: "E1", OrganizerID: "org2", Status: model.EventStatusApproved}, nil, CategoryDefault},
		{"organizer event without organizer", organizer, model.Event{ID: "E1", Status: model.EventStatusApproved}, nil, CategoryDefault},
		{"user with ticket", user, model.Event{ID: "E1"}, tickets, CategoryHasTicket},
		{"user without ticket", user, model.Event{ID: "E2"}, tickets, CategoryDefault},
		{"user with no tickets at all", user, model.Event{ID: "E1"}, nil, CategoryDefault},
		{"venue owner always default", venueOwner, model.Event{ID: "E1", Status: model.EventStatusApproved}, tickets, CategoryDefault},
		{"unknown role falls through", &model.Viewer{ID: "x", Role: "admin"}, model.Event{ID: "E1"}, tickets, CategoryDefault},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.viewer, tc.event, tc.tickets))
		})
	}
}

func TestClassify_EmptyTicketEventIDNeverMatches(t *testing.T) {
	// A ticket whose event reference failed to populate must not match an
	// event that also has an empty id.
	user := &model.Viewer{ID: "u1", Role: model.RoleUser}
	got := Classify(user, model.Event{ID: ""}, []model.Ticket{{ID: "T1", EventID: ""}})
	assert.Equal(t, CategoryDefault, got)
}

func TestDisplayCategoryColors(t *testing.T) {
	assert.Equal(t, "green", CategoryApproved.Color())
	assert.Equal(t, "green", CategoryHasTicket.Color())
	assert.Equal(t, "yellow", CategoryPending.Color())
	assert.Equal(t, "red", CategoryRejected.Color())
	assert.Equal(t, "primary", CategoryDefault.Color())
}

func TestLegendFor(t *testing.T) {
	assert.Nil(t, LegendFor(nil))

	organizer := LegendFor(&model.Viewer{ID: "o", Role: model.RoleOrganizer})
	assert.Len(t, organizer, 4)

	user := LegendFor(&model.Viewer{ID: "u", Role: model.RoleUser})
	assert.Len(t, user, 2)
	assert.Equal(t, "Events with Tickets", user[0].Label)

	owner := LegendFor(&model.Viewer{ID: "v", Role: model.RoleVenueOwner})
	assert.Len(t, owner, 1)
	assert.Equal(t, "Events at Your Venues", owner[0].Label)

	assert.Nil(t, LegendFor(&model.Viewer{ID: "x", Role: "admin"}))
}
