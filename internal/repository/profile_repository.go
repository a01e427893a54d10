package repository

import (
	"context"

	"github.com/iliyamo/event-calendar/internal/model"
)

// profileRecord mirrors the wire shape of GET /profile, which resolves the
// account behind a credential. Only identity and role matter here; other
// profile fields are ignored.
type profileRecord struct {
	ID   string `json:"_id"`
	Role string `json:"role"`
}

// ProfileRepo resolves viewer identities against the upstream EMS API. It
// is the fallback path for cookie-only sessions, where no locally
// verifiable bearer token is available.
type ProfileRepo struct {
	client *Client
}

// NewProfileRepo constructs a ProfileRepo over the shared upstream client.
func NewProfileRepo(client *Client) *ProfileRepo {
	return &ProfileRepo{client: client}
}

// Fetch resolves the viewer for the given credential. A 401 surfaces as
// ErrUnauthorized, which callers map to the anonymous viewer.
func (r *ProfileRepo) Fetch(ctx context.Context, cred model.Credential) (*model.Viewer, error) {
	var rec profileRecord
	if err := r.client.getJSON(ctx, "/profile", cred, &rec); err != nil {
		return nil, err
	}
	return &model.Viewer{ID: rec.ID, Role: rec.Role}, nil
}
