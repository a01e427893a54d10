package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/event-calendar/internal/model"
	"github.com/iliyamo/event-calendar/internal/repository"
)

const testSecret = "unit-test-secret"

// fakeProfiles is a canned ProfileSource with a call counter.
type fakeProfiles struct {
	viewer *model.Viewer
	err    error
	calls  int
}

func (f *fakeProfiles) Fetch(ctx context.Context, cred model.Credential) (*model.Viewer, error) {
	f.calls++
	return f.viewer, f.err
}

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return raw
}

// resolve runs ViewerContext against a request and returns what the inner
// handler observed.
func resolve(t *testing.T, secret string, profiles ProfileSource, mutate func(*http.Request)) (*model.Viewer, model.Credential) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/calendar", nil)
	if mutate != nil {
		mutate(req)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var viewer *model.Viewer
	var cred model.Credential
	handler := ViewerContext(secret, profiles)(func(c echo.Context) error {
		viewer = Viewer(c)
		cred = Credential(c)
		return nil
	})
	require.NoError(t, handler(c))
	return viewer, cred
}

func TestCredentialFrom(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer tok123")
	req.AddCookie(&http.Cookie{Name: "session", Value: "abc"})

	cred := CredentialFrom(req)
	assert.Equal(t, "tok123", cred.Bearer)
	require.Len(t, cred.Cookies, 1)
	assert.Equal(t, "session", cred.Cookies[0].Name)
	assert.False(t, cred.Empty())

	assert.True(t, CredentialFrom(httptest.NewRequest(http.MethodGet, "/", nil)).Empty())
}

func TestViewerContext_BearerVerifiedLocally(t *testing.T) {
	profiles := &fakeProfiles{}
	token := signToken(t, jwt.MapClaims{"sub": "u1", "role": "organizer"})

	viewer, cred := resolve(t, testSecret, profiles, func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+token)
	})

	require.NotNil(t, viewer)
	assert.Equal(t, "u1", viewer.ID)
	assert.Equal(t, "organizer", viewer.Role)
	assert.Equal(t, token, cred.Bearer)
	assert.Zero(t, profiles.calls, "locally verified token should not hit the upstream")
}

func TestViewerContext_IDClaimFallback(t *testing.T) {
	token := signToken(t, jwt.MapClaims{"id": "u2", "role": "user"})

	viewer, _ := resolve(t, testSecret, nil, func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+token)
	})

	require.NotNil(t, viewer)
	assert.Equal(t, "u2", viewer.ID)
}

func TestViewerContext_NoCredentialIsAnonymous(t *testing.T) {
	profiles := &fakeProfiles{}
	viewer, cred := resolve(t, testSecret, profiles, nil)

	assert.Nil(t, viewer)
	assert.True(t, cred.Empty())
	assert.Zero(t, profiles.calls)
}

func TestViewerContext_CookieFallsBackToProfile(t *testing.T) {
	profiles := &fakeProfiles{viewer: &model.Viewer{ID: "u3", Role: "user"}}

	viewer, _ := resolve(t, testSecret, profiles, func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: "session", Value: "abc"})
	})

	require.NotNil(t, viewer)
	assert.Equal(t, "u3", viewer.ID)
	assert.Equal(t, 1, profiles.calls)
}

func TestViewerContext_RejectedCredentialIsAnonymous(t *testing.T) {
	profiles := &fakeProfiles{err: repository.ErrUnauthorized}

	viewer, _ := resolve(t, testSecret, profiles, func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: "session", Value: "stale"})
	})

	assert.Nil(t, viewer)
	assert.Equal(t, 1, profiles.calls)
}

func TestViewerContext_UpstreamErrorIsAnonymous(t *testing.T) {
	profiles := &fakeProfiles{err: errors.New("connection refused")}

	viewer, _ := resolve(t, testSecret, profiles, func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: "session", Value: "abc"})
	})

	assert.Nil(t, viewer)
}

func TestViewerContext_ForgedTokenFallsThrough(t *testing.T) {
	// Signed with the wrong secret: local verification fails, so the
	// token is treated as an opaque credential and resolved upstream.
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256,
		jwt.MapClaims{"sub": "intruder"}).SignedString([]byte("other-secret"))
	require.NoError(t, err)

	profiles := &fakeProfiles{err: repository.ErrUnauthorized}
	viewer, _ := resolve(t, testSecret, profiles, func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+forged)
	})

	assert.Nil(t, viewer)
	assert.Equal(t, 1, profiles.calls)
}

func TestViewerID(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.Equal(t, "guest", viewerID(c))

	c.Set(viewerKey, &model.Viewer{ID: "u9", Role: "user"})
	assert.Equal(t, "u9", viewerID(c))
}
