package middleware

// viewer.go resolves the request's viewer identity exactly once and
// injects it into the Echo context so that handlers receive it explicitly
// instead of reaching for ambient globals. The calendar is visible to
// everyone, so resolution never rejects a request: a missing, invalid or
// upstream-rejected credential simply yields the anonymous viewer.

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/event-calendar/internal/model"
	"github.com/iliyamo/event-calendar/internal/repository"
)

// Context keys used by this middleware.
const (
	viewerKey     = "viewer"
	credentialKey = "credential"
)

// ProfileSource resolves a credential against the upstream API. Satisfied
// by repository.ProfileRepo. Used as the fallback for cookie-only
// sessions, where no locally verifiable bearer token exists.
type ProfileSource interface {
	Fetch(ctx context.Context, cred model.Credential) (*model.Viewer, error)
}

// CredentialFrom extracts whatever proof of identity the request carries:
// the bearer token from the Authorization header plus all cookies, which
// are replayed to the upstream as the secondary credential channel.
func CredentialFrom(r *http.Request) model.Credential {
	cred := model.Credential{Cookies: r.Cookies()}
	if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		cred.Bearer = strings.TrimPrefix(auth, "Bearer ")
	}
	return cred
}

// ViewerContext returns middleware that resolves the viewer for each
// request. Resolution order:
//
//  1. A bearer token verified locally with the HS256 secret shared with
//     the upstream API; its sub and role claims become the viewer.
//  2. Otherwise, any present credential is resolved through GET /profile
//     on the upstream; a 401 there means "not authenticated".
//  3. Otherwise the request is anonymous.
//
// The resolved viewer (possibly nil) and the raw credential are stored in
// the context for handlers to pick up via Viewer() and Credential().
func ViewerContext(secret string, profiles ProfileSource) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cred := CredentialFrom(c.Request())
			c.Set(credentialKey, cred)

			if cred.Empty() {
				c.Set(viewerKey, (*model.Viewer)(nil))
				return next(c)
			}

			if cred.Bearer != "" && secret != "" {
				if v := viewerFromToken(cred.Bearer, secret); v != nil {
					c.Set(viewerKey, v)
					return next(c)
				}
			}

			c.Set(viewerKey, resolveUpstream(c, profiles, cred))
			return next(c)
		}
	}
}

// viewerFromToken verifies an HS256 bearer token and extracts the viewer
// from its claims. Any parse or verification failure returns nil so the
// caller can fall through to upstream resolution.
func viewerFromToken(raw, secret string) *model.Viewer {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return nil
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return nil
	}
	id, _ := claims["sub"].(string)
	if id == "" {
		id, _ = claims["id"].(string)
	}
	if id == "" {
		return nil
	}
	role, _ := claims["role"].(string)
	return &model.Viewer{ID: id, Role: role}
}

// Viewer returns the viewer resolved for this request, or nil when the
// request is anonymous (or the middleware did not run).
func Viewer(c echo.Context) *model.Viewer {
	if v, ok := c.Get(viewerKey).(*model.Viewer); ok {
		return v
	}
	return nil
}

// Credential returns the raw credential extracted from this request.
func Credential(c echo.Context) model.Credential {
	if cred, ok := c.Get(credentialKey).(model.Credential); ok {
		return cred
	}
	return model.Credential{}
}

// viewerID returns a stable identifier for rate-limit and cache keys:
// the viewer's upstream id, or "guest" for anonymous requests.
func viewerID(c echo.Context) string {
	if v := Viewer(c); v != nil && v.ID != "" {
		return v.ID
	}
	return "guest"
}

// resolveUpstream asks the upstream API who the credential belongs to.
// Every failure path degrades to anonymous: a stale credential must not
// break the calendar view.
func resolveUpstream(c echo.Context, profiles ProfileSource, cred model.Credential) *model.Viewer {
	if profiles == nil {
		return nil
	}
	v, err := profiles.Fetch(c.Request().Context(), cred)
	if err != nil {
		if !errors.Is(err, repository.ErrUnauthorized) {
			c.Logger().Warnf("viewer resolution failed: %v", err)
		}
		return nil
	}
	return v
}
