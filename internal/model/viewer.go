package model

import "net/http"

// Viewer is the authenticated identity looking at the calendar. A nil
// *Viewer means the request is anonymous; code that receives a viewer must
// treat nil as a valid, first-class state rather than an error.
//
// Fields:
//  ID   – upstream account identifier used for ownership and ticket
//         possession comparisons.
//  Role – one of the Role* constants. Unknown role strings are carried
//         verbatim and fall through to default classification.
type Viewer struct {
	ID   string
	Role string
}

// Roles assigned by the upstream EMS API.
const (
	RoleUser       = "user"
	RoleOrganizer  = "organizer"
	RoleVenueOwner = "venue_owner"
)

// Credential bundles whatever proof of identity arrived with a request so
// it can be forwarded verbatim to the upstream API. Either field may be
// empty; an entirely zero Credential is how anonymous calls are made.
//
// Fields:
//  Bearer  – raw bearer token from the Authorization header, without the
//            "Bearer " prefix.
//  Cookies – session cookies to replay on upstream requests.
type Credential struct {
	Bearer  string
	Cookies []*http.Cookie
}

// Empty reports whether the credential carries nothing usable.
func (c Credential) Empty() bool {
	return c.Bearer == "" && len(c.Cookies) == 0
}
