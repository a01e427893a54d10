// This file defines error values that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between failure scenarios: an upstream 401
// means the credential is stale and the view should degrade to its
// anonymous state, while any other upstream failure surfaces as a load
// error with a retry affordance.
package repository

import "errors"

// ErrUnauthorized is returned when the upstream API answers 401 for the
// supplied credential. Handlers treat this as "not authenticated" and
// render the anonymous/default view; it is never fatal.
var ErrUnauthorized = errors.New("unauthorized")

// ErrUpstreamStatus is returned (wrapped, with path and status text) when
// the upstream API answers with any non-2xx status other than 401.
var ErrUpstreamStatus = errors.New("unexpected upstream status")
