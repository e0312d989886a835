package ports

import (
	"context"
)

// Authorizer gates staff-facing operations. How a token is obtained and
// verified is an external concern; the core only requires that staff
// operations pass this check before becoming reachable.
type Authorizer interface {
	// Authorize reports whether the session token grants staff access.
	// An error indicates the check itself could not be performed.
	Authorize(ctx context.Context, token string) (bool, error)
}
