package token

import (
	"context"
	"errors"
	"time"
)

// ErrNotConnected means the owner has no stored credential, or refresh
// failed; callers treat both the same way.
var ErrNotConnected = errors.New("calendar owner not connected")

// Service manages calendar owner OAuth credentials.
type Service interface {
	// AccessTokenForOwner returns a currently valid access token for the
	// owner, refreshing it first when it is within the expiry margin.
	AccessTokenForOwner(ctx context.Context, ownerID string) (string, error)
	// RefreshExpiring refreshes every stored token expiring within horizon
	// and reports how many were refreshed.
	RefreshExpiring(ctx context.Context, horizon time.Duration) (int, error)
}
