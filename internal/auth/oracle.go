package auth

import (
	"context"
	"errors"
)

// ErrProofRequired is returned when the current call carries no valid proof
// that it may act as the claimed address.
var ErrProofRequired = errors.New("caller has no valid proof for this address")

// Oracle confirms that the current call is authorized to act as the given
// address. The registry asks the oracle before every state-mutating
// operation; a failure aborts the call before any write.
type Oracle interface {
	RequireAuth(ctx context.Context, address string) error
}

type contextKey string

const verifiedCallerKey contextKey = "verified_caller"

// WithVerifiedCaller marks the context as acting for an address. Set by the
// transport layer after it has checked the caller's credentials.
func WithVerifiedCaller(ctx context.Context, address string) context.Context {
	return context.WithValue(ctx, verifiedCallerKey, address)
}

// VerifiedCaller returns the address the context is verified to act for.
func VerifiedCaller(ctx context.Context) (string, bool) {
	address, ok := ctx.Value(verifiedCallerKey).(string)
	return address, ok && address != ""
}

// ContextOracle authorizes an address when the request context was verified
// for exactly that address.
type ContextOracle struct{}

func NewContextOracle() *ContextOracle {
	return &ContextOracle{}
}

func (o *ContextOracle) RequireAuth(ctx context.Context, address string) error {
	verified, ok := VerifiedCaller(ctx)
	if !ok || verified != address {
		return ErrProofRequired
	}
	return nil
}

// AllowAll authorizes every address. Embedded and test use only.
type AllowAll struct{}

func (AllowAll) RequireAuth(ctx context.Context, address string) error {
	return nil
}
