package auth

import (
	"fmt"

	"github.com/Skotchmaster/hospital/pkg/tokens"
)

type Resolver struct {
	Codec *tokens.Codec
}

// Resolve collapses every decode failure into ErrUnauthenticated.
// The wrapped cause is for logs only.
func (r *Resolver) Resolve(token string) (*Principal, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}

	claims, err := r.Codec.Decode(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnauthenticated, err)
	}
	if claims.Subject == "" || claims.UserID == nil {
		return nil, fmt.Errorf("%w: missing sub or id", ErrUnauthenticated)
	}

	return &Principal{
		Username: claims.Subject,
		ID:       *claims.UserID,
		Role:     claims.Role,
	}, nil
}
