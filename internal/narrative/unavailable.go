package narrative

import "context"

// Unavailable is the Generator used when no credentials are configured.
type Unavailable struct{}

func (Unavailable) Generate(context.Context, Request) (string, error) {
	return "", ErrMissingCredentials
}
