package gateway

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/oauth2"
)

type tokenCredentials struct {
	ts oauth2.TokenSource
}

// NewCredentialProvider wraps a token source. The source refreshes on its
// own; a refresh failure surfaces as ErrAuth.
func NewCredentialProvider(ts oauth2.TokenSource) CredentialProvider {
	return &tokenCredentials{ts: ts}
}

func (c *tokenCredentials) GetValidCredential(ctx context.Context) (*oauth2.Token, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if c.ts == nil {
		return nil, fmt.Errorf("%w: no credential configured", ErrAuth)
	}

	tok, err := c.ts.Token()
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrAuth, err)
	}
	if !tok.Valid() {
		return nil, fmt.Errorf("%w: credential expired", ErrAuth)
	}
	return tok, nil
}
