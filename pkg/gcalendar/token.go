package gcalendar

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/natefinch/atomic"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
)

// NewTokenSourceFromFile reads the credentials file and builds a token source.
func NewTokenSourceFromFile(ctx context.Context, credentialsPath, tokenPath string) (oauth2.TokenSource, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewTokenSource(ctx, data, tokenPath)
}

// NewTokenSource accepts either a service account key or OAuth desktop app
// credentials. Desktop credentials need a token file produced by the auth
// command; refreshed tokens are written back to it.
func NewTokenSource(ctx context.Context, credentialsJSON []byte, tokenPath string) (oauth2.TokenSource, error) {
	// Try service account first
	jwtConfig, err := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarScope)
	if err == nil {
		return &guardedSource{base: jwtConfig.TokenSource(ctx)}, nil
	}

	oauthConfig, oauthErr := OAuthConfig(credentialsJSON)
	if oauthErr != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	tok, err := LoadToken(tokenPath)
	if err != nil {
		return nil, err
	}

	return &guardedSource{
		base: oauth2.ReuseTokenSource(tok, oauthConfig.TokenSource(ctx, tok)),
		path: tokenPath,
		last: tok.AccessToken,
	}, nil
}

// OAuthConfig parses desktop ("installed") or web OAuth client credentials.
func OAuthConfig(credentialsJSON []byte) (*oauth2.Config, error) {
	cfg, err := google.ConfigFromJSON(credentialsJSON, calendar.CalendarScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse OAuth client credentials: %w", err)
	}
	return cfg, nil
}

// LoadToken reads a token saved by SaveToken.
func LoadToken(path string) (*oauth2.Token, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("no token found at %s, run the auth command first: %w", path, err)
	}

	var tok oauth2.Token
	if err := json.Unmarshal(data, &tok); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if tok.AccessToken == "" && tok.RefreshToken == "" {
		return nil, fmt.Errorf("%s holds neither an access nor a refresh token", path)
	}
	return &tok, nil
}

// SaveToken writes the token atomically with owner-only permissions.
func SaveToken(path string, tok *oauth2.Token) error {
	data, err := json.MarshalIndent(tok, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode token: %w", err)
	}
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write token: %w", err)
	}
	return os.Chmod(path, 0o600)
}

// guardedSource turns refresh failures into ErrUnauthorized and persists
// rotated tokens.
type guardedSource struct {
	mu   sync.Mutex
	base oauth2.TokenSource
	path string
	last string
}

func (s *guardedSource) Token() (*oauth2.Token, error) {
	tok, err := s.base.Token()
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}

	if s.path == "" {
		return tok, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if tok.AccessToken != s.last {
		if err := SaveToken(s.path, tok); err == nil {
			s.last = tok.AccessToken
		}
	}
	return tok, nil
}
