package http

import (
	"context"

	"plansync/internal/taskindex"
	pkgLog "plansync/pkg/log"
)

type locator struct {
	l      pkgLog.Logger
	client *Client
}

// NewLocator returns a Locator backed by the HTTP client. An empty baseURL
// means no index is configured.
func NewLocator(l pkgLog.Logger, baseURL, accessToken string) taskindex.Locator {
	if baseURL == "" {
		return &locator{l: l}
	}
	return &locator{l: l, client: NewClient(baseURL, accessToken)}
}

func (lc *locator) Locate(ctx context.Context, definitive bool) (taskindex.Index, error) {
	if lc.client == nil {
		return nil, nil
	}

	if err := lc.client.Ping(ctx); err != nil {
		if definitive {
			lc.l.Warnf(ctx, "taskindex.Locate: index unreachable after final attempt: %v", err)
		} else {
			lc.l.Debugf(ctx, "taskindex.Locate: index not ready: %v", err)
		}
		return nil, err
	}
	return lc.client, nil
}
