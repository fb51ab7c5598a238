package usecase

import (
	"context"

	"plansync/internal/audit"
	"plansync/internal/sync"
)

func (uc *implUseCase) ListRuns(ctx context.Context, input sync.ListRunsInput) ([]audit.Run, error) {
	if uc.audit == nil {
		return []audit.Run{}, nil
	}

	opts := audit.ListOptions{Limit: input.Limit}
	if input.Path != "" {
		rel, err := uc.vault.Resolve(input.Path)
		if err != nil {
			return nil, err
		}
		opts.Path = rel
	}

	runs, err := uc.audit.List(ctx, opts)
	if err != nil {
		uc.l.Errorf(ctx, "sync.usecase.ListRuns: %v", err)
		return nil, err
	}
	return runs, nil
}
