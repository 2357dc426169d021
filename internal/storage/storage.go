package storage

import (
	"context"

	"github.com/slok/pomo/internal/model"
)

// CycleConfigRepository is the interface for cycle profile retrieval.
type CycleConfigRepository interface {
	// GetCycleConfig returns the normalized cycle configuration stored at path.
	GetCycleConfig(ctx context.Context, path string) (model.CycleConfig, error)
}
