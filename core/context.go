package core

import (
	"context"

	"github.com/Daniromero1410/Mentis/internal/contract"
)

// Context keys for evaluation runs
type contextKey string

const (
	storeManagerKey contextKey = "storeManager"
	runIDKey        contextKey = "runID"
)

// withStoreManager attaches the store manager used to record the run.
func withStoreManager(ctx context.Context, mgr contract.StoreManager) context.Context {
	return context.WithValue(ctx, storeManagerKey, mgr)
}

// storeManagerFromContext returns the attached store manager, or nil.
func storeManagerFromContext(ctx context.Context) contract.StoreManager {
	mgr, _ := ctx.Value(storeManagerKey).(contract.StoreManager)
	return mgr
}

// withRunID attaches the ID of the profile run being recorded.
func withRunID(ctx context.Context, runID int64) context.Context {
	return context.WithValue(ctx, runIDKey, runID)
}

// getRunID returns the ID of the profile run being recorded.
func getRunID(ctx context.Context) (int64, bool) {
	runID, ok := ctx.Value(runIDKey).(int64)
	return runID, ok && runID > 0
}
