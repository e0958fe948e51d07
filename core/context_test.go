package core

import (
	"context"
	"sync"
	"testing"

	"github.com/Daniromero1410/Mentis/internal/iocache"
	"github.com/stretchr/testify/assert"
)

func TestRunIDContext(t *testing.T) {
	ctx := context.Background()
	_, ok := getRunID(ctx)
	assert.False(t, ok)

	_, ok = getRunID(withRunID(ctx, 0))
	assert.False(t, ok)

	runID, ok := getRunID(withRunID(ctx, 42))
	assert.True(t, ok)
	assert.Equal(t, int64(42), runID)
}

func TestStoreManagerContext(t *testing.T) {
	assert.Nil(t, storeManagerFromContext(context.Background()))
	assert.Nil(t, profileStoreFromContext(context.Background()))

	mgr := &iocache.MockStoreManager{}
	assert.Same(t, mgr, storeManagerFromContext(withStoreManager(context.Background(), mgr)))
}

func TestContextIsolation(t *testing.T) {
	base := context.Background()

	var wg sync.WaitGroup
	for i := range int64(20) {
		wg.Go(func() {
			ctx := withRunID(base, i+1)
			runID, ok := getRunID(ctx)
			assert.True(t, ok)
			assert.Equal(t, i+1, runID)
		})
	}
	wg.Wait()

	_, ok := getRunID(base)
	assert.False(t, ok)
}
