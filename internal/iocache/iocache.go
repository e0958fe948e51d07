// Package iocache persists profile runs and generated concepts.
package iocache

import (
	"sync"

	"github.com/Daniromero1410/Mentis/internal/contract"
)

// StoreManagerImpl manages the ProfileStore and ConceptStore instances.
type StoreManagerImpl struct {
	sync.RWMutex // Protects the store pointers during initialization
	profile      contract.ProfileStore
	concept      contract.ConceptStore
}

var _ contract.StoreManager = &StoreManagerImpl{} // Compile-time check

// GetProfileStore returns the ProfileStore.
func (mgr *StoreManagerImpl) GetProfileStore() contract.ProfileStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.profile
}

// GetConceptStore returns the ConceptStore.
func (mgr *StoreManagerImpl) GetConceptStore() contract.ConceptStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.concept
}
