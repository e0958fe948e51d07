package iocache

import (
	"time"

	"github.com/Daniromero1410/Mentis/internal/contract"
	"github.com/Daniromero1410/Mentis/schema"
	"github.com/stretchr/testify/mock"
)

// MockStoreManager is a mock implementation of StoreManager for testing.
type MockStoreManager struct {
	mock.Mock
}

var _ contract.StoreManager = &MockStoreManager{} // Compile-time check

// GetProfileStore implements the StoreManager interface.
func (m *MockStoreManager) GetProfileStore() contract.ProfileStore {
	ret := m.Called()
	store, _ := ret.Get(0).(contract.ProfileStore)
	return store
}

// GetConceptStore implements the StoreManager interface.
func (m *MockStoreManager) GetConceptStore() contract.ConceptStore {
	ret := m.Called()
	store, _ := ret.Get(0).(contract.ConceptStore)
	return store
}

// MockProfileStore is a mock implementation of ProfileStore for testing.
type MockProfileStore struct {
	mock.Mock
}

var _ contract.ProfileStore = &MockProfileStore{} // Compile-time check

// BeginRun implements the ProfileStore interface.
func (m *MockProfileStore) BeginRun(startTime time.Time, run schema.ProfileRunRecord) (int64, error) {
	args := m.Called(startTime, run)
	return args.Get(0).(int64), args.Error(1)
}

// EndRun implements the ProfileStore interface.
func (m *MockProfileStore) EndRun(runID int64, endTime time.Time, profile schema.ProfileSummary) error {
	return m.Called(runID, endTime, profile).Error(0)
}

// RecordCategoryScore implements the ProfileStore interface.
func (m *MockProfileStore) RecordCategoryScore(runID int64, score schema.CategoryScore) error {
	return m.Called(runID, score).Error(0)
}

// GetStatus implements the ProfileStore interface.
func (m *MockProfileStore) GetStatus() (schema.StoreStatus, error) {
	args := m.Called()
	return args.Get(0).(schema.StoreStatus), args.Error(1)
}

// GetAllProfileRuns implements the ProfileStore interface.
func (m *MockProfileStore) GetAllProfileRuns() ([]schema.ProfileRunRecord, error) {
	args := m.Called()
	runs, _ := args.Get(0).([]schema.ProfileRunRecord)
	return runs, args.Error(1)
}

// GetAllCategoryScores implements the ProfileStore interface.
func (m *MockProfileStore) GetAllCategoryScores() ([]schema.CategoryScoreRecord, error) {
	args := m.Called()
	scores, _ := args.Get(0).([]schema.CategoryScoreRecord)
	return scores, args.Error(1)
}

// Close implements the ProfileStore interface.
func (m *MockProfileStore) Close() error {
	return m.Called().Error(0)
}

// MockConceptStore is a mock implementation of ConceptStore for testing.
type MockConceptStore struct {
	mock.Mock
}

var _ contract.ConceptStore = &MockConceptStore{} // Compile-time check

// UpsertConcept implements the ConceptStore interface.
func (m *MockConceptStore) UpsertConcept(record schema.ConceptRecord) error {
	return m.Called(record).Error(0)
}

// GetConcept implements the ConceptStore interface.
func (m *MockConceptStore) GetConcept(evaluationID string) (schema.ConceptRecord, error) {
	args := m.Called(evaluationID)
	return args.Get(0).(schema.ConceptRecord), args.Error(1)
}

// CountConcepts implements the ConceptStore interface.
func (m *MockConceptStore) CountConcepts() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

// GetAllConcepts implements the ConceptStore interface.
func (m *MockConceptStore) GetAllConcepts() ([]schema.ConceptRecord, error) {
	args := m.Called()
	concepts, _ := args.Get(0).([]schema.ConceptRecord)
	return concepts, args.Error(1)
}

// Close implements the ConceptStore interface.
func (m *MockConceptStore) Close() error {
	return m.Called().Error(0)
}
