package iocache

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Daniromero1410/Mentis/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecuteStoreExport(t *testing.T) {
	mgr, err := NewStoreManager(schema.SQLiteBackend, sqlitePath(t))
	require.NoError(t, err)
	defer mgr.Close()

	profile := sampleProfile()
	runID, err := mgr.GetProfileStore().BeginRun(time.Now(), schema.ProfileRunRecord{EvaluationID: "eval-001", Variant: "valoracion"})
	require.NoError(t, err)
	for _, cs := range profile.CategoryScores {
		require.NoError(t, mgr.GetProfileStore().RecordCategoryScore(runID, cs))
	}
	require.NoError(t, mgr.GetProfileStore().EndRun(runID, time.Now(), profile))
	require.NoError(t, mgr.GetConceptStore().UpsertConcept(schema.ConceptRecord{EvaluationID: "eval-001", FullText: "texto", UpdatedTime: time.Now()}))

	base := filepath.Join(t.TempDir(), "mentis")
	var out bytes.Buffer
	require.NoError(t, ExecuteStoreExport(mgr, base, &out))

	for _, suffix := range []string{".profile_runs.parquet", ".category_scores.parquet", ".concepts.parquet"} {
		info, err := os.Stat(base + suffix)
		require.NoError(t, err, suffix)
		assert.Greater(t, info.Size(), int64(0))
	}
	assert.Contains(t, out.String(), "Exported 1 profile runs")
	assert.Contains(t, out.String(), "Exported 2 category scores")
	assert.Contains(t, out.String(), "Exported 1 concepts")
}

func TestExecuteStoreExport_Errors(t *testing.T) {
	var out bytes.Buffer

	t.Run("missing output file", func(t *testing.T) {
		assert.Error(t, ExecuteStoreExport(&MockStoreManager{}, "", &out))
	})

	t.Run("empty store", func(t *testing.T) {
		mgr, err := NewStoreManager(schema.SQLiteBackend, sqlitePath(t))
		require.NoError(t, err)
		defer mgr.Close()
		err = ExecuteStoreExport(mgr, filepath.Join(t.TempDir(), "x"), &out)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no stored data")
	})

	t.Run("status failure", func(t *testing.T) {
		profiles := &MockProfileStore{}
		profiles.On("GetStatus").Return(schema.StoreStatus{}, errors.New("connection reset"))
		mgr := &MockStoreManager{}
		mgr.On("GetProfileStore").Return(profiles)
		mgr.On("GetConceptStore").Return(&MockConceptStore{})

		err := ExecuteStoreExport(mgr, filepath.Join(t.TempDir(), "x"), &out)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection reset")
		profiles.AssertExpectations(t)
	})

	t.Run("read failure", func(t *testing.T) {
		profiles := &MockProfileStore{}
		profiles.On("GetStatus").Return(schema.StoreStatus{Backend: "mysql", Connected: true, TotalRuns: 1, TableSizes: map[string]int64{}}, nil)
		profiles.On("GetAllProfileRuns").Return(nil, errors.New("timeout"))
		concepts := &MockConceptStore{}
		concepts.On("CountConcepts").Return(0, nil)
		mgr := &MockStoreManager{}
		mgr.On("GetProfileStore").Return(profiles)
		mgr.On("GetConceptStore").Return(concepts)

		err := ExecuteStoreExport(mgr, filepath.Join(t.TempDir(), "x"), &out)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "profile runs")
		profiles.AssertNotCalled(t, "GetAllCategoryScores")
	})
}
