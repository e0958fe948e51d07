//go:build basic

// Package integration contains integration tests for mentis.
// These tests are excluded from normal test runs due to build tags.
// To run these tests: go test -tags basic ./integration
package integration

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMentisWithSQLite drives every command against a throwaway SQLite store.
func TestMentisWithSQLite(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "mentis.db")
	env := []string{
		"MENTIS_STORE_BACKEND=sqlite",
		"MENTIS_STORE_DB_CONNECT=" + dbPath,
		"MENTIS_COLOR=no",
	}
	assessment := fixturePath(t, "evaluacion.yaml")

	out, err := runMentis(t, env, "profile", assessment, "--output", "json")
	require.NoError(t, err)
	var profile struct {
		EvaluationID   string                     `json:"evaluation_id"`
		SubjectName    string                     `json:"subject_name"`
		GlobalLevel    string                     `json:"nivel_global"`
		ScoresByCat    map[string]json.RawMessage `json:"scores_por_categoria"`
		CategoryScores []json.RawMessage          `json:"category_scores"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &profile))
	assert.Equal(t, "eval-int-001", profile.EvaluationID)
	assert.Equal(t, "Luisa Fernanda Ortiz", profile.SubjectName)
	assert.NotEmpty(t, profile.GlobalLevel)
	// consistencia_rol only has an unrated item
	assert.Len(t, profile.CategoryScores, 3)
	assert.NotContains(t, profile.ScoresByCat, "consistencia_rol")

	out, err = runMentis(t, env, "profile", assessment)
	require.NoError(t, err)
	assert.Contains(t, out, "Evaluación: eval-int-001")
	assert.Contains(t, out, "Nivel global:")

	out, err = runMentis(t, env, "concept", assessment, "--variant", "prueba_trabajo", "--output", "json")
	require.NoError(t, err)
	var concept struct {
		Variant  string `json:"variant"`
		Analysis string `json:"analysis"`
		Full     string `json:"full"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &concept))
	assert.Equal(t, "prueba_trabajo", concept.Variant)
	assert.Contains(t, concept.Full, "Luisa Fernanda Ortiz")
	assert.True(t, strings.HasPrefix(concept.Full, concept.Analysis))

	out, err = runMentis(t, env, "store", "status", "--output", "json")
	require.NoError(t, err)
	var status struct {
		Connected     bool `json:"connected"`
		TotalRuns     int  `json:"total_runs"`
		TotalConcepts int  `json:"total_concepts"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &status))
	assert.True(t, status.Connected)
	assert.Equal(t, 3, status.TotalRuns)
	assert.Equal(t, 1, status.TotalConcepts)

	exportBase := filepath.Join(t.TempDir(), "mentis-data.parquet")
	_, err = runMentis(t, env, "store", "export", "--output-file", exportBase)
	require.NoError(t, err)
	for _, suffix := range []string{".profile_runs.parquet", ".category_scores.parquet", ".concepts.parquet"} {
		assert.FileExists(t, exportBase+suffix)
	}

	out, err = runMentis(t, env, "store", "clear")
	require.NoError(t, err)
	assert.Contains(t, out, "Store cleared successfully.")
	_, err = os.Stat(dbPath)
	assert.True(t, os.IsNotExist(err))
}

// TestMentisMigrate migrates a fresh SQLite file up and back down.
func TestMentisMigrate(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "migrate.db")
	env := []string{"MENTIS_STORE_BACKEND=sqlite", "MENTIS_STORE_DB_CONNECT=" + dbPath}

	_, err := runMentis(t, env, "store", "migrate")
	require.NoError(t, err)

	_, err = runMentis(t, env, "store", "migrate", "--target-version", "0")
	require.NoError(t, err)
}

// TestMentisCatalog lists one category as CSV.
func TestMentisCatalog(t *testing.T) {
	out, err := runMentis(t, nil, "catalog", "--category", "demandas_jornada", "--output", "csv")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.NotEmpty(t, lines)
	assert.Equal(t, "category,item_number,item_text", lines[0])
	for _, line := range lines[1:] {
		assert.True(t, strings.HasPrefix(line, "demandas_jornada,"), line)
	}
}

// TestMentisRejectsBadInput checks the exit status of invalid invocations.
func TestMentisRejectsBadInput(t *testing.T) {
	assessment := fixturePath(t, "evaluacion.yaml")

	_, err := runMentis(t, nil, "concept", assessment, "--variant", "informe")
	assert.Error(t, err)

	_, err = runMentis(t, nil, "profile", assessment, "--output", "parquet")
	assert.Error(t, err)

	_, err = runMentis(t, nil, "profile", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
