//go:build database

package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestMentisWithMySQL tests the mentis CLI with a MySQL backend.
func TestMentisWithMySQL(t *testing.T) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "mysql:8",
		ExposedPorts: []string{"3306/tcp"},
		Env: map[string]string{
			"MYSQL_ROOT_PASSWORD": "secret123",
			"MYSQL_DATABASE":      "mentis",
		},
		WaitingFor: wait.ForLog("port: 3306  MySQL Community Server").WithStartupTimeout(60 * time.Second),
	}
	mysqlC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = mysqlC.Terminate(ctx) }()

	host, err := mysqlC.Host(ctx)
	require.NoError(t, err)
	port, err := mysqlC.MappedPort(ctx, "3306")
	require.NoError(t, err)

	// multiStatements lets golang-migrate run multi-statement files
	connStr := fmt.Sprintf("root:secret123@tcp(%s:%s)/mentis?parseTime=true&multiStatements=true", host, port.Port())
	runStoreLifecycle(t, "mysql", connStr)
}

// TestMentisWithPostgres tests the mentis CLI with a PostgreSQL backend.
func TestMentisWithPostgres(t *testing.T) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:18-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_HOST_AUTH_METHOD": "trust",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}
	pgC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = pgC.Terminate(ctx) }()

	host, err := pgC.Host(ctx)
	require.NoError(t, err)
	port, err := pgC.MappedPort(ctx, "5432")
	require.NoError(t, err)

	connStr := fmt.Sprintf("host=%s port=%s user=postgres dbname=postgres sslmode=disable", host, port.Port())
	runStoreLifecycle(t, "postgresql", connStr)
}

// runStoreLifecycle clears, migrates, fills and inspects a store through the CLI.
func runStoreLifecycle(t *testing.T, backend, connStr string) {
	t.Helper()
	env := []string{
		"MENTIS_STORE_BACKEND=" + backend,
		"MENTIS_STORE_DB_CONNECT=" + connStr,
		"MENTIS_COLOR=no",
	}
	assessment := fixturePath(t, "evaluacion.yaml")

	_, err := runMentis(t, env, "store", "clear")
	require.NoError(t, err)

	_, err = runMentis(t, env, "store", "migrate")
	require.NoError(t, err)

	_, err = runMentis(t, env, "profile", assessment)
	require.NoError(t, err)

	// Two concepts for the same evaluation keep a single row
	_, err = runMentis(t, env, "concept", assessment)
	require.NoError(t, err)
	_, err = runMentis(t, env, "concept", assessment, "--variant", "prueba_trabajo")
	require.NoError(t, err)

	out, err := runMentis(t, env, "store", "status", "--output", "json")
	require.NoError(t, err)
	var status struct {
		Backend       string `json:"backend"`
		Connected     bool   `json:"connected"`
		TotalRuns     int    `json:"total_runs"`
		TotalConcepts int    `json:"total_concepts"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &status))
	assert.Equal(t, backend, status.Backend)
	assert.True(t, status.Connected)
	assert.Equal(t, 3, status.TotalRuns)
	assert.Equal(t, 1, status.TotalConcepts)

	_, err = runMentis(t, env, "store", "clear")
	require.NoError(t, err)
}
