package contract

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Daniromero1410/Mentis/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPlainLabel(t *testing.T) {
	tests := []struct {
		name     string
		input    schema.GlobalSeverity
		expected string
	}{
		{name: "critico", input: schema.CriticoSeverity, expected: CriticoValue},
		{name: "muy alto", input: schema.MuyAltoSeverity, expected: MuyAltoValue},
		{name: "alto", input: schema.AltoSeverity, expected: AltoValue},
		{name: "medio", input: schema.MedioSeverity, expected: MedioValue},
		{name: "bajo", input: schema.BajoSeverity, expected: BajoValue},
		{name: "unknown falls back to bajo", input: "raro", expected: BajoValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetPlainLabel(tt.input))
		})
	}
}

func TestGetColorLabel(t *testing.T) {
	for _, s := range schema.AllSeverities {
		t.Run(string(s), func(t *testing.T) {
			// Should contain the plain label
			assert.Contains(t, GetColorLabel(s), GetPlainLabel(s))
		})
	}
}

func TestGetTierLabel(t *testing.T) {
	assert.Equal(t, "Alto crítico", GetTierLabel(schema.AltoCriticoTier))
	assert.Equal(t, AltoValue, GetTierLabel(schema.AltoTier))
	assert.Equal(t, MedioValue, GetTierLabel(schema.MedioTier))
	assert.Equal(t, BajoValue, GetTierLabel(schema.BajoTier))
	assert.Equal(t, "Sin riesgo", GetTierLabel(schema.SinRiesgoTier))
	assert.Contains(t, GetTierColorLabel(schema.AltoCriticoTier), "Alto crítico")
}

func TestSelectOutputFile(t *testing.T) {
	t.Run("empty path returns stdout", func(t *testing.T) {
		file, err := SelectOutputFile("")
		require.NoError(t, err)
		assert.Equal(t, os.Stdout, file)
	})

	t.Run("valid path creates file", func(t *testing.T) {
		tempFile := filepath.Join(t.TempDir(), "test_output.txt")

		file, err := SelectOutputFile(tempFile)
		require.NoError(t, err)
		assert.NotNil(t, file)
		_ = file.Close()

		_, err = os.Stat(tempFile)
		assert.NoError(t, err)
	})
}

func TestGetDBFilePath(t *testing.T) {
	path := GetDBFilePath()
	assert.Contains(t, path, ".mentis.db")

	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, homeDir), "path %s should start with home dir %s", path, homeDir)
}

func TestTruncateText(t *testing.T) {
	assert.Equal(t, "corto", TruncateText("corto", 10))
	assert.Equal(t, "Ritmo d...", TruncateText("Ritmo de trabajo acelerado", 10))
	assert.Equal(t, "ñañ...", TruncateText("ñañañaña", 6))
	assert.Equal(t, "abcdef", TruncateText("abcdef", 3), "too narrow to truncate")
}

func TestParseBoolString(t *testing.T) {
	for _, s := range []string{"yes", "TRUE", "1", "sí", " si "} {
		v, err := ParseBoolString(s)
		require.NoError(t, err, s)
		assert.True(t, v, s)
	}
	for _, s := range []string{"no", "False", "0"} {
		v, err := ParseBoolString(s)
		require.NoError(t, err, s)
		assert.False(t, v, s)
	}
	_, err := ParseBoolString("quizás")
	assert.Error(t, err)
}
