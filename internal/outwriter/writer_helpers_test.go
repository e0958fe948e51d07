package outwriter

import (
	"bytes"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFormatters(t *testing.T) {
	tests := []struct {
		name      string
		precision int
		value     float64
		expected  string
	}{
		{"precision 2", 2, 2.655, "2.65"},
		{"precision 1", 1, 66.666, "66.7"},
		{"precision 4", 4, 1.1, "1.1000"},
		{"zero", 2, 0, "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fmtFloat, intFmt := createFormatters(tt.precision)
			assert.Equal(t, tt.expected, fmtFloat(tt.value))
			assert.Equal(t, "%d", intFmt)
		})
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeJSON(&buf, map[string]any{"nivel_global": "alto", "score_global": 2.1}))
	assert.Equal(t, "{\n  \"nivel_global\": \"alto\",\n  \"score_global\": 2.1\n}\n", buf.String())

	buf.Reset()
	err := writeJSON(&buf, make(chan int))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to encode JSON")
}

func TestWriteCSVWithHeader(t *testing.T) {
	tests := []struct {
		name     string
		rows     [][]string
		expected string
	}{
		{"no rows", nil, "category,item_text\n"},
		{"plain", [][]string{{"consistencia_rol", "Órdenes claras"}}, "category,item_text\nconsistencia_rol,Órdenes claras\n"},
		{"quoted comma", [][]string{{"demandas_jornada", "Pausas, descansos"}}, "category,item_text\ndemandas_jornada,\"Pausas, descansos\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := writeCSVWithHeader(&buf, []string{"category", "item_text"}, func(w *csv.Writer) error {
				for _, row := range tt.rows {
					if err := w.Write(row); err != nil {
						return err
					}
				}
				return nil
			})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, buf.String())
		})
	}

	err := writeCSVWithHeader(io.Discard, []string{"col"}, func(*csv.Writer) error {
		return assert.AnError
	})
	assert.Equal(t, assert.AnError, err)
}

func TestWriteWithFile(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "out.txt")

	err := writeWithFile(tmpFile, func(w io.Writer) error {
		_, err := io.WriteString(w, "concepto")
		return err
	}, "Wrote text")
	require.NoError(t, err)

	content, err := os.ReadFile(tmpFile)
	require.NoError(t, err)
	assert.Equal(t, "concepto", string(content))

	err = writeWithFile(tmpFile, func(io.Writer) error { return assert.AnError }, "Wrote text")
	assert.Equal(t, assert.AnError, err)

	err = writeWithFile("/nonexistent/dir/out.txt", func(io.Writer) error { return nil }, "Wrote text")
	assert.Error(t, err)
}
