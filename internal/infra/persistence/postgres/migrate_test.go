package postgres

import (
	"bytes"
	"io/fs"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationsEmbedded(t *testing.T) {
	files, err := fs.Glob(migrationsFS, migrationsDir+"/*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, name := range files {
		body, err := fs.ReadFile(migrationsFS, name)
		require.NoError(t, err)
		assert.Contains(t, string(body), "-- +goose Up", name)
		assert.Contains(t, string(body), "-- +goose Down", name)
	}
}

func TestGooseLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := &gooseLogger{logger: slog.New(slog.NewTextHandler(&buf, nil))}

	logger.Printf("OK   %s", "00001_init.sql")
	logger.Fatalf("failed %d", 1)

	out := buf.String()
	assert.Equal(t, 2, strings.Count(out, "msg=goose"))
	assert.Contains(t, out, "00001_init.sql")
	assert.Contains(t, out, "level=ERROR")
}
