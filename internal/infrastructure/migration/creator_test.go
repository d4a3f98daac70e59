package migration

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreate(t *testing.T) {
	t.Run("should create an up and down file pair", func(t *testing.T) {
		dir := t.TempDir()

		f, err := Create(dir, "add inventory tables")
		require.NoError(t, err)

		assert.FileExists(t, f.UpPath)
		assert.FileExists(t, f.DownPath)
		assert.Contains(t, f.UpPath, "_add_inventory_tables.up.sql")
		assert.Contains(t, f.DownPath, "_add_inventory_tables.down.sql")

		content, err := os.ReadFile(f.UpPath)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(content), "-- add inventory tables"))
	})

	t.Run("should create the directory when missing", func(t *testing.T) {
		dir := t.TempDir() + "/nested/migrations"

		_, err := Create(dir, "init")
		require.NoError(t, err)
		assert.DirExists(t, dir)
	})
}

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"add users table", "add_users_table"},
		{"Add-Users--Table", "add_users_table"},
		{"trailing space ", "trailing_space"},
		{"MiXeD123", "mixed123"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitizeName(tt.in), tt.in)
	}
}

func TestList(t *testing.T) {
	t.Run("should list one entry per pair", func(t *testing.T) {
		dir := t.TempDir()
		_, err := Create(dir, "first")
		require.NoError(t, err)

		migrations, err := List(dir)
		require.NoError(t, err)
		require.Len(t, migrations, 1)
		assert.Contains(t, migrations[0], "_first")
	})

	t.Run("should return empty for a missing directory", func(t *testing.T) {
		migrations, err := List(t.TempDir() + "/nope")
		require.NoError(t, err)
		assert.Empty(t, migrations)
	})
}
