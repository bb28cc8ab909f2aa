package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	t.Setenv("TALLY_TEST_DIR", "/var/data")

	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "empty", path: "", want: ""},
		{name: "plain path", path: "/tmp/tally.db", want: "/tmp/tally.db"},
		{name: "tilde prefix", path: "~/tally.db", want: filepath.Join(home, "tally.db")},
		{name: "bare tilde", path: "~", want: home},
		{name: "env var", path: "$TALLY_TEST_DIR/tally.db", want: "/var/data/tally.db"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.path))
		})
	}
}

func TestDatabasePath_Default(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	t.Setenv("HOME", home)

	got := DatabasePath()
	assert.Equal(t, filepath.Join(home, ".local/share/tally/tally.db"), got)
}
