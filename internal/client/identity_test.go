package client

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOrCreateIdentity_GeneratesOnce(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "state")

	first, err := LoadOrCreateIdentity(dir, "Ana")
	require.NoError(t, err)
	assert.Len(t, first.DeviceID, deviceIDLength)
	assert.Equal(t, "Ana", first.DisplayName)

	second, err := LoadOrCreateIdentity(dir, "")
	require.NoError(t, err)
	assert.Equal(t, first.DeviceID, second.DeviceID)
	assert.Equal(t, "Ana", second.DisplayName)
}

func TestLoadOrCreateIdentity_RenameKeepsDeviceID(t *testing.T) {
	dir := t.TempDir()

	first, err := LoadOrCreateIdentity(dir, "Ana")
	require.NoError(t, err)

	renamed, err := LoadOrCreateIdentity(dir, "  Ana María ")
	require.NoError(t, err)
	assert.Equal(t, first.DeviceID, renamed.DeviceID)
	assert.Equal(t, "Ana María", renamed.DisplayName)

	reloaded, err := LoadOrCreateIdentity(dir, "")
	require.NoError(t, err)
	assert.Equal(t, "Ana María", reloaded.DisplayName)
}

func TestLoadOrCreateIdentity_RejectsLongName(t *testing.T) {
	_, err := LoadOrCreateIdentity(t.TempDir(), strings.Repeat("é", maxDisplayName+1))
	assert.Error(t, err)
}

func TestLoadOrCreateIdentity_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, identityFile), []byte("{not json"), 0o600))

	_, err := LoadOrCreateIdentity(dir, "")
	assert.Error(t, err)
}
