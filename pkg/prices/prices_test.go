package prices

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUnknownIsZero(t *testing.T) {
	table := Default()
	assert.Equal(t, 30.0, table.Get("tofu"))
	assert.Equal(t, 0.0, table.Get("caviar"))
	assert.Equal(t, 0.0, table.Get("Tofu"), "lookups are literal")
}

func TestDefaultIsACopy(t *testing.T) {
	a := Default()
	a["tofu"] = 999
	assert.Equal(t, 30.0, Default().Get("tofu"))
}

func TestLoadMergesOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prices.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"tofu": 35.5, "pork": 120}`), 0o644))

	table, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 35.5, table.Get("tofu"))
	assert.Equal(t, 120.0, table.Get("pork"))
	assert.Equal(t, 10.0, table.Get("bawang"))
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	table, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)
	assert.Equal(t, Default(), table)

	table, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), table)
}

func TestLoadRejectsBadInput(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`[1,2]`), 0o644))
	_, err := Load(bad)
	assert.Error(t, err)

	negative := filepath.Join(dir, "negative.json")
	require.NoError(t, os.WriteFile(negative, []byte(`{"tofu": -1}`), 0o644))
	_, err = Load(negative)
	assert.ErrorContains(t, err, "negative cost")
}
