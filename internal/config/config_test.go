package config_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bintree/internal/config"
)

// env builds a LookupFunc over a fixed map.
func env(vars map[string]string) config.LookupFunc {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(afero.NewMemMapFs(), env(nil))
	require.NoError(t, err)
	assert.Equal(t, config.Defaults(), cfg)
	assert.Equal(t, "btree.bt", cfg.File)
	assert.Equal(t, 6, cfg.SkipDeep)
	assert.False(t, cfg.HasSeed)
}

func TestLoad_Precedence(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, ".env", []byte(
		"BTREE_FILE=from-env-file.bt\nBTREE_SKIP_DEEP=3\nBTREE_MAX_LEAVES=10\n"), 0o644))
	require.NoError(t, afero.WriteFile(fs, ".env.local", []byte(
		"BTREE_SKIP_DEEP=4\n# comment\nBTREE_CHARSET=Windows-1252\n"), 0o644))

	cfg, err := config.Load(fs, env(map[string]string{
		config.KeyMaxLeaves: "25",
		config.KeySeed:      "-9",
	}))
	require.NoError(t, err)
	assert.Equal(t, "from-env-file.bt", cfg.File)
	assert.Equal(t, 4, cfg.SkipDeep, ".env.local overrides .env")
	assert.Equal(t, 25, cfg.MaxLeaves, "process env overrides files")
	assert.Equal(t, "windows-1252", cfg.Charset)
	assert.True(t, cfg.HasSeed)
	assert.Equal(t, int64(-9), cfg.Seed)
}

func TestLoad_SkipsMissingFilesAndDirs(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("conf.env", 0o755))
	require.NoError(t, afero.WriteFile(fs, "b.env", []byte("BTREE_LOG=debug"), 0o644))

	cfg, err := config.Load(fs, env(nil), "missing.env", "conf.env", "b.env")
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_InvalidValues(t *testing.T) {
	cases := map[string]string{
		config.KeySkipDeep:  "-2",
		config.KeyMaxLeaves: "lots",
		config.KeySeed:      "1.5",
	}
	for key, val := range cases {
		_, err := config.Load(afero.NewMemMapFs(), env(map[string]string{key: val}))
		assert.ErrorIs(t, err, config.ErrInvalidValue, key)
	}
	_, err := config.Load(afero.NewMemMapFs(), env(map[string]string{config.KeyMaxLeaves: "-1"}))
	assert.ErrorIs(t, err, config.ErrInvalidValue)
}

func TestReadEnvFiles_LastWins(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "a", []byte("X=1\nY=a"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "b", []byte("X=2"), 0o644))

	vars, err := config.ReadEnvFiles(fs, "a", "b")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"X": "2", "Y": "a"}, vars)
}
