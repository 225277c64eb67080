package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"gps-track-tools/gpstools/config"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	require := require.New(t)
	chdir(t, t.TempDir())

	cfg, err := config.Load("")

	require.NoError(err)
	require.Equal(config.Default(), cfg)
}

func TestLoadPrecedence(t *testing.T) {
	require := require.New(t)
	dir := t.TempDir()
	chdir(t, dir)

	path := filepath.Join(dir, "gpstools.yml")
	require.NoError(os.WriteFile(path, []byte("format: json\nunits: imperial\ntrackIndex: 2\n"), 0644))
	require.NoError(os.WriteFile(filepath.Join(dir, ".env"), []byte("GPSTOOLS_LOG_LEVEL=debug\n"), 0644))
	t.Setenv("GPSTOOLS_FORMAT", "csv")
	t.Cleanup(func() { os.Unsetenv("GPSTOOLS_LOG_LEVEL") })

	cfg, err := config.Load(path)

	require.NoError(err)
	require.Equal("csv", cfg.Format)
	require.Equal("imperial", cfg.Units)
	require.Equal("debug", cfg.LogLevel)
	require.Equal(2, cfg.TrackIndex)
}

func TestLoadInvalid(t *testing.T) {
	require := require.New(t)

	tests := map[string]struct {
		yaml string
		env  map[string]string
	}{
		"format":      {env: map[string]string{"GPSTOOLS_FORMAT": "xml"}},
		"units":       {yaml: "units: parsecs\n"},
		"log_level":   {env: map[string]string{"GPSTOOLS_LOG_LEVEL": "loud"}},
		"track_index": {yaml: "trackIndex: -1\n"},
		"not_a_int":   {env: map[string]string{"GPSTOOLS_TRACK_INDEX": "first"}},
		"bad_yaml":    {yaml: "format: [\n"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			chdir(t, dir)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			path := ""
			if tc.yaml != "" {
				path = filepath.Join(dir, "gpstools.yml")
				require.NoError(os.WriteFile(path, []byte(tc.yaml), 0644))
			}

			_, err := config.Load(path)
			require.Error(err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	require := require.New(t)
	chdir(t, t.TempDir())

	_, err := config.Load("does-not-exist.yml")

	require.Error(err)
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
