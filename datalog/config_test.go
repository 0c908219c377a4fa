package datalog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv(EnvRootDirectory, "")
	t.Setenv(EnvBaseName, "")
	t.Setenv(EnvTimeStamp, "")
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "datalog.yaml")
	data := []byte("root_directory: /var/log/rig\nbase_name: trial\ntime_stamp: true\nquiet: true\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, Config{
		RootDirectory: "/var/log/rig",
		BaseName:      "trial",
		TimeStamp:     true,
		Quiet:         true,
	}, cfg)
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("root_directory: [unclosed\n"), 0o644))

		_, err := LoadConfig(path)
		assert.Error(t, err)
	})
}

func TestNew_EnvironmentFallback(t *testing.T) {
	defer fixedClock(time.Date(2024, time.March, 9, 14, 5, 7, 0, time.UTC))()
	root := t.TempDir()
	t.Setenv(EnvRootDirectory, root)
	t.Setenv(EnvBaseName, "env")
	t.Setenv(EnvTimeStamp, "yes")

	f, err := New(Config{Quiet: true})
	require.NoError(t, err)

	assert.Equal(t, root, f.RootDirectory())
	assert.Equal(t, "env-", f.BaseName())
	assert.Equal(t, "-Sat-Mar-09-14_05_07-2024", f.TimeStamp())
	assert.Equal(t, filepath.Join(root, "env-probe-Sat-Mar-09-14_05_07-2024.log"), f.Path("probe"))
}

func TestNew_ConfigOverridesEnvironment(t *testing.T) {
	t.Setenv(EnvRootDirectory, filepath.Join(t.TempDir(), "env-root"))
	t.Setenv(EnvBaseName, "env")
	t.Setenv(EnvTimeStamp, "")

	root := t.TempDir()
	f, err := New(Config{RootDirectory: root, BaseName: "cfg", Quiet: true})
	require.NoError(t, err)

	assert.Equal(t, root, f.RootDirectory())
	assert.Equal(t, "cfg-", f.BaseName())
	assert.Empty(t, f.TimeStamp())
}

func TestSetRootDirectory(t *testing.T) {
	clearEnv(t)
	f, err := New(Config{RootDirectory: t.TempDir(), Quiet: true})
	require.NoError(t, err)

	t.Run("creates nested directories", func(t *testing.T) {
		root := filepath.Join(t.TempDir(), "a", "b", "c")
		require.NoError(t, f.SetRootDirectory(root))

		info, err := os.Stat(root)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
		assert.Equal(t, root, f.RootDirectory())
	})

	t.Run("idempotent", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, f.SetRootDirectory(root))
		require.NoError(t, f.SetRootDirectory(root))
	})

	t.Run("empty selects working directory", func(t *testing.T) {
		wd, err := os.Getwd()
		require.NoError(t, err)

		require.NoError(t, f.SetRootDirectory(""))
		assert.Equal(t, wd, f.RootDirectory())
	})

	t.Run("relative resolved to absolute", func(t *testing.T) {
		dir := t.TempDir()
		wd, err := os.Getwd()
		require.NoError(t, err)
		require.NoError(t, os.Chdir(dir))
		defer func() { require.NoError(t, os.Chdir(wd)) }()

		require.NoError(t, f.SetRootDirectory("logs"))
		assert.True(t, filepath.IsAbs(f.RootDirectory()))
		assert.DirExists(t, filepath.Join(dir, "logs"))
	})
}

func TestSetBaseName(t *testing.T) {
	f := &Factory{}

	cases := map[string]string{
		"trial":     "trial-",
		"  trial  ": "trial-",
		"":          "",
		" \t\n":     "",
		"rig/arm":   "rig/arm-",
	}
	for name, want := range cases {
		f.SetBaseName(name)
		assert.Equal(t, want, f.BaseName(), "SetBaseName(%q)", name)
	}
}

func TestSetTimeStamp_Sanitized(t *testing.T) {
	defer fixedClock(time.Date(2017, time.November, 23, 9, 30, 0, 0, time.UTC))()

	f := &Factory{}
	f.SetTimeStamp()

	assert.Equal(t, "-Thu-Nov-23-09_30_00-2017", f.TimeStamp())
	assert.NotContains(t, f.TimeStamp(), " ")
	assert.NotContains(t, f.TimeStamp(), ":")
}

func TestSanitizeTimeStamp(t *testing.T) {
	assert.Equal(t, "Mon-Jan--1-00_00_00-2024", sanitizeTimeStamp("Mon Jan  1 00:00:00 2024\r\n"))
}

func TestPath_Composition(t *testing.T) {
	f := &Factory{}
	assert.Equal(t, filepath.Join(".", "x.log"), f.Path("x"), "zero factory should resolve under the working directory")

	f.rootDirectory = "/data"
	f.baseName = "run-"
	f.timeStamp = "-stamp"
	assert.Equal(t, "/data/run-motor-stamp.log", filepath.ToSlash(f.Path("motor")))
	assert.Equal(t, "/data/run-arm/elbow-stamp.log", filepath.ToSlash(f.Path("arm/elbow")))
	assert.Empty(t, f.Path(""))
}

func TestParseBool(t *testing.T) {
	for _, s := range []string{"1", "true", "TRUE", "yes", "on", " On "} {
		assert.True(t, parseBool(s), "parseBool(%q)", s)
	}
	for _, s := range []string{"", "0", "false", "no", "off", "maybe"} {
		assert.False(t, parseBool(s), "parseBool(%q)", s)
	}
}
