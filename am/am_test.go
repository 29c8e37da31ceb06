package am

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir switches the working directory for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	oldWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(oldWd) })
}

// isolate points HOME and the working directory at empty temp dirs and
// clears cached configuration.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home = t.TempDir()
	work = t.TempDir()
	t.Setenv("HOME", home)
	chdir(t, work)
	Reset()
	t.Cleanup(Reset)
	return home, work
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), DefaultDirPermissions))
	require.NoError(t, os.WriteFile(path, []byte(content), DefaultFilePermissions))
}

func TestLoad_Defaults(t *testing.T) {
	// Create isolated viper instance without loading user/project config
	v := viper.New()
	SetDefaults(v)

	cfg, err := LoadWithViper(v)
	require.NoError(t, err)

	assert.True(t, cfg.Codec.CompactSingleValues)
	assert.Equal(t, "  ", cfg.Codec.Indent)
	assert.Equal(t, []string{"https://www.w3.org/ns/activitystreams"}, cfg.Codec.DefaultContext)
	assert.False(t, cfg.Log.JSON)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:   "zero config is valid",
			config: Config{},
		},
		{
			name:   "tab indent",
			config: Config{Codec: CodecConfig{Indent: "\t"}},
		},
		{
			name:    "non-whitespace indent",
			config:  Config{Codec: CodecConfig{Indent: "--"}},
			wantErr: true,
		},
		{
			name:    "blank context IRI",
			config:  Config{Codec: CodecConfig{DefaultContext: []string{"https://www.w3.org/ns/activitystreams", " "}}},
			wantErr: true,
		},
		{
			name:   "uppercase level",
			config: Config{Log: LogConfig{Level: "DEBUG"}},
		},
		{
			name:    "unknown level",
			config:  Config{Log: LogConfig{Level: "chatty"}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "am.toml")
	writeFile(t, path, `
[codec]
compact_single_values = false
indent = "    "

[log]
level = "debug"
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.False(t, cfg.Codec.CompactSingleValues)
	assert.Equal(t, "    ", cfg.Codec.Indent)
	assert.Equal(t, "debug", cfg.Log.Level)
	// untouched keys keep their defaults
	assert.Equal(t, []string{"https://www.w3.org/ns/activitystreams"}, cfg.Codec.DefaultContext)
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoad_Precedence(t *testing.T) {
	home, work := isolate(t)

	writeFile(t, filepath.Join(home, UserDirName, ConfigFileName), `
[codec]
indent = "\t"

[log]
level = "info"
json = true
`)
	writeFile(t, filepath.Join(work, ConfigFileName), `
[log]
level = "error"
`)
	t.Setenv("ASTYPES_LOG_JSON", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "\t", cfg.Codec.Indent, "user file applies")
	assert.Equal(t, "error", cfg.Log.Level, "project file beats user file")
	assert.False(t, cfg.Log.JSON, "environment beats files")

	assert.Equal(t, SourceUser, ConfigSources["codec.indent"].Source)
	assert.Equal(t, SourceProject, ConfigSources["log.level"].Source)

	cached, err := Load()
	require.NoError(t, err)
	assert.Same(t, cfg, cached)
}

func TestGetConfigIntrospection(t *testing.T) {
	_, work := isolate(t)
	writeFile(t, filepath.Join(work, ConfigFileName), `
[codec]
indent = "   "
`)
	t.Setenv("ASTYPES_LOG_LEVEL", "debug")

	intro, err := GetConfigIntrospection()
	require.NoError(t, err)

	byKey := map[string]SettingInfo{}
	for _, s := range intro.Settings {
		byKey[s.Key] = s
	}

	assert.Equal(t, SourceProject, byKey["codec.indent"].Source)
	assert.Equal(t, SourceDefault, byKey["codec.compact_single_values"].Source)
	assert.Equal(t, SourceEnvironment, byKey["log.level"].Source)
	assert.Equal(t, "ASTYPES_LOG_LEVEL", byKey["log.level"].SourcePath)
}

func TestFindProjectConfig(t *testing.T) {
	tmpDir := t.TempDir()

	t.Run("walks up to parent", func(t *testing.T) {
		subDir := filepath.Join(tmpDir, "found", "a", "b")
		require.NoError(t, os.MkdirAll(subDir, DefaultDirPermissions))
		writeFile(t, filepath.Join(tmpDir, "found", ConfigFileName), "")
		chdir(t, subDir)

		result := findProjectConfig()
		require.NotEmpty(t, result)
		assert.True(t, filepath.IsAbs(result))
		assert.Equal(t, ConfigFileName, filepath.Base(result))
	})

	t.Run("no config found", func(t *testing.T) {
		subDir := filepath.Join(tmpDir, "empty", "subdir")
		require.NoError(t, os.MkdirAll(subDir, DefaultDirPermissions))
		chdir(t, subDir)

		assert.Empty(t, findProjectConfig())
	})
}
