package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleYAML = `
pickers:
  - title: Name
    selected: Jane
    options:
      - id: a
        value: John
      - id: b
        value: Jane
  - title: Size
    selected: m
    options:
      - id: s
      - id: m
telemetry:
  endpoint: localhost:4318
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_FromFile(t *testing.T) {
	t.Setenv("TUIKIT_CONFIG", writeConfig(t, sampleYAML))

	cfg, err := Load()
	require.NoError(t, err)
	require.Len(t, cfg.Pickers, 2)

	name := cfg.Pickers[0]
	require.Equal(t, "Name", name.Title)
	require.Equal(t, "Jane", name.Selected)
	require.Equal(t, []OptionConfig{{ID: "a", Value: "John"}, {ID: "b", Value: "Jane"}}, name.Options)

	// value defaults to id
	require.Equal(t, "m", cfg.Pickers[1].Options[1].Value)

	require.Equal(t, "localhost:4318", cfg.Telemetry.Endpoint)
	require.Equal(t, "tuikit", cfg.Telemetry.ServiceName)
	require.True(t, cfg.Telemetry.Insecure)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("TUIKIT_CONFIG", writeConfig(t, sampleYAML))
	t.Setenv("TUIKIT_TELEMETRY_SERVICE_NAME", "picker-demo")
	t.Setenv("TUIKIT_LOG_FILE", "/tmp/tuikit.log")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "picker-demo", cfg.Telemetry.ServiceName)
	require.Equal(t, "/tmp/tuikit.log", cfg.Log.File)
}

func TestLoad_DefaultLocationOptional(t *testing.T) {
	t.Setenv("TUIKIT_CONFIG", "")
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	require.Empty(t, cfg.Pickers)
}

func TestLoad_ExplicitPathMustExist(t *testing.T) {
	t.Setenv("TUIKIT_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_RejectsDuplicateIDs(t *testing.T) {
	t.Setenv("TUIKIT_CONFIG", writeConfig(t, `
pickers:
  - title: Name
    options:
      - id: a
        value: John
      - id: a
        value: Jane
`))

	_, err := Load()
	require.ErrorContains(t, err, `duplicate option id "a"`)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name: "duplicate values allowed",
			cfg: Config{Pickers: []PickerConfig{{Title: "N", Options: []OptionConfig{
				{ID: "a", Value: "x"}, {ID: "b", Value: "x"},
			}}}},
		},
		{
			name:    "no options",
			cfg:     Config{Pickers: []PickerConfig{{Title: "N"}}},
			wantErr: "picker N: no options",
		},
		{
			name:    "empty id",
			cfg:     Config{Pickers: []PickerConfig{{Options: []OptionConfig{{Value: "x"}}}}},
			wantErr: "picker #0: option with empty id",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.EqualError(t, err, tt.wantErr)
		})
	}
}
