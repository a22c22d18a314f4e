package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "{app}", cfg.Substitution.Placeholder)
	assert.Equal(t, "auto", cfg.Input.Encoding)
	assert.Equal(t, ".iss", cfg.Output.Suffix)
	assert.Equal(t, "\r\n", cfg.EOL())
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reginno.toml")
	content := `
[substitution]
source_dir = 'C:\Build\Out'
placeholder = "{pf}\\Vendor"

[input]
encoding = "Windows1252"

[output]
suffix = "inc"
line_ending = "LF"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, `C:\Build\Out`, cfg.Substitution.SourceDir)
	assert.Equal(t, `{pf}\Vendor`, cfg.Substitution.Placeholder)
	assert.Equal(t, "windows1252", cfg.Input.Encoding)
	assert.Equal(t, ".inc", cfg.Output.Suffix)
	assert.Equal(t, "\n", cfg.EOL())
	// untouched sections keep defaults
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "unknown key", content: "[output]\ncolour = true\n", want: "parse config"},
		{name: "bad encoding", content: "[input]\nencoding = \"ebcdic\"\n", want: "input.encoding"},
		{name: "bad line ending", content: "[output]\nline_ending = \"cr\"\n", want: "output.line_ending"},
		{name: "empty placeholder", content: "[substitution]\nplaceholder = \"\"\n", want: "substitution.placeholder"},
		{name: "bad level", content: "[logging]\nlevel = \"loud\"\n", want: "logging.level"},
		{name: "bad format", content: "[logging]\nformat = \"xml\"\n", want: "logging.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.toml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))
			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoad_EncodingAliases(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"utf-8", "utf8"},
		{"cp1252", "windows1252"},
		{"UTF-16LE", "utf16le"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "reginno.toml")
			require.NoError(t, os.WriteFile(path, []byte("[input]\nencoding = \""+tt.in+"\"\n"), 0o644))

			cfg, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Input.Encoding)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open config")
}

func TestLoad_DisabledSubstitutionAllowsEmptyPlaceholder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "off.toml")
	require.NoError(t, os.WriteFile(path, []byte("[substitution]\ndisabled = true\nplaceholder = \"\"\n"), 0o644))
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Substitution.Disabled)
}

func TestSampleConfig_MatchesDefaults(t *testing.T) {
	var cfg Config
	require.NoError(t, Decode(strings.NewReader(SampleConfig()), &cfg))
	assert.Equal(t, Default(), cfg)
}

func TestEncode_RoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Substitution.SourceDir = `C:\src`

	var buf bytes.Buffer
	require.NoError(t, cfg.Encode(&buf))

	var back Config
	require.NoError(t, Decode(&buf, &back))
	assert.Equal(t, cfg, back)
}
