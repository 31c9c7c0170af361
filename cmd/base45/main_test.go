package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/bokysan/base45/internal/commands/qr"
	"github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, config string) string {
	file := filepath.Join(t.TempDir(), "base45.yml")
	require.NoError(t, os.WriteFile(file, []byte(config), 0644))
	return file
}

func pngWidth(t *testing.T, file string) int {
	data, err := os.ReadFile(file)
	require.NoError(t, err)
	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, cfg.Width, cfg.Height)
	return cfg.Width
}

func Test_ConfigOverridesCommandDefaults(t *testing.T) {
	cfg := writeConfig(t, "qr:\n  size: 512\n  recovery: high\n")
	out := filepath.Join(t.TempDir(), "code.png")

	b := NewBase45()
	_, err := b.parser.ParseArgs([]string{"-c", cfg, "qr", "-o", out, "hello"})
	require.NoError(t, err)

	require.Equal(t, 512, pngWidth(t, out), "size from the configuration file was not applied")
}

func Test_CommandDefaultsWithoutConfig(t *testing.T) {
	out := filepath.Join(t.TempDir(), "code.png")

	b := NewBase45()
	_, err := b.parser.ParseArgs([]string{"qr", "-o", out, "hello"})
	require.NoError(t, err)

	require.Equal(t, qr.DefaultSize, pngWidth(t, out))
}

func Test_CommandLineOverridesConfig(t *testing.T) {
	cfg := writeConfig(t, "qr:\n  size: 512\n")
	out := filepath.Join(t.TempDir(), "code.png")

	b := NewBase45()
	_, err := b.parser.ParseArgs([]string{"-c", cfg, "qr", "-s", "300", "-o", out, "hello"})
	require.NoError(t, err)

	require.Equal(t, 300, pngWidth(t, out))
}

func Test_ConfigOutputFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "encoded.txt")
	cfg := writeConfig(t, "encode:\n  output: "+out+"\n  no-newline: true\n")

	b := NewBase45()
	_, err := b.parser.ParseArgs([]string{"-c", cfg, "encode", "Hello", "world"})
	require.NoError(t, err)

	encoded, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Equal(t, "%69 VD82EK4F.KEA2", string(encoded))
}

func Test_MissingConfigFile(t *testing.T) {
	b := NewBase45()
	_, err := b.parser.ParseArgs([]string{"-c", filepath.Join(t.TempDir(), "missing.yml"), "version"})
	require.Error(t, err)

	flagsError, ok := err.(*flags.Error)
	require.True(t, ok, "unexpected error: %v", err)
	require.Equal(t, ErrConfigFileDoesNotExist, flagsError.Type)
}

func Test_DecodeDescriptionMentionsQuoting(t *testing.T) {
	b := NewBase45()
	cmd := b.parser.Find("decode")
	require.NotNil(t, cmd)
	require.Contains(t, cmd.LongDescription, "quote encoded text containing runs of spaces")
}
