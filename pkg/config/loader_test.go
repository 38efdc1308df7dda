// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package config

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tomlConfig = `
[codec]
alphabet = "ripple"
autofix = true
hash = "blake2b"

[logger]
level = "info"
format = "json"
`

func writeConfig(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, ioutil.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefaults(t *testing.T) {
	reg, err := load("", nil)
	require.NoError(t, err)

	assert.Equal(t, "", reg.UsedConfigFile)
	assert.Equal(t, DefaultAlphabet, reg.Codec.Alphabet)
	assert.False(t, reg.Codec.Autofix)
	assert.Equal(t, DefaultHash, reg.Codec.Hash)
	assert.Equal(t, DefaultLogLevel, reg.Logger.Level)
	assert.Equal(t, DefaultLogOutput, reg.Logger.Output)
	assert.Equal(t, DefaultLogFormat, reg.Logger.Format)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, "base58.toml", tomlConfig)

	prev := Get()
	defer Mock(&prev)
	require.NoError(t, Load(path, nil))

	reg := Get()
	assert.Equal(t, path, reg.UsedConfigFile)
	assert.Equal(t, "ripple", reg.Codec.Alphabet)
	assert.True(t, reg.Codec.Autofix)
	assert.Equal(t, "blake2b", reg.Codec.Hash)
	assert.Equal(t, "info", reg.Logger.Level)
	assert.Equal(t, "json", reg.Logger.Format)
	// not in the file
	assert.Equal(t, DefaultLogOutput, reg.Logger.Output)
}

func TestLoadYAML(t *testing.T) {
	path := writeConfig(t, "base58.yaml", "codec:\n  alphabet: xrp\n")

	reg, err := load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "xrp", reg.Codec.Alphabet)
}

func TestMissingFile(t *testing.T) {
	_, err := load(filepath.Join(t.TempDir(), "missing.toml"), nil)
	assert.Error(t, err)
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "base58.toml", tomlConfig)
	t.Setenv("BASE58_CODEC_ALPHABET", "bitcoin")
	t.Setenv("BASE58_CODEC_AUTOFIX", "false")

	reg, err := load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "bitcoin", reg.Codec.Alphabet)
	assert.False(t, reg.Codec.Autofix)
	assert.Equal(t, "blake2b", reg.Codec.Hash)
}

func TestFlagsOverrideEnv(t *testing.T) {
	path := writeConfig(t, "base58.toml", tomlConfig)
	t.Setenv("BASE58_LOGGER_LEVEL", "error")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	DefineFlags(fs)
	require.NoError(t, fs.Parse([]string{"--logger.level=debug", "-a", "0123456789"}))

	reg, err := load(path, fs)
	require.NoError(t, err)
	assert.Equal(t, "debug", reg.Logger.Level)
	assert.Equal(t, "0123456789", reg.Codec.Alphabet)
	// unchanged flags leave the file values alone
	assert.Equal(t, "blake2b", reg.Codec.Hash)
	assert.True(t, reg.Codec.Autofix)
}

func TestSupportedFlags(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	DefineFlags(fs)

	for _, name := range []string{
		"codec.alphabet", "codec.autofix", "codec.hash",
		"logger.level", "logger.output", "logger.format",
	} {
		assert.NotNil(t, fs.Lookup(name), name)
	}
}
