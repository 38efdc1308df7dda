// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config package should avoid importing any other package of this module in
// order to prevent any cyclic-dependancy issues

const (
	// current working dir
	searchPath1 = "."
	// home datadir
	searchPath2 = "$HOME/.base58/"

	// name for the config file. Does not include extension.
	configFileName = "base58"
)

var (
	r *Registry
)

// Registry stores all loaded configurations according to the config order
// NB It should be cheap to be copied by value
type Registry struct {
	UsedConfigFile string

	// All configuration groups
	Codec  codecConfiguration
	Logger loggerConfiguration
}

// Load makes an attempt to read and unmarshal any configs from flag, env and
// base58 config file.
//
// It uses the following precedence order. Each item takes precedence over the item below it:
//  - flag
//  - env
//  - config
//  - default
//
// An empty file searches base58.{toml,json,yaml} in the working directory and
// in $HOME/.base58, and a missing file is then not an error. flags may be
// nil. Only flags defined by DefineFlags and marked as changed override the
// lower levels.
func Load(file string, flags *pflag.FlagSet) error {
	reg, err := load(file, flags)
	if err != nil {
		return err
	}

	r = reg
	return nil
}

// Get returns registry by value in order to avoid further modifications after
// initial configuration loading
func Get() Registry {
	return *r
}

// Mock should be used only in test packages. It could be useful when a unit
// test needs to be rerun with configs different from the default ones.
func Mock(m *Registry) {
	r = m
}

// DefineFlags adds the flags bound to config file settings to fs.
//
// e.g the flag `--logger.level="debug"` overwrites the value from
// `[logger] level = "warn"` in the loaded config file
func DefineFlags(fs *pflag.FlagSet) {
	_ = fs.StringP("codec.alphabet", "a", DefaultAlphabet, "alphabet name (bitcoin, ripple, xrp) or symbols")
	_ = fs.Bool("codec.autofix", false, "fold look-alike symbols when decoding")
	_ = fs.String("codec.hash", DefaultHash, "checksum digest (sha256d, sha3d, blake2b)")
	_ = fs.StringP("logger.level", "l", DefaultLogLevel, "override logger.level settings in config file")
	_ = fs.String("logger.output", DefaultLogOutput, "specifies the log output (stderr, stdout or a file name)")
	_ = fs.String("logger.format", DefaultLogFormat, "log format (text or json)")
}

func load(file string, flags *pflag.FlagSet) (*Registry, error) {
	v := viper.New()
	setDefaults(v)

	// Make an attempt to find base58.toml/base58.json/base58.yaml in any of
	// the provided paths below
	v.SetConfigName(configFileName)
	v.AddConfigPath(searchPath1)
	v.AddConfigPath(searchPath2)

	// confPath is overwritten by the one from command line
	if len(file) > 0 {
		v.SetConfigFile(file)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound || len(file) > 0 {
			return nil, errors.Wrap(err, "error reading config file")
		}
	}

	// Bind config key codec.alphabet to ENV var BASE58_CODEC_ALPHABET
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, errors.Wrap(err, "unable to bind pflags")
		}
	}

	reg := new(Registry)
	if err := v.Unmarshal(reg); err != nil {
		return nil, errors.Wrap(err, "unable to decode into struct")
	}

	reg.UsedConfigFile = v.ConfigFileUsed()
	return reg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("codec.alphabet", DefaultAlphabet)
	v.SetDefault("codec.autofix", false)
	v.SetDefault("codec.hash", DefaultHash)
	v.SetDefault("logger.level", DefaultLogLevel)
	v.SetDefault("logger.output", DefaultLogOutput)
	v.SetDefault("logger.format", DefaultLogFormat)
}

func init() {
	// By default Registry should be empty but not nil. In that way, consumers
	// (packages) can use their default values on unit testing
	r = new(Registry)
	r.Codec.Alphabet = DefaultAlphabet
	r.Codec.Hash = DefaultHash
	r.Logger.Level = DefaultLogLevel
	r.Logger.Output = DefaultLogOutput
	r.Logger.Format = DefaultLogFormat
}
