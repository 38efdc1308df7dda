// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package main

import (
	"github.com/urfave/cli"
)

var (
	// DecodeFlag flag to decode data instead of encoding.
	DecodeFlag = cli.BoolFlag{
		Name:  "decode, d",
		Usage: "decode data instead of encoding",
	}
	// CheckFlag flag to append or verify a checksum.
	CheckFlag = cli.BoolFlag{
		Name:  "check, c",
		Usage: "calculate a checksum and append to encoded data or verify existing checksum when decoding",
	}
	// AlphabetFlag flag to select the alphabet.
	AlphabetFlag = cli.StringFlag{
		Name:  "alphabet, a",
		Usage: "alphabet name (bitcoin, ripple, xrp) or its symbols",
	}
	// AutofixFlag flag to fold look-alike symbols when decoding.
	AutofixFlag = cli.BoolFlag{
		Name:  "autofix, f",
		Usage: "decode 0/O/o and I/l/1 as the one of them in the alphabet",
	}
	// HashFlag flag to select the checksum digest.
	HashFlag = cli.StringFlag{
		Name:  "hash",
		Usage: "checksum digest (sha256d, sha3d, blake2b)",
	}
	// VerbosityFlag flag to set the log level.
	VerbosityFlag = cli.StringFlag{
		Name:  "verbosity",
		Usage: "log level (trace, debug, info, warn, error)",
	}
	// ConfigFlag flag to use configuration file.
	ConfigFlag = cli.StringFlag{
		Name:  "config",
		Usage: "base58.toml configuration file",
	}
)

var (
	// CLIFlags flags usable in a CLI context.
	CLIFlags = []cli.Flag{
		DecodeFlag,
		CheckFlag,
		AlphabetFlag,
		AutofixFlag,
		HashFlag,
		VerbosityFlag,
	}
	// GlobalFlags flags usable in a global context.
	GlobalFlags = []cli.Flag{
		ConfigFlag,
	}
)

// configKeys maps the flags overriding config settings to their config key.
var configKeys = map[string]string{
	"alphabet":  "codec.alphabet",
	"autofix":   "codec.autofix",
	"hash":      "codec.hash",
	"verbosity": "logger.level",
}
