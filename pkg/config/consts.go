// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package config

// A single point of constants definition
const (
	// DefaultAlphabet names the alphabet used when none is configured. It
	// may also hold the symbols of a custom alphabet.
	DefaultAlphabet = "bitcoin"

	// DefaultHash names the checksum digest of the Check operations.
	DefaultHash = "sha256d"

	DefaultLogLevel  = "warn"
	DefaultLogOutput = "stderr"
	DefaultLogFormat = "text"

	// EnvPrefix prefixes the environment variables bound to config keys,
	// e.g. BASE58_CODEC_ALPHABET for codec.alphabet.
	EnvPrefix = "BASE58"
)
