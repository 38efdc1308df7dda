// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package config

// pkg/crypto/base58 codec configs.
type codecConfiguration struct {
	// Alphabet is a built-in alphabet name or the symbols of a custom one.
	Alphabet string
	Autofix  bool
	// Hash names the checksum digest, see pkg/crypto/hash.
	Hash string
}

type loggerConfiguration struct {
	Level  string
	Output string
	Format string
}
