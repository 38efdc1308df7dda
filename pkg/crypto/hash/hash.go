// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package hash

import (
	"crypto/sha256"
	"hash"
	"sort"

	"github.com/pkg/errors"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// Digest maps a payload to a fixed length hash. Checksums are taken from
// the first bytes of a Digest.
type Digest func([]byte) []byte

// Names of the digests available through Lookup.
const (
	DoubleSha256Name  = "sha256d"
	DoubleSha3256Name = "sha3d"
	Blake2b256Name    = "blake2b"
)

// ErrUnknownDigest is returned by Lookup for an unregistered name.
var ErrUnknownDigest = errors.New("unknown digest")

var digests = map[string]Digest{
	DoubleSha256Name:  DoubleSha256,
	DoubleSha3256Name: DoubleSha3256,
	Blake2b256Name:    Blake2b256,
}

// PerformHash takes a generic hash.Hash and returns the hashed payload
func PerformHash(H hash.Hash, bs []byte) ([]byte, error) {
	_, err := H.Write(bs)
	if err != nil {
		return nil, err
	}
	return H.Sum(nil), err
}

// DoubleSha256 returns sha256(sha256(bs)), the Bitcoin checksum digest.
func DoubleSha256(bs []byte) []byte {
	return double(sha256.New, bs)
}

// DoubleSha3256 returns sha3-256(sha3-256(bs)).
func DoubleSha3256(bs []byte) []byte {
	return double(sha3.New256, bs)
}

// double hashes bs twice with fresh hashes from newHash. hash.Hash never
// fails to Write.
func double(newHash func() hash.Hash, bs []byte) []byte {
	first, _ := PerformHash(newHash(), bs)
	second, _ := PerformHash(newHash(), first)
	return second
}

// Blake2b256 returns the 32 byte BLAKE2b digest of bs.
func Blake2b256(bs []byte) []byte {
	sum := blake2b.Sum256(bs)
	return sum[:]
}

// Lookup returns the Digest registered under name.
func Lookup(name string) (Digest, error) {
	d, ok := digests[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownDigest, "%q (available: %v)", name, Names())
	}
	return d, nil
}

// Names lists the registered digest names in lexical order.
func Names() []string {
	names := make([]string, 0, len(digests))
	for name := range digests {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
