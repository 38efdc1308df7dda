// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package hash

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/sha3"
)

func randomMessage(size int) []byte {
	msg := make([]byte, size)
	_, _ = rand.Read(msg)
	return msg
}

func TestDoubleSha256(t *testing.T) {
	// First four bytes are the Base58Check suffix of "hello world".
	sum := DoubleSha256([]byte("hello world"))
	assert.Len(t, sum, 32)
	assert.Equal(t, "bc62d4b8", hex.EncodeToString(sum[:4]))

	single := sha256.Sum256([]byte("hello world"))
	assert.Equal(t, "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9", hex.EncodeToString(single[:]))
	second := sha256.Sum256(single[:])
	assert.Equal(t, second[:], sum)
}

func TestPerformHash(t *testing.T) {
	msg := randomMessage(32)
	out, err := PerformHash(sha256.New(), msg)
	require.NoError(t, err)

	want := sha256.Sum256(msg)
	assert.Equal(t, want[:], out)
}

func TestDoubleSha3256(t *testing.T) {
	msg := randomMessage(64)
	first := sha3.Sum256(msg)
	second := sha3.Sum256(first[:])

	assert.Equal(t, second[:], DoubleSha3256(msg))
}

func TestBlake2b256(t *testing.T) {
	assert.Equal(t,
		"0e5751c026e543b2e8ab2eb06099daa1d1e5df47778f7787faab45cdf12fe3a8",
		hex.EncodeToString(Blake2b256(nil)))
}

func TestLookup(t *testing.T) {
	for _, name := range Names() {
		d, err := Lookup(name)
		require.NoError(t, err)
		assert.NotEmpty(t, d([]byte("payload")))
	}

	_, err := Lookup("md5")
	assert.True(t, errors.Is(err, ErrUnknownDigest))
}

func BenchmarkDoubleSha256(b *testing.B) {

	testBytes := randomMessage(32)

	for i := 0; i < b.N; i++ {
		_ = DoubleSha256(testBytes)
	}
}

func BenchmarkDoubleSha3(b *testing.B) {

	testBytes := randomMessage(32)

	for i := 0; i < b.N; i++ {
		_ = DoubleSha3256(testBytes)
	}
}
