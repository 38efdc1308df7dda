// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package base58

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeMap(t *testing.T) {
	m := buildDecodeMap(BitcoinAlphabet, false)
	for i := 0; i < BitcoinAlphabet.Len(); i++ {
		assert.Equal(t, int16(i), m[BitcoinAlphabet.Symbol(i)])
	}
	for _, c := range []byte("0OIl+ \n") {
		assert.Equal(t, int16(-1), m[c], "%q", c)
	}
}

func TestDecodeMapAutofix(t *testing.T) {
	m := buildDecodeMap(BitcoinAlphabet, true)

	one := m['1']
	assert.Equal(t, int16(0), one)
	assert.Equal(t, one, m['I'])
	assert.Equal(t, one, m['l'])

	o := m['o']
	assert.NotEqual(t, int16(-1), o)
	assert.Equal(t, o, m['O'])
	assert.Equal(t, o, m['0'])

	// Digits are the only group members of a numeric alphabet.
	numeric := buildDecodeMap(MustAlphabet("0123456789"), true)
	assert.Equal(t, int16(0), numeric['O'])
	assert.Equal(t, int16(0), numeric['o'])
	assert.Equal(t, int16(1), numeric['I'])
	assert.Equal(t, int16(1), numeric['l'])

	// Base45 holds 0, O, I and 1, so nothing folds.
	b45 := buildDecodeMap(MustAlphabet(base45), true)
	assert.Equal(t, int16(-1), b45['o'])
	assert.Equal(t, int16(-1), b45['l'])
}

func TestDecodeMapCache(t *testing.T) {
	alph := randAlphabet()

	var wg sync.WaitGroup
	maps := make([]*decodeMap, 16)
	for i := range maps {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			maps[i] = getDecodeMap(alph, i%2 == 0)
		}(i)
	}
	wg.Wait()

	strict := buildDecodeMap(alph, false)
	fixed := buildDecodeMap(alph, true)
	for i, m := range maps {
		if i%2 == 0 {
			assert.Equal(t, *fixed, *m)
		} else {
			assert.Equal(t, *strict, *m)
		}
	}

	// Once published, later lookups share the cached map.
	assert.True(t, getDecodeMap(alph, false) == getDecodeMap(alph, false))
	assert.NotEqual(t, decodeMapKey(alph, false), decodeMapKey(alph, true))
}
