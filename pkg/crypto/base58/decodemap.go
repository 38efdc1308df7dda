// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package base58

import (
	"strings"

	"github.com/patrickmn/go-cache"
)

// Symbols that are easily mistaken for one another. When exactly one member
// of a group belongs to an alphabet, autofix decodes the whole group as that
// member.
var autofixGroups = []string{"0Oo", "Il1"}

// decodeMap maps a symbol to its digit value, or -1 for symbols outside the
// alphabet.
type decodeMap [256]int16

// Decode maps are pure functions of (alphabet, autofix) and never expire.
// A race between two builders of the same map stores equal values.
var decodeMaps = cache.New(cache.NoExpiration, 0)

func decodeMapKey(a *Alphabet, autofix bool) string {
	if autofix {
		return "f" + a.symbols
	}
	return "s" + a.symbols
}

// getDecodeMap returns the cached decode map of (a, autofix), building and
// publishing it on first use.
func getDecodeMap(a *Alphabet, autofix bool) *decodeMap {
	key := decodeMapKey(a, autofix)
	if m, found := decodeMaps.Get(key); found {
		return m.(*decodeMap)
	}

	m := buildDecodeMap(a, autofix)
	decodeMaps.SetDefault(key, m)
	return m
}

func buildDecodeMap(a *Alphabet, autofix bool) *decodeMap {
	m := new(decodeMap)
	for i := range m {
		m[i] = -1
	}
	for i := 0; i < len(a.symbols); i++ {
		m[a.symbols[i]] = int16(i)
	}

	if !autofix {
		return m
	}

	for _, group := range autofixGroups {
		pivot := -1
		pivots := 0
		for i := 0; i < len(group); i++ {
			if idx := strings.IndexByte(a.symbols, group[i]); idx >= 0 {
				pivot = idx
				pivots++
			}
		}

		if pivots != 1 {
			continue
		}
		for i := 0; i < len(group); i++ {
			m[group[i]] = int16(pivot)
		}
	}

	return m
}
