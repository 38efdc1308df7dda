// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package base58

import (
	"strings"

	"github.com/pkg/errors"
)

const (
	btc = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"
	xrp = "rpshnaf39wBUDNEGHJKLM4PQRST7VWXYZ2bcdeCg65jkm8oFqi1tuvAxyz"

	minAlphabetLen = 2
	maxAlphabetLen = 256
)

var (
	// BitcoinAlphabet is the alphabet used by Bitcoin addresses. It leaves
	// out 0, O, I and l.
	BitcoinAlphabet = MustAlphabet(btc)
	// RippleAlphabet is the alphabet used by XRP ledger addresses.
	RippleAlphabet = MustAlphabet(xrp)
	// XRPAlphabet is an alias of RippleAlphabet.
	XRPAlphabet = RippleAlphabet
)

var namedAlphabets = map[string]*Alphabet{
	"bitcoin": BitcoinAlphabet,
	"btc":     BitcoinAlphabet,
	"ripple":  RippleAlphabet,
	"xrp":     XRPAlphabet,
}

// Alphabet is an ordered set of distinct single byte symbols. The position
// of a symbol is its digit value and the symbol at position 0 doubles as
// the padding for leading zero bytes.
type Alphabet struct {
	symbols string
	ascii   bool
	space   bool
}

// NewAlphabet validates s and returns it as an Alphabet. s must hold
// between 2 and 256 distinct bytes.
func NewAlphabet(s string) (*Alphabet, error) {
	if len(s) < minAlphabetLen || len(s) > maxAlphabetLen {
		return nil, errors.Wrapf(ErrInvalidAlphabet, "length %d not in [%d, %d]", len(s), minAlphabetLen, maxAlphabetLen)
	}

	var seen [256]bool
	a := &Alphabet{symbols: s, ascii: true}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if seen[c] {
			return nil, errors.Wrapf(ErrInvalidAlphabet, "duplicate symbol %q at position %d", c, i)
		}
		seen[c] = true

		if c >= 0x80 {
			a.ascii = false
		}
		if isSpace(c) {
			a.space = true
		}
	}

	return a, nil
}

// MustAlphabet is like NewAlphabet but panics on an invalid alphabet. It is
// meant for package level constants.
func MustAlphabet(s string) *Alphabet {
	a, err := NewAlphabet(s)
	if err != nil {
		panic(err)
	}
	return a
}

// LookupAlphabet returns a built-in alphabet by its case insensitive name
// ("bitcoin", "btc", "ripple" or "xrp").
func LookupAlphabet(name string) (*Alphabet, bool) {
	a, ok := namedAlphabets[strings.ToLower(name)]
	return a, ok
}

// Len returns the base N of the alphabet.
func (a *Alphabet) Len() int {
	return len(a.symbols)
}

// Pad returns the zero digit symbol.
func (a *Alphabet) Pad() byte {
	return a.symbols[0]
}

// Symbol returns the symbol for digit value i.
func (a *Alphabet) Symbol(i int) byte {
	return a.symbols[i]
}

// Contains reports whether c is one of the alphabet's symbols.
func (a *Alphabet) Contains(c byte) bool {
	return strings.IndexByte(a.symbols, c) >= 0
}

func (a *Alphabet) String() string {
	return a.symbols
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
