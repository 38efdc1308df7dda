// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

// Package base58 implements Base58 and Base58Check encodings over arbitrary
// alphabets. Leading zero bytes are kept as leading pad symbols, so
// Decode(Encode(b)) returns b byte for byte.
//
// The package level functions use BitcoinAlphabet. A Codec carries any
// other alphabet along with the autofix decode mode and the checksum digest.
package base58

import (
	"math/big"
	"unicode/utf8"

	"github.com/dusk-network/dusk-base58/pkg/crypto/hash"
)

// StdEncoding is the Bitcoin Base58 codec used by the package level
// functions.
var StdEncoding = NewCodec(BitcoinAlphabet)

// Codec encodes and decodes with a fixed alphabet. It is immutable and safe
// for concurrent use.
type Codec struct {
	alphabet *Alphabet
	autofix  bool
	checksum hash.Digest
}

// Option configures a Codec.
type Option func(*Codec)

// WithAutofix makes decoding accept symbols from the groups {0, O, o} and
// {I, l, 1} in place of the single group member present in the alphabet.
func WithAutofix(autofix bool) Option {
	return func(c *Codec) {
		c.autofix = autofix
	}
}

// WithChecksum replaces the double SHA-256 digest of the Check functions.
// The digest must return at least 4 bytes.
func WithChecksum(d hash.Digest) Option {
	return func(c *Codec) {
		if d != nil {
			c.checksum = d
		}
	}
}

// NewCodec returns a Codec for alphabet a, or for BitcoinAlphabet if a is
// nil.
func NewCodec(a *Alphabet, opts ...Option) *Codec {
	if a == nil {
		a = BitcoinAlphabet
	}

	c := &Codec{
		alphabet: a,
		checksum: hash.DoubleSha256,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Alphabet returns the codec's alphabet.
func (c *Codec) Alphabet() *Alphabet {
	return c.alphabet
}

// Encode returns the text of b. Every leading zero byte becomes one pad
// symbol. An empty b encodes to "".
func (c *Codec) Encode(b []byte) string {
	zeros := 0
	for zeros < len(b) && b[zeros] == 0 {
		zeros++
	}

	digits := toDigits(new(big.Int).SetBytes(b[zeros:]), c.alphabet.Len())

	out := make([]byte, zeros+len(digits))
	for i := 0; i < zeros; i++ {
		out[i] = c.alphabet.Pad()
	}
	c.translate(out[zeros:], digits)

	return string(out)
}

// EncodeInt returns the digits of n. Zero encodes to the pad symbol when
// defaultOne is set and to "" otherwise. EncodeInt panics if n is negative.
func (c *Codec) EncodeInt(n *big.Int, defaultOne bool) string {
	switch n.Sign() {
	case -1:
		panic("base58: negative integer")
	case 0:
		if defaultOne {
			return string([]byte{c.alphabet.Pad()})
		}
		return ""
	}

	digits := toDigits(n, c.alphabet.Len())
	out := make([]byte, len(digits))
	c.translate(out, digits)
	return string(out)
}

// Decode returns the bytes of text s. Every leading pad symbol becomes one
// zero byte.
func (c *Codec) Decode(s string) ([]byte, error) {
	if err := c.checkInputType(s); err != nil {
		return nil, err
	}
	return c.decode([]byte(s))
}

// DecodeBytes is Decode for text held in a byte slice, such as the
// contents of a file.
func (c *Codec) DecodeBytes(b []byte) ([]byte, error) {
	return c.decode(b)
}

// DecodeInt returns the integer of text s.
func (c *Codec) DecodeInt(s string) (*big.Int, error) {
	if err := c.checkInputType(s); err != nil {
		return nil, err
	}
	return c.decodeInt(c.trim([]byte(s)), 0)
}

func (c *Codec) decode(in []byte) ([]byte, error) {
	in = c.trim(in)

	// Autofix may map more than the pad itself to digit zero.
	m := getDecodeMap(c.alphabet, c.autofix)
	zeros := 0
	for zeros < len(in) && m[in[zeros]] == 0 {
		zeros++
	}

	n, err := c.decodeInt(in[zeros:], zeros)
	if err != nil {
		return nil, err
	}

	mag := n.Bytes()
	out := make([]byte, zeros+len(mag))
	copy(out[zeros:], mag)
	return out, nil
}

// decodeInt maps in to digit values and accumulates them. offset is the
// position of in[0] within the caller's input.
func (c *Codec) decodeInt(in []byte, offset int) (*big.Int, error) {
	m := getDecodeMap(c.alphabet, c.autofix)

	digits := make([]byte, len(in))
	for i, ch := range in {
		v := m[ch]
		if v < 0 {
			return nil, &CharacterError{Char: ch, Pos: offset + i}
		}
		digits[i] = byte(v)
	}

	return fromDigits(digits, c.alphabet.Len()), nil
}

func (c *Codec) translate(dst, digits []byte) {
	for i, d := range digits {
		dst[i] = c.alphabet.symbols[d]
	}
}

// trim drops trailing whitespace unless whitespace is part of the alphabet.
func (c *Codec) trim(in []byte) []byte {
	if c.alphabet.space {
		return in
	}
	for len(in) > 0 && isSpace(in[len(in)-1]) {
		in = in[:len(in)-1]
	}
	return in
}

// checkInputType rejects multi-byte code points when every symbol of the
// alphabet is ASCII. Stray non UTF-8 bytes are left to the symbol lookup.
func (c *Codec) checkInputType(s string) error {
	if !c.alphabet.ascii {
		return nil
	}

	for i := 0; i < len(s); {
		if s[i] < utf8.RuneSelf {
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if size > 1 {
			return &InputTypeError{Rune: r, Pos: i}
		}
		i++
	}
	return nil
}

// Encode encodes b with BitcoinAlphabet.
func Encode(b []byte) string {
	return StdEncoding.Encode(b)
}

// Decode decodes s with BitcoinAlphabet.
func Decode(s string) ([]byte, error) {
	return StdEncoding.Decode(s)
}

// DecodeBytes decodes the text in b with BitcoinAlphabet.
func DecodeBytes(b []byte) ([]byte, error) {
	return StdEncoding.DecodeBytes(b)
}

// EncodeInt encodes n with BitcoinAlphabet.
func EncodeInt(n *big.Int, defaultOne bool) string {
	return StdEncoding.EncodeInt(n, defaultOne)
}

// DecodeInt decodes s with BitcoinAlphabet.
func DecodeInt(s string) (*big.Int, error) {
	return StdEncoding.DecodeInt(s)
}
