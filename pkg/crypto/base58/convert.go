// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package base58

import (
	"math"
	"math/big"
	"math/bits"
)

const (
	// Integers longer than this are split before conversion to digits.
	encodeSplitBits = 4096
	// Digit sequences longer than this are split before accumulation.
	decodeSplitDigits = 512
)

// converter turns non-negative integers into base N digit values and back.
// Digits are processed in chunks of leafDigits, the largest count whose
// value always fits in a uint64. A converter is not safe for concurrent use.
type converter struct {
	b          uint64
	base       *big.Int
	leafBase   *big.Int // base^leafDigits
	leafDigits int

	// powers[i] = leafBase^(2^i), which spans leafDigits<<i digits.
	powers []*big.Int
	// digitPowers[k] = base^(2^k).
	digitPowers []*big.Int
}

func newConverter(base int) *converter {
	b := uint64(base)
	lb, n := b, 1
	for lb <= math.MaxUint64/b {
		lb *= b
		n++
	}

	return &converter{
		b:          b,
		base:       new(big.Int).SetUint64(b),
		leafBase:   new(big.Int).SetUint64(lb),
		leafDigits: n,
	}
}

// toDigits returns the digits of x, most significant first, without leading
// zero digits. Zero has no digits. x is not modified.
func toDigits(x *big.Int, base int) []byte {
	if x.Sign() == 0 {
		return nil
	}

	c := newConverter(base)

	// base^n > x
	n := int(float64(x.BitLen())/math.Log2(float64(base))) + 2
	out := make([]byte, n)

	v := new(big.Int).Set(x)
	if v.BitLen() > encodeSplitBits {
		c.buildPowers(v)
		c.split(out, v)
	} else {
		c.fill(out, v)
	}

	i := 0
	for i < len(out) && out[i] == 0 {
		i++
	}
	return out[i:]
}

// fill writes the digits of x right aligned into out by repeated division.
// out must be zeroed and wide enough for x. x is consumed.
func (c *converter) fill(out []byte, x *big.Int) {
	r := new(big.Int)
	pos := len(out)
	for x.Sign() > 0 {
		x.QuoRem(x, c.leafBase, r)
		w := r.Uint64()
		for j := 0; j < c.leafDigits && pos > 0; j++ {
			pos--
			out[pos] = byte(w % c.b)
			w /= c.b
		}
	}
}

func (c *converter) buildPowers(x *big.Int) {
	c.powers = []*big.Int{c.leafBase}
	for {
		last := c.powers[len(c.powers)-1]
		next := new(big.Int).Mul(last, last)
		if next.Cmp(x) > 0 {
			return
		}
		c.powers = append(c.powers, next)
	}
}

// split divides x by the largest power p <= x of the table, so both the
// quotient and the remainder are below p, and converts them on their own.
// The remainder keeps exactly the digit width of p, leading zeros included.
func (c *converter) split(out []byte, x *big.Int) {
	if x.BitLen() <= encodeSplitBits {
		c.fill(out, x)
		return
	}

	i := len(c.powers) - 1
	for i >= 0 && c.powers[i].Cmp(x) > 0 {
		i--
	}
	if i < 0 {
		c.fill(out, x)
		return
	}

	width := c.leafDigits << uint(i)
	q, r := new(big.Int).QuoRem(x, c.powers[i], new(big.Int))

	c.split(out[:len(out)-width], q)
	c.split(out[len(out)-width:], r)
}

// fromDigits returns the integer whose base N digits, most significant
// first, are digits.
func fromDigits(digits []byte, base int) *big.Int {
	return newConverter(base).combine(digits)
}

// combine splits long digit sequences so the low part holds a power of two
// count of digits between a quarter and a half of the input, then returns
// high*base^len(low) + low.
func (c *converter) combine(digits []byte) *big.Int {
	if len(digits) <= decodeSplitDigits {
		return c.accumulate(digits)
	}

	k := bits.Len(uint(len(digits))) - 2
	lowLen := 1 << uint(k)

	high := c.combine(digits[:len(digits)-lowLen])
	low := c.combine(digits[len(digits)-lowLen:])

	high.Mul(high, c.digitPower(k))
	return high.Add(high, low)
}

// accumulate computes acc = acc*base + digit from left to right, one uint64
// chunk at a time.
func (c *converter) accumulate(digits []byte) *big.Int {
	acc := new(big.Int)
	chunk := new(big.Int)

	for len(digits) > 0 {
		n := c.leafDigits
		if n > len(digits) {
			n = len(digits)
		}

		var w uint64
		for _, d := range digits[:n] {
			w = w*c.b + uint64(d)
		}

		m := c.leafBase
		if n < c.leafDigits {
			m = new(big.Int).Exp(c.base, big.NewInt(int64(n)), nil)
		}

		acc.Mul(acc, m)
		acc.Add(acc, chunk.SetUint64(w))
		digits = digits[n:]
	}

	return acc
}

func (c *converter) digitPower(k int) *big.Int {
	for len(c.digitPowers) <= k {
		if len(c.digitPowers) == 0 {
			c.digitPowers = append(c.digitPowers, c.base)
			continue
		}
		last := c.digitPowers[len(c.digitPowers)-1]
		c.digitPowers = append(c.digitPowers, new(big.Int).Mul(last, last))
	}
	return c.digitPowers[k]
}
