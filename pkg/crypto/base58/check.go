// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package base58

import (
	"bytes"
)

// ChecksumLen is the size of the suffix appended by CheckEncode.
const ChecksumLen = 4

// CheckEncode appends the first ChecksumLen bytes of the digest of payload
// and encodes the result.
func (c *Codec) CheckEncode(payload []byte) string {
	buf := make([]byte, 0, len(payload)+ChecksumLen)
	buf = append(buf, payload...)
	buf = append(buf, c.checksum(payload)[:ChecksumLen]...)
	return c.Encode(buf)
}

// CheckDecode decodes s, verifies and strips the checksum suffix.
func (c *Codec) CheckDecode(s string) ([]byte, error) {
	raw, err := c.Decode(s)
	if err != nil {
		return nil, err
	}
	return c.verify(raw)
}

// CheckDecodeBytes is CheckDecode for text held in a byte slice.
func (c *Codec) CheckDecodeBytes(b []byte) ([]byte, error) {
	raw, err := c.DecodeBytes(b)
	if err != nil {
		return nil, err
	}
	return c.verify(raw)
}

func (c *Codec) verify(raw []byte) ([]byte, error) {
	if len(raw) < ChecksumLen {
		return nil, ErrChecksumMismatch
	}

	payload, check := raw[:len(raw)-ChecksumLen], raw[len(raw)-ChecksumLen:]
	if !bytes.Equal(c.checksum(payload)[:ChecksumLen], check) {
		return nil, ErrChecksumMismatch
	}
	return payload, nil
}

// CheckEncode checksums and encodes payload with BitcoinAlphabet.
func CheckEncode(payload []byte) string {
	return StdEncoding.CheckEncode(payload)
}

// CheckDecode decodes and verifies s with BitcoinAlphabet.
func CheckDecode(s string) ([]byte, error) {
	return StdEncoding.CheckDecode(s)
}
