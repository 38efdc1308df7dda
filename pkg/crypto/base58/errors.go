// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package base58

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidCharacter is matched by errors for input symbols that are
	// neither in the alphabet nor resolvable through autofix.
	ErrInvalidCharacter = errors.New("invalid character")
	// ErrChecksumMismatch is returned when a checksummed text does not
	// verify.
	ErrChecksumMismatch = errors.New("invalid checksum")
	// ErrInvalidInputType is matched by errors for text that can not be
	// read as a sequence of single byte symbols.
	ErrInvalidInputType = errors.New("invalid input type")
	// ErrInvalidAlphabet is returned by NewAlphabet.
	ErrInvalidAlphabet = errors.New("invalid alphabet")
)

// CharacterError reports the offending symbol of a failed decode and its
// index in the input.
type CharacterError struct {
	Char byte
	Pos  int
}

func (e *CharacterError) Error() string {
	if e.Char < 0x80 {
		return fmt.Sprintf("%s %q at position %d", ErrInvalidCharacter, e.Char, e.Pos)
	}
	return fmt.Sprintf("%s %#x at position %d", ErrInvalidCharacter, e.Char, e.Pos)
}

// Is makes CharacterError match ErrInvalidCharacter.
func (e *CharacterError) Is(target error) bool {
	return target == ErrInvalidCharacter
}

// InputTypeError reports a multi-byte code point in the input of an ASCII
// alphabet.
type InputTypeError struct {
	Rune rune
	Pos  int
}

func (e *InputTypeError) Error() string {
	return fmt.Sprintf("%s: multi-byte code point %q at position %d", ErrInvalidInputType, e.Rune, e.Pos)
}

// Is makes InputTypeError match ErrInvalidInputType.
func (e *InputTypeError) Is(target error) bool {
	return target == ErrInvalidInputType
}
