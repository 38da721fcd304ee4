// Copyright (C) 2025 Brigham Skarda

// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.

// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.

// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package uci

import (
	"fmt"
	"strings"
)

// BadTokenError reports that a typed string's body contained one of its
// reserved tokens. UCI has no quoting, so these types exist purely to keep
// free-form payloads from swallowing the keyword that is supposed to
// terminate them.
type BadTokenError struct {
	Token string
}

func (e *BadTokenError) Error() string {
	return fmt.Sprintf("string contains bad token %q", e.Token)
}

func joinTokens(tokens []Token, reserved []string) (string, error) {
	var b strings.Builder
	for i, tok := range tokens {
		s := tok.String()
		for _, bad := range reserved {
			if s == bad {
				return "", &BadTokenError{Token: bad}
			}
		}
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(s)
	}
	return b.String(), nil
}

// UciString is a free-form trailing payload: any sequence of tokens, none
// of which need to be reserved, compared case-sensitively. It may be empty.
type UciString struct{ value string }

// NewUciStringFromTokens validates tokens and builds a UciString from them.
func NewUciStringFromTokens(tokens []Token) (UciString, error) {
	s, err := joinTokens(tokens, nil)
	if err != nil {
		return UciString{}, err
	}
	return UciString{value: s}, nil
}

// NewUciString re-tokenizes s and validates the result.
func NewUciString(s string) (UciString, error) {
	return NewUciStringFromTokens(Tokenize(s))
}

func (u UciString) String() string { return u.value }

// PushTokens implements MultiTokenSafe.
func (u UciString) PushTokens(w PushTokens) {
	if u.value == "" {
		return
	}
	for _, tok := range strings.Fields(u.value) {
		w.PushToken(tok)
	}
}

// RegisterName is a UciString variant that may not contain the reserved
// token "code" (which terminates it in "register name ... code ...").
// Compared case-sensitively.
type RegisterName struct{ value string }

var registerNameReserved = []string{"code"}

func NewRegisterNameFromTokens(tokens []Token) (RegisterName, error) {
	s, err := joinTokens(tokens, registerNameReserved)
	if err != nil {
		return RegisterName{}, err
	}
	return RegisterName{value: s}, nil
}

func NewRegisterName(s string) (RegisterName, error) {
	return NewRegisterNameFromTokens(Tokenize(s))
}

func (r RegisterName) String() string { return r.value }

func (r RegisterName) PushTokens(w PushTokens) {
	for _, tok := range strings.Fields(r.value) {
		w.PushToken(tok)
	}
}

// OptName is a UciString variant that may not contain the reserved tokens
// "type" or "value" and compares case-insensitively (ASCII).
type OptName struct{ value string }

var optNameReserved = []string{"type", "value"}

func NewOptNameFromTokens(tokens []Token) (OptName, error) {
	s, err := joinTokens(tokens, optNameReserved)
	if err != nil {
		return OptName{}, err
	}
	return OptName{value: s}, nil
}

func NewOptName(s string) (OptName, error) {
	return NewOptNameFromTokens(Tokenize(s))
}

func (o OptName) String() string { return o.value }

func (o OptName) PushTokens(w PushTokens) {
	for _, tok := range strings.Fields(o.value) {
		w.PushToken(tok)
	}
}

// Equal compares o and other ignoring ASCII case, per spec.
func (o OptName) Equal(other OptName) bool {
	return strings.EqualFold(o.value, other.value)
}

// Lower returns the ASCII-lowercased body, used for ordering/hashing keys.
func (o OptName) Lower() string { return strings.ToLower(o.value) }

// OptComboVar is a UciString variant that may not contain the reserved token
// "var" and compares case-insensitively (ASCII).
type OptComboVar struct{ value string }

var optComboVarReserved = []string{"var"}

func NewOptComboVarFromTokens(tokens []Token) (OptComboVar, error) {
	s, err := joinTokens(tokens, optComboVarReserved)
	if err != nil {
		return OptComboVar{}, err
	}
	return OptComboVar{value: s}, nil
}

func NewOptComboVar(s string) (OptComboVar, error) {
	return NewOptComboVarFromTokens(Tokenize(s))
}

func (v OptComboVar) String() string { return v.value }

func (v OptComboVar) PushTokens(w PushTokens) {
	for _, tok := range strings.Fields(v.value) {
		w.PushToken(tok)
	}
}

func (v OptComboVar) Equal(other OptComboVar) bool {
	return strings.EqualFold(v.value, other.value)
}

func (v OptComboVar) Lower() string { return strings.ToLower(v.value) }

var (
	_ MultiTokenSafe = UciString{}
	_ MultiTokenSafe = RegisterName{}
	_ MultiTokenSafe = OptName{}
	_ MultiTokenSafe = OptComboVar{}
)
