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

package parse

import (
	"fmt"
	"strconv"

	"github.com/brighamskarda/ucicodec/uci"
	"github.com/brighamskarda/ucicodec/warn"
)

// OptBodyErrorKind discriminates OptBodyError.
type OptBodyErrorKind uint8

const (
	OptBodyUnexpectedToken OptBodyErrorKind = iota
	OptBodyUnexpectedEol
	OptBodyExtraToken
	OptBodyUnknownType
	OptBodyExpectedToken
	OptBodyExpectedBool
	OptBodyBadInteger
	OptBodyBadComboDefaultVar
	OptBodyBadComboVar
)

// OptBodyError is reported while parsing an "option ... type ..." body.
type OptBodyError struct {
	Kind     OptBodyErrorKind
	Tok      string
	Expected string
	Pos      int
	Err      error
}

func (e OptBodyError) Error() string {
	switch e.Kind {
	case OptBodyUnexpectedToken:
		return fmt.Sprintf("unexpected token: %s", e.Tok)
	case OptBodyUnexpectedEol:
		return "unexpected end of line"
	case OptBodyExtraToken:
		return fmt.Sprintf("extra token: %s", e.Tok)
	case OptBodyUnknownType:
		return fmt.Sprintf("unknown type %q", e.Tok)
	case OptBodyExpectedToken:
		return fmt.Sprintf("expected %q token", e.Expected)
	case OptBodyExpectedBool:
		return `expected "true" or "false" token`
	case OptBodyBadInteger:
		return fmt.Sprintf("cannot parse integer: %s", e.Err)
	case OptBodyBadComboDefaultVar:
		return fmt.Sprintf("cannot convert string to default combo variant: %s", e.Err)
	case OptBodyBadComboVar:
		return fmt.Sprintf("cannot convert string to combo variant %d: %s", e.Pos+1, e.Err)
	default:
		return "invalid option body"
	}
}

func (e OptBodyError) Unwrap() error { return e.Err }

func expectKw(c *Cursor, kw string, warn_ warn.Sink[OptBodyError]) bool {
	tok, ok := c.Next()
	if !ok || tok.String() != kw {
		warn_.Warn(OptBodyError{Kind: OptBodyExpectedToken, Expected: kw})
		return false
	}
	return true
}

func parseInt64Tok(c *Cursor, warn_ warn.Sink[OptBodyError]) (int64, bool) {
	tok, ok := c.Next()
	if !ok {
		warn_.Warn(OptBodyError{Kind: OptBodyUnexpectedEol})
		return 0, false
	}
	v, err := strconv.ParseInt(tok.String(), 10, 64)
	if err != nil {
		warn_.Warn(OptBodyError{Kind: OptBodyBadInteger, Err: err})
		return 0, false
	}
	return v, true
}

// ParseOptBody parses the "type ..." payload of an "option" message: check,
// spin, combo, button, or string. Any tokens left over once the recognized
// shape has been consumed are reported as OptBodyExtraToken, one warning
// per line (not per token).
func ParseOptBody(c *Cursor, warn_ warn.Sink[OptBodyError]) (uci.OptBody, bool) {
	result, ok := parseOptBodyInner(c, warn_)
	if !c.Empty() {
		rest, _ := c.Peek()
		warn_.Warn(OptBodyError{Kind: OptBodyExtraToken, Tok: rest.String()})
	}
	return result, ok
}

func parseOptBodyInner(c *Cursor, warn_ warn.Sink[OptBodyError]) (uci.OptBody, bool) {
	kindTok, ok := c.Next()
	if !ok {
		warn_.Warn(OptBodyError{Kind: OptBodyUnexpectedEol})
		return uci.OptBody{}, false
	}
	switch kindTok.String() {
	case "check":
		if !expectKw(c, "default", warn_) {
			return uci.OptBody{}, false
		}
		valTok, ok := c.Next()
		if !ok {
			warn_.Warn(OptBodyError{Kind: OptBodyUnexpectedEol})
			return uci.OptBody{}, false
		}
		var value bool
		switch valTok.String() {
		case "true":
			value = true
		case "false":
			value = false
		default:
			warn_.Warn(OptBodyError{Kind: OptBodyExpectedBool})
			return uci.OptBody{}, false
		}
		return uci.OptBodyCheckOf(value), true
	case "spin":
		if !expectKw(c, "default", warn_) {
			return uci.OptBody{}, false
		}
		def, ok := parseInt64Tok(c, warn_)
		if !ok {
			return uci.OptBody{}, false
		}
		if !expectKw(c, "min", warn_) {
			return uci.OptBody{}, false
		}
		min, ok := parseInt64Tok(c, warn_)
		if !ok {
			return uci.OptBody{}, false
		}
		if !expectKw(c, "max", warn_) {
			return uci.OptBody{}, false
		}
		max, ok := parseInt64Tok(c, warn_)
		if !ok {
			return uci.OptBody{}, false
		}
		return uci.OptBodySpinOf(def, min, max), true
	case "combo":
		if !expectKw(c, "default", warn_) {
			return uci.OptBody{}, false
		}
		groups := splitOnVar(c.Rest())
		c.tokens = nil
		if len(groups) == 0 {
			warn_.Warn(OptBodyError{Kind: OptBodyUnexpectedEol})
			return uci.OptBody{}, false
		}
		def, err := uci.NewOptComboVarFromTokens(groups[0])
		if err != nil {
			warn_.Warn(OptBodyError{Kind: OptBodyBadComboDefaultVar, Err: err})
			return uci.OptBody{}, false
		}
		var vars []uci.OptComboVar
		for i, g := range groups[1:] {
			v, err := uci.NewOptComboVarFromTokens(g)
			if err != nil {
				warn_.Warn(OptBodyError{Kind: OptBodyBadComboVar, Pos: i, Err: err})
				continue
			}
			vars = append(vars, v)
		}
		return uci.OptBodyComboOf(def, vars), true
	case "button":
		return uci.OptBodyButtonOf(), true
	case "string":
		if !expectKw(c, "default", warn_) {
			return uci.OptBody{}, false
		}
		s, _ := uci.NewUciStringFromTokens(c.Rest())
		c.tokens = nil
		return uci.OptBodyStringOf(s), true
	default:
		warn_.Warn(OptBodyError{Kind: OptBodyUnknownType, Tok: kindTok.String()})
		return uci.OptBody{}, false
	}
}

// splitOnVar splits tokens on every occurrence of the literal "var",
// mirroring Rust's slice::split: an empty input yields one empty group.
func splitOnVar(tokens []uci.Token) [][]uci.Token {
	groups := [][]uci.Token{nil}
	for _, tok := range tokens {
		if tok.String() == "var" {
			groups = append(groups, nil)
			continue
		}
		last := len(groups) - 1
		groups[last] = append(groups[last], tok)
	}
	return groups
}

// FmtOptBody writes the "type ..." payload back onto the wire.
func FmtOptBody(body uci.OptBody, w uci.PushTokens) {
	switch body.Kind {
	case uci.OptBodyCheck:
		w.PushToken("check")
		w.PushToken("default")
		w.PushToken(strconv.FormatBool(body.CheckDefault))
	case uci.OptBodySpin:
		w.PushToken("spin")
		w.PushToken("default")
		w.PushToken(strconv.FormatInt(body.SpinDefault, 10))
		w.PushToken("min")
		w.PushToken(strconv.FormatInt(body.SpinMin, 10))
		w.PushToken("max")
		w.PushToken(strconv.FormatInt(body.SpinMax, 10))
	case uci.OptBodyCombo:
		w.PushToken("combo")
		w.PushToken("default")
		body.ComboDefault.PushTokens(w)
		for _, v := range body.ComboVars {
			w.PushToken("var")
			v.PushTokens(w)
		}
	case uci.OptBodyButton:
		w.PushToken("button")
	case uci.OptBodyString:
		w.PushToken("string")
		w.PushToken("default")
		body.StringDefault.PushTokens(w)
	}
}
