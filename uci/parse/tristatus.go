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

	"github.com/brighamskarda/ucicodec/uci"
	"github.com/brighamskarda/ucicodec/warn"
)

// TriStatusError is reported while parsing a "copyprotection"/"registration"
// status word.
type TriStatusError struct {
	Eol bool
	Tok string
}

func (e TriStatusError) Error() string {
	if e.Eol {
		return "unexpected end of line"
	}
	return fmt.Sprintf("unexpected token: %s (expected \"ok\", \"checking\" or \"error\")", e.Tok)
}

// ParseTriStatus parses "ok", "checking", or "error".
func ParseTriStatus(c *Cursor, warn_ warn.Sink[TriStatusError]) (uci.TriStatus, bool) {
	tok, ok := NextWarn(c, warn_, TriStatusError{Eol: true})
	if !ok {
		return 0, false
	}
	switch tok.String() {
	case "ok":
		return uci.TriStatusOk, true
	case "checking":
		return uci.TriStatusChecking, true
	case "error":
		return uci.TriStatusError, true
	default:
		warn_.Warn(TriStatusError{Tok: tok.String()})
		return 0, false
	}
}

// FmtTriStatus writes the status as a single token.
func FmtTriStatus(s uci.TriStatus, w uci.PushTokens) {
	w.PushToken(s.String())
}
