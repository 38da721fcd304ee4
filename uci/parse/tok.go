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

// Package parse holds every UCI command/message subparser and their
// canonical formatters, one file per concern. Every subparser follows the
// same shape: it consumes tokens from a *Cursor, reports anomalies through
// a warn.Sink instead of returning an error, and makes the most permissive
// locally-recoverable choice it can rather than aborting the whole line.
package parse

import (
	"github.com/brighamskarda/ucicodec/uci"
	"github.com/brighamskarda/ucicodec/warn"
)

// EolError is reported whenever a subparser needs another token but the
// line has already run out.
type EolError struct{}

func (EolError) Error() string { return "unexpected end of line" }

// Cursor walks a token slice left to right. It never panics: Next and Peek
// report exhaustion by returning ("", false).
type Cursor struct {
	tokens []uci.Token
}

// NewCursor wraps tokens for parsing.
func NewCursor(tokens []uci.Token) *Cursor { return &Cursor{tokens: tokens} }

// Next pops and returns the next token, or ("", false) at end of line.
func (c *Cursor) Next() (uci.Token, bool) {
	if len(c.tokens) == 0 {
		return "", false
	}
	tok := c.tokens[0]
	c.tokens = c.tokens[1:]
	return tok, true
}

// Peek returns the next token without consuming it.
func (c *Cursor) Peek() (uci.Token, bool) {
	if len(c.tokens) == 0 {
		return "", false
	}
	return c.tokens[0], true
}

// Rest returns every remaining token without consuming them.
func (c *Cursor) Rest() []uci.Token { return c.tokens }

// Empty reports whether the cursor has been fully consumed.
func (c *Cursor) Empty() bool { return len(c.tokens) == 0 }

// TrySplit scans the remaining tokens for mid, splitting them into
// everything before it and everything after it (returned as a fresh
// cursor), or reports found=false if mid never appears. It never consumes
// from c in either case; callers that are done with c clear it themselves.
func (c *Cursor) TrySplit(mid string) (left []uci.Token, right *Cursor, found bool) {
	for i, tok := range c.tokens {
		if tok.String() == mid {
			left = c.tokens[:i]
			right = NewCursor(c.tokens[i+1:])
			return left, right, true
		}
	}
	return nil, nil, false
}

// NextWarn pops the next token, warning onEol and returning false at end
// of line.
func NextWarn[E error](c *Cursor, warn_ warn.Sink[E], onEol E) (uci.Token, bool) {
	tok, ok := c.Next()
	if !ok {
		warn_.Warn(onEol)
		return "", false
	}
	return tok, true
}

// Expect consumes the next token and warns onMismatch (and returns false)
// unless it equals expected exactly.
func Expect[E error](c *Cursor, expected string, warn_ warn.Sink[E], onMismatch E) bool {
	tok, ok := c.Next()
	if !ok || tok.String() != expected {
		warn_.Warn(onMismatch)
		return false
	}
	return true
}
