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

// ScoreError is the error type reported while parsing a BoundedRelScore
// inside an "info score ..." item.
type ScoreError struct {
	Kind ScoreErrorKind
	Tok  string
	Err  error
}

type ScoreErrorKind uint8

const (
	ScoreUnexpectedToken ScoreErrorKind = iota
	ScoreUnexpectedEol
	ScoreBadInteger
	ScoreMateTooLarge
)

func (e ScoreError) Error() string {
	switch e.Kind {
	case ScoreUnexpectedToken:
		return fmt.Sprintf("unexpected token: %s", e.Tok)
	case ScoreUnexpectedEol:
		return "unexpected end of line"
	case ScoreBadInteger:
		return fmt.Sprintf("cannot parse integer: %s", e.Err)
	case ScoreMateTooLarge:
		return fmt.Sprintf("mate distance %s is too large to fit into constraints", e.Tok)
	default:
		return "invalid score"
	}
}

func (e ScoreError) Unwrap() error { return e.Err }

func parseUnboundedScore(c *Cursor, warn_ warn.Sink[ScoreError]) (uci.RelScore, bool) {
	tok, ok := NextWarn(c, warn_, ScoreError{Kind: ScoreUnexpectedEol})
	if !ok {
		return uci.RelScore{}, false
	}
	switch tok.String() {
	case "cp":
		valTok, ok := NextWarn(c, warn_, ScoreError{Kind: ScoreUnexpectedEol})
		if !ok {
			return uci.RelScore{}, false
		}
		v, err := strconv.ParseInt(valTok.String(), 10, 32)
		if err != nil {
			warn_.Warn(ScoreError{Kind: ScoreBadInteger, Err: err})
			return uci.RelScore{}, false
		}
		return uci.RelScoreCp(int32(v)), true
	case "mate":
		valTok, ok := NextWarn(c, warn_, ScoreError{Kind: ScoreUnexpectedEol})
		if !ok {
			return uci.RelScore{}, false
		}
		src, err := strconv.ParseInt(valTok.String(), 10, 64)
		if err != nil {
			warn_.Warn(ScoreError{Kind: ScoreBadInteger, Err: err})
			return uci.RelScore{}, false
		}
		abs := src
		if abs < 0 {
			abs = -abs
		}
		if abs > int64(^uint32(0)) {
			warn_.Warn(ScoreError{Kind: ScoreMateTooLarge, Tok: valTok.String()})
			return uci.RelScore{}, false
		}
		return uci.RelScoreMate(uint32(abs), src > 0), true
	default:
		warn_.Warn(ScoreError{Kind: ScoreUnexpectedToken, Tok: tok.String()})
		return uci.RelScore{}, false
	}
}

// ParseScore parses "cp <i32>" or "mate <i64>" followed optionally by
// "lowerbound"/"upperbound", defaulting to an exact bound.
func ParseScore(c *Cursor, warn_ warn.Sink[ScoreError]) (uci.BoundedRelScore, bool) {
	score, ok := parseUnboundedScore(c, warn_)
	if !ok {
		return uci.BoundedRelScore{}, false
	}
	bound := uci.BoundExact
	if next, ok := c.Peek(); ok {
		switch next.String() {
		case "lowerbound":
			c.Next()
			bound = uci.BoundLower
		case "upperbound":
			c.Next()
			bound = uci.BoundUpper
		}
	}
	return uci.BoundedRelScore{Score: score, Bound: bound}, true
}

func fmtUnboundedScore(src uci.RelScore, w uci.PushTokens) {
	if src.IsMate() {
		moves, win := src.Mate()
		signed := int64(moves)
		if !win {
			signed = -signed
		}
		w.PushToken("mate")
		w.PushToken(strconv.FormatInt(signed, 10))
		return
	}
	w.PushToken("cp")
	w.PushToken(strconv.FormatInt(int64(src.Cp()), 10))
}

// FmtScore writes a BoundedRelScore as "cp|mate <n> [lowerbound|upperbound]".
func FmtScore(src uci.BoundedRelScore, w uci.PushTokens) {
	fmtUnboundedScore(src.Score, w)
	switch src.Bound {
	case uci.BoundLower:
		w.PushToken("lowerbound")
	case uci.BoundUpper:
		w.PushToken("upperbound")
	}
}
