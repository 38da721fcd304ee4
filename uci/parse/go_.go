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
	"time"

	"github.com/brighamskarda/ucicodec/uci"
	"github.com/brighamskarda/ucicodec/warn"
)

// GoErrorKind discriminates GoError.
type GoErrorKind uint8

const (
	GoUnexpectedToken GoErrorKind = iota
	GoUnexpectedEol
	GoDuplicate
	GoInvalidSearchMove
	GoInvalidInt
	GoZeroMoveStoGo
)

// GoError is reported while parsing a "go" command's parameters.
type GoError struct {
	Kind GoErrorKind
	Tok  string
	Name string
	Err  error
}

func (e GoError) Error() string {
	switch e.Kind {
	case GoUnexpectedToken:
		return fmt.Sprintf("unexpected token: %s", e.Tok)
	case GoUnexpectedEol:
		return "unexpected end of line"
	case GoDuplicate:
		return fmt.Sprintf("duplicate item %q", e.Name)
	case GoInvalidSearchMove:
		return fmt.Sprintf("cannot parse searchmoves: %s", e.Err)
	case GoInvalidInt:
		return fmt.Sprintf("cannot parse integer for %q: %s", e.Name, e.Err)
	case GoZeroMoveStoGo:
		return "movestogo must be nonzero"
	default:
		return "invalid go parameters"
	}
}

func (e GoError) Unwrap() error { return e.Err }

func goParseIntField(c *Cursor, name string, has *bool, dst *uint64, warn_ warn.Sink[GoError]) {
	if *has {
		warn_.Warn(GoError{Kind: GoDuplicate, Name: name})
	}
	tok, ok := c.Next()
	if !ok {
		warn_.Warn(GoError{Kind: GoUnexpectedEol})
		return
	}
	v, err := strconv.ParseUint(tok.String(), 10, 64)
	if err != nil {
		warn_.Warn(GoError{Kind: GoInvalidInt, Name: name, Err: err})
		return
	}
	*dst = v
	*has = true
}

// goParseNonZeroIntField is goParseIntField plus the NonZeroU64 invariant
// original_source/src/uci/msg.rs places on movestogo: a literal "0" fails
// to parse rather than being accepted as a valid (if useless) count.
func goParseNonZeroIntField(c *Cursor, name string, has *bool, dst *uint64, warn_ warn.Sink[GoError]) {
	if *has {
		warn_.Warn(GoError{Kind: GoDuplicate, Name: name})
	}
	tok, ok := c.Next()
	if !ok {
		warn_.Warn(GoError{Kind: GoUnexpectedEol})
		return
	}
	v, err := strconv.ParseUint(tok.String(), 10, 64)
	if err != nil {
		warn_.Warn(GoError{Kind: GoInvalidInt, Name: name, Err: err})
		return
	}
	if v == 0 {
		warn_.Warn(GoError{Kind: GoZeroMoveStoGo})
		return
	}
	*dst = v
	*has = true
}

// ParseGo parses a "go" command's parameters to end of line, populating
// every present field of a Go record with no precedence collapse: a
// duplicate keyword warns and overwrites the previous value, and an
// unrecognized token is warned and skipped.
func ParseGo(c *Cursor, warn_ warn.Sink[GoError]) uci.Go {
	var g uci.Go
	for {
		tok, ok := c.Next()
		if !ok {
			break
		}
		switch tok.String() {
		case "searchmoves":
			if g.HasSearchMoves {
				warn_.Warn(GoError{Kind: GoDuplicate, Name: "searchmoves"})
			}
			moves := ParseMoveVec(c, false, func(e MoveVecError) {
				warn_.Warn(GoError{Kind: GoInvalidSearchMove, Err: e})
			})
			g.SearchMoves = moves
			g.HasSearchMoves = true
		case "ponder":
			if g.Ponder {
				warn_.Warn(GoError{Kind: GoDuplicate, Name: "ponder"})
			}
			g.Ponder = true
		case "infinite":
			if g.Infinite {
				warn_.Warn(GoError{Kind: GoDuplicate, Name: "infinite"})
			}
			g.Infinite = true
		case "wtime":
			var v uint64
			goParseIntField(c, "wtime", &g.HasWTime, &v, warn_)
			if g.HasWTime {
				g.WTime = time.Duration(v) * time.Millisecond
			}
		case "btime":
			var v uint64
			goParseIntField(c, "btime", &g.HasBTime, &v, warn_)
			if g.HasBTime {
				g.BTime = time.Duration(v) * time.Millisecond
			}
		case "winc":
			var v uint64
			goParseIntField(c, "winc", &g.HasWInc, &v, warn_)
			if g.HasWInc {
				g.WInc = time.Duration(v) * time.Millisecond
			}
		case "binc":
			var v uint64
			goParseIntField(c, "binc", &g.HasBInc, &v, warn_)
			if g.HasBInc {
				g.BInc = time.Duration(v) * time.Millisecond
			}
		case "movestogo":
			goParseNonZeroIntField(c, "movestogo", &g.HasMoveStoGo, &g.MoveStoGo, warn_)
		case "mate":
			goParseIntField(c, "mate", &g.HasMate, &g.Mate, warn_)
		case "depth":
			goParseIntField(c, "depth", &g.HasDepth, &g.Depth, warn_)
		case "nodes":
			var v uint64
			goParseIntField(c, "nodes", &g.HasNodes, &v, warn_)
			if g.HasNodes {
				g.Nodes = uint32(v)
			}
		case "movetime":
			var v uint64
			goParseIntField(c, "movetime", &g.HasMoveTime, &v, warn_)
			if g.HasMoveTime {
				g.MoveTime = time.Duration(v) * time.Millisecond
			}
		default:
			warn_.Warn(GoError{Kind: GoUnexpectedToken, Tok: tok.String()})
		}
	}
	return g
}

// FmtGo writes a Go record's present fields in a fixed canonical order.
func FmtGo(g uci.Go, w uci.PushTokens) {
	if g.HasSearchMoves {
		w.PushToken("searchmoves")
		FmtMoveVec(g.SearchMoves, w)
	}
	if g.Ponder {
		w.PushToken("ponder")
	}
	if g.Infinite {
		w.PushToken("infinite")
	}
	if g.HasWTime {
		w.PushToken("wtime")
		w.PushToken(strconv.FormatInt(g.WTime.Milliseconds(), 10))
	}
	if g.HasBTime {
		w.PushToken("btime")
		w.PushToken(strconv.FormatInt(g.BTime.Milliseconds(), 10))
	}
	if g.HasWInc {
		w.PushToken("winc")
		w.PushToken(strconv.FormatInt(g.WInc.Milliseconds(), 10))
	}
	if g.HasBInc {
		w.PushToken("binc")
		w.PushToken(strconv.FormatInt(g.BInc.Milliseconds(), 10))
	}
	if g.HasMoveStoGo {
		w.PushToken("movestogo")
		w.PushToken(strconv.FormatUint(g.MoveStoGo, 10))
	}
	if g.HasMate {
		w.PushToken("mate")
		w.PushToken(strconv.FormatUint(g.Mate, 10))
	}
	if g.HasDepth {
		w.PushToken("depth")
		w.PushToken(strconv.FormatUint(g.Depth, 10))
	}
	if g.HasNodes {
		w.PushToken("nodes")
		w.PushToken(strconv.FormatUint(uint64(g.Nodes), 10))
	}
	if g.HasMoveTime {
		w.PushToken("movetime")
		w.PushToken(strconv.FormatInt(g.MoveTime.Milliseconds(), 10))
	}
}
