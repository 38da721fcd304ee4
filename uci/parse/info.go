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

// InfoErrorKind discriminates InfoError.
type InfoErrorKind uint8

const (
	InfoUnexpectedToken InfoErrorKind = iota
	InfoUnexpectedEol
	InfoBadInteger
	InfoBadMove
	InfoPermilleTruncated
	InfoBadMoveVec
	InfoBadScore
)

// InfoError is reported while parsing one item of an "info" message.
type InfoError struct {
	Kind     InfoErrorKind
	Tok      string
	SrcValue uint64
	Err      error
}

func (e InfoError) Error() string {
	switch e.Kind {
	case InfoUnexpectedToken:
		return fmt.Sprintf("unexpected token: %s", e.Tok)
	case InfoUnexpectedEol:
		return "unexpected end of line"
	case InfoBadInteger:
		return fmt.Sprintf("cannot parse integer: %s", e.Err)
	case InfoBadMove:
		return fmt.Sprintf("cannot parse move: %s", e.Err)
	case InfoPermilleTruncated:
		return fmt.Sprintf("permille value %d is larger than 1000, thus truncated", e.SrcValue)
	case InfoBadMoveVec:
		return fmt.Sprintf("cannot parse move sequence: %s", e.Err)
	case InfoBadScore:
		return fmt.Sprintf("cannot parse score: %s", e.Err)
	default:
		return "invalid info item"
	}
}

func (e InfoError) Unwrap() error { return e.Err }

func makePermille(val uint64, warn_ warn.Sink[InfoError]) uci.Permille {
	if val > 1000 {
		warn_.Warn(InfoError{Kind: InfoPermilleTruncated, SrcValue: val})
	}
	return uci.NewPermilleTruncated(val)
}

func parseUint(c *Cursor, bits int, warn_ warn.Sink[InfoError]) (uint64, bool) {
	tok, ok := c.Next()
	if !ok {
		warn_.Warn(InfoError{Kind: InfoUnexpectedEol})
		return 0, false
	}
	v, err := strconv.ParseUint(tok.String(), 10, bits)
	if err != nil {
		warn_.Warn(InfoError{Kind: InfoBadInteger, Err: err})
		return 0, false
	}
	return v, true
}

func parseMoveTok(c *Cursor, warn_ warn.Sink[InfoError]) (uci.Move, bool) {
	tok, ok := c.Next()
	if !ok {
		warn_.Warn(InfoError{Kind: InfoUnexpectedEol})
		return uci.Move{}, false
	}
	mv, err := uci.ParseMove(tok.String())
	if err != nil {
		warn_.Warn(InfoError{Kind: InfoBadMove, Err: err})
		return uci.Move{}, false
	}
	return mv, true
}

// ParseInfoItem parses one keyword-led item out of an "info" message's
// token stream, e.g. "depth 12" or "score cp -37 lowerbound".
func ParseInfoItem(c *Cursor, warn_ warn.Sink[InfoError]) (uci.Info, bool) {
	kw, ok := c.Next()
	if !ok {
		warn_.Warn(InfoError{Kind: InfoUnexpectedEol})
		return uci.Info{}, false
	}
	switch kw.String() {
	case "depth":
		v, ok := parseUint(c, 32, warn_)
		if !ok {
			return uci.Info{}, false
		}
		return uci.InfoDepthOf(uint32(v)), true
	case "seldepth":
		v, ok := parseUint(c, 32, warn_)
		if !ok {
			return uci.Info{}, false
		}
		return uci.InfoSelDepthOf(uint32(v)), true
	case "time":
		v, ok := parseUint(c, 64, warn_)
		if !ok {
			return uci.Info{}, false
		}
		return uci.InfoTimeOf(time.Duration(v) * time.Millisecond), true
	case "nodes":
		v, ok := parseUint(c, 64, warn_)
		if !ok {
			return uci.Info{}, false
		}
		return uci.InfoNodesOf(v), true
	case "pv":
		moves := ParseMoveVec(c, true, func(e MoveVecError) {
			warn_.Warn(InfoError{Kind: InfoBadMoveVec, Err: e})
		})
		return uci.InfoPvOf(moves), true
	case "multipv":
		v, ok := parseUint(c, 32, warn_)
		if !ok {
			return uci.Info{}, false
		}
		return uci.InfoMultiPvOf(uint32(v)), true
	case "score":
		s, ok := ParseScore(c, warn.Map(warn_, func(e ScoreError) InfoError {
			return InfoError{Kind: InfoBadScore, Err: e}
		}))
		if !ok {
			return uci.Info{}, false
		}
		return uci.InfoScoreOf(s), true
	case "currmove":
		mv, ok := parseMoveTok(c, warn_)
		if !ok {
			return uci.Info{}, false
		}
		return uci.InfoCurrMoveOf(mv), true
	case "currmovenumber":
		v, ok := parseUint(c, 32, warn_)
		if !ok {
			return uci.Info{}, false
		}
		return uci.InfoCurrMoveNumberOf(uint32(v)), true
	case "hashfull":
		v, ok := parseUint(c, 64, warn_)
		if !ok {
			return uci.Info{}, false
		}
		return uci.InfoHashFullOf(makePermille(v, warn_)), true
	case "nps":
		v, ok := parseUint(c, 64, warn_)
		if !ok {
			return uci.Info{}, false
		}
		return uci.InfoNpsOf(v), true
	case "tbhits":
		v, ok := parseUint(c, 64, warn_)
		if !ok {
			return uci.Info{}, false
		}
		return uci.InfoTbHitsOf(v), true
	case "sbhits":
		v, ok := parseUint(c, 64, warn_)
		if !ok {
			return uci.Info{}, false
		}
		return uci.InfoSbHitsOf(v), true
	case "cpuload":
		v, ok := parseUint(c, 64, warn_)
		if !ok {
			return uci.Info{}, false
		}
		return uci.InfoCpuLoadOf(makePermille(v, warn_)), true
	case "refutation":
		moves := ParseMoveVec(c, true, func(e MoveVecError) {
			warn_.Warn(InfoError{Kind: InfoBadMoveVec, Err: e})
		})
		return uci.InfoRefutationOf(moves), true
	case "currline":
		cpuNum, ok := parseUint(c, 32, warn_)
		if !ok {
			return uci.Info{}, false
		}
		moves := ParseMoveVec(c, true, func(e MoveVecError) {
			warn_.Warn(InfoError{Kind: InfoBadMoveVec, Err: e})
		})
		return uci.InfoCurrLineOf(uint32(cpuNum), moves), true
	default:
		warn_.Warn(InfoError{Kind: InfoUnexpectedToken, Tok: kw.String()})
		return uci.Info{}, false
	}
}

// FmtInfoItem writes one Info item back onto the wire.
func FmtInfoItem(item uci.Info, w uci.PushTokens) {
	switch item.Kind {
	case uci.InfoDepth:
		w.PushToken("depth")
		w.PushToken(strconv.FormatUint(uint64(item.U32), 10))
	case uci.InfoSelDepth:
		w.PushToken("seldepth")
		w.PushToken(strconv.FormatUint(uint64(item.U32), 10))
	case uci.InfoTime:
		w.PushToken("time")
		w.PushToken(strconv.FormatInt(item.Time.Milliseconds(), 10))
	case uci.InfoNodes:
		w.PushToken("nodes")
		w.PushToken(strconv.FormatUint(item.U64, 10))
	case uci.InfoPv:
		w.PushToken("pv")
		FmtMoveVec(item.Moves, w)
	case uci.InfoMultiPv:
		w.PushToken("multipv")
		w.PushToken(strconv.FormatUint(uint64(item.U32), 10))
	case uci.InfoScore:
		w.PushToken("score")
		FmtScore(item.Score, w)
	case uci.InfoCurrMove:
		w.PushToken("currmove")
		item.Move.PushToken(w)
	case uci.InfoCurrMoveNumber:
		w.PushToken("currmovenumber")
		w.PushToken(strconv.FormatUint(uint64(item.U32), 10))
	case uci.InfoHashFull:
		w.PushToken("hashfull")
		w.PushToken(strconv.FormatUint(uint64(item.Permille.Amount()), 10))
	case uci.InfoNps:
		w.PushToken("nps")
		w.PushToken(strconv.FormatUint(item.U64, 10))
	case uci.InfoTbHits:
		w.PushToken("tbhits")
		w.PushToken(strconv.FormatUint(item.U64, 10))
	case uci.InfoSbHits:
		w.PushToken("sbhits")
		w.PushToken(strconv.FormatUint(item.U64, 10))
	case uci.InfoCpuLoad:
		w.PushToken("cpuload")
		w.PushToken(strconv.FormatUint(uint64(item.Permille.Amount()), 10))
	case uci.InfoRefutation:
		w.PushToken("refutation")
		FmtMoveVec(item.Moves, w)
	case uci.InfoCurrLine:
		w.PushToken("currline")
		w.PushToken(strconv.FormatUint(uint64(item.CpuNum), 10))
		FmtMoveVec(item.Moves, w)
	}
}
