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
	"github.com/brighamskarda/chess/v2"
)

// otherColor flips White/Black. The chess package doesn't export an
// inverse helper for Color, so this small bit of glue lives here rather
// than being delegated.
func otherColor(c chess.Color) chess.Color {
	switch c {
	case chess.White:
		return chess.Black
	case chess.Black:
		return chess.White
	default:
		return chess.NoColor
	}
}

// Bound tells whether a score is exact or only a bound on the true value.
type Bound uint8

const (
	BoundExact Bound = iota
	BoundLower
	BoundUpper
)

// Inv swaps Lower and Upper; Exact is unaffected.
func (b Bound) Inv() Bound {
	switch b {
	case BoundLower:
		return BoundUpper
	case BoundUpper:
		return BoundLower
	default:
		return BoundExact
	}
}

func (b Bound) relSide(side chess.Color) Bound {
	if side == chess.Black {
		return b.Inv()
	}
	return b
}

// RelScore is a score relative to the side to move: either a centipawn
// value (positive favors the side to move) or a mate distance with a
// winner flag relative to that same side.
type RelScore struct {
	isMate bool
	cp     int32
	mate   uint32
	win    bool
}

// RelScoreCp builds a centipawn RelScore.
func RelScoreCp(cp int32) RelScore {
	return RelScore{cp: cp}
}

// RelScoreMate builds a mate-distance RelScore.
func RelScoreMate(moves uint32, win bool) RelScore {
	return RelScore{isMate: true, mate: moves, win: win}
}

// IsMate reports whether this is a mate score rather than a centipawn one.
func (r RelScore) IsMate() bool { return r.isMate }

// Cp returns the centipawn value; only meaningful when !IsMate().
func (r RelScore) Cp() int32 { return r.cp }

// Mate returns (moves, win); only meaningful when IsMate().
func (r RelScore) Mate() (uint32, bool) { return r.mate, r.win }

// Inv negates the score: centipawns flip sign, mate flips its winner.
func (r RelScore) Inv() RelScore {
	if r.isMate {
		return RelScore{isMate: true, mate: r.mate, win: !r.win}
	}
	return RelScore{cp: -r.cp}
}

// AbsTo converts a score relative to side into an absolute, White's-
// perspective score.
func (r RelScore) AbsTo(side chess.Color) AbsScore {
	if r.isMate {
		winner := side
		if !r.win {
			winner = otherColor(side)
		}
		return AbsScore{isMate: true, mate: r.mate, winner: winner}
	}
	cp := r.cp
	if side == chess.Black {
		cp = -cp
	}
	return AbsScore{cp: cp}
}

// cmpTuple mirrors the Rust original's (class, key) comparison: losing
// mates order below any centipawn score, winning mates above; within a
// class, closer losing mates are worse and closer winning mates are
// better.
func (r RelScore) cmpTuple() (int, int64) {
	if !r.isMate {
		return 0, int64(r.cp)
	}
	if r.win {
		return 1, -int64(r.mate)
	}
	return -1, int64(r.mate)
}

// Compare returns -1, 0, or 1 as r is less than, equal to, or greater than
// other, per the ordering law in spec.md §3/§8.
func (r RelScore) Compare(other RelScore) int {
	ac, ak := r.cmpTuple()
	bc, bk := other.cmpTuple()
	switch {
	case ac != bc:
		return cmpInt(ac, bc)
	default:
		return cmpInt64(ak, bk)
	}
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Equal reports whether two RelScore values represent the same score.
func (r RelScore) Equal(other RelScore) bool {
	return r.isMate == other.isMate && r.cp == other.cp && r.mate == other.mate && r.win == other.win
}

// AbsScore is a score from White's perspective: either a centipawn value or
// a mate distance naming the winning side.
type AbsScore struct {
	isMate bool
	cp     int32
	mate   uint32
	winner chess.Color
}

// AbsScoreCp builds a centipawn AbsScore.
func AbsScoreCp(cp int32) AbsScore {
	return AbsScore{cp: cp}
}

// AbsScoreMate builds a mate-distance AbsScore.
func AbsScoreMate(moves uint32, winner chess.Color) AbsScore {
	return AbsScore{isMate: true, mate: moves, winner: winner}
}

func (a AbsScore) IsMate() bool { return a.isMate }
func (a AbsScore) Cp() int32    { return a.cp }
func (a AbsScore) Mate() (uint32, chess.Color) { return a.mate, a.winner }

// RelTo converts an absolute score into one relative to side.
func (a AbsScore) RelTo(side chess.Color) RelScore {
	if a.isMate {
		return RelScore{isMate: true, mate: a.mate, win: a.winner == side}
	}
	cp := a.cp
	if side == chess.Black {
		cp = -cp
	}
	return RelScore{cp: cp}
}

// Compare orders by RelTo(White).
func (a AbsScore) Compare(other AbsScore) int {
	return a.RelTo(chess.White).Compare(other.RelTo(chess.White))
}

func (a AbsScore) Equal(other AbsScore) bool {
	return a.isMate == other.isMate && a.cp == other.cp && a.mate == other.mate && a.winner == other.winner
}

// BoundedRelScore couples a RelScore with the Bound it's subject to.
type BoundedRelScore struct {
	Score RelScore
	Bound Bound
}

func (b BoundedRelScore) Inv() BoundedRelScore {
	return BoundedRelScore{Score: b.Score.Inv(), Bound: b.Bound.Inv()}
}

func (b BoundedRelScore) AbsTo(side chess.Color) BoundedAbsScore {
	return BoundedAbsScore{Score: b.Score.AbsTo(side), Bound: b.Bound.relSide(side)}
}

// BoundedAbsScore couples an AbsScore with the Bound it's subject to.
type BoundedAbsScore struct {
	Score AbsScore
	Bound Bound
}

func (b BoundedAbsScore) RelTo(side chess.Color) BoundedRelScore {
	return BoundedRelScore{Score: b.Score.RelTo(side), Bound: b.Bound.relSide(side)}
}
