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
	"testing"

	"github.com/brighamskarda/chess/v2"
)

// relScoreFixtures is the fixture for the score round-trip law: for any
// RelScore r and color s, r.AbsTo(s).RelTo(s) == r, and
// r.AbsTo(s).RelTo(s.other()) == r.Inv().
func relScoreFixtures() []RelScore {
	return []RelScore{
		RelScoreCp(0),
		RelScoreCp(37),
		RelScoreCp(-37),
		RelScoreMate(3, true),
		RelScoreMate(5, false),
	}
}

func TestRelScore_absRoundTrip(t *testing.T) {
	for _, r := range relScoreFixtures() {
		for _, side := range []chess.Color{chess.White, chess.Black} {
			abs := r.AbsTo(side)
			if !abs.RelTo(side).Equal(r) {
				t.Errorf("AbsTo(%v).RelTo(%v) broke round trip for %+v", side, side, r)
			}
			if !abs.RelTo(otherColor(side)).Equal(r.Inv()) {
				t.Errorf("AbsTo(%v).RelTo(other) did not equal Inv() for %+v", side, r)
			}
		}
	}
}

func TestRelScore_ordering(t *testing.T) {
	// losing mate < cp < winning mate; within mate classes, closer is worse
	// when losing and better when winning.
	ordered := []RelScore{
		RelScoreMate(1, false), // mated in 1: worst
		RelScoreMate(5, false),
		RelScoreCp(-100),
		RelScoreCp(0),
		RelScoreCp(100),
		RelScoreMate(5, true),
		RelScoreMate(1, true), // mate in 1: best
	}
	for i := 0; i < len(ordered)-1; i++ {
		if ordered[i].Compare(ordered[i+1]) >= 0 {
			t.Errorf("expected %+v < %+v", ordered[i], ordered[i+1])
		}
		if ordered[i+1].Compare(ordered[i]) <= 0 {
			t.Errorf("expected %+v > %+v", ordered[i+1], ordered[i])
		}
	}
}

func TestAbsScore_compareAgreesWithRelToWhite(t *testing.T) {
	a := AbsScoreCp(50)
	b := AbsScoreMate(2, chess.Black)
	if a.Compare(b) != a.RelTo(chess.White).Compare(b.RelTo(chess.White)) {
		t.Error("AbsScore.Compare did not agree with RelTo(White).Compare")
	}
}

func TestBoundedRelScore_invAndAbsTo(t *testing.T) {
	b := BoundedRelScore{Score: RelScoreCp(20), Bound: BoundLower}
	inv := b.Inv()
	if inv.Bound != BoundUpper {
		t.Errorf("expected Inv to flip Lower to Upper, got %v", inv.Bound)
	}
	if inv.Score.Cp() != -20 {
		t.Errorf("expected inverted cp -20, got %d", inv.Score.Cp())
	}

	abs := b.AbsTo(chess.Black)
	if abs.Bound != BoundUpper {
		t.Errorf("expected bound to flip relative to Black, got %v", abs.Bound)
	}
	if abs.Score.Cp() != -20 {
		t.Errorf("expected abs cp -20, got %d", abs.Score.Cp())
	}

	back := abs.RelTo(chess.Black)
	if back.Bound != BoundLower || back.Score.Cp() != 20 {
		t.Errorf("RelTo(Black) did not invert AbsTo(Black): got %+v", back)
	}
}

func TestBound_inv(t *testing.T) {
	if BoundLower.Inv() != BoundUpper {
		t.Error("expected Lower.Inv() == Upper")
	}
	if BoundUpper.Inv() != BoundLower {
		t.Error("expected Upper.Inv() == Lower")
	}
	if BoundExact.Inv() != BoundExact {
		t.Error("expected Exact.Inv() == Exact")
	}
}
