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
	"testing"
	"time"

	"github.com/brighamskarda/ucicodec/uci"
	"github.com/brighamskarda/ucicodec/warn"
)

func TestParseInfoItem_depth(t *testing.T) {
	c := NewCursor(uci.Tokenize("depth 12"))
	var sink warn.All[InfoError]
	item, ok := ParseInfoItem(c, &sink)
	if !ok {
		t.Fatal("expected successful parse")
	}
	if item.Kind != uci.InfoDepth || item.U32 != 12 {
		t.Errorf("incorrect result: %+v", item)
	}
}

func TestParseInfoItem_time(t *testing.T) {
	c := NewCursor(uci.Tokenize("time 1500"))
	var sink warn.All[InfoError]
	item, ok := ParseInfoItem(c, &sink)
	if !ok {
		t.Fatal("expected successful parse")
	}
	if item.Time != 1500*time.Millisecond {
		t.Errorf("incorrect result: %v", item.Time)
	}
}

func TestParseInfoItem_pv(t *testing.T) {
	c := NewCursor(uci.Tokenize("pv e2e4 e7e5"))
	var sink warn.All[InfoError]
	item, ok := ParseInfoItem(c, &sink)
	if !ok {
		t.Fatal("expected successful parse")
	}
	if len(item.Moves) != 2 {
		t.Fatalf("incorrect result: expected 2 moves, got %d", len(item.Moves))
	}
}

func TestParseInfoItem_score(t *testing.T) {
	c := NewCursor(uci.Tokenize("score cp -37 lowerbound"))
	var sink warn.All[InfoError]
	item, ok := ParseInfoItem(c, &sink)
	if !ok {
		t.Fatal("expected successful parse")
	}
	if item.Kind != uci.InfoScore || item.Score.Score.Cp() != -37 || item.Score.Bound != uci.BoundLower {
		t.Errorf("incorrect result: %+v", item)
	}
}

func TestParseInfoItem_hashfullTruncates(t *testing.T) {
	c := NewCursor(uci.Tokenize("hashfull 1500"))
	var sink warn.First[InfoError]
	item, ok := ParseInfoItem(c, &sink)
	if !ok {
		t.Fatal("expected successful parse")
	}
	if item.Permille.Amount() != 1000 {
		t.Errorf("incorrect result: expected 1000, got %d", item.Permille.Amount())
	}
	w, set := sink.Get()
	if !set || w.Kind != InfoPermilleTruncated {
		t.Errorf("expected an InfoPermilleTruncated warning, got %+v (set=%t)", w, set)
	}
}

func TestParseInfoItem_currLine(t *testing.T) {
	c := NewCursor(uci.Tokenize("currline 1 e2e4 e7e5"))
	var sink warn.All[InfoError]
	item, ok := ParseInfoItem(c, &sink)
	if !ok {
		t.Fatal("expected successful parse")
	}
	if item.CpuNum != 1 || len(item.Moves) != 2 {
		t.Errorf("incorrect result: %+v", item)
	}
}

func TestParseInfoItem_unexpectedToken(t *testing.T) {
	c := NewCursor(uci.Tokenize("bogus"))
	var sink warn.First[InfoError]
	if _, ok := ParseInfoItem(c, &sink); ok {
		t.Fatal("did not expect successful parse")
	}
	if w, set := sink.Get(); !set || w.Kind != InfoUnexpectedToken {
		t.Errorf("expected InfoUnexpectedToken, got %+v (set=%t)", w, set)
	}
}

func TestFmtInfoItem_roundTrip(t *testing.T) {
	item := uci.InfoScoreOf(uci.BoundedRelScore{Score: uci.RelScoreCp(-37), Bound: uci.BoundLower})
	var buf uci.TokenBuffer
	FmtInfoItem(item, &buf)
	expected := "score cp -37 lowerbound"
	if buf.String() != expected {
		t.Errorf("incorrect result: expected %q, got %q", expected, buf.String())
	}
}
