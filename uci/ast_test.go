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

import "testing"

func TestGo_collapsedLimitsPrecedence(t *testing.T) {
	testCases := []struct {
		name     string
		g        Go
		expected CollapsedLimitsKind
	}{
		{name: "none", g: Go{}, expected: LimitsNone},
		{name: "infinite wins over everything", g: Go{Infinite: true, HasMate: true, HasDepth: true}, expected: LimitsInfinite},
		{name: "mate wins over clock and other", g: Go{HasMate: true, HasWTime: true, HasDepth: true}, expected: LimitsMate},
		{name: "clock wins over other", g: Go{HasWTime: true, HasDepth: true}, expected: LimitsClock},
		{name: "btime alone is still clock", g: Go{HasBTime: true}, expected: LimitsClock},
		{name: "other from depth/nodes/movetime", g: Go{HasNodes: true}, expected: LimitsOther},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := tc.g.CollapsedLimits().Kind
			if actual != tc.expected {
				t.Errorf("incorrect result: expected %v, got %v", tc.expected, actual)
			}
		})
	}
}

func TestRegister_constructors(t *testing.T) {
	later := RegisterLater()
	if !later.Later {
		t.Error("expected RegisterLater to set Later")
	}

	name, _ := NewRegisterName("John Q Public")
	code, _ := NewUciString("XYZ123")
	now := RegisterNow(name, code)
	if now.Later {
		t.Error("did not expect RegisterNow to set Later")
	}
	if now.Name.String() != "John Q Public" || now.Code.String() != "XYZ123" {
		t.Errorf("incorrect result: %+v", now)
	}
}

func TestId_constructors(t *testing.T) {
	v, _ := NewUciString("Stockfish")
	if id := IdName(v); id.IsAuthor {
		t.Error("did not expect IdName to set IsAuthor")
	}
	if id := IdAuthor(v); !id.IsAuthor {
		t.Error("expected IdAuthor to set IsAuthor")
	}
}
