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

func TestUciString_roundTrip(t *testing.T) {
	s, err := NewUciString("Multi PV")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.String() != "Multi PV" {
		t.Errorf("incorrect result: expected %q, got %q", "Multi PV", s.String())
	}
	var buf TokenBuffer
	s.PushTokens(&buf)
	if buf.String() != "Multi PV" {
		t.Errorf("incorrect result: expected %q, got %q", "Multi PV", buf.String())
	}
}

func TestUciString_empty(t *testing.T) {
	s, err := NewUciStringFromTokens(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var buf TokenBuffer
	s.PushTokens(&buf)
	if buf.String() != "" {
		t.Errorf("incorrect result: expected empty string, got %q", buf.String())
	}
}

func TestRegisterName_rejectsCode(t *testing.T) {
	if _, err := NewRegisterName("John code XYZ"); err == nil {
		t.Error("expected error for register name containing reserved token \"code\"")
	}
	if _, err := NewRegisterName("John Q Public"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestOptName_rejectsReserved(t *testing.T) {
	if _, err := NewOptName("Hash type"); err == nil {
		t.Error("expected error for option name containing reserved token \"type\"")
	}
	if _, err := NewOptName("Hash value"); err == nil {
		t.Error("expected error for option name containing reserved token \"value\"")
	}
	if _, err := NewOptName("Hash"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestOptName_caseInsensitiveEqual(t *testing.T) {
	a, _ := NewOptName("Hash")
	b, _ := NewOptName("HASH")
	if !a.Equal(b) {
		t.Error("expected case-insensitive option names to compare equal")
	}
	c, _ := NewOptName("Threads")
	if a.Equal(c) {
		t.Error("expected distinct option names to compare unequal")
	}
}

func TestOptComboVar_rejectsVar(t *testing.T) {
	if _, err := NewOptComboVar("var"); err == nil {
		t.Error("expected error for combo var equal to reserved token \"var\"")
	}
}

func TestOptComboVar_caseInsensitiveEqual(t *testing.T) {
	a, _ := NewOptComboVar("Random")
	b, _ := NewOptComboVar("random")
	if !a.Equal(b) {
		t.Error("expected case-insensitive combo variants to compare equal")
	}
}
