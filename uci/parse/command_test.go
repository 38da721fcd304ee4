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

	"github.com/brighamskarda/ucicodec/uci"
	"github.com/brighamskarda/ucicodec/warn"
)

func parseCmd(t *testing.T, line string) (uci.Command, []CommandError) {
	t.Helper()
	var sink warn.All[CommandError]
	cmd, ok := ParseCommandLine(line, &sink)
	if !ok {
		t.Fatalf("expected successful parse of %q, warnings: %v", line, sink.Values)
	}
	return cmd, sink.Values
}

func TestParseCommand_simpleKeywords(t *testing.T) {
	testCases := []struct {
		line string
		kind uci.CommandKind
	}{
		{line: "uci", kind: uci.CommandUci},
		{line: "isready", kind: uci.CommandIsReady},
		{line: "ucinewgame", kind: uci.CommandUciNewGame},
		{line: "stop", kind: uci.CommandStop},
		{line: "ponderhit", kind: uci.CommandPonderHit},
		{line: "quit", kind: uci.CommandQuit},
	}
	for _, tc := range testCases {
		cmd, warnings := parseCmd(t, tc.line)
		if len(warnings) != 0 {
			t.Errorf("%q: did not expect warnings, got %v", tc.line, warnings)
		}
		if cmd.Kind != tc.kind {
			t.Errorf("%q: incorrect kind: expected %v, got %v", tc.line, tc.kind, cmd.Kind)
		}
	}
}

func TestParseCommand_debug(t *testing.T) {
	cmd, _ := parseCmd(t, "debug on")
	if cmd.Kind != uci.CommandDebug || !cmd.DebugOn {
		t.Errorf("incorrect result: %+v", cmd)
	}
	cmd, _ = parseCmd(t, "debug off")
	if cmd.DebugOn {
		t.Errorf("incorrect result: %+v", cmd)
	}
}

// Scenario #1 from spec.md's end-to-end table.
func TestParseCommand_positionStartposMoves(t *testing.T) {
	cmd, warnings := parseCmd(t, "position startpos moves e2e4 e7e5")
	if len(warnings) != 0 {
		t.Errorf("did not expect warnings, got %v", warnings)
	}
	if !cmd.Startpos || cmd.HasPosition {
		t.Errorf("incorrect result: %+v", cmd)
	}
	if len(cmd.PositionMoves) != 2 {
		t.Fatalf("incorrect result: expected 2 moves, got %d", len(cmd.PositionMoves))
	}
	out := FmtCommandLine(cmd)
	expected := "position startpos moves e2e4 e7e5"
	if out != expected {
		t.Errorf("incorrect canonical output: expected %q, got %q", expected, out)
	}
}

func TestParseCommand_positionStartposEmptyMoves(t *testing.T) {
	cmd, warnings := parseCmd(t, "position startpos moves")
	if len(warnings) != 0 {
		t.Errorf("did not expect warnings, got %v", warnings)
	}
	if len(cmd.PositionMoves) != 0 {
		t.Errorf("incorrect result: expected no moves, got %+v", cmd.PositionMoves)
	}
	out := FmtCommandLine(cmd)
	expected := "position startpos moves"
	if out != expected {
		t.Errorf("incorrect canonical output: expected %q, got %q", expected, out)
	}
}

func TestParseCommand_positionFen(t *testing.T) {
	fen := "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1"
	cmd, warnings := parseCmd(t, "position fen "+fen)
	if len(warnings) != 1 || warnings[0].Kind != CommandPositionNoMoves {
		t.Errorf("expected a single CommandPositionNoMoves warning, got %v", warnings)
	}
	if cmd.Startpos || !cmd.HasPosition {
		t.Errorf("incorrect result: %+v", cmd)
	}
	if cmd.Position.String() != fen {
		t.Errorf("incorrect result: expected %q, got %q", fen, cmd.Position.String())
	}
}

func TestParseCommand_positionNoDiscriminatorDefaultsToStartpos(t *testing.T) {
	cmd, warnings := parseCmd(t, "position moves e2e4")
	if len(warnings) != 1 || warnings[0].Kind != CommandNoPosition {
		t.Errorf("expected a single CommandNoPosition warning, got %v", warnings)
	}
	if !cmd.Startpos {
		t.Errorf("expected position without a discriminator to default to startpos, got %+v", cmd)
	}
}

func TestParseCommand_positionMovesAllOrNothing(t *testing.T) {
	var sink warn.All[CommandError]
	_, ok := ParseCommandLine("position startpos moves e2e4 bogus e7e5", &sink)
	if ok {
		t.Fatal("expected the whole position command to fail on the first bad move")
	}
	if len(sink.Values) != 1 || sink.Values[0].Kind != CommandInvalidMove || sink.Values[0].Pos != 1 {
		t.Errorf("expected a single CommandInvalidMove at position 1, got %v", sink.Values)
	}
}

// Scenario #3 from spec.md's end-to-end table.
func TestParseCommand_goInfiniteInfinite(t *testing.T) {
	cmd, warnings := parseCmd(t, "go infinite infinite")
	if !cmd.Go.Infinite {
		t.Error("expected Infinite to be set")
	}
	if len(warnings) != 1 || warnings[0].Kind != CommandGo {
		t.Errorf("expected a single CommandGo-wrapped duplicate warning, got %v", warnings)
	}
	out := FmtCommandLine(cmd)
	if out != "go infinite" {
		t.Errorf("incorrect canonical output: expected %q, got %q", "go infinite", out)
	}
}

// Scenario #2 from spec.md's end-to-end table.
func TestParseCommand_goClockFields(t *testing.T) {
	cmd, warnings := parseCmd(t, "go wtime 300000 btime 300000 winc 0 binc 0 movestogo 40")
	if len(warnings) != 0 {
		t.Errorf("did not expect warnings, got %v", warnings)
	}
	out := FmtCommandLine(cmd)
	expected := "go wtime 300000 btime 300000 winc 0 binc 0 movestogo 40"
	if out != expected {
		t.Errorf("incorrect canonical output: expected %q, got %q", expected, out)
	}
}

func TestParseCommand_setOptionWithValue(t *testing.T) {
	// Scenario #7 from spec.md's end-to-end table.
	cmd, warnings := parseCmd(t, "setoption name Multi PV value 3")
	if len(warnings) != 0 {
		t.Errorf("did not expect warnings, got %v", warnings)
	}
	if cmd.OptName.String() != "Multi PV" || !cmd.HasOptValue || cmd.OptValue.String() != "3" {
		t.Errorf("incorrect result: %+v", cmd)
	}
	out := FmtCommandLine(cmd)
	expected := "setoption name Multi PV value 3"
	if out != expected {
		t.Errorf("incorrect canonical output: expected %q, got %q", expected, out)
	}
}

func TestParseCommand_setOptionWithoutValue(t *testing.T) {
	cmd, warnings := parseCmd(t, "setoption name Ponder")
	if len(warnings) != 0 {
		t.Errorf("did not expect warnings, got %v", warnings)
	}
	if cmd.HasOptValue {
		t.Errorf("did not expect a value, got %+v", cmd)
	}
}

func TestParseCommand_registerNow(t *testing.T) {
	cmd, warnings := parseCmd(t, "register name John Q Public code XYZ123")
	if len(warnings) != 0 {
		t.Errorf("did not expect warnings, got %v", warnings)
	}
	if cmd.Register.Later || cmd.Register.Name.String() != "John Q Public" || cmd.Register.Code.String() != "XYZ123" {
		t.Errorf("incorrect result: %+v", cmd.Register)
	}
}

func TestParseCommand_registerLater(t *testing.T) {
	cmd, _ := parseCmd(t, "register later")
	if !cmd.Register.Later {
		t.Errorf("incorrect result: %+v", cmd.Register)
	}
}

func TestParseCommand_leadingGarbageIsSkipped(t *testing.T) {
	cmd, warnings := parseCmd(t, "blorp uci")
	if cmd.Kind != uci.CommandUci {
		t.Errorf("expected the retry loop to recover the trailing \"uci\" keyword, got %+v", cmd)
	}
	if len(warnings) != 1 || warnings[0].Kind != CommandUnexpectedToken {
		t.Errorf("expected a single CommandUnexpectedToken warning, got %v", warnings)
	}
}

func TestParseCommand_onlyGarbageFails(t *testing.T) {
	var sink warn.All[CommandError]
	if _, ok := ParseCommandLine("blorp zarf", &sink); ok {
		t.Fatal("expected a line with no recognizable keyword to fail")
	}
	if len(sink.Values) != 2 {
		t.Errorf("expected both stray tokens to be warned, got %v", sink.Values)
	}
}

func TestParseCommand_extraTrailingTokenWarns(t *testing.T) {
	cmd, warnings := parseCmd(t, "isready garbage")
	if cmd.Kind != uci.CommandIsReady {
		t.Errorf("incorrect result: %+v", cmd)
	}
	if len(warnings) != 1 || warnings[0].Kind != CommandExtraToken {
		t.Errorf("expected a single CommandExtraToken warning, got %v", warnings)
	}
}
