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
	"strings"

	"github.com/brighamskarda/chess/v2"
)

// StartposFEN is the FEN of the initial chess position, used by the
// "position startpos" command. chess.Board has no dedicated constructor
// for it, so this is parsed through chess.ParseFEN like any other FEN.
const StartposFEN = chess.DefaultFEN

// RawBoard is a thin wrapper around *chess.Board that gives it the FEN
// parse/format behavior the "position" command needs, without reaching
// into any of the move-generation or legality logic chess.Board also
// exposes; this codec only ever needs to set up a position and apply a
// forced move sequence to it.
type RawBoard struct {
	Board *chess.Board
}

// ParseFEN parses a FEN string into a RawBoard.
func ParseFEN(fen string) (RawBoard, error) {
	b, err := chess.ParseFEN(fen)
	if err != nil {
		return RawBoard{}, err
	}
	return RawBoard{Board: b}, nil
}

// Startpos returns a RawBoard set to the initial chess position.
func Startpos() RawBoard {
	b, err := chess.ParseFEN(StartposFEN)
	if err != nil {
		panic("uci: default FEN failed to parse: " + err.Error())
	}
	return RawBoard{Board: b}
}

// String renders the board back to FEN.
func (b RawBoard) String() string {
	return b.Board.String()
}

// PushTokens implements MultiTokenSafe: a FEN string has internal spaces of
// its own (board/side/castling/ep/halfmove/fullmove fields), so it must be
// re-split into its constituent tokens rather than pushed as one.
func (b RawBoard) PushTokens(w PushTokens) {
	for _, tok := range strings.Fields(b.String()) {
		w.PushToken(tok)
	}
}

// ApplyMove plays m on the board in place. The null move is a no-op: it
// exists only to report "no legal move" in a bestmove message and never
// appears in a "position ... moves" list, but skipping it here keeps
// ApplyMove total instead of asking every caller to special-case it.
func (b RawBoard) ApplyMove(m Move) {
	if m.Null {
		return
	}
	b.Board.Move(m.Value)
}

var _ MultiTokenSafe = RawBoard{}
