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
	"errors"

	"github.com/brighamskarda/chess/v2"
)

// nullMoveToken is the wire spelling GUIs and engines use for "no move
// available", e.g. as the content of a bestmove message when in checkmate or
// stalemate. It isn't a chess move at all, so it's handled here rather than
// inside the chess package's own move parser.
const nullMoveToken = "0000"

// Move is either a real chess move, delegated entirely to chess.Move, or the
// UCI null move "0000".
type Move struct {
	Null  bool
	Value chess.Move
}

// ErrInvalidMove is wrapped by parse failures that aren't the null move.
var ErrInvalidMove = errors.New("invalid move")

// ParseMove parses a single UCI move token, recognizing "0000" as the null
// move and delegating everything else to chess.ParseUCIMove.
func ParseMove(tok string) (Move, error) {
	if tok == nullMoveToken {
		return Move{Null: true}, nil
	}
	m, err := chess.ParseUCIMove(tok)
	if err != nil {
		return Move{}, errors.Join(ErrInvalidMove, err)
	}
	return Move{Value: m}, nil
}

// LooksLikeMove reports whether tok has the shape of a UCI move token:
// lowercase letter, digit, lowercase letter, digit, with an optional 5th
// byte for a promotion. It deliberately does not validate square range or
// promotion-letter identity; it only needs to be precise enough that a
// following keyword (e.g. "ponder", "infinite") is never mistaken for a
// move. Syntactically move-shaped garbage that this accepts is still
// rejected by ParseMove itself.
func LooksLikeMove(tok string) bool {
	if len(tok) != 4 && len(tok) != 5 {
		return false
	}
	b := []byte(tok)
	return isLowerByte(b[0]) && isDigitByte(b[1]) && isLowerByte(b[2]) && isDigitByte(b[3])
}

func isLowerByte(b byte) bool { return b >= 'a' && b <= 'z' }
func isDigitByte(b byte) bool { return b >= '0' && b <= '9' }

// String formats the move for the wire: "0000" for the null move, otherwise
// chess.Move's own UCI rendering.
func (m Move) String() string {
	if m.Null {
		return nullMoveToken
	}
	return m.Value.String()
}

// PushToken implements TokenSafe.
func (m Move) PushToken(w PushTokens) {
	w.PushToken(m.String())
}

var _ TokenSafe = Move{}
