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

	"github.com/brighamskarda/ucicodec/uci"
)

// MoveVecError reports that the token at Pos (0-based, counting only
// tokens already accepted into the run) didn't parse as a move even though
// it had the right shape.
type MoveVecError struct {
	Pos   int
	Err   error
}

func (e MoveVecError) Error() string {
	return fmt.Sprintf("cannot parse move #%d: %s", e.Pos+1, e.Err)
}

func (e MoveVecError) Unwrap() error { return e.Err }

// ParseMoveVec greedily consumes a run of move-shaped tokens from c. In
// untilFirstError mode (pv/refutation/currline, which are terminated by the
// next info keyword) the run stops at the first token that fails to parse
// as a move; otherwise (searchmoves, which runs to end of line) a bad token
// is skipped and the run continues. Either way, a token that doesn't even
// look like a move is left unconsumed rather than reported.
func ParseMoveVec(c *Cursor, untilFirstError bool, warnFn func(MoveVecError)) []uci.Move {
	var moves []uci.Move
	for {
		tok, ok := c.Peek()
		if !ok || !uci.LooksLikeMove(tok.String()) {
			break
		}
		c.Next()
		mv, err := uci.ParseMove(tok.String())
		if err != nil {
			warnFn(MoveVecError{Pos: len(moves), Err: err})
			if untilFirstError {
				break
			}
			continue
		}
		moves = append(moves, mv)
	}
	return moves
}

// FmtMoveVec writes each move as its own token, in order.
func FmtMoveVec(moves []uci.Move, w uci.PushTokens) {
	for _, mv := range moves {
		mv.PushToken(w)
	}
}
