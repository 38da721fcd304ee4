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
	"strings"

	"github.com/brighamskarda/ucicodec/uci"
	"github.com/brighamskarda/ucicodec/warn"
)

// CommandErrorKind discriminates CommandError.
type CommandErrorKind uint8

const (
	CommandUnexpectedToken CommandErrorKind = iota
	CommandExtraToken
	CommandUnexpectedEol
	CommandSetOptionNoName
	CommandSetOptionBadName
	CommandRegisterNoCode
	CommandRegisterBadName
	CommandPositionNoMoves
	CommandNoPosition
	CommandInvalidFen
	CommandInvalidMove
	CommandGo
)

// CommandError is reported while parsing a GUI-to-engine command line.
type CommandError struct {
	Kind CommandErrorKind
	Tok  string
	Pos  int
	Err  error
}

func (e CommandError) Error() string {
	switch e.Kind {
	case CommandUnexpectedToken:
		return fmt.Sprintf("unexpected token: %s", e.Tok)
	case CommandExtraToken:
		return fmt.Sprintf("extra token: %s", e.Tok)
	case CommandUnexpectedEol:
		return "unexpected end of line"
	case CommandSetOptionNoName:
		return `no "name" in "setoption"`
	case CommandSetOptionBadName:
		return fmt.Sprintf("cannot convert option name: %s", e.Err)
	case CommandRegisterNoCode:
		return `no "code" in "register"`
	case CommandRegisterBadName:
		return fmt.Sprintf("cannot convert register name: %s", e.Err)
	case CommandPositionNoMoves:
		return `no "moves" in position`
	case CommandNoPosition:
		return `no position specified, assuming "startpos"`
	case CommandInvalidFen:
		return fmt.Sprintf("cannot parse FEN: %s", e.Err)
	case CommandInvalidMove:
		return fmt.Sprintf("cannot parse move #%d: %s", e.Pos+1, e.Err)
	case CommandGo:
		return fmt.Sprintf("invalid go parameters: %s", e.Err)
	default:
		return "invalid command"
	}
}

func (e CommandError) Unwrap() error { return e.Err }

// ParseCommand parses a GUI-to-engine command. Leading tokens that don't
// match any known top-level keyword are warned and skipped, one line can
// thus recover from stray garbage as long as a recognizable keyword
// eventually appears; the whole line fails only once tokens run out.
func ParseCommand(c *Cursor, warn_ warn.Sink[CommandError]) (uci.Command, bool) {
	result, ok := parseCommandInner(c, warn_)
	if !c.Empty() {
		rest, _ := c.Peek()
		warn_.Warn(CommandError{Kind: CommandExtraToken, Tok: rest.String()})
	}
	return result, ok
}

func parseCommandInner(c *Cursor, warn_ warn.Sink[CommandError]) (uci.Command, bool) {
	for {
		tok, ok := c.Next()
		if !ok {
			return uci.Command{}, false
		}
		switch tok.String() {
		case "uci":
			return uci.CommandUciOf(), true
		case "debug":
			sub, ok := c.Next()
			if !ok {
				warn_.Warn(CommandError{Kind: CommandUnexpectedEol})
				return uci.Command{}, false
			}
			switch sub.String() {
			case "on":
				return uci.CommandDebugOf(true), true
			case "off":
				return uci.CommandDebugOf(false), true
			default:
				warn_.Warn(CommandError{Kind: CommandUnexpectedToken, Tok: sub.String()})
				return uci.Command{}, false
			}
		case "isready":
			return uci.CommandIsReadyOf(), true
		case "setoption":
			if !Expect(c, "name", warn_, CommandError{Kind: CommandSetOptionNoName}) {
				return uci.Command{}, false
			}
			nameToks, rest, found := c.TrySplit("value")
			if !found {
				nameToks = c.Rest()
			}
			name, err := uci.NewOptNameFromTokens(nameToks)
			if err != nil {
				warn_.Warn(CommandError{Kind: CommandSetOptionBadName, Err: err})
				return uci.Command{}, false
			}
			var value uci.UciString
			hasValue := found
			if found {
				value, _ = uci.NewUciStringFromTokens(rest.Rest())
			}
			c.tokens = nil
			return uci.CommandSetOptionOf(name, value, hasValue), true
		case "register":
			sub, ok := c.Next()
			if !ok {
				warn_.Warn(CommandError{Kind: CommandUnexpectedEol})
				return uci.Command{}, false
			}
			switch sub.String() {
			case "later":
				return uci.CommandRegisterOf(uci.RegisterLater()), true
			case "name":
				nameToks, rest, found := c.TrySplit("code")
				if !found {
					warn_.Warn(CommandError{Kind: CommandRegisterNoCode})
					nameToks = c.Rest()
					rest = NewCursor(nil)
				}
				name, err := uci.NewRegisterNameFromTokens(nameToks)
				if err != nil {
					warn_.Warn(CommandError{Kind: CommandRegisterBadName, Err: err})
					c.tokens = nil
					return uci.Command{}, false
				}
				code, _ := uci.NewUciStringFromTokens(rest.Rest())
				c.tokens = nil
				return uci.CommandRegisterOf(uci.RegisterNow(name, code)), true
			default:
				warn_.Warn(CommandError{Kind: CommandUnexpectedToken, Tok: sub.String()})
				return uci.Command{}, false
			}
		case "ucinewgame":
			return uci.CommandUciNewGameOf(), true
		case "position":
			posToks, rest, found := c.TrySplit("moves")
			var moveToks []uci.Token
			if !found {
				warn_.Warn(CommandError{Kind: CommandPositionNoMoves})
				posToks = c.Rest()
			} else {
				moveToks = rest.Rest()
			}
			c.tokens = nil
			posCursor := NewCursor(posToks)
			board, startpos, ok := parsePositionBoard(posCursor, warn_)
			if !ok {
				return uci.Command{}, false
			}
			moves := make([]uci.Move, 0, len(moveToks))
			for i, tok := range moveToks {
				mv, err := uci.ParseMove(tok.String())
				if err != nil {
					warn_.Warn(CommandError{Kind: CommandInvalidMove, Pos: i, Err: err})
					return uci.Command{}, false
				}
				moves = append(moves, mv)
			}
			return uci.CommandPositionOf(startpos, board, !startpos, moves), true
		case "go":
			g := ParseGo(c, warn.Map(warn_, func(e GoError) CommandError {
				return CommandError{Kind: CommandGo, Err: e}
			}))
			return uci.CommandGoOf(g), true
		case "stop":
			return uci.CommandStopOf(), true
		case "ponderhit":
			return uci.CommandPonderHitOf(), true
		case "quit":
			return uci.CommandQuitOf(), true
		default:
			warn_.Warn(CommandError{Kind: CommandUnexpectedToken, Tok: tok.String()})
		}
	}
}

func parsePositionBoard(c *Cursor, warn_ warn.Sink[CommandError]) (uci.RawBoard, bool, bool) {
	tok, ok := c.Next()
	if !ok {
		warn_.Warn(CommandError{Kind: CommandNoPosition})
		return uci.Startpos(), true, true
	}
	switch tok.String() {
	case "startpos":
		if !c.Empty() {
			rest, _ := c.Peek()
			warn_.Warn(CommandError{Kind: CommandExtraToken, Tok: rest.String()})
		}
		return uci.Startpos(), true, true
	case "fen":
		var parts []string
		for _, t := range c.Rest() {
			parts = append(parts, t.String())
		}
		board, err := uci.ParseFEN(strings.Join(parts, " "))
		if err != nil {
			warn_.Warn(CommandError{Kind: CommandInvalidFen, Err: err})
			return uci.RawBoard{}, false, false
		}
		return board, false, true
	default:
		warn_.Warn(CommandError{Kind: CommandUnexpectedToken, Tok: tok.String()})
		return uci.RawBoard{}, false, false
	}
}

// FmtCommand writes a Command back onto the wire in canonical form.
func FmtCommand(cmd uci.Command, w uci.PushTokens) {
	switch cmd.Kind {
	case uci.CommandUci:
		w.PushToken("uci")
	case uci.CommandDebug:
		w.PushToken("debug")
		if cmd.DebugOn {
			w.PushToken("on")
		} else {
			w.PushToken("off")
		}
	case uci.CommandIsReady:
		w.PushToken("isready")
	case uci.CommandSetOption:
		w.PushToken("setoption")
		w.PushToken("name")
		cmd.OptName.PushTokens(w)
		if cmd.HasOptValue {
			w.PushToken("value")
			cmd.OptValue.PushTokens(w)
		}
	case uci.CommandRegister:
		w.PushToken("register")
		if cmd.Register.Later {
			w.PushToken("later")
		} else {
			w.PushToken("name")
			cmd.Register.Name.PushTokens(w)
			w.PushToken("code")
			cmd.Register.Code.PushTokens(w)
		}
	case uci.CommandUciNewGame:
		w.PushToken("ucinewgame")
	case uci.CommandPosition:
		w.PushToken("position")
		if cmd.Startpos {
			w.PushToken("startpos")
		} else {
			w.PushToken("fen")
			cmd.Position.PushTokens(w)
		}
		w.PushToken("moves")
		FmtMoveVec(cmd.PositionMoves, w)
	case uci.CommandGo:
		w.PushToken("go")
		FmtGo(cmd.Go, w)
	case uci.CommandStop:
		w.PushToken("stop")
	case uci.CommandPonderHit:
		w.PushToken("ponderhit")
	case uci.CommandQuit:
		w.PushToken("quit")
	}
}
