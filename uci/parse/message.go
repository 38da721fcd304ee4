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
	"github.com/brighamskarda/ucicodec/warn"
)

// MessageErrorKind discriminates MessageError.
type MessageErrorKind uint8

const (
	MessageUnexpectedToken MessageErrorKind = iota
	MessageExtraToken
	MessageUnexpectedEol
	MessageInvalidBestmove
	MessageInvalidPonder
	MessageInvalidCopyProtection
	MessageInvalidRegistration
	MessageBadInfo
	MessageOptionNoName
	MessageOptionNoType
	MessageOptionBadName
	MessageOptionBadBody
)

// MessageError is reported while parsing an engine-to-GUI message line.
type MessageError struct {
	Kind MessageErrorKind
	Tok  string
	Pos  int
	Err  error
}

func (e MessageError) Error() string {
	switch e.Kind {
	case MessageUnexpectedToken:
		return fmt.Sprintf("unexpected token: %s", e.Tok)
	case MessageExtraToken:
		return fmt.Sprintf("extra token: %s", e.Tok)
	case MessageUnexpectedEol:
		return "unexpected end of line"
	case MessageInvalidBestmove:
		return fmt.Sprintf("invalid best move, assuming null move: %s", e.Err)
	case MessageInvalidPonder:
		return fmt.Sprintf("invalid ponder move: %s", e.Err)
	case MessageInvalidCopyProtection:
		return fmt.Sprintf("invalid copy protection status: %s", e.Err)
	case MessageInvalidRegistration:
		return fmt.Sprintf("invalid registration status: %s", e.Err)
	case MessageBadInfo:
		return fmt.Sprintf("cannot parse info #%d: %s", e.Pos+1, e.Err)
	case MessageOptionNoName:
		return `no "name" in "option"`
	case MessageOptionNoType:
		return `no "type" in "option"`
	case MessageOptionBadName:
		return fmt.Sprintf("cannot convert option name: %s", e.Err)
	case MessageOptionBadBody:
		return fmt.Sprintf("invalid option body: %s", e.Err)
	default:
		return "invalid message"
	}
}

func (e MessageError) Unwrap() error { return e.Err }

// ParseMessage parses an engine-to-GUI message. Leading tokens that don't
// match any known top-level keyword are warned and skipped, the same way
// ParseCommand treats stray leading garbage.
func ParseMessage(c *Cursor, warn_ warn.Sink[MessageError]) (uci.Message, bool) {
	result, ok := parseMessageInner(c, warn_)
	if !c.Empty() {
		rest, _ := c.Peek()
		warn_.Warn(MessageError{Kind: MessageUnexpectedToken, Tok: rest.String()})
	}
	return result, ok
}

func parseMessageInner(c *Cursor, warn_ warn.Sink[MessageError]) (uci.Message, bool) {
	for {
		tok, ok := c.Next()
		if !ok {
			return uci.Message{}, false
		}
		switch tok.String() {
		case "id":
			sub, ok := c.Next()
			if !ok {
				warn_.Warn(MessageError{Kind: MessageUnexpectedEol})
				return uci.Message{}, false
			}
			switch sub.String() {
			case "name":
				s, _ := uci.NewUciStringFromTokens(c.Rest())
				c.tokens = nil
				return uci.MessageIdOf(uci.IdName(s)), true
			case "author":
				s, _ := uci.NewUciStringFromTokens(c.Rest())
				c.tokens = nil
				return uci.MessageIdOf(uci.IdAuthor(s)), true
			default:
				warn_.Warn(MessageError{Kind: MessageUnexpectedToken, Tok: sub.String()})
				return uci.Message{}, false
			}
		case "uciok":
			return uci.MessageUciOkOf(), true
		case "readyok":
			return uci.MessageReadyOkOf(), true
		case "bestmove":
			bestTok, ok := c.Next()
			if !ok {
				warn_.Warn(MessageError{Kind: MessageUnexpectedEol})
				return uci.Message{}, false
			}
			best, err := uci.ParseMove(bestTok.String())
			if err != nil {
				warn_.Warn(MessageError{Kind: MessageInvalidBestmove, Err: err})
				best = uci.Move{Null: true}
			}
			var ponder uci.Move
			hasPonder := false
			if kwTok, ok := c.Next(); ok {
				if kwTok.String() != "ponder" {
					warn_.Warn(MessageError{Kind: MessageUnexpectedToken, Tok: kwTok.String()})
				} else if pTok, ok := c.Next(); ok {
					p, err := uci.ParseMove(pTok.String())
					if err != nil {
						warn_.Warn(MessageError{Kind: MessageInvalidPonder, Err: err})
					} else {
						ponder = p
						hasPonder = true
					}
				} else {
					warn_.Warn(MessageError{Kind: MessageUnexpectedEol})
				}
			}
			return uci.MessageBestMoveOf(best, ponder, hasPonder), true
		case "copyprotection":
			status, ok := ParseTriStatus(c, warn.Map(warn_, func(e TriStatusError) MessageError {
				return MessageError{Kind: MessageInvalidCopyProtection, Err: e}
			}))
			if !ok {
				return uci.Message{}, false
			}
			return uci.MessageCopyProtectionOf(status), true
		case "registration":
			status, ok := ParseTriStatus(c, warn.Map(warn_, func(e TriStatusError) MessageError {
				return MessageError{Kind: MessageInvalidRegistration, Err: e}
			}))
			if !ok {
				return uci.Message{}, false
			}
			return uci.MessageRegistrationOf(status), true
		case "info":
			var items []uci.Info
			var str uci.UciString
			hasStr := false
			for !c.Empty() {
				if next, _ := c.Peek(); next.String() == "string" {
					c.Next()
					str, _ = uci.NewUciStringFromTokens(c.Rest())
					hasStr = true
					c.tokens = nil
					break
				}
				pos := len(items)
				item, ok := ParseInfoItem(c, warn.Map(warn_, func(e InfoError) MessageError {
					return MessageError{Kind: MessageBadInfo, Pos: pos, Err: e}
				}))
				if ok {
					items = append(items, item)
				}
			}
			return uci.MessageInfoOf(items, str, hasStr), true
		case "option":
			if !Expect(c, "name", warn_, MessageError{Kind: MessageOptionNoName}) {
				return uci.Message{}, false
			}
			nameToks, rest, found := c.TrySplit("type")
			if !found {
				warn_.Warn(MessageError{Kind: MessageOptionNoType})
				nameToks = c.Rest()
				rest = NewCursor(nil)
			}
			c.tokens = nil
			name, err := uci.NewOptNameFromTokens(nameToks)
			if err != nil {
				warn_.Warn(MessageError{Kind: MessageOptionBadName, Err: err})
				return uci.Message{}, false
			}
			body, ok := ParseOptBody(rest, warn.Map(warn_, func(e OptBodyError) MessageError {
				return MessageError{Kind: MessageOptionBadBody, Err: e}
			}))
			if !ok {
				return uci.Message{}, false
			}
			return uci.MessageOptionOf(name, body), true
		default:
			warn_.Warn(MessageError{Kind: MessageUnexpectedToken, Tok: tok.String()})
		}
	}
}

// FmtMessage writes a Message back onto the wire in canonical form.
func FmtMessage(msg uci.Message, w uci.PushTokens) {
	switch msg.Kind {
	case uci.MessageId:
		w.PushToken("id")
		if msg.Id.IsAuthor {
			w.PushToken("author")
		} else {
			w.PushToken("name")
		}
		msg.Id.Value.PushTokens(w)
	case uci.MessageUciOk:
		w.PushToken("uciok")
	case uci.MessageReadyOk:
		w.PushToken("readyok")
	case uci.MessageBestMove:
		w.PushToken("bestmove")
		msg.BestMove.PushToken(w)
		if msg.HasPonder {
			w.PushToken("ponder")
			msg.Ponder.PushToken(w)
		}
	case uci.MessageCopyProtection:
		w.PushToken("copyprotection")
		FmtTriStatus(msg.TriStatus, w)
	case uci.MessageRegistration:
		w.PushToken("registration")
		FmtTriStatus(msg.TriStatus, w)
	case uci.MessageInfo:
		w.PushToken("info")
		for _, item := range msg.Info {
			FmtInfoItem(item, w)
		}
		if msg.HasInfoString {
			w.PushToken("string")
			msg.InfoString.PushTokens(w)
		}
	case uci.MessageOption:
		w.PushToken("option")
		w.PushToken("name")
		msg.OptName.PushTokens(w)
		w.PushToken("type")
		FmtOptBody(msg.OptBody, w)
	}
}
