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
	"github.com/brighamskarda/ucicodec/uci"
	"github.com/brighamskarda/ucicodec/warn"
)

// ParseCommandLine tokenizes line and parses it as a GUI-to-engine command,
// reporting every warning to sink. It returns ok=false when the line
// doesn't nominally identify a known command keyword.
func ParseCommandLine(line string, sink warn.Sink[CommandError]) (uci.Command, bool) {
	return ParseCommand(NewCursor(uci.Tokenize(line)), sink)
}

// FmtCommandLine renders cmd as a canonical single line, no trailing
// newline.
func FmtCommandLine(cmd uci.Command) string {
	var buf uci.TokenBuffer
	FmtCommand(cmd, &buf)
	return buf.String()
}

// ParseMessageLine tokenizes line and parses it as an engine-to-GUI
// message, reporting every warning to sink. It returns ok=false when the
// line doesn't nominally identify a known message keyword.
func ParseMessageLine(line string, sink warn.Sink[MessageError]) (uci.Message, bool) {
	return ParseMessage(NewCursor(uci.Tokenize(line)), sink)
}

// FmtMessageLine renders msg as a canonical single line, no trailing
// newline.
func FmtMessageLine(msg uci.Message) string {
	var buf uci.TokenBuffer
	FmtMessage(msg, &buf)
	return buf.String()
}
