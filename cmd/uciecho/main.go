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

// Command uciecho round-trips UCI command or message lines read from
// stdin: each line is parsed, the canonical re-encoding is printed to
// stdout (or "<none>" if parsing failed outright), and every warning along
// the way goes to stderr.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/brighamskarda/ucicodec/uci/parse"
	"github.com/brighamskarda/ucicodec/warn"
)

func main() {
	if len(os.Args) != 2 || (os.Args[1] != "cmd" && os.Args[1] != "msg") {
		fmt.Fprintln(os.Stderr, "usage: uciecho cmd|msg")
		os.Exit(1)
	}

	switch os.Args[1] {
	case "cmd":
		runCommands(os.Stdin, os.Stdout, os.Stderr)
	case "msg":
		runMessages(os.Stdin, os.Stdout, os.Stderr)
	}
}

func runCommands(in *os.File, out, errOut *os.File) {
	sink := warn.Stderr[parse.CommandError]{Out: errOut}
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		cmd, ok := parse.ParseCommandLine(line, sink)
		if !ok {
			fmt.Fprintln(out, "<none>")
			continue
		}
		fmt.Fprintln(out, parse.FmtCommandLine(cmd))
		fmt.Fprintf(errOut, "%+v\n", cmd)
	}
}

func runMessages(in *os.File, out, errOut *os.File) {
	sink := warn.Stderr[parse.MessageError]{Out: errOut}
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		msg, ok := parse.ParseMessageLine(line, sink)
		if !ok {
			fmt.Fprintln(out, "<none>")
			continue
		}
		fmt.Fprintln(out, parse.FmtMessageLine(msg))
		fmt.Fprintf(errOut, "%+v\n", msg)
	}
}
