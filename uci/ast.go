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

// Package uci implements a lenient, warning-sink-based codec for the
// Universal Chess Interface protocol: a typed AST for every command a GUI
// sends an engine and every message an engine sends back, a canonical line
// formatter, and the supporting token/string/score types the protocol's
// wire grammar is built from. Chess move and position semantics are
// delegated to github.com/brighamskarda/chess/v2; this package only knows
// how to read and write the bytes on the wire.
package uci

import "time"

// Register is the payload of the "register" command: either a deferred
// registration or a concrete name/code pair.
type Register struct {
	Later bool
	Name  RegisterName
	Code  UciString
}

// RegisterLater builds the "register later" variant.
func RegisterLater() Register { return Register{Later: true} }

// RegisterNow builds the "register name ... code ..." variant.
func RegisterNow(name RegisterName, code UciString) Register {
	return Register{Name: name, Code: code}
}

// Id is the payload of the "id" message: either a name or an author tag.
type Id struct {
	IsAuthor bool
	Value    UciString
}

// IdName builds the "id name ..." variant.
func IdName(value UciString) Id { return Id{Value: value} }

// IdAuthor builds the "id author ..." variant.
func IdAuthor(value UciString) Id { return Id{IsAuthor: true, Value: value} }

// InfoKind discriminates the variants of Info.
type InfoKind uint8

const (
	InfoDepth InfoKind = iota
	InfoSelDepth
	InfoTime
	InfoNodes
	InfoPv
	InfoMultiPv
	InfoScore
	InfoCurrMove
	InfoCurrMoveNumber
	InfoHashFull
	InfoNps
	InfoTbHits
	InfoSbHits
	InfoCpuLoad
	InfoRefutation
	InfoCurrLine
)

// Info is one item inside an "info" message's list, e.g. "depth 12" or
// "score cp -37 lowerbound". Exactly the fields relevant to Kind are
// meaningful; the rest are zero.
type Info struct {
	Kind InfoKind

	U32 uint32 // Depth, SelDepth, MultiPv, CurrMoveNumber
	U64 uint64 // Nodes, Nps, TbHits, SbHits

	Time time.Duration // Time

	Moves []Move // Pv, Refutation, CurrLine.Moves

	Score BoundedRelScore // Score

	Move Move // CurrMove

	Permille Permille // HashFull, CpuLoad

	CpuNum uint32 // CurrLine
}

func InfoDepthOf(n uint32) Info      { return Info{Kind: InfoDepth, U32: n} }
func InfoSelDepthOf(n uint32) Info   { return Info{Kind: InfoSelDepth, U32: n} }
func InfoTimeOf(d time.Duration) Info { return Info{Kind: InfoTime, Time: d} }
func InfoNodesOf(n uint64) Info      { return Info{Kind: InfoNodes, U64: n} }
func InfoPvOf(moves []Move) Info     { return Info{Kind: InfoPv, Moves: moves} }
func InfoMultiPvOf(n uint32) Info    { return Info{Kind: InfoMultiPv, U32: n} }
func InfoScoreOf(s BoundedRelScore) Info { return Info{Kind: InfoScore, Score: s} }
func InfoCurrMoveOf(m Move) Info     { return Info{Kind: InfoCurrMove, Move: m} }
func InfoCurrMoveNumberOf(n uint32) Info { return Info{Kind: InfoCurrMoveNumber, U32: n} }
func InfoHashFullOf(p Permille) Info { return Info{Kind: InfoHashFull, Permille: p} }
func InfoNpsOf(n uint64) Info        { return Info{Kind: InfoNps, U64: n} }
func InfoTbHitsOf(n uint64) Info     { return Info{Kind: InfoTbHits, U64: n} }
func InfoSbHitsOf(n uint64) Info     { return Info{Kind: InfoSbHits, U64: n} }
func InfoCpuLoadOf(p Permille) Info  { return Info{Kind: InfoCpuLoad, Permille: p} }
func InfoRefutationOf(moves []Move) Info { return Info{Kind: InfoRefutation, Moves: moves} }
func InfoCurrLineOf(cpuNum uint32, moves []Move) Info {
	return Info{Kind: InfoCurrLine, CpuNum: cpuNum, Moves: moves}
}

// OptBodyKind discriminates the variants of OptBody.
type OptBodyKind uint8

const (
	OptBodyCheck OptBodyKind = iota
	OptBodySpin
	OptBodyCombo
	OptBodyButton
	OptBodyString
)

// OptBody is the "type ..." payload of an "option" message, describing one
// of the five kinds of UCI option a GUI can present to the user.
type OptBody struct {
	Kind OptBodyKind

	CheckDefault bool

	SpinDefault, SpinMin, SpinMax int64

	ComboDefault OptComboVar
	ComboVars    []OptComboVar

	StringDefault UciString
}

func OptBodyCheckOf(def bool) OptBody { return OptBody{Kind: OptBodyCheck, CheckDefault: def} }

func OptBodySpinOf(def, min, max int64) OptBody {
	return OptBody{Kind: OptBodySpin, SpinDefault: def, SpinMin: min, SpinMax: max}
}

func OptBodyComboOf(def OptComboVar, vars []OptComboVar) OptBody {
	return OptBody{Kind: OptBodyCombo, ComboDefault: def, ComboVars: vars}
}

func OptBodyButtonOf() OptBody { return OptBody{Kind: OptBodyButton} }

func OptBodyStringOf(def UciString) OptBody {
	return OptBody{Kind: OptBodyString, StringDefault: def}
}

// Go is the payload of the "go" command: a record of every optional search
// parameter, preserved exactly as parsed with no precedence collapse
// between e.g. infinite and wtime/btime.
type Go struct {
	SearchMoves []Move
	HasSearchMoves bool

	Ponder   bool
	Infinite bool

	WTime, BTime       time.Duration
	HasWTime, HasBTime bool
	WInc, BInc         time.Duration
	HasWInc, HasBInc   bool

	MoveStoGo    uint64
	HasMoveStoGo bool

	Mate    uint64
	HasMate bool
	Depth   uint64
	HasDepth bool

	Nodes    uint32
	HasNodes bool

	MoveTime    time.Duration
	HasMoveTime bool
}

// CollapsedLimitsKind names the mutually-exclusive search-limit family a
// collapsed Go view falls into, mirroring an engine-side sum type that
// picks one limiting resource instead of tracking every field that was
// present on the wire.
type CollapsedLimitsKind uint8

const (
	LimitsNone CollapsedLimitsKind = iota
	LimitsInfinite
	LimitsMate
	LimitsClock
	LimitsOther
)

// CollapsedLimits is a derived, lossy view of Go recovering the collapsed
// sum-type shape an engine's search scheduler more naturally consumes: it
// picks a single governing limit by a fixed precedence (infinite, then
// mate, then clock-based, then depth/nodes/movetime/unset) and drops the
// rest. Go itself never performs this collapse; callers that want it ask
// for it explicitly.
type CollapsedLimits struct {
	Kind CollapsedLimitsKind

	Mate uint64

	WTime, BTime time.Duration
	WInc, BInc   time.Duration
	MoveStoGo    uint64
	HasMoveStoGo bool

	Depth       uint64
	HasDepth    bool
	Nodes       uint32
	HasNodes    bool
	MoveTime    time.Duration
	HasMoveTime bool
}

// CollapsedLimits computes the derived view described above.
func (g Go) CollapsedLimits() CollapsedLimits {
	switch {
	case g.Infinite:
		return CollapsedLimits{Kind: LimitsInfinite}
	case g.HasMate:
		return CollapsedLimits{Kind: LimitsMate, Mate: g.Mate}
	case g.HasWTime || g.HasBTime:
		return CollapsedLimits{
			Kind:         LimitsClock,
			WTime:        g.WTime,
			BTime:        g.BTime,
			WInc:         g.WInc,
			BInc:         g.BInc,
			MoveStoGo:    g.MoveStoGo,
			HasMoveStoGo: g.HasMoveStoGo,
		}
	case g.HasDepth || g.HasNodes || g.HasMoveTime:
		return CollapsedLimits{
			Kind:        LimitsOther,
			Depth:       g.Depth,
			HasDepth:    g.HasDepth,
			Nodes:       g.Nodes,
			HasNodes:    g.HasNodes,
			MoveTime:    g.MoveTime,
			HasMoveTime: g.HasMoveTime,
		}
	default:
		return CollapsedLimits{Kind: LimitsNone}
	}
}

// CommandKind discriminates the variants of Command.
type CommandKind uint8

const (
	CommandUci CommandKind = iota
	CommandDebug
	CommandIsReady
	CommandSetOption
	CommandRegister
	CommandUciNewGame
	CommandPosition
	CommandGo
	CommandStop
	CommandPonderHit
	CommandQuit
)

// Command is one line a GUI can send an engine.
type Command struct {
	Kind CommandKind

	DebugOn bool

	OptName     OptName
	OptValue    UciString
	HasOptValue bool

	Register Register

	Startpos     bool
	Position     RawBoard
	HasPosition  bool
	PositionMoves []Move

	Go Go
}

func CommandUciOf() Command      { return Command{Kind: CommandUci} }
func CommandDebugOf(on bool) Command { return Command{Kind: CommandDebug, DebugOn: on} }
func CommandIsReadyOf() Command  { return Command{Kind: CommandIsReady} }

func CommandSetOptionOf(name OptName, value UciString, has bool) Command {
	return Command{Kind: CommandSetOption, OptName: name, OptValue: value, HasOptValue: has}
}

func CommandRegisterOf(r Register) Command { return Command{Kind: CommandRegister, Register: r} }
func CommandUciNewGameOf() Command         { return Command{Kind: CommandUciNewGame} }

func CommandPositionOf(startpos bool, board RawBoard, hasBoard bool, moves []Move) Command {
	return Command{
		Kind:          CommandPosition,
		Startpos:      startpos,
		Position:      board,
		HasPosition:   hasBoard,
		PositionMoves: moves,
	}
}

func CommandGoOf(g Go) Command  { return Command{Kind: CommandGo, Go: g} }
func CommandStopOf() Command    { return Command{Kind: CommandStop} }
func CommandPonderHitOf() Command { return Command{Kind: CommandPonderHit} }
func CommandQuitOf() Command    { return Command{Kind: CommandQuit} }

// MessageKind discriminates the variants of Message.
type MessageKind uint8

const (
	MessageId MessageKind = iota
	MessageUciOk
	MessageReadyOk
	MessageBestMove
	MessageCopyProtection
	MessageRegistration
	MessageInfo
	MessageOption
)

// Message is one line an engine can send a GUI.
type Message struct {
	Kind MessageKind

	Id Id

	BestMove   Move
	Ponder     Move
	HasPonder  bool

	TriStatus TriStatus

	Info       []Info
	InfoString UciString
	HasInfoString bool

	OptName OptName
	OptBody OptBody
}

func MessageIdOf(id Id) Message   { return Message{Kind: MessageId, Id: id} }
func MessageUciOkOf() Message     { return Message{Kind: MessageUciOk} }
func MessageReadyOkOf() Message   { return Message{Kind: MessageReadyOk} }

func MessageBestMoveOf(best Move, ponder Move, hasPonder bool) Message {
	return Message{Kind: MessageBestMove, BestMove: best, Ponder: ponder, HasPonder: hasPonder}
}

func MessageCopyProtectionOf(s TriStatus) Message {
	return Message{Kind: MessageCopyProtection, TriStatus: s}
}

func MessageRegistrationOf(s TriStatus) Message {
	return Message{Kind: MessageRegistration, TriStatus: s}
}

func MessageInfoOf(info []Info, str UciString, hasStr bool) Message {
	return Message{Kind: MessageInfo, Info: info, InfoString: str, HasInfoString: hasStr}
}

func MessageOptionOf(name OptName, body OptBody) Message {
	return Message{Kind: MessageOption, OptName: name, OptBody: body}
}
