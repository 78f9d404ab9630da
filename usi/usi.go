// Package usi is a pure string codec for the USI (Universal Shogi
// Interface) protocol: parsing GUI→engine command lines into a Command
// value, and formatting engine→GUI response lines. It never wires up an
// event loop, stdin/stdout, or search — those are out of scope.
package usi

import "strings"

// Kind identifies which GUI→engine command a Command represents.
type Kind int

const (
	Unknown Kind = iota
	USI
	IsReady
	USINewGame
	Position
	Go
	SetOption
	PonderHit
	Stop
	Quit
)

// Command is a parsed GUI→engine command line. Only the fields relevant
// to Kind are meaningful.
type Command struct {
	Kind Kind

	// Position fields.
	StartPos bool     // true when the position is "startpos"
	SFEN     string   // the raw board/side/hand/move-count SFEN, unset if StartPos
	Moves    []string // move-SFEN tokens following "moves"

	// Go fields: every "go" subcommand is stored as a token→value pair;
	// a flag with no value ("infinite", "ponder") maps to "".
	GoOptions map[string]string

	// SetOption fields.
	OptionName  string
	OptionValue string
}

// ParseCommand reads one USI command line. It reports ok=false for a
// blank line or an unrecognized first token.
func ParseCommand(line string) (Command, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, false
	}

	switch fields[0] {
	case "usi":
		return Command{Kind: USI}, true
	case "isready":
		return Command{Kind: IsReady}, true
	case "usinewgame":
		return Command{Kind: USINewGame}, true
	case "ponderhit":
		return Command{Kind: PonderHit}, true
	case "stop":
		return Command{Kind: Stop}, true
	case "quit":
		return Command{Kind: Quit}, true
	case "position":
		return parsePosition(fields[1:])
	case "go":
		return parseGo(fields[1:])
	case "setoption":
		return parseSetOption(fields[1:])
	default:
		return Command{}, false
	}
}

// parsePosition reads "startpos [moves ...]" or "sfen <board> <side>
// <hand> <count> [moves ...]".
func parsePosition(fields []string) (Command, bool) {
	cmd := Command{Kind: Position}
	if len(fields) == 0 {
		return Command{}, false
	}

	i := 0
	switch fields[0] {
	case "startpos":
		cmd.StartPos = true
		i = 1
	case "sfen":
		if len(fields) < 5 {
			return Command{}, false
		}
		cmd.SFEN = strings.Join(fields[1:5], " ")
		i = 5
	default:
		return Command{}, false
	}

	if i < len(fields) {
		if fields[i] != "moves" {
			return Command{}, false
		}
		cmd.Moves = append(cmd.Moves, fields[i+1:]...)
	}
	return cmd, true
}

// goFlags lists "go" subcommands that carry no value.
var goFlags = map[string]bool{"infinite": true, "ponder": true}

// parseGo reads a "go" line's subcommands into a flat token→value map.
func parseGo(fields []string) (Command, bool) {
	cmd := Command{Kind: Go, GoOptions: make(map[string]string)}
	for i := 0; i < len(fields); i++ {
		key := fields[i]
		if goFlags[key] {
			cmd.GoOptions[key] = ""
			continue
		}
		if i+1 >= len(fields) {
			return Command{}, false
		}
		cmd.GoOptions[key] = fields[i+1]
		i++
	}
	return cmd, true
}

// parseSetOption reads "setoption name <name> value <value>"; value is
// optional for a button-type option.
func parseSetOption(fields []string) (Command, bool) {
	if len(fields) < 2 || fields[0] != "name" {
		return Command{}, false
	}
	cmd := Command{Kind: SetOption}
	var name []string
	i := 1
	for i < len(fields) && fields[i] != "value" {
		name = append(name, fields[i])
		i++
	}
	cmd.OptionName = strings.Join(name, " ")
	if i < len(fields) && fields[i] == "value" {
		cmd.OptionValue = strings.Join(fields[i+1:], " ")
	}
	return cmd, true
}

// FormatID renders the engine's two identification lines.
func FormatID(name, author string) []string {
	return []string{"id name " + name, "id author " + author}
}

// FormatUSIOk renders the handshake-complete line.
func FormatUSIOk() string { return "usiok" }

// FormatReadyOk renders the ready-for-position line.
func FormatReadyOk() string { return "readyok" }

// FormatBestMove renders a search result. ponder may be empty, in which
// case no ponder move is appended.
func FormatBestMove(move, ponder string) string {
	if ponder == "" {
		return "bestmove " + move
	}
	return "bestmove " + move + " ponder " + ponder
}

// FormatInfo renders a search-progress line from ordered key/value pairs,
// e.g. FormatInfo("depth", "4", "nodes", "1200").
func FormatInfo(kv ...string) string {
	var b strings.Builder
	b.WriteString("info")
	for _, field := range kv {
		b.WriteByte(' ')
		b.WriteString(field)
	}
	return b.String()
}

// FormatCheckmate renders a "checkmate" response: a mating move sequence,
// or one of the protocol's fixed tokens ("nomate" when none exists,
// "notimplemented" when the engine does not support the query).
func FormatCheckmate(result string) string { return "checkmate " + result }

// FormatOption renders one "option" declaration line during the usi
// handshake.
func FormatOption(name, spec string) string { return "option name " + name + " " + spec }
