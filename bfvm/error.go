package bfvm

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnmatchedOpen  = errors.New("unmatched [")
	ErrUnmatchedClose = errors.New("unmatched ]")
	ErrBadJumpTable   = errors.New("jump table does not match brackets")
	ErrBadOpCode      = errors.New("unknown opcode")

	ErrTapeOverflow  = errors.New("tape overflow")
	ErrTapeUnderflow = errors.New("tape underflow")
)

// LoadError reports a structural problem found before execution.
// Only the first offending bracket is reported.
type LoadError struct {
	Err   error
	Index int // position in the instruction sequence
	Pos   Pos // zero when loaded from an image
}

func (e *LoadError) Error() string {
	if e.Pos.Source == nil {
		return fmt.Sprintf("%s at instruction %d", e.Err.Error(), e.Index)
	}

	name := e.Pos.Source.Name
	if name == "" {
		name = "<input>"
	}
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s at %s:%d:%d\n", e.Err.Error(), name, e.Pos.Line, e.Pos.Column))

	lines := e.Pos.Source.Lines
	idx := e.Pos.Line - 1
	if idx >= 0 && idx < len(lines) {
		line := lines[idx]
		sb.WriteString(line)
		sb.WriteString("\n")

		col := e.Pos.Column - 1
		for i, r := range []rune(line) {
			if i >= col {
				break
			}
			if r == '\t' {
				sb.WriteString("\t")
			} else {
				sb.WriteString(strings.Repeat(" ", runeWidth(r)))
			}
		}
		sb.WriteString("^\n")
	}

	return sb.String()
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Fault is a fatal run-time condition: the program stepped off the tape.
type Fault struct {
	Err error
	Op  OpCode
	IP  int
	DP  int
}

func (f *Fault) Error() string {
	return fmt.Sprintf("%s: '%s' at instruction %d with data pointer %d", f.Err.Error(), f.Op, f.IP, f.DP)
}

func (f *Fault) Unwrap() error {
	return f.Err
}

func runeWidth(r rune) int {
	if r == 0 {
		return 0
	}
	if r >= 0x1100 &&
		(r <= 0x115f || r == 0x2329 || r == 0x232a ||
			(r >= 0x2e80 && r <= 0xa4cf && r != 0x303f) ||
			(r >= 0xac00 && r <= 0xd7a3) ||
			(r >= 0xf900 && r <= 0xfaff) ||
			(r >= 0xfe30 && r <= 0xfe6f) ||
			(r >= 0xff00 && r <= 0xff60) ||
			(r >= 0xffe0 && r <= 0xffe6)) {
		return 2
	}
	return 1
}
