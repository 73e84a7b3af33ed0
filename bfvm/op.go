package bfvm

import "fmt"

type OpCode byte

const (
	OpIncCell OpCode = iota + 1
	OpDecCell
	OpMoveRight
	OpMoveLeft
	OpOutput
	OpInput
	OpLoopOpen
	OpLoopClose
)

var opSymbols = [...]rune{
	OpIncCell:   '+',
	OpDecCell:   '-',
	OpMoveRight: '>',
	OpMoveLeft:  '<',
	OpOutput:    '.',
	OpInput:     ',',
	OpLoopOpen:  '[',
	OpLoopClose: ']',
}

// OpCodeOf maps a source symbol to its opcode. Every other rune is a comment.
func OpCodeOf(r rune) (OpCode, bool) {
	switch r {
	case '+':
		return OpIncCell, true
	case '-':
		return OpDecCell, true
	case '>':
		return OpMoveRight, true
	case '<':
		return OpMoveLeft, true
	case '.':
		return OpOutput, true
	case ',':
		return OpInput, true
	case '[':
		return OpLoopOpen, true
	case ']':
		return OpLoopClose, true
	}
	return 0, false
}

func (o OpCode) Symbol() rune {
	if int(o) < len(opSymbols) {
		return opSymbols[o]
	}
	return 0
}

func (o OpCode) String() string {
	if r := o.Symbol(); r != 0 {
		return string(r)
	}
	return fmt.Sprintf("OpCode(%d)", byte(o))
}
