package bfvm

import (
	"errors"
	"fmt"
	"io"
)

// Run dispatches instructions until the instruction pointer runs off the end
// of the program. Output produced before a fault stays in v.Output.
func (v *VM) Run() error {
	code := v.Program.Code
	forward := v.Program.Jumps.Forward
	reverse := v.Program.Jumps.Reverse

	for ; v.IP < len(code); v.IP++ {
		op := code[v.IP]
		v.Steps++

		switch op {
		case OpIncCell:
			v.Tape[v.DP]++

		case OpDecCell:
			v.Tape[v.DP]--

		case OpMoveRight:
			if v.DP >= TapeSize-1 {
				return v.fault(ErrTapeOverflow, op)
			}
			v.DP++

		case OpMoveLeft:
			if v.DP <= 0 {
				return v.fault(ErrTapeUnderflow, op)
			}
			v.DP--

		case OpOutput:
			v.Output = append(v.Output, v.Tape[v.DP])

		case OpInput:
			if v.Input == nil {
				// EOF leaves the cell unchanged
				continue
			}
			b, err := v.Input.ReadByte()
			if errors.Is(err, io.EOF) {
				continue
			} else if err != nil {
				return fmt.Errorf("read input at instruction %d: %w", v.IP, err)
			}
			v.Tape[v.DP] = b

		case OpLoopOpen:
			// land on the matching ], the increment below steps past it
			if v.Tape[v.DP] == 0 {
				v.IP = forward[v.IP]
			}

		case OpLoopClose:
			if v.Tape[v.DP] != 0 {
				v.IP = reverse[v.IP]
			}

		default:
			return fmt.Errorf("%w: %d at instruction %d", ErrBadOpCode, op, v.IP)

		}
	}

	return nil
}
