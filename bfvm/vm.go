package bfvm

import (
	"bufio"
	"io"
)

const TapeSize = 30000

type Tape [TapeSize]byte

// VM holds all state of a single run. Nothing is shared between runs.
type VM struct {
	Program *Program
	Tape    Tape
	DP      int // data pointer
	IP      int // instruction pointer
	Output  []byte
	Input   io.ByteReader
	Steps   int
}

// NewVM prepares a run of program. A nil input behaves as an empty stream.
func NewVM(program *Program, input io.Reader) *VM {
	vm := &VM{
		Program: program,
	}
	if input != nil {
		if br, ok := input.(io.ByteReader); ok {
			vm.Input = br
		} else {
			vm.Input = bufio.NewReader(input)
		}
	}
	return vm
}

// Cell returns the value under the data pointer.
func (v *VM) Cell() byte {
	return v.Tape[v.DP]
}

func (v *VM) fault(err error, op OpCode) error {
	return &Fault{
		Err: err,
		Op:  op,
		IP:  v.IP,
		DP:  v.DP,
	}
}
