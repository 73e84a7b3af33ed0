package bfvm

import (
	"errors"
	"fmt"
	"io"
)

type Status int

const (
	StatusOK Status = iota
	StatusLoadError
	StatusFault
	StatusAborted
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusLoadError:
		return "load error"
	case StatusFault:
		return "fault"
	case StatusAborted:
		return "aborted"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Result is the outcome of one run.
//
// A load error never executes, so its Output is empty. A fault keeps every byte
// written before the offending instruction.
type Result struct {
	Status Status
	Output []byte
	Err    error
	Steps  int
}

func (r *Result) OK() bool {
	return r.Status == StatusOK
}

// Diagnostic describes why the run did not finish normally, or is empty.
func (r *Result) Diagnostic() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Error()
}

// Execute runs program on a fresh VM.
func Execute(program *Program, input io.Reader) *Result {
	vm := NewVM(program, input)
	err := vm.Run()
	result := &Result{
		Output: vm.Output,
		Err:    err,
		Steps:  vm.Steps,
	}
	var fault *Fault
	switch {
	case err == nil:
		result.Status = StatusOK
	case errors.As(err, &fault):
		result.Status = StatusFault
	default:
		result.Status = StatusAborted
	}
	return result
}

// RunProgram loads and executes source.
func RunProgram(source string, input io.Reader) *Result {
	return RunSource(NewSource("", source), input)
}

func RunSource(src *Source, input io.Reader) *Result {
	program, err := LoadSource(src)
	if err != nil {
		return &Result{
			Status: StatusLoadError,
			Output: []byte{},
			Err:    err,
		}
	}
	return Execute(program, input)
}
