package bfvm

import (
	"maps"
	"strings"
)

// JumpTable links every [ to its ] and back, indexed by instruction position.
type JumpTable struct {
	Forward map[int]int
	Reverse map[int]int
}

type Program struct {
	Code  []OpCode
	Jumps JumpTable
}

// String returns the filtered instruction text.
func (p *Program) String() string {
	var sb strings.Builder
	sb.Grow(len(p.Code))
	for _, op := range p.Code {
		sb.WriteRune(op.Symbol())
	}
	return sb.String()
}

// Validate checks that the jump table is exactly the bracket matching of Code.
func (p *Program) Validate() error {
	m := newBracketMatcher()
	for i, op := range p.Code {
		if op.Symbol() == 0 {
			return &LoadError{
				Err:   ErrBadOpCode,
				Index: i,
			}
		}
		m.add(i, op)
	}
	jumps, index, err := m.result()
	if err != nil {
		return &LoadError{
			Err:   err,
			Index: index,
		}
	}
	if !maps.Equal(jumps.Forward, p.Jumps.Forward) ||
		!maps.Equal(jumps.Reverse, p.Jumps.Reverse) {
		return ErrBadJumpTable
	}
	return nil
}

type bracketMatcher struct {
	jumps      JumpTable
	opens      []int
	firstClose int
}

func newBracketMatcher() *bracketMatcher {
	return &bracketMatcher{
		jumps: JumpTable{
			Forward: make(map[int]int),
			Reverse: make(map[int]int),
		},
		firstClose: -1,
	}
}

func (m *bracketMatcher) add(index int, op OpCode) {
	switch op {
	case OpLoopOpen:
		m.opens = append(m.opens, index)
	case OpLoopClose:
		if len(m.opens) == 0 {
			// keep scanning, the first orphan is what gets reported
			if m.firstClose < 0 {
				m.firstClose = index
			}
			return
		}
		open := m.opens[len(m.opens)-1]
		m.opens = m.opens[:len(m.opens)-1]
		m.jumps.Forward[open] = index
		m.jumps.Reverse[index] = open
	}
}

// result reports an unmatched ] before any unmatched [, along with the index of
// the first offending bracket.
func (m *bracketMatcher) result() (JumpTable, int, error) {
	if m.firstClose >= 0 {
		return m.jumps, m.firstClose, ErrUnmatchedClose
	}
	if len(m.opens) > 0 {
		return m.jumps, m.opens[0], ErrUnmatchedOpen
	}
	return m.jumps, -1, nil
}
