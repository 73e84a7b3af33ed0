package bfvm

import "strings"

// Load filters source down to the eight instruction symbols and pairs the
// brackets. Everything else in source is a comment.
func Load(source string) (*Program, error) {
	return LoadSource(NewSource("", source))
}

func LoadSource(src *Source) (*Program, error) {
	program := new(Program)
	m := newBracketMatcher()
	// source positions of brackets, by code index
	positions := make(map[int]Pos)

	pos := Pos{
		Source: src,
		Line:   1,
		Column: 1,
	}
	for _, r := range src.Content {
		if op, ok := OpCodeOf(r); ok {
			index := len(program.Code)
			program.Code = append(program.Code, op)
			if op == OpLoopOpen || op == OpLoopClose {
				positions[index] = pos
			}
			m.add(index, op)
		}
		pos.advance(r)
	}

	jumps, index, err := m.result()
	if err != nil {
		return nil, &LoadError{
			Err:   err,
			Index: index,
			Pos:   positions[index],
		}
	}
	program.Jumps = jumps

	return program, nil
}

// Filter drops every non-instruction rune. Filter(Filter(s)) == Filter(s).
func Filter(source string) string {
	return strings.Map(func(r rune) rune {
		if _, ok := OpCodeOf(r); ok {
			return r
		}
		return -1
	}, source)
}
