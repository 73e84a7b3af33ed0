package bfvm

import "strings"

type Source struct {
	Name    string
	Content string
	Lines   []string
}

func NewSource(name string, content string) *Source {
	return &Source{
		Name:    name,
		Content: content,
		Lines:   strings.Split(content, "\n"),
	}
}

// Pos is a 1-based line and rune column in a Source.
type Pos struct {
	Source *Source
	Line   int
	Column int
}

func (p *Pos) advance(r rune) {
	if r == '\n' {
		p.Line++
		p.Column = 1
	} else {
		p.Column++
	}
}
