package bfvm

import (
	"fmt"
	"strings"
)

// Disassemble returns one line per instruction. Brackets show their partner.
func (p *Program) Disassemble() string {
	return p.DisassembleWithName("")
}

func (p *Program) DisassembleWithName(name string) string {
	var sb strings.Builder

	if name != "" {
		sb.WriteString(fmt.Sprintf("; === %s ===\n", name))
	}
	sb.WriteString(fmt.Sprintf("; %d instructions, %d loops\n", len(p.Code), len(p.Jumps.Forward)))

	depth := 0
	for i, op := range p.Code {
		if op == OpLoopClose && depth > 0 {
			depth--
		}
		sb.WriteString(fmt.Sprintf("%04d  %s%s", i, strings.Repeat("  ", depth), op))
		switch op {
		case OpLoopOpen:
			if target, ok := p.Jumps.Forward[i]; ok {
				sb.WriteString(fmt.Sprintf("  -> %04d", target))
			}
			depth++
		case OpLoopClose:
			if target, ok := p.Jumps.Reverse[i]; ok {
				sb.WriteString(fmt.Sprintf("  -> %04d", target))
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
