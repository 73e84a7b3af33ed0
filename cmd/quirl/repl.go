package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/reusee/quirl/bfvm"
	"github.com/reusee/quirl/debugs"
	"github.com/reusee/quirl/logs"
	"github.com/reusee/quirl/quirlconfigs"
)

const replHelp = `:dis <program>   print the disassembly
:inspect [expr]  evaluate expr over the last result, or open a starlark session
:theory          describe the machine
:help            print this help
:quit            exit
anything else is run as a program with empty input
`

type evaluator struct {
	run     bfvm.Run
	inspect debugs.Inspect
	tap     debugs.Tap
	newSpan logs.NewSpan
	stdout  io.Writer
	stderr  io.Writer

	line       int
	lastSource string
	last       *bfvm.Result
}

// render prints output as text; bytes that are not UTF-8 become U+FFFD.
func render(w io.Writer, output []byte) {
	fmt.Fprintln(w, strings.ToValidUTF8(string(output), "�"))
}

// eval handles one line and reports whether the session should end.
func (e *evaluator) eval(ctx context.Context, line string) (quit bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	ctx, _ = e.newSpan(ctx, "")

	cmd, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)
	switch cmd {

	case ":quit", ":q":
		return true

	case ":help", ":h":
		fmt.Fprint(e.stdout, replHelp)

	case ":theory":
		fmt.Fprint(e.stdout, strings.TrimPrefix(bfvm.Theory, "\n"))

	case ":dis":
		program, err := bfvm.Load(arg)
		if err != nil {
			fmt.Fprintf(e.stderr, "error: %v\n", err)
			return false
		}
		fmt.Fprint(e.stdout, program.Disassemble())

	case ":inspect":
		if arg == "" {
			e.tap(ctx, "last result", e.globals())
			return false
		}
		value, err := e.inspect(ctx, arg, e.globals())
		if err != nil {
			fmt.Fprintf(e.stderr, "error: %v\n", err)
			return false
		}
		fmt.Fprintln(e.stdout, value.String())

	default:
		e.line++
		src := bfvm.NewSource(fmt.Sprintf("<line %d>", e.line), line)
		result := e.run(ctx, src, nil)
		e.lastSource = line
		e.last = result
		if result.Status != bfvm.StatusLoadError {
			render(e.stdout, result.Output)
		}
		if diag := result.Diagnostic(); diag != "" {
			printError(e.stderr, diag)
		}

	}

	return false
}

// globals exposes the last run to the starlark tap.
func (e *evaluator) globals() map[string]any {
	globals := map[string]any{
		"source": e.lastSource,
		"result": e.last,
		"run": func(source string) []byte {
			return bfvm.RunProgram(source, nil).Output
		},
		"filter": bfvm.Filter,
	}
	if e.last != nil {
		globals["output"] = e.last.Output
		globals["text"] = strings.ToValidUTF8(string(e.last.Output), "�")
		globals["status"] = e.last.Status
		globals["steps"] = e.last.Steps
		globals["error"] = e.last.Err
	}
	return globals
}

func runREPL(
	ctx context.Context,
	e *evaluator,
	prompt quirlconfigs.Prompt,
	historyFile quirlconfigs.HistoryFile,
) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      string(prompt),
		HistoryFile: string(historyFile),
	})
	if err != nil {
		return err
	}
	defer rl.Close()
	for {
		line, err := rl.Readline()
		if err != nil { // Ctrl-C or Ctrl-D
			return nil
		}
		if e.eval(ctx, line) {
			return nil
		}
	}
}
