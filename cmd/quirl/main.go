package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/reusee/dscope"
	"github.com/reusee/quirl/bfvm"
	"github.com/reusee/quirl/cmds"
	"github.com/reusee/quirl/debugs"
	"github.com/reusee/quirl/logs"
	"github.com/reusee/quirl/modes"
	"github.com/reusee/quirl/quirlconfigs"
)

var (
	fileFlag    = cmds.Var[string]("-file", "run a program file, stdin is its input")
	imageFlag   = cmds.Var[string]("-image", "run a compiled program image, stdin is its input")
	compileFlag = cmds.Var[string]("-compile", "write the program image of -file to this path instead of running it")
	disFlag     = cmds.Switch("-dis", "print the disassembly of -file or -image instead of running it")
)

const (
	exitOK = iota
	exitLoadError
	exitFault
	exitAborted
	exitUsage
)

func main() {
	cmds.Execute(os.Args[1:])

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	code := exitOK
	scope.Call(func(
		logger logs.Logger,
		_ quirlconfigs.LogLevel,
		run bfvm.Run,
		inspect debugs.Inspect,
		tap debugs.Tap,
		newSpan logs.NewSpan,
		prompt quirlconfigs.Prompt,
		historyFile quirlconfigs.HistoryFile,
		banner quirlconfigs.Banner,
	) {
		ctx := context.Background()

		if *fileFlag != "" || *imageFlag != "" {
			code = runBatch(ctx, logger, run, os.Stdin, os.Stdout, os.Stderr)
			return
		}

		e := &evaluator{
			run:     run,
			inspect: inspect,
			tap:     tap,
			newSpan: newSpan,
			stdout:  os.Stdout,
			stderr:  os.Stderr,
		}
		if banner {
			render(os.Stdout, bfvm.RunProgram(welcomeProgram, nil).Output)
			fmt.Println()
		}
		if err := runREPL(ctx, e, prompt, historyFile); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			code = exitAborted
		}
	})

	os.Exit(code)
}

// runBatch handles -file and -image and returns the exit code.
func runBatch(
	ctx context.Context,
	logger logs.Logger,
	run bfvm.Run,
	stdin io.Reader,
	stdout io.Writer,
	stderr io.Writer,
) int {
	if *fileFlag != "" && *imageFlag != "" {
		fmt.Fprintln(stderr, "error: -file and -image are exclusive")
		return exitUsage
	}
	if *compileFlag != "" && *fileFlag == "" {
		fmt.Fprintln(stderr, "error: -compile needs -file")
		return exitUsage
	}

	var program *bfvm.Program
	var name string
	switch {

	case *imageFlag != "":
		name = *imageFlag
		data, err := os.ReadFile(name)
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return exitUsage
		}
		program, err = bfvm.UnmarshalProgram(data)
		if err != nil {
			fmt.Fprintf(stderr, "error: %s: %v\n", name, err)
			return exitLoadError
		}

	default:
		name = *fileFlag
		content, err := os.ReadFile(name)
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return exitUsage
		}
		src := bfvm.NewSource(name, string(content))

		if *compileFlag == "" && !*disFlag {
			return report(run(ctx, src, stdin), stdout, stderr)
		}

		program, err = bfvm.LoadSource(src)
		if err != nil {
			printError(stderr, err.Error())
			return exitLoadError
		}

	}

	if *disFlag {
		fmt.Fprint(stdout, program.DisassembleWithName(name))
		return exitOK
	}

	if *compileFlag != "" {
		data, err := bfvm.MarshalProgram(program)
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return exitAborted
		}
		if err := os.WriteFile(*compileFlag, data, 0644); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return exitAborted
		}
		logger.InfoContext(ctx, "program image written",
			"path", *compileFlag,
			"instructions", len(program.Code),
		)
		return exitOK
	}

	return report(bfvm.Execute(program, stdin), stdout, stderr)
}

// report writes raw output bytes and maps the status to an exit code.
func report(result *bfvm.Result, stdout io.Writer, stderr io.Writer) int {
	stdout.Write(result.Output)
	if diag := result.Diagnostic(); diag != "" {
		if n := len(result.Output); n > 0 && result.Output[n-1] != '\n' {
			fmt.Fprintln(stderr)
		}
		printError(stderr, diag)
	}
	switch result.Status {
	case bfvm.StatusOK:
		return exitOK
	case bfvm.StatusLoadError:
		return exitLoadError
	case bfvm.StatusFault:
		return exitFault
	}
	return exitAborted
}

func printError(w io.Writer, msg string) {
	fmt.Fprintf(w, "error: %s\n", strings.TrimRight(msg, "\n"))
}
