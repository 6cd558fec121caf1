package main

import (
	"fmt"
	"io"

	"github.com/chzyer/readline"

	"lox/internal"
)

// repl reads one line at a time and runs it on in, so globals defined on one
// line are visible on the next. Errors are reported and the loop goes on.
func repl(in *internal.Interpreter, cfg internal.Config) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          cfg.Prompt,
		HistoryFile:     cfg.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			// Ctrl-C drops the current line
			continue
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if line == "" {
			continue
		}
		in.Report(in.Run(line))
	}
	fmt.Println()
	return nil
}
