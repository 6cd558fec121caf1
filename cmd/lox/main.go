// The lox command runs a Lox script, or starts a REPL when given no file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"
	"strings"

	"github.com/labstack/gommon/color"
	"golang.org/x/term"

	"lox/internal"
)

// Exit codes
const (
	exitUsage   = 64
	exitStatic  = 65
	exitRuntime = 70
	exitIO      = 74
)

// flags
var (
	execprog   = flag.String("c", "", "execute program `prog`")
	printAst   = flag.Bool("ast", false, "print the syntax tree instead of running")
	configPath = flag.String("config", "", "read settings from this YAML `file`")
	verbose    = flag.Bool("v", false, "log every pipeline stage")
	useColor   = flag.Bool("color", true, "color diagnostics when stderr is a terminal")
)

// stdPrinter writes program output to stdout. Diagnostics written to stderr
// are colored red when enabled.
type stdPrinter struct {
	color *color.Color
}

func newStdPrinter(enabled bool) stdPrinter {
	c := color.New()
	if !enabled || !term.IsTerminal(int(os.Stderr.Fd())) {
		c.Disable()
	}
	return stdPrinter{color: c}
}

func (s stdPrinter) Println(a ...interface{}) (n int, err error) {
	return fmt.Println(a...)
}

func (s stdPrinter) Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error) {
	if w == os.Stderr {
		return fmt.Fprint(w, s.color.Red(fmt.Sprintf(format, a...)))
	}
	return fmt.Fprintf(w, format, a...)
}

func (s stdPrinter) Fprintln(w io.Writer, a ...interface{}) (n int, err error) {
	if w == os.Stderr {
		return fmt.Fprintln(w, s.color.Red(strings.TrimSuffix(fmt.Sprintln(a...), "\n")))
	}
	return fmt.Fprintln(w, a...)
}

func main() {
	os.Exit(doMain())
}

func doMain() int {
	log.SetPrefix("lox: ")
	log.SetFlags(0)
	flag.Parse()

	cfg, err := internal.LoadConfig(*configPath)
	if err != nil {
		log.Print(err)
		return exitUsage
	}
	// Flags given on the command line win over the config file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "v":
			if *verbose {
				cfg.LogLevel = "debug"
			}
		case "color":
			cfg.Color = *useColor
		}
	})

	logger, err := cfg.NewLogger(os.Stderr)
	if err != nil {
		log.Print(err)
		return exitUsage
	}

	printer := newStdPrinter(cfg.Color)

	switch {
	case flag.NArg() == 1 || *execprog != "":
		var source string
		if *execprog != "" {
			source = *execprog
		} else {
			b, err := ioutil.ReadFile(flag.Arg(0))
			if err != nil {
				log.Print(err)
				return exitIO
			}
			source = string(b)
		}
		if *printAst {
			return report(printer, internal.PrintTree(source, printer))
		}
		in := internal.NewInterpreter(printer, internal.WithLogger(logger))
		err := in.Run(source)
		in.Report(err)
		return exitCode(err)
	case flag.NArg() == 0:
		in := internal.NewInterpreter(printer, internal.WithLogger(logger))
		if err := repl(in, cfg); err != nil {
			log.Print(err)
			return exitIO
		}
	default:
		log.Print("want at most one Lox file name")
		return exitUsage
	}
	return 0
}

func report(p stdPrinter, err error) int {
	var static internal.StaticErrors
	if errors.As(err, &static) {
		for _, d := range static {
			p.Fprintln(os.Stderr, d.Error())
		}
	}
	return exitCode(err)
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var diag *internal.Diagnostic
	if errors.As(err, &diag) && diag.Kind == internal.RuntimeError {
		return exitRuntime
	}
	return exitStatic
}
