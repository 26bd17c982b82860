package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alexflint/go-arg"
	"github.com/google/shlex"
	"golang.org/x/term"

	"github.com/Shivanand-hulikatti/happenings/internal/handler"
)

const prompt = "happenings> "

// runShell reads commands line by line against one long-lived store until
// input ends, the user quits, or ctx is cancelled.
func runShell(ctx context.Context, h *handler.Handler, in io.Reader, out io.Writer) error {
	interactive := false
	if f, ok := in.(*os.File); ok {
		interactive = term.IsTerminal(int(f.Fd()))
	}
	if interactive {
		fmt.Fprintln(out, "Happenings shell. Type help for commands, exit to quit.")
	}

	scanner := bufio.NewScanner(in)
	for {
		if ctx.Err() != nil {
			return nil
		}
		if interactive {
			fmt.Fprint(out, prompt)
		}
		if !scanner.Scan() {
			return scanner.Err()
		}
		if quit := execLine(ctx, h, out, scanner.Text()); quit {
			return nil
		}
	}
}

// execLine runs one shell line and reports whether the session should end.
func execLine(ctx context.Context, h *handler.Handler, out io.Writer, line string) bool {
	fields, err := shlex.Split(line)
	if err != nil {
		fmt.Fprintf(out, "parse error: %v\n", err)
		return false
	}
	if len(fields) == 0 {
		return false
	}

	var cli args
	p, err := arg.NewParser(arg.Config{Program: "happenings", IgnoreEnv: true}, &cli)
	if err != nil {
		fmt.Fprintf(out, "error: %v\n", err)
		return false
	}

	switch fields[0] {
	case "exit", "quit":
		return true
	case "help":
		p.WriteHelp(out)
		return false
	}

	if err := p.Parse(fields); err != nil {
		if errors.Is(err, arg.ErrHelp) {
			_ = p.WriteHelpForSubcommand(out, p.SubcommandNames()...)
			return false
		}
		fmt.Fprintf(out, "error: %v\n", err)
		return false
	}
	if p.Subcommand() == nil {
		p.WriteUsage(out)
		return false
	}

	if err := run(ctx, h, out, p.Subcommand()); err != nil {
		fmt.Fprintln(out, handler.Message(err))
	}
	fmt.Fprintln(out)
	return false
}
