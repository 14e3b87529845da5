package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// errUsage makes the REPL print the usage line of the failing command.
var errUsage = errors.New("usage")

// errCancelled is returned when the user declines a confirmation.
var errCancelled = errors.New("cancelled")

// command is one REPL verb.
type command struct {
	name    string
	aliases []string
	usage   string
	help    string
	// auth commands are hidden and refused while no session is established.
	auth bool
	run  func(ctx context.Context, args []string) error
}

func (c command) matches(name string) bool {
	if c.name == name {
		return true
	}
	for _, a := range c.aliases {
		if a == name {
			return true
		}
	}
	return false
}

func findCommand(cmds []command, name string) (command, bool) {
	for _, c := range cmds {
		if c.matches(name) {
			return c, true
		}
	}
	return command{}, false
}

// runREPL starts a simple read–eval–print loop for the CareerPilot CLI.
//
// It prints the prompt returned by promptFn, reads a line, parses the first
// token as the command and dispatches it. "help" lists the commands
// available in the current session state; "exit" and "quit" leave the loop,
// as do EOF and a cancelled ctx. Command errors are printed and the loop
// carries on.
func runREPL(ctx context.Context, in *bufio.Reader, w io.Writer, cmds []command, loggedIn func() bool, promptFn func() string) {
	for {
		if ctx.Err() != nil {
			return
		}
		fmt.Fprint(w, promptFn())

		line, err := in.ReadString('\n')
		if err != nil && line == "" {
			fmt.Fprintln(w)
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		name, args := parts[0], parts[1:]

		switch name {
		case "help", "?":
			printHelp(w, cmds, loggedIn())
			continue
		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return
		}

		cmd, ok := findCommand(cmds, name)
		if !ok {
			fmt.Fprintln(w, "Unknown command:", name)
			continue
		}
		if cmd.auth && !loggedIn() {
			fmt.Fprintln(w, "Please log in first.")
			continue
		}

		if err := cmd.run(ctx, args); err != nil {
			if errors.Is(err, errUsage) {
				fmt.Fprintln(w, "Usage:", cmd.usage)
				continue
			}
			if errors.Is(err, errCancelled) {
				fmt.Fprintln(w, "Cancelled.")
				continue
			}
			printError(w, err)
		}
	}
}

func printHelp(w io.Writer, cmds []command, loggedIn bool) {
	fmt.Fprintln(w, titleStyle.Render("Available commands:"))
	for _, c := range cmds {
		if c.auth && !loggedIn {
			continue
		}
		fmt.Fprintf(w, "  %-36s %s\n", c.usage, mutedStyle.Render(c.help))
	}
	fmt.Fprintf(w, "  %-36s %s\n", "help", mutedStyle.Render("show this list"))
	fmt.Fprintf(w, "  %-36s %s\n", "exit", mutedStyle.Render("leave the program"))
}
