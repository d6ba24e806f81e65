package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/idilsaglam/homework/internal/ui"
)

// Loop runs the line-mode command loop: draw the Store, read one line, run
// it, and report failures until the user presses Enter. It returns nil on
// exit or end of input, and the error that stopped it otherwise.
func Loop(in io.Reader, out io.Writer, s *Session, th ui.Theme) error {
	r := bufio.NewReader(in)

	for {
		ui.ClearScreen(out)
		fmt.Fprintln(out, ui.RenderStore(th, s.Store.Entries()))
		fmt.Fprint(out, "> ")
		line, ok, err := readLine(r)
		if !ok {
			fmt.Fprintln(out)
			return err
		}

		cmd, err := s.Execute(line)
		switch {
		case err != nil && IsFatal(err):
			return err
		case err != nil:
			fmt.Fprint(out, th.Error.Render(Message(err)))
			if _, ok, err := readLine(r); !ok {
				return err
			}
		case cmd.Op == OpExit:
			return nil
		case cmd.Op == OpHelp:
			fmt.Fprintln(out, HelpText())
			if _, ok, err := readLine(r); !ok {
				return err
			}
		}
	}
}

// readLine blocks for one line of any length. ok is false once input is
// exhausted; err is set only for a read failure other than end of input.
func readLine(r *bufio.Reader) (line string, ok bool, err error) {
	line, err = r.ReadString('\n')
	switch {
	case err == nil:
	case errors.Is(err, io.EOF):
		if line == "" {
			return "", false, nil
		}
	default:
		return "", false, err
	}
	return strings.TrimRight(line, "\r\n"), true, nil
}

// Exec runs a single command line without a loop, for scripting. Unknown
// tokens are an error here rather than a no-op. The parsed command is
// returned so callers can tell a saved mutation from help or exit.
func Exec(s *Session, line string) (Command, error) {
	cmd, err := s.Execute(line)
	if err != nil {
		return cmd, err
	}
	if cmd.Op == OpNone && cmd.Token != "" {
		return cmd, fmt.Errorf("%q: %w", cmd.Token, ErrUnknownCommand)
	}
	return cmd, nil
}
