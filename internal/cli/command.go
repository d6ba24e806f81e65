package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Input errors, raised before the Store is touched.
var (
	ErrMissingArguments    = errors.New("incorrect number of arguments")
	ErrInvalidArgumentType = errors.New("invalid argument type")
	ErrUnknownCommand      = errors.New("unknown command")
)

// Op identifies what a parsed line asks for.
type Op int

const (
	OpNone Op = iota // empty line or unknown token
	OpExit
	OpHelp
	OpAddClass
	OpRemoveClass
	OpChangeTag
	OpMoveClass
	OpAddAssignment
	OpRemoveAssignment
	OpClearAssignments
)

// Command tokens.
const (
	AddClassCommand         = "ac"
	RemoveClassCommand      = "rc"
	ChangeClassTagCommand   = "cc"
	MoveClassCommand        = "mc"
	AddAssignmentCommand    = "aa"
	RemoveAssignmentCommand = "ra"
	ClearAssignmentsCommand = "ca"
)

// Command is one validated line of input.
type Command struct {
	Op    Op
	Token string
	Args  []string // positional arguments; aa text is already joined
	Index int      // 1-based assignment position for ra
}

// Mutates reports whether running the command changes the Store.
func (c Command) Mutates() bool {
	return c.Op >= OpAddClass
}

// Parse splits line on whitespace and validates arity and argument types.
func Parse(line string) (Command, error) {
	f := strings.Fields(line)
	if len(f) == 0 {
		return Command{Op: OpNone}, nil
	}
	tok, a := f[0], f[1:]
	cmd := Command{Token: tok}

	exact := func(op Op, n int) (Command, error) {
		if len(a) != n {
			return cmd, fmt.Errorf("%s: want %d, got %d: %w", tok, n, len(a), ErrMissingArguments)
		}
		cmd.Op, cmd.Args = op, a
		return cmd, nil
	}

	switch tok {
	case "e", "exit":
		cmd.Op = OpExit
		return cmd, nil
	case "h", "help":
		cmd.Op = OpHelp
		return cmd, nil
	case AddClassCommand:
		return exact(OpAddClass, 2)
	case RemoveClassCommand:
		return exact(OpRemoveClass, 1)
	case ChangeClassTagCommand:
		return exact(OpChangeTag, 2)
	case MoveClassCommand:
		return exact(OpMoveClass, 2)
	case ClearAssignmentsCommand:
		return exact(OpClearAssignments, 1)
	case AddAssignmentCommand:
		if len(a) < 2 {
			return cmd, fmt.Errorf("%s: want at least 2, got %d: %w", tok, len(a), ErrMissingArguments)
		}
		cmd.Op, cmd.Args = OpAddAssignment, []string{a[0], strings.Join(a[1:], " ")}
		return cmd, nil
	case RemoveAssignmentCommand:
		if _, err := exact(OpRemoveAssignment, 2); err != nil {
			return cmd, err
		}
		n, err := strconv.Atoi(a[1])
		if err != nil || n < 0 {
			return Command{Token: tok}, fmt.Errorf("%s: not a number: %q: %w", tok, a[1], ErrInvalidArgumentType)
		}
		cmd.Index = n
		return cmd, nil
	}
	return cmd, nil
}
