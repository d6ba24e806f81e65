package cli

import (
	"errors"
	"fmt"

	"github.com/idilsaglam/homework/internal/store"
)

// Message maps an error to the text shown to the user.
func Message(err error) string {
	switch {
	case errors.Is(err, store.ErrClassNotFound):
		return "A class with that tag could not be found"
	case errors.Is(err, store.ErrTagAlreadyExists):
		return "A class with that tag already exists. Please choose a different tag or remove that class first"
	case errors.Is(err, store.ErrInvalidMovementDirection):
		return "The given movement command is invalid. Please either use 'u' or 'd' for up or down"
	case errors.Is(err, store.ErrInvalidAssignmentIndex):
		return "An assignment of that index in this class does not exist"
	case errors.Is(err, ErrMissingArguments):
		return "An incorrect number of arguments was given. Please run `h` or `help` to view the commands"
	case errors.Is(err, ErrInvalidArgumentType):
		return "An argument was given with an invalid type. Please run `h` or `help` to view the commands"
	case errors.Is(err, ErrUnknownCommand):
		return "Unknown command. Please run `h` or `help` to view the commands"
	}
	return fmt.Sprintf("Unexpected error: %v", err)
}

// IsFatal reports whether err should end the loop.
func IsFatal(err error) bool {
	var pe *PersistError
	return errors.As(err, &pe)
}
