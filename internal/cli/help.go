package cli

import "fmt"

// HelpText is the command reference shown by h/help.
func HelpText() string {
	return fmt.Sprintf(`Commands:
  %s <class_name> <class_tag>
      Add a class
  %s <class_tag>
      Remove a class
  %s <class_tag> <new_class_tag>
      Change a class's tag
  %s <class_tag> <u|d>
      Move a class up or down
  %s <class_tag> <assignment...>
      Add an assignment to a class
  %s <class_tag> <assignment_index>
      Remove an assignment from a class (1-based)
  %s <class_tag>
      Clear a class's assignments
  h, help
      Show this help
  e, exit
      Quit`,
		AddClassCommand, RemoveClassCommand, ChangeClassTagCommand, MoveClassCommand,
		AddAssignmentCommand, RemoveAssignmentCommand, ClearAssignmentsCommand)
}
