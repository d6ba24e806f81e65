package ui

import (
	"fmt"

	"github.com/idilsaglam/homework/internal/store"
)

const maxAssignmentWidth = 100

// StoreLines renders each class in order as "[TAG] Name:" followed by its
// assignments numbered from 1.
func StoreLines(t Theme, entries []store.Entry) []string {
	if len(entries) == 0 {
		return []string{t.Muted.Render("no classes yet (type h for help)")}
	}
	var lines []string
	for i, e := range entries {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, fmt.Sprintf("%s %s",
			t.Accent.Render("["+e.Record.Tag+"]"),
			t.Title.Render(e.Name+":")))
		if len(e.Record.Assignments) == 0 {
			lines = append(lines, "    "+t.Muted.Render("(no assignments)"))
			continue
		}
		for n, a := range e.Record.Assignments {
			lines = append(lines, fmt.Sprintf("    %s %s",
				t.Pending.Render(fmt.Sprintf("%d)", n+1)),
				Truncate(a, maxAssignmentWidth)))
		}
	}
	return lines
}

// Header summarises the store: class and assignment counts.
func Header(t Theme, entries []store.Entry) string {
	total := 0
	for _, e := range entries {
		total += len(e.Record.Assignments)
	}
	return fmt.Sprintf("%s  %s %d  %s %d",
		t.Title.Render("Homework"),
		t.Accent.Render("classes"), len(entries),
		t.Pending.Render(t.SymBullet+" assignments"), total)
}

// RenderStore is the header plus StoreLines inside a Panel.
func RenderStore(t Theme, entries []store.Entry) string {
	lines := append([]string{Header(t, entries), ""}, StoreLines(t, entries)...)
	return Panel(t, lines)
}

