package store

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/homework/internal/model"
)

func names(s *Store) []string {
	out := make([]string, 0, s.Len())
	for _, e := range s.Entries() {
		out = append(out, e.Name)
	}
	return out
}

func seeded(t *testing.T, pairs ...string) *Store {
	t.Helper()
	s := New()
	for i := 0; i+1 < len(pairs); i += 2 {
		require.NoError(t, s.AddClass(pairs[i], pairs[i+1]))
	}
	return s
}

func TestAddClassScenario(t *testing.T) {
	s := New()
	require.NoError(t, s.AddClass("Algebra", "ALG"))

	name, rec, ok := s.FindByTag("ALG")
	require.True(t, ok)
	assert.Equal(t, "Algebra", name)
	assert.Empty(t, rec.Assignments)

	require.NoError(t, s.AddAssignment("ALG", "HW1"))
	_, rec, _ = s.FindByTag("ALG")
	assert.Equal(t, []string{"HW1"}, rec.Assignments)

	err := s.AddClass("Bio", "ALG")
	assert.ErrorIs(t, err, ErrTagAlreadyExists)
	assert.Equal(t, 1, s.Len())
}

func TestAddClassAppendsInOrder(t *testing.T) {
	s := seeded(t, "Algebra", "ALG", "Bio", "BIO", "Chem", "CHM")
	assert.Equal(t, []string{"Algebra", "Bio", "Chem"}, names(s))
}

func TestAddClassDuplicateNameReplacesInPlace(t *testing.T) {
	s := seeded(t, "Algebra", "ALG", "Bio", "BIO")
	require.NoError(t, s.AddAssignment("ALG", "HW1"))

	require.NoError(t, s.AddClass("Algebra", "MATH"))

	assert.Equal(t, []string{"Algebra", "Bio"}, names(s))
	assert.False(t, s.TagExists("ALG"))
	_, rec, ok := s.FindByTag("MATH")
	require.True(t, ok)
	assert.Empty(t, rec.Assignments)
}

func TestRemoveClassPreservesOrder(t *testing.T) {
	s := seeded(t, "A", "a", "B", "b", "C", "c", "D", "d")
	require.NoError(t, s.RemoveClass("b"))
	assert.Equal(t, []string{"A", "C", "D"}, names(s))

	assert.ErrorIs(t, s.RemoveClass("b"), ErrClassNotFound)
	assert.Equal(t, 3, s.Len())
}

func TestRenameTag(t *testing.T) {
	t.Run("renames in place", func(t *testing.T) {
		s := seeded(t, "A", "x", "B", "y")
		require.NoError(t, s.RenameTag("x", "z"))
		assert.Equal(t, []string{"A", "B"}, names(s))
		name, _, ok := s.FindByTag("z")
		require.True(t, ok)
		assert.Equal(t, "A", name)
		assert.False(t, s.TagExists("x"))
	})

	t.Run("target tag held by another class", func(t *testing.T) {
		s := seeded(t, "A", "x", "B", "y")
		assert.ErrorIs(t, s.RenameTag("x", "y"), ErrTagAlreadyExists)
		assert.True(t, s.TagExists("x"))
	})

	t.Run("rename to own tag is a no-op", func(t *testing.T) {
		s := seeded(t, "A", "x")
		require.NoError(t, s.RenameTag("x", "x"))
		assert.True(t, s.TagExists("x"))
	})

	t.Run("unknown source tag", func(t *testing.T) {
		s := seeded(t, "A", "x")
		assert.ErrorIs(t, s.RenameTag("nope", "z"), ErrClassNotFound)
		assert.False(t, s.TagExists("z"))
	})

	t.Run("unknown source and taken target", func(t *testing.T) {
		s := seeded(t, "A", "x")
		assert.ErrorIs(t, s.RenameTag("nope", "x"), ErrTagAlreadyExists)
	})
}

func TestTagsStayUnique(t *testing.T) {
	s := New()
	ops := []func() error{
		func() error { return s.AddClass("A", "x") },
		func() error { return s.AddClass("B", "y") },
		func() error { return s.AddClass("C", "x") },
		func() error { return s.RenameTag("y", "x") },
		func() error { return s.RenameTag("y", "z") },
		func() error { return s.AddClass("D", "z") },
		func() error { return s.AddClass("E", "y") },
		func() error { return s.RenameTag("x", "y") },
	}
	for _, op := range ops {
		_ = op()
		seen := map[string]bool{}
		for _, e := range s.Entries() {
			require.False(t, seen[e.Record.Tag], "duplicate tag %q", e.Record.Tag)
			seen[e.Record.Tag] = true
		}
	}
}

func TestMoveClass(t *testing.T) {
	t.Run("up swaps with previous", func(t *testing.T) {
		s := seeded(t, "A", "x", "B", "y")
		require.NoError(t, s.MoveClass("y", ParseDirection("u")))
		assert.Equal(t, []string{"B", "A"}, names(s))
	})

	t.Run("down swaps with next only", func(t *testing.T) {
		s := seeded(t, "A", "a", "B", "b", "C", "c")
		require.NoError(t, s.MoveClass("a", Down))
		assert.Equal(t, []string{"B", "A", "C"}, names(s))
	})

	t.Run("up from first position", func(t *testing.T) {
		s := seeded(t, "A", "x", "B", "y")
		assert.ErrorIs(t, s.MoveClass("x", Up), ErrInvalidMovementDirection)
		assert.Equal(t, []string{"A", "B"}, names(s))
	})

	t.Run("down from last position", func(t *testing.T) {
		s := seeded(t, "A", "x", "B", "y")
		assert.ErrorIs(t, s.MoveClass("y", Down), ErrInvalidMovementDirection)
		assert.Equal(t, []string{"A", "B"}, names(s))
	})

	t.Run("unknown direction", func(t *testing.T) {
		s := seeded(t, "A", "x", "B", "y")
		assert.ErrorIs(t, s.MoveClass("x", ParseDirection("sideways")), ErrInvalidMovementDirection)
	})

	t.Run("unknown tag wins over bad direction", func(t *testing.T) {
		s := seeded(t, "A", "x")
		assert.ErrorIs(t, s.MoveClass("q", NoDirection), ErrClassNotFound)
	})
}

func TestRemoveAssignmentBounds(t *testing.T) {
	s := seeded(t, "A", "x")
	for _, a := range []string{"one", "two", "three"} {
		require.NoError(t, s.AddAssignment("x", a))
	}

	assert.ErrorIs(t, s.RemoveAssignment("x", 0), ErrInvalidAssignmentIndex)
	assert.ErrorIs(t, s.RemoveAssignment("x", 4), ErrInvalidAssignmentIndex)
	assert.ErrorIs(t, s.RemoveAssignment("x", -2), ErrInvalidAssignmentIndex)
	assert.ErrorIs(t, s.RemoveAssignment("q", 1), ErrClassNotFound)

	require.NoError(t, s.RemoveAssignment("x", 1))
	_, rec, _ := s.FindByTag("x")
	assert.Equal(t, []string{"two", "three"}, rec.Assignments)

	require.NoError(t, s.RemoveAssignment("x", 2))
	_, rec, _ = s.FindByTag("x")
	assert.Equal(t, []string{"two"}, rec.Assignments)
}

func TestAssignmentsAllowDuplicates(t *testing.T) {
	s := seeded(t, "A", "x")
	require.NoError(t, s.AddAssignment("x", "read"))
	require.NoError(t, s.AddAssignment("x", "read"))
	_, rec, _ := s.FindByTag("x")
	assert.Equal(t, []string{"read", "read"}, rec.Assignments)
	assert.ErrorIs(t, s.AddAssignment("q", "read"), ErrClassNotFound)
}

func TestClearAssignmentsIdempotent(t *testing.T) {
	s := seeded(t, "A", "x")
	require.NoError(t, s.AddAssignment("x", "HW1"))

	require.NoError(t, s.ClearAssignments("x"))
	require.NoError(t, s.ClearAssignments("x"))
	_, rec, _ := s.FindByTag("x")
	assert.NotNil(t, rec.Assignments)
	assert.Empty(t, rec.Assignments)

	assert.ErrorIs(t, s.ClearAssignments("q"), ErrClassNotFound)
}

func TestEntriesIsACopy(t *testing.T) {
	s := seeded(t, "A", "x")
	require.NoError(t, s.AddAssignment("x", "HW1"))

	got := s.Entries()
	got[0].Record.Assignments[0] = "changed"
	got[0].Record.Tag = "changed"

	want := []Entry{{Name: "A", Record: model.ClassRecord{Tag: "x", Assignments: []string{"HW1"}}}}
	if diff := cmp.Diff(want, s.Entries()); diff != "" {
		t.Fatalf("store changed through Entries (-want +got):\n%s", diff)
	}
}

func TestFindByTagReturnsFirstMatch(t *testing.T) {
	s := New()
	s.Put("A", model.NewClassRecord("dup"))
	s.Put("B", model.NewClassRecord("dup"))

	name, _, ok := s.FindByTag("dup")
	require.True(t, ok)
	assert.Equal(t, "A", name)
	i, ok := s.FindIndexByTag("dup")
	require.True(t, ok)
	assert.Equal(t, 0, i)

	_, ok = s.FindIndexByTag("none")
	assert.False(t, ok)
}

func TestDuplicateTags(t *testing.T) {
	s := seeded(t, "A", "x", "B", "y")
	assert.Empty(t, s.DuplicateTags())

	require.NoError(t, s.UnmarshalJSON([]byte(`{
		"A": {"tag": "x"}, "B": {"tag": "y"}, "C": {"tag": "x"}, "D": {"tag": "x"}, "E": {"tag": "y"}
	}`)))
	assert.Equal(t, []string{"x", "y"}, s.DuplicateTags())
}
