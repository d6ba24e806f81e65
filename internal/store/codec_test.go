package store

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONRoundTripKeepsOrder(t *testing.T) {
	s := seeded(t, "Zoology", "ZOO", "Algebra", "ALG", "Music", "MUS")
	require.NoError(t, s.AddAssignment("ALG", "HW1"))
	require.NoError(t, s.AddAssignment("ALG", "HW2"))

	b, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"Zoology": {"tag": "ZOO", "assignments": []},
		"Algebra": {"tag": "ALG", "assignments": ["HW1", "HW2"]},
		"Music":   {"tag": "MUS", "assignments": []}
	}`, string(b))

	got := New()
	require.NoError(t, got.UnmarshalJSON(b))
	if diff := cmp.Diff(s.Entries(), got.Entries()); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestUnmarshalEmptyObject(t *testing.T) {
	s := seeded(t, "A", "x")
	require.NoError(t, s.UnmarshalJSON([]byte(`{}`)))
	assert.Equal(t, 0, s.Len())
}

func TestUnmarshalNullAssignments(t *testing.T) {
	s := New()
	require.NoError(t, s.UnmarshalJSON([]byte(`{"A": {"tag": "x", "assignments": null}}`)))
	_, rec, ok := s.FindByTag("x")
	require.True(t, ok)
	assert.NotNil(t, rec.Assignments)
	assert.Empty(t, rec.Assignments)
}

func TestUnmarshalDuplicateKeyKeepsFirstPosition(t *testing.T) {
	s := New()
	doc := `{"A": {"tag": "a1"}, "B": {"tag": "b"}, "A": {"tag": "a2"}}`
	require.NoError(t, s.UnmarshalJSON([]byte(doc)))
	assert.Equal(t, []string{"A", "B"}, names(s))
	assert.True(t, s.TagExists("a2"))
	assert.False(t, s.TagExists("a1"))
}

func TestUnmarshalRejectsMalformed(t *testing.T) {
	for name, doc := range map[string]string{
		"array":     `[]`,
		"truncated": `{"A": {"tag": "x"`,
		"bad value": `{"A": 3}`,
		"trailing":  `{} {}`,
		"empty":     ``,
	} {
		t.Run(name, func(t *testing.T) {
			s := seeded(t, "Keep", "k")
			assert.Error(t, s.UnmarshalJSON([]byte(doc)))
			assert.Equal(t, []string{"Keep"}, names(s))
		})
	}
}
