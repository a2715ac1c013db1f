package keyset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiff(t *testing.T) {
	a := New("a.b", "c.d", "e.f")
	b := New("c.d", "x.y")

	assert.Equal(t, []string{"a.b", "e.f"}, a.Diff(b).Sorted())
	assert.Equal(t, []string{"x.y"}, b.Diff(a).Sorted())
}

func TestDiffsAreDisjoint(t *testing.T) {
	used := New("a", "b", "c")
	defined := New("b", "c", "d")

	unused := defined.Diff(used)
	missing := used.Diff(defined)

	assert.Equal(t, 0, unused.Intersect(missing).Len())
}

func TestDiffIsSubsetOfLeftOperand(t *testing.T) {
	a := New("a", "b")
	b := New("b", "c")

	diff := a.Diff(b)
	assert.Equal(t, a.Sorted(), a.Union(diff).Sorted())
}

func TestSortedIsDeterministic(t *testing.T) {
	s := New("z.z", "a.a", "m.m")
	assert.Equal(t, []string{"a.a", "m.m", "z.z"}, s.Sorted())
}

func TestAddDeduplicates(t *testing.T) {
	s := New()
	s.Add("a.b")
	s.Add("a.b")
	assert.Equal(t, 1, s.Len())
	assert.True(t, s.Has("a.b"))
	assert.False(t, s.Has("a"))
}
