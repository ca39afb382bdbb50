package setutil

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {
	s := New("a", "b")
	s.Add("c")
	s.AddAll([]string{"a", "d"})

	assert.Equal(t, 4, s.Len())
	assert.True(t, s.Has("d"))
	assert.False(t, s.Has("z"))

	got := s.ToSlice()
	sort.Strings(got)
	assert.Equal(t, []string{"a", "b", "c", "d"}, got)
}

func TestSetFilterKeepsOrder(t *testing.T) {
	s := New("x", "y")
	assert.Equal(t, []string{"y", "x", "y"}, s.Filter([]string{"y", "q", "x", "y"}))
	assert.Empty(t, New[string]().Filter([]string{"a"}))
}
