package mapper

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	ID   string
	Name string
}

type entity struct {
	Name string
}

func TestMapSlice(t *testing.T) {
	assert.Nil(t, MapSlice[int, string](nil, strconv.Itoa))
	assert.Equal(t, []string{"1", "2"}, MapSlice([]int{1, 2}, strconv.Itoa))
}

func TestMapSlicePtrWithID(t *testing.T) {
	toEntity := func(r *row) (*entity, error) {
		if r.Name == "" {
			return nil, errors.New("empty name")
		}
		if r.Name == "skip" {
			return nil, nil
		}
		return &entity{Name: r.Name}, nil
	}
	getID := func(r *row) string { return r.ID }

	got, err := MapSlicePtrWithID([]*row{{ID: "a", Name: "x"}, nil, {ID: "b", Name: "skip"}}, toEntity, getID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "x", got[0].Name)

	_, err = MapSlicePtrWithID([]*row{{ID: "bad"}}, toEntity, getID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "item ID bad")
}
