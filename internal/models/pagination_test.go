package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagedSlices(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	p := NewPaged(items, 2, 2)
	assert.Equal(t, []int{3, 4}, p.Items)
	assert.Equal(t, 5, p.Pagination.Count)
	assert.Equal(t, 2, p.Pagination.Page)

	// last partial page
	p = NewPaged(items, 3, 2)
	assert.Equal(t, []int{5}, p.Items)
}

func TestNewPagedSizeZeroReturnsAll(t *testing.T) {
	items := []string{"a", "b", "c"}
	p := NewPaged(items, 4, 0)
	assert.Equal(t, items, p.Items)
	assert.Equal(t, 1, p.Pagination.Page)
	assert.Equal(t, 3, p.Pagination.Count)
}

func TestNewPagedPastEnd(t *testing.T) {
	p := NewPaged([]int{1, 2}, 9, 10)
	assert.Empty(t, p.Items)
	assert.Equal(t, 2, p.Pagination.Count)
}
