package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginate(t *testing.T) {
	items := make([]int, 45)
	for i := range items {
		items[i] = i
	}

	page, meta := Paginate(items, 1, 20)
	require.Len(t, page, 20)
	assert.Equal(t, 0, page[0])
	assert.Equal(t, 45, meta.Total)
	assert.Equal(t, 3, meta.TotalPages)

	last, meta := Paginate(items, 3, 20)
	require.Len(t, last, 5)
	assert.Equal(t, 40, last[0])
	assert.Equal(t, 3, meta.Page)
}

func TestPaginatePastTheEnd(t *testing.T) {
	page, meta := Paginate([]int{1, 2, 3}, 9, 20)
	assert.Empty(t, page)
	assert.Equal(t, 3, meta.Total)
}

func TestPaginateNormalizesBadInput(t *testing.T) {
	items := []int{1, 2, 3}

	page, meta := Paginate(items, 0, -5)
	assert.Len(t, page, 3)
	assert.Equal(t, 1, meta.Page)
	assert.Equal(t, 20, meta.Limit)

	_, meta = Paginate(items, 1, 500)
	assert.Equal(t, 20, meta.Limit, "limit is capped")
}
