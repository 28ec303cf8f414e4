package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortBy(t *testing.T) {
	t.Parallel()

	vals := []int{3, 1, 2}

	sortBy(vals, func(v int) int { return v }, true)
	assert.Equal(t, []int{1, 2, 3}, vals)

	sortBy(vals, func(v int) int { return v }, false)
	assert.Equal(t, []int{3, 2, 1}, vals)
}

func TestPaginate(t *testing.T) {
	t.Parallel()

	vals := []int{1, 2, 3, 4, 5}

	assert.Equal(t, vals, paginate(vals, nil, nil))

	offset := 2
	assert.Equal(t, []int{3, 4, 5}, paginate(vals, &offset, nil))

	limit := 2
	assert.Equal(t, []int{3, 4}, paginate(vals, &offset, &limit))

	offset = 10
	assert.Equal(t, []int{}, paginate(vals, &offset, nil))
}
