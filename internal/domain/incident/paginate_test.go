package incident

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 5))
	assert.Equal(t, 1, TotalPages(1, 5))
	assert.Equal(t, 1, TotalPages(5, 5))
	assert.Equal(t, 2, TotalPages(6, 5))
	assert.Equal(t, 3, TotalPages(11, 5))
	assert.Equal(t, 0, TotalPages(10, 0))
}

func TestPaginate(t *testing.T) {
	seq := []int{1, 2, 3, 4, 5, 6, 7}

	assert.Equal(t, []int{1, 2, 3}, Paginate(seq, 3, 1))
	assert.Equal(t, []int{4, 5, 6}, Paginate(seq, 3, 2))
	assert.Equal(t, []int{7}, Paginate(seq, 3, 3))
	assert.Empty(t, Paginate(seq, 3, 4))
	assert.Empty(t, Paginate(seq, 3, 0))
	assert.Empty(t, Paginate([]int{}, 3, 1))
}

func TestPaginate_CoversEveryElementOnce(t *testing.T) {
	seq := make([]int, 23)
	for i := range seq {
		seq[i] = i
	}

	var gathered []int
	for page := 1; page <= TotalPages(len(seq), 5); page++ {
		gathered = append(gathered, Paginate(seq, 5, page)...)
	}
	assert.Equal(t, seq, gathered)
}

func TestNextPage(t *testing.T) {
	assert.Equal(t, 2, NextPage(1, 3))
	assert.Equal(t, 3, NextPage(3, 3))
	assert.Equal(t, 3, NextPage(5, 3))
	assert.Equal(t, 1, NextPage(1, 0))
}

func TestPrevPage(t *testing.T) {
	assert.Equal(t, 1, PrevPage(2))
	assert.Equal(t, 1, PrevPage(1))
	assert.Equal(t, 1, PrevPage(0))
	assert.Equal(t, 4, PrevPage(5))
}
