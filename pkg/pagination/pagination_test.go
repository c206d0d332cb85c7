package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		p := Params{}.Normalize()
		assert.Equal(t, int64(1), p.PageNum)
		assert.Equal(t, int64(10), p.PageSize)
	})

	t.Run("OversizedPageFallsBack", func(t *testing.T) {
		p := Params{PageNum: 2, PageSize: 500}.Normalize()
		assert.Equal(t, int64(2), p.PageNum)
		assert.Equal(t, int64(10), p.PageSize)
	})

	t.Run("NegativePage", func(t *testing.T) {
		p := Params{PageNum: -3, PageSize: 20}.Normalize()
		assert.Equal(t, int64(1), p.PageNum)
		assert.Equal(t, int64(20), p.PageSize)
	})
}

func TestOffset(t *testing.T) {
	p := Params{PageNum: 3, PageSize: 10}.Normalize()
	assert.Equal(t, 20, p.Offset())
	assert.Equal(t, 10, p.Limit())
}

func TestPage(t *testing.T) {
	t.Run("HasMore", func(t *testing.T) {
		p := Params{PageNum: 1, PageSize: 10}.Normalize()
		page := New([]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 25, p)
		assert.True(t, page.HasMore)
		assert.Equal(t, int64(25), page.Total)
	})

	t.Run("LastPage", func(t *testing.T) {
		p := Params{PageNum: 3, PageSize: 10}.Normalize()
		page := New([]int{1, 2, 3, 4, 5}, 25, p)
		assert.False(t, page.HasMore)
	})

	t.Run("NilItemsBecomeEmptySlice", func(t *testing.T) {
		p := Params{}.Normalize()
		page := New[int](nil, 0, p)
		assert.NotNil(t, page.Items)
		assert.Len(t, page.Items, 0)
	})
}
