package pagination_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/JagtapGaurav/Matrimonial/internal/utils/pagination"
)

func TestWindowNormalization(t *testing.T) {
	w := pagination.NewWindow(0, 0)
	assert.Equal(t, 1, w.Page)
	assert.Equal(t, pagination.DefaultPerPage, w.PerPage)

	w = pagination.NewWindow(-3, -1)
	assert.Equal(t, 1, w.Page)
	assert.Equal(t, pagination.DefaultPerPage, w.PerPage)
}

func TestWindowIsCumulative(t *testing.T) {
	items := make([]int, 30)
	for i := range items {
		items[i] = i
	}

	page1 := pagination.Slice(items, pagination.NewWindow(1, 12))
	assert.Len(t, page1, 12)

	// page 2 extends the window, it does not replace it
	page2 := pagination.Slice(items, pagination.NewWindow(2, 12))
	assert.Len(t, page2, 24)
	assert.Equal(t, page1, page2[:12])

	page3 := pagination.Slice(items, pagination.NewWindow(3, 12))
	assert.Len(t, page3, 30)
}

func TestHasMore(t *testing.T) {
	assert.True(t, pagination.NewWindow(1, 12).HasMore(13))
	assert.False(t, pagination.NewWindow(1, 12).HasMore(12))
	assert.False(t, pagination.NewWindow(2, 12).HasMore(13))
	assert.False(t, pagination.NewWindow(1, 12).HasMore(0))
}
