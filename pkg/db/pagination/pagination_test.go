package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeClampsBounds(t *testing.T) {
	p := Pagination{Page: 0, PageSize: 0}.Normalize(6, 100)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 6, p.PageSize)

	p = Pagination{Page: 3, PageSize: 500}.Normalize(6, 100)
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 100, p.PageSize)
	assert.Equal(t, 200, p.Offset())
}

func TestBuildPageInfoRoundsUp(t *testing.T) {
	info := BuildPageInfo(Pagination{Page: 1, PageSize: 6}, 13)
	assert.Equal(t, int64(13), info.TotalItems)
	assert.Equal(t, 3, info.TotalPages)

	info = BuildPageInfo(Pagination{Page: 1, PageSize: 6}, 0)
	assert.Equal(t, 0, info.TotalPages)
}
