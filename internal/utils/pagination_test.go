package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func queryContext(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()

	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
	ctx.Request = httptest.NewRequest("GET", "/?"+rawQuery, nil)
	return ctx
}

func TestParsePageQueryDefaults(t *testing.T) {
	page, limit, skip := ParsePageQuery(queryContext(t, ""))

	assert.Equal(t, 1, page)
	assert.Equal(t, 10, limit)
	assert.Equal(t, 0, skip)
}

func TestParsePageQuery(t *testing.T) {
	page, limit, skip := ParsePageQuery(queryContext(t, "page=3&limit=25"))

	assert.Equal(t, 3, page)
	assert.Equal(t, 25, limit)
	assert.Equal(t, 50, skip)
}

func TestParsePageQueryRejectsInvalid(t *testing.T) {
	page, limit, skip := ParsePageQuery(queryContext(t, "page=-1&limit=abc"))

	assert.Equal(t, 1, page)
	assert.Equal(t, 10, limit)
	assert.Equal(t, 0, skip)
}

func TestNewPagination(t *testing.T) {
	cases := []struct {
		total      int64
		limit      int
		totalPages int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 10, 3},
		{7, 3, 3},
	}

	for _, tc := range cases {
		p := NewPagination(1, tc.limit, tc.total)
		assert.Equal(t, tc.totalPages, p.TotalPages, "total=%d limit=%d", tc.total, tc.limit)
	}
}
