package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yptkiasma/admin-backend/internal/types"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// ParsePageQuery reads page/limit from the query string. Missing or
// non-positive values fall back to the defaults.
func ParsePageQuery(ctx *gin.Context) (page int, limit int, skip int) {
	page = DefaultPage
	limit = DefaultLimit

	if v, err := strconv.Atoi(ctx.DefaultQuery("page", "")); err == nil && v > 0 {
		page = v
	}

	if v, err := strconv.Atoi(ctx.DefaultQuery("limit", "")); err == nil && v > 0 {
		limit = v
	}

	skip = (page - 1) * limit
	return page, limit, skip
}

func NewPagination(page, limit int, total int64) types.Pagination {
	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return types.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}
