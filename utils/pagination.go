package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// Pagination dibaca dari query ?page=&limit=, nilai tidak valid jatuh ke default.
type Pagination struct {
	Page  int
	Limit int
}

func NewPagination(c *gin.Context) Pagination {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		page = defaultPage
	}
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil || limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return Pagination{Page: page, Limit: limit}
}

func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Paginate membungkus hasil query beserta metadata halaman.
func (p Pagination) Paginate(count int64, rows interface{}) gin.H {
	totalPages := count / int64(p.Limit)
	if count%int64(p.Limit) != 0 {
		totalPages++
	}
	return gin.H{
		"count":       count,
		"page":        p.Page,
		"limit":       p.Limit,
		"total_pages": totalPages,
		"rows":        rows,
	}
}
