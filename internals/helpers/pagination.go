package helper

import (
	"math"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

type Paging struct {
	Page   int
	Limit  int
	Offset int
}

// ResolvePaging reads ?page= and ?limit=. Absent values fall back to defaults, limit is
// capped at maxLimit, and a value that is present but not a positive integer is a 400.
func ResolvePaging(c *fiber.Ctx, defaultLimit, maxLimit int) (Paging, error) {
	return NewPaging(c.Query("page"), c.Query("limit"), defaultLimit, maxLimit)
}

func NewPaging(pageStr, limitStr string, defaultLimit, maxLimit int) (Paging, error) {
	page, err := positiveOrDefault(pageStr, 1)
	if err != nil {
		return Paging{}, Validation("page must be a positive integer")
	}
	limit, err := positiveOrDefault(limitStr, defaultLimit)
	if err != nil {
		return Paging{}, Validation("limit must be a positive integer")
	}
	if maxLimit > 0 && limit > maxLimit {
		limit = maxLimit
	}
	// offset must stay representable
	if limit > 0 && page-1 > math.MaxInt/limit {
		return Paging{}, Validation("page is too large")
	}
	return Paging{Page: page, Limit: limit, Offset: (page - 1) * limit}, nil
}

func positiveOrDefault(raw string, def int) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, strconv.ErrSyntax
	}
	return n, nil
}

// BuildPagination: pages = ceil(total/limit), 0 when there is nothing.
func BuildPagination(total int64, p Paging) Pagination {
	pages := 0
	if total > 0 && p.Limit > 0 {
		pages = int(math.Ceil(float64(total) / float64(p.Limit)))
	}
	return Pagination{Page: p.Page, Limit: p.Limit, Total: total, Pages: pages}
}
