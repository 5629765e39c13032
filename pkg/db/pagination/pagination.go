package pagination

import "gorm.io/gorm"

// Pagination is page-number pagination as submitted by the dashboard.
type Pagination struct {
	Page     int `form:"page"`
	PageSize int `form:"page_size"` // Min 1, Max 100
}

type PageInfo struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalItems int64 `json:"total_items"`
	TotalPages int   `json:"total_pages"`
}

// Normalize clamps page and page size into valid bounds.
func (p Pagination) Normalize(defaultSize, maxSize int) Pagination {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize <= 0 {
		p.PageSize = defaultSize
	}
	if maxSize > 0 && p.PageSize > maxSize {
		p.PageSize = maxSize
	}
	return p
}

func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// Apply adds LIMIT/OFFSET to the statement.
func (p Pagination) Apply(stmt *gorm.DB) *gorm.DB {
	return stmt.Offset(p.Offset()).Limit(p.PageSize)
}

// BuildPageInfo derives page counts from a total item count.
func BuildPageInfo(p Pagination, totalItems int64) PageInfo {
	totalPages := 0
	if p.PageSize > 0 {
		totalPages = int((totalItems + int64(p.PageSize) - 1) / int64(p.PageSize))
	}
	return PageInfo{
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}
