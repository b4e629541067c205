package postgres

import (
	"context"
	"strings"

	"gorm.io/gorm"
)

const (
	DefaultPerPage = 6
	maxPerPage     = 48
)

// ListParams is the caller side of a paginated listing: a 1-based page number,
// a window size, and an optional case-insensitive substring search.
type ListParams struct {
	Page    int
	PerPage int
	Search  string
}

func (p ListParams) normalized() ListParams {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PerPage <= 0 {
		p.PerPage = DefaultPerPage
	}
	if p.PerPage > maxPerPage {
		p.PerPage = maxPerPage
	}
	return p
}

// listConfig is the per-table side: which column search matches against and
// how rows are ordered.
type listConfig struct {
	searchColumn string
	orderColumn  string
	orderDesc    bool
}

// Page is one window of rows plus the exact total under the same filters.
type Page[T any] struct {
	Items      []T
	TotalCount int64
	Page       int
	PerPage    int
}

func (p Page[T]) TotalPages() int {
	if p.PerPage <= 0 {
		return 0
	}
	return int((p.TotalCount + int64(p.PerPage) - 1) / int64(p.PerPage))
}

// escapeLike makes user-supplied search text match literally inside an ILIKE
// pattern. Postgres' default pattern escape character is backslash.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// listPage runs the count query and the row query for one page. Soft-deleted
// rows are always excluded. The count and row queries are built from the same
// filter closure so TotalPages stays consistent with the returned window.
func listPage[T any](ctx context.Context, db *gorm.DB, cfg listConfig, p ListParams, scopes ...func(*gorm.DB) *gorm.DB) (Page[T], error) {
	p = p.normalized()

	filtered := func() *gorm.DB {
		q := db.WithContext(ctx).Model(new(T)).Where("is_deleted = ?", false)
		if p.Search != "" && cfg.searchColumn != "" {
			q = q.Where(cfg.searchColumn+" ILIKE ?", "%"+escapeLike(p.Search)+"%")
		}
		for _, s := range scopes {
			q = s(q)
		}
		return q
	}

	var total int64
	if err := filtered().Count(&total).Error; err != nil {
		return Page[T]{}, err
	}

	order := cfg.orderColumn
	if cfg.orderDesc {
		order += " DESC"
	}

	items := make([]T, 0, p.PerPage)
	err := filtered().
		Order(order).
		Limit(p.PerPage).
		Offset((p.Page - 1) * p.PerPage).
		Find(&items).Error
	if err != nil {
		return Page[T]{}, err
	}

	return Page[T]{Items: items, TotalCount: total, Page: p.Page, PerPage: p.PerPage}, nil
}
