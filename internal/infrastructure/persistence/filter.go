package persistence

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/temucosoft/retail-backend/internal/domain/shared"
)

// scopeCompany restricts a query to one company. The zero UUID means no
// restriction, which is how platform-wide reads are expressed.
func scopeCompany(query *gorm.DB, companyID uuid.UUID) *gorm.DB {
	if companyID == uuid.Nil {
		return query
	}
	return query.Where("company_id = ?", companyID)
}

// applyFilter applies pagination and ordering to a query
func applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if filter.OrderBy != "" {
		orderDir := "ASC"
		if strings.ToLower(filter.OrderDir) == "desc" {
			orderDir = "DESC"
		}
		query = query.Order(filter.OrderBy + " " + orderDir)
	} else {
		query = query.Order("created_at DESC")
	}

	return query
}

// countAndFind counts the rows matched by query, then fetches the page
// described by filter. The query is re-used via fresh sessions so the
// count does not leak clauses into the find.
func countAndFind[T any](query *gorm.DB, filter shared.Filter, out *[]T) (int64, error) {
	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return 0, err
	}
	if err := applyFilter(query.Session(&gorm.Session{}), filter).Find(out).Error; err != nil {
		return 0, err
	}
	return total, nil
}
