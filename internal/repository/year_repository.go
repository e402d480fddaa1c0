package repository

import (
	"context"
	"sort"

	"gorm.io/gorm"
)

// YearRepository lists the years that hold planning data
type YearRepository interface {
	AvailableYears(ctx context.Context) ([]int, error)
}

type yearRepositoryImpl struct {
	db *gorm.DB
}

// NewYearRepository creates a new instance of YearRepository
func NewYearRepository(db *gorm.DB) YearRepository {
	return &yearRepositoryImpl{db: db}
}

// AvailableYears returns the distinct years across goals, members and ideas, newest first.
// An empty database yields an empty slice.
func (r *yearRepositoryImpl) AvailableYears(ctx context.Context) ([]int, error) {
	seen := map[int]struct{}{}
	for _, table := range []string{"goals", "members", "ideas"} {
		var years []int
		if err := r.db.WithContext(ctx).
			Table(table).
			Distinct("year").
			Pluck("year", &years).Error; err != nil {
			return nil, err
		}
		for _, y := range years {
			seen[y] = struct{}{}
		}
	}

	years := make([]int, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years, nil
}
