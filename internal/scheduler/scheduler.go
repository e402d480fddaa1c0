// Package scheduler places goals into calendar quarter buckets and decides how a
// goal's dates change when it is moved between buckets on the board.
package scheduler

import (
	"sort"
	"time"

	"roadmap-dashboard-api/internal/domain"
)

// Bucket is a quarter slot on the board
type Bucket string

const (
	Backlog Bucket = "backlog"
	Q1      Bucket = "Q1"
	Q2      Bucket = "Q2"
	Q3      Bucket = "Q3"
	Q4      Bucket = "Q4"
)

// Buckets lists the board columns in display order
var Buckets = []Bucket{Backlog, Q1, Q2, Q3, Q4}

// backlogSortOrder places undated goals after every quarter
const backlogSortOrder = 5

// ParseBucket validates a bucket name
func ParseBucket(s string) (Bucket, error) {
	for _, b := range Buckets {
		if string(b) == s {
			return b, nil
		}
	}
	return "", domain.ValidationError("bucket", "unknown bucket %q", s)
}

// BucketOf maps a start date to its quarter; no start date means backlog
func BucketOf(start *time.Time) Bucket {
	if start == nil {
		return Backlog
	}
	switch (int(start.Month()) - 1) / 3 {
	case 0:
		return Q1
	case 1:
		return Q2
	case 2:
		return Q3
	default:
		return Q4
	}
}

// SortOrder returns 1-4 for dated goals and 5 for backlog
func SortOrder(start *time.Time) int {
	if start == nil {
		return backlogSortOrder
	}
	return (int(start.Month())-1)/3 + 1
}

// QuarterOf returns the persisted quarter label for a start date, nil for backlog
func QuarterOf(start *time.Time) *string {
	b := BucketOf(start)
	if b == Backlog {
		return nil
	}
	s := string(b)
	return &s
}

// RangeOfBucket returns the inclusive date range of a bucket in year; backlog has no range
func RangeOfBucket(b Bucket, year int) (start, end *time.Time) {
	var first time.Month
	switch b {
	case Q1:
		first = time.January
	case Q2:
		first = time.April
	case Q3:
		first = time.July
	case Q4:
		first = time.October
	default:
		return nil, nil
	}
	s := domain.Date(year, first, 1)
	e := s.AddDate(0, 3, -1)
	return &s, &e
}

// Relocate decides the partial update that moves a goal into target for year.
// Both dates and the derived quarter are always written together.
func Relocate(goalID uint, target Bucket, year int) (domain.Mutation, error) {
	if _, err := ParseBucket(string(target)); err != nil {
		return domain.Mutation{}, err
	}
	if year <= 0 {
		return domain.Mutation{}, domain.ValidationError("year", "must be positive, got %d", year)
	}

	start, end := RangeOfBucket(target, year)
	return domain.Mutation{
		Kind: domain.KindGoal,
		ID:   goalID,
		Fields: map[string]interface{}{
			"start_date": dateValue(start),
			"end_date":   dateValue(end),
			"quarter":    quarterValue(QuarterOf(start)),
		},
	}, nil
}

func dateValue(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return *t
}

func quarterValue(q *string) interface{} {
	if q == nil {
		return nil
	}
	return *q
}

// Column is one bucket of the board
type Column struct {
	Bucket Bucket        `json:"bucket"`
	Count  int           `json:"count"`
	Goals  []domain.Goal `json:"goals"`
}

// Board is the quarter board for a year
type Board struct {
	Year    int            `json:"year"`
	Columns []Column       `json:"columns"`
	Counts  map[Bucket]int `json:"counts"`
}

// BuildBoard groups goals by bucket; counts are always recomputed from the goals given
func BuildBoard(year int, goals []domain.Goal) Board {
	byBucket := make(map[Bucket][]domain.Goal, len(Buckets))
	for _, g := range goals {
		b := BucketOf(g.StartDate)
		byBucket[b] = append(byBucket[b], g)
	}

	board := Board{
		Year:    year,
		Columns: make([]Column, 0, len(Buckets)),
		Counts:  make(map[Bucket]int, len(Buckets)),
	}
	for _, b := range Buckets {
		cards := byBucket[b]
		if cards == nil {
			cards = []domain.Goal{}
		}
		board.Columns = append(board.Columns, Column{Bucket: b, Count: len(cards), Goals: cards})
		board.Counts[b] = len(cards)
	}
	return board
}

// SortByQuarter orders goals Q1..Q4 then backlog, keeping input order within a bucket
func SortByQuarter(goals []domain.Goal) []domain.Goal {
	sorted := make([]domain.Goal, len(goals))
	copy(sorted, goals)
	sort.SliceStable(sorted, func(i, j int) bool {
		return SortOrder(sorted[i].StartDate) < SortOrder(sorted[j].StartDate)
	})
	return sorted
}

func (b Bucket) String() string {
	return string(b)
}
