// Package timeline projects the planning hierarchy onto clamped, classified time bars
// and decides how bar interactions map back onto entity updates.
package timeline

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"roadmap-dashboard-api/internal/domain"
)

// ViewMode is the column granularity of the chart
type ViewMode string

const (
	ViewWeek  ViewMode = "Week"
	ViewMonth ViewMode = "Month"
)

// ParseViewMode accepts Week or Month; empty defaults to Month
func ParseViewMode(s string) (ViewMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "month":
		return ViewMonth, nil
	case "week":
		return ViewWeek, nil
	}
	return "", domain.ValidationError("mode", "unknown view mode %q", s)
}

// ColumnWidth is the pixel width of one column in this mode
func (m ViewMode) ColumnWidth() int {
	if m == ViewWeek {
		return 140
	}
	return 120
}

// Bar classes
const (
	ClassIssue     = "bar-issue"
	ClassFeature   = "bar-feature"
	ClassMilestone = "bar-milestone"
	ClassTask      = "bar-task"
)

// Window is the inclusive date range rendered for a year
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// WindowFor spans the selected year and the following one
func WindowFor(year int) Window {
	return Window{
		Start: domain.Date(year, time.January, 1),
		End:   domain.Date(year+1, time.December, 31),
	}
}

// Includes reports whether [start,end] is fully dated and overlaps the window
func (w Window) Includes(start, end *time.Time) bool {
	if start == nil || end == nil {
		return false
	}
	return !end.Before(w.Start) && !start.After(w.End)
}

// Clamp limits a bar to the window without touching stored dates
func (w Window) Clamp(start, end time.Time) (time.Time, time.Time) {
	if start.Before(w.Start) {
		start = w.Start
	}
	if end.After(w.End) {
		end = w.End
	}
	return start, end
}

// Bar is one rendered row
type Bar struct {
	ID           string            `json:"id"`
	Kind         domain.EntityKind `json:"kind"`
	SourceID     uint              `json:"sourceId"`
	Name         string            `json:"name"`
	Depth        int               `json:"depth"`
	Start        time.Time         `json:"start"`
	End          time.Time         `json:"end"`
	Progress     int               `json:"progress"`
	Dependencies []string          `json:"dependencies"`
	Class        string            `json:"class"`
}

// Projection is an immutable rendering of the timeline; a mode change builds a new one
type Projection struct {
	Year        int       `json:"year"`
	Mode        ViewMode  `json:"mode"`
	ColumnWidth int       `json:"columnWidth"`
	Window      Window    `json:"window"`
	Bars        []Bar     `json:"bars"`
	Anchor      time.Time `json:"anchor"`
}

// Project builds bars for goals, then each goal's milestones and their tasks
func Project(year int, goals []domain.Goal, mode ViewMode) Projection {
	w := WindowFor(year)
	bars := make([]Bar, 0, len(goals))

	add := func(kind domain.EntityKind, id uint, name string, depth int, start, end *time.Time, progress int, class string, deps []string) {
		if !w.Includes(start, end) {
			return
		}
		s, e := w.Clamp(*start, *end)
		bars = append(bars, Bar{
			ID:           BarRef(kind, id),
			Kind:         kind,
			SourceID:     id,
			Name:         name,
			Depth:        depth,
			Start:        s,
			End:          e,
			Progress:     progress,
			Dependencies: deps,
			Class:        class,
		})
	}

	for _, g := range goals {
		add(domain.KindGoal, g.ID, g.Title, 0, g.StartDate, g.EndDate, g.Progress, GoalClass(g.Type), []string{})
		for _, ms := range g.Milestones {
			add(domain.KindMilestone, ms.ID, ms.Title, 1, ms.StartDate, ms.DueDate, ms.Progress, ClassMilestone,
				[]string{BarRef(domain.KindGoal, g.ID)})
			for _, task := range ms.Tasks {
				add(domain.KindTask, task.ID, task.Title, 2, task.StartDate, task.DueDate, task.Progress, ClassTask,
					[]string{BarRef(domain.KindMilestone, ms.ID)})
			}
		}
	}

	return Projection{
		Year:        year,
		Mode:        mode,
		ColumnWidth: mode.ColumnWidth(),
		Window:      w,
		Bars:        bars,
		Anchor:      anchorOf(bars, w),
	}
}

// GoalClass maps a goal type to its bar class; only issues are distinguished
func GoalClass(t domain.GoalType) string {
	if t == domain.GoalTypeIssue {
		return ClassIssue
	}
	return ClassFeature
}

// anchorOf is the earliest bar start, or the window start when nothing is rendered
func anchorOf(bars []Bar, w Window) time.Time {
	if len(bars) == 0 {
		return w.Start
	}
	anchor := bars[0].Start
	for _, b := range bars[1:] {
		if b.Start.Before(anchor) {
			anchor = b.Start
		}
	}
	return anchor
}

// QuarterStart is the scroll target for a quarter of year
func QuarterStart(year, quarter int) (time.Time, error) {
	if quarter < 1 || quarter > 4 {
		return time.Time{}, domain.ValidationError("quarter", "must be between 1 and 4, got %d", quarter)
	}
	return domain.Date(year, time.Month((quarter-1)*3+1), 1), nil
}

// BarRef renders a bar id such as "milestone-3"
func BarRef(kind domain.EntityKind, id uint) string {
	return fmt.Sprintf("%s-%d", kind, id)
}

// ParseBarRef splits a bar id into its source kind and id
func ParseBarRef(ref string) (domain.EntityKind, uint, error) {
	kind, raw, ok := strings.Cut(ref, "-")
	if !ok {
		return "", 0, domain.ValidationError("bar", "malformed bar id %q", ref)
	}
	switch domain.EntityKind(kind) {
	case domain.KindGoal, domain.KindMilestone, domain.KindTask:
	default:
		return "", 0, domain.ValidationError("bar", "unknown bar kind %q", kind)
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return "", 0, domain.ValidationError("bar", "malformed bar id %q", ref)
	}
	return domain.EntityKind(kind), uint(id), nil
}

// ProgressEdit rounds a dragged progress value and decides the update for the bar's source entity
func ProgressEdit(ref string, raw float64) (domain.Mutation, error) {
	kind, id, err := ParseBarRef(ref)
	if err != nil {
		return domain.Mutation{}, err
	}
	if math.IsNaN(raw) || math.IsInf(raw, 0) {
		return domain.Mutation{}, domain.ValidationError("progress", "not a number")
	}
	progress := int(math.Round(raw))
	if err := domain.ValidateProgress(progress); err != nil {
		return domain.Mutation{}, err
	}
	return domain.Mutation{
		Kind:   kind,
		ID:     id,
		Fields: map[string]interface{}{"progress": progress},
	}, nil
}

// Click returns the goal to open for editing; clicks on other bars do nothing
func Click(ref string) (goalID uint, open bool, err error) {
	kind, id, err := ParseBarRef(ref)
	if err != nil {
		return 0, false, err
	}
	if kind != domain.KindGoal {
		return 0, false, nil
	}
	return id, true, nil
}
