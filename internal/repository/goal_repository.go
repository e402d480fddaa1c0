package repository

import (
	"context"

	"gorm.io/gorm"

	"roadmap-dashboard-api/internal/domain"
)

// GoalRepository defines the interface for goal data access
type GoalRepository interface {
	Create(ctx context.Context, goal *domain.Goal) error
	FindByID(ctx context.Context, id uint) (*domain.Goal, error)
	FindByYear(ctx context.Context, year int) ([]domain.Goal, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
}

// goalRepositoryImpl is the GORM implementation of GoalRepository
type goalRepositoryImpl struct {
	db *gorm.DB
}

// NewGoalRepository creates a new instance of GoalRepository
func NewGoalRepository(db *gorm.DB) GoalRepository {
	return &goalRepositoryImpl{db: db}
}

// withTree preloads milestones, tasks and assignees in id order
func withTree(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Milestones", func(db *gorm.DB) *gorm.DB {
			return db.Order("milestones.id ASC")
		}).
		Preload("Milestones.Tasks", func(db *gorm.DB) *gorm.DB {
			return db.Order("tasks.id ASC")
		}).
		Preload("Milestones.Tasks.Assignee")
}

// Create creates a new goal without its children
func (r *goalRepositoryImpl) Create(ctx context.Context, goal *domain.Goal) error {
	return r.db.WithContext(ctx).Omit("Milestones").Create(goal).Error
}

// FindByID finds a goal with its milestones and tasks
func (r *goalRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Goal, error) {
	var goal domain.Goal
	if err := withTree(r.db.WithContext(ctx)).
		Where("id = ?", id).
		First(&goal).Error; err != nil {
		return nil, translate(err, domain.KindGoal, id)
	}
	return &goal, nil
}

// FindByYear finds all goals of a year with their milestones and tasks
func (r *goalRepositoryImpl) FindByYear(ctx context.Context, year int) ([]domain.Goal, error) {
	goals := []domain.Goal{}
	if err := withTree(r.db.WithContext(ctx)).
		Where("year = ?", year).
		Order("id ASC").
		Find(&goals).Error; err != nil {
		return nil, err
	}
	return goals, nil
}

// Update applies a partial column update
func (r *goalRepositoryImpl) Update(ctx context.Context, id uint, fields map[string]interface{}) error {
	return updateColumns(r.db.WithContext(ctx), &domain.Goal{}, domain.KindGoal, id, fields)
}

// Delete removes a goal and every milestone and task under it
func (r *goalRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := exists(tx, &domain.Goal{}, id)
		if err != nil {
			return err
		}
		if !ok {
			return notFound(domain.KindGoal, id)
		}

		milestoneIDs := tx.Model(&domain.Milestone{}).Select("id").Where("goal_id = ?", id)
		if err := tx.Where("milestone_id IN (?)", milestoneIDs).Delete(&domain.Task{}).Error; err != nil {
			return err
		}
		if err := tx.Where("goal_id = ?", id).Delete(&domain.Milestone{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Goal{}, id).Error
	})
}

// updateColumns runs an UPDATE on one row; a missing row is reported as not found
func updateColumns(db *gorm.DB, model interface{}, kind domain.EntityKind, id uint, fields map[string]interface{}) error {
	if len(fields) == 0 {
		ok, err := exists(db, model, id)
		if err != nil {
			return err
		}
		if !ok {
			return notFound(kind, id)
		}
		return nil
	}

	result := db.Model(model).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return notFound(kind, id)
	}
	return nil
}
