package repository

import (
	"context"

	"gorm.io/gorm"

	"roadmap-dashboard-api/internal/domain"
)

// MilestoneRepository defines the interface for milestone data access
type MilestoneRepository interface {
	Create(ctx context.Context, milestone *domain.Milestone) error
	FindByID(ctx context.Context, id uint) (*domain.Milestone, error)
	FindByGoal(ctx context.Context, goalID uint) ([]domain.Milestone, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
}

type milestoneRepositoryImpl struct {
	db *gorm.DB
}

// NewMilestoneRepository creates a new instance of MilestoneRepository
func NewMilestoneRepository(db *gorm.DB) MilestoneRepository {
	return &milestoneRepositoryImpl{db: db}
}

// Create creates a milestone; the parent goal must exist
func (r *milestoneRepositoryImpl) Create(ctx context.Context, milestone *domain.Milestone) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := exists(tx, &domain.Goal{}, milestone.GoalID)
		if err != nil {
			return err
		}
		if !ok {
			return notFound(domain.KindGoal, milestone.GoalID)
		}
		return tx.Omit("Tasks").Create(milestone).Error
	})
}

// FindByID finds a milestone with its tasks
func (r *milestoneRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Milestone, error) {
	var milestone domain.Milestone
	if err := r.db.WithContext(ctx).
		Preload("Tasks", func(db *gorm.DB) *gorm.DB {
			return db.Order("tasks.id ASC")
		}).
		Preload("Tasks.Assignee").
		Where("id = ?", id).
		First(&milestone).Error; err != nil {
		return nil, translate(err, domain.KindMilestone, id)
	}
	return &milestone, nil
}

// FindByGoal lists milestones; goalID 0 lists all
func (r *milestoneRepositoryImpl) FindByGoal(ctx context.Context, goalID uint) ([]domain.Milestone, error) {
	milestones := []domain.Milestone{}
	query := r.db.WithContext(ctx).
		Preload("Tasks", func(db *gorm.DB) *gorm.DB {
			return db.Order("tasks.id ASC")
		})
	if goalID != 0 {
		query = query.Where("goal_id = ?", goalID)
	}
	if err := query.Order("id ASC").Find(&milestones).Error; err != nil {
		return nil, err
	}
	return milestones, nil
}

// Update applies a partial column update
func (r *milestoneRepositoryImpl) Update(ctx context.Context, id uint, fields map[string]interface{}) error {
	return updateColumns(r.db.WithContext(ctx), &domain.Milestone{}, domain.KindMilestone, id, fields)
}

// Delete removes a milestone and its tasks
func (r *milestoneRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := exists(tx, &domain.Milestone{}, id)
		if err != nil {
			return err
		}
		if !ok {
			return notFound(domain.KindMilestone, id)
		}
		if err := tx.Where("milestone_id = ?", id).Delete(&domain.Task{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Milestone{}, id).Error
	})
}
