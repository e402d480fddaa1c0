package repository

import (
	"context"

	"gorm.io/gorm"

	"roadmap-dashboard-api/internal/domain"
)

// TaskFilter narrows a task listing; zero fields are ignored
type TaskFilter struct {
	MilestoneID uint
	AssigneeID  uint
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	FindByID(ctx context.Context, id uint) (*domain.Task, error)
	Find(ctx context.Context, filter TaskFilter) ([]domain.Task, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
}

type taskRepositoryImpl struct {
	db *gorm.DB
}

// NewTaskRepository creates a new instance of TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepositoryImpl{db: db}
}

// Create creates a task; the milestone and any assignee must exist
func (r *taskRepositoryImpl) Create(ctx context.Context, task *domain.Task) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkTaskRefs(tx, task.MilestoneID, task.AssigneeID); err != nil {
			return err
		}
		return tx.Omit("Assignee").Create(task).Error
	})
}

// FindByID finds a task with its assignee
func (r *taskRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Task, error) {
	var task domain.Task
	if err := r.db.WithContext(ctx).
		Preload("Assignee").
		Where("id = ?", id).
		First(&task).Error; err != nil {
		return nil, translate(err, domain.KindTask, id)
	}
	return &task, nil
}

// Find lists tasks matching the filter
func (r *taskRepositoryImpl) Find(ctx context.Context, filter TaskFilter) ([]domain.Task, error) {
	tasks := []domain.Task{}
	query := r.db.WithContext(ctx).Preload("Assignee")
	if filter.MilestoneID != 0 {
		query = query.Where("milestone_id = ?", filter.MilestoneID)
	}
	if filter.AssigneeID != 0 {
		query = query.Where("assignee_id = ?", filter.AssigneeID)
	}
	if err := query.Order("id ASC").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// Update applies a partial column update, checking a changed milestone or assignee
func (r *taskRepositoryImpl) Update(ctx context.Context, id uint, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var milestoneID uint
		if v, ok := fields["milestone_id"].(uint); ok {
			milestoneID = v
		}
		var assigneeID *uint
		if v, ok := fields["assignee_id"].(uint); ok {
			assigneeID = &v
		}
		if err := checkTaskRefs(tx, milestoneID, assigneeID); err != nil {
			return err
		}
		return updateColumns(tx, &domain.Task{}, domain.KindTask, id, fields)
	})
}

// Delete removes a task
func (r *taskRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.Task{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return notFound(domain.KindTask, id)
	}
	return nil
}

// checkTaskRefs verifies the referenced milestone and assignee; zero or nil skips the check
func checkTaskRefs(tx *gorm.DB, milestoneID uint, assigneeID *uint) error {
	if milestoneID != 0 {
		ok, err := exists(tx, &domain.Milestone{}, milestoneID)
		if err != nil {
			return err
		}
		if !ok {
			return notFound(domain.KindMilestone, milestoneID)
		}
	}
	if assigneeID != nil {
		ok, err := exists(tx, &domain.Member{}, *assigneeID)
		if err != nil {
			return err
		}
		if !ok {
			return notFound(domain.KindMember, *assigneeID)
		}
	}
	return nil
}
