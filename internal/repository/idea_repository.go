package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"roadmap-dashboard-api/internal/domain"
)

// IdeaRepository defines the interface for idea data access
type IdeaRepository interface {
	Create(ctx context.Context, idea *domain.Idea) error
	FindByID(ctx context.Context, id uint) (*domain.Idea, error)
	FindByYear(ctx context.Context, year int) ([]domain.Idea, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
	TransitionStatus(ctx context.Context, id uint, from, to domain.IdeaStatus) error
	ConvertToGoal(ctx context.Context, ideaID uint, goal *domain.Goal) error
}

type ideaRepositoryImpl struct {
	db *gorm.DB
}

// NewIdeaRepository creates a new instance of IdeaRepository
func NewIdeaRepository(db *gorm.DB) IdeaRepository {
	return &ideaRepositoryImpl{db: db}
}

func withComments(db *gorm.DB) *gorm.DB {
	return db.Preload("Comments", func(db *gorm.DB) *gorm.DB {
		return db.Order("comments.created_at ASC, comments.id ASC")
	})
}

func (r *ideaRepositoryImpl) Create(ctx context.Context, idea *domain.Idea) error {
	return r.db.WithContext(ctx).Omit("Comments").Create(idea).Error
}

func (r *ideaRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Idea, error) {
	var idea domain.Idea
	if err := withComments(r.db.WithContext(ctx)).
		Where("id = ?", id).
		First(&idea).Error; err != nil {
		return nil, translate(err, domain.KindIdea, id)
	}
	return &idea, nil
}

// FindByYear lists ideas by priority, newest first within a priority
func (r *ideaRepositoryImpl) FindByYear(ctx context.Context, year int) ([]domain.Idea, error) {
	ideas := []domain.Idea{}
	if err := withComments(r.db.WithContext(ctx)).
		Where("year = ?", year).
		Order("priority ASC, created_at DESC, id DESC").
		Find(&ideas).Error; err != nil {
		return nil, err
	}
	return ideas, nil
}

// Update edits idea content; status only moves through TransitionStatus and ConvertToGoal
func (r *ideaRepositoryImpl) Update(ctx context.Context, id uint, fields map[string]interface{}) error {
	if _, ok := fields["status"]; ok {
		return domain.ValidationError("status", "status changes go through approve, reject or convert")
	}
	return updateColumns(r.db.WithContext(ctx), &domain.Idea{}, domain.KindIdea, id, fields)
}

// Delete removes an idea and its comments
func (r *ideaRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := exists(tx, &domain.Idea{}, id)
		if err != nil {
			return err
		}
		if !ok {
			return notFound(domain.KindIdea, id)
		}
		if err := tx.Where("idea_id = ?", id).Delete(&domain.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Idea{}, id).Error
	})
}

// TransitionStatus moves an idea from one status to another only if it is still in from
func (r *ideaRepositoryImpl) TransitionStatus(ctx context.Context, id uint, from, to domain.IdeaStatus) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return transition(tx, id, from, to)
	})
}

// ConvertToGoal creates goal, then marks the idea converted, in one transaction.
// A failed transition rolls the goal back.
func (r *ideaRepositoryImpl) ConvertToGoal(ctx context.Context, ideaID uint, goal *domain.Goal) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Milestones").Create(goal).Error; err != nil {
			return err
		}
		return transition(tx, ideaID, domain.IdeaStatusApproved, domain.IdeaStatusConverted)
	})
}

// transition is a conditional UPDATE; zero affected rows means the idea is missing or has moved on
func transition(tx *gorm.DB, id uint, from, to domain.IdeaStatus) error {
	result := tx.Model(&domain.Idea{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 1 {
		return nil
	}

	var current domain.Idea
	if err := tx.Select("id", "status").Where("id = ?", id).First(&current).Error; err != nil {
		return translate(err, domain.KindIdea, id)
	}
	return fmt.Errorf("idea %d is %s, cannot move to %s: %w", id, current.Status, to, domain.ErrInvalidTransition)
}
