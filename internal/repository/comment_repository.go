package repository

import (
	"context"

	"gorm.io/gorm"

	"roadmap-dashboard-api/internal/domain"
)

// CommentRepository defines the interface for idea comment data access
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	FindByIdea(ctx context.Context, ideaID uint) ([]domain.Comment, error)
	Delete(ctx context.Context, id uint) error
}

type commentRepositoryImpl struct {
	db *gorm.DB
}

// NewCommentRepository creates a new instance of CommentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepositoryImpl{db: db}
}

// Create appends a comment to an existing idea
func (r *commentRepositoryImpl) Create(ctx context.Context, comment *domain.Comment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := exists(tx, &domain.Idea{}, comment.IdeaID)
		if err != nil {
			return err
		}
		if !ok {
			return notFound(domain.KindIdea, comment.IdeaID)
		}
		return tx.Create(comment).Error
	})
}

// FindByIdea lists an idea's comments oldest first
func (r *commentRepositoryImpl) FindByIdea(ctx context.Context, ideaID uint) ([]domain.Comment, error) {
	comments := []domain.Comment{}
	if err := r.db.WithContext(ctx).
		Where("idea_id = ?", ideaID).
		Order("created_at ASC, id ASC").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *commentRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.Comment{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return notFound(domain.KindComment, id)
	}
	return nil
}
