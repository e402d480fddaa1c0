package repository

import (
	"context"

	"gorm.io/gorm"

	"roadmap-dashboard-api/internal/domain"
)

// MemberRepository defines the interface for member data access
type MemberRepository interface {
	Create(ctx context.Context, member *domain.Member) error
	FindByID(ctx context.Context, id uint) (*domain.Member, error)
	FindByYear(ctx context.Context, year int) ([]domain.Member, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
}

type memberRepositoryImpl struct {
	db *gorm.DB
}

// NewMemberRepository creates a new instance of MemberRepository
func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepositoryImpl{db: db}
}

func (r *memberRepositoryImpl) Create(ctx context.Context, member *domain.Member) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *memberRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Member, error) {
	var member domain.Member
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&member).Error; err != nil {
		return nil, translate(err, domain.KindMember, id)
	}
	return &member, nil
}

func (r *memberRepositoryImpl) FindByYear(ctx context.Context, year int) ([]domain.Member, error) {
	members := []domain.Member{}
	if err := r.db.WithContext(ctx).
		Where("year = ?", year).
		Order("id ASC").
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (r *memberRepositoryImpl) Update(ctx context.Context, id uint, fields map[string]interface{}) error {
	return updateColumns(r.db.WithContext(ctx), &domain.Member{}, domain.KindMember, id, fields)
}

// Delete removes a member and clears it from every task it was assigned to
func (r *memberRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := exists(tx, &domain.Member{}, id)
		if err != nil {
			return err
		}
		if !ok {
			return notFound(domain.KindMember, id)
		}
		if err := tx.Model(&domain.Task{}).
			Where("assignee_id = ?", id).
			Update("assignee_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Member{}, id).Error
	})
}
