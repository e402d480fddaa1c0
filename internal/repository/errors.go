// Package repository implements GORM persistence for planning entities.
package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"roadmap-dashboard-api/internal/domain"
)

// notFound wraps domain.ErrNotFound with the entity and id
func notFound(kind domain.EntityKind, id uint) error {
	return fmt.Errorf("%s %d: %w", kind, id, domain.ErrNotFound)
}

// translate maps gorm.ErrRecordNotFound onto domain.ErrNotFound
func translate(err error, kind domain.EntityKind, id uint) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound(kind, id)
	}
	return err
}

// exists reports whether a row with id is present in model's table
func exists(db *gorm.DB, model interface{}, id uint) (bool, error) {
	var count int64
	if err := db.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
