// Package repository holds the only code that issues gorm queries. Every
// repository can be rebound to a transaction with WithTx so coordinators can
// compose several calls into one atomic unit.
package repository

import (
	"context"
	"errors"

	"clubhub-backend/internal/apperr"
	"clubhub-backend/internal/database"

	"gorm.io/gorm"
)

// Repositories bundles the four entity repositories over one handle.
type Repositories struct {
	Clubs      *ClubRepository
	Users      *UserRepository
	Categories *CategoryRepository
	Events     *EventRepository
}

func New(db *gorm.DB) *Repositories {
	return &Repositories{
		Clubs:      NewClubRepository(db),
		Users:      NewUserRepository(db),
		Categories: NewCategoryRepository(db),
		Events:     NewEventRepository(db),
	}
}

// WithTx rebinds all repositories to tx.
func (r *Repositories) WithTx(tx *gorm.DB) *Repositories {
	return &Repositories{
		Clubs:      r.Clubs.WithTx(tx),
		Users:      r.Users.WithTx(tx),
		Categories: r.Categories.WithTx(tx),
		Events:     r.Events.WithTx(tx),
	}
}

// exists reports whether a row of model with the given primary key exists.
func exists(ctx context.Context, db *gorm.DB, op string, model any, id string) (bool, error) {
	var n int64
	if err := db.WithContext(ctx).Model(model).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, database.Classify(op, err)
	}
	return n > 0, nil
}

// first loads a single row by primary key, mapping a miss to NotFound with msg.
func first(ctx context.Context, db *gorm.DB, op, msg string, dst any, id string) error {
	err := db.WithContext(ctx).Where("id = ?", id).First(dst).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound(op, "%s", msg)
	}
	return database.Classify(op, err)
}
