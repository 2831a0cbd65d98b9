// Package coordinator sequences repository calls that must hold a
// cross-entity invariant. Each multi-step operation runs inside one gorm
// transaction; any failing step rolls the whole operation back.
package coordinator

import (
	"context"

	"clubhub-backend/internal/repository"

	"gorm.io/gorm"
)

type base struct {
	db    *gorm.DB
	repos *repository.Repositories
}

// inTx runs fn with every repository bound to a single transaction.
func (b base) inTx(ctx context.Context, fn func(r *repository.Repositories) error) error {
	return b.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(b.repos.WithTx(tx))
	})
}
