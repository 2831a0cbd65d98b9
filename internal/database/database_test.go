package database_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"clubhub-backend/internal/apperr"
	"clubhub-backend/internal/database"
	"clubhub-backend/internal/models"
	"clubhub-backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want apperr.Kind
	}{
		{"not found", gorm.ErrRecordNotFound, apperr.KindNotFound},
		{"duplicate", fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey), apperr.KindConflict},
		{"foreign key", gorm.ErrForeignKeyViolated, apperr.KindValidation},
		{"other", errors.New("connection refused"), apperr.KindPersistence},
		{"already classified", apperr.Conflict("op", "already following"), apperr.KindConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, apperr.KindOf(database.Classify("op", tt.err)))
		})
	}

	assert.NoError(t, database.Classify("op", nil))
}

func TestSeedCategoriesIsIdempotent(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()

	n, err := database.SeedCategories(ctx, db)
	require.NoError(t, err)
	assert.EqualValues(t, len(database.DefaultCategories), n)

	n, err = database.SeedCategories(ctx, db)
	require.NoError(t, err)
	assert.EqualValues(t, 0, n)

	var count int64
	require.NoError(t, db.Model(&models.Category{}).Count(&count).Error)
	assert.EqualValues(t, len(database.DefaultCategories), count)
}
