package coordinator

import (
	"context"

	"clubhub-backend/internal/apperr"
	"clubhub-backend/internal/models"
	"clubhub-backend/internal/repository"

	"gorm.io/gorm"
)

type Categories struct {
	base
}

func NewCategories(db *gorm.DB, repos *repository.Repositories) *Categories {
	return &Categories{base{db: db, repos: repos}}
}

// Add tags clubID with categoryID and returns the club. A duplicate link is a
// Conflict.
func (c *Categories) Add(ctx context.Context, clubID, categoryID string) (*models.Club, error) {
	const op = "categories.Add"

	var club *models.Club
	err := c.inTx(ctx, func(r *repository.Repositories) error {
		cl, err := r.Clubs.GetByID(ctx, clubID)
		if err != nil {
			return err
		}
		if _, err := r.Categories.GetByID(ctx, categoryID); err != nil {
			return err
		}
		linked, err := r.Categories.LinkExists(ctx, clubID, categoryID)
		if err != nil {
			return err
		}
		if linked {
			return apperr.Conflict(op, "club already has this category")
		}
		if err := r.Categories.AddLink(ctx, clubID, categoryID); err != nil {
			return err
		}
		club = cl
		return nil
	})
	if err != nil {
		return nil, err
	}
	return club, nil
}

// Remove drops the link if present. Removing an absent link succeeds.
func (c *Categories) Remove(ctx context.Context, clubID, categoryID string) (*models.Club, error) {
	club, err := c.repos.Clubs.GetByID(ctx, clubID)
	if err != nil {
		return nil, err
	}
	if _, err := c.repos.Categories.RemoveLink(ctx, clubID, categoryID); err != nil {
		return nil, err
	}
	return club, nil
}

// Replace swaps the club's whole category set for categoryIDs in one
// transaction and returns the new set. Unknown ids fail with Validation and
// leave the old set in place. Duplicate ids are collapsed.
func (c *Categories) Replace(ctx context.Context, clubID string, categoryIDs []string) ([]models.Category, error) {
	const op = "categories.Replace"

	ids := dedupe(categoryIDs)

	var categories []models.Category
	err := c.inTx(ctx, func(r *repository.Repositories) error {
		if _, err := r.Clubs.GetByID(ctx, clubID); err != nil {
			return err
		}
		n, err := r.Categories.CountExisting(ctx, ids)
		if err != nil {
			return err
		}
		if n != int64(len(ids)) {
			return apperr.Validation(op, "%d of %d categories do not exist", int64(len(ids))-n, len(ids))
		}
		if err := r.Categories.RemoveAllLinks(ctx, clubID); err != nil {
			return err
		}
		if err := r.Categories.AddLinks(ctx, clubID, ids); err != nil {
			return err
		}
		categories, err = r.Categories.GetForClub(ctx, clubID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
