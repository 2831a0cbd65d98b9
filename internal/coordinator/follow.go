package coordinator

import (
	"context"

	"clubhub-backend/internal/apperr"
	"clubhub-backend/internal/models"
	"clubhub-backend/internal/repository"

	"gorm.io/gorm"
)

type Follows struct {
	base
}

func NewFollows(db *gorm.DB, repos *repository.Repositories) *Follows {
	return &Follows{base{db: db, repos: repos}}
}

// Follow links userID to clubID and returns the club. Following twice is a
// Conflict, not a silent no-op.
func (f *Follows) Follow(ctx context.Context, userID, clubID string) (*models.Club, error) {
	const op = "follow.Follow"

	var club *models.Club
	err := f.inTx(ctx, func(r *repository.Repositories) error {
		if err := requireUser(ctx, r, op, userID); err != nil {
			return err
		}
		c, err := r.Clubs.GetByID(ctx, clubID)
		if err != nil {
			return err
		}
		following, err := r.Users.IsFollowing(ctx, userID, clubID)
		if err != nil {
			return err
		}
		if following {
			return apperr.Conflict(op, "user already follows this club")
		}
		if err := r.Users.AddFollowing(ctx, userID, clubID); err != nil {
			return err
		}
		club = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return club, nil
}

// Unfollow removes the link and returns the club. A missing link is NotFound.
func (f *Follows) Unfollow(ctx context.Context, userID, clubID string) (*models.Club, error) {
	const op = "follow.Unfollow"

	var club *models.Club
	err := f.inTx(ctx, func(r *repository.Repositories) error {
		c, err := r.Clubs.GetByID(ctx, clubID)
		if err != nil {
			return err
		}
		removed, err := r.Users.RemoveFollowing(ctx, userID, clubID)
		if err != nil {
			return err
		}
		if !removed {
			return apperr.NotFound(op, "user does not follow this club")
		}
		club = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return club, nil
}

func requireUser(ctx context.Context, r *repository.Repositories, op, id string) error {
	ok, err := r.Users.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound(op, "user not found")
	}
	return nil
}
