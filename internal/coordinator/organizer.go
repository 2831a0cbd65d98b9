package coordinator

import (
	"context"
	"errors"

	"clubhub-backend/internal/apperr"
	"clubhub-backend/internal/logger"
	"clubhub-backend/internal/models"
	"clubhub-backend/internal/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Organizers struct {
	base
}

func NewOrganizers(db *gorm.DB, repos *repository.Repositories) *Organizers {
	return &Organizers{base{db: db, repos: repos}}
}

// Reassign hands clubID to newOrganizerID and returns the new organizer.
//
// The club pointer is the only stored copy of the relation, so a user's
// organizing set follows from it. The update is conditional on the organizer
// read at the start; if someone else moved the club in between, nothing is
// written and the call fails with Conflict.
func (o *Organizers) Reassign(ctx context.Context, clubID, newOrganizerID string) (*models.User, error) {
	const op = "organizer.Reassign"

	var organizer *models.User
	err := o.inTx(ctx, func(r *repository.Repositories) error {
		club, err := r.Clubs.GetByID(ctx, clubID)
		if err != nil {
			return err
		}

		next, err := r.Users.GetByID(ctx, newOrganizerID)
		if errors.Is(err, apperr.ErrNotFound) {
			return apperr.Validation(op, "user %q does not exist", newOrganizerID)
		}
		if err != nil {
			return err
		}

		if club.OrganizerID != next.ID {
			swapped, err := r.Clubs.SetOrganizer(ctx, club.ID, club.OrganizerID, next.ID)
			if err != nil {
				return err
			}
			if !swapped {
				return apperr.Conflict(op, "club organizer changed concurrently")
			}
		}
		organizer = next
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.From(ctx).Info("club organizer reassigned",
		zap.String("club_id", clubID),
		zap.String("organizer_id", organizer.ID))
	return organizer, nil
}

// IsOrganizing reports whether userID currently organizes clubID.
func (o *Organizers) IsOrganizing(ctx context.Context, userID, clubID string) (bool, error) {
	return o.repos.Users.IsOrganizing(ctx, userID, clubID)
}
