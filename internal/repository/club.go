package repository

import (
	"context"
	"errors"

	"clubhub-backend/internal/apperr"
	"clubhub-backend/internal/database"
	"clubhub-backend/internal/models"

	"gorm.io/gorm"
)

type ClubRepository struct {
	db *gorm.DB
}

func NewClubRepository(db *gorm.DB) *ClubRepository {
	return &ClubRepository{db: db}
}

func (r *ClubRepository) WithTx(tx *gorm.DB) *ClubRepository {
	return &ClubRepository{db: tx}
}

func (r *ClubRepository) GetByID(ctx context.Context, id string) (*models.Club, error) {
	var club models.Club
	if err := first(ctx, r.db, "clubs.GetByID", "club not found", &club, id); err != nil {
		return nil, err
	}
	return &club, nil
}

// GetByIDs returns the clubs that exist among ids, in no particular order.
func (r *ClubRepository) GetByIDs(ctx context.Context, ids []string) ([]models.Club, error) {
	clubs := []models.Club{}
	if len(ids) == 0 {
		return clubs, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&clubs).Error; err != nil {
		return nil, database.Classify("clubs.GetByIDs", err)
	}
	return clubs, nil
}

func (r *ClubRepository) GetAll(ctx context.Context) ([]models.Club, error) {
	clubs := []models.Club{}
	if err := r.db.WithContext(ctx).Order("name asc").Find(&clubs).Error; err != nil {
		return nil, database.Classify("clubs.GetAll", err)
	}
	return clubs, nil
}

func (r *ClubRepository) Exists(ctx context.Context, id string) (bool, error) {
	return exists(ctx, r.db, "clubs.Exists", &models.Club{}, id)
}

// Create inserts a club. The organizer must be an existing user.
func (r *ClubRepository) Create(ctx context.Context, in models.CreateClubInput) (*models.Club, error) {
	const op = "clubs.Create"

	ok, err := exists(ctx, r.db, op, &models.User{}, in.OrganizerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.Validation(op, "organizer %q does not exist", in.OrganizerID)
	}

	club := models.Club{
		Name:        in.Name,
		Description: in.Description,
		OrganizerID: in.OrganizerID,
		Registered:  in.Registered,
	}
	if err := r.db.WithContext(ctx).Create(&club).Error; err != nil {
		return nil, database.Classify(op, err)
	}
	return &club, nil
}

// Update applies the non-nil fields of in.
func (r *ClubRepository) Update(ctx context.Context, id string, in models.UpdateClubInput) (*models.Club, error) {
	const op = "clubs.Update"

	cols := in.Columns()
	if len(cols) > 0 {
		res := r.db.WithContext(ctx).Model(&models.Club{}).Where("id = ?", id).Updates(cols)
		if res.Error != nil {
			return nil, database.Classify(op, res.Error)
		}
		if res.RowsAffected == 0 {
			return nil, apperr.NotFound(op, "club not found")
		}
	}
	return r.GetByID(ctx, id)
}

// Delete removes the club together with its followings, category links and
// events. All rows go in one transaction.
func (r *ClubRepository) Delete(ctx context.Context, id string) error {
	const op = "clubs.Delete"

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("club_id = ?", id).Delete(&models.Following{}).Error; err != nil {
			return database.Classify(op, err)
		}
		if err := tx.Where("club_id = ?", id).Delete(&models.ClubCategory{}).Error; err != nil {
			return database.Classify(op, err)
		}
		if err := tx.Where("club_id = ?", id).Delete(&models.Event{}).Error; err != nil {
			return database.Classify(op, err)
		}
		res := tx.Where("id = ?", id).Delete(&models.Club{})
		if res.Error != nil {
			return database.Classify(op, res.Error)
		}
		if res.RowsAffected == 0 {
			return apperr.NotFound(op, "club not found")
		}
		return nil
	})
}

func (r *ClubRepository) GetOrganizer(ctx context.Context, id string) (*models.User, error) {
	const op = "clubs.GetOrganizer"

	var user models.User
	err := r.db.WithContext(ctx).
		Joins("JOIN clubs ON clubs.organizer_id = users.id").
		Where("clubs.id = ?", id).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound(op, "club not found")
	}
	if err != nil {
		return nil, database.Classify(op, err)
	}
	return &user, nil
}

// SetOrganizer moves the club from expected to next only if expected is
// still the organizer. It reports whether the row changed.
func (r *ClubRepository) SetOrganizer(ctx context.Context, id, expected, next string) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Club{}).
		Where("id = ? AND organizer_id = ?", id, expected).
		Update("organizer_id", next)
	if res.Error != nil {
		return false, database.Classify("clubs.SetOrganizer", res.Error)
	}
	return res.RowsAffected == 1, nil
}

func (r *ClubRepository) GetFollowers(ctx context.Context, id string) ([]models.User, error) {
	users := []models.User{}
	err := r.db.WithContext(ctx).
		Joins("JOIN club_followings ON club_followings.user_id = users.id").
		Where("club_followings.club_id = ?", id).
		Order("users.username asc").
		Find(&users).Error
	if err != nil {
		return nil, database.Classify("clubs.GetFollowers", err)
	}
	return users, nil
}

func (r *ClubRepository) ListEvents(ctx context.Context, id string) ([]models.Event, error) {
	events := []models.Event{}
	if err := r.db.WithContext(ctx).Where("club_id = ?", id).Order("date asc").Find(&events).Error; err != nil {
		return nil, database.Classify("clubs.ListEvents", err)
	}
	return events, nil
}

func (r *ClubRepository) CheckRegistered(ctx context.Context, id string) (bool, error) {
	club, err := r.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	return club.Registered, nil
}
