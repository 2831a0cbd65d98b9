package repository

import (
	"context"
	"errors"

	"clubhub-backend/internal/apperr"
	"clubhub-backend/internal/database"
	"clubhub-backend/internal/models"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) WithTx(tx *gorm.DB) *UserRepository {
	return &UserRepository{db: tx}
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := first(ctx, r.db, "users.GetByID", "user not found", &user, id); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetByIDs(ctx context.Context, ids []string) ([]models.User, error) {
	users := []models.User{}
	if len(ids) == 0 {
		return users, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, database.Classify("users.GetByIDs", err)
	}
	return users, nil
}

func (r *UserRepository) GetAll(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	if err := r.db.WithContext(ctx).Order("username asc").Find(&users).Error; err != nil {
		return nil, database.Classify("users.GetAll", err)
	}
	return users, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getBy(ctx, "users.GetByEmail", "email", email)
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.getBy(ctx, "users.GetByUsername", "username", username)
}

func (r *UserRepository) GetByPhone(ctx context.Context, phone string) (*models.User, error) {
	return r.getBy(ctx, "users.GetByPhone", "phone_number", phone)
}

func (r *UserRepository) getBy(ctx context.Context, op, column, value string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where(column+" = ?", value).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound(op, "user not found")
	}
	if err != nil {
		return nil, database.Classify(op, err)
	}
	return &user, nil
}

func (r *UserRepository) Exists(ctx context.Context, id string) (bool, error) {
	return exists(ctx, r.db, "users.Exists", &models.User{}, id)
}

// Create inserts a user. Username, email and phone number must be unused.
func (r *UserRepository) Create(ctx context.Context, in models.CreateUserInput) (*models.User, error) {
	const op = "users.Create"

	if err := r.checkUnique(ctx, op, "", in.Username, in.Email, in.PhoneNumber); err != nil {
		return nil, err
	}

	user := models.User{
		Username:     in.Username,
		Email:        in.Email,
		PhoneNumber:  in.PhoneNumber,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		PasswordHash: in.PasswordHash,
	}
	if err := r.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, database.Classify(op, err)
	}
	return &user, nil
}

// Update applies the non-nil fields of in. A blank phone number clears it.
func (r *UserRepository) Update(ctx context.Context, id string, in models.UpdateUserInput) (*models.User, error) {
	const op = "users.Update"

	if _, err := r.GetByID(ctx, id); err != nil {
		return nil, err
	}

	cols := in.Columns()
	if len(cols) == 0 {
		return r.GetByID(ctx, id)
	}

	var username, email string
	if in.Username != nil {
		username = *in.Username
	}
	if in.Email != nil {
		email = *in.Email
	}
	// Only a number being set can collide; a cleared one is NULL.
	var phone *string
	if p, ok := cols["phone_number"].(string); ok {
		phone = &p
	}
	if err := r.checkUnique(ctx, op, id, username, email, phone); err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Updates(cols).Error; err != nil {
		return nil, database.Classify(op, err)
	}
	return r.GetByID(ctx, id)
}

type uniqueCheck struct {
	column string
	value  string
	label  string
}

// checkUnique fails with Conflict when another user (not self) already owns
// one of the non-empty values.
func (r *UserRepository) checkUnique(ctx context.Context, op, self, username, email string, phone *string) error {
	checks := []uniqueCheck{
		{"username", username, "username"},
		{"email", email, "email"},
	}
	if phone != nil {
		checks = append(checks, uniqueCheck{"phone_number", *phone, "phone number"})
	}

	for _, c := range checks {
		if c.value == "" {
			continue
		}
		q := r.db.WithContext(ctx).Model(&models.User{}).Where(c.column+" = ?", c.value)
		if self != "" {
			q = q.Where("id <> ?", self)
		}
		var n int64
		if err := q.Count(&n).Error; err != nil {
			return database.Classify(op, err)
		}
		if n > 0 {
			return apperr.Conflict(op, "%s already exists", c.label)
		}
	}
	return nil
}

// Delete removes the user and their followings. A user who still organizes a
// club cannot be deleted; reassign those clubs first.
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	const op = "users.Delete"

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var organizing int64
		if err := tx.Model(&models.Club{}).Where("organizer_id = ?", id).Count(&organizing).Error; err != nil {
			return database.Classify(op, err)
		}
		if organizing > 0 {
			return apperr.Conflict(op, "user still organizes %d club(s)", organizing)
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Following{}).Error; err != nil {
			return database.Classify(op, err)
		}
		res := tx.Where("id = ?", id).Delete(&models.User{})
		if res.Error != nil {
			return database.Classify(op, res.Error)
		}
		if res.RowsAffected == 0 {
			return apperr.NotFound(op, "user not found")
		}
		return nil
	})
}

func (r *UserRepository) GetFollowingClubs(ctx context.Context, userID string) ([]models.Club, error) {
	clubs := []models.Club{}
	err := r.db.WithContext(ctx).
		Joins("JOIN club_followings ON club_followings.club_id = clubs.id").
		Where("club_followings.user_id = ?", userID).
		Order("clubs.name asc").
		Find(&clubs).Error
	if err != nil {
		return nil, database.Classify("users.GetFollowingClubs", err)
	}
	return clubs, nil
}

func (r *UserRepository) GetOrganizingClubs(ctx context.Context, userID string) ([]models.Club, error) {
	clubs := []models.Club{}
	if err := r.db.WithContext(ctx).Where("organizer_id = ?", userID).Order("name asc").Find(&clubs).Error; err != nil {
		return nil, database.Classify("users.GetOrganizingClubs", err)
	}
	return clubs, nil
}

// IsOrganizing is a single existence query against clubs.organizer_id.
func (r *UserRepository) IsOrganizing(ctx context.Context, userID, clubID string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&models.Club{}).
		Where("id = ? AND organizer_id = ?", clubID, userID).
		Count(&n).Error
	if err != nil {
		return false, database.Classify("users.IsOrganizing", err)
	}
	return n > 0, nil
}

func (r *UserRepository) IsFollowing(ctx context.Context, userID, clubID string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&models.Following{}).
		Where("user_id = ? AND club_id = ?", userID, clubID).
		Count(&n).Error
	if err != nil {
		return false, database.Classify("users.IsFollowing", err)
	}
	return n > 0, nil
}

// AddFollowing inserts the (user, club) link. A duplicate is a Conflict.
func (r *UserRepository) AddFollowing(ctx context.Context, userID, clubID string) error {
	link := models.Following{UserID: userID, ClubID: clubID}
	if err := r.db.WithContext(ctx).Create(&link).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.Conflict("users.AddFollowing", "user already follows this club")
		}
		return database.Classify("users.AddFollowing", err)
	}
	return nil
}

// RemoveFollowing deletes the (user, club) link and reports whether it existed.
func (r *UserRepository) RemoveFollowing(ctx context.Context, userID, clubID string) (bool, error) {
	res := r.db.WithContext(ctx).Where("user_id = ? AND club_id = ?", userID, clubID).Delete(&models.Following{})
	if res.Error != nil {
		return false, database.Classify("users.RemoveFollowing", res.Error)
	}
	return res.RowsAffected > 0, nil
}
