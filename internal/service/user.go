package service

import (
	"context"
	"net/mail"
	"strings"

	"clubhub-backend/internal/apperr"
	"clubhub-backend/internal/models"

	"go.uber.org/zap"
)

// UserRepository is the user data access the service needs.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetAll(ctx context.Context) ([]models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, in models.CreateUserInput) (*models.User, error)
	Update(ctx context.Context, id string, in models.UpdateUserInput) (*models.User, error)
	Delete(ctx context.Context, id string) error
	GetFollowingClubs(ctx context.Context, userID string) ([]models.Club, error)
	GetOrganizingClubs(ctx context.Context, userID string) ([]models.Club, error)
}

type FollowCoordinator interface {
	Follow(ctx context.Context, userID, clubID string) (*models.Club, error)
	Unfollow(ctx context.Context, userID, clubID string) (*models.Club, error)
}

type UserService struct {
	users      UserRepository
	follows    FollowCoordinator
	organizers OrganizerCoordinator
}

func NewUserService(users UserRepository, follows FollowCoordinator, organizers OrganizerCoordinator) *UserService {
	return &UserService{users: users, follows: follows, organizers: organizers}
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.users.GetAll(ctx)
}

func (s *UserService) Get(ctx context.Context, id string) (*models.User, error) {
	if err := required("users.Get", field{"id", id}); err != nil {
		return nil, err
	}
	return s.users.GetByID(ctx, id)
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if err := required("users.GetByEmail", field{"email", email}); err != nil {
		return nil, err
	}
	return s.users.GetByEmail(ctx, normalizeEmail(email))
}

func (s *UserService) Create(ctx context.Context, in models.CreateUserInput) (*models.User, error) {
	const op = "users.Create"
	if err := required(op, field{"username", in.Username}, field{"email", in.Email}); err != nil {
		return nil, err
	}
	in.Email = normalizeEmail(in.Email)
	if err := validEmail(op, in.Email); err != nil {
		return nil, err
	}
	in.PhoneNumber = normalizePhone(in.PhoneNumber)

	user, err := s.users.Create(ctx, in)
	if err != nil {
		logFailure(ctx, op, err, zap.String("username", in.Username))
		return nil, err
	}
	return user, nil
}

func (s *UserService) Update(ctx context.Context, id string, in models.UpdateUserInput) (*models.User, error) {
	const op = "users.Update"
	if err := required(op, field{"id", id}); err != nil {
		return nil, err
	}
	if err := notBlank(op, "username", in.Username); err != nil {
		return nil, err
	}
	if err := notBlank(op, "email", in.Email); err != nil {
		return nil, err
	}
	if in.Email != nil {
		email := normalizeEmail(*in.Email)
		if err := validEmail(op, email); err != nil {
			return nil, err
		}
		in.Email = &email
	}
	if in.PhoneNumber != nil {
		phone := strings.TrimSpace(*in.PhoneNumber)
		in.PhoneNumber = &phone
	}
	return s.users.Update(ctx, id, in)
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	const op = "users.Delete"
	if err := required(op, field{"id", id}); err != nil {
		return err
	}
	if err := s.users.Delete(ctx, id); err != nil {
		logFailure(ctx, op, err, zap.String("user_id", id))
		return err
	}
	return nil
}

func (s *UserService) Following(ctx context.Context, id string) ([]models.Club, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	return s.users.GetFollowingClubs(ctx, id)
}

func (s *UserService) Organizing(ctx context.Context, id string) ([]models.Club, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	return s.users.GetOrganizingClubs(ctx, id)
}

func (s *UserService) IsOrganizing(ctx context.Context, userID, clubID string) (bool, error) {
	if err := required("users.IsOrganizing", field{"id", userID}, field{"clubId", clubID}); err != nil {
		return false, err
	}
	return s.organizers.IsOrganizing(ctx, userID, clubID)
}

func (s *UserService) Follow(ctx context.Context, userID, clubID string) (*models.Club, error) {
	const op = "users.Follow"
	if err := required(op, field{"id", userID}, field{"clubId", clubID}); err != nil {
		return nil, err
	}
	club, err := s.follows.Follow(ctx, userID, clubID)
	if err != nil {
		logFailure(ctx, op, err, zap.String("user_id", userID), zap.String("club_id", clubID))
		return nil, err
	}
	return club, nil
}

func (s *UserService) Unfollow(ctx context.Context, userID, clubID string) (*models.Club, error) {
	const op = "users.Unfollow"
	if err := required(op, field{"id", userID}, field{"clubId", clubID}); err != nil {
		return nil, err
	}
	club, err := s.follows.Unfollow(ctx, userID, clubID)
	if err != nil {
		logFailure(ctx, op, err, zap.String("user_id", userID), zap.String("club_id", clubID))
		return nil, err
	}
	return club, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validEmail(op, email string) error {
	if _, err := mail.ParseAddress(email); err != nil {
		return apperr.Validation(op, "email is invalid")
	}
	return nil
}

// normalizePhone maps a blank phone number to nil so it does not collide with
// other users' blank numbers on the unique index.
func normalizePhone(phone *string) *string {
	if phone == nil {
		return nil
	}
	p := strings.TrimSpace(*phone)
	if p == "" {
		return nil
	}
	return &p
}
