package service

import (
	"context"

	"clubhub-backend/internal/models"

	"go.uber.org/zap"
)

// ClubRepository is the club data access the service needs.
type ClubRepository interface {
	GetByID(ctx context.Context, id string) (*models.Club, error)
	GetAll(ctx context.Context) ([]models.Club, error)
	Create(ctx context.Context, in models.CreateClubInput) (*models.Club, error)
	Update(ctx context.Context, id string, in models.UpdateClubInput) (*models.Club, error)
	Delete(ctx context.Context, id string) error
	GetOrganizer(ctx context.Context, id string) (*models.User, error)
	GetFollowers(ctx context.Context, id string) ([]models.User, error)
	ListEvents(ctx context.Context, id string) ([]models.Event, error)
	CheckRegistered(ctx context.Context, id string) (bool, error)
}

// ClubCategoryReader lists the categories attached to a club.
type ClubCategoryReader interface {
	GetForClub(ctx context.Context, clubID string) ([]models.Category, error)
}

type OrganizerCoordinator interface {
	Reassign(ctx context.Context, clubID, newOrganizerID string) (*models.User, error)
	IsOrganizing(ctx context.Context, userID, clubID string) (bool, error)
}

type CategoryCoordinator interface {
	Add(ctx context.Context, clubID, categoryID string) (*models.Club, error)
	Remove(ctx context.Context, clubID, categoryID string) (*models.Club, error)
	Replace(ctx context.Context, clubID string, categoryIDs []string) ([]models.Category, error)
}

type ClubService struct {
	clubs      ClubRepository
	categories ClubCategoryReader
	organizers OrganizerCoordinator
	tags       CategoryCoordinator
}

func NewClubService(clubs ClubRepository, categories ClubCategoryReader, organizers OrganizerCoordinator, tags CategoryCoordinator) *ClubService {
	return &ClubService{
		clubs:      clubs,
		categories: categories,
		organizers: organizers,
		tags:       tags,
	}
}

func (s *ClubService) List(ctx context.Context) ([]models.Club, error) {
	return s.clubs.GetAll(ctx)
}

func (s *ClubService) Get(ctx context.Context, id string) (*models.Club, error) {
	if err := required("clubs.Get", field{"id", id}); err != nil {
		return nil, err
	}
	return s.clubs.GetByID(ctx, id)
}

func (s *ClubService) Create(ctx context.Context, in models.CreateClubInput) (*models.Club, error) {
	const op = "clubs.Create"
	if err := required(op, field{"name", in.Name}, field{"organizerId", in.OrganizerID}); err != nil {
		return nil, err
	}
	club, err := s.clubs.Create(ctx, in)
	if err != nil {
		logFailure(ctx, op, err, zap.String("organizer_id", in.OrganizerID))
		return nil, err
	}
	return club, nil
}

func (s *ClubService) Update(ctx context.Context, id string, in models.UpdateClubInput) (*models.Club, error) {
	const op = "clubs.Update"
	if err := required(op, field{"id", id}); err != nil {
		return nil, err
	}
	if err := notBlank(op, "name", in.Name); err != nil {
		return nil, err
	}
	return s.clubs.Update(ctx, id, in)
}

func (s *ClubService) Delete(ctx context.Context, id string) error {
	const op = "clubs.Delete"
	if err := required(op, field{"id", id}); err != nil {
		return err
	}
	if err := s.clubs.Delete(ctx, id); err != nil {
		logFailure(ctx, op, err, zap.String("club_id", id))
		return err
	}
	return nil
}

func (s *ClubService) Organizer(ctx context.Context, id string) (*models.User, error) {
	if err := required("clubs.Organizer", field{"id", id}); err != nil {
		return nil, err
	}
	return s.clubs.GetOrganizer(ctx, id)
}

func (s *ClubService) Followers(ctx context.Context, id string) ([]models.User, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	return s.clubs.GetFollowers(ctx, id)
}

func (s *ClubService) Events(ctx context.Context, id string) ([]models.Event, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	return s.clubs.ListEvents(ctx, id)
}

func (s *ClubService) Categories(ctx context.Context, id string) ([]models.Category, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	return s.categories.GetForClub(ctx, id)
}

func (s *ClubService) Registered(ctx context.Context, id string) (bool, error) {
	if err := required("clubs.Registered", field{"id", id}); err != nil {
		return false, err
	}
	return s.clubs.CheckRegistered(ctx, id)
}

func (s *ClubService) ReassignOrganizer(ctx context.Context, clubID, userID string) (*models.User, error) {
	const op = "clubs.ReassignOrganizer"
	if err := required(op, field{"id", clubID}, field{"organizerId", userID}); err != nil {
		return nil, err
	}
	organizer, err := s.organizers.Reassign(ctx, clubID, userID)
	if err != nil {
		logFailure(ctx, op, err, zap.String("club_id", clubID), zap.String("organizer_id", userID))
		return nil, err
	}
	return organizer, nil
}

func (s *ClubService) AddCategory(ctx context.Context, clubID, categoryID string) (*models.Club, error) {
	const op = "clubs.AddCategory"
	if err := required(op, field{"id", clubID}, field{"categoryId", categoryID}); err != nil {
		return nil, err
	}
	club, err := s.tags.Add(ctx, clubID, categoryID)
	if err != nil {
		logFailure(ctx, op, err, zap.String("club_id", clubID), zap.String("category_id", categoryID))
		return nil, err
	}
	return club, nil
}

func (s *ClubService) RemoveCategory(ctx context.Context, clubID, categoryID string) (*models.Club, error) {
	const op = "clubs.RemoveCategory"
	if err := required(op, field{"id", clubID}, field{"categoryId", categoryID}); err != nil {
		return nil, err
	}
	return s.tags.Remove(ctx, clubID, categoryID)
}

func (s *ClubService) ReplaceCategories(ctx context.Context, clubID string, categoryIDs []string) ([]models.Category, error) {
	const op = "clubs.ReplaceCategories"
	if err := required(op, field{"id", clubID}); err != nil {
		return nil, err
	}
	for _, id := range categoryIDs {
		if err := required(op, field{"categoryIds", id}); err != nil {
			return nil, err
		}
	}
	categories, err := s.tags.Replace(ctx, clubID, categoryIDs)
	if err != nil {
		logFailure(ctx, op, err, zap.String("club_id", clubID), zap.Strings("category_ids", categoryIDs))
		return nil, err
	}
	return categories, nil
}
