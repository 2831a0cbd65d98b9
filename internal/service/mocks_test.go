package service

import (
	"context"

	"clubhub-backend/internal/models"
)

// ============================================================================
// Club repository
// ============================================================================

type mockClubRepo struct {
	getByIDFunc         func(ctx context.Context, id string) (*models.Club, error)
	getAllFunc          func(ctx context.Context) ([]models.Club, error)
	createFunc          func(ctx context.Context, in models.CreateClubInput) (*models.Club, error)
	updateFunc          func(ctx context.Context, id string, in models.UpdateClubInput) (*models.Club, error)
	deleteFunc          func(ctx context.Context, id string) error
	getOrganizerFunc    func(ctx context.Context, id string) (*models.User, error)
	getFollowersFunc    func(ctx context.Context, id string) ([]models.User, error)
	listEventsFunc      func(ctx context.Context, id string) ([]models.Event, error)
	checkRegisteredFunc func(ctx context.Context, id string) (bool, error)
}

func (m *mockClubRepo) GetByID(ctx context.Context, id string) (*models.Club, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return &models.Club{ID: id}, nil
}

func (m *mockClubRepo) GetAll(ctx context.Context) ([]models.Club, error) {
	if m.getAllFunc != nil {
		return m.getAllFunc(ctx)
	}
	return []models.Club{}, nil
}

func (m *mockClubRepo) Create(ctx context.Context, in models.CreateClubInput) (*models.Club, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, in)
	}
	return &models.Club{ID: "club-1", Name: in.Name, OrganizerID: in.OrganizerID}, nil
}

func (m *mockClubRepo) Update(ctx context.Context, id string, in models.UpdateClubInput) (*models.Club, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, in)
	}
	return &models.Club{ID: id}, nil
}

func (m *mockClubRepo) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func (m *mockClubRepo) GetOrganizer(ctx context.Context, id string) (*models.User, error) {
	if m.getOrganizerFunc != nil {
		return m.getOrganizerFunc(ctx, id)
	}
	return &models.User{ID: "user-1"}, nil
}

func (m *mockClubRepo) GetFollowers(ctx context.Context, id string) ([]models.User, error) {
	if m.getFollowersFunc != nil {
		return m.getFollowersFunc(ctx, id)
	}
	return []models.User{}, nil
}

func (m *mockClubRepo) ListEvents(ctx context.Context, id string) ([]models.Event, error) {
	if m.listEventsFunc != nil {
		return m.listEventsFunc(ctx, id)
	}
	return []models.Event{}, nil
}

func (m *mockClubRepo) CheckRegistered(ctx context.Context, id string) (bool, error) {
	if m.checkRegisteredFunc != nil {
		return m.checkRegisteredFunc(ctx, id)
	}
	return false, nil
}

type mockClubCategoryReader struct {
	getForClubFunc func(ctx context.Context, clubID string) ([]models.Category, error)
}

func (m *mockClubCategoryReader) GetForClub(ctx context.Context, clubID string) ([]models.Category, error) {
	if m.getForClubFunc != nil {
		return m.getForClubFunc(ctx, clubID)
	}
	return []models.Category{}, nil
}

// ============================================================================
// Coordinators
// ============================================================================

type mockOrganizers struct {
	reassignFunc     func(ctx context.Context, clubID, newOrganizerID string) (*models.User, error)
	isOrganizingFunc func(ctx context.Context, userID, clubID string) (bool, error)
}

func (m *mockOrganizers) Reassign(ctx context.Context, clubID, newOrganizerID string) (*models.User, error) {
	if m.reassignFunc != nil {
		return m.reassignFunc(ctx, clubID, newOrganizerID)
	}
	return &models.User{ID: newOrganizerID}, nil
}

func (m *mockOrganizers) IsOrganizing(ctx context.Context, userID, clubID string) (bool, error) {
	if m.isOrganizingFunc != nil {
		return m.isOrganizingFunc(ctx, userID, clubID)
	}
	return false, nil
}

type mockTags struct {
	addFunc     func(ctx context.Context, clubID, categoryID string) (*models.Club, error)
	removeFunc  func(ctx context.Context, clubID, categoryID string) (*models.Club, error)
	replaceFunc func(ctx context.Context, clubID string, categoryIDs []string) ([]models.Category, error)
}

func (m *mockTags) Add(ctx context.Context, clubID, categoryID string) (*models.Club, error) {
	if m.addFunc != nil {
		return m.addFunc(ctx, clubID, categoryID)
	}
	return &models.Club{ID: clubID}, nil
}

func (m *mockTags) Remove(ctx context.Context, clubID, categoryID string) (*models.Club, error) {
	if m.removeFunc != nil {
		return m.removeFunc(ctx, clubID, categoryID)
	}
	return &models.Club{ID: clubID}, nil
}

func (m *mockTags) Replace(ctx context.Context, clubID string, categoryIDs []string) ([]models.Category, error) {
	if m.replaceFunc != nil {
		return m.replaceFunc(ctx, clubID, categoryIDs)
	}
	return []models.Category{}, nil
}

type mockFollows struct {
	followFunc   func(ctx context.Context, userID, clubID string) (*models.Club, error)
	unfollowFunc func(ctx context.Context, userID, clubID string) (*models.Club, error)
}

func (m *mockFollows) Follow(ctx context.Context, userID, clubID string) (*models.Club, error) {
	if m.followFunc != nil {
		return m.followFunc(ctx, userID, clubID)
	}
	return &models.Club{ID: clubID}, nil
}

func (m *mockFollows) Unfollow(ctx context.Context, userID, clubID string) (*models.Club, error) {
	if m.unfollowFunc != nil {
		return m.unfollowFunc(ctx, userID, clubID)
	}
	return &models.Club{ID: clubID}, nil
}

// ============================================================================
// User repository
// ============================================================================

type mockUserRepo struct {
	getByIDFunc            func(ctx context.Context, id string) (*models.User, error)
	getAllFunc             func(ctx context.Context) ([]models.User, error)
	getByEmailFunc         func(ctx context.Context, email string) (*models.User, error)
	createFunc             func(ctx context.Context, in models.CreateUserInput) (*models.User, error)
	updateFunc             func(ctx context.Context, id string, in models.UpdateUserInput) (*models.User, error)
	deleteFunc             func(ctx context.Context, id string) error
	getFollowingClubsFunc  func(ctx context.Context, userID string) ([]models.Club, error)
	getOrganizingClubsFunc func(ctx context.Context, userID string) ([]models.Club, error)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return &models.User{ID: id}, nil
}

func (m *mockUserRepo) GetAll(ctx context.Context) ([]models.User, error) {
	if m.getAllFunc != nil {
		return m.getAllFunc(ctx)
	}
	return []models.User{}, nil
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.getByEmailFunc != nil {
		return m.getByEmailFunc(ctx, email)
	}
	return &models.User{ID: "user-1", Email: email}, nil
}

func (m *mockUserRepo) Create(ctx context.Context, in models.CreateUserInput) (*models.User, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, in)
	}
	return &models.User{ID: "user-1", Username: in.Username, Email: in.Email, PhoneNumber: in.PhoneNumber}, nil
}

func (m *mockUserRepo) Update(ctx context.Context, id string, in models.UpdateUserInput) (*models.User, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, in)
	}
	return &models.User{ID: id}, nil
}

func (m *mockUserRepo) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func (m *mockUserRepo) GetFollowingClubs(ctx context.Context, userID string) ([]models.Club, error) {
	if m.getFollowingClubsFunc != nil {
		return m.getFollowingClubsFunc(ctx, userID)
	}
	return []models.Club{}, nil
}

func (m *mockUserRepo) GetOrganizingClubs(ctx context.Context, userID string) ([]models.Club, error) {
	if m.getOrganizingClubsFunc != nil {
		return m.getOrganizingClubsFunc(ctx, userID)
	}
	return []models.Club{}, nil
}

// ============================================================================
// Category and event repositories
// ============================================================================

type mockCategoryRepo struct {
	getAllFunc             func(ctx context.Context) ([]models.Category, error)
	getByIDFunc            func(ctx context.Context, id string) (*models.Category, error)
	createFunc             func(ctx context.Context, in models.CreateCategoryInput) (*models.Category, error)
	getClubsByCategoryFunc func(ctx context.Context, categoryID string) ([]models.Club, error)
}

func (m *mockCategoryRepo) GetAll(ctx context.Context) ([]models.Category, error) {
	if m.getAllFunc != nil {
		return m.getAllFunc(ctx)
	}
	return []models.Category{}, nil
}

func (m *mockCategoryRepo) GetByID(ctx context.Context, id string) (*models.Category, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return &models.Category{ID: id}, nil
}

func (m *mockCategoryRepo) Create(ctx context.Context, in models.CreateCategoryInput) (*models.Category, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, in)
	}
	return &models.Category{ID: "cat-1", Name: in.Name}, nil
}

func (m *mockCategoryRepo) GetClubsByCategory(ctx context.Context, categoryID string) ([]models.Club, error) {
	if m.getClubsByCategoryFunc != nil {
		return m.getClubsByCategoryFunc(ctx, categoryID)
	}
	return []models.Club{}, nil
}

type mockEventRepo struct {
	getByIDFunc func(ctx context.Context, id string) (*models.Event, error)
	getAllFunc  func(ctx context.Context) ([]models.Event, error)
	createFunc  func(ctx context.Context, in models.CreateEventInput) (*models.Event, error)
	updateFunc  func(ctx context.Context, id string, in models.UpdateEventInput) (*models.Event, error)
	deleteFunc  func(ctx context.Context, id string) error
}

func (m *mockEventRepo) GetByID(ctx context.Context, id string) (*models.Event, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return &models.Event{ID: id}, nil
}

func (m *mockEventRepo) GetAll(ctx context.Context) ([]models.Event, error) {
	if m.getAllFunc != nil {
		return m.getAllFunc(ctx)
	}
	return []models.Event{}, nil
}

func (m *mockEventRepo) Create(ctx context.Context, in models.CreateEventInput) (*models.Event, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, in)
	}
	return &models.Event{ID: "event-1", Name: in.Name, ClubID: in.ClubID, Date: in.Date}, nil
}

func (m *mockEventRepo) Update(ctx context.Context, id string, in models.UpdateEventInput) (*models.Event, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, in)
	}
	return &models.Event{ID: id}, nil
}

func (m *mockEventRepo) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}
