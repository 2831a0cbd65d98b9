package coordinator_test

import (
	"context"
	"testing"

	"clubhub-backend/internal/apperr"
	"clubhub-backend/internal/coordinator"
	"clubhub-backend/internal/models"
	"clubhub-backend/internal/repository"
	"clubhub-backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	db         *gorm.DB
	repos      *repository.Repositories
	organizers *coordinator.Organizers
	follows    *coordinator.Follows
	categories *coordinator.Categories
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.NewDB(t)
	repos := repository.New(db)
	return &fixture{
		db:         db,
		repos:      repos,
		organizers: coordinator.NewOrganizers(db, repos),
		follows:    coordinator.NewFollows(db, repos),
		categories: coordinator.NewCategories(db, repos),
	}
}

func (f *fixture) user(t *testing.T, name string) *models.User {
	t.Helper()
	u, err := f.repos.Users.Create(context.Background(), models.CreateUserInput{Username: name, Email: name + "@example.com"})
	require.NoError(t, err)
	return u
}

func (f *fixture) club(t *testing.T, name, organizerID string) *models.Club {
	t.Helper()
	c, err := f.repos.Clubs.Create(context.Background(), models.CreateClubInput{Name: name, OrganizerID: organizerID})
	require.NoError(t, err)
	return c
}

func (f *fixture) category(t *testing.T, name string) *models.Category {
	t.Helper()
	c, err := f.repos.Categories.Create(context.Background(), models.CreateCategoryInput{Name: name})
	require.NoError(t, err)
	return c
}

func clubIDs(clubs []models.Club) []string {
	ids := make([]string, 0, len(clubs))
	for _, c := range clubs {
		ids = append(ids, c.ID)
	}
	return ids
}

func categoryIDs(cats []models.Category) []string {
	ids := make([]string, 0, len(cats))
	for _, c := range cats {
		ids = append(ids, c.ID)
	}
	return ids
}

func TestReassignOrganizer(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u1 := f.user(t, "u1")
	u2 := f.user(t, "u2")
	c := f.club(t, "Chess", u1.ID)

	organizer, err := f.organizers.Reassign(ctx, c.ID, u2.ID)
	require.NoError(t, err)
	assert.Equal(t, u2.ID, organizer.ID)

	got, err := f.repos.Clubs.GetOrganizer(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, u2.ID, got.ID)

	u1Clubs, err := f.repos.Users.GetOrganizingClubs(ctx, u1.ID)
	require.NoError(t, err)
	assert.Empty(t, u1Clubs)

	u2Clubs, err := f.repos.Users.GetOrganizingClubs(ctx, u2.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{c.ID}, clubIDs(u2Clubs))

	ok, err := f.organizers.IsOrganizing(ctx, u2.ID, c.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = f.organizers.IsOrganizing(ctx, u1.ID, c.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestReassignOrganizerFailures(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u1 := f.user(t, "u1")
	c := f.club(t, "Chess", u1.ID)

	tests := []struct {
		name    string
		clubID  string
		userID  string
		wantErr error
	}{
		{"missing club", "missing", u1.ID, apperr.ErrNotFound},
		{"missing user", c.ID, "missing", apperr.ErrValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.organizers.Reassign(ctx, tt.clubID, tt.userID)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	got, err := f.repos.Clubs.GetOrganizer(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, u1.ID, got.ID)
}

func TestReassignToCurrentOrganizer(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u1 := f.user(t, "u1")
	c := f.club(t, "Chess", u1.ID)

	organizer, err := f.organizers.Reassign(ctx, c.ID, u1.ID)
	require.NoError(t, err)
	assert.Equal(t, u1.ID, organizer.ID)
}

func TestReassignOrganizerLosesRace(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.user(t, "owner")
	rival := f.user(t, "rival")
	next := f.user(t, "next")
	c := f.club(t, "Chess", owner.ID)

	// Move the club to rival right after Reassign reads it, inside the same
	// transaction, so the conditional update no longer matches.
	armed := true
	require.NoError(t, f.db.Callback().Query().After("gorm:query").Register("test:move_club", func(tx *gorm.DB) {
		if !armed || tx.Error != nil || tx.Statement.Table != "clubs" {
			return
		}
		armed = false
		require.NoError(t, tx.Session(&gorm.Session{NewDB: true}).
			Exec("UPDATE clubs SET organizer_id = ? WHERE id = ?", rival.ID, c.ID).Error)
	}))

	_, err := f.organizers.Reassign(ctx, c.ID, next.ID)
	assert.ErrorIs(t, err, apperr.ErrConflict)
	assert.False(t, armed)

	// The transaction rolled back: neither rival nor next took over.
	got, err := f.repos.Clubs.GetOrganizer(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, owner.ID, got.ID)

	ok, err := f.organizers.IsOrganizing(ctx, next.ID, c.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFollowRoundTrip(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.user(t, "owner")
	u := f.user(t, "fan")
	c := f.club(t, "Chess", owner.ID)

	club, err := f.follows.Follow(ctx, u.ID, c.ID)
	require.NoError(t, err)
	assert.Equal(t, c.ID, club.ID)

	_, err = f.follows.Follow(ctx, u.ID, c.ID)
	assert.ErrorIs(t, err, apperr.ErrConflict)

	club, err = f.follows.Unfollow(ctx, u.ID, c.ID)
	require.NoError(t, err)
	assert.Equal(t, c.ID, club.ID)

	followers, err := f.repos.Clubs.GetFollowers(ctx, c.ID)
	require.NoError(t, err)
	assert.Empty(t, followers)

	_, err = f.follows.Unfollow(ctx, u.ID, c.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = f.follows.Follow(ctx, u.ID, c.ID)
	require.NoError(t, err)
}

func TestFollowMissingEntities(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.user(t, "owner")
	c := f.club(t, "Chess", owner.ID)

	_, err := f.follows.Follow(ctx, "missing", c.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = f.follows.Follow(ctx, owner.ID, "missing")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = f.follows.Unfollow(ctx, owner.ID, "missing")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestFollowThenDeleteClub(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.user(t, "owner")
	u := f.user(t, "fan")
	c := f.club(t, "Chess", owner.ID)

	_, err := f.follows.Follow(ctx, u.ID, c.ID)
	require.NoError(t, err)
	require.NoError(t, f.repos.Clubs.Delete(ctx, c.ID))

	clubs, err := f.repos.Users.GetFollowingClubs(ctx, u.ID)
	require.NoError(t, err)
	assert.Empty(t, clubs)
}

func TestAddCategory(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.user(t, "owner")
	c := f.club(t, "Chess", owner.ID)
	k1 := f.category(t, "K1")
	f.category(t, "K2")

	_, err := f.categories.Add(ctx, c.ID, k1.ID)
	require.NoError(t, err)

	_, err = f.categories.Add(ctx, c.ID, k1.ID)
	assert.ErrorIs(t, err, apperr.ErrConflict)

	clubs, err := f.repos.Categories.GetClubsByCategory(ctx, k1.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{c.ID}, clubIDs(clubs))

	_, err = f.categories.Add(ctx, c.ID, "missing")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = f.categories.Add(ctx, "missing", k1.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestRemoveCategoryIsNoOpSafe(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.user(t, "owner")
	c := f.club(t, "Chess", owner.ID)
	k1 := f.category(t, "K1")

	_, err := f.categories.Add(ctx, c.ID, k1.ID)
	require.NoError(t, err)

	_, err = f.categories.Remove(ctx, c.ID, k1.ID)
	require.NoError(t, err)
	_, err = f.categories.Remove(ctx, c.ID, k1.ID)
	require.NoError(t, err)

	cats, err := f.repos.Categories.GetForClub(ctx, c.ID)
	require.NoError(t, err)
	assert.Empty(t, cats)

	_, err = f.categories.Remove(ctx, "missing", k1.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestReplaceCategories(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.user(t, "owner")
	c := f.club(t, "Chess", owner.ID)
	c1 := f.category(t, "A")
	c2 := f.category(t, "B")
	c3 := f.category(t, "C")

	_, err := f.categories.Add(ctx, c.ID, c3.ID)
	require.NoError(t, err)

	cats, err := f.categories.Replace(ctx, c.ID, nil)
	require.NoError(t, err)
	assert.Empty(t, cats)

	cats, err = f.categories.Replace(ctx, c.ID, []string{c1.ID, c2.ID, c1.ID})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{c1.ID, c2.ID}, categoryIDs(cats))

	t.Run("unknown id leaves the set untouched", func(t *testing.T) {
		_, err := f.categories.Replace(ctx, c.ID, []string{c3.ID, "missing"})
		assert.ErrorIs(t, err, apperr.ErrValidation)

		cats, err := f.repos.Categories.GetForClub(ctx, c.ID)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{c1.ID, c2.ID}, categoryIDs(cats))
	})

	t.Run("missing club", func(t *testing.T) {
		_, err := f.categories.Replace(ctx, "missing", []string{c1.ID})
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})
}
