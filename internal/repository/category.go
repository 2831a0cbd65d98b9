package repository

import (
	"context"
	"errors"

	"clubhub-backend/internal/apperr"
	"clubhub-backend/internal/database"
	"clubhub-backend/internal/models"

	"gorm.io/gorm"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) WithTx(tx *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: tx}
}

func (r *CategoryRepository) GetAll(ctx context.Context) ([]models.Category, error) {
	categories := []models.Category{}
	if err := r.db.WithContext(ctx).Order("name asc").Find(&categories).Error; err != nil {
		return nil, database.Classify("categories.GetAll", err)
	}
	return categories, nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id string) (*models.Category, error) {
	var category models.Category
	if err := first(ctx, r.db, "categories.GetByID", "category not found", &category, id); err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) Exists(ctx context.Context, id string) (bool, error) {
	return exists(ctx, r.db, "categories.Exists", &models.Category{}, id)
}

// CountExisting returns how many of the distinct ids name existing categories.
func (r *CategoryRepository) CountExisting(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Category{}).Where("id IN ?", ids).Count(&n).Error; err != nil {
		return 0, database.Classify("categories.CountExisting", err)
	}
	return n, nil
}

func (r *CategoryRepository) Create(ctx context.Context, in models.CreateCategoryInput) (*models.Category, error) {
	const op = "categories.Create"

	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Category{}).Where("name = ?", in.Name).Count(&n).Error; err != nil {
		return nil, database.Classify(op, err)
	}
	if n > 0 {
		return nil, apperr.Conflict(op, "category %q already exists", in.Name)
	}

	category := models.Category{Name: in.Name, Description: in.Description}
	if err := r.db.WithContext(ctx).Create(&category).Error; err != nil {
		return nil, database.Classify(op, err)
	}
	return &category, nil
}

func (r *CategoryRepository) GetClubsByCategory(ctx context.Context, categoryID string) ([]models.Club, error) {
	clubs := []models.Club{}
	err := r.db.WithContext(ctx).
		Joins("JOIN club_categories ON club_categories.club_id = clubs.id").
		Where("club_categories.category_id = ?", categoryID).
		Order("clubs.name asc").
		Find(&clubs).Error
	if err != nil {
		return nil, database.Classify("categories.GetClubsByCategory", err)
	}
	return clubs, nil
}

func (r *CategoryRepository) GetForClub(ctx context.Context, clubID string) ([]models.Category, error) {
	categories := []models.Category{}
	err := r.db.WithContext(ctx).
		Joins("JOIN club_categories ON club_categories.category_id = categories.id").
		Where("club_categories.club_id = ?", clubID).
		Order("categories.name asc").
		Find(&categories).Error
	if err != nil {
		return nil, database.Classify("categories.GetForClub", err)
	}
	return categories, nil
}

func (r *CategoryRepository) LinkExists(ctx context.Context, clubID, categoryID string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&models.ClubCategory{}).
		Where("club_id = ? AND category_id = ?", clubID, categoryID).
		Count(&n).Error
	if err != nil {
		return false, database.Classify("categories.LinkExists", err)
	}
	return n > 0, nil
}

// AddLink inserts one (club, category) link. A duplicate is a Conflict.
func (r *CategoryRepository) AddLink(ctx context.Context, clubID, categoryID string) error {
	link := models.ClubCategory{ClubID: clubID, CategoryID: categoryID}
	if err := r.db.WithContext(ctx).Create(&link).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.Conflict("categories.AddLink", "club already has this category")
		}
		return database.Classify("categories.AddLink", err)
	}
	return nil
}

// AddLinks inserts a link per category id in one statement.
func (r *CategoryRepository) AddLinks(ctx context.Context, clubID string, categoryIDs []string) error {
	if len(categoryIDs) == 0 {
		return nil
	}
	links := make([]models.ClubCategory, 0, len(categoryIDs))
	for _, id := range categoryIDs {
		links = append(links, models.ClubCategory{ClubID: clubID, CategoryID: id})
	}
	if err := r.db.WithContext(ctx).Create(&links).Error; err != nil {
		return database.Classify("categories.AddLinks", err)
	}
	return nil
}

// RemoveLink deletes the (club, category) link and returns the rows removed.
func (r *CategoryRepository) RemoveLink(ctx context.Context, clubID, categoryID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("club_id = ? AND category_id = ?", clubID, categoryID).
		Delete(&models.ClubCategory{})
	if res.Error != nil {
		return 0, database.Classify("categories.RemoveLink", res.Error)
	}
	return res.RowsAffected, nil
}

// RemoveAllLinks deletes every category link of the club.
func (r *CategoryRepository) RemoveAllLinks(ctx context.Context, clubID string) error {
	if err := r.db.WithContext(ctx).Where("club_id = ?", clubID).Delete(&models.ClubCategory{}).Error; err != nil {
		return database.Classify("categories.RemoveAllLinks", err)
	}
	return nil
}
