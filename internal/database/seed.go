package database

import (
	"context"

	"clubhub-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DefaultCategories is the category catalogue installed by the seed command.
var DefaultCategories = []models.Category{
	{Name: "Academic", Description: "Clubs focused on academic subjects and learning."},
	{Name: "Arts", Description: "Clubs related to various forms of art and creativity."},
	{Name: "Athletics & Recreation", Description: "Sports and recreational activity clubs."},
	{Name: "Community Service", Description: "Clubs dedicated to volunteering and community improvement."},
	{Name: "Culture & Identities", Description: "Clubs celebrating diverse cultures and identities."},
	{Name: "Environment & Sustainability", Description: "Clubs focused on environmental issues and sustainability."},
	{Name: "Global Interests", Description: "Clubs with an international or global focus."},
	{Name: "Hobby & Leisure", Description: "Clubs for various hobbies and leisure activities."},
	{Name: "Leadership", Description: "Clubs aimed at developing leadership skills."},
	{Name: "Media", Description: "Clubs related to media production and journalism."},
	{Name: "Politics", Description: "Clubs focused on political issues and activism."},
	{Name: "Social", Description: "Clubs centered around social activities and interactions."},
	{Name: "Social Justice & Advocacy", Description: "Clubs promoting social justice and advocacy efforts."},
	{Name: "Spirituality & Faith Communities", Description: "Clubs for spiritual growth and faith-based communities."},
	{Name: "Student Governments, Councils & Unions", Description: "Clubs representing student governance and unions."},
	{Name: "Work & Career Development", Description: "Clubs focused on professional growth and career development."},
}

// SeedCategories inserts the default categories, skipping names that already
// exist. It returns the number of rows inserted.
func SeedCategories(ctx context.Context, db *gorm.DB) (int64, error) {
	rows := make([]models.Category, len(DefaultCategories))
	copy(rows, DefaultCategories)

	res := db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
		Create(&rows)
	if res.Error != nil {
		return 0, Classify("database.SeedCategories", res.Error)
	}
	return res.RowsAffected, nil
}
