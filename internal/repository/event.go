package repository

import (
	"context"

	"clubhub-backend/internal/apperr"
	"clubhub-backend/internal/database"
	"clubhub-backend/internal/models"

	"gorm.io/gorm"
)

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) WithTx(tx *gorm.DB) *EventRepository {
	return &EventRepository{db: tx}
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*models.Event, error) {
	var event models.Event
	if err := first(ctx, r.db, "events.GetByID", "event not found", &event, id); err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *EventRepository) GetAll(ctx context.Context) ([]models.Event, error) {
	events := []models.Event{}
	if err := r.db.WithContext(ctx).Order("date asc").Find(&events).Error; err != nil {
		return nil, database.Classify("events.GetAll", err)
	}
	return events, nil
}

// Create inserts an event. The owning club must exist.
func (r *EventRepository) Create(ctx context.Context, in models.CreateEventInput) (*models.Event, error) {
	const op = "events.Create"

	if err := r.requireClub(ctx, op, in.ClubID); err != nil {
		return nil, err
	}

	event := models.Event{
		Name:        in.Name,
		Description: in.Description,
		Location:    in.Location,
		Date:        in.Date,
		ClubID:      in.ClubID,
	}
	if err := r.db.WithContext(ctx).Create(&event).Error; err != nil {
		return nil, database.Classify(op, err)
	}
	return &event, nil
}

// Update applies the non-nil fields of in. Moving the event to another club
// requires that club to exist.
func (r *EventRepository) Update(ctx context.Context, id string, in models.UpdateEventInput) (*models.Event, error) {
	const op = "events.Update"

	if in.ClubID != nil {
		if err := r.requireClub(ctx, op, *in.ClubID); err != nil {
			return nil, err
		}
	}

	cols := in.Columns()
	if len(cols) > 0 {
		res := r.db.WithContext(ctx).Model(&models.Event{}).Where("id = ?", id).Updates(cols)
		if res.Error != nil {
			return nil, database.Classify(op, res.Error)
		}
		if res.RowsAffected == 0 {
			return nil, apperr.NotFound(op, "event not found")
		}
	}
	return r.GetByID(ctx, id)
}

func (r *EventRepository) Delete(ctx context.Context, id string) error {
	const op = "events.Delete"

	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Event{})
	if res.Error != nil {
		return database.Classify(op, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound(op, "event not found")
	}
	return nil
}

func (r *EventRepository) requireClub(ctx context.Context, op, clubID string) error {
	ok, err := exists(ctx, r.db, op, &models.Club{}, clubID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.Validation(op, "club %q does not exist", clubID)
	}
	return nil
}
