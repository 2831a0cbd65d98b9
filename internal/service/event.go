package service

import (
	"context"

	"clubhub-backend/internal/apperr"
	"clubhub-backend/internal/models"

	"go.uber.org/zap"
)

type EventRepository interface {
	GetByID(ctx context.Context, id string) (*models.Event, error)
	GetAll(ctx context.Context) ([]models.Event, error)
	Create(ctx context.Context, in models.CreateEventInput) (*models.Event, error)
	Update(ctx context.Context, id string, in models.UpdateEventInput) (*models.Event, error)
	Delete(ctx context.Context, id string) error
}

type EventService struct {
	events EventRepository
}

func NewEventService(events EventRepository) *EventService {
	return &EventService{events: events}
}

func (s *EventService) List(ctx context.Context) ([]models.Event, error) {
	return s.events.GetAll(ctx)
}

func (s *EventService) Get(ctx context.Context, id string) (*models.Event, error) {
	if err := required("events.Get", field{"id", id}); err != nil {
		return nil, err
	}
	return s.events.GetByID(ctx, id)
}

func (s *EventService) Create(ctx context.Context, in models.CreateEventInput) (*models.Event, error) {
	const op = "events.Create"
	if err := required(op, field{"name", in.Name}, field{"clubId", in.ClubID}); err != nil {
		return nil, err
	}
	if in.Date.IsZero() {
		return nil, apperr.Validation(op, "date is required")
	}
	event, err := s.events.Create(ctx, in)
	if err != nil {
		logFailure(ctx, op, err, zap.String("club_id", in.ClubID))
		return nil, err
	}
	return event, nil
}

func (s *EventService) Update(ctx context.Context, id string, in models.UpdateEventInput) (*models.Event, error) {
	const op = "events.Update"
	if err := required(op, field{"id", id}); err != nil {
		return nil, err
	}
	if err := notBlank(op, "name", in.Name); err != nil {
		return nil, err
	}
	if err := notBlank(op, "clubId", in.ClubID); err != nil {
		return nil, err
	}
	return s.events.Update(ctx, id, in)
}

func (s *EventService) Delete(ctx context.Context, id string) error {
	if err := required("events.Delete", field{"id", id}); err != nil {
		return err
	}
	return s.events.Delete(ctx, id)
}
