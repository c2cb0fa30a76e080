package repository

import (
	"context"
	"specialdays-backend/cmd/specialdays/model"
	"time"

	"gorm.io/gorm"
)

type EventRepo struct {
	db *gorm.DB
}

func NewEventRepo(db *gorm.DB) *EventRepo {
	return &EventRepo{
		db: db,
	}
}

func (r *EventRepo) ListEvents(ctx context.Context, ownerID string) ([]model.Event, error) {

	var events []model.Event

	result := r.db.
		WithContext(ctx).
		Model(&model.Event{}).
		Where("owner_id = ?", ownerID).
		Order("date asc").
		Debug().
		Find(&events)

	if result.Error != nil {
		return nil, result.Error
	}

	return events, nil
}

func (r *EventRepo) CreateEvent(ctx context.Context, event model.Event) error {

	result := r.db.
		WithContext(ctx).
		Model(&model.Event{}).
		Debug().
		Create(&event)

	if result.Error != nil {
		return result.Error
	}

	return nil
}

// UpdateEvent writes the mutable fields of an owner's event. The fields map
// must not touch id, owner_id or create_date; callers build it from a
// validated request.
func (r *EventRepo) UpdateEvent(ctx context.Context, ownerID string, id string, fields map[string]any) error {

	fields["update_date"] = time.Now()

	result := r.db.
		WithContext(ctx).
		Model(&model.Event{}).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Debug().
		Updates(fields)

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *EventRepo) DeleteEvent(ctx context.Context, ownerID string, id string) error {

	result := r.db.
		WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Debug().
		Delete(&model.Event{ID: id})

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
