package repository

import (
	"context"
	"specialdays-backend/cmd/specialdays/model"
	"time"

	"gorm.io/gorm"
)

type UserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{
		db: db,
	}
}

// EnsureProfile creates the profile row if it does not exist yet. An
// existing row is left untouched, so repeated registrations are idempotent.
func (r *UserRepo) EnsureProfile(ctx context.Context, profile model.UserProfile) error {

	result := r.db.
		WithContext(ctx).
		Where("id = ?", profile.ID).
		Debug().
		FirstOrCreate(&profile)

	if result.Error != nil {
		return result.Error
	}

	return nil
}

func (r *UserRepo) GetProfile(ctx context.Context, id string) (*model.UserProfile, error) {

	var profile model.UserProfile

	result := r.db.
		WithContext(ctx).
		Where("id = ?", id).
		Debug().
		First(&profile)

	if result.Error != nil {
		return nil, result.Error
	}

	return &profile, nil
}

func (r *UserRepo) UpdateProfile(ctx context.Context, id string, fields map[string]any) error {

	fields["update_date"] = time.Now()

	result := r.db.
		WithContext(ctx).
		Model(&model.UserProfile{}).
		Where("id = ?", id).
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
