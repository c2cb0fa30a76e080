package model

import "time"

// User is the identity resolved from the hosted auth service.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type UserProfile struct {
	ID         string    `gorm:"column:id" json:"id"`
	Name       string    `gorm:"column:name" json:"name"`
	BirthDate  string    `gorm:"column:birth_date" json:"birth_date,omitempty"`
	Gender     string    `gorm:"column:gender" json:"gender,omitempty"`
	Email      string    `gorm:"column:email" json:"email"`
	CreateDate time.Time `gorm:"column:create_date" json:"create_date"`
	UpdateDate time.Time `gorm:"column:update_date" json:"update_date"`
}

func (m *UserProfile) TableName() string {
	return "user_profiles"
}
