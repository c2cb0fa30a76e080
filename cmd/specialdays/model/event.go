package model

import "time"

type EventType string

var (
	Birthday    EventType = "birthday"
	Anniversary EventType = "anniversary"
	Other       EventType = "other"
)

// NormalizeEventType maps blank or unknown stored values onto the closed
// enum, defaulting to Other.
func NormalizeEventType(s string) EventType {
	switch EventType(s) {
	case Birthday:
		return Birthday
	case Anniversary:
		return Anniversary
	default:
		return Other
	}
}

// KnownEventType reports whether s names one of the enum values.
func KnownEventType(s string) bool {
	switch EventType(s) {
	case Birthday, Anniversary, Other:
		return true
	default:
		return false
	}
}

type Event struct {
	ID         string    `gorm:"column:id" json:"id"`
	OwnerID    string    `gorm:"column:owner_id" json:"owner_id"`
	Title      string    `gorm:"column:title" json:"title"`
	Date       string    `gorm:"column:date" json:"date"`
	Type       EventType `gorm:"column:type" json:"type"`
	Note       string    `gorm:"column:note" json:"note,omitempty"`
	CreateDate time.Time `gorm:"column:create_date" json:"create_date"`
	UpdateDate time.Time `gorm:"column:update_date" json:"update_date"`
}

func (m *Event) TableName() string {
	return "events"
}
