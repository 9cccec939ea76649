package model

import "time"

// Task is a single item on a user's list. Description distinguishes absent
// from empty, and Deadline carries a calendar date with no time of day.
type Task struct {
	ID          uint `gorm:"primaryKey"`
	UserID      uint `gorm:"index"`
	Title       string
	Description *string
	Deadline    *time.Time
	Completed   bool `gorm:"default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DeadlineDate renders the deadline as YYYY-MM-DD, empty when unset.
func (t Task) DeadlineDate() string {
	if t.Deadline == nil {
		return ""
	}
	return t.Deadline.Format("2006-01-02")
}
