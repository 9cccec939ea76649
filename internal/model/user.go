package model

import "time"

// User is a registered account. Rows are append-only: after registration no
// path exists to mutate or delete one.
type User struct {
	ID             uint   `gorm:"primaryKey"`
	Username       string `gorm:"uniqueIndex"`
	HashedPassword string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	Tasks          []Task `gorm:"foreignKey:UserID"`
}
