package models

import "time"

// Todo is a lightweight checklist item, persisted rather than held in an
// in-process map so entries survive restarts and replicas agree.
type Todo struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Completed bool      `gorm:"default:false" json:"completed"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Todo) TableName() string { return "todos" }
