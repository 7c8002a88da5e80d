// Package models holds small domain fixtures shared by the engine's tests.
package models

// Article is a minimal owned record.
type Article struct {
	ID     uint   `gorm:"primaryKey"`
	Title  string `gorm:"size:255"`
	UserID uint   `gorm:"index"`
}

// Comment exists to exercise unmapped resource types.
type Comment struct {
	ID   uint `gorm:"primaryKey"`
	Body string
}
