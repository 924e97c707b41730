package models

import "gorm.io/gorm"

// User is the identity row JWT subjects point at. Credentials and
// account management live in the auth system, not here.
type User struct {
	gorm.Model
	Username string `gorm:"unique;not null"`
	Email    string `gorm:"unique;not null"`
}
