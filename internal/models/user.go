package models

// User is an admin account for the credentials sign-in strategy.
// Password holds a bcrypt hash.
type User struct {
	ID       string `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name     string `json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
}
