package models

// User is a shop administrator account. Customers never log in; only the
// admin surface (rebuild, hidden preview) is authenticated.
type User struct {
	BaseModel
	Username     string `gorm:"uniqueIndex" json:"username"`
	DisplayName  string `json:"display_name"`
	PasswordHash string `json:"-"`
	IsAdmin      bool   `json:"is_admin"`
}
