package db_models

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is keyed by email; there is no edit-profile flow, so rows are only
// ever inserted and deleted.
type User struct {
	Email        string `gorm:"primaryKey"`
	PasswordHash string
	FirstName    string
	LastName     string
	Country      string
	Role         string `gorm:"default:user"`
}
