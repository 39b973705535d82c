package models

// User is an administrative account record. Email is the destination for
// application notifications on postings the user is responsible for.
type User struct {
	ID    string `gorm:"primaryKey"`
	Name  string
	Email string
}
