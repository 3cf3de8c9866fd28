package domain

// User is a credential record. Records are seeded at start-up and never
// mutated.
type User struct {
	Username     string
	FullName     string
	Email        string
	Disabled     bool
	PasswordHash string // bcrypt or argon2id PHC
}

// PublicUser is what callers may see about a user. It never carries the hash.
type PublicUser struct {
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Disabled bool   `json:"disabled"`
}

// Public drops the password hash.
func (u User) Public() PublicUser {
	return PublicUser{
		Username: u.Username,
		FullName: u.FullName,
		Email:    u.Email,
		Disabled: u.Disabled,
	}
}
