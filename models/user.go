package models

type User struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// DisplayName falls back to the mailbox part of the email when the profile
// carries no name.
func (u User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	for i := 0; i < len(u.Email); i++ {
		if u.Email[i] == '@' {
			return u.Email[:i]
		}
	}
	return u.Email
}
