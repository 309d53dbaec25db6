package user

import (
	"time"

	"github.com/muteeurrehman28/Freelancers-Network/internal/common"
)

type Role string

const (
	RoleClient     Role = "client"
	RoleFreelancer Role = "freelancer"
	RoleAdmin      Role = "admin"
)

type User struct {
	ID         common.UUID `json:"id"`
	Username   string      `json:"username"`
	Email      string      `json:"email"`
	Name       string      `json:"name"`
	Role       Role        `json:"role"`
	Bio        string      `json:"bio,omitempty"`
	Skills     []string    `json:"skills,omitempty"`
	Location   string      `json:"location,omitempty"`
	HourlyRate float64     `json:"hourly_rate,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// Summary is the subset of user fields exposed when a user is referenced
// from another entity. Credential fields never appear here.
type Summary struct {
	ID       common.UUID `json:"id"`
	Username string      `json:"username"`
	Name     string      `json:"name"`
	Email    string      `json:"email"`
}

func (u User) Summary() Summary {
	return Summary{ID: u.ID, Username: u.Username, Name: u.Name, Email: u.Email}
}
