package model

import (
	"time"

	"github.com/golang-jwt/jwt"
)

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// Profile is the account record created at sign-up. Role is mutated only by
// the admin promotion operation.
type Profile struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Password  string    `json:"-"`
	Role      UserRole  `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Profile) IsAdmin() bool { return p.Role == RoleAdmin }

// Session is the authenticated caller identity, built by the auth middleware
// and passed explicitly into every usecase call.
type Session struct {
	UserID string
	Email  string
	Role   UserRole
}

func (s Session) IsAdmin() bool { return s.Role == RoleAdmin }

// UserClaims are the JWT claims issued at login. Issuer carries the profile id.
type UserClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.StandardClaims
}

type ReqRegister struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Password string `json:"password"`
}

type ReqLogin struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
