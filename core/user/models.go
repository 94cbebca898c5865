package user

import (
	"errors"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/fyp/core"
)

// Role is the portal a user lands in after login.
type Role string

const (
	RoleStudent     Role = "student"
	RoleSupervisor  Role = "supervisor"
	RoleCoordinator Role = "coordinator"
)

var (
	Roles = []Role{RoleStudent, RoleSupervisor, RoleCoordinator}

	ErrInvalidRole = errors.New("unknown role")
)

func ParseRole(s string) (Role, error) {
	r := Role(core.CleanString(s, true /* lower */))
	if !r.Valid() {
		return "", ErrInvalidRole
	}
	return r, nil
}

func (r Role) Valid() bool {
	for _, role := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Home is the landing path of the role's portal.
func (r Role) Home() string {
	return "/" + string(r)
}

func (r Role) String() string { return string(r) }

// SessionUser is the authenticated user as reported by the FYP backend.
type SessionUser struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       Role   `json:"role"`
	Department string `json:"department,omitempty"`
	Token      string `json:"-"`
}

func (u SessionUser) IsAuthenticated() bool {
	return u.ID != "" && u.Token != "" && u.Role.Valid()
}

// Credentials are submitted by the login form.
type Credentials struct {
	Email    string `form:"email" json:"email" validate:"required,email"`
	Password string `form:"password" json:"password" validate:"required"`
}

func (c *Credentials) Validate(validate *validator.Validate, translator ut.Translator) error {
	c.Email = core.CleanString(c.Email, true /* lower */)
	return core.ValidateStruct(validate, translator, c)
}
