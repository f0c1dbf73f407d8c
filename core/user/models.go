package user

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/prachishaw/ClassCapsule/core"
)

type Role string

// Roles
const (
	RoleStudent       Role = "student"
	RoleTeacher       Role = "teacher"
	RoleAdministrator Role = "administrator"
	RoleAlumni        Role = "alumni"
)

var (
	AllRoles = []Role{RoleStudent, RoleTeacher, RoleAdministrator, RoleAlumni}

	Roles = []RoleOption{
		{Name: "Student", Value: RoleStudent},
		{Name: "Teacher", Value: RoleTeacher},
		{Name: "Administrator", Value: RoleAdministrator},
		{Name: "Alumni", Value: RoleAlumni},
	}
)

type RoleOption struct {
	Name  string `json:"name"`
	Value Role   `json:"value"`
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleTeacher, RoleAdministrator, RoleAlumni:
		return true
	default:
		return false
	}
}

// DisplayName returns the human name of the role; unknown roles are returned as is.
func (r Role) DisplayName() string {
	switch r {
	case RoleStudent:
		return "Student"
	case RoleTeacher:
		return "Teacher"
	case RoleAdministrator:
		return "Administrator"
	case RoleAlumni:
		return "Alumni"
	default:
		return string(r)
	}
}

// ParseRole cleans s and returns the matching role.
func ParseRole(s string) (Role, bool) {
	r := Role(core.CleanString(s, true /* lower */))
	return r, r.Valid()
}

// Identity is the authenticated (or demo-assumed) user.
type Identity struct {
	ID             string `json:"id"`
	Email          string `json:"email"`
	Name           string `json:"name"`
	Role           Role   `json:"role"`
	ProfileImage   string `json:"profile_image,omitempty"`
	Department     string `json:"department,omitempty"`
	GraduationYear *int   `json:"graduation_year,omitempty"`
}

func (id Identity) IsStudent() bool { return id.Role == RoleStudent }

func (id Identity) IsTeacher() bool { return id.Role == RoleTeacher }

func (id Identity) IsAdministrator() bool { return id.Role == RoleAdministrator }

func (id Identity) IsAlumni() bool { return id.Role == RoleAlumni }

// Credentials are the login form fields.
type Credentials struct {
	Email    string `json:"email" validate:"required,notblank"`
	Password string `json:"password" validate:"required"`
}

func (c *Credentials) Validate(validate *validator.Validate) error {
	c.Email = core.CleanString(c.Email) // case kept as typed
	return validate.Struct(c)
}

// Registration contains information needed to register a new Identity.
// Department and graduation year are optional for every role.
type Registration struct {
	Name           string `json:"name" validate:"required,notblank"`
	Email          string `json:"email" validate:"required,notblank"`
	Password       string `json:"password" validate:"required"`
	Role           Role   `json:"role" validate:"required,role"`
	Department     string `json:"department"`
	GraduationYear *int   `json:"graduation_year" validate:"omitempty,min=1900,max=2100"`
}

func (r *Registration) Validate(validate *validator.Validate) error {
	r.Name = core.CleanString(r.Name)
	r.Email = core.CleanString(r.Email)
	r.Role = Role(core.CleanString(string(r.Role), true /* lower */))
	r.Department = core.CleanString(r.Department)
	return validate.Struct(r)
}

// localPart returns the part of email before "@".
func localPart(email string) string {
	return strings.SplitN(email, "@", 2)[0]
}
