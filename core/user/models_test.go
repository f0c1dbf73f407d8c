package user_test

import (
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prachishaw/ClassCapsule/core"
	"github.com/prachishaw/ClassCapsule/core/user"
	"github.com/prachishaw/ClassCapsule/tests"
)

func TestRole(t *testing.T) {
	tests := []struct {
		role        user.Role
		wantValid   bool
		wantDisplay string
	}{
		{role: user.RoleStudent, wantValid: true, wantDisplay: "Student"},
		{role: user.RoleTeacher, wantValid: true, wantDisplay: "Teacher"},
		{role: user.RoleAdministrator, wantValid: true, wantDisplay: "Administrator"},
		{role: user.RoleAlumni, wantValid: true, wantDisplay: "Alumni"},
		{role: "janitor", wantDisplay: "janitor"},
		{role: "", wantDisplay: ""},
	}
	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			assert.Equal(t, tt.wantValid, tt.role.Valid())
			assert.Equal(t, tt.wantDisplay, tt.role.DisplayName())
		})
	}

	r, ok := user.ParseRole(" Administrator ")
	assert.True(t, ok)
	assert.Equal(t, user.RoleAdministrator, r)
	_, ok = user.ParseRole("admin")
	assert.False(t, ok)
}

func TestDemoIdentity(t *testing.T) {
	for _, r := range user.AllRoles {
		t.Run(string(r), func(t *testing.T) {
			id, ok := user.DemoIdentity(r)
			require.True(t, ok)
			assert.Equal(t, r, id.Role)
			assert.True(t, strings.HasPrefix(id.ID, "demo-"))
			assert.Equal(t, user.DefaultProfileImage(r), id.ProfileImage)
			assert.Contains(t, id.Email, "@demo.com")
		})
	}

	alumni, _ := user.DemoIdentity(user.RoleAlumni)
	require.NotNil(t, alumni.GraduationYear)
	assert.Equal(t, 2020, *alumni.GraduationYear)
	admin, _ := user.DemoIdentity(user.RoleAdministrator)
	assert.Equal(t, "admin@demo.com", admin.Email)
	assert.Empty(t, admin.Department)

	_, ok := user.DemoIdentity("janitor")
	assert.False(t, ok)
	assert.Empty(t, user.DefaultProfileImage("janitor"))
}

func TestRegistration_Validate(t *testing.T) {
	validate, translator := testutil.NewValidator()

	reg := user.Registration{Name: "  Alex ", Email: " ALEX@School.edu", Password: "pwd", Role: " Student "}
	require.NoError(t, reg.Validate(validate))
	assert.Equal(t, "Alex", reg.Name)
	assert.Equal(t, "ALEX@School.edu", reg.Email)
	assert.Equal(t, user.RoleStudent, reg.Role)

	year := 1500
	bad := user.Registration{Role: "janitor", GraduationYear: &year}
	err := bad.Validate(validate)
	require.Error(t, err)
	vErrs, ok := err.(validator.ValidationErrors)
	require.True(t, ok)
	fldErrs := core.TranslateErrors(vErrs, translator)
	assert.Contains(t, fldErrs, "graduation_year")
	delete(fldErrs, "graduation_year")
	assert.Equal(t, map[string]string{
		"name":     "this field is required",
		"email":    "this field is required",
		"password": "this field is required",
		"role":     "invalid role",
	}, fldErrs)
}
