package user

const avatarQuery = "?w=100&h=100&fit=crop&crop=face"

// DefaultProfileImage returns the avatar given to new identities of role r.
func DefaultProfileImage(r Role) string {
	switch r {
	case RoleStudent:
		return "https://images.pexels.com/photos/1239291/pexels-photo-1239291.jpeg" + avatarQuery
	case RoleTeacher:
		return "https://images.pexels.com/photos/1181690/pexels-photo-1181690.jpeg" + avatarQuery
	case RoleAdministrator:
		return "https://images.pexels.com/photos/1043471/pexels-photo-1043471.jpeg" + avatarQuery
	case RoleAlumni:
		return "https://images.pexels.com/photos/1222271/pexels-photo-1222271.jpeg" + avatarQuery
	default:
		return ""
	}
}

// DemoIdentity returns the preset identity used to preview role r.
func DemoIdentity(r Role) (Identity, bool) {
	id := Identity{Role: r, ProfileImage: DefaultProfileImage(r)}
	switch r {
	case RoleStudent:
		id.ID = "demo-student"
		id.Email = "student@demo.com"
		id.Name = "Alex Student"
		id.Department = "Computer Science"
	case RoleTeacher:
		id.ID = "demo-teacher"
		id.Email = "teacher@demo.com"
		id.Name = "Dr. Sarah Johnson"
		id.Department = "Mathematics"
	case RoleAdministrator:
		id.ID = "demo-admin"
		id.Email = "admin@demo.com"
		id.Name = "Michael Admin"
	case RoleAlumni:
		year := 2020
		id.ID = "demo-alumni"
		id.Email = "alumni@demo.com"
		id.Name = "Jessica Alumni"
		id.Department = "Business Administration"
		id.GraduationYear = &year
	default:
		return Identity{}, false
	}
	return id, true
}
