package models

import "slices"

// Role is the server-assigned permission level of a user.
type Role string

const (
	RoleSuperAdmin    Role = "super_admin"
	RoleTimelineAdmin Role = "timeline_admin"
	RoleViewer        Role = "viewer"
)

var roles = []Role{RoleSuperAdmin, RoleTimelineAdmin, RoleViewer}

func (r Role) Valid() bool {
	return slices.Contains(roles, r)
}

// IsAdmin reports whether the role may create timelines and edit events.
func (r Role) IsAdmin() bool {
	return r == RoleSuperAdmin || r == RoleTimelineAdmin
}

// User is the signed-in identity. It is persisted verbatim in the session
// store so the JSON field names are part of the on-disk format.
type User struct {
	Email     string   `json:"email"`
	Username  string   `json:"username"`
	Role      Role     `json:"role"`
	Timelines []string `json:"timelines"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role.IsAdmin()
}

func (u *User) IsSuperAdmin() bool {
	return u != nil && u.Role == RoleSuperAdmin
}

// OwnsTimeline reports whether name is the timeline_admin's personal
// timeline, which is named after the user.
func (u *User) OwnsTimeline(name string) bool {
	return u != nil && u.Role == RoleTimelineAdmin && name != "" && name == u.Username
}

// RegisterRequest is the self-registration payload.
type RegisterRequest struct {
	Email           string `json:"email"`
	Username        string `json:"username"`
	Password        string `json:"password"`
	FirstName       string `json:"firstName"`
	Surname         string `json:"surname"`
	RequestTimeline bool   `json:"requestTimeline"`
}

// UserRequest is the super-admin user management payload. Empty fields are
// omitted so updates only touch what was given.
type UserRequest struct {
	Email     string   `json:"email,omitempty"`
	Password  string   `json:"password,omitempty"`
	Role      Role     `json:"role,omitempty"`
	Timelines []string `json:"timelines,omitempty"`
}
