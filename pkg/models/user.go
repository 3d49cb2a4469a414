package models

// Department is an organizational unit users belong to.
type Department struct {
	ID   int64  `json:"id,omitempty" yaml:"id,omitempty"`
	Name string `json:"name" yaml:"name"`
}

// PermissionGroup groups related permissions for display.
type PermissionGroup struct {
	ID   int64  `json:"id,omitempty" yaml:"id,omitempty"`
	Name string `json:"name" yaml:"name"`
}

// Permission is a named capability granted through roles.
type Permission struct {
	ID    int64           `json:"id,omitempty" yaml:"id,omitempty"`
	Name  string          `json:"name" yaml:"name"`
	Group PermissionGroup `json:"group" yaml:"group"`
}

// PermissionResponse is the compact permission shape returned by the
// grouped permission endpoints.
type PermissionResponse struct {
	ID   int64  `json:"id,omitempty" yaml:"id,omitempty"`
	Name string `json:"name" yaml:"name"`
}

// PermissionsByGroup maps a group name to the permissions it contains.
type PermissionsByGroup map[string][]PermissionResponse

// Role is a named set of permissions.
type Role struct {
	ID          int64        `json:"id,omitempty" yaml:"id,omitempty"`
	Name        string       `json:"name" yaml:"name"`
	Permissions []Permission `json:"permissions" yaml:"permissions"`
}

// User is a console operator account.
type User struct {
	ID                  int64      `json:"id,omitempty" yaml:"id,omitempty"`
	Name                string     `json:"name" yaml:"name"`
	Username            string     `json:"username" yaml:"username"`
	Password            string     `json:"password,omitempty" yaml:"-"`
	PasswordLastChanged *Timestamp `json:"passwordLastChanged,omitempty" yaml:"passwordLastChanged,omitempty"`
	IDCardNo            string     `json:"idCardNo" yaml:"idCardNo"`
	Enabled             bool       `json:"enabled" yaml:"enabled"`
	Department          Department `json:"department" yaml:"department"`
	Roles               []Role     `json:"roles" yaml:"roles"`
}

// HasPermission reports whether any of the user's roles grants name.
func (u *User) HasPermission(name string) bool {
	for _, r := range u.Roles {
		for _, p := range r.Permissions {
			if p.Name == name {
				return true
			}
		}
	}
	return false
}

// LoginRequest is the body of the login call.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UpdatePasswordRequest changes the current user's password.
type UpdatePasswordRequest struct {
	NewPassword string `json:"newPassword"`
	OldPassword string `json:"oldPassword"`
}

// PasswordPolicy controls password rotation and session lifetime.
type PasswordPolicy struct {
	ID                int64 `json:"id,omitempty" yaml:"id,omitempty"`
	NumberOfDays      int   `json:"numberOfDays" yaml:"numberOfDays"`
	SessionExpireTime int   `json:"sessionExpireTime,omitempty" yaml:"sessionExpireTime,omitempty"`
}

// ActivityLog is one audited user action.
type ActivityLog struct {
	Username  string    `json:"username" yaml:"username"`
	Action    string    `json:"action" yaml:"action"`
	Timestamp Timestamp `json:"timestamp" yaml:"timestamp"`
}

// Notification is a message addressed to one user.
type Notification struct {
	ID                int64     `json:"id,omitempty" yaml:"id,omitempty"`
	Title             string    `json:"title" yaml:"title"`
	Message           string    `json:"message" yaml:"message"`
	RecipientUsername string    `json:"recipientUsername" yaml:"recipientUsername"`
	CreatedAt         Timestamp `json:"createdAt" yaml:"createdAt"`
	Read              bool      `json:"read" yaml:"read"`
}
