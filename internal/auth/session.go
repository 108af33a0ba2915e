// Package auth provides password hashing, bearer-token issuance and
// verification, and the session capability types handed to services.
package auth

import "github.com/google/uuid"

// UserSession identifies an authenticated caller.
type UserSession struct {
	UserID uuid.UUID
	Email  string
	Admin  bool
}

// AdminSession identifies an authenticated caller holding admin privilege.
// Admin-only service methods take an AdminSession so a plain UserSession
// cannot reach them.
type AdminSession struct {
	UserSession
}

// AsAdmin returns an AdminSession when the session holds admin privilege.
func (s UserSession) AsAdmin() (AdminSession, bool) {
	if !s.Admin {
		return AdminSession{}, false
	}
	return AdminSession{UserSession: s}, true
}
