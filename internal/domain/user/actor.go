package user

import "github.com/google/uuid"

// Actor is the authenticated caller of an operation. The engine trusts it as given.
type Actor struct {
	ID   uuid.UUID
	Role Role
}

func NewActor(id uuid.UUID, role Role) Actor {
	return Actor{ID: id, Role: role}
}

// IsPrivileged reports whether the actor may act on bookings it does not own.
func (a Actor) IsPrivileged() bool {
	return a.Role == RoleStaff
}

func (a Actor) Owns(ownerID uuid.UUID) bool {
	return a.ID != uuid.Nil && a.ID == ownerID
}
