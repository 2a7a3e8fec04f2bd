// Package shared holds the building blocks common to all domain packages:
// the entity identity base and the value objects shared across aggregates.
package shared

import (
	"time"

	"github.com/google/uuid"

	"github.com/lobelia-inc/lobelia/internal/shared/biztime"
)

// Entity carries the identity and lifecycle fields every domain entity
// embeds. Identity is assigned once at creation and never changes;
// equality between entities of the same concrete type is identity-based.
type Entity struct {
	id        uuid.UUID
	createdAt time.Time
	updatedAt time.Time
	isActive  bool
}

// NewEntity creates an entity base with a fresh identity and timestamps.
func NewEntity() Entity {
	now := biztime.NowUTC()
	return Entity{
		id:        uuid.New(),
		createdAt: now,
		updatedAt: now,
		isActive:  true,
	}
}

// ReconstructEntity rebuilds an entity base from persistence.
func ReconstructEntity(id uuid.UUID, createdAt, updatedAt time.Time, isActive bool) Entity {
	return Entity{
		id:        id,
		createdAt: createdAt,
		updatedAt: updatedAt,
		isActive:  isActive,
	}
}

// ID returns the entity identifier.
func (e *Entity) ID() uuid.UUID {
	return e.id
}

// CreatedAt returns when the entity was created.
func (e *Entity) CreatedAt() time.Time {
	return e.createdAt
}

// UpdatedAt returns when the entity was last modified.
func (e *Entity) UpdatedAt() time.Time {
	return e.updatedAt
}

// IsActive reports whether the entity is active.
func (e *Entity) IsActive() bool {
	return e.isActive
}

// Deactivate flips the active flag off.
func (e *Entity) Deactivate() {
	e.isActive = false
	e.Touch()
}

// Touch bumps the updated timestamp. Called by entities after any
// state mutation.
func (e *Entity) Touch() {
	e.updatedAt = biztime.NowUTC()
}

// SameIdentity reports whether two entity bases share an identifier.
// Concrete types expose their own Equals methods on top of this so that
// entities of different types never compare equal.
func (e *Entity) SameIdentity(other *Entity) bool {
	if other == nil {
		return false
	}
	return e.id == other.id
}
