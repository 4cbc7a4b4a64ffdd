package shared

import "time"

// BaseEntity carries the store-assigned identity
type BaseEntity struct {
	ID uint
}

// IsNew reports whether the entity has not been persisted yet
func (e *BaseEntity) IsNew() bool {
	return e.ID == 0
}

// BaseAggregateRoot adds a version number used for optimistic locking
type BaseAggregateRoot struct {
	BaseEntity
	Version int
}

// IncrementVersion increments the version number
func (a *BaseAggregateRoot) IncrementVersion() {
	a.Version++
}

// NewBaseAggregateRoot creates an unsaved aggregate root at version 1
func NewBaseAggregateRoot() BaseAggregateRoot {
	return BaseAggregateRoot{Version: 1}
}

// Clock returns the current time. Services accept one so tests can pin it.
type Clock func() time.Time

// UTCNow is the default clock
func UTCNow() time.Time {
	return time.Now().UTC()
}
