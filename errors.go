package vecs

import "errors"

// Errors returned by Registry and View operations. Every failure kind
// below is reported to the caller rather than swallowed; none are
// retried internally.
var (
	// ErrStaleHandle is returned when a Handle's generation no longer
	// matches the slot it names — the entity it once named has been erased
	// (possibly with the slot already reused by a newer entity).
	ErrStaleHandle = errors.New("vecs: stale handle")

	// ErrMissingComponent is returned by Get1..Get4 and Erase1..Erase4 when
	// an entity's archetype does not carry a requested component type.
	ErrMissingComponent = errors.New("vecs: missing component")

	// ErrDuplicateType is returned when Create or Put is given two values of
	// the same component type in a single call.
	ErrDuplicateType = errors.New("vecs: duplicate component type")

	// ErrIterationInvalidated is returned by a View's Each when an
	// archetype in the view's working set was structurally changed
	// (row inserted, swap-removed, or cleared) since the View was created.
	ErrIterationInvalidated = errors.New("vecs: iteration invalidated by structural change")

	// ErrCapacityExhausted is returned when creating an entity would need a
	// new SlotMap slot but every Handle.Index value is already in use. The
	// Registry is left in its pre-call state.
	ErrCapacityExhausted = errors.New("vecs: capacity exhausted")
)
