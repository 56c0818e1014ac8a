// Package vecs implements an archetype-based Entity-Component-System
// storage and query engine.
//
// Features:
// - Archetype (column-store) storage keyed by the exact set of component
//   types an entity carries.
// - Generation-checked Handles that stay valid across storage reorganization.
// - A Registry façade for create/get/put/erase and conjunctive queries.
// - Registry- and Archetype-level locking that makes concurrent
//   Create/Get/Put/Erase/Has/Exists/Clear calls from multiple goroutines
//   safe without the caller managing synchronization. A View's Each is the
//   one exception — see view.go — and requires either single-writer use or
//   a CommandBuffer to defer mutations discovered mid-walk.
package vecs
