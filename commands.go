package vecs

// CommandBuffer queues entity/component mutations so they can be applied
// after a View walk finishes rather than during it, since Each itself
// refuses to run if an archetype it's visiting changes shape mid-walk
// (ErrIterationInvalidated).
//
// Deferred commands have no payload type to key on, only an order to
// preserve, so storage is a plain slice of closures over a *Registry
// rather than a type-keyed table.
//
// This operation is allocation-light on the steady-state path: Defer
// appends a closure to a pre-grown slice, and Flush runs them in queued
// order and clears the buffer for reuse.
type CommandBuffer struct {
	cmds []func(*Registry) error
}

// NewCommandBuffer returns an empty CommandBuffer.
func NewCommandBuffer() *CommandBuffer {
	return &CommandBuffer{cmds: make([]func(*Registry) error, 0, 16)}
}

// Defer queues an arbitrary mutation to run on the next Flush, in the
// order it was deferred.
func (cb *CommandBuffer) Defer(cmd func(*Registry) error) {
	cb.cmds = append(cb.cmds, cmd)
}

// DeferErase queues the removal of h's entity.
func (cb *CommandBuffer) DeferErase(h Handle) {
	cb.Defer(func(r *Registry) error { return r.Erase(h) })
}

// DeferCreate1 queues the creation of an entity carrying a single T1
// component, discarding the resulting Handle — use Defer directly if the
// caller needs to observe it.
func DeferCreate1[T1 any](cb *CommandBuffer, v1 T1) {
	cb.Defer(func(r *Registry) error {
		_, err := Create1[T1](r, v1)
		return err
	})
}

// DeferPut1 queues setting h's T1 component to v1.
func DeferPut1[T1 any](cb *CommandBuffer, h Handle, v1 T1) {
	cb.Defer(func(r *Registry) error { return Put1[T1](r, h, v1) })
}

// DeferErase1 queues removing h's T1 component.
func DeferErase1[T1 any](cb *CommandBuffer, h Handle) {
	cb.Defer(func(r *Registry) error { return Erase1[T1](r, h) })
}

// Flush runs every queued command against r in order, then empties the
// buffer. It stops at the first error and returns it, leaving the failed
// command and every command after it queued; a later Flush starts again
// from the failed command. CommandBuffer has no way to drop a single
// queued command.
func (cb *CommandBuffer) Flush(r *Registry) error {
	i := 0
	for ; i < len(cb.cmds); i++ {
		if err := cb.cmds[i](r); err != nil {
			cb.cmds = cb.cmds[i:]
			return err
		}
	}
	cb.cmds = cb.cmds[:0]
	return nil
}

// Len returns the number of commands currently queued.
func (cb *CommandBuffer) Len() int {
	return len(cb.cmds)
}
