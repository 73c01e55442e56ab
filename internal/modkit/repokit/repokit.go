// Package repokit provides common types and helpers for repository implementations
package repokit

import (
	"shopdash/internal/dataset"
)

// Reader is the minimal read surface repos bind against
// a Snapshot is immutable for the life of a request
type Reader interface {
	Snapshot() *dataset.Snapshot
}

// Binder is a tiny factory that binds a domain repo to a specific Reader
type Binder[T any] interface {
	Bind(Reader) T
}

// BindFunc lets you create a Binder from a function
type BindFunc[T any] func(Reader) T

// Bind calls the underlying function
func (f BindFunc[T]) Bind(r Reader) T { return f(r) }

// RequireReader panics early on programmer error (nil r)
func RequireReader(r Reader) Reader {
	if r == nil {
		panic("repokit: nil Reader")
	}
	return r
}

// MustBind is a convenience that validates r then binds
func MustBind[T any](b Binder[T], r Reader) T {
	return b.Bind(RequireReader(r))
}
