package factory

import (
	"errors"
	"fmt"
	"maps"
	"math"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/justyntemme/vst3shim/pkg/vst3"
)

// Registration errors.
var (
	ErrRegistryFrozen = errors.New("class registry is frozen")
	ErrDuplicateClass = errors.New("duplicate class ID")
	ErrNilClassID     = errors.New("class ID is all zeros")
	ErrEmptyName      = errors.New("class name is empty")
	ErrEmptyCategory  = errors.New("class category is empty")
	ErrTooManyClasses = errors.New("too many classes")
)

// Registry is the ordered list of classes a module offers. The position of a
// class is the index hosts enumerate it by, so classes must only ever be
// appended; never reorder or remove a class that has shipped.
//
// A registry is filled during package initialisation and frozen when a
// Factory takes it. After that it is read without locks.
type Registry struct {
	mu      sync.Mutex
	classes []ClassDescriptor
	index   map[vst3.TUID]int
	frozen  atomic.Pointer[snapshot]
}

type snapshot struct {
	classes []ClassDescriptor
	index   map[vst3.TUID]int
}

// NewRegistry creates an empty class registry
func NewRegistry() *Registry {
	return &Registry{
		index: make(map[vst3.TUID]int),
	}
}

// Add appends classes in order. It stops at the first invalid class; classes
// before it stay registered.
func (r *Registry) Add(classes ...ClassDescriptor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen.Load() != nil {
		return ErrRegistryFrozen
	}

	for _, c := range classes {
		c = c.normalized()
		switch {
		case c.CID.IsNil():
			return fmt.Errorf("%q: %w", c.Name, ErrNilClassID)
		case c.Name == "":
			return fmt.Errorf("%s: %w", c.CID, ErrEmptyName)
		case c.Category == "":
			return fmt.Errorf("%q: %w", c.Name, ErrEmptyCategory)
		case len(r.classes) == math.MaxInt32:
			return ErrTooManyClasses
		}
		if i, exists := r.index[c.CID]; exists {
			return fmt.Errorf("%q and %q share %s: %w", r.classes[i].Name, c.Name, c.CID, ErrDuplicateClass)
		}
		r.index[c.CID] = len(r.classes)
		r.classes = append(r.classes, c)
	}

	return nil
}

// Freeze makes the registry read-only. It is idempotent.
func (r *Registry) Freeze() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen.Load() != nil {
		return
	}
	r.frozen.Store(&snapshot{
		classes: slices.Clone(r.classes),
		index:   maps.Clone(r.index),
	})
}

// Frozen reports whether Freeze has been called.
func (r *Registry) Frozen() bool {
	return r.frozen.Load() != nil
}

func (r *Registry) view() *snapshot {
	if s := r.frozen.Load(); s != nil {
		return s
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return &snapshot{classes: r.classes[:len(r.classes):len(r.classes)], index: maps.Clone(r.index)}
}

// Count returns the number of classes
func (r *Registry) Count() int32 {
	return int32(len(r.view().classes))
}

// GetByIndex returns the class at index.
func (r *Registry) GetByIndex(index int32) (ClassDescriptor, bool) {
	s := r.view()
	if index < 0 || int(index) >= len(s.classes) {
		return ClassDescriptor{}, false
	}
	return s.classes[index], true
}

// Lookup returns the class with the given ID and its index.
func (r *Registry) Lookup(cid vst3.TUID) (ClassDescriptor, int32, bool) {
	s := r.view()
	i, ok := s.index[cid]
	if !ok {
		return ClassDescriptor{}, -1, false
	}
	return s.classes[i], int32(i), true
}

// All returns all classes in order
func (r *Registry) All() []ClassDescriptor {
	return slices.Clone(r.view().classes)
}
