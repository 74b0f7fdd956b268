// Package slots provides the fixed-size slot arena backing a CLOCK cache.
package slots

type (
	// A Slot is one storage cell of the arena. It holds a key-value
	// pair when Occupied, along with the CLOCK reference bit.
	Slot[Key comparable, Value any] struct {
		Key   Key
		Value Value
		// Occupied is true while the slot holds a live entry.
		// Key and Value are only meaningful when it is set.
		Occupied bool
		// Referenced is set on access and cleared when the
		// clock hand passes over the slot without evicting it.
		Referenced bool
	}
	// Store is a fixed-length, index-addressable sequence of slots.
	// Slots are created empty and reused for the store's lifetime.
	// Positions are the caller's responsibility; an out-of-range
	// position is a bug in the caller and panics.
	Store[Key comparable, Value any] []Slot[Key, Value]
)

// New creates a Store of capacity empty slots.
func New[Key comparable, Value any](capacity int) Store[Key, Value] {
	return make(Store[Key, Value], capacity)
}

// Read returns the slot at position for inspection or in-place update.
func (s Store[Key, Value]) Read(position int) *Slot[Key, Value] {
	return &s[position]
}

// Write installs an entry at position, occupying the slot.
// A freshly written entry counts as just-used.
func (s Store[Key, Value]) Write(position int, key Key, value Value) {
	s[position] = Slot[Key, Value]{
		Key:        key,
		Value:      value,
		Occupied:   true,
		Referenced: true,
	}
}

// Clear vacates the slot at position, zeroing its entry.
func (s Store[Key, Value]) Clear(position int) {
	var empty Slot[Key, Value]
	s[position] = empty
}

// MarkReferenced sets the reference bit at position; used on hits.
func (s Store[Key, Value]) MarkReferenced(position int) {
	s[position].Referenced = true
}

// ClearReferenced clears the reference bit at position,
// granting the slot its second chance.
func (s Store[Key, Value]) ClearReferenced(position int) {
	s[position].Referenced = false
}

// IsOccupied reports whether the slot at position holds a live entry.
func (s Store[Key, Value]) IsOccupied(position int) bool {
	return s[position].Occupied
}

// IsReferenced reports whether the slot at position
// was accessed since the hand last passed over it.
func (s Store[Key, Value]) IsReferenced(position int) bool {
	return s[position].Referenced
}

// Len returns the number of slots in the store.
func (s Store[Key, Value]) Len() int { return len(s) }
