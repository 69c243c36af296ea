package domain

import "encoding/json"

// Opt is a field of a partial update. The zero Opt is absent.
//
// When decoded from JSON a key that is present marks the field as set, even
// if its value is null. That is how a client clears an optional value such
// as a course price.
type Opt[T any] struct {
	set   bool
	value T
}

// Set returns a present Opt holding v.
func Set[T any](v T) Opt[T] {
	return Opt[T]{set: true, value: v}
}

// Get returns the value and whether it was set.
func (o Opt[T]) Get() (T, bool) {
	return o.value, o.set
}

func (o Opt[T]) IsSet() bool { return o.set }

func (o *Opt[T]) UnmarshalJSON(data []byte) error {
	o.set = true
	return json.Unmarshal(data, &o.value)
}

func (o Opt[T]) MarshalJSON() ([]byte, error) {
	if !o.set {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

// apply copies the value into dst when set.
func (o Opt[T]) apply(dst *T) {
	if o.set {
		*dst = o.value
	}
}
