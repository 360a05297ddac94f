// file: internals/helpers/update_field.go
package helper

import "encoding/json"

/*
Tri-state field for PATCH:
- Absent : not updated
- null   : set column to NULL
- value  : set to value
*/
type UpdateField[T any] struct {
	set   bool
	null  bool
	value T
}

func (f *UpdateField[T]) UnmarshalJSON(b []byte) error {
	f.set = true
	if string(b) == "null" {
		f.null = true
		var zero T
		f.value = zero
		return nil
	}
	return json.Unmarshal(b, &f.value)
}

func (f UpdateField[T]) ShouldUpdate() bool { return f.set }
func (f UpdateField[T]) IsNull() bool       { return f.set && f.null }
func (f UpdateField[T]) Val() T             { return f.value }

// Ptr: nil when absent or null.
func (f UpdateField[T]) Ptr() *T {
	if !f.set || f.null {
		return nil
	}
	v := f.value
	return &v
}

func SetField[T any](v T) UpdateField[T] { return UpdateField[T]{set: true, value: v} }
func NullField[T any]() UpdateField[T]   { return UpdateField[T]{set: true, null: true} }
