package helper

import "encoding/json"

/* ===============================
   Tri-state fields for partial updates
   absent → Present=false
   null   → Present=true, Value.Valid=false
   value  → Present=true, Value.Valid=true
=================================*/

type Optional[T any] struct {
	Present bool
	Value   T
}

func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	o.Present = true
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	o.Value = v
	return nil
}

type Nullable[T any] struct {
	Valid bool
	Value T
}

func (n *Nullable[T]) UnmarshalJSON(b []byte) error {
	var zero T
	if string(b) == "null" {
		n.Valid = false
		n.Value = zero
		return nil
	}
	n.Valid = true
	return json.Unmarshal(b, &n.Value)
}

// Ptr is nil for an explicit null.
func (n Nullable[T]) Ptr() *T {
	if !n.Valid {
		return nil
	}
	v := n.Value
	return &v
}

// SetNullable writes col into up when the field was sent: the value, or NULL.
func SetNullable[T any](up map[string]any, col string, f Optional[Nullable[T]]) {
	if !f.Present {
		return
	}
	if f.Value.Valid {
		up[col] = f.Value.Value
	} else {
		up[col] = nil
	}
}

// SetOptional writes col into up when the field was sent.
func SetOptional[T any](up map[string]any, col string, f Optional[T]) {
	if f.Present {
		up[col] = f.Value
	}
}
