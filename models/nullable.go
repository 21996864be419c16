// ABOUTME: Nullable patch field wrapper
// ABOUTME: Distinguishes absent keys from explicit JSON null in partial updates
package models

import "encoding/json"

// Nullable marks a patch field that callers may set to null (clearing
// the value) or omit entirely (leaving it unchanged). Set is true when
// the key was present in the request body at all.
type Nullable[T any] struct {
	Set   bool
	Value *T
}

func (n *Nullable[T]) UnmarshalJSON(b []byte) error {
	n.Set = true
	if string(b) == "null" {
		n.Value = nil
		return nil
	}
	v := new(T)
	if err := json.Unmarshal(b, v); err != nil {
		return err
	}
	n.Value = v
	return nil
}
