package dto

import "encoding/json"

// Optional is a tri-state JSON field used by partial update payloads.
// A field left out of the body keeps Set=false ("leave unchanged"); an
// explicit null keeps Set=true, Null=true ("clear it"); anything else
// decodes into Value.
type Optional[T any] struct {
	Set   bool
	Null  bool
	Value T
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true

	if string(data) == "null" {
		o.Null = true

		return nil
	}

	return json.Unmarshal(data, &o.Value)
}

// Present reports whether the field carries a non-null value.
func (o Optional[T]) Present() bool {
	return o.Set && !o.Null
}
