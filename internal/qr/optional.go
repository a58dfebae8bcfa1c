package qr

import "encoding/json"

// Optional is a tri-state JSON field: absent (Set=false), explicit null
// (Set=true, Value=nil), or a value. Update requests only overwrite columns
// whose fields actually appeared in the request body.
type Optional[T any] struct {
	Set   bool
	Value *T
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}
