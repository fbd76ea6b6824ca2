package model

import (
	"bytes"
	"encoding/json"
	"time"

	"linkgate/internal/validate"
)

// OptionalTime is a JSON timestamp field that remembers whether it was sent.
// An omitted field leaves Set false; null or "" sets it with a nil Value.
type OptionalTime struct {
	Set     bool
	Value   *time.Time
	Invalid bool
}

// UnmarshalJSON implements json.Unmarshaler. Unparseable input is flagged
// through Invalid rather than failing the whole body.
func (o *OptionalTime) UnmarshalJSON(data []byte) error {
	o.Set = true
	o.Value = nil
	o.Invalid = false

	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		o.Invalid = true
		return nil
	}

	t, ok := validate.ParseOptionalDate(s)
	if !ok {
		o.Invalid = true
		return nil
	}
	o.Value = t
	return nil
}

// MarshalJSON implements json.Marshaler
func (o OptionalTime) MarshalJSON() ([]byte, error) {
	if o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}
