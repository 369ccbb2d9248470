package domain

import (
	"bytes"
	"strconv"
)

// NullableFloat distinguishes an absent JSON member (Set == false) from an
// explicit null (Set && Null) and from a number.
type NullableFloat struct {
	Set   bool
	Null  bool
	Value float64
}

// UnmarshalJSON implements json.Unmarshaler. It is only invoked when the
// member is present, which is what marks the value as Set.
func (n *NullableFloat) UnmarshalJSON(b []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		n.Null = true
		n.Value = 0
		return nil
	}
	v, err := strconv.ParseFloat(string(bytes.TrimSpace(b)), 64)
	if err != nil {
		return err
	}
	n.Null = false
	n.Value = v
	return nil
}

// Ptr returns nil for an explicit null and a pointer to the value otherwise.
func (n NullableFloat) Ptr() *float64 {
	if n.Null {
		return nil
	}
	v := n.Value
	return &v
}
