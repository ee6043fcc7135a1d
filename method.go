package sphgeom

import (
	"encoding"
	"encoding/json"
	"fmt"
)

// Method selects the solid-angle algorithm.
//
// SphericalExcess is currently the only defined method. The enum exists as
// an extension point; any other value is rejected at Estimator
// construction rather than silently falling back.
type Method int

const (
	// SphericalExcess sums the four interior angles of the pixel
	// quadrilateral on the unit sphere and subtracts 2π.
	SphericalExcess Method = iota + 1
)

var (
	methodNames  = [...]string{SphericalExcess: "SphericalExcess"}
	methodByName = map[string]Method{
		"SphericalExcess": SphericalExcess,
	}
)

// Compile-time interface checks.
var (
	_ fmt.Stringer             = Method(0)
	_ json.Marshaler           = Method(0)
	_ json.Unmarshaler         = (*Method)(nil)
	_ encoding.TextMarshaler   = Method(0)
	_ encoding.TextUnmarshaler = (*Method)(nil)
)

// String returns the name of the method ("SphericalExcess").
// For invalid values it returns "Method(n)".
func (m Method) String() string {
	if m.IsValid() {
		return methodNames[m]
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// IsValid reports whether m is a defined method.
func (m Method) IsValid() bool {
	return m == SphericalExcess
}

// MarshalText implements encoding.TextMarshaler.
func (m Method) MarshalText() ([]byte, error) {
	if !m.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMethod, int(m))
	}
	return []byte(methodNames[m]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Method) UnmarshalText(text []byte) error {
	v, ok := methodByName[string(text)]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownMethod, text)
	}
	*m = v
	return nil
}

// MarshalJSON implements json.Marshaler. Method serializes as a JSON string.
func (m Method) MarshalJSON() ([]byte, error) {
	text, err := m.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

// UnmarshalJSON implements json.Unmarshaler. Expects a JSON string.
func (m *Method) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrUnknownMethod, data)
	}
	return m.UnmarshalText([]byte(s))
}
