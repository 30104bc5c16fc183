package dto

import (
	"bytes"
	"math"
	"strconv"
)

// Amount is a money total on the wire. NaN and infinite values encode as null, and null decodes
// back to NaN, so a payload carrying unvalidated amounts still round-trips through the cache.
type Amount float64

// Float64 returns the raw value.
func (a Amount) Float64() float64 {
	return float64(a)
}

// Finite reports whether the amount is a real number.
func (a Amount) Finite() bool {
	f := float64(a)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// MarshalJSON implements json.Marshaler.
func (a Amount) MarshalJSON() ([]byte, error) {
	if !a.Finite() {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, float64(a), 'f', -1, 64), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *Amount) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*a = Amount(math.NaN())
		return nil
	}
	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return err
	}
	*a = Amount(f)
	return nil
}
