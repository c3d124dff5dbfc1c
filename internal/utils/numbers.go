package utils

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
)

// ParseAmount coerces a decoded JSON value into a float64. The admin UI
// submits form values as strings, so both "50000" and 50000 are valid.
// NaN and infinities are rejected; strconv.ParseFloat accepts them but
// they are meaningless as monetary amounts.
func ParseAmount(value interface{}) (float64, error) {
	var amount float64
	var err error

	switch v := value.(type) {
	case float64:
		amount = v
	case string:
		amount, err = strconv.ParseFloat(v, 64)
	case json.Number:
		amount, err = v.Float64()
	default:
		return 0, errors.New("not a number")
	}

	if err != nil {
		return 0, err
	}

	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, errors.New("amount must be finite")
	}

	return amount, nil
}

// ParseOptionalInt coerces an optional numeric field, returning nil when
// the field was absent or empty.
func ParseOptionalInt(value interface{}) (*int, error) {
	if value == nil {
		return nil, nil
	}

	switch v := value.(type) {
	case float64:
		n := int(v)
		return &n, nil
	case string:
		if v == "" {
			return nil, nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, err
		}
		return &n, nil
	case json.Number:
		n64, err := v.Int64()
		if err != nil {
			return nil, err
		}
		n := int(n64)
		return &n, nil
	}

	return nil, errors.New("not a number")
}
