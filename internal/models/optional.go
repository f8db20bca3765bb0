package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Optional scalar types distinguish "absent from the payload" from
// "present as null" so partial updates can keep untouched columns.
// Numeric values are accepted either as JSON numbers or as numeric
// strings; a value that fails to parse is flagged as malformed instead
// of aborting the whole decode, so validation can name the field.

type OptString struct {
	Set   bool
	Valid bool
	Value string
}

func (o *OptString) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	o.Valid = true
	o.Value = s
	return nil
}

type OptInt struct {
	Set       bool
	Valid     bool
	Malformed bool
	Value     int64
}

func (o *OptInt) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	raw := string(data)
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
		if raw == "" {
			// Empty form input means "no value".
			return nil
		}
	}

	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		o.Malformed = true
		return nil
	}
	o.Valid = true
	o.Value = v
	return nil
}

type OptFloat struct {
	Set       bool
	Valid     bool
	Malformed bool
	Value     float64
}

func (o *OptFloat) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	raw := string(data)
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
		if raw == "" {
			return nil
		}
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		o.Malformed = true
		return nil
	}
	o.Valid = true
	o.Value = v
	return nil
}
