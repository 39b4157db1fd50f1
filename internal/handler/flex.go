package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// FlexString accepts a JSON string, number or null. The search form sends
// surah and verse selections either way. Numbers are truncated toward zero,
// and a numeric zero reads as unset like null does.
type FlexString string

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*f = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", data)
	}
	v, err := n.Float64()
	if err != nil {
		return fmt.Errorf("number out of range: %s", data)
	}
	if v == 0 {
		*f = ""
		return nil
	}
	t := math.Trunc(v)
	if t == 0 {
		// -0.5 truncates to negative zero
		t = 0
	}
	*f = FlexString(strconv.FormatFloat(t, 'f', -1, 64))
	return nil
}
