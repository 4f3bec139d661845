package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// The public reservation and menu forms submit some numeric fields as
// strings. These types accept a JSON number or a numeric string and
// reject anything else at decode time, so handlers never see an
// ambiguously-typed payload.

// FlexInt is an integer decodable from a JSON number or numeric string.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		s = strings.TrimSpace(raw)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("cannot parse %q as integer", s)
	}
	*f = FlexInt(n)
	return nil
}

// FlexFloat is a float decodable from a JSON number or numeric string.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		s = strings.TrimSpace(raw)
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("cannot parse %q as number", s)
	}
	*f = FlexFloat(n)
	return nil
}

// FlexString is a string decodable from a JSON string or number.
// Menu item quantities arrive as either ("1 plate", 6).
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		*f = FlexString(raw)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("cannot parse %s as string or number", s)
	}
	*f = FlexString(num.String())
	return nil
}
