package models

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strconv"
	"strings"
)

// decodeLenient unmarshals a JSON object into v, a pointer to a struct with
// no UnmarshalJSON of its own. Numbers and booleans posted for string fields
// are turned into their text first, so "numberOfChildren": 2 reads as "2".
// Zero and false read as "" and count as unanswered.
func decodeLenient(data []byte, v any) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	names := stringFieldNames(reflect.TypeOf(v).Elem())
	for key, raw := range fields {
		if !hasName(names, key) {
			continue
		}
		if text, ok := scalarText(raw); ok {
			quoted, err := json.Marshal(text)
			if err != nil {
				return err
			}
			fields[key] = quoted
		}
	}

	normalized, err := json.Marshal(fields)
	if err != nil {
		return err
	}
	return json.Unmarshal(normalized, v)
}

// stringFieldNames lists the JSON names of the string fields of struct type t.
func stringFieldNames(t reflect.Type) []string {
	names := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() || f.Type.Kind() != reflect.String {
			continue
		}
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			continue
		}
		if name == "" {
			name = f.Name
		}
		names = append(names, name)
	}
	return names
}

// hasName matches keys the way encoding/json does, ignoring case.
func hasName(names []string, key string) bool {
	for _, n := range names {
		if strings.EqualFold(n, key) {
			return true
		}
	}
	return false
}

// scalarText returns the text of a raw JSON number or boolean. Strings,
// null, arrays and objects are left to the regular decoder.
func scalarText(raw json.RawMessage) (string, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return "", false
	}

	switch s := string(raw); {
	case s == "true":
		return "true", true
	case s == "false":
		return "", true
	case s[0] == '-' || (s[0] >= '0' && s[0] <= '9'):
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return "", false
		}
		if n == 0 {
			return "", true
		}
		return s, true
	}
	return "", false
}
