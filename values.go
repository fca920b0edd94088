// Copyright 2015 Shannon Wynter. All rights reserved.
// Use of this source code is governed by a MIT
// license that can be found in the LICENSE file.

package fbsdk

import (
	"encoding/json"

	"github.com/spf13/cast"
)

// TryGet looks up key in a loosely-typed result mapping and reports
// whether a value of type T could be produced. A direct type match is
// preferred; failing that scalar values are coerced, since the graph
// API is fond of sending numbers as strings and strings as numbers.
func TryGet[T any](dict map[string]any, key string) (T, bool) {
	var zero T
	raw, ok := dict[key]
	if !ok || raw == nil {
		return zero, false
	}
	if v, ok := raw.(T); ok {
		return v, true
	}

	var (
		out any
		err error
	)
	switch any(zero).(type) {
	case string:
		out, err = cast.ToStringE(raw)
	case bool:
		out, err = cast.ToBoolE(raw)
	case int:
		out, err = cast.ToIntE(raw)
	case int64:
		out, err = cast.ToInt64E(raw)
	case float64:
		out, err = cast.ToFloat64E(raw)
	default:
		return zero, false
	}
	if err != nil {
		return zero, false
	}
	return out.(T), true
}

// GetOrDefault returns the value for key, or T's zero value with a
// single logged warning when the key is absent or the wrong type.
func GetOrDefault[T any](dict map[string]any, key string) T {
	v, ok := TryGet[T](dict, key)
	if !ok {
		warnMissing(key)
	}
	return v
}

// GetOrDefaultQuiet is GetOrDefault without the warning, for fields
// the API is allowed to omit.
func GetOrDefaultQuiet[T any](dict map[string]any, key string) T {
	v, _ := TryGet[T](dict, key)
	return v
}

// ToJSON encodes a result mapping back into a JSON string. An
// unencodable mapping yields "" rather than an error.
func ToJSON(dict map[string]any) string {
	b, err := json.Marshal(dict)
	if err != nil {
		return ""
	}
	return string(b)
}
