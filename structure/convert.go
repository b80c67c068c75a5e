package structure

import (
	"fmt"

	"github.com/arloliu/mmtf/errs"
	"github.com/arloliu/mmtf/internal/diag"
)

func asMap(val any, key string) (map[string]any, error) {
	m, ok := val.(map[string]any)
	if !ok {
		return nil, &errs.TypeMismatch{Key: key, Wanted: "map", Got: fmt.Sprintf("%T", val)}
	}

	return m, nil
}

func mapString(m map[string]any, key string, required bool) (string, error) {
	val, ok := m[key]
	if !ok {
		if required {
			return "", &errs.MissingField{Key: key}
		}

		return "", nil
	}

	s, ok := val.(string)
	if !ok {
		return "", &errs.TypeMismatch{Key: key, Wanted: "string", Got: fmt.Sprintf("%T", val)}
	}

	return s, nil
}

func mapIntSlice(m map[string]any, key string, required bool) ([]int32, error) {
	val, ok := m[key]
	if !ok {
		if required {
			return nil, &errs.MissingField{Key: key}
		}

		return nil, nil
	}

	arr, ok := val.([]any)
	if !ok {
		return nil, &errs.TypeMismatch{Key: key, Wanted: "array", Got: fmt.Sprintf("%T", val)}
	}

	out := make([]int32, len(arr))
	for i, e := range arr {
		n, ok := toInt64(e)
		if !ok {
			return nil, &errs.TypeMismatch{Key: key, Wanted: "int", Got: fmt.Sprintf("%T", e)}
		}

		out[i] = int32(n)
	}

	return out, nil
}

func mapInt8Slice(m map[string]any, key string, required bool) ([]int8, error) {
	ints, err := mapIntSlice(m, key, required)
	if err != nil || ints == nil {
		return nil, err
	}

	out := make([]int8, len(ints))
	for i, v := range ints {
		out[i] = int8(v)
	}

	return out, nil
}

func mapStringSlice(m map[string]any, key string, required bool) ([]string, error) {
	val, ok := m[key]
	if !ok {
		if required {
			return nil, &errs.MissingField{Key: key}
		}

		return nil, nil
	}

	arr, ok := val.([]any)
	if !ok {
		return nil, &errs.TypeMismatch{Key: key, Wanted: "array", Got: fmt.Sprintf("%T", val)}
	}

	out := make([]string, len(arr))
	for i, e := range arr {
		s, ok := e.(string)
		if !ok {
			return nil, &errs.TypeMismatch{Key: key, Wanted: "string", Got: fmt.Sprintf("%T", e)}
		}

		out[i] = s
	}

	return out, nil
}

// reportUnknownKeys warns on logger for every key in m not named in known,
// mirroring envelope.MapView.CheckExtraKeys for the nested structured-value
// maps (groupList/entityList/bioAssemblyList/transformList entries) that
// bypass MapView entirely.
func reportUnknownKeys(m map[string]any, logger *diag.Logger, known ...string) {
	if logger == nil {
		return
	}

	knownSet := make(map[string]struct{}, len(known))
	for _, k := range known {
		knownSet[k] = struct{}{}
	}

	for k := range m {
		if _, ok := knownSet[k]; !ok {
			logger.UnknownKey(k)
		}
	}
}

func toInt64(val any) (int64, bool) {
	switch n := val.(type) {
	case int64:
		return n, true
	case uint64:
		return int64(n), true
	case int:
		return int64(n), true
	case float64:
		return int64(n), true
	default:
		return 0, false
	}
}

func toFloat64(val any) (float64, bool) {
	switch n := val.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
