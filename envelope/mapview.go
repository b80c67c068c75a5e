// Package envelope implements the map-level layer between raw MessagePack
// bytes and a typed Structure: a MapView wraps the unpacked string-keyed
// map, applies the field dispatcher's required/type-family policy per key,
// and routes binary-typed values through the column codecs.
package envelope

import (
	"bytes"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/arloliu/mmtf/codec"
	"github.com/arloliu/mmtf/errs"
	"github.com/arloliu/mmtf/internal/diag"
)

// MapView wraps a decoded (or to-be-encoded) MessagePack map, tracking
// which keys have been consumed so CheckExtraKeys can warn about the rest.
type MapView struct {
	raw    map[string]any
	seen   map[string]struct{}
	logger *diag.Logger
}

// NewMapView creates an empty MapView for building up an encode-side map.
func NewMapView(logger *diag.Logger) *MapView {
	if logger == nil {
		logger = diag.Noop()
	}

	return &MapView{raw: make(map[string]any), seen: make(map[string]struct{}), logger: logger}
}

// Parse unpacks MessagePack bytes into a MapView. A non-string key at the
// top level is warned about via logger.NonStringKey and its value skipped,
// rather than failing the decode outright.
func Parse(data []byte, logger *diag.Logger) (*MapView, error) {
	if logger == nil {
		logger = diag.Noop()
	}

	raw, err := decodeLenientMap(msgpack.NewDecoder(bytes.NewReader(data)), logger)
	if err != nil {
		return nil, fmt.Errorf("mmtf: unmarshal envelope: %w", err)
	}

	return &MapView{raw: raw, seen: make(map[string]struct{}), logger: logger}, nil
}

// decodeLenientMap decodes a MessagePack map from dec, skipping any key that
// does not decode to a string after warning on logger. Values still decode
// through the library's own defaults (nested maps become map[string]any,
// nested arrays become []any), matching msgpack.Unmarshal's behavior for
// every key that does pass the string check.
func decodeLenientMap(dec *msgpack.Decoder, logger *diag.Logger) (map[string]any, error) {
	n, err := dec.DecodeMapLen()
	if err != nil {
		return nil, err
	}

	if n == -1 {
		return nil, nil
	}

	out := make(map[string]any, n)
	for range n {
		keyVal, err := dec.DecodeInterface()
		if err != nil {
			return nil, err
		}

		key, ok := keyVal.(string)
		if !ok {
			logger.NonStringKey()

			if err := dec.Skip(); err != nil {
				return nil, err
			}

			continue
		}

		val, err := dec.DecodeInterface()
		if err != nil {
			return nil, err
		}

		out[key] = val
	}

	return out, nil
}

// Bytes packs the view's map back into MessagePack bytes.
func (v *MapView) Bytes() ([]byte, error) {
	return msgpack.Marshal(v.raw)
}

// Logger returns the diagnostic sink this view was constructed with, for
// callers that decode nested maps of their own (groupList, entityList,
// bioAssemblyList entries) and need to report their own unknown keys.
func (v *MapView) Logger() *diag.Logger {
	return v.logger
}

func (v *MapView) lookup(key string) (any, bool) {
	v.seen[key] = struct{}{}
	val, ok := v.raw[key]

	return val, ok
}

// CheckExtraKeys returns every key present in the map that no decode call
// consumed, mirroring the non-fatal "unknown key" warning of the original
// map decoder.
func (v *MapView) CheckExtraKeys() []string {
	var extra []string

	for k := range v.raw {
		if _, ok := v.seen[k]; !ok {
			extra = append(extra, k)
			v.logger.UnknownKey(k)
		}
	}

	return extra
}

// Set stores a value under key for later encoding. A nil value omits the
// key entirely, implementing the "default omission" rule.
func (v *MapView) Set(key string, value any) {
	if value == nil {
		return
	}

	v.raw[key] = value
}

// SetBinary stores a pre-encoded column codec blob as a MessagePack binary
// value.
func (v *MapView) SetBinary(key string, blob []byte) {
	if len(blob) == 0 {
		return
	}

	v.raw[key] = blob
}

// asBytes extracts a binary payload from a decoded value. Only []byte is
// accepted; any other type, msgpack.RawMessage included, reports false.
func asBytes(val any) ([]byte, bool) {
	switch b := val.(type) {
	case []byte:
		return b, true
	default:
		return nil, false
	}
}

// String decodes a required-or-optional plain string field.
func (v *MapView) String(key string, required bool) (string, bool, error) {
	val, ok := v.lookup(key)
	if !ok {
		if required {
			return "", false, &errs.MissingField{Key: key}
		}

		return "", false, nil
	}

	s, ok := val.(string)
	if !ok {
		return "", false, &errs.TypeMismatch{Key: key, Wanted: "string", Got: typeName(val)}
	}

	return s, true, nil
}

// Int decodes a required-or-optional plain integer field.
func (v *MapView) Int(key string, required bool) (int, bool, error) {
	val, ok := v.lookup(key)
	if !ok {
		if required {
			return 0, false, &errs.MissingField{Key: key}
		}

		return 0, false, nil
	}

	n, ok := toInt(val)
	if !ok {
		return 0, false, &errs.TypeMismatch{Key: key, Wanted: "int", Got: typeName(val)}
	}

	if _, exact := val.(int64); !exact {
		v.logger.TypeCoerced(key, "int", typeName(val))
	}

	return n, true, nil
}

// Float64 decodes a required-or-optional plain float field.
func (v *MapView) Float64(key string, required bool) (float64, bool, error) {
	val, ok := v.lookup(key)
	if !ok {
		if required {
			return 0, false, &errs.MissingField{Key: key}
		}

		return 0, false, nil
	}

	f, ok := toFloat(val)
	if !ok {
		return 0, false, &errs.TypeMismatch{Key: key, Wanted: "float", Got: typeName(val)}
	}

	if _, exact := val.(float64); !exact {
		v.logger.TypeCoerced(key, "float", typeName(val))
	}

	return f, true, nil
}

// FloatSlice decodes a plain (non-codec) MessagePack array of floats, used
// for unitCell and flattened matrix rows.
func (v *MapView) FloatSlice(key string, required bool) ([]float64, bool, error) {
	val, ok := v.lookup(key)
	if !ok {
		if required {
			return nil, false, &errs.MissingField{Key: key}
		}

		return nil, false, nil
	}

	arr, ok := val.([]any)
	if !ok {
		return nil, false, &errs.TypeMismatch{Key: key, Wanted: "array", Got: typeName(val)}
	}

	out := make([]float64, len(arr))
	for i, e := range arr {
		f, ok := toFloat(e)
		if !ok {
			return nil, false, &errs.TypeMismatch{Key: key, Wanted: "float", Got: typeName(e)}
		}

		out[i] = f
	}

	return out, true, nil
}

// FloatMatrices decodes a MessagePack array of 16-float row-major matrices.
func (v *MapView) FloatMatrices(key string, required bool) ([][16]float64, bool, error) {
	val, ok := v.lookup(key)
	if !ok {
		if required {
			return nil, false, &errs.MissingField{Key: key}
		}

		return nil, false, nil
	}

	arr, ok := val.([]any)
	if !ok {
		return nil, false, &errs.TypeMismatch{Key: key, Wanted: "array", Got: typeName(val)}
	}

	out := make([][16]float64, len(arr))
	for i, row := range arr {
		rowArr, ok := row.([]any)
		if !ok || len(rowArr) != 16 {
			return nil, false, &errs.LengthMismatch{Key: key, Expected: 16, Got: len(rowArr)}
		}

		for j, e := range rowArr {
			f, ok := toFloat(e)
			if !ok {
				return nil, false, &errs.TypeMismatch{Key: key, Wanted: "float", Got: typeName(e)}
			}

			out[i][j] = f
		}
	}

	return out, true, nil
}

// IntSlice decodes a plain (non-codec) MessagePack array of ints, used for
// groupsPerChain and chainsPerModel.
func (v *MapView) IntSlice(key string, required bool) ([]int, bool, error) {
	val, ok := v.lookup(key)
	if !ok {
		if required {
			return nil, false, &errs.MissingField{Key: key}
		}

		return nil, false, nil
	}

	arr, ok := val.([]any)
	if !ok {
		return nil, false, &errs.TypeMismatch{Key: key, Wanted: "array", Got: typeName(val)}
	}

	out := make([]int, len(arr))
	for i, e := range arr {
		n, ok := toInt(e)
		if !ok {
			return nil, false, &errs.TypeMismatch{Key: key, Wanted: "int", Got: typeName(e)}
		}

		out[i] = n
	}

	return out, true, nil
}

// StringSlice decodes a plain MessagePack array of strings, used for
// experimentalMethods.
func (v *MapView) StringSlice(key string, required bool) ([]string, bool, error) {
	val, ok := v.lookup(key)
	if !ok {
		if required {
			return nil, false, &errs.MissingField{Key: key}
		}

		return nil, false, nil
	}

	arr, ok := val.([]any)
	if !ok {
		return nil, false, &errs.TypeMismatch{Key: key, Wanted: "array", Got: typeName(val)}
	}

	out := make([]string, len(arr))
	for i, e := range arr {
		s, ok := e.(string)
		if !ok {
			return nil, false, &errs.TypeMismatch{Key: key, Wanted: "string", Got: typeName(e)}
		}

		out[i] = s
	}

	return out, true, nil
}

// RawArray returns the raw MessagePack array value for a key, used when the
// structured-values layer needs to decode a list of maps (groupList,
// bioAssemblyList, entityList) itself.
func (v *MapView) RawArray(key string, required bool) ([]any, bool, error) {
	val, ok := v.lookup(key)
	if !ok {
		if required {
			return nil, false, &errs.MissingField{Key: key}
		}

		return nil, false, nil
	}

	arr, ok := val.([]any)
	if !ok {
		return nil, false, &errs.TypeMismatch{Key: key, Wanted: "array", Got: typeName(val)}
	}

	return arr, true, nil
}

// FloatColumn decodes a binary column blob into floats via the codec
// package's family dispatcher.
func (v *MapView) FloatColumn(key string, required bool) ([]float32, bool, error) {
	val, ok := v.lookup(key)
	if !ok {
		if required {
			return nil, false, &errs.MissingField{Key: key}
		}

		return nil, false, nil
	}

	blob, ok := asBytes(val)
	if !ok {
		return nil, false, &errs.TypeMismatch{Key: key, Wanted: "binary", Got: typeName(val)}
	}

	out, err := codec.DecodeFloatColumn(blob, key)

	return out, err == nil, err
}

// Int32Column decodes a binary column blob into int32s.
func (v *MapView) Int32Column(key string, required bool) ([]int32, bool, error) {
	val, ok := v.lookup(key)
	if !ok {
		if required {
			return nil, false, &errs.MissingField{Key: key}
		}

		return nil, false, nil
	}

	blob, ok := asBytes(val)
	if !ok {
		return nil, false, &errs.TypeMismatch{Key: key, Wanted: "binary", Got: typeName(val)}
	}

	out, err := codec.DecodeInt32Column(blob, key)

	return out, err == nil, err
}

// Int8Column decodes a binary column blob into int8s.
func (v *MapView) Int8Column(key string, required bool) ([]int8, bool, error) {
	val, ok := v.lookup(key)
	if !ok {
		if required {
			return nil, false, &errs.MissingField{Key: key}
		}

		return nil, false, nil
	}

	blob, ok := asBytes(val)
	if !ok {
		return nil, false, &errs.TypeMismatch{Key: key, Wanted: "binary", Got: typeName(val)}
	}

	out, err := codec.DecodeInt8Column(blob, key)

	return out, err == nil, err
}

// FixedWidthStringColumn decodes a binary codec-5 column, used for
// chainIdList and chainNameList.
func (v *MapView) FixedWidthStringColumn(key string, required bool) ([]string, bool, error) {
	val, ok := v.lookup(key)
	if !ok {
		if required {
			return nil, false, &errs.MissingField{Key: key}
		}

		return nil, false, nil
	}

	blob, ok := asBytes(val)
	if !ok {
		return nil, false, &errs.TypeMismatch{Key: key, Wanted: "binary", Got: typeName(val)}
	}

	out, err := codec.DecodeFixedWidthStringColumn(blob, key)

	return out, err == nil, err
}

// CharColumn decodes a binary codec-6 column, used for altLocList and
// insCodeList.
func (v *MapView) CharColumn(key string, required bool) ([]string, bool, error) {
	val, ok := v.lookup(key)
	if !ok {
		if required {
			return nil, false, &errs.MissingField{Key: key}
		}

		return nil, false, nil
	}

	blob, ok := asBytes(val)
	if !ok {
		return nil, false, &errs.TypeMismatch{Key: key, Wanted: "binary", Got: typeName(val)}
	}

	out, err := codec.DecodeCharColumn(blob, key)

	return out, err == nil, err
}

// Opaque preserves a value verbatim, for the six pass-through property
// bags. It never fails on type: any MessagePack value is legal content.
func (v *MapView) Opaque(key string, required bool) (any, bool, error) {
	val, ok := v.lookup(key)
	if !ok {
		if required {
			return nil, false, &errs.MissingField{Key: key}
		}

		return nil, false, nil
	}

	return val, true, nil
}

func typeName(val any) string {
	if val == nil {
		return "nil"
	}

	return fmt.Sprintf("%T", val)
}

func toInt(val any) (int, bool) {
	switch n := val.(type) {
	case int64:
		return int(n), true
	case uint64:
		return int(n), true
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}

func toFloat(val any) (float64, bool) {
	switch n := val.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
