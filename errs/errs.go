// Package errs defines the typed error taxonomy returned by the mmtf codec,
// envelope, structure, and validate packages.
//
// Every error type here wraps enough context (field name, expected/actual
// value) for a caller to react programmatically via errors.As, while still
// rendering a readable message through Error(). None of these are sentinel
// values (errors.New) because nearly all of them carry per-occurrence data;
// callers that only care about the error class should use errors.As with the
// concrete type.
package errs

import "fmt"

// Truncated is returned when a codec header or payload ends before the
// declared length is satisfied.
type Truncated struct {
	// Field names the column or section being read, empty if unknown.
	Field string
	// Need is the number of bytes required to proceed.
	Need int
	// Have is the number of bytes actually available.
	Have int
}

func (e *Truncated) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("mmtf: truncated input decoding %q: need %d bytes, have %d", e.Field, e.Need, e.Have)
	}

	return fmt.Sprintf("mmtf: truncated input: need %d bytes, have %d", e.Need, e.Have)
}

// CodecMismatch is returned when a column's wire header declares a codec id
// that disagrees with the codec the field's policy expects.
type CodecMismatch struct {
	Field    string
	Expected uint32
	Found    uint32
}

func (e *CodecMismatch) Error() string {
	return fmt.Sprintf("mmtf: codec mismatch on field %q: expected codec %d, found %d", e.Field, e.Expected, e.Found)
}

// MissingField is returned when a required map key is absent.
type MissingField struct {
	Key string
}

func (e *MissingField) Error() string {
	return fmt.Sprintf("mmtf: missing required field %q", e.Key)
}

// TypeMismatch is returned when a MessagePack value's type disagrees with
// the field dispatcher's declared type family for that key.
type TypeMismatch struct {
	Key    string
	Wanted string
	Got    string
}

func (e *TypeMismatch) Error() string {
	return fmt.Sprintf("mmtf: field %q has wrong msgpack type: wanted %s, got %s", e.Key, e.Wanted, e.Got)
}

// LengthMismatch is returned when a column's length disagrees with the
// count it must agree with (numAtoms, numGroups, numChains, numModels, or a
// sibling column).
type LengthMismatch struct {
	Key      string
	Expected int
	Got      int
}

func (e *LengthMismatch) Error() string {
	return fmt.Sprintf("mmtf: field %q has wrong length: expected %d, got %d", e.Key, e.Expected, e.Got)
}

// IndexOutOfRange is returned when a stored index exceeds the bounds of the
// collection it indexes into (group catalog, chain list, atom list, ...).
type IndexOutOfRange struct {
	Field string
	Value int
	Max   int
}

func (e *IndexOutOfRange) Error() string {
	return fmt.Sprintf("mmtf: field %q index %d out of range [0, %d)", e.Field, e.Value, e.Max)
}

// UnsupportedVersion is returned when a decoded mmtfVersion's major
// component exceeds the implemented major version.
type UnsupportedVersion struct {
	Found        string
	MaxSupported int
}

func (e *UnsupportedVersion) Error() string {
	return fmt.Sprintf("mmtf: unsupported mmtfVersion %q, max supported major is %d", e.Found, e.MaxSupported)
}

// FieldTooLong is returned when a fixed-width string field's value exceeds
// its declared width.
type FieldTooLong struct {
	Field string
	Limit int
}

func (e *FieldTooLong) Error() string {
	return fmt.Sprintf("mmtf: field %q exceeds maximum length %d", e.Field, e.Limit)
}

// InvalidDateFormat is returned when depositionDate or releaseDate does not
// match YYYY-MM-DD.
type InvalidDateFormat struct {
	Key   string
	Value string
}

func (e *InvalidDateFormat) Error() string {
	return fmt.Sprintf("mmtf: field %q has invalid date format %q, want YYYY-MM-DD", e.Key, e.Value)
}

// Inconsistent is the generic validator failure used to gate Encode.
type Inconsistent struct {
	Reason string
}

func (e *Inconsistent) Error() string {
	return fmt.Sprintf("mmtf: inconsistent structure: %s", e.Reason)
}

// InvalidOption is returned when an EncodeOption is given a value outside
// its contracted domain (a non-positive divisor or fixed-width length).
type InvalidOption struct {
	Option string
	Value  int
}

func (e *InvalidOption) Error() string {
	return fmt.Sprintf("mmtf: invalid value %d for option %q: must be positive", e.Value, e.Option)
}
