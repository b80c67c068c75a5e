package errs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorTypesImplementError(t *testing.T) {
	var errList = []error{
		&Truncated{Field: "xCoordList", Need: 12, Have: 4},
		&CodecMismatch{Field: "xCoordList", Expected: 10, Found: 9},
		&MissingField{Key: "numAtoms"},
		&TypeMismatch{Key: "title", Wanted: "string", Got: "int"},
		&LengthMismatch{Key: "bFactorList", Expected: 10, Got: 3},
		&IndexOutOfRange{Field: "groupTypeList", Value: 7, Max: 3},
		&UnsupportedVersion{Found: "2.0", MaxSupported: 1},
		&FieldTooLong{Field: "chainIdList", Limit: 4},
		&InvalidDateFormat{Key: "depositionDate", Value: "2020/01/01"},
		&Inconsistent{Reason: "atom count mismatch"},
	}

	for _, err := range errList {
		require.NotEmpty(t, err.Error())
	}
}

func TestErrorsAsMatchesConcreteType(t *testing.T) {
	unrelated := errors.New("unrelated")
	var target *MissingField
	require.False(t, errors.As(unrelated, &target))

	var base error = &MissingField{Key: "numBonds"}
	require.True(t, errors.As(base, &target))
	require.Equal(t, "numBonds", target.Key)
}
