package codec

// peekID reads the codec id from a blob's header without consuming it,
// letting a dispatcher route to the right decoder before fully parsing.
func peekID(blob []byte) (uint32, error) {
	hdr, _, err := ParseHeader(blob)
	if err != nil {
		return 0, err
	}

	return hdr.ID, nil
}

// DecodeFloatColumn decodes any of the float-producing codecs (1, 9, 10,
// 11, 12, 13), dispatching on the blob's own header id. It is used for
// columns whose declared element type is floating point: coordinates,
// b-factor, and occupancy.
func DecodeFloatColumn(blob []byte, field string) ([]float32, error) {
	id, err := peekID(blob)
	if err != nil {
		return nil, err
	}

	switch id {
	case IDFloat32Raw:
		return DecodeFloat32Raw(blob, field)
	case IDRunLengthQuantF64:
		return DecodeRunLengthQuantFloat(blob, field)
	case IDDeltaRecursiveI16:
		return DecodeDeltaRecursiveQuantFloat(blob, field)
	case IDQuantInt16Raw:
		return DecodeQuantInt16Raw(blob, field)
	case IDRecursiveI16:
		return DecodeRecursiveQuantFloat(blob, field)
	case IDRunLengthQuantI8:
		return DecodeRunLengthQuantInt8(blob, field)
	default:
		return nil, checkFamily(field, id, IDFloat32Raw, IDRunLengthQuantF64, IDDeltaRecursiveI16,
			IDQuantInt16Raw, IDRecursiveI16, IDRunLengthQuantI8)
	}
}

// DecodeInt32Column decodes any of the int32-producing codecs (4, 7, 8,
// 14), used for groupTypeList, bondAtomList, groupIdList, atomIdList, and
// sequenceIndexList.
func DecodeInt32Column(blob []byte, field string) ([]int32, error) {
	id, err := peekID(blob)
	if err != nil {
		return nil, err
	}

	switch id {
	case IDInt32Raw:
		return DecodeInt32Raw(blob, field)
	case IDRunLengthInt32:
		return DecodeRunLengthInt32(blob, field)
	case IDRunLengthDelta:
		return DecodeRunLengthDeltaInt32(blob, field)
	case IDRecursiveI16Plain:
		return DecodeRecursiveInt32(blob, field)
	default:
		return nil, checkFamily(field, id, IDInt32Raw, IDRunLengthInt32, IDRunLengthDelta, IDRecursiveI16Plain)
	}
}

// DecodeInt8Column decodes any of the int8-producing codecs (2, 15, 16),
// used for bondOrderList, bondResonanceList, and secStructList.
func DecodeInt8Column(blob []byte, field string) ([]int8, error) {
	id, err := peekID(blob)
	if err != nil {
		return nil, err
	}

	switch id {
	case IDInt8Raw:
		return DecodeInt8Raw(blob, field)
	case IDRunLengthInt8:
		return DecodeRunLengthInt8(blob, field)
	case IDInt8Ordinal:
		return DecodeInt8Ordinal(blob, field)
	default:
		return nil, checkFamily(field, id, IDInt8Raw, IDRunLengthInt8, IDInt8Ordinal)
	}
}

// DecodeFixedWidthStringColumn decodes codec 5, used for chainIdList and
// chainNameList.
func DecodeFixedWidthStringColumn(blob []byte, field string) ([]string, error) {
	return DecodeFixedString(blob, field)
}

// DecodeCharColumn decodes codec 6, used for altLocList and insCodeList.
func DecodeCharColumn(blob []byte, field string) ([]string, error) {
	return DecodeRunLengthChar(blob, field)
}
