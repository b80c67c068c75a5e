package codec

import "github.com/arloliu/mmtf/bytesutil"

// DecodeFixedString decodes a codec 5 blob: count cells of Param bytes each,
// NUL-padded, used for chainIdList and chainNameList.
func DecodeFixedString(blob []byte, field string) ([]string, error) {
	hdr, payload, err := ParseHeader(blob)
	if err != nil {
		return nil, err
	}

	if err := checkFamily(field, hdr.ID, IDFixedString); err != nil {
		return nil, err
	}

	return bytesutil.UnpackFixed(payload, int(hdr.Param), int(hdr.Count), field)
}

// EncodeFixedString encodes sv as a codec 5 blob with cell width.
func EncodeFixedString(sv []string, width int) ([]byte, error) {
	payload, err := bytesutil.PackFixed(sv, width, "fixedString")
	if err != nil {
		return nil, err
	}

	return buildBlob(HeaderSize+len(payload), func(buf []byte) []byte {
		buf = AppendHeader(buf, IDFixedString, uint32(len(sv)), int32(width))
		return append(buf, payload...)
	}), nil
}
