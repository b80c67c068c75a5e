package transport

// Magic byte prefixes for each auto-detected compression container.
var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
	s2Magic   = []byte{0xff, 0x06, 0x00, 0x00, 'S', '2', 's', 'T', 'w', 'O'}
	lz4Magic  = []byte{0x04, 0x22, 0x4d, 0x18}
)

// Detect inspects data's leading bytes and reports which compression
// format, if any, it was framed under. A raw MessagePack map (no
// transport framing) reports FormatNone.
func Detect(data []byte) Format {
	switch {
	case hasPrefix(data, gzipMagic):
		return FormatGzip
	case hasPrefix(data, zstdMagic):
		return FormatZstd
	case hasPrefix(data, s2Magic):
		return FormatS2
	case hasPrefix(data, lz4Magic):
		return FormatLZ4
	default:
		return FormatNone
	}
}

func hasPrefix(data, magic []byte) bool {
	if len(data) < len(magic) {
		return false
	}

	for i, b := range magic {
		if data[i] != b {
			return false
		}
	}

	return true
}

// DecodeAuto detects data's compression framing and returns the
// decompressed bytes. Data with no recognized magic prefix is returned
// unchanged, on the assumption it is already a raw MessagePack stream.
func DecodeAuto(data []byte) ([]byte, error) {
	f := Detect(data)

	codec, err := GetCodec(f)
	if err != nil {
		return nil, err
	}

	return codec.Decompress(data)
}
