package transport

// ZstdCodec handles the zstd-framed transport format (magic 0x28b52ffd),
// the tightest of the four auto-detected compressors and the one RCSB
// itself uses for its bulk ".mmtf.gz"-sibling zstd mirrors.
//
// Compress/Decompress are implemented in zstd_pure.go (via
// klauspost/compress/zstd), which is compiled with cgo enabled or
// disabled. zstd_cgo.go holds a valyala/gozstd version behind the
// teacher's nobuild tag and is not compiled by any normal build.
type ZstdCodec struct{}

var _ Codec = ZstdCodec{}
