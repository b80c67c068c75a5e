// Package mmtf implements the Macromolecular Transmission Format: a
// compact, MessagePack-encoded, column-oriented binary representation of
// biomolecular structures.
//
// The package composes four layers, each independently usable:
//
//   - codec: the 16 MMTF column codecs (delta, run-length, recursive
//     index, quantization) operating on raw byte slices.
//   - envelope: a MessagePack field dispatcher (MapView) that routes a
//     structure's top-level map keys through the right codec.
//   - structure: the Structure data model and its Decode/Encode entry
//     points built on envelope.
//   - validate: the cross-field consistency check shared by Encode (as a
//     hard gate) and Decode (available to callers as an advisory pass).
//
// transport sits below all four, auto-detecting and stripping the
// gzip/zstd/s2/lz4 framing real-world ".mmtf.gz"-style files carry
// before the MessagePack bytes ever reach envelope.Parse.
package mmtf

import (
	"os"

	"github.com/arloliu/mmtf/internal/diag"
	"github.com/arloliu/mmtf/structure"
	"github.com/arloliu/mmtf/transport"
	"github.com/arloliu/mmtf/validate"
)

// Structure re-exports structure.Structure so callers need only import
// this package for the common path.
type Structure = structure.Structure

// EncodeOption re-exports structure.EncodeOption.
type EncodeOption = structure.EncodeOption

var (
	WithCoordDivisor            = structure.WithCoordDivisor
	WithOccupancyBFactorDivisor = structure.WithOccupancyBFactorDivisor
	WithChainNameMaxLength      = structure.WithChainNameMaxLength
	WithLogger                  = structure.WithLogger
)

// DecodeBuffer auto-detects transport compression, unpacks the
// MessagePack envelope, and materializes a Structure. It does not run
// Check; malformed-but-parseable structures decode successfully, since a
// reader may want to inspect data that fails to validate.
func DecodeBuffer(data []byte, logger *diag.Logger) (*Structure, error) {
	raw, err := transport.DecodeAuto(data)
	if err != nil {
		return nil, err
	}

	return structure.Decode(raw, logger)
}

// DecodeFile reads path, auto-detecting gzip/zstd/s2/lz4 framing, and
// decodes the result.
func DecodeFile(path string, logger *diag.Logger) (*Structure, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return DecodeBuffer(data, logger)
}

// Validate runs every cross-field consistency check against s, returning
// the first violation found.
func Validate(s *Structure) error {
	return validate.Check(s)
}

// EncodeBuffer validates s and packs it into MessagePack-encoded MMTF
// bytes. Encode is a hard gate: an inconsistent Structure is rejected
// before any bytes are produced.
func EncodeBuffer(s *Structure, opts ...EncodeOption) ([]byte, error) {
	width := structure.ChainNameMaxLength(opts...)
	if err := validate.Check(s, validate.WithChainNameMaxLength(width)); err != nil {
		return nil, err
	}

	return structure.Encode(s, opts...)
}

// EncodeFile validates s, encodes it, optionally compresses it under f,
// and writes the result to path.
func EncodeFile(path string, s *Structure, f transport.Format, opts ...EncodeOption) error {
	data, err := EncodeBuffer(s, opts...)
	if err != nil {
		return err
	}

	return transport.WriteFile(path, data, f)
}
