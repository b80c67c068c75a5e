// Package hash provides the content-addressing primitive used to
// de-duplicate GroupType catalog entries.
package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of a string key.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// Fingerprint computes the xxHash64 of an arbitrary byte fingerprint,
// typically the canonical encoding of a GroupType's fields, so that two
// structurally identical group templates hash identically regardless of
// which residue position produced them.
func Fingerprint(data []byte) uint64 {
	return xxhash.Sum64(data)
}
