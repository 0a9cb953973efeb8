package filter

import (
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/gruntwork-io/csvfilter/internal/errors"
)

// HashAlgorithm names the string hash used by ColumnModuloFilter.
//
// Every algorithm is fixed and seedless, so a value hashes to the same number in every run
// and on every platform. The zero value is HashFNV1a.
type HashAlgorithm string

const (
	// HashFNV1a is 64-bit FNV-1a over the UTF-8 bytes of the value.
	HashFNV1a HashAlgorithm = "fnv1a"
	// HashXXHash is XXH64 with seed 0 over the UTF-8 bytes of the value.
	HashXXHash HashAlgorithm = "xxhash"

	// DefaultHashAlgorithm is used when no algorithm is configured.
	DefaultHashAlgorithm = HashFNV1a

	fnv1aOffset64 uint64 = 14695981039346656037
	fnv1aPrime64  uint64 = 1099511628211
)

// HashAlgorithms is a list of hash algorithms.
type HashAlgorithms []HashAlgorithm

// AllHashAlgorithms exposes all supported hash algorithms.
var AllHashAlgorithms = HashAlgorithms{HashFNV1a, HashXXHash}

func (algs HashAlgorithms) String() string {
	names := make([]string, len(algs))
	for i, alg := range algs {
		names[i] = string(alg)
	}

	return strings.Join(names, ", ")
}

// ParseHashAlgorithm takes a string and returns the HashAlgorithm constant.
// An empty string gives DefaultHashAlgorithm.
func ParseHashAlgorithm(name string) (HashAlgorithm, error) {
	if name == "" {
		return DefaultHashAlgorithm, nil
	}

	for _, alg := range AllHashAlgorithms {
		if strings.EqualFold(string(alg), name) {
			return alg, nil
		}
	}

	return "", errors.New(UnknownHashAlgorithmError{Name: name})
}

// Sum64 returns the 64-bit hash of the given value.
func (alg HashAlgorithm) Sum64(value string) uint64 {
	if alg == HashXXHash {
		return xxhash.Sum64String(value)
	}

	return fnv1a64(value)
}

func fnv1a64(value string) uint64 {
	hash := fnv1aOffset64

	for i := 0; i < len(value); i++ {
		hash ^= uint64(value[i])
		hash *= fnv1aPrime64
	}

	return hash
}
