package checksum

import (
	"fmt"

	"github.com/iamNilotpal/lazrs/internal/core/domain"
	"github.com/iamNilotpal/lazrs/internal/core/ports"
)

const (
	// CRC32IEEE uses the IEEE polynomial for CRC32 checksums
	CRC32IEEE domain.ChecksumAlgorithm = "crc32-ieee"

	// CRC64ISO uses the ISO polynomial for CRC64 checksums
	CRC64ISO domain.ChecksumAlgorithm = "crc64-iso"

	// CRC64ECMA uses the ECMA polynomial for CRC64 checksums
	CRC64ECMA domain.ChecksumAlgorithm = "crc64-ecma"

	// XXHash64 is the non-cryptographic 64 bit xxHash, the fastest option
	XXHash64 domain.ChecksumAlgorithm = "xxhash64"
)

// Algorithm ids as stored in a chunk frame header. Zero means no checksum.
const (
	IDNone uint8 = iota
	IDCRC32IEEE
	IDCRC64ISO
	IDCRC64ECMA
	IDXXHash64
)

// Returns recommended checksum settings.
func DefaultOptions() *domain.ChecksumOptions {
	return &domain.ChecksumOptions{
		Enable:    true,
		Algorithm: CRC32IEEE,
	}
}

func Validate(input *domain.ChecksumOptions) error {
	switch input.Algorithm {
	case CRC32IEEE, CRC64ISO, CRC64ECMA, XXHash64:
	default:
		return fmt.Errorf("unsupported checksum algorithm: %s", input.Algorithm)
	}
	return nil
}

// NewCheckSummer returns the checksum implementation for algorithm,
// falling back to CRC32IEEE for unknown names.
func NewCheckSummer(algorithm domain.ChecksumAlgorithm) ports.ChecksumPort {
	switch algorithm {
	case CRC64ISO:
		return NewCRC64ISO()
	case CRC64ECMA:
		return NewCRC64ECMA()
	case XXHash64:
		return NewXXHash64()
	default:
		return NewCRC32IEEE()
	}
}

// ID returns the frame id of algorithm.
func ID(algorithm domain.ChecksumAlgorithm) uint8 {
	switch algorithm {
	case CRC32IEEE:
		return IDCRC32IEEE
	case CRC64ISO:
		return IDCRC64ISO
	case CRC64ECMA:
		return IDCRC64ECMA
	case XXHash64:
		return IDXXHash64
	default:
		return IDNone
	}
}

// FromID returns the checksum implementation stored under a frame id,
// or false for IDNone and unknown ids.
func FromID(id uint8) (ports.ChecksumPort, bool) {
	switch id {
	case IDCRC32IEEE:
		return NewCRC32IEEE(), true
	case IDCRC64ISO:
		return NewCRC64ISO(), true
	case IDCRC64ECMA:
		return NewCRC64ECMA(), true
	case IDXXHash64:
		return NewXXHash64(), true
	default:
		return nil, false
	}
}
