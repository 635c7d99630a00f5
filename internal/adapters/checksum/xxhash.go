package checksum

import (
	"github.com/cespare/xxhash/v2"

	"github.com/iamNilotpal/lazrs/internal/core/ports"
)

func NewXXHash64() ports.ChecksumPort {
	return &crc{algorithm: string(XXHash64), width: 8, sum: xxhash.Sum64}
}
