package checksum

import (
	"hash/crc32"
	"hash/crc64"

	"github.com/iamNilotpal/lazrs/internal/core/ports"
)

var (
	ieeeTable = crc32.MakeTable(crc32.IEEE)
	isoTable  = crc64.MakeTable(crc64.ISO)
	ecmaTable = crc64.MakeTable(crc64.ECMA)
)

// crc is a frame checksum backed by one of the standard CRC tables. The
// 32 bit sums are widened so every algorithm fits the frame header slot.
type crc struct {
	algorithm string
	width     uint8
	sum       func([]byte) uint64
}

func newCRC32(algorithm string, table *crc32.Table) *crc {
	return &crc{
		algorithm: algorithm,
		width:     crc32.Size,
		sum:       func(b []byte) uint64 { return uint64(crc32.Checksum(b, table)) },
	}
}

func newCRC64(algorithm string, table *crc64.Table) *crc {
	return &crc{
		algorithm: algorithm,
		width:     crc64.Size,
		sum:       func(b []byte) uint64 { return crc64.Checksum(b, table) },
	}
}

func NewCRC32IEEE() ports.ChecksumPort { return newCRC32(string(CRC32IEEE), ieeeTable) }
func NewCRC64ISO() ports.ChecksumPort  { return newCRC64(string(CRC64ISO), isoTable) }
func NewCRC64ECMA() ports.ChecksumPort { return newCRC64(string(CRC64ECMA), ecmaTable) }

func (c *crc) Calculate(data []byte) uint64 { return c.sum(data) }

func (c *crc) Verify(data []byte, expected uint64) bool {
	return c.sum(data) == expected
}

func (c *crc) Size() uint8 { return c.width }

func (c *crc) Name() string { return c.algorithm }
