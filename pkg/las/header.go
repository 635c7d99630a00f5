// Package las reads the parts of a LAS/LAZ file needed to drive the codec:
// the public header block and the variable length records that follow it.
package las

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

const (
	// HeaderSize is the length of the 1.2 public header block.
	HeaderSize = 227

	// VlrHeaderSize is the length of the header preceding each VLR payload.
	VlrHeaderSize = 54

	// LaszipUserID and LaszipRecordID identify the LASzip configuration VLR.
	LaszipUserID   = "laszip encoded"
	LaszipRecordID = 22204

	signature = "LASF"

	extendedPointCountOffset = 247

	compressedBit = 0x80
	reservedBit   = 0x40
	formatMask    = 0x3f
)

var (
	ErrSignature = errors.New("las: invalid file signature")
	ErrNoLazVlr  = errors.New("las: no laszip vlr")
)

// Vlr is a variable length record.
type Vlr struct {
	UserID      string
	RecordID    uint16
	Description string
	Data        []byte
}

// Header is the subset of the public header block the codec needs.
type Header struct {
	VersionMajor      uint8
	VersionMinor      uint8
	HeaderSize        uint16
	OffsetToPointData uint32
	PointFormat       uint8
	PointSize         uint16
	PointCount        uint64
	Compressed        bool
	Vlrs              []Vlr
}

// ReadHeader reads the header and VLRs of the file starting at the current
// position of r, which must be the start of the file.
func ReadHeader(r io.ReadSeeker) (*Header, error) {
	raw := make([]byte, HeaderSize)
	if _, err := io.ReadFull(r, raw); err != nil {
		return nil, fmt.Errorf("las: read header: %w", err)
	}
	if string(raw[:4]) != signature {
		return nil, ErrSignature
	}

	le := binary.LittleEndian
	format := raw[104]
	h := &Header{
		VersionMajor:      raw[24],
		VersionMinor:      raw[25],
		HeaderSize:        le.Uint16(raw[94:]),
		OffsetToPointData: le.Uint32(raw[96:]),
		PointFormat:       format & formatMask,
		PointSize:         le.Uint16(raw[105:]),
		PointCount:        uint64(le.Uint32(raw[107:])),
		Compressed:        format&compressedBit != 0 && format&reservedBit == 0,
	}
	numVlrs := le.Uint32(raw[100:])

	if h.VersionMinor >= 4 {
		if _, err := r.Seek(extendedPointCountOffset, io.SeekStart); err != nil {
			return nil, fmt.Errorf("las: seek point count: %w", err)
		}
		var count [8]byte
		if _, err := io.ReadFull(r, count[:]); err != nil {
			return nil, fmt.Errorf("las: read point count: %w", err)
		}
		h.PointCount = le.Uint64(count[:])
	}

	if _, err := r.Seek(int64(h.HeaderSize), io.SeekStart); err != nil {
		return nil, fmt.Errorf("las: seek vlrs: %w", err)
	}

	vlrHeader := make([]byte, VlrHeaderSize)
	for i := uint32(0); i < numVlrs; i++ {
		if _, err := io.ReadFull(r, vlrHeader); err != nil {
			return nil, fmt.Errorf("las: read vlr %d: %w", i, err)
		}

		vlr := Vlr{
			UserID:      cString(vlrHeader[2:18]),
			RecordID:    le.Uint16(vlrHeader[18:]),
			Description: cString(vlrHeader[22:54]),
			Data:        make([]byte, le.Uint16(vlrHeader[20:])),
		}
		if _, err := io.ReadFull(r, vlr.Data); err != nil {
			return nil, fmt.Errorf("las: read vlr %d data: %w", i, err)
		}
		h.Vlrs = append(h.Vlrs, vlr)
	}

	return h, nil
}

// LazVlr returns the payload of the LASzip configuration VLR.
func (h *Header) LazVlr() ([]byte, error) {
	for _, vlr := range h.Vlrs {
		if vlr.UserID == LaszipUserID && vlr.RecordID == LaszipRecordID {
			return vlr.Data, nil
		}
	}
	return nil, ErrNoLazVlr
}

// Bytes serializes a 1.2 header followed by the VLRs. Size and offset
// fields are computed from the VLRs.
func (h *Header) Bytes() []byte {
	le := binary.LittleEndian

	raw := make([]byte, HeaderSize)
	copy(raw, signature)
	raw[24] = h.VersionMajor
	raw[25] = h.VersionMinor

	offset := HeaderSize
	for _, vlr := range h.Vlrs {
		offset += VlrHeaderSize + len(vlr.Data)
	}

	le.PutUint16(raw[94:], HeaderSize)
	le.PutUint32(raw[96:], uint32(offset))
	le.PutUint32(raw[100:], uint32(len(h.Vlrs)))
	raw[104] = h.PointFormat & formatMask
	if h.Compressed {
		raw[104] |= compressedBit
	}
	le.PutUint16(raw[105:], h.PointSize)
	le.PutUint32(raw[107:], uint32(min(h.PointCount, 1<<32-1)))

	out := bytes.NewBuffer(raw)
	for _, vlr := range h.Vlrs {
		header := make([]byte, VlrHeaderSize)
		copy(header[2:18], vlr.UserID)
		le.PutUint16(header[18:], vlr.RecordID)
		le.PutUint16(header[20:], uint16(len(vlr.Data)))
		copy(header[22:54], vlr.Description)
		out.Write(header)
		out.Write(vlr.Data)
	}

	return out.Bytes()
}

func cString(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}
