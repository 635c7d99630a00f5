package domain

import "fmt"

// Origin is the reference point of a seek. The values match the C
// SEEK_SET, SEEK_CUR and SEEK_END constants, which is also what io.Seeker
// whence values use.
type Origin int

const (
	OriginStart   Origin = 0 // Absolute position.
	OriginCurrent Origin = 1 // Relative to the current position.
	OriginEnd     Origin = 2 // Relative to the end of the stream.
)

// String returns the C name of the origin.
func (o Origin) String() string {
	switch o {
	case OriginStart:
		return "SEEK_SET"
	case OriginCurrent:
		return "SEEK_CUR"
	case OriginEnd:
		return "SEEK_END"
	default:
		return fmt.Sprintf("SEEK_%d", int(o))
	}
}

// IsValid reports whether o is one of the three supported origins.
func (o Origin) IsValid() bool {
	return o >= OriginStart && o <= OriginEnd
}

// Flavor selects the session implementation. It is fixed at creation time.
type Flavor uint8

const (
	// FlavorSequential processes records one chunk at a time on the caller's goroutine.
	FlavorSequential Flavor = iota
	// FlavorParallel encodes or decodes batches of chunks on a worker pool.
	FlavorParallel
)

func (f Flavor) String() string {
	switch f {
	case FlavorSequential:
		return "sequential"
	case FlavorParallel:
		return "parallel"
	default:
		return "unknown"
	}
}

// FlavorFor maps the C "prefer_parallel" flag to a Flavor.
func FlavorFor(preferParallel bool) Flavor {
	if preferParallel {
		return FlavorParallel
	}
	return FlavorSequential
}
