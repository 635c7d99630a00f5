package session

import (
	"io"

	"go.uber.org/multierr"

	"github.com/iamNilotpal/lazrs/internal/core/domain"
	"github.com/iamNilotpal/lazrs/internal/core/ports"
)

// Decompressor is a live decompression session. Its flavour is fixed at
// creation.
type Decompressor struct {
	engine ports.PointDecompressor
	flavor domain.Flavor
	closer io.Closer
}

// NewDecompressor wraps engine. closer, when non-nil, is closed with the
// session.
func NewDecompressor(engine ports.PointDecompressor, flavor domain.Flavor, closer io.Closer) *Decompressor {
	return &Decompressor{engine: engine, flavor: flavor, closer: closer}
}

func (d *Decompressor) Flavor() domain.Flavor {
	return d.flavor
}

// DecompressOne fills out with one point. A parallel session fills the
// whole buffer instead.
func (d *Decompressor) DecompressOne(out []byte) error {
	if d.flavor == domain.FlavorParallel {
		return d.engine.DecompressMany(out)
	}
	return d.engine.DecompressOne(out)
}

func (d *Decompressor) DecompressMany(out []byte) error {
	return d.engine.DecompressMany(out)
}

// Close releases the engine and the stream it owns.
func (d *Decompressor) Close() error {
	var err error
	if c, ok := d.engine.(io.Closer); ok {
		err = multierr.Append(err, c.Close())
	}
	if d.closer != nil {
		err = multierr.Append(err, d.closer.Close())
	}
	return err
}

// Compressor is a live compression session.
type Compressor struct {
	engine ports.PointCompressor
	flavor domain.Flavor
}

func NewCompressor(engine ports.PointCompressor, flavor domain.Flavor) *Compressor {
	return &Compressor{engine: engine, flavor: flavor}
}

func (c *Compressor) Flavor() domain.Flavor {
	return c.flavor
}

// CompressOne appends one point. A parallel session accepts any whole
// number of points.
func (c *Compressor) CompressOne(in []byte) error {
	if c.flavor == domain.FlavorParallel {
		return c.engine.CompressMany(in)
	}
	return c.engine.CompressOne(in)
}

func (c *Compressor) CompressMany(in []byte) error {
	return c.engine.CompressMany(in)
}

func (c *Compressor) Done() error {
	return c.engine.Done()
}

// LazVlr returns the configuration record of the stream being written.
func (c *Compressor) LazVlr() []byte {
	return c.engine.LazVlr()
}

// Close releases the engine. The destination belongs to the caller.
func (c *Compressor) Close() error {
	if closer, ok := c.engine.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
