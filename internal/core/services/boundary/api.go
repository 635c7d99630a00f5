// Package boundary is the total, panic-free surface of the library. Every
// call returns a result code; failures never escape as panics or leave a
// half-built session behind a handle.
package boundary

import (
	"errors"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/iamNilotpal/lazrs/internal/adapters/compression"
	"github.com/iamNilotpal/lazrs/internal/core/domain"
	"github.com/iamNilotpal/lazrs/internal/core/ports"
	"github.com/iamNilotpal/lazrs/internal/core/services/session"
	"github.com/iamNilotpal/lazrs/internal/core/services/source"
	"github.com/iamNilotpal/lazrs/internal/laz"
	pkgerrors "github.com/iamNilotpal/lazrs/pkg/errors"
	"github.com/iamNilotpal/lazrs/pkg/fs"
	"github.com/iamNilotpal/lazrs/pkg/logger"
)

var (
	errUnknownHandle = errors.New("handle does not refer to a live session")
	errVlrSize       = errors.New("buffer size differs from the vlr size")
)

// API owns every session created through it and the shared codec state.
type API struct {
	log     *zap.SugaredLogger
	options *domain.CodecOptions
	engine  *laz.Options
	closers []ports.CompressionPort

	sources       *source.Builder
	decompressors *session.Registry[*session.Decompressor]
	compressors   *session.Registry[*session.Compressor]
}

// New validates opts, fills in defaults and prepares the shared entropy
// stage. A nil opts selects the defaults and a nil log discards output.
func New(opts *domain.CodecOptions, log *zap.SugaredLogger) (*API, error) {
	if opts != nil {
		if err := Validate(opts); err != nil {
			return nil, err
		}
	} else {
		opts = &domain.CodecOptions{}
	}
	opts = prepareDefaults(opts)

	if log == nil {
		log = logger.Nop()
	}

	engine := &laz.Options{
		ChunkSize:      opts.ChunkSize,
		Workers:        opts.Workers,
		ChunksPerBatch: opts.ChunksPerBatch,
		Checksum:       opts.Checksum,
	}

	api := &API{
		log:           log,
		options:       opts,
		engine:        engine,
		sources:       source.NewBuilder(fs.NewLocalFileSystem(fs.DefaultBufferSize)),
		decompressors: session.NewRegistry[*session.Decompressor](),
		compressors:   session.NewRegistry[*session.Compressor](),
	}

	if opts.Compression.Enable {
		z, err := compression.NewZstdCompression(compression.Options{
			Level:              opts.Compression.Level,
			EncoderConcurrency: opts.Compression.EncoderConcurrency,
			DecoderConcurrency: opts.Compression.DecoderConcurrency,
		})
		if err != nil {
			return nil, err
		}
		engine.Compression = z
		api.closers = append(api.closers, z)
	}

	return api, nil
}

// Options returns the effective options.
func (a *API) Options() domain.CodecOptions {
	return *a.options
}

// NewDecompressor parses the configuration record, opens the source at its
// offset and builds the engine of the requested flavour. On failure the
// returned handle is null.
func (a *API) NewDecompressor(params domain.DecompressorParams) (session.Handle, domain.Result) {
	var handle session.Handle

	res := a.guard("new decompressor", func() error {
		vlr, err := laz.ParseLazVlr(params.LazVlr)
		if err != nil {
			return err
		}

		src, closer, err := a.sources.Open(params.Source, params.SourceOffset)
		if err != nil {
			return err
		}

		var engine *laz.Decompressor
		if params.Flavor == domain.FlavorParallel {
			engine, err = laz.NewParallelDecompressor(src, vlr, a.engine)
		} else {
			engine, err = laz.NewDecompressor(src, vlr, a.engine)
		}
		if err != nil {
			if closer != nil {
				err = multierr.Append(err, closer.Close())
			}
			return err
		}

		handle = a.decompressors.Insert(session.NewDecompressor(engine, params.Flavor, closer))
		a.log.Debugw("decompressor created", "handle", handle, "source", params.Source.Kind().String(), "flavor", params.Flavor.String())
		return nil
	})

	if res != domain.ResultOK {
		return 0, res
	}
	return handle, res
}

func (a *API) DecompressOne(h session.Handle, out []byte) domain.Result {
	return a.guard("decompress one", func() error {
		d, err := a.decompressor(h)
		if err != nil {
			return err
		}
		return d.DecompressOne(out)
	})
}

func (a *API) DecompressMany(h session.Handle, out []byte) domain.Result {
	return a.guard("decompress many", func() error {
		d, err := a.decompressor(h)
		if err != nil {
			return err
		}
		return d.DecompressMany(out)
	})
}

// DeleteDecompressor destroys the session. Null, unknown and already
// deleted handles are ignored.
func (a *API) DeleteDecompressor(h session.Handle) {
	d, ok := a.decompressors.Remove(h)
	if !ok {
		return
	}
	if err := d.Close(); err != nil {
		a.log.Warnw("decompressor teardown", "handle", h, "error", err)
	}
	a.log.Debugw("decompressor deleted", "handle", h)
}

// NewCompressor builds the configuration record for the point format and a
// compressor of the requested flavour writing to the destination.
func (a *API) NewCompressor(params domain.CompressorParams) (session.Handle, domain.Result) {
	var handle session.Handle

	res := a.guard("new compressor", func() error {
		vlr, err := laz.NewLazVlrForPointFormat(params.PointFormatID, params.NumExtraBytes, a.options.ChunkSize)
		if err != nil {
			return err
		}

		dst, err := a.sources.OpenDestination(params.Destination)
		if err != nil {
			return err
		}

		var engine *laz.Compressor
		if params.Flavor == domain.FlavorParallel {
			engine, err = laz.NewParallelCompressor(dst, vlr, a.engine)
		} else {
			engine, err = laz.NewCompressor(dst, vlr, a.engine)
		}
		if err != nil {
			return err
		}

		handle = a.compressors.Insert(session.NewCompressor(engine, params.Flavor))
		a.log.Debugw("compressor created", "handle", handle, "pointFormat", params.PointFormatID, "flavor", params.Flavor.String())
		return nil
	})

	if res != domain.ResultOK {
		return 0, res
	}
	return handle, res
}

func (a *API) CompressOne(h session.Handle, in []byte) domain.Result {
	return a.guard("compress one", func() error {
		c, err := a.compressor(h)
		if err != nil {
			return err
		}
		return c.CompressOne(in)
	})
}

func (a *API) CompressMany(h session.Handle, in []byte) domain.Result {
	return a.guard("compress many", func() error {
		c, err := a.compressor(h)
		if err != nil {
			return err
		}
		return c.CompressMany(in)
	})
}

// Done finishes the stream. Calling it again returns ResultOK and writes
// nothing.
func (a *API) Done(h session.Handle) domain.Result {
	return a.guard("done", func() error {
		c, err := a.compressor(h)
		if err != nil {
			return err
		}
		return c.Done()
	})
}

// DeleteCompressor destroys the session without finishing the stream.
func (a *API) DeleteCompressor(h session.Handle) {
	c, ok := a.compressors.Remove(h)
	if !ok {
		return
	}
	if err := c.Close(); err != nil {
		a.log.Warnw("compressor teardown", "handle", h, "error", err)
	}
	a.log.Debugw("compressor deleted", "handle", h)
}

// LazVlrSize returns the size of the configuration record, or 0 when h is
// not a live compressor.
func (a *API) LazVlrSize(h session.Handle) uint16 {
	var size uint16
	a.guard("laz vlr size", func() error {
		c, err := a.compressor(h)
		if err != nil {
			return err
		}
		size = uint16(len(c.LazVlr()))
		return nil
	})
	return size
}

// LazVlrData copies the configuration record into out, which must be
// exactly LazVlrSize bytes long.
func (a *API) LazVlrData(h session.Handle, out []byte) domain.Result {
	return a.guard("laz vlr data", func() error {
		c, err := a.compressor(h)
		if err != nil {
			return err
		}
		vlr := c.LazVlr()
		if len(out) != len(vlr) {
			return pkgerrors.Errorf(pkgerrors.ErrorConfig, "laz vlr data", "%w: got %d, want %d", errVlrSize, len(out), len(vlr))
		}
		copy(out, vlr)
		return nil
	})
}

// Close destroys every live session and releases the shared state.
func (a *API) Close() error {
	var err error
	for _, d := range a.decompressors.Drain() {
		err = multierr.Append(err, d.Close())
	}
	for _, c := range a.compressors.Drain() {
		err = multierr.Append(err, c.Close())
	}
	for _, c := range a.closers {
		err = multierr.Append(err, c.Close())
	}
	return err
}

func (a *API) decompressor(h session.Handle) (*session.Decompressor, error) {
	d, ok := a.decompressors.Get(h)
	if !ok {
		return nil, pkgerrors.New(pkgerrors.ErrorInternal, "lookup decompressor", errUnknownHandle)
	}
	return d, nil
}

func (a *API) compressor(h session.Handle) (*session.Compressor, error) {
	c, ok := a.compressors.Get(h)
	if !ok {
		return nil, pkgerrors.New(pkgerrors.ErrorInternal, "lookup compressor", errUnknownHandle)
	}
	return c, nil
}
