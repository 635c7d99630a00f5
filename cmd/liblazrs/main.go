// Command liblazrs builds the flat C library and installs its headers:
//
//	go build -buildmode=c-shared -o out/liblazrs.so ./cmd/liblazrs
//	cp cmd/liblazrs/lazrs_types.h out/
//
// The generated out/liblazrs.h includes lazrs_types.h, which declares the
// parameter unions and callback types, so both headers must sit in the same
// include directory. Compiling C callers with -I cmd/liblazrs also works.
//
// Settings are read once, on first use, from the YAML file named by the
// LAZRS_CONFIG environment variable.
package main

import (
	"sync"

	"github.com/iamNilotpal/lazrs/config"
	"github.com/iamNilotpal/lazrs/internal/core/services/boundary"
	"github.com/iamNilotpal/lazrs/pkg/errors"
)

const service = "lazrs"

var (
	apiOnce sync.Once
	api     *boundary.API
)

// library returns the process wide API, building it on first use. A broken
// configuration falls back to the defaults and is reported through the
// configured logger.
func library() *boundary.API {
	apiOnce.Do(func() {
		cfg, cfgErr := config.FromEnv()
		log := cfg.Logger(service)
		if cfgErr != nil {
			log.Warnw("load config, using defaults", "error", cfgErr)
		}

		a, err := boundary.New(cfg.CodecOptions(), log)
		if err != nil {
			if v := errors.AsValidationError(err); v != nil {
				log.Warnw("invalid codec options, using defaults", "field", v.Field, "value", v.Value, "error", v.Err)
			} else {
				log.Warnw("create api, using defaults", "error", err)
			}

			if a, err = boundary.New(nil, log); err != nil {
				log.Errorw("create api", "error", err)
				return
			}
		}

		log.Debugw("api ready", "chunkSize", a.Options().ChunkSize, "workers", a.Options().Workers)
		api = a
	})
	return api
}

func main() {}
