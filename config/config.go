package config

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/iamNilotpal/lazrs/internal/adapters/checksum"
	"github.com/iamNilotpal/lazrs/internal/adapters/compression"
	"github.com/iamNilotpal/lazrs/internal/core/domain"
	"github.com/iamNilotpal/lazrs/pkg/fs"
	"github.com/iamNilotpal/lazrs/pkg/logger"
)

// EnvConfigPath names the environment variable holding the config file path.
const EnvConfigPath = "LAZRS_CONFIG"

type Config struct {
	Log   LogConfig   `yaml:"log"`
	Codec CodecConfig `yaml:"codec"`
}

// Holds logging configuration
type LogConfig struct {
	Enabled  bool     `yaml:"enabled"`  // Emit logs at all
	Level    string   `yaml:"level"`    // debug, info, warn or error
	Encoding string   `yaml:"encoding"` // json or console
	Outputs  []string `yaml:"outputs"`  // File paths, stderr or stdout
}

// Holds codec configuration
type CodecConfig struct {
	ChunkSize          uint32 `yaml:"chunk_size"`          // Points per chunk of new streams
	Workers            int    `yaml:"workers"`             // Parallel session workers, 0 = one per CPU
	ChunksPerBatch     int    `yaml:"chunks_per_batch"`    // Chunks handed to the workers at once
	Compression        bool   `yaml:"compression"`         // Enable the zstd entropy stage
	CompressionLevel   uint8  `yaml:"compression_level"`   // zstd level (1-4)
	EncoderConcurrency uint8  `yaml:"encoder_concurrency"` // zstd encoders, 0 = one per CPU
	DecoderConcurrency uint8  `yaml:"decoder_concurrency"` // zstd decoders, 0 = one per CPU
	Checksum           string `yaml:"checksum"`            // crc32-ieee, crc64-iso, crc64-ecma, xxhash64 or none
}

// Returns a Config struct with reasonable default values.
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Enabled:  false,
			Level:    "info",
			Encoding: "json",
			Outputs:  []string{"stderr"},
		},
		Codec: CodecConfig{
			ChunkSize:        50_000,
			Compression:      true,
			CompressionLevel: compression.DefaultLevel,
			Checksum:         string(checksum.CRC32IEEE),
		},
	}
}

// Loads configuration from a YAML file. Fields absent from the file keep
// their default values.
func LoadConfig(filename string) (*Config, error) {
	// Read the config file
	data, err := fs.NewLocalFileSystem(0).ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// FromEnv loads the file named by LAZRS_CONFIG. An unset variable yields the
// defaults; a broken file yields the defaults and the error.
func FromEnv() (*Config, error) {
	path := strings.TrimSpace(os.Getenv(EnvConfigPath))
	if path == "" {
		return DefaultConfig(), nil
	}

	config, err := LoadConfig(path)
	if err != nil {
		return DefaultConfig(), err
	}
	return config, nil
}

// CodecOptions converts the codec section to engine options.
func (c *Config) CodecOptions() *domain.CodecOptions {
	opts := &domain.CodecOptions{
		ChunkSize:      c.Codec.ChunkSize,
		Workers:        c.Codec.Workers,
		ChunksPerBatch: c.Codec.ChunksPerBatch,
		Compression: &domain.CompressionOptions{
			Enable:             c.Codec.Compression,
			Level:              c.Codec.CompressionLevel,
			EncoderConcurrency: c.Codec.EncoderConcurrency,
			DecoderConcurrency: c.Codec.DecoderConcurrency,
		},
		Checksum: &domain.ChecksumOptions{
			Enable:    c.Codec.Checksum != "none",
			Algorithm: domain.ChecksumAlgorithm(c.Codec.Checksum),
		},
	}
	return opts
}

// Logger builds the logger described by the log section.
func (c *Config) Logger(service string) *zap.SugaredLogger {
	if !c.Log.Enabled {
		return logger.Nop()
	}
	return logger.New(
		service,
		logger.WithLevel(c.Log.Level),
		logger.WithEncoding(c.Log.Encoding),
		logger.WithOutputs(c.Log.Outputs...),
	)
}

func validateConfig(config *Config) error {
	if err := validateLogConfig(&config.Log); err != nil {
		return fmt.Errorf("invalid log configuration: %w", err)
	}

	if err := validateCodecConfig(&config.Codec); err != nil {
		return fmt.Errorf("invalid codec configuration: %w", err)
	}

	return nil
}

func validateLogConfig(config *LogConfig) error {
	switch config.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("level must be one of debug, info, warn, error, got %q", config.Level)
	}

	if config.Encoding != "json" && config.Encoding != "console" {
		return fmt.Errorf("encoding must be json or console, got %q", config.Encoding)
	}

	return nil
}

func validateCodecConfig(config *CodecConfig) error {
	if config.ChunkSize == 0 {
		return fmt.Errorf("chunk_size must be greater than 0")
	}

	if config.Workers < 0 {
		return fmt.Errorf("workers must not be negative")
	}

	if config.ChunksPerBatch < 0 {
		return fmt.Errorf("chunks_per_batch must not be negative")
	}

	if config.Compression &&
		(config.CompressionLevel < compression.FastestLevel || config.CompressionLevel > compression.BestLevel) {
		return fmt.Errorf(
			"compression_level must be between %d and %d", compression.FastestLevel, compression.BestLevel,
		)
	}

	if config.Checksum != "none" {
		if err := checksum.Validate(&domain.ChecksumOptions{Algorithm: domain.ChecksumAlgorithm(config.Checksum)}); err != nil {
			return err
		}
	}

	return nil
}
