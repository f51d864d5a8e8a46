// Package config loads the TOML run configuration of the rsasim host:
// spectrum dimensions, logging, batch workers and the metrics listener.
package config

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/katalvlaran/wdm/internal/validate"
	"github.com/katalvlaran/wdm/rsa"
	"github.com/katalvlaran/wdm/spectrum"
)

// ErrInvalid indicates a configuration that failed decoding or validation.
var ErrInvalid = errors.New("config: invalid configuration")

// Config holds the overall configuration structure mapping to rsasim.toml.
type Config struct {
	Spectrum SpectrumConfig `toml:"spectrum"`
	Log      LogConfig      `toml:"log"`
	Batch    BatchConfig    `toml:"batch"`
	Metrics  MetricsConfig  `toml:"metrics"`
}

// SpectrumConfig fixes the per-link grid for the whole run.
type SpectrumConfig struct {
	Wavelengths int `toml:"wavelengths" validate:"gte=1,lte=128"`
	Slots       int `toml:"slots" validate:"gte=1,lte=4096"`
}

// LogConfig selects level, format and optional rotated file output.
type LogConfig struct {
	Level      string `toml:"level" validate:"oneof=trace debug info warn warning error"`
	Format     string `toml:"format" validate:"oneof=text json"`
	File       string `toml:"file"`
	MaxSizeMB  int    `toml:"max_size_mb" validate:"gte=0"`
	MaxBackups int    `toml:"max_backups" validate:"gte=0"`
	MaxAgeDays int    `toml:"max_age_days" validate:"gte=0"`
	Compress   bool   `toml:"compress"`
}

// BatchConfig sizes the ServeBatch worker pool.
type BatchConfig struct {
	Workers int `toml:"workers" validate:"gte=1,lte=1024"`
}

// MetricsConfig enables the Prometheus listener when Addr is set.
type MetricsConfig struct {
	Addr string `toml:"addr" validate:"omitempty,hostname_port"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Spectrum: SpectrumConfig{Wavelengths: spectrum.DefaultWavelengths, Slots: spectrum.DefaultSlots},
		Log:      LogConfig{Level: "info", Format: "text", MaxSizeMB: 100, MaxBackups: 7, MaxAgeDays: 30, Compress: true},
		Batch:    BatchConfig{Workers: rsa.DefaultBatchWorkers},
	}
}

// Load decodes the TOML file at path over Default and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%w: decoding %s: %w", ErrInvalid, path, err)
	}

	return finish(cfg, md)
}

// Parse is Load for in-memory TOML.
func Parse(data string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return finish(cfg, md)
}

func finish(cfg Config, md toml.MetaData) (Config, error) {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: unknown keys %s", ErrInvalid, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every field constraint.
func (c Config) Validate() error {
	if err := validate.Struct(&c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return nil
}

// SessionOptions returns the rsa options implied by c.
func (c Config) SessionOptions() []rsa.SessionOption {
	return []rsa.SessionOption{rsa.WithSpectrum(c.Spectrum.Wavelengths, c.Spectrum.Slots)}
}

// NewLogger builds a logrus logger writing to out and, when File is set, to
// a lumberjack-rotated file. The returned closer releases the file.
func (l LogConfig) NewLogger(out io.Writer) (*logrus.Logger, io.Closer, error) {
	level, err := logrus.ParseLevel(l.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	logger := logrus.New()
	logger.SetLevel(level)
	if l.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	var closer io.Closer = nopCloser{}
	if l.File != "" {
		fileLogger := &lumberjack.Logger{
			Filename:   l.File,
			MaxSize:    l.MaxSizeMB,
			MaxBackups: l.MaxBackups,
			MaxAge:     l.MaxAgeDays,
			Compress:   l.Compress,
		}
		out = io.MultiWriter(out, fileLogger)
		closer = fileLogger
	}
	logger.SetOutput(out)

	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
