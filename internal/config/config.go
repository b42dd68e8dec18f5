// SPDX-License-Identifier: EPL-2.0

// Package config reads settings from the environment and an optional .env
// file. Process environment variables win over the file.
package config

import (
	"compress/gzip"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/ossrs/go-oryx-lib/errors"

	"github.com/ik5/entrain/preset"
)

// Environment variables read by Load.
const (
	EnvMaxBaseFrequency        = "SINE_MAX_BASE_FREQUENCY"
	EnvMaxEntrainmentFrequency = "SINE_MAX_ENTRAINMENT_FREQUENCY"
	EnvMinLength               = "SINE_MIN_LENGTH"
	EnvMaxLength               = "SINE_MAX_LENGTH"
	EnvCurveRate               = "SINE_CURVE_RATE"
	EnvCompressionLevel        = "SINE_HES_LEVEL"
)

// ErrInvalid indicates a setting that is not a valid number or out of range.
var ErrInvalid = errors.New("invalid setting")

type Config struct {
	// Limits is what Preset.Validate checks against.
	Limits preset.Limits
	// CurveRate is the control rate of curve dumps, in samples per second.
	CurveRate int
	// CompressionLevel is the gzip level of HES and HBX writes.
	CompressionLevel int
}

func Default() *Config {
	return &Config{
		Limits:           preset.DefaultLimits(),
		CurveRate:        100,
		CompressionLevel: gzip.BestCompression,
	}
}

// Load returns the defaults overridden by envFile, then by the environment.
// A missing envFile is not an error; pass "" to skip it.
func Load(envFile string) (*Config, error) {
	file := map[string]string{}
	if envFile != "" {
		envs, err := godotenv.Read(envFile)
		if err != nil && !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "read %v", envFile)
		}
		if envs != nil {
			file = envs
		}
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			return v, true
		}
		v, ok := file[key]
		return v, ok && v != ""
	}

	c := Default()
	if err := firstErr(
		float64Setting(lookup, EnvMaxBaseFrequency, &c.Limits.MaxBaseFrequency),
		float64Setting(lookup, EnvMaxEntrainmentFrequency, &c.Limits.MaxEntrainmentFrequency),
		float32Setting(lookup, EnvMinLength, &c.Limits.MinLength),
		float32Setting(lookup, EnvMaxLength, &c.Limits.MaxLength),
		intSetting(lookup, EnvCurveRate, &c.CurveRate),
		intSetting(lookup, EnvCompressionLevel, &c.CompressionLevel),
	); err != nil {
		return nil, err
	}

	if err := c.check(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Config) check() error {
	l := c.Limits
	switch {
	case l.MaxBaseFrequency <= 0:
		return errors.Wrapf(ErrInvalid, "%v=%v", EnvMaxBaseFrequency, l.MaxBaseFrequency)
	case l.MaxEntrainmentFrequency <= 0:
		return errors.Wrapf(ErrInvalid, "%v=%v", EnvMaxEntrainmentFrequency, l.MaxEntrainmentFrequency)
	case l.MinLength < 0 || l.MinLength >= l.MaxLength:
		return errors.Wrapf(ErrInvalid, "%v=%v %v=%v", EnvMinLength, l.MinLength, EnvMaxLength, l.MaxLength)
	case c.CurveRate <= 0:
		return errors.Wrapf(ErrInvalid, "%v=%v", EnvCurveRate, c.CurveRate)
	case c.CompressionLevel < gzip.HuffmanOnly || c.CompressionLevel > gzip.BestCompression:
		return errors.Wrapf(ErrInvalid, "%v=%v", EnvCompressionLevel, c.CompressionLevel)
	}

	return nil
}

type lookupFunc func(key string) (string, bool)

func float64Setting(lookup lookupFunc, key string, dst *float64) error {
	s, ok := lookup(key)
	if !ok {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return errors.Wrapf(ErrInvalid, "%v=%q", key, s)
	}

	*dst = v
	return nil
}

func float32Setting(lookup lookupFunc, key string, dst *float32) error {
	s, ok := lookup(key)
	if !ok {
		return nil
	}
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return errors.Wrapf(ErrInvalid, "%v=%q", key, s)
	}

	*dst = float32(v)
	return nil
}

func intSetting(lookup lookupFunc, key string, dst *int) error {
	s, ok := lookup(key)
	if !ok {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return errors.Wrapf(ErrInvalid, "%v=%q", key, s)
	}

	*dst = v
	return nil
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	return nil
}
