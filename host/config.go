package host

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/pipes/pipe"
	"github.com/npillmayer/pipes/typeset"
	"github.com/npillmayer/schuko/gconf"
)

// ErrInvalidConfig is returned for configuration values out of range.
var ErrInvalidConfig = errors.New("invalid configuration")

// Configuration keys.
const (
	KeyWidth       = "pipes.width"
	KeyHeight      = "pipes.height"
	KeyLayerPool   = "pipes.layerpool"
	KeyFormulaRate = "pipes.rate.formula"
	KeyTableRate   = "pipes.rate.table"
	KeyPreview     = "pipes.preview"
	KeyTypesetter  = "pipes.typesetter"
)

// Config holds the settings of an App.
type Config struct {
	Width, Height int     // stage size in pixels
	LayerPool     int     // number of animation layers
	FormulaRate   float64 // progress per frame in formula mode
	TableRate     float64 // progress per frame in table mode
	Preview       string  // "approx" or "exact"
	Typesetter    string  // "plain" or "raster"
}

// DefaultConfig returns the settings used for keys which are not set.
func DefaultConfig() Config {
	return Config{
		Width:       800,
		Height:      600,
		LayerPool:   4,
		FormulaRate: pipe.DefaultFormulaRate,
		TableRate:   pipe.DefaultTableRate,
		Preview:     "approx",
		Typesetter:  "plain",
	}
}

// Source is the part of a schuko configuration LoadConfig needs.
type Source interface {
	IsSet(key string) bool
	GetString(key string) string
}

// global reads from the application-wide configuration.
type global struct{}

func (global) IsSet(key string) bool { return gconf.IsSet(key) }
func (global) GetString(key string) string { return gconf.GetString(key) }

// LoadGlobalConfig reads the settings from the global configuration, which
// has to be initialized with gconf.Initialize.
func LoadGlobalConfig() (Config, error) {
	return LoadConfig(global{})
}

// LoadConfig reads the settings from src. Keys which are not set keep their
// default values.
func LoadConfig(src Source) (Config, error) {
	c := DefaultConfig()
	var err error
	readInt := func(key string, v *int) {
		if err != nil || !src.IsSet(key) {
			return
		}
		n, e := strconv.Atoi(strings.TrimSpace(src.GetString(key)))
		if e != nil {
			err = fmt.Errorf("%w: %s: %v", ErrInvalidConfig, key, e)
			return
		}
		*v = n
	}
	readFloat := func(key string, v *float64) {
		if err != nil || !src.IsSet(key) {
			return
		}
		f, e := strconv.ParseFloat(strings.TrimSpace(src.GetString(key)), 64)
		if e != nil {
			err = fmt.Errorf("%w: %s: %v", ErrInvalidConfig, key, e)
			return
		}
		*v = f
	}
	readString := func(key string, v *string) {
		if err != nil || !src.IsSet(key) {
			return
		}
		*v = strings.ToLower(strings.TrimSpace(src.GetString(key)))
	}
	readInt(KeyWidth, &c.Width)
	readInt(KeyHeight, &c.Height)
	readInt(KeyLayerPool, &c.LayerPool)
	readFloat(KeyFormulaRate, &c.FormulaRate)
	readFloat(KeyTableRate, &c.TableRate)
	readString(KeyPreview, &c.Preview)
	readString(KeyTypesetter, &c.Typesetter)
	if err != nil {
		return c, err
	}
	return c, c.Validate()
}

// Validate checks the ranges of all settings.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: stage size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.LayerPool < 1:
		return fmt.Errorf("%w: layer pool size %d", ErrInvalidConfig, c.LayerPool)
	case c.FormulaRate <= 0 || c.FormulaRate >= 1:
		return fmt.Errorf("%w: formula rate %g", ErrInvalidConfig, c.FormulaRate)
	case c.TableRate <= 0 || c.TableRate >= 1:
		return fmt.Errorf("%w: table rate %g", ErrInvalidConfig, c.TableRate)
	}
	if _, err := pipe.PreviewByName(c.Preview); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := typeset.ByName(c.Typesetter); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}
