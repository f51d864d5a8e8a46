package spectrum

import (
	"errors"

	"github.com/katalvlaran/wdm/core"
)

// Default grid dimensions.
const (
	DefaultWavelengths = 4
	DefaultSlots       = 80
)

// Sentinel errors returned by Table methods.
var (
	// ErrUnknownEdge indicates no grid has been created for the edge key.
	ErrUnknownEdge = errors.New("spectrum: unknown edge")

	// ErrWavelengthRange indicates a wavelength index outside [0, NumWavelengths).
	ErrWavelengthRange = errors.New("spectrum: wavelength out of range")

	// ErrSlotRange indicates a slot index or range outside [0, NumSlots).
	ErrSlotRange = errors.New("spectrum: slot out of range")

	// ErrBadDimension indicates a non-positive wavelength or slot count.
	ErrBadDimension = errors.New("spectrum: dimensions must be positive")
)

// Level classifies an edge's aggregate occupancy.
type Level int

const (
	LevelFree Level = iota
	LevelLight
	LevelHeavy
	LevelFull
)

// String returns the lower-case level name.
func (l Level) String() string {
	switch l {
	case LevelFree:
		return "free"
	case LevelLight:
		return "light"
	case LevelHeavy:
		return "heavy"
	case LevelFull:
		return "full"
	default:
		return "unknown"
	}
}

// Options configures a Table.
type Options struct {
	Wavelengths int
	Slots       int
}

// Option represents a functional option for configuring a Table.
type Option func(*Options)

// WithWavelengths sets the number of wavelengths per edge. Panics if n ≤ 0.
func WithWavelengths(n int) Option {
	if n <= 0 {
		panic(ErrBadDimension.Error())
	}
	return func(o *Options) { o.Wavelengths = n }
}

// WithSlots sets the number of slots per wavelength. Panics if n ≤ 0.
func WithSlots(n int) Option {
	if n <= 0 {
		panic(ErrBadDimension.Error())
	}
	return func(o *Options) { o.Slots = n }
}

// DefaultOptions returns 4 wavelengths × 80 slots.
func DefaultOptions() Options {
	return Options{Wavelengths: DefaultWavelengths, Slots: DefaultSlots}
}

// grid is one edge's occupancy: grid[wavelength][slot].
type grid [][]bool

// Table maps edge keys to occupancy grids.
type Table struct {
	wavelengths int
	slots       int
	grids       map[core.EdgeKey]grid
}
