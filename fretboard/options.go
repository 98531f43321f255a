// SPDX-License-Identifier: MIT

package fretboard

import (
	"fmt"
	"log/slog"
	"runtime"
)

// Options configures FindGtrShapes.
//
// Fields:
//   - MaxSpan         widest allowed distance between stopped frets. Required.
//   - SeparateOctaves keep shapes that differ only by an octave choice on
//     some string; when false one representative per string/tone assignment
//     remains (the lowest frets).
//   - Voices          sounding strings per shape; 0 means one per chord tone.
//     Larger values double chord tones on extra strings.
//   - Workers         parallel search tasks; 0 means GOMAXPROCS.
//   - Logger          receives a Debug summary per search; nil discards.
type Options struct {
	MaxSpan         int
	SeparateOctaves bool
	Voices          int
	Workers         int
	Logger          *slog.Logger
}

// unsetSpan marks MaxSpan as not provided.
const unsetSpan = -1

// DefaultOptions leaves MaxSpan unset and keeps octave-separated shapes.
func DefaultOptions() Options {
	return Options{
		MaxSpan:         unsetSpan,
		SeparateOctaves: true,
		Voices:          0,
		Workers:         0,
		Logger:          nil,
	}
}

// Option customizes Options before a search.
// Constructors panic on meaningless inputs; FindGtrShapes itself never panics.
type Option func(*Options)

// WithMaxSpan sets the maximum hand span in frets. Panics on a negative span.
func WithMaxSpan(frets int) Option {
	if frets < 0 {
		panic(fmt.Sprintf("fretboard: WithMaxSpan(%d)", frets))
	}
	return func(o *Options) {
		o.MaxSpan = frets
	}
}

// WithSeparateOctaves toggles octave-separated shapes.
func WithSeparateOctaves(keep bool) Option {
	return func(o *Options) {
		o.SeparateOctaves = keep
	}
}

// WithVoices sets the number of sounding strings. Panics on a negative count.
func WithVoices(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("fretboard: WithVoices(%d)", n))
	}
	return func(o *Options) {
		o.Voices = n
	}
}

// WithWorkers bounds parallelism. Panics on a negative count.
func WithWorkers(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("fretboard: WithWorkers(%d)", n))
	}
	return func(o *Options) {
		o.Workers = n
	}
}

// WithLogger attaches a logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("fretboard: WithLogger(nil)")
	}
	return func(o *Options) {
		o.Logger = l
	}
}

// newOptions applies opts in order over the defaults.
func newOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt == nil {
			panic("fretboard: nil Option")
		}
		opt(&o)
	}

	return o
}

// resolve validates o against a chord of n tones and fills derived defaults.
//
// Complexity: O(1).
func (o Options) resolve(n int) (Options, error) {
	if o.MaxSpan < 0 {
		return o, ErrMissingSpan
	}
	if o.Voices == 0 {
		o.Voices = n
	}
	if o.Voices < n {
		return o, fmt.Errorf("FindGtrShapes: %d voices for %d tones: %w", o.Voices, n, ErrInvalidArity)
	}
	if o.Workers <= 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}

	return o, nil
}
