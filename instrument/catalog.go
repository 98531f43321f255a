// SPDX-License-Identifier: MIT

package instrument

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/harmonics/fretboard"
	"github.com/katalvlaran/harmonics/pitch"
)

// catalogFile is the YAML document.
type catalogFile struct {
	Tunings []tuningEntry `yaml:"tunings" validate:"required,min=1,dive"`
}

// tuningEntry is one catalog entry.
type tuningEntry struct {
	Name    string   `yaml:"name" validate:"required"`
	MaxFret int      `yaml:"max_fret" validate:"gte=0,lte=36"`
	Strings []string `yaml:"strings" validate:"required,min=1,dive,pitchname"`
}

// catalogValidate builds the validator once, with the pitchname rule.
// A failed registration is a programming error and panics on first use.
var catalogValidate = sync.OnceValue(func() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("pitchname", validatePitchName); err != nil {
		panic(fmt.Sprintf("instrument: register pitchname: %v", err))
	}

	return v
})

// validatePitchName accepts anything ParsePitch accepts.
func validatePitchName(fl validator.FieldLevel) bool {
	_, err := ParsePitch(fl.Field().String())
	return err == nil
}

// Catalog is a set of named tunings.
type Catalog struct {
	names   []string
	tunings map[string]fretboard.Tuning
}

// DefaultCatalog holds the built-in tunings: guitar, drop-d, bass, ukulele.
func DefaultCatalog() Catalog {
	c := Catalog{tunings: make(map[string]fretboard.Tuning)}
	c.add("guitar", StandardGuitar())
	c.add("drop-d", DropD())
	c.add("bass", StandardBass())
	c.add("ukulele", StandardUkulele())

	return c
}

func (c *Catalog) add(name string, t fretboard.Tuning) {
	c.names = append(c.names, name)
	c.tunings[name] = t
}

// Names lists tunings in file order.
func (c Catalog) Names() []string { return slices.Clone(c.names) }

// Len returns the number of tunings.
func (c Catalog) Len() int { return len(c.names) }

// Tuning looks a tuning up by name.
//
// Errors:
//   - ErrUnknownTuning when name is absent.
func (c Catalog) Tuning(name string) (fretboard.Tuning, error) {
	t, ok := c.tunings[name]
	if !ok {
		return fretboard.Tuning{}, fmt.Errorf("Catalog.Tuning(%q): %w", name, ErrUnknownTuning)
	}

	return t, nil
}

// LoadCatalog decodes and validates a YAML catalog. Unknown keys are rejected.
//
// Errors:
//   - ErrInvalidCatalog wrapping the decoder, validator or tuning error.
func LoadCatalog(r io.Reader) (Catalog, error) {
	var doc catalogFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return Catalog{}, fmt.Errorf("LoadCatalog: %w: %w", ErrInvalidCatalog, err)
	}
	if err := catalogValidate().Struct(doc); err != nil {
		return Catalog{}, fmt.Errorf("LoadCatalog: %w: %w", ErrInvalidCatalog, err)
	}

	c := Catalog{tunings: make(map[string]fretboard.Tuning, len(doc.Tunings))}
	for _, entry := range doc.Tunings {
		if _, dup := c.tunings[entry.Name]; dup {
			return Catalog{}, fmt.Errorf("LoadCatalog: tuning %q repeated: %w", entry.Name, ErrInvalidCatalog)
		}
		open := make([]pitch.Pitch, len(entry.Strings))
		for i, s := range entry.Strings {
			p, err := ParsePitch(s)
			if err != nil {
				return Catalog{}, fmt.Errorf("LoadCatalog: %w: %w", ErrInvalidCatalog, err)
			}
			open[i] = p
		}
		t, err := fretboard.NewTuning(open, entry.MaxFret)
		if err != nil {
			return Catalog{}, fmt.Errorf("LoadCatalog: %w: %w", ErrInvalidCatalog, err)
		}
		c.add(entry.Name, t)
	}

	return c, nil
}

// LoadCatalogFile reads a catalog from path.
func LoadCatalogFile(path string) (Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer f.Close()

	return LoadCatalog(f)
}
