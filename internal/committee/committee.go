// Package committee provides the read-only committee seed data: display
// names, agenda topics, speaker lists and motions keyed by committee code.
package committee

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/aaronzipp/mun-display/internal/models"
)

//go:embed committees.yaml
var defaultData []byte

var ErrNoCommittees = errors.New("no committees defined")

// Record is the seed data for one committee
type Record struct {
	Code        string           `yaml:"code"`
	DisplayName string           `yaml:"displayName"`
	Topic       string           `yaml:"topic"`
	SubTopic    string           `yaml:"subTopic"`
	Speakers    []models.Speaker `yaml:"speakers"`
	Motions     []models.Motion  `yaml:"motions"`
}

// Countries returns the speakers' countries in speaking order
func (r Record) Countries() []string {
	countries := make([]string, 0, len(r.Speakers))
	for _, s := range r.Speakers {
		countries = append(countries, s.Country)
	}
	return countries
}

func (r Record) clone() Record {
	r.Speakers = slices.Clone(r.Speakers)
	r.Motions = slices.Clone(r.Motions)
	return r
}

// Provider looks up committee records by code
type Provider interface {
	Lookup(code string) (Record, bool)
	Codes() []string
}

// Catalog is a Provider backed by a YAML document
type Catalog struct {
	records map[string]Record
	codes   []string
}

type catalogFile struct {
	Committees []Record `yaml:"committees"`
}

// Default returns the catalog compiled into the binary
func Default() (*Catalog, error) {
	return Parse(defaultData)
}

// LoadFile reads a catalog from a YAML file on disk
func LoadFile(path string) (*Catalog, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading committees file: %w", err)
	}
	return Parse(buf)
}

// Parse decodes and validates a catalog document
func Parse(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing committees: %w", err)
	}
	if len(f.Committees) == 0 {
		return nil, ErrNoCommittees
	}

	c := &Catalog{records: make(map[string]Record, len(f.Committees))}
	for _, rec := range f.Committees {
		rec.Code = Normalize(rec.Code)
		if err := validate(rec); err != nil {
			return nil, err
		}
		if _, dup := c.records[rec.Code]; dup {
			return nil, fmt.Errorf("committee %s: duplicate code", rec.Code)
		}
		c.records[rec.Code] = rec
		c.codes = append(c.codes, rec.Code)
	}
	return c, nil
}

func validate(rec Record) error {
	if rec.Code == "" {
		return errors.New("committee with empty code")
	}
	if rec.DisplayName == "" {
		return fmt.Errorf("committee %s: missing displayName", rec.Code)
	}
	for _, s := range rec.Speakers {
		if s.AllottedSeconds < 0 {
			return fmt.Errorf("committee %s: speaker %q has negative allottedSeconds", rec.Code, s.Name)
		}
	}
	seen := make(map[int64]bool, len(rec.Motions))
	passed := 0
	for _, m := range rec.Motions {
		if seen[m.ID] {
			return fmt.Errorf("committee %s: duplicate motion id %d", rec.Code, m.ID)
		}
		seen[m.ID] = true
		if m.DurationMinutes < 0 {
			return fmt.Errorf("committee %s: motion %d has negative duration", rec.Code, m.ID)
		}
		if m.Passed {
			passed++
		}
	}
	if passed > 1 {
		return fmt.Errorf("committee %s: more than one passed motion", rec.Code)
	}
	return nil
}

// Lookup returns a copy of the record for code, matched case-insensitively
func (c *Catalog) Lookup(code string) (Record, bool) {
	rec, ok := c.records[Normalize(code)]
	if !ok {
		return Record{}, false
	}
	return rec.clone(), true
}

// Codes returns the committee codes in document order
func (c *Catalog) Codes() []string {
	return slices.Clone(c.codes)
}

// Normalize folds a committee code to its canonical upper-case form
func Normalize(code string) string {
	return cases.Upper(language.Und).String(strings.TrimSpace(code))
}
