// Package rollcall tracks attendance while a committee takes roll.
package rollcall

// Tracker records which of a fixed list of countries are present
type Tracker struct {
	countries []string
	present   map[string]bool
}

// New creates a tracker for countries, keeping first-seen order and
// dropping duplicates. Everyone starts absent.
func New(countries []string) *Tracker {
	t := &Tracker{present: make(map[string]bool, len(countries))}
	seen := make(map[string]bool, len(countries))
	for _, c := range countries {
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		t.countries = append(t.countries, c)
	}
	return t
}

// Toggle flips the presence of country and returns the new value.
// Countries not on the list are ignored.
func (t *Tracker) Toggle(country string) bool {
	if !t.known(country) {
		return false
	}
	if t.present[country] {
		delete(t.present, country)
		return false
	}
	t.present[country] = true
	return true
}

// IsPresent reports whether country has been marked present
func (t *Tracker) IsPresent(country string) bool {
	return t.present[country]
}

// Present returns the present countries in roll order
func (t *Tracker) Present() []string {
	out := make([]string, 0, len(t.present))
	for _, c := range t.countries {
		if t.present[c] {
			out = append(out, c)
		}
	}
	return out
}

// Countries returns the full roll in order
func (t *Tracker) Countries() []string {
	return append([]string(nil), t.countries...)
}

func (t *Tracker) Count() int { return len(t.present) }
func (t *Tracker) Total() int { return len(t.countries) }

func (t *Tracker) known(country string) bool {
	for _, c := range t.countries {
		if c == country {
			return true
		}
	}
	return false
}
