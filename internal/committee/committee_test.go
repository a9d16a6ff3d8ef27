package committee

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaronzipp/mun-display/internal/models"
)

func TestDefaultCatalog(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.Equal(t, []string{"UNSC", "UNGA", "WHO", "UNHRC", "UNEP"}, c.Codes())

	rec, ok := c.Lookup("UNSC")
	require.True(t, ok)
	assert.Equal(t, "United Nations Security Council", rec.DisplayName)
	assert.Equal(t, "Cybersecurity Threats", rec.SubTopic)
	require.Len(t, rec.Speakers, 3)
	assert.Equal(t, models.Speaker{Name: "Delegate of USA", Country: "USA", AllottedSeconds: 120}, rec.Speakers[0])
	require.Len(t, rec.Motions, 3)
	assert.Equal(t, models.KindFormalDebate, rec.Motions[0].Kind)
	assert.Equal(t, 10, rec.Motions[0].DurationMinutes)
	assert.False(t, rec.Motions[0].Passed)
	assert.Empty(t, rec.Motions[1].Topic)
}

func TestLookupIsCaseInsensitive(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	for _, code := range []string{"who", "Who", " WHO "} {
		rec, ok := c.Lookup(code)
		require.True(t, ok, code)
		assert.Equal(t, "WHO", rec.Code)
	}

	_, ok := c.Lookup("NATO")
	assert.False(t, ok)
}

func TestLookupReturnsCopy(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	rec, _ := c.Lookup("UNGA")
	rec.Speakers[0].Name = "changed"
	rec.Motions[0].Passed = true

	again, _ := c.Lookup("UNGA")
	assert.Equal(t, "Delegate of Brazil", again.Speakers[0].Name)
	assert.False(t, again.Motions[0].Passed)
}

func TestCountries(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	rec, _ := c.Lookup("UNEP")
	assert.Equal(t, []string{"Norway", "Indonesia", "Costa Rica"}, rec.Countries())
}

func TestParseValidation(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"empty", "committees: []", "no committees"},
		{"duplicate code", "committees:\n  - {code: a, displayName: A}\n  - {code: A, displayName: B}", "duplicate code"},
		{"missing name", "committees:\n  - {code: a}", "missing displayName"},
		{"negative seconds", "committees:\n  - code: a\n    displayName: A\n    speakers: [{name: x, country: y, allottedSeconds: -1}]", "negative allottedSeconds"},
		{"duplicate motion", "committees:\n  - code: a\n    displayName: A\n    motions: [{id: 1, kind: k}, {id: 1, kind: k}]", "duplicate motion id"},
		{"two passed motions", "committees:\n  - code: a\n    displayName: A\n    motions: [{id: 1, kind: k, passed: true}, {id: 2, kind: k, passed: true}]", "more than one passed motion"},
		{"bad yaml", "committees: [", "parsing committees"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParseAcceptsOnePassedMotion(t *testing.T) {
	doc := "committees:\n  - code: a\n    displayName: A\n    motions: [{id: 1, kind: k, passed: true}, {id: 2, kind: k}]"
	c, err := Parse([]byte(doc))
	require.NoError(t, err)
	rec, ok := c.Lookup("A")
	require.True(t, ok)
	assert.True(t, rec.Motions[0].Passed)
	assert.False(t, rec.Motions[1].Passed)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "committees.yaml")
	doc := "committees:\n  - code: disec\n    displayName: Disarmament\n    topic: Arms\n    subTopic: Drones\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"DISEC"}, c.Codes())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
