package roster

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakechorley/weekshift/pkg/core/scheduler"
)

func TestParseRankedShifts_ArrowSeparator(t *testing.T) {
	shifts := ParseRankedShifts("morning > evening")
	assert.Equal(t, []scheduler.Shift{scheduler.ShiftMorning, scheduler.ShiftEvening}, shifts)
}

func TestParseRankedShifts_CommaSeparator(t *testing.T) {
	shifts := ParseRankedShifts("evening,afternoon,morning")
	assert.Equal(t, []scheduler.Shift{
		scheduler.ShiftEvening, scheduler.ShiftAfternoon, scheduler.ShiftMorning,
	}, shifts)
}

func TestParseRankedShifts_MixedCaseAndWhitespace(t *testing.T) {
	shifts := ParseRankedShifts("  Morning >  EVENING ")
	assert.Equal(t, []scheduler.Shift{scheduler.ShiftMorning, scheduler.ShiftEvening}, shifts)
}

func TestParseRankedShifts_DropsUnknownTokens(t *testing.T) {
	shifts := ParseRankedShifts("morning > night > evening")
	assert.Equal(t, []scheduler.Shift{scheduler.ShiftMorning, scheduler.ShiftEvening}, shifts)
}

func TestParseRankedShifts_DropsDuplicatesKeepingFirst(t *testing.T) {
	shifts := ParseRankedShifts("evening > morning > evening")
	assert.Equal(t, []scheduler.Shift{scheduler.ShiftEvening, scheduler.ShiftMorning}, shifts)
}

func TestParseRankedShifts_Empty(t *testing.T) {
	assert.Empty(t, ParseRankedShifts(""))
	assert.Empty(t, ParseRankedShifts("  ,  > "))
}

func TestParse_ValidRoster(t *testing.T) {
	data := []byte(`
workers:
  - name: Alice
    preferences:
      monday: "morning > evening"
      friday: "afternoon"
  - name: Bob
`)

	workers, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, workers, 2)

	alice := workers[0]
	assert.Equal(t, "Alice", alice.Name)
	assert.Equal(t, []scheduler.Shift{scheduler.ShiftMorning, scheduler.ShiftEvening}, alice.Preferences[0])
	assert.Equal(t, []scheduler.Shift{scheduler.ShiftAfternoon}, alice.Preferences[4])
	assert.Empty(t, alice.Preferences[1], "Days without an entry have no preference")

	bob := workers[1]
	assert.Equal(t, "Bob", bob.Name)
	assert.Zero(t, bob.DaysAssigned)
}

func TestParse_DuplicateName(t *testing.T) {
	data := []byte(`
workers:
  - name: Alice
  - name: Alice
`)

	_, err := Parse(data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate worker name")
}

func TestParse_UnknownDayKey(t *testing.T) {
	data := []byte(`
workers:
  - name: Alice
    preferences:
      funday: "morning"
`)

	_, err := Parse(data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown day")
}

func TestParse_EmptyRoster(t *testing.T) {
	_, err := Parse([]byte("workers: []"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("workers: ["))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse roster file")
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load("/nonexistent/roster.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read roster file")
}

func TestLoad_RoundTripThroughFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "roster.yaml")

	rng := rand.New(rand.NewSource(13))
	sample := Sample(rng)

	data, err := MarshalWorkers(sample)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0644))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Len(t, loaded, len(sample))

	byName := make(map[string]*scheduler.Worker)
	for _, w := range loaded {
		byName[w.Name] = w
	}
	for _, want := range sample {
		got, ok := byName[want.Name]
		require.True(t, ok, "missing worker %s", want.Name)
		assert.Equal(t, want.Preferences, got.Preferences)
	}
}

func TestSample_NineWorkersWithFullRankings(t *testing.T) {
	workers := Sample(rand.New(rand.NewSource(1)))

	require.Len(t, workers, 9)
	for _, w := range workers {
		for day := 0; day < scheduler.DaysPerWeek; day++ {
			assert.Len(t, w.Preferences[day], 3, "%s day %d should carry a full ranking", w.Name, day)
		}
	}
}

func TestSample_DeterministicWithFixedSeed(t *testing.T) {
	first := Sample(rand.New(rand.NewSource(77)))
	second := Sample(rand.New(rand.NewSource(77)))

	for i := range first {
		assert.Equal(t, first[i].Preferences, second[i].Preferences)
	}
}
