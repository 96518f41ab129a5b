package enigma_test

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/PolarWolf314/enigma/internal/disks"
	"github.com/PolarWolf314/enigma/internal/enigma"
	kerrors "github.com/PolarWolf314/enigma/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T, configuration string) *enigma.Engine {
	t.Helper()
	e, err := enigma.New(configuration)
	require.NoError(t, err)
	return e
}

func TestNewUsesDefaultSetup(t *testing.T) {
	e := newEngine(t, "")
	assert.Equal(t, enigma.DefaultSetup, e.Setup())
	assert.Equal(t, []string{"A", "E", "B"}, e.Disks())
	assert.Equal(t, []int{12, 43, 27}, e.Offsets())
	assert.Equal(t, 5, e.WirePairs())
}

func TestConfigureChangesSetup(t *testing.T) {
	e := newEngine(t, "")
	require.NoError(t, e.Configure("a1,B2,c3,fD"))
	assert.Equal(t, "A1,B2,C3,fD", e.Setup())

	// Session state only changes on Reset.
	assert.Equal(t, []string{"A", "E", "B"}, e.Disks())

	require.NoError(t, e.Reset())
	assert.Equal(t, []string{"A", "B", "C"}, e.Disks())
	assert.Equal(t, []int{1, 2, 3}, e.Offsets())
	assert.Equal(t, 1, e.WirePairs())
}

func TestConfigureErrors(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		sentinel error
		contains string
	}{
		{"empty", "", kerrors.ErrEmptyConfig, "length"},
		{"too few disks", "A1,B2", kerrors.ErrTooFewDisks, "number of disks"},
		{"unknown disk", "A1,B2,Z4", kerrors.ErrUnknownDisk, "got Z"},
		{"offset too large", "A1,B2,C4000", kerrors.ErrOffsetOutOfRange, "got 4000"},
		{"offset above disk length", "A1,B2,C63", kerrors.ErrOffsetOutOfRange, "C63"},
		{"malformed token", "A1,B2,C3,abc", kerrors.ErrMalformedToken, "abc"},
		{"digit wire pair", "A1,B2,C3,a1b", kerrors.ErrMalformedToken, "a1b"},
		{"empty token", "A1,,B2", kerrors.ErrMalformedToken, `""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEngine(t, "")
			err := e.Configure(tt.value)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.sentinel), "expected %v, got %v", tt.sentinel, err)
			assert.Contains(t, strings.ToLower(err.Error()), strings.ToLower(tt.contains))
			assert.Equal(t, enigma.DefaultSetup, e.Setup(), "failed configure must not store anything")
		})
	}
}

func TestConfigureErrorCarriesToken(t *testing.T) {
	e := newEngine(t, "")
	err := e.Configure("A1,B2,Z4")

	var cfgErr *kerrors.ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "Z4", cfgErr.Token)
	assert.Equal(t, "configure", cfgErr.Phase)
	assert.Contains(t, err.Error(), `"A", "B", "C", "D", "E"`)
}

func TestResetErrors(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		sentinel error
		contains string
	}{
		// Configure allows an offset equal to the disk length; Reset does not.
		{"offset equal to disk length", "A1,B2,C62", kerrors.ErrInvalidOffset, "62"},
		{"wire conflict on first letter", "A1,B2,C3,ab,ac", kerrors.ErrWireConflict, `'a' is already connected to 'b'`},
		{"wire conflict on second letter", "A1,B2,C3,ab,cb", kerrors.ErrWireConflict, `'b' is already connected to 'a'`},
		{"two disks and a wire pair", "A1,B2,fD", kerrors.ErrInsufficientDisks, "found 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEngine(t, "")
			require.NoError(t, e.Configure(tt.value))

			err := e.Reset()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.sentinel)
			assert.Contains(t, err.Error(), tt.contains)

			// The previous session state survives a failed reset.
			assert.Equal(t, []string{"A", "E", "B"}, e.Disks())
		})
	}
}

func TestNewReportsResetErrors(t *testing.T) {
	_, err := enigma.New("A1,B2,C3,ab,ba")
	assert.ErrorIs(t, err, kerrors.ErrWireConflict)
}

func TestResetIsIdempotent(t *testing.T) {
	e := newEngine(t, "A32,E12,C44,fD,rs,Rv")
	before := e.Setup()
	require.NoError(t, e.Reset())
	require.NoError(t, e.Reset())
	assert.Equal(t, before, e.Setup())
	assert.Equal(t, []string{"A", "E", "C"}, e.Disks())
	assert.Equal(t, []int{32, 12, 44}, e.Offsets())
}

func TestConfigureClearsTransitionalCache(t *testing.T) {
	e := newEngine(t, "A1,B2,C3")
	e.Translate("abc")
	require.Positive(t, e.CachedTransitionalDisks())

	require.NoError(t, e.Reset())
	assert.Positive(t, e.CachedTransitionalDisks(), "reset keeps cached disks")

	require.NoError(t, e.Configure("A1,B2,C3"))
	assert.Zero(t, e.CachedTransitionalDisks())
}

func TestCustomDisks(t *testing.T) {
	set := disks.Default().Clone()
	require.NoError(t, set.Add(disks.Generate("F", rand.New(rand.NewSource(9)))))

	_, err := enigma.New("A1,B2,F3")
	require.ErrorIs(t, err, kerrors.ErrUnknownDisk)

	e, err := enigma.New("A1,B2,F3", enigma.WithDisks(set))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D", "E", "F"}, e.AvailableDisks())

	encoded, err := e.Encode("custom disk")
	require.NoError(t, err)
	decoded, err := e.Decode(encoded)
	require.NoError(t, err)
	assert.Equal(t, "custom disk", decoded)
}
