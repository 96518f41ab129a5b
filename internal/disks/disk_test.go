package disks

import (
	"errors"
	"math/rand"
	"testing"

	kerrors "github.com/PolarWolf314/enigma/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinDisksAreInvolutions(t *testing.T) {
	for _, name := range Default().Names() {
		d, ok := Default().Get(name)
		require.True(t, ok)
		t.Run(name, func(t *testing.T) {
			require.NoError(t, d.Validate())
			assert.Equal(t, Length, d.Len())
			for _, c := range Alphabet {
				v, ok := d.Lookup(c)
				require.True(t, ok)
				assert.NotEqual(t, c, v, "fixed point at %q", c)
				back, _ := d.Lookup(v)
				assert.Equal(t, c, back)
			}
		})
	}
}

func TestDefaultSetNames(t *testing.T) {
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, Default().Names())
}

func TestKeyOrderPutsDigitsFirst(t *testing.T) {
	keys := DiskA.Keys()
	assert.Equal(t, []rune("0123456789"), keys[:10])
	assert.Equal(t, 'Q', keys[10])
	assert.Equal(t, 'M', keys[11])

	values := DiskA.Values()
	assert.Equal(t, 'y', values[0])
	assert.Equal(t, 'H', values[1])
}

func TestParseReordersDigits(t *testing.T) {
	d := Generate("X", rand.New(rand.NewSource(7)))
	keys := d.Keys()
	assert.Equal(t, []rune("0123456789"), keys[:10])

	again, err := Parse("X", d.Pairs())
	require.NoError(t, err)
	assert.Equal(t, d.Keys(), again.Keys())
	assert.Equal(t, d.Values(), again.Values())
}

func TestParseRejectsMalformedTables(t *testing.T) {
	tests := []struct {
		name  string
		pairs string
	}{
		{"odd length", "abb"},
		{"too short", "abba"},
		{"fixed point", "aa" + DiskA.Pairs()[2:]},
		{"duplicate key", "0y0y" + DiskA.Pairs()[4:]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse("Z", tt.pairs)
			require.Error(t, err)
			assert.True(t, errors.Is(err, kerrors.ErrInvalidDisk))
		})
	}
}

func TestParseRejectsNonInvolution(t *testing.T) {
	// Swap the targets of '0' and '1' without fixing their partners.
	pairs := []rune(DiskA.Pairs())
	pairs[1], pairs[3] = pairs[3], pairs[1]

	_, err := Parse("Z", string(pairs))
	assert.ErrorIs(t, err, kerrors.ErrInvalidDisk)
}

func TestMustParsePanics(t *testing.T) {
	assert.Panics(t, func() { MustParse("Z", "ab") })
}

func TestGenerateIsDeterministicForSeed(t *testing.T) {
	a := Generate("F", rand.New(rand.NewSource(42)))
	b := Generate("F", rand.New(rand.NewSource(42)))
	require.NoError(t, a.Validate())
	assert.Equal(t, a.Pairs(), b.Pairs())
	assert.Equal(t, "F", a.Name())
}

func TestSetCloneAndAdd(t *testing.T) {
	set := Default().Clone()
	require.NoError(t, set.Add(Generate("F", rand.New(rand.NewSource(1)))))
	assert.Equal(t, 6, set.Len())
	assert.Equal(t, 5, Default().Len())

	_, ok := Default().Get("F")
	assert.False(t, ok)

	err := set.Add(Generate("A", rand.New(rand.NewSource(2))))
	assert.ErrorIs(t, err, kerrors.ErrDuplicateDisk)

	assert.Error(t, Default().Add(Generate("G", rand.New(rand.NewSource(3)))))
}

func TestIsAlphanumeric(t *testing.T) {
	for _, c := range Alphabet {
		assert.True(t, IsAlphanumeric(c))
	}
	for _, c := range " !+/=-_é\n" {
		assert.False(t, IsAlphanumeric(c))
	}
	assert.True(t, IsLetter('q'))
	assert.False(t, IsLetter('7'))
}
