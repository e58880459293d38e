package game

import (
	"bytes"
	"io"
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionGuess(t *testing.T) {
	s := NewSessionWithSecret(42)

	assert.Equal(t, TooLow, s.Guess(10))
	assert.Equal(t, TooHigh, s.Guess(80))
	assert.Equal(t, Correct, s.Guess(42))
	assert.Equal(t, 3, s.Attempts())
}

func TestNewSessionSecretInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		s := NewSession(rng)
		assert.GreaterOrEqual(t, s.Secret(), Min)
		assert.LessOrEqual(t, s.Secret(), Max)
	}
}

// seededRNG returns an rng and the secret its first session will draw.
func seededRNG(t *testing.T) (*rand.Rand, int) {
	t.Helper()
	secret := NewSession(rand.New(rand.NewSource(7))).Secret()
	return rand.New(rand.NewSource(7)), secret
}

func TestRunWin(t *testing.T) {
	rng, secret := seededRNG(t)
	in := strings.NewReader(strings.Join([]string{"1", "100", itoa(secret)}, "\n") + "\n")
	var out bytes.Buffer

	won, err := Run(rng, in, &out)

	require.NoError(t, err)
	assert.True(t, won)
	assert.Contains(t, out.String(), "Too low!")
	assert.Contains(t, out.String(), "Too high!")
	assert.Contains(t, out.String(), "Congratulations!")
	assert.Contains(t, out.String(), "in 3 attempts")
}

func TestRunLose(t *testing.T) {
	rng, secret := seededRNG(t)
	// Five guaranteed misses: pick the one bound the secret is not.
	miss := itoa(Min)
	if secret == Min {
		miss = itoa(Max)
	}
	in := strings.NewReader(strings.Repeat(miss+"\n", MaxAttempts))
	var out bytes.Buffer

	won, err := Run(rng, in, &out)

	require.NoError(t, err)
	assert.False(t, won)
	assert.Contains(t, out.String(), "Sorry, you've used all your attempts.")
	assert.Contains(t, out.String(), itoa(secret))
}

func TestRunRejectsBadInput(t *testing.T) {
	rng, secret := seededRNG(t)
	in := strings.NewReader("abc\n0\n101\n" + itoa(secret) + "\n")
	var out bytes.Buffer

	won, err := Run(rng, in, &out)

	require.NoError(t, err)
	assert.True(t, won)
	assert.Contains(t, out.String(), "Invalid input. Please enter a valid integer.")
	assert.Contains(t, out.String(), "Please enter a number within the range of 1 to 100.")
	// Bad input does not burn attempts.
	assert.Contains(t, out.String(), "in 1 attempts")
}

func TestRunInputEndsEarly(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	var out bytes.Buffer

	won, err := Run(rng, strings.NewReader(""), &out)

	assert.False(t, won)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func itoa(n int) string { return strconv.Itoa(n) }
