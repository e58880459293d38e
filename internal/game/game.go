// Package game implements a console number guessing game. The player has
// a fixed number of attempts to find a random number between 1 and 100.
package game

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"
)

const (
	// Min and Max bound the secret number, inclusive.
	Min = 1
	Max = 100

	// MaxAttempts is how many guesses a player gets.
	MaxAttempts = 5
)

// Outcome is the verdict on a single guess.
type Outcome int

const (
	TooLow Outcome = iota
	TooHigh
	Correct
)

// Session holds the state of one game round.
type Session struct {
	secret   int
	attempts int
}

// NewSession starts a round with a secret drawn from rng.
func NewSession(rng *rand.Rand) *Session {
	return &Session{secret: Min + rng.Intn(Max-Min+1)}
}

// NewSessionWithSecret starts a round with a known secret. Used by tests.
func NewSessionWithSecret(secret int) *Session {
	return &Session{secret: secret}
}

// Guess records one attempt and compares it against the secret.
func (s *Session) Guess(n int) Outcome {
	s.attempts++
	switch {
	case n < s.secret:
		return TooLow
	case n > s.secret:
		return TooHigh
	default:
		return Correct
	}
}

// Attempts returns the number of guesses taken so far.
func (s *Session) Attempts() int { return s.attempts }

// Secret returns the number the player is after.
func (s *Session) Secret() int { return s.secret }

// Run plays a full round interactively, reading guesses from in and
// printing prompts and verdicts to out. It returns true when the player
// wins, and an error only when input ends before the round does.
func Run(rng *rand.Rand, in io.Reader, out io.Writer) (bool, error) {
	fmt.Fprintln(out, "Welcome to the Number Guessing Game!")
	fmt.Fprintf(out, "You have %d attempts to guess the number between %d and %d.\n", MaxAttempts, Min, Max)

	session := NewSession(rng)
	scanner := bufio.NewScanner(in)

	for attempt := 1; attempt <= MaxAttempts; attempt++ {
		fmt.Fprintf(out, "Attempt %d\n", attempt)

		guess, err := readGuess(scanner, out)
		if err != nil {
			return false, err
		}

		switch session.Guess(guess) {
		case TooLow:
			fmt.Fprintln(out, "Too low!")
		case TooHigh:
			fmt.Fprintln(out, "Too high!")
		case Correct:
			fmt.Fprintf(out, "Congratulations! You've guessed the number %d correctly in %d attempts.\n", session.Secret(), attempt)
			return true, nil
		}
	}

	fmt.Fprintf(out, "Sorry, you've used all your attempts. The correct number was %d.\n", session.Secret())
	return false, nil
}

// readGuess prompts until it gets an integer within range.
func readGuess(scanner *bufio.Scanner, out io.Writer) (int, error) {
	for {
		fmt.Fprintf(out, "Enter your guess (between %d and %d): ", Min, Max)

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return 0, err
			}
			return 0, io.ErrUnexpectedEOF
		}

		guess, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err != nil {
			fmt.Fprintln(out, "Invalid input. Please enter a valid integer.")
			continue
		}
		if guess < Min || guess > Max {
			fmt.Fprintf(out, "Please enter a number within the range of %d to %d.\n", Min, Max)
			continue
		}
		return guess, nil
	}
}
