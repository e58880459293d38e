package cmd

import (
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/luisesc/salesbridge/internal/game"
)

func newGuessCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guess",
		Short: "Play a number-guessing game in the console",
		Long: `Guess a randomly chosen number between 1 and 100 in at most five
attempts. After each guess the game tells you whether the secret number is
higher or lower.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rng := rand.New(rand.NewSource(time.Now().UnixNano()))
			_, err := game.Run(rng, os.Stdin, os.Stdout)
			return err
		},
	}
}
