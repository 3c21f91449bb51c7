package main

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/robalobadob/absurdle/internal/console"
)

var (
	playMaxGuesses int
	playPlain      bool
	playKeyboard   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Plays Absurdle on stdin/stdout. Type one guess per line; the answer is
chosen only when nothing else is left. Press enter after a game to play
again, Ctrl-D to quit.

Output falls back to plain g/y/- patterns when stdout is not a terminal.`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVarP(&playMaxGuesses, "max-guesses", "n", 0, "guess budget (overrides MAX_GUESSES)")
	playCmd.Flags().BoolVar(&playPlain, "plain", false, "print g/y/- patterns instead of colored tiles")
	playCmd.Flags().BoolVar(&playKeyboard, "keyboard", true, "show the letter keyboard after each guess")
	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	if playMaxGuesses != 0 {
		cfg.MaxGuesses = playMaxGuesses
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	vocab, err := loadVocabulary()
	if err != nil {
		return err
	}

	opts := console.Options{
		MaxGuesses: cfg.MaxGuesses,
		Plain:      playPlain || !stdoutIsTerminal(),
		Keyboard:   playKeyboard,
	}
	return console.New(vocab, cmd.InOrStdin(), cmd.OutOrStdout(), opts).Run(cmd.Context())
}

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
