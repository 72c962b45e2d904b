package main

import (
	"bufio"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pickone/faceoff/internal/engine"
)

// newPlayCmd is the local shape: one decision-maker, no network, no room.
// Each duel resolves the instant a choice is made.
func newPlayCmd() *cobra.Command {
	var (
		shuffle bool
		pairs   int
	)

	cmd := &cobra.Command{
		Use:   "play <items-file>",
		Short: "Run a local tournament from a newline-delimited item list.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := loadItems(args[0])
			if err != nil {
				return err
			}
			if shuffle || pairs > 0 {
				shuffleItems(items)
			}
			if pairs > 0 && len(items) > 2*pairs {
				items = items[:2*pairs]
			}
			return play(cmd.InOrStdin(), cmd.OutOrStdout(), items)
		},
	}

	cmd.Flags().BoolVar(&shuffle, "shuffle", true, "shuffle items before pairing")
	cmd.Flags().IntVar(&pairs, "pairs", 0, "sample enough items for this many first-round duels (0 plays the whole list)")

	return cmd
}

// loadItems reads the item catalog: one display string per line, blanks
// skipped.
func loadItems(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var items []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			items = append(items, line)
		}
	}
	return items, nil
}

func shuffleItems(items []string) {
	rand.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
}

func play(in io.Reader, out io.Writer, items []string) error {
	t := engine.New(items)
	judge := engine.NewImmediateChoice(engine.Duel{})
	scanner := bufio.NewScanner(in)
	round := 0

	for !t.Finished() {
		d, ok := t.CurrentDuel()
		if !ok {
			break
		}
		if t.RoundNumber() != round {
			round = t.RoundNumber()
			fmt.Fprintf(out, "\nRound %d\n", round)
		}

		judge.Reset(d)
		fmt.Fprintf(out, "\n  [1] %s\n  [2] %s\n> ", d.Left, d.Right)
		for !judge.Decided(nil) {
			if !scanner.Scan() {
				if err := scanner.Err(); err != nil {
					return err
				}
				return fmt.Errorf("input ended before a champion was decided")
			}
			var choice string
			switch strings.TrimSpace(scanner.Text()) {
			case "1":
				choice = d.Left
			case "2":
				choice = d.Right
			default:
				fmt.Fprint(out, "pick 1 or 2\n> ")
				continue
			}
			if err := judge.Cast("local", choice); err != nil {
				return err
			}
		}

		winner, err := judge.Winner(nil)
		if err != nil {
			return err
		}
		if err := t.Resolve(winner); err != nil {
			return err
		}
	}

	if champion, ok := t.Champion(); ok {
		fmt.Fprintf(out, "\nChampion: %s\n", champion)
	} else {
		fmt.Fprintln(out, "\nNo champion: the item list was empty.")
	}
	return nil
}
