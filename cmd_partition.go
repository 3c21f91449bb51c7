package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/robalobadob/absurdle/internal/absurdle"
	"github.com/robalobadob/absurdle/internal/words"
)

var (
	partitionJSON bool
	partitionShow string
)

var partitionCmd = &cobra.Command{
	Use:   "partition GUESS [WORD...]",
	Short: "Partition candidates for one guess and show the bucket kept",
	Long: `Groups the candidate words by the feedback GUESS would receive and
prints every bucket in the order it was first produced, marking the one
the adversary keeps. Without WORDs the full solution list is used;
repeated WORDs count once.

--show PATTERN lists the members of that bucket instead of the kept one.`,
	Example: `  absurdle partition terns
  absurdle partition mambo jazzy offal wally loyal --json
  absurdle partition terns --show=-yyg-`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPartition,
}

func init() {
	partitionCmd.Flags().BoolVar(&partitionJSON, "json", false, "output as JSON")
	partitionCmd.Flags().StringVar(&partitionShow, "show", "", "list the bucket for this g/y/- pattern")
	rootCmd.AddCommand(partitionCmd)
}

type partitionBucket struct {
	Pattern absurdle.Pattern `json:"pattern"`
	Size    int              `json:"size"`
}

type partitionOutput struct {
	Guess     string            `json:"guess"`
	Pattern   absurdle.Pattern  `json:"pattern"`
	Survivors []string          `json:"survivors"`
	Total     int               `json:"total"`
	Buckets   []partitionBucket `json:"buckets"`
}

func runPartition(cmd *cobra.Command, args []string) error {
	guess, candidates := args[0], args[1:]
	if len(candidates) == 0 {
		vocab, err := loadVocabulary()
		if err != nil {
			return err
		}
		candidates = vocab.Solutions()
	} else {
		for _, c := range candidates {
			if !words.IsAlpha(strings.ToLower(strings.TrimSpace(c))) {
				return fmt.Errorf("candidate %q: want letters a-z", c)
			}
		}
		candidates = words.Normalize(candidates)
	}

	table, err := absurdle.Analyze(guess, candidates)
	if err != nil {
		return err
	}
	best := table.Largest()
	sizes := table.Sizes()
	out := partitionOutput{
		Guess:     table.Guess(),
		Pattern:   best.Pattern,
		Survivors: best.Members,
		Total:     table.Total(),
	}
	for _, p := range table.Patterns() {
		out.Buckets = append(out.Buckets, partitionBucket{Pattern: p, Size: sizes[p]})
	}

	w := cmd.OutOrStdout()
	if partitionShow != "" {
		p, err := absurdle.ParsePattern(partitionShow)
		if err != nil {
			return err
		}
		b, ok := table.Bucket(p)
		if !ok {
			return fmt.Errorf("no candidate produces %q for guess %q", p.String(), table.Guess())
		}
		out.Pattern, out.Survivors = b.Pattern, b.Members
	}
	if partitionJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}
	label := "kept"
	if partitionShow != "" {
		label = "bucket"
	}
	printPartition(w, out, label)
	return nil
}

func printPartition(w io.Writer, out partitionOutput, label string) {
	fmt.Fprintf(w, "guess %q: %d candidates, %d buckets\n", out.Guess, out.Total, len(out.Buckets))
	for _, b := range out.Buckets {
		marker := " "
		if b.Pattern == out.Pattern {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %-*s %d\n", marker, len(out.Pattern), b.Pattern, b.Size)
	}
	fmt.Fprintf(w, "%s %q: %s\n", label, out.Pattern.String(), strings.Join(out.Survivors, " "))
}
