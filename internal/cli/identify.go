package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chordial/chordial/identify"
)

var (
	flagBass int
	flagJSON bool
)

func init() {
	identifyCmd.Flags().IntVar(&flagBass, "bass", -1, "explicit bass MIDI note")
	identifyCmd.Flags().BoolVar(&flagJSON, "json", false, "emit the full result as JSON")
	rootCmd.AddCommand(identifyCmd)
}

var identifyCmd = &cobra.Command{
	Use:   "identify <note> [note...]",
	Short: "Identify one chord from MIDI note numbers",
	Long:  `Identify one chord from MIDI note numbers, e.g. "chordial identify 60 64 67".`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		notes, err := parseNotes(args)
		if err != nil {
			return err
		}

		id, err := newIdentifier()
		if err != nil {
			return err
		}

		var res identify.Result
		if flagBass >= 0 {
			res = id.IdentifyWithBass(notes, flagBass)
		} else {
			res = id.Identify(notes)
		}
		if res.Error != nil {
			return res.Error
		}

		if flagJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		}
		printResult(res)
		return nil
	},
}

func parseNotes(args []string) ([]int, error) {
	notes := make([]int, 0, len(args))
	for _, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("not a MIDI note number: %q", a)
		}
		notes = append(notes, n)
	}
	return notes, nil
}

func printResult(res identify.Result) {
	if !res.Matched() {
		fmt.Printf("%s  [%s]\n", res.ChordName, strings.Join(res.NoteNames, " "))
		return
	}
	fmt.Printf("%s  (%s, confidence %.2f)\n", res.FullDisplayName, res.ChordName, res.Confidence)
	fmt.Printf("  notes: %s\n", strings.Join(res.NoteNames, " "))
	if res.IsInversion {
		fmt.Printf("  inversion %d over %s\n", res.InversionOrdinal, res.BassNote)
	}
	for _, alt := range res.Alternatives {
		fmt.Printf("  also: %s (%.2f)\n", alt.ChordName, alt.Confidence)
	}
	for _, w := range res.Warnings {
		fmt.Printf("  warning: %s\n", w)
	}
}
