package cli

import (
	"bytes"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2/smf"
)

var flagMinNotes int

func init() {
	midiCmd.Flags().IntVar(&flagMinNotes, "min-notes", 2, "minimum simultaneous notes to report")
	rootCmd.AddCommand(midiCmd)
}

var midiCmd = &cobra.Command{
	Use:   "midi <file.mid>",
	Short: "Identify the chords sounding in a MIDI file",
	Long: `Walk a standard MIDI file and identify each distinct set of
simultaneously sounding notes.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading %s: %w", args[0], err)
		}
		s, err := smf.ReadFrom(bytes.NewReader(data))
		if err != nil {
			return fmt.Errorf("parsing %s: %w", args[0], err)
		}

		id, err := newIdentifier()
		if err != nil {
			return err
		}

		for _, snap := range extractSnapshots(s, flagMinNotes) {
			res := id.Identify(snap.notes)
			if res.Error != nil {
				continue
			}
			fmt.Printf("%8dms  %s\n", snap.offsetMS, res.FullDisplayName)
		}
		return nil
	},
}

// noteEvent is a flattened note-on/off with its absolute time in
// microseconds
type noteEvent struct {
	offsetMicros int64
	note         int
	off          bool
}

// snapshot is one distinct set of simultaneously sounding notes
type snapshot struct {
	offsetMS int64
	notes    []int
}

// extractSnapshots flattens all tracks into a single timeline of note
// events and records the pressed set after every onset. Consecutive
// identical sets collapse to one snapshot.
func extractSnapshots(s *smf.SMF, minNotes int) []snapshot {
	var events []noteEvent
	for _, track := range s.Tracks {
		var absTicks int64
		for _, ev := range track {
			absTicks += int64(ev.Delta)
			var channel, key, velocity uint8
			switch {
			case ev.Message.GetNoteOn(&channel, &key, &velocity):
				// running-status note-off is a note-on with velocity zero
				events = append(events, noteEvent{
					offsetMicros: s.TimeAt(absTicks),
					note:         int(key),
					off:          velocity == 0,
				})
			case ev.Message.GetNoteOff(&channel, &key, &velocity):
				events = append(events, noteEvent{
					offsetMicros: s.TimeAt(absTicks),
					note:         int(key),
					off:          true,
				})
			}
		}
	}

	// releases before onsets at the same instant, so retriggered notes do
	// not read as gaps
	sort.Slice(events, func(i, j int) bool {
		if events[i].offsetMicros != events[j].offsetMicros {
			return events[i].offsetMicros < events[j].offsetMicros
		}
		return events[i].off && !events[j].off
	})

	pressed := make(map[int]bool)
	var snaps []snapshot
	var lastKey string
	for _, ev := range events {
		if ev.off {
			delete(pressed, ev.note)
			continue
		}
		pressed[ev.note] = true
		if len(pressed) < minNotes {
			continue
		}

		notes := make([]int, 0, len(pressed))
		for n := range pressed {
			notes = append(notes, n)
		}
		sort.Ints(notes)

		key := fmt.Sprint(notes)
		if key == lastKey {
			continue
		}
		lastKey = key
		snaps = append(snaps, snapshot{offsetMS: ev.offsetMicros / 1000, notes: notes})
	}
	return snaps
}
