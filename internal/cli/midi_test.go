package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

func TestExtractSnapshots(t *testing.T) {
	assert := assert.New(t)

	var tr smf.Track
	tr.Add(0, smf.MetaTempo(120))
	tr.Add(0, midi.NoteOn(0, 60, 100))
	tr.Add(0, midi.NoteOn(0, 64, 100))
	tr.Add(0, midi.NoteOn(0, 67, 100))
	tr.Add(960, midi.NoteOff(0, 60))
	tr.Add(0, midi.NoteOff(0, 64))
	tr.Add(0, midi.NoteOff(0, 67))
	tr.Add(0, midi.NoteOn(0, 65, 100))
	tr.Add(0, midi.NoteOn(0, 69, 100))
	tr.Add(0, midi.NoteOn(0, 72, 100))
	tr.Close(480)

	s := smf.New()
	assert.NoError(s.Add(tr))

	snaps := extractSnapshots(s, 3)
	if assert.Len(snaps, 2) {
		assert.Equal([]int{60, 64, 67}, snaps[0].notes)
		assert.Equal(int64(0), snaps[0].offsetMS)
		assert.Equal([]int{65, 69, 72}, snaps[1].notes)
		// one quarter note at 120bpm
		assert.Equal(int64(500), snaps[1].offsetMS)
	}
}

func TestExtractSnapshotsCollapsesRepeats(t *testing.T) {
	assert := assert.New(t)

	var tr smf.Track
	tr.Add(0, smf.MetaTempo(120))
	tr.Add(0, midi.NoteOn(0, 60, 100))
	tr.Add(0, midi.NoteOn(0, 64, 100))
	// retrigger the third while the others hold
	tr.Add(480, midi.NoteOn(0, 64, 0)) // velocity 0 reads as note-off
	tr.Add(0, midi.NoteOn(0, 64, 100))
	tr.Close(480)

	s := smf.New()
	assert.NoError(s.Add(tr))

	snaps := extractSnapshots(s, 2)
	if assert.Len(snaps, 1) {
		assert.Equal([]int{60, 64}, snaps[0].notes)
	}
}
