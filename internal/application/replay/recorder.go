package replay

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/younwookim/pitch/internal/application/system"
)

// ErrEmptyRecording is returned when saving a recorder that holds no frames
var ErrEmptyRecording = errors.New("no frames to save")

// Recorder handles input recording for replay
type Recorder struct {
	data      ReplayData
	recording bool
	frame     int
}

// NewRecorder creates a new recorder with seed for deterministic replay.
// Each recording gets a fresh match ID.
func NewRecorder(seed int64, formation string, aiOnly bool) *Recorder {
	return &Recorder{
		data: ReplayData{
			Version:   Version,
			MatchID:   uuid.NewString(),
			Seed:      seed,
			Formation: formation,
			AIOnly:    aiOnly,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]FrameInput, 0, 3600), // Pre-allocate for ~1 minute at 60fps
		},
		recording: true,
		frame:     0,
	}
}

// RecordFrame records a single frame's input
func (r *Recorder) RecordFrame(input system.InputState) {
	if !r.recording {
		return
	}

	r.data.Frames = append(r.data.Frames, NewFrameInput(r.frame, input))
	r.frame++
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return ErrEmptyRecording
	}
	return SaveReplay(filename, r.data)
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// MatchID returns the identifier written into the replay header
func (r *Recorder) MatchID() string {
	return r.data.MatchID
}

// GenerateFilename names a replay after the current time and the match ID
func (r *Recorder) GenerateFilename(format Format) string {
	return fmt.Sprintf("match_%s_%s%s", time.Now().Format("20060102_150405"), r.data.MatchID[:8], format.Ext())
}
