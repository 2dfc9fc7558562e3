package replay

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/younwookim/pitch/internal/application/system"
)

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// ErrUnsupportedVersion is returned for replays from another major format version
var ErrUnsupportedVersion = errors.New("unsupported replay version")

// NewReplayer creates a new replayer from replay data. Only the major
// version has to match.
func NewReplayer(data ReplayData) (*Replayer, error) {
	if majorVersion(data.Version) != majorVersion(Version) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedVersion, data.Version)
	}
	return &Replayer{data: data}, nil
}

func majorVersion(v string) string {
	major, _, _ := strings.Cut(v, ".")
	return major
}

// GetInput returns the input for the current frame and advances
func (r *Replayer) GetInput() (system.InputState, bool) {
	if r.frame >= len(r.data.Frames) {
		return system.InputState{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++
	return fi.Input(), true
}

// Remaining returns the number of frames not yet played
func (r *Replayer) Remaining() int {
	return len(r.data.Frames) - r.frame
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Seed returns the seed used for the replay
func (r *Replayer) Seed() int64 {
	return r.data.Seed
}

// Formation returns the formation the match was played with
func (r *Replayer) Formation() string {
	return r.data.Formation
}

// MatchID returns the recorded match identifier
func (r *Replayer) MatchID() string {
	return r.data.MatchID
}

// AIOnly reports whether the recorded match had no human-controlled actor
func (r *Replayer) AIOnly() bool {
	return r.data.AIOnly
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// CreateTestReplayData creates replay data for testing (idle input)
func CreateTestReplayData(frames int) ReplayData {
	data := ReplayData{
		Version:   Version,
		MatchID:   "00000000-0000-0000-0000-000000000000",
		Seed:      12345,
		Formation: "433",
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]FrameInput, frames),
	}

	for i := 0; i < frames; i++ {
		data.Frames[i] = FrameInput{F: i}
	}

	return data
}
