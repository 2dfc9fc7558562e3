package replay

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/younwookim/pitch/internal/application/system"
)

// compressedExt marks a zstd-compressed replay, e.g. match.msgpack.zst
const compressedExt = ".zst"

// Version is the current replay format version
const Version = "2.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F  int  `json:"f" msgpack:"f"`                       // Frame number
	Fw bool `json:"fw,omitempty" msgpack:"fw,omitempty"` // Forward
	B  bool `json:"b,omitempty" msgpack:"b,omitempty"`   // Back
	L  bool `json:"l,omitempty" msgpack:"l,omitempty"`   // Left
	R  bool `json:"r,omitempty" msgpack:"r,omitempty"`   // Right
	K  bool `json:"k,omitempty" msgpack:"k,omitempty"`   // Kick
	Sw bool `json:"sw,omitempty" msgpack:"sw,omitempty"` // Switch
}

// NewFrameInput captures one tick of input
func NewFrameInput(frame int, in system.InputState) FrameInput {
	return FrameInput{
		F:  frame,
		Fw: in.Forward,
		B:  in.Back,
		L:  in.Left,
		R:  in.Right,
		K:  in.Kick,
		Sw: in.Switch,
	}
}

// Input expands a recorded frame back into match input
func (f FrameInput) Input() system.InputState {
	return system.InputState{
		Forward: f.Fw,
		Back:    f.B,
		Left:    f.L,
		Right:   f.R,
		Kick:    f.K,
		Switch:  f.Sw,
	}
}

// ReplayData contains all data needed to replay a match
type ReplayData struct {
	Version   string       `json:"version" msgpack:"version"`
	MatchID   string       `json:"matchId" msgpack:"matchId"`
	Seed      int64        `json:"seed" msgpack:"seed"`
	Formation string       `json:"formation" msgpack:"formation"`
	AIOnly    bool         `json:"aiOnly,omitempty" msgpack:"aiOnly,omitempty"`
	StartTime string       `json:"startTime" msgpack:"startTime"`
	Frames    []FrameInput `json:"frames" msgpack:"frames"`
}

// Format is a replay file encoding
type Format int

const (
	FormatJSON Format = iota
	FormatMsgpack
)

// Ext returns the file extension for a format
func (f Format) Ext() string {
	if f == FormatMsgpack {
		return ".msgpack"
	}
	return ".json"
}

// FormatFor picks the encoding from a file extension, ignoring a trailing
// .zst. Anything other than .msgpack or .mp is JSON.
func FormatFor(filename string) Format {
	name := strings.ToLower(filename)
	name = strings.TrimSuffix(name, compressedExt)
	switch filepath.Ext(name) {
	case ".msgpack", ".mp":
		return FormatMsgpack
	default:
		return FormatJSON
	}
}

// Encode serializes replay data
func Encode(data ReplayData, format Format) ([]byte, error) {
	if format == FormatMsgpack {
		b, err := msgpack.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("failed to encode replay: %w", err)
		}
		return b, nil
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return nil, fmt.Errorf("failed to encode replay: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode parses replay data
func Decode(b []byte, format Format) (*ReplayData, error) {
	var data ReplayData
	var err error
	if format == FormatMsgpack {
		err = msgpack.Unmarshal(b, &data)
	} else {
		err = json.Unmarshal(b, &data)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	return &data, nil
}

// IsCompressed reports whether a replay file name asks for zstd compression
func IsCompressed(filename string) bool {
	return strings.EqualFold(filepath.Ext(filename), compressedExt)
}

func compress(b []byte) ([]byte, error) {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("failed to create compressor: %w", err)
	}
	defer enc.Close()
	return enc.EncodeAll(b, nil), nil
}

func decompress(b []byte) ([]byte, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create decompressor: %w", err)
	}
	defer dec.Close()
	out, err := dec.DecodeAll(b, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress replay: %w", err)
	}
	return out, nil
}

// SaveReplay writes replay data, encoded by the file extension
func SaveReplay(filename string, data ReplayData) error {
	b, err := Encode(data, FormatFor(filename))
	if err != nil {
		return err
	}
	if IsCompressed(filename) {
		if b, err = compress(b); err != nil {
			return err
		}
	}
	if err := os.WriteFile(filename, b, 0o644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// LoadReplay loads replay data from a file, decoded by the file extension
func LoadReplay(filename string) (*ReplayData, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	if IsCompressed(filename) {
		if b, err = decompress(b); err != nil {
			return nil, err
		}
	}
	return Decode(b, FormatFor(filename))
}
