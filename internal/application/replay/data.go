package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// Version is written into every recording
const Version = "2.0"

// ErrEmpty is returned when saving a recording without frames
var ErrEmpty = errors.New("replay: no frames")

// FrameInput records the input and elapsed time of a single step
type FrameInput struct {
	F  int     `json:"f"`           // Frame number
	L  bool    `json:"l,omitempty"` // Left
	R  bool    `json:"r,omitempty"` // Right
	J  bool    `json:"j,omitempty"` // Jump
	A  bool    `json:"a,omitempty"` // Action
	S  bool    `json:"s,omitempty"` // Respawned before the step
	DT float64 `json:"dt"`          // Step seconds
}

// ReplayData contains all data needed to replay a session
type ReplayData struct {
	Version   string       `json:"version"`
	Stage     string       `json:"stage"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

// Encode writes data as indented JSON
func Encode(w io.Writer, data ReplayData) error {
	if len(data.Frames) == 0 {
		return ErrEmpty
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}
	return nil
}

// Decode reads replay JSON
func Decode(r io.Reader) (*ReplayData, error) {
	var data ReplayData
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	return &data, nil
}

// SaveReplay writes data to filename
func SaveReplay(filename string, data ReplayData) error {
	if len(data.Frames) == 0 {
		return ErrEmpty
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return Encode(file, data)
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return Decode(file)
}
