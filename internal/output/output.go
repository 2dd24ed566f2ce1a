// Package output writes the per-slot generation result as a compressed
// file the game client loads.
package output

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"

	"github.com/klauspost/compress/zstd"

	"github.com/KirkDiggler/aus-world/internal/errors"
	"github.com/KirkDiggler/aus-world/internal/world"
)

const (
	// Format names the file layout in the header line
	Format = "aus-slot"
	// Version is bumped on incompatible layout changes
	Version = 1

	// Extension is appended to every slot file name
	Extension = ".aus.zst"
)

// Header is the first line of a slot file
type Header struct {
	Format  string `json:"format"`
	Version int    `json:"version"`
}

// Placement is an item locked onto a location during generation
type Placement struct {
	Location string `json:"location"`
	Item     string `json:"item"`
	Player   int    `json:"player"`
}

// Slot is everything written for one player
type Slot struct {
	Generation *world.GenerationData `json:"generation"`
	SlotData   map[string]any        `json:"slot_data"`
	Locations  map[string]int64      `json:"locations"`
	Locked     []Placement           `json:"locked"`
}

var unsafeName = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// FileName returns the slot file name for a seed and player
func FileName(seedName string, player int, playerName string) string {
	return fmt.Sprintf("AP_%s_P%d_%s%s",
		unsafeName.ReplaceAllString(seedName, "_"),
		player,
		unsafeName.ReplaceAllString(playerName, "_"),
		Extension)
}

// WriteFile writes slot to path, creating parent directories
func WriteFile(path string, slot *Slot) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "failed to create output directory for %s", path)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", path)
	}

	if err := Write(f, slot); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "failed to close %s", path)
	}
	return nil
}

// Write encodes slot as a header line and a JSON body, zstd compressed
func Write(w io.Writer, slot *Slot) error {
	if slot == nil || slot.Generation == nil {
		return errors.InvalidArgument("slot with generation data is required")
	}

	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return errors.Wrap(err, "failed to create zstd writer")
	}

	bw := bufio.NewWriter(enc)
	if err := writeBody(bw, slot); err != nil {
		_ = enc.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		_ = enc.Close()
		return errors.Wrap(err, "failed to flush slot file")
	}
	if err := enc.Close(); err != nil {
		return errors.Wrap(err, "failed to finish zstd stream")
	}
	return nil
}

func writeBody(w io.Writer, slot *Slot) error {
	je := json.NewEncoder(w)
	if err := je.Encode(Header{Format: Format, Version: Version}); err != nil {
		return errors.Wrap(err, "failed to write header")
	}
	if err := je.Encode(slot); err != nil {
		return errors.Wrap(err, "failed to write slot")
	}
	return nil
}

// ReadFile reads a slot file written by WriteFile
func ReadFile(path string) (*Slot, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("slot file %s does not exist", path)
		}
		return nil, errors.Wrapf(err, "failed to open %s", path)
	}
	defer func() { _ = f.Close() }()

	return Read(f)
}

// Read decodes a slot written by Write
func Read(r io.Reader) (*Slot, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create zstd reader")
	}
	defer dec.Close()

	jd := json.NewDecoder(bufio.NewReader(dec))
	jd.UseNumber()

	var header Header
	if err := jd.Decode(&header); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid slot file header")
	}
	if header.Format != Format {
		return nil, errors.InvalidArgumentf("not a slot file: format %q", header.Format)
	}
	if header.Version != Version {
		return nil, errors.FailedPreconditionf("unsupported slot file version %d", header.Version).
			WithMeta("version", header.Version)
	}

	var slot Slot
	if err := jd.Decode(&slot); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid slot file body")
	}
	for k, v := range slot.SlotData {
		if n, ok := v.(json.Number); ok {
			if i, err := n.Int64(); err == nil {
				slot.SlotData[k] = int(i)
			} else if f, err := n.Float64(); err == nil {
				slot.SlotData[k] = f
			}
		}
	}
	return &slot, nil
}
