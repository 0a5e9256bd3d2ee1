package world

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// saveFile is the on-disk JSON shape: dimensions plus the full block mapping
// as "x,y" -> type-name pairs. The whole world is written and read at once;
// there is no versioning or partial persistence.
type saveFile struct {
	Width  int               `json:"width"`
	Height int               `json:"height"`
	Blocks map[string]string `json:"blocks"`
}

func coordKey(c Coord) string {
	return strconv.Itoa(c.X) + "," + strconv.Itoa(c.Y)
}

func parseCoordKey(key string) (Coord, error) {
	parts := strings.SplitN(key, ",", 2)
	if len(parts) != 2 {
		return Coord{}, fmt.Errorf("world: malformed coordinate key %q", key)
	}
	x, err := strconv.Atoi(parts[0])
	if err != nil {
		return Coord{}, fmt.Errorf("world: malformed coordinate key %q: %w", key, err)
	}
	y, err := strconv.Atoi(parts[1])
	if err != nil {
		return Coord{}, fmt.Errorf("world: malformed coordinate key %q: %w", key, err)
	}
	return Coord{X: x, Y: y}, nil
}

// MarshalJSON serializes the world wholesale.
func (w *World) MarshalJSON() ([]byte, error) {
	sf := saveFile{
		Width:  w.width,
		Height: w.height,
		Blocks: make(map[string]string, len(w.blocks)),
	}
	for c, b := range w.blocks {
		sf.Blocks[coordKey(c)] = b.String()
	}
	return json.Marshal(sf)
}

// UnmarshalJSON replaces the world contents with the serialized state.
func (w *World) UnmarshalJSON(data []byte) error {
	var sf saveFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return fmt.Errorf("world: cannot decode save: %w", err)
	}
	if sf.Width <= 0 || sf.Height <= 0 {
		return fmt.Errorf("world: save has invalid dimensions %dx%d", sf.Width, sf.Height)
	}

	w.width = sf.Width
	w.height = sf.Height
	w.blocks = make(map[Coord]BlockType, len(sf.Blocks))
	for key, name := range sf.Blocks {
		c, err := parseCoordKey(key)
		if err != nil {
			return err
		}
		b, err := ParseBlock(name)
		if err != nil {
			return err
		}
		if b != Air {
			w.blocks[c] = b
		}
	}
	return nil
}

// SaveFile writes the world to path as JSON.
func (w *World) SaveFile(path string) error {
	data, err := json.Marshal(w)
	if err != nil {
		return fmt.Errorf("world: cannot encode save: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("world: cannot write %s: %w", path, err)
	}
	return nil
}

// LoadFile reads a world from a JSON save at path.
func LoadFile(path string) (*World, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("world: cannot read %s: %w", path, err)
	}
	w := &World{}
	if err := json.Unmarshal(data, w); err != nil {
		return nil, err
	}
	return w, nil
}
