package generation

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// ErrUnknownPreset is returned when a preset ID has not been loaded
var ErrUnknownPreset = errors.New("unknown preset")

// PresetDefinition is a named generation configuration stored as JSON.
// The jsonschema tags feed PresetSchema.
type PresetDefinition struct {
	ID          string `json:"id" jsonschema:"title=Preset id,description=Unique identifier for the preset"`
	Name        string `json:"name,omitempty" jsonschema:"description=Display name for the preset"`
	Description string `json:"description,omitempty" jsonschema:"description=Description of the layouts it produces"`

	GridWidth                  int `json:"grid_width" jsonschema:"minimum=1,description=Grid width in cells"`
	GridHeight                 int `json:"grid_height" jsonschema:"minimum=1,description=Grid height in cells"`
	MaxFloorCount              int `json:"max_floor_count" jsonschema:"minimum=1,description=Walkable cells to carve before stopping"`
	TurnProbability            int `json:"turn_probability" jsonschema:"minimum=0,maximum=100,description=Percent chance per step that a walker turns"`
	FloorMakerSpawnProbability int `json:"floor_maker_spawn_probability" jsonschema:"minimum=0,maximum=100,description=Percent chance per step that a walker spawns another"`
	MaxFloorMakerCount         int `json:"max_floor_maker_count" jsonschema:"minimum=1,description=Most walkers alive at once"`
	RoomProbability            int `json:"room_probability" jsonschema:"minimum=0,maximum=100,description=Percent chance per step that a walker stamps a room"`
	RoomMinWidth               int `json:"room_min_width" jsonschema:"minimum=1"`
	RoomMinHeight              int `json:"room_min_height" jsonschema:"minimum=1"`
	RoomMaxWidth               int `json:"room_max_width" jsonschema:"minimum=1"`
	RoomMaxHeight              int `json:"room_max_height" jsonschema:"minimum=1"`
}

// Configuration converts the preset into a generation configuration
func (p *PresetDefinition) Configuration() Configuration {
	return Configuration{
		GridSize:                   Size{Width: p.GridWidth, Height: p.GridHeight},
		MaxFloorCount:              p.MaxFloorCount,
		TurnProbability:            p.TurnProbability,
		FloorMakerSpawnProbability: p.FloorMakerSpawnProbability,
		MaxFloorMakerCount:         p.MaxFloorMakerCount,
		RoomProbability:            p.RoomProbability,
		RoomMinSize:                Size{Width: p.RoomMinWidth, Height: p.RoomMinHeight},
		RoomMaxSize:                Size{Width: p.RoomMaxWidth, Height: p.RoomMaxHeight},
	}
}

// PresetManager handles loading and managing presets from JSON files
type PresetManager struct {
	presets map[string]*PresetDefinition
}

// NewPresetManager creates an empty preset manager
func NewPresetManager() *PresetManager {
	return &PresetManager{
		presets: make(map[string]*PresetDefinition),
	}
}

// LoadPresetsFromDirectory loads every *.json preset in a directory
func (m *PresetManager) LoadPresetsFromDirectory(directory string) error {
	files, err := filepath.Glob(filepath.Join(directory, "*.json"))
	if err != nil {
		return fmt.Errorf("failed to read preset directory: %w", err)
	}

	for _, file := range files {
		if err := m.LoadPresetFromFile(file); err != nil {
			return fmt.Errorf("failed to load preset from %s: %w", filepath.Base(file), err)
		}
	}

	return nil
}

// LoadPresetFromFile loads a single preset definition from a JSON file
func (m *PresetManager) LoadPresetFromFile(filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read preset file: %w", err)
	}

	var preset PresetDefinition
	if err := json.Unmarshal(data, &preset); err != nil {
		return fmt.Errorf("failed to parse preset JSON: %w", err)
	}

	return m.AddPreset(&preset)
}

// AddPreset validates a preset and registers it under its ID
func (m *PresetManager) AddPreset(preset *PresetDefinition) error {
	if preset.ID == "" {
		return fmt.Errorf("preset is missing ID")
	}
	if err := preset.Configuration().Validate(); err != nil {
		return fmt.Errorf("preset %q: %w", preset.ID, err)
	}

	m.presets[preset.ID] = preset
	return nil
}

// GetPreset retrieves a preset by ID
func (m *PresetManager) GetPreset(id string) (*PresetDefinition, error) {
	preset, ok := m.presets[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, id)
	}
	return preset, nil
}

// GetAllPresets returns all loaded presets ordered by ID
func (m *PresetManager) GetAllPresets() []*PresetDefinition {
	result := make([]*PresetDefinition, 0, len(m.presets))
	for _, preset := range m.presets {
		result = append(result, preset)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}
