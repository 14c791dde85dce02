package generation

import "github.com/invopop/jsonschema"

//go:generate go run ../cmd/presetschema -out ../data/preset.schema.json

// PresetSchema builds the JSON schema for preset files, for editor tooling
// and validating presets outside the generator
func PresetSchema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{}
	schema := reflector.Reflect(new(PresetDefinition))
	schema.Title = "Floor Maker Preset"
	schema.Description = "Validates generation presets in data/presets/*.json"
	return schema
}
