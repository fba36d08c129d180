package clipboard

import (
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const schemaDefs = `"$defs": {
	"scriptEvent": {
		"type": "object",
		"required": ["command"],
		"properties": {
			"id": {"type": "string"},
			"command": {"type": "string"},
			"args": {"type": "object"},
			"children": {
				"type": "object",
				"additionalProperties": {"$ref": "#/$defs/script"}
			}
		}
	},
	"script": {
		"type": ["array", "null"],
		"items": {"anyOf": [{"$ref": "#/$defs/scriptEvent"}, {"type": "null"}]}
	},
	"entity": {
		"type": "object",
		"required": ["id"],
		"properties": {"id": {"type": "string"}}
	},
	"customEvents": {
		"type": "array",
		"items": {
			"$ref": "#/$defs/entity",
			"properties": {"name": {"type": "string"}, "script": {"$ref": "#/$defs/script"}}
		}
	},
	"variables": {"type": "array", "items": {"$ref": "#/$defs/entity"}},
	"metasprite": {
		"$ref": "#/$defs/entity",
		"required": ["tiles"],
		"properties": {"tiles": {"type": ["array", "null"], "items": {"type": "string"}}}
	},
	"metaspriteTile": {
		"type": "object",
		"required": ["x", "y", "sliceX", "sliceY"],
		"properties": {
			"id": {"type": "string"},
			"metaspriteId": {"type": "string"},
			"x": {"type": "integer"},
			"y": {"type": "integer"},
			"sliceX": {"type": "integer"},
			"sliceY": {"type": "integer"},
			"flipX": {"type": "boolean"},
			"flipY": {"type": "boolean"}
		}
	}
}`

// documentSchema matches {"<key>": ..., "__type": "<format>", "__customEvents"?, "__variables"?}
func documentSchema(format Format, key string, primary string) string {
	return fmt.Sprintf(`{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"required": ["__type", %q],
	"properties": {
		"__type": {"const": %q},
		%q: %s,
		"__customEvents": {"$ref": "#/$defs/customEvents"},
		"__variables": {"$ref": "#/$defs/variables"}
	},
	%s
}`, key, string(format), key, primary, schemaDefs)
}

// spriteSchema matches {"format": "<format>", "data": {...}}
func spriteSchema(format Format, data string) string {
	return fmt.Sprintf(`{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"required": ["format", "data"],
	"properties": {
		"format": {"const": %q},
		"data": %s
	},
	%s
}`, string(format), data, schemaDefs)
}

var schemaSources = map[Format]string{
	FormatMetasprites: spriteSchema(FormatMetasprites, `{
		"type": "object",
		"required": ["metasprites", "metaspriteTiles"],
		"properties": {
			"metasprites": {"type": "array", "items": {"$ref": "#/$defs/metasprite"}},
			"metaspriteTiles": {"type": "array", "items": {"$ref": "#/$defs/metaspriteTile"}}
		}
	}`),
	FormatMetaspriteTiles: spriteSchema(FormatMetaspriteTiles, `{
		"type": "object",
		"required": ["metaspriteTiles"],
		"properties": {
			"metaspriteTiles": {"type": "array", "items": {"$ref": "#/$defs/metaspriteTile"}}
		}
	}`),
	FormatActor: documentSchema(FormatActor, "actor", `{
		"$ref": "#/$defs/entity",
		"properties": {
			"script": {"$ref": "#/$defs/script"},
			"startScript": {"$ref": "#/$defs/script"},
			"updateScript": {"$ref": "#/$defs/script"},
			"hit1Script": {"$ref": "#/$defs/script"},
			"hit2Script": {"$ref": "#/$defs/script"},
			"hit3Script": {"$ref": "#/$defs/script"}
		}
	}`),
	FormatTrigger: documentSchema(FormatTrigger, "trigger", `{
		"$ref": "#/$defs/entity",
		"properties": {
			"script": {"$ref": "#/$defs/script"},
			"leaveScript": {"$ref": "#/$defs/script"}
		}
	}`),
	FormatScene: documentSchema(FormatScene, "scene", `{
		"$ref": "#/$defs/entity",
		"properties": {
			"actors": {"type": ["array", "null"], "items": {"$ref": "#/$defs/entity"}},
			"triggers": {"type": ["array", "null"], "items": {"$ref": "#/$defs/entity"}},
			"script": {"$ref": "#/$defs/script"}
		}
	}`),
	FormatEvent:  documentSchema(FormatEvent, "event", `{"$ref": "#/$defs/scriptEvent"}`),
	FormatScript: documentSchema(FormatScript, "script", `{"type": "array", "items": {"anyOf": [{"$ref": "#/$defs/scriptEvent"}, {"type": "null"}]}}`),
}

func compileSchema(format Format) *jsonschema.Schema {
	return jsonschema.MustCompileString("https://studio-clipboard.local/schemas/" + string(format) + ".json", schemaSources[format])
}
