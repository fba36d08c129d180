package clipboard

import (
	"bytes"
	"encoding/json"
	"log"
	"strings"

	"github.com/pkg/errors"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/mogaika/studio_clipboard/editor/entities"
)

const (
	keyType         = "__type"
	keyCustomEvents = "__customEvents"
	keyVariables    = "__variables"
	keyFormat       = "format"
	keyData         = "data"

	documentIndent = "    "
)

type kind struct {
	format Format
	schema *jsonschema.Schema
	decode func(raw string) (Payload, error)
}

// Kinds are tried in this order, first one with matching schema wins
var kinds []kind

func init() {
	decoders := []struct {
		format Format
		decode func(raw string) (Payload, error)
	}{
		{FormatMetasprites, decodeMetasprites},
		{FormatMetaspriteTiles, decodeMetaspriteTiles},
		{FormatActor, decodeActor},
		{FormatTrigger, decodeTrigger},
		{FormatScene, decodeScene},
		{FormatEvent, decodeEvent},
		{FormatScript, decodeScript},
	}
	for _, d := range decoders {
		kinds = append(kinds, kind{format: d.format, schema: compileSchema(d.format), decode: d.decode})
	}
}

// Encode produces clipboard text for payload
func Encode(p Payload) string {
	switch v := p.(type) {
	case *ActorPayload:
		return encodeDocument(FormatActor, "actor", v.Actor, v.Closure)
	case *TriggerPayload:
		return encodeDocument(FormatTrigger, "trigger", v.Trigger, v.Closure)
	case *ScenePayload:
		return encodeDocument(FormatScene, "scene", v.Scene, v.Closure)
	case *EventPayload:
		return encodeDocument(FormatEvent, "event", v.Event, v.Closure)
	case *ScriptPayload:
		script := v.Script
		if script == nil {
			script = []*entities.ScriptEvent{}
		}
		return encodeDocument(FormatScript, "script", script, v.Closure)
	case *MetaspritesPayload:
		return encodeSprite(FormatMetasprites, &metaspritesData{
			Metasprites:     nonNil(v.Metasprites),
			MetaspriteTiles: nonNil(v.MetaspriteTiles),
		})
	case *MetaspriteTilesPayload:
		return encodeSprite(FormatMetaspriteTiles, &metaspriteTilesData{
			MetaspriteTiles: nonNil(v.MetaspriteTiles),
		})
	}
	panic(errors.Errorf("unknown clipboard payload %T", p))
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func encodeDocument(format Format, key string, primary interface{}, closure Closure) string {
	doc := []byte("{}")
	var err error
	set := func(path string, value interface{}) {
		if err == nil {
			doc, err = sjson.SetBytes(doc, path, value)
		}
	}

	set(key, primary)
	set(keyType, string(format))
	if len(closure.CustomEvents) != 0 {
		set(keyCustomEvents, closure.CustomEvents)
	}
	if len(closure.Variables) != 0 {
		set(keyVariables, closure.Variables)
	}
	if err != nil {
		panic(errors.Wrapf(err, "Failed to encode %s", format))
	}

	var out bytes.Buffer
	if err := json.Indent(&out, doc, "", documentIndent); err != nil {
		panic(errors.Wrapf(err, "Failed to indent %s", format))
	}
	return out.String()
}

type metaspritesData struct {
	Metasprites     []entities.Metasprite     `json:"metasprites"`
	MetaspriteTiles []entities.MetaspriteTile `json:"metaspriteTiles"`
}

type metaspriteTilesData struct {
	MetaspriteTiles []entities.MetaspriteTile `json:"metaspriteTiles"`
}

type spriteEnvelope struct {
	Format Format      `json:"format"`
	Data   interface{} `json:"data"`
}

func encodeSprite(format Format, data interface{}) string {
	buf, err := json.Marshal(&spriteEnvelope{Format: format, Data: data})
	if err != nil {
		panic(errors.Wrapf(err, "Failed to encode %s", format))
	}
	return string(buf)
}

// Decode parses clipboard text of unknown origin. Text that is not json,
// or does not match any known payload kind, is reported as no payload.
func Decode(raw string) (Payload, bool) {
	if !gjson.Valid(raw) {
		return nil, false
	}

	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()
	var doc interface{}
	if err := dec.Decode(&doc); err != nil {
		return nil, false
	}

	for _, k := range kinds {
		if err := k.schema.Validate(doc); err != nil {
			continue
		}
		p, err := k.decode(raw)
		if err != nil {
			log.Printf("[clipboard] %s payload matched schema but failed to decode: %v", k.format, err)
			continue
		}
		return p, true
	}
	return nil, false
}

// Peek returns discriminant of clipboard text without validating the rest
func Peek(raw string) Format {
	if !gjson.Valid(raw) {
		return ""
	}
	if t := gjson.Get(raw, keyType); t.Type == gjson.String {
		return Format(t.String())
	}
	if f := gjson.Get(raw, keyFormat); f.Type == gjson.String {
		return Format(f.String())
	}
	return ""
}

func unmarshalField(raw string, path string, v interface{}) error {
	field := gjson.Get(raw, path)
	if !field.Exists() {
		return nil
	}
	if err := json.Unmarshal([]byte(field.Raw), v); err != nil {
		return errors.Wrapf(err, "Failed to unmarshal %q", path)
	}
	return nil
}

func decodeClosure(raw string) (Closure, error) {
	var c Closure
	if err := unmarshalField(raw, keyCustomEvents, &c.CustomEvents); err != nil {
		return c, err
	}
	if err := unmarshalField(raw, keyVariables, &c.Variables); err != nil {
		return c, err
	}
	return c, nil
}

func decodeActor(raw string) (Payload, error) {
	p := &ActorPayload{}
	if err := unmarshalField(raw, "actor", &p.Actor); err != nil {
		return nil, err
	}
	var err error
	p.Closure, err = decodeClosure(raw)
	return p, err
}

func decodeTrigger(raw string) (Payload, error) {
	p := &TriggerPayload{}
	if err := unmarshalField(raw, "trigger", &p.Trigger); err != nil {
		return nil, err
	}
	var err error
	p.Closure, err = decodeClosure(raw)
	return p, err
}

func decodeScene(raw string) (Payload, error) {
	p := &ScenePayload{}
	if err := unmarshalField(raw, "scene", &p.Scene); err != nil {
		return nil, err
	}
	var err error
	p.Closure, err = decodeClosure(raw)
	return p, err
}

func decodeEvent(raw string) (Payload, error) {
	p := &EventPayload{}
	if err := unmarshalField(raw, "event", &p.Event); err != nil {
		return nil, err
	}
	var err error
	p.Closure, err = decodeClosure(raw)
	return p, err
}

func decodeScript(raw string) (Payload, error) {
	p := &ScriptPayload{}
	if err := unmarshalField(raw, "script", &p.Script); err != nil {
		return nil, err
	}
	var err error
	p.Closure, err = decodeClosure(raw)
	return p, err
}

func decodeMetasprites(raw string) (Payload, error) {
	p := &MetaspritesPayload{}
	if err := unmarshalField(raw, keyData+".metasprites", &p.Metasprites); err != nil {
		return nil, err
	}
	if err := unmarshalField(raw, keyData+".metaspriteTiles", &p.MetaspriteTiles); err != nil {
		return nil, err
	}
	p.Metasprites = nilIfEmpty(p.Metasprites)
	p.MetaspriteTiles = nilIfEmpty(p.MetaspriteTiles)
	return p, nil
}

func decodeMetaspriteTiles(raw string) (Payload, error) {
	p := &MetaspriteTilesPayload{}
	if err := unmarshalField(raw, keyData+".metaspriteTiles", &p.MetaspriteTiles); err != nil {
		return nil, err
	}
	p.MetaspriteTiles = nilIfEmpty(p.MetaspriteTiles)
	return p, nil
}

func nilIfEmpty[T any](s []T) []T {
	if len(s) == 0 {
		return nil
	}
	return s
}

// Writer and Reader are the two halves of external clipboard
type Writer interface {
	WriteText(text string)
}

type Reader interface {
	ReadText() string
}

func Copy(w Writer, p Payload) {
	w.WriteText(Encode(p))
}

func Paste(r Reader) (Payload, bool) {
	return Decode(r.ReadText())
}
