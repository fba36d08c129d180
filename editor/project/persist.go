package project

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/mogaika/studio_clipboard/editor/entities"
)

// Document is the on-disk and over-the-wire form of project
type Document struct {
	Scenes           []entities.Scene           `json:"scenes" yaml:"scenes"`
	Actors           []entities.Actor           `json:"actors" yaml:"actors"`
	Triggers         []entities.Trigger         `json:"triggers" yaml:"triggers"`
	CustomEvents     []entities.CustomEvent     `json:"customEvents" yaml:"customEvents"`
	Variables        []entities.Variable        `json:"variables" yaml:"variables"`
	SpriteAnimations []entities.SpriteAnimation `json:"spriteAnimations" yaml:"spriteAnimations"`
	Metasprites      []entities.Metasprite      `json:"metasprites" yaml:"metasprites"`
	MetaspriteTiles  []entities.MetaspriteTile  `json:"metaspriteTiles" yaml:"metaspriteTiles"`

	SelectedMetaspriteTileIDs []string `json:"selectedMetaspriteTileIds,omitempty" yaml:"selectedMetaspriteTileIds,omitempty"`
}

func (p *Project) Document() Document {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return Document{
		Scenes:                    p.scenes.all(),
		Actors:                    p.actors.all(),
		Triggers:                  p.triggers.all(),
		CustomEvents:              p.customEvents.all(),
		Variables:                 p.variables.all(),
		SpriteAnimations:          p.spriteAnimations.all(),
		Metasprites:               p.metasprites.all(),
		MetaspriteTiles:           p.metaspriteTiles.all(),
		SelectedMetaspriteTileIDs: append([]string(nil), p.selectedMetaspriteTileIDs...),
	}
}

func FromDocument(path string, doc *Document) *Project {
	p := NewProject(path)
	for _, v := range doc.Scenes {
		p.scenes.put(v.ID, v)
	}
	for _, v := range doc.Actors {
		p.actors.put(v.ID, v)
	}
	for _, v := range doc.Triggers {
		p.triggers.put(v.ID, v)
	}
	for _, v := range doc.CustomEvents {
		p.customEvents.put(v.ID, v)
	}
	for _, v := range doc.Variables {
		p.variables.put(v.ID, v)
	}
	for _, v := range doc.SpriteAnimations {
		p.spriteAnimations.put(v.ID, v)
	}
	for _, v := range doc.Metasprites {
		p.metasprites.put(v.ID, v)
	}
	for _, v := range doc.MetaspriteTiles {
		p.metaspriteTiles.put(v.ID, v)
	}
	p.selectedMetaspriteTileIDs = append([]string(nil), doc.SelectedMetaspriteTileIDs...)
	return p
}

func isCompressed(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), ".zst")
}

func Decode(r io.Reader) (*Document, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return &doc, nil
		}
		return nil, errors.Wrapf(err, "Failed to unmarshal yaml")
	}
	return &doc, nil
}

func (p *Project) Encode(w io.Writer) error {
	doc := p.Document()

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return errors.Wrapf(err, "Failed to marshal yaml")
	}
	if err := enc.Close(); err != nil {
		return errors.Wrapf(err, "Failed to close yaml encoder")
	}
	return nil
}

// OpenProject loads yaml project file, zstd compressed if path ends with .zst
func OpenProject(path string) (*Project, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to open project %q", path)
	}
	defer f.Close()

	var r io.Reader = f
	if isCompressed(path) {
		dec, err := zstd.NewReader(f)
		if err != nil {
			return nil, errors.Wrapf(err, "Failed to create zstd reader")
		}
		defer dec.Close()
		r = dec
	}

	doc, err := Decode(r)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to load project %q", path)
	}
	return FromDocument(path, doc), nil
}

func (p *Project) Save() error {
	path := p.Path()
	if path == "" {
		return errors.Errorf("Project has no path")
	}
	return p.SaveAs(path)
}

func (p *Project) SaveAs(path string) error {
	var buf bytes.Buffer
	if isCompressed(path) {
		enc, err := zstd.NewWriter(&buf, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return errors.Wrapf(err, "Failed to create zstd writer")
		}
		if err := p.Encode(enc); err != nil {
			enc.Close()
			return err
		}
		if err := enc.Close(); err != nil {
			return errors.Wrapf(err, "Failed to flush zstd writer")
		}
	} else if err := p.Encode(&buf); err != nil {
		return err
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return errors.Wrapf(err, "Failed to write project %q", path)
	}
	p.mu.Lock()
	p.path = path
	p.mu.Unlock()
	return nil
}
