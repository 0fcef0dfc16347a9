// Package content loads world definitions: rooms, objects, doors and the
// player's starting state. A Document is static data; Build turns it into a
// fresh, independent world graph each time it is called.
package content

import (
	"bytes"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/adventure-engine/internal/errors"
)

// Document is the on-disk shape of a world
type Document struct {
	Title   string      `yaml:"title"`
	Rooms   []RoomDef   `yaml:"rooms"`
	Objects []ObjectDef `yaml:"objects,omitempty"`
	Doors   []DoorDef   `yaml:"doors,omitempty"`
	Player  PlayerDef   `yaml:"player"`
}

// RoomDef defines a room and the slugs it starts out holding
type RoomDef struct {
	Slug        string   `yaml:"slug"`
	Description string   `yaml:"description"`
	EntryText   string   `yaml:"entry_text"`
	Items       []string `yaml:"items,omitempty"`
}

// RoomUseDef restricts solo use to a room
type RoomUseDef struct {
	Room string `yaml:"room"`
	Text string `yaml:"text"`
}

// ObjectDef defines a plain interactable
type ObjectDef struct {
	Slug               string      `yaml:"slug"`
	Description        string      `yaml:"description"`
	TextInRoom         string      `yaml:"text_in_room,omitempty"`
	CanPickup          bool        `yaml:"can_pickup,omitempty"`
	CantPickupText     string      `yaml:"cant_pickup_text,omitempty"`
	CanUse             bool        `yaml:"can_use,omitempty"`
	UseAlone           bool        `yaml:"use_alone,omitempty"`
	UseWith            string      `yaml:"use_with,omitempty"`
	OnlyInRoom         *RoomUseDef `yaml:"only_in_room,omitempty"`
	UseText            string      `yaml:"use_text,omitempty"`
	UpdatedDescription string      `yaml:"updated_description,omitempty"`
	UseOnce            bool        `yaml:"use_once,omitempty"`
	Hidden             bool        `yaml:"hidden,omitempty"`
}

// DoorDef defines a door. Locked defaults to true when omitted.
type DoorDef struct {
	ObjectDef  `yaml:",inline"`
	Locked     *bool  `yaml:"locked,omitempty"`
	Visible    bool   `yaml:"visible,omitempty"`
	PairedRoom string `yaml:"paired_room"`
}

// IsLocked resolves the locked default
func (d *DoorDef) IsLocked() bool {
	return d.Locked == nil || *d.Locked
}

// PlayerDef defines the starting state
type PlayerDef struct {
	Name      string   `yaml:"name,omitempty"`
	StartRoom string   `yaml:"start_room"`
	Inventory []string `yaml:"inventory,omitempty"`
}

// Parse decodes a YAML document. Unknown fields are rejected so typos in
// content surface early.
func Parse(data []byte) (*Document, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.InvalidArgument("content is empty")
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var doc Document
	if err := decoder.Decode(&doc); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse content")
	}
	return &doc, nil
}

// Marshal encodes a document back to YAML
func Marshal(doc *Document) ([]byte, error) {
	if doc == nil {
		return nil, errors.InvalidArgument("document is required")
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(doc); err != nil {
		return nil, errors.Wrap(err, "failed to encode content")
	}
	if err := encoder.Close(); err != nil {
		return nil, errors.Wrap(err, "failed to encode content")
	}
	return buf.Bytes(), nil
}
