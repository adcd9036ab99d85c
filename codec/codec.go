// Package codec serializes scene models to a versioned JSON document and
// reconstructs them through the component registry. Unknown component
// fields survive a load/save cycle so files written by newer tooling are
// not silently stripped.
package codec

import (
	"encoding/json"
	"fmt"

	"planar/scene"
)

// FormatVersion is the newest scene document version this build writes
// and understands.
const FormatVersion = 1

// Document is the on-disk scene representation.
type Document struct {
	Version     int                 `json:"version"`
	Components  []ComponentPayload  `json:"components"`
	Connections []ConnectionPayload `json:"connections"`
}

// ConnectionPayload is the serialized form of a connection.
type ConnectionPayload struct {
	ID     int    `json:"id,omitempty"`
	Source int    `json:"source_id"`
	Target int    `json:"target_id"`
	Label  string `json:"label,omitempty"`
}

// ComponentPayload is the serialized form of a component: the type tag
// and id lifted out, everything else in a flat field map. Fields holds
// exactly the keys the file carried, so restore sees a key as absent
// only when the file omitted it and the component's own defaulting and
// required-field checks apply. Unknown keys ride along for round-trip
// safety.
type ComponentPayload struct {
	Type   string
	ID     int
	Fields map[string]any
}

// Keys lifted out of the flat JSON object.
const (
	keyType = "type"
	keyID   = "id"
)

// MarshalJSON flattens the payload into a single JSON object.
func (p ComponentPayload) MarshalJSON() ([]byte, error) {
	flat := make(map[string]any, len(p.Fields)+2)
	for k, v := range p.Fields {
		flat[k] = v
	}
	flat[keyType] = p.Type
	flat[keyID] = p.ID
	return json.Marshal(flat)
}

// UnmarshalJSON splits a flat JSON object back into tag, id and the
// field map.
func (p *ComponentPayload) UnmarshalJSON(data []byte) error {
	var flat map[string]any
	if err := json.Unmarshal(data, &flat); err != nil {
		return err
	}

	tag, ok := flat[keyType].(string)
	if !ok || tag == "" {
		return fmt.Errorf("%w: component missing type tag", scene.ErrMalformedPayload)
	}
	p.Type = tag

	if id, ok := flat[keyID].(float64); ok {
		p.ID = int(id)
	}

	delete(flat, keyType)
	delete(flat, keyID)
	p.Fields = flat
	return nil
}

// Encode produces a document from a model, components and connections in
// insertion order.
func Encode(m *scene.Model) *Document {
	doc := &Document{
		Version: FormatVersion,
		// Empty slices, not nil: an empty scene writes "[]", never "null".
		Components:  make([]ComponentPayload, 0, m.Len()),
		Connections: make([]ConnectionPayload, 0, m.ConnectionCount()),
	}

	for _, c := range m.Components() {
		fields := make(map[string]any)
		for k, v := range c.Fields() {
			fields[k] = v
		}
		for k, v := range c.Extra() {
			// Don't let a stale extra shadow a recognized field.
			if _, known := fields[k]; !known {
				fields[k] = v
			}
		}
		x, y := c.Pos()
		fields["x"] = x
		fields["y"] = y
		fields["rotation_deg"] = c.Rotation()
		fields["scale"] = c.Scale()
		doc.Components = append(doc.Components, ComponentPayload{
			Type:   c.TypeTag(),
			ID:     c.ID(),
			Fields: fields,
		})
	}

	for _, conn := range m.Connections() {
		doc.Connections = append(doc.Connections, ConnectionPayload{
			ID:     conn.ID,
			Source: conn.Source,
			Target: conn.Target,
			Label:  conn.Label,
		})
	}
	return doc
}

// Dropped records one document entry that could not be restored.
type Dropped struct {
	Index  int    // position in the document's component/connection list
	Reason string // why the entry was skipped
}

// Report collects the entries skipped during a partial load.
type Report struct {
	Components  []Dropped
	Connections []Dropped
}

// Clean reports whether every entry loaded.
func (r *Report) Clean() bool {
	return len(r.Components) == 0 && len(r.Connections) == 0
}

// Decode reconstructs a model from a document, dispatching component
// payloads through the registry. Malformed or unknown-type entries are
// skipped and reported rather than failing the whole load; ids are
// preserved when valid and regenerated (with connection references
// remapped) on collision. A document version newer than FormatVersion
// fails with ErrUnsupportedVersion.
func Decode(doc *Document, reg *scene.Registry) (*scene.Model, *Report, error) {
	if doc.Version > FormatVersion {
		return nil, nil, fmt.Errorf("%w: document version %d, supported up to %d",
			scene.ErrUnsupportedVersion, doc.Version, FormatVersion)
	}

	m := scene.NewModel()
	report := &Report{}

	// Document ids may collide or be absent; idMap tracks the document
	// id each connection payload references to the id the component
	// actually received.
	idMap := make(map[int]int)
	seen := make(map[int]bool)

	for i, payload := range doc.Components {
		c, err := reg.Restore(payload.Type, payload.Fields)
		if err != nil {
			report.Components = append(report.Components, Dropped{Index: i, Reason: err.Error()})
			continue
		}
		if payload.ID > 0 && !seen[payload.ID] {
			c.SetID(payload.ID)
		} else {
			c.SetID(0) // collision or absent: let the model assign
		}
		newID := m.Add(c)
		if payload.ID > 0 && !seen[payload.ID] {
			idMap[payload.ID] = newID
			seen[payload.ID] = true
		}
	}

	for i, payload := range doc.Connections {
		source, ok := idMap[payload.Source]
		if !ok {
			report.Connections = append(report.Connections, Dropped{
				Index:  i,
				Reason: fmt.Sprintf("source component %d not restored", payload.Source),
			})
			continue
		}
		target, ok := idMap[payload.Target]
		if !ok {
			report.Connections = append(report.Connections, Dropped{
				Index:  i,
				Reason: fmt.Sprintf("target component %d not restored", payload.Target),
			})
			continue
		}
		conn, err := m.AddConnection(source, target)
		if err != nil {
			report.Connections = append(report.Connections, Dropped{Index: i, Reason: err.Error()})
			continue
		}
		conn.Label = payload.Label
	}

	return m, report, nil
}

// Validate checks a document's internal structure: duplicate component
// ids and connections referencing missing components.
func Validate(doc *Document) error {
	if doc.Version > FormatVersion {
		return fmt.Errorf("%w: document version %d, supported up to %d",
			scene.ErrUnsupportedVersion, doc.Version, FormatVersion)
	}

	ids := make(map[int]bool)
	for _, c := range doc.Components {
		if c.ID == 0 {
			continue
		}
		if ids[c.ID] {
			return fmt.Errorf("duplicate component id: %d", c.ID)
		}
		ids[c.ID] = true
	}

	for i, conn := range doc.Connections {
		if !ids[conn.Source] {
			return fmt.Errorf("connection %d references non-existent source component %d", i, conn.Source)
		}
		if !ids[conn.Target] {
			return fmt.Errorf("connection %d references non-existent target component %d", i, conn.Target)
		}
		if conn.Source == conn.Target {
			return fmt.Errorf("connection %d: %w", i, scene.ErrSelfConnection)
		}
	}
	return nil
}
