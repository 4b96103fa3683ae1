// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package hwconfig

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// JSONSchema describes the document shape s requires: every group is a
// required object and every field a required integer or number, listed in
// emission order. Editors can use it to validate hardware_cf.json before a
// build runs.
func (s *Schema) JSONSchema() *jsonschema.Schema {
	root := objectSchema()
	root.Version = jsonschema.Version
	root.Title = fmt.Sprintf("hwconfig-gen %s hardware configuration", s.Name)

	for _, field := range s.Fields() {
		parent := root
		for i, key := range field.Path {
			child, ok := parent.Properties.Get(key)
			if !ok {
				if i == len(field.Path)-1 {
					child = field.jsonSchema()
				} else {
					child = objectSchema()
				}
				parent.Properties.Set(key, child)
				parent.Required = append(parent.Required, key)
			}
			parent = child
		}
	}

	return root
}

// MarshalJSONSchema returns the indented JSON encoding of s.JSONSchema().
func (s *Schema) MarshalJSONSchema() ([]byte, error) {
	data, err := json.MarshalIndent(s.JSONSchema(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("error encoding json schema: %w", err)
	}
	return append(data, '\n'), nil
}

func objectSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:       "object",
		Properties: orderedmap.New[string, *jsonschema.Schema](),
	}
}

func (f Field) jsonSchema() *jsonschema.Schema {
	s := &jsonschema.Schema{
		Type:        string(f.Kind),
		Description: "#define " + f.Macro,
	}
	if f.Kind == KindInteger {
		s.Minimum = json.Number("0")
	}
	return s
}
