// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package hwconfig

import (
	"bytes"
	"fmt"
	"text/template"
)

// Macro is a resolved #define: a name and its rendered value.
type Macro struct {
	Name  string
	Value string
}

type renderedSection struct {
	Banner string
	Blocks [][]Macro
}

const headerTemplate = `#pragma once

//AUTO-GENERATED FILE -- DO NOT EDIT
{{range .}}
// {{.Banner}}
{{range $i, $block := .Blocks}}{{if $i}}
{{end}}{{range $block}}#define {{.Name}} {{.Value}}
{{end}}{{end}}{{end}}
`

var header = template.Must(template.New("hw_config.h").Parse(headerTemplate))

// Resolve looks up and formats every field of s in emission order. The
// first missing or unrenderable field aborts resolution.
func (s *Schema) Resolve(doc *Document) ([]Macro, error) {
	sections, err := s.resolveSections(doc)
	if err != nil {
		return nil, err
	}

	var macros []Macro
	for _, section := range sections {
		for _, block := range section.Blocks {
			macros = append(macros, block...)
		}
	}
	return macros, nil
}

// Render produces the complete header text for doc. Output depends only on
// s and the document contents, so rendering the same input twice yields
// identical bytes.
func (s *Schema) Render(doc *Document) ([]byte, error) {
	sections, err := s.resolveSections(doc)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := header.Execute(&buf, sections); err != nil {
		return nil, fmt.Errorf("error executing header template: %w", err)
	}
	return buf.Bytes(), nil
}

func (s *Schema) resolveSections(doc *Document) ([]renderedSection, error) {
	sections := make([]renderedSection, 0, len(s.Sections))
	for _, section := range s.Sections {
		rendered := renderedSection{Banner: section.Banner}
		for _, block := range section.Blocks {
			macros := make([]Macro, 0, len(block))
			for _, field := range block {
				m, err := field.resolve(doc)
				if err != nil {
					return nil, err
				}
				macros = append(macros, m)
			}
			rendered.Blocks = append(rendered.Blocks, macros)
		}
		sections = append(sections, rendered)
	}
	return sections, nil
}

func (f Field) resolve(doc *Document) (Macro, error) {
	v, err := doc.Lookup(f.Path...)
	if err != nil {
		return Macro{}, err
	}

	text, err := f.Format(v)
	if err != nil {
		return Macro{}, err
	}
	return Macro{Name: f.Macro, Value: text}, nil
}
