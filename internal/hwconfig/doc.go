// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package hwconfig turns a hardware configuration document (hardware_cf.json)
// into the C header consumed by the firmware build (hw_config.h).
//
// Core concepts:
//   - Document: the parsed JSON, queried by key path.
//   - Schema: an ordered list of sections and fields; each field maps a
//     key path to a macro name and a [Formatter].
//   - Variants: [SchemaMinimal], [SchemaSensors] and [SchemaFull], the
//     field sets the header has carried over time. [SchemaFull] is the
//     default.
//
// Every field a schema names must exist in the document; there are no
// defaults. Rendering is a pure function of the schema and the document.
package hwconfig
