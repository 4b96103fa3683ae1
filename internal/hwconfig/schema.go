// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package hwconfig

import (
	"fmt"
	"strings"
)

// Schema variant names.
const (
	// SchemaMinimal emits only the I2C bus pins and the mux address.
	SchemaMinimal = "minimal"
	// SchemaSensors adds sensor channels and the encoder chip pins.
	SchemaSensors = "sensors"
	// SchemaFull adds sensor offsets, robot geometry and UART pins and
	// renders the mux address in hex.
	SchemaFull = "full"

	// DefaultSchema is used when no variant is configured.
	DefaultSchema = SchemaFull
)

// Kind is the JSON type a field is expected to hold.
type Kind string

const (
	KindInteger Kind = "integer"
	KindNumber  Kind = "number"
)

// Field maps one key path of the document to one macro.
type Field struct {
	Path   []string
	Macro  string
	Kind   Kind
	Format Formatter
}

// Key returns the dotted key path of the field.
func (f Field) Key() string {
	return strings.Join(f.Path, ".")
}

// Section is a banner comment followed by blocks of #define lines; blocks
// inside a section are separated by a blank line.
type Section struct {
	Banner string
	Blocks [][]Field
}

// Schema is an ordered field list describing one header layout.
type Schema struct {
	Name     string
	Sections []Section
}

// Fields returns every field of s in emission order.
func (s *Schema) Fields() []Field {
	var fields []Field
	for _, section := range s.Sections {
		for _, block := range section.Blocks {
			fields = append(fields, block...)
		}
	}
	return fields
}

func integerField(macro string, format Formatter, path ...string) Field {
	return Field{Path: path, Macro: macro, Kind: KindInteger, Format: format}
}

func numberField(macro string, path ...string) Field {
	return Field{Path: path, Macro: macro, Kind: KindNumber, Format: Decimal}
}

func pin(macro string, path ...string) Field {
	return integerField(macro, Decimal, path...)
}

func i2cSection(mux Formatter) Section {
	return Section{
		Banner: "Hardware I2C _",
		Blocks: [][]Field{{
			pin("HW_I2C_SDA", "i2c", "sda"),
			pin("HW_I2C_SCL", "i2c", "scl"),
			integerField("HW_I2C_MUX_ADDR", mux, "i2c", "mux_address"),
		}},
	}
}

var (
	colorChannels = []Field{
		pin("HW_SC_CS1", "s_cs", "csc1"),
		pin("HW_SC_CS2", "s_cs", "csc2"),
	}
	opticalChannels = []Field{
		pin("HW_SC_OP1", "s_op", "opc1"),
		pin("HW_SC_OP2", "s_op", "opc2"),
	}
	encoderChannels = []Field{
		pin("HW_SC_EN1", "s_en", "enc1"),
		pin("HW_SC_EN2", "s_en", "enc2"),
		pin("HW_SC_EN3", "s_en", "enc3"),
	}
	encoderChip = []Field{
		pin("HW_C_ENCLK", "en_chip", "enclk"),
		pin("HW_C_ENCS", "en_chip", "encs"),
	}
)

var schemas = map[string]*Schema{
	SchemaMinimal: {
		Name:     SchemaMinimal,
		Sections: []Section{i2cSection(Decimal)},
	},
	SchemaSensors: {
		Name: SchemaSensors,
		Sections: []Section{
			i2cSection(Decimal),
			{
				Banner: "Hardware Senser Channel _",
				Blocks: [][]Field{colorChannels, opticalChannels, encoderChannels},
			},
			{
				Banner: "Hardware Chip _",
				Blocks: [][]Field{encoderChip},
			},
		},
	},
	SchemaFull: {
		Name: SchemaFull,
		Sections: []Section{
			i2cSection(Hex),
			{
				Banner: "Hardware Senser Channel _",
				Blocks: [][]Field{colorChannels, opticalChannels},
			},
			{
				Banner: "Optical Sensor Offsets _",
				Blocks: [][]Field{
					{
						numberField("OFF_1_X", "s_op", "op1_off_x"),
						numberField("OFF_1_Y", "s_op", "op1_off_y"),
						numberField("OFF_1_H", "s_op", "op1_off_h"),
					},
					{
						numberField("OFF_2_X", "s_op", "op2_off_x"),
						numberField("OFF_2_Y", "s_op", "op2_off_y"),
						numberField("OFF_2_H", "s_op", "op2_off_h"),
					},
				},
			},
			{
				Banner: "Hardware Chip _",
				Blocks: [][]Field{encoderChip},
			},
			{
				Banner: "Hardware Encoder Channel _",
				Blocks: [][]Field{encoderChannels},
			},
			{
				Banner: "Physical _",
				Blocks: [][]Field{{
					numberField("PHY_WH_DIST_CEN", "phy", "wh_dist_center"),
					numberField("PHY_HOR_DIST_CEN", "phy", "hor_dist_center"),
					numberField("PHY_TICK_P_IN", "phy", "t_p_in"),
				}},
			},
			{
				Banner: "Communication _",
				Blocks: [][]Field{{
					pin("COMM_EN_PIN", "comm", "en_pin"),
					pin("COMM_RX_PIN", "comm", "rx_pin"),
					pin("COMM_TX_PIN", "comm", "tx_pin"),
				}},
			},
		},
	},
}

// SchemaNames lists the known variants from smallest to most complete.
func SchemaNames() []string {
	return []string{SchemaMinimal, SchemaSensors, SchemaFull}
}

// SchemaByName returns the variant called name. An empty name selects
// [DefaultSchema].
func SchemaByName(name string) (*Schema, error) {
	if name == "" {
		name = DefaultSchema
	}

	s, ok := schemas[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknownSchema, name, strings.Join(SchemaNames(), ", "))
	}
	return s, nil
}
