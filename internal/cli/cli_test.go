// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MKhiriev/hwconfig-gen/internal/config"
	"github.com/MKhiriev/hwconfig-gen/internal/hwconfig"
	"github.com/MKhiriev/hwconfig-gen/internal/store"
	"github.com/MKhiriev/hwconfig-gen/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullDocument = `{
	"i2c": {"sda": 21, "scl": 22, "mux_address": 112},
	"s_cs": {"csc1": 1, "csc2": 2},
	"s_op": {"opc1": 3, "opc2": 4,
		"op1_off_x": 10, "op1_off_y": 0, "op1_off_h": 2.5,
		"op2_off_x": -10, "op2_off_y": 0, "op2_off_h": 2.5},
	"en_chip": {"enclk": 9, "encs": 43},
	"s_en": {"enc1": 7, "enc2": 8, "enc3": 44},
	"phy": {"wh_dist_center": 6.5, "hor_dist_center": 3.0, "t_p_in": 58.3},
	"comm": {"en_pin": 10, "rx_pin": 16, "tx_pin": 17}
}`

// ── helpers ───────────────────────────────────────────────────────────────────

type testProject struct {
	dir        string
	includeDir string
}

func newTestProject(t *testing.T, document string) testProject {
	t.Helper()
	p := testProject{dir: t.TempDir()}
	p.includeDir = filepath.Join(p.dir, "include")
	require.NoError(t, os.MkdirAll(filepath.Join(p.dir, "lib"), 0o755))
	require.NoError(t, os.MkdirAll(p.includeDir, 0o755))
	if document != "" {
		require.NoError(t, os.WriteFile(filepath.Join(p.dir, "lib", "hardware_cf.json"), []byte(document), 0o644))
	}
	return p
}

func (p testProject) headerPath() string {
	return filepath.Join(p.includeDir, "hw_config.h")
}

func runCommand(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := NewRootCommand(models.NewAppBuildInfo("1.0.0", "2026-10-19", "abc1234"))
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err = root.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

// ── generate ──────────────────────────────────────────────────────────────────

func TestGenerate_FromBuildEnvironment(t *testing.T) {
	p := newTestProject(t, fullDocument)
	t.Setenv("PROJECT_DIR", p.dir)
	t.Setenv("PROJECT_INCLUDE_DIR", p.includeDir)

	stdout, stderr, err := runCommand(t)
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "loading hardware config")
	assert.Contains(t, stderr, "generated hw_config.h")

	got, err := os.ReadFile(p.headerPath())
	require.NoError(t, err)
	assert.Contains(t, string(got), "#define HW_I2C_MUX_ADDR 0x70\n")
	assert.Contains(t, string(got), "#define PHY_TICK_P_IN 58.3\n")
}

func TestGenerate_Subcommand_WithFlags(t *testing.T) {
	p := newTestProject(t, `{"i2c": {"sda": 21, "scl": 22, "mux_address": 112}}`)

	_, _, err := runCommand(t, "generate",
		"--project-dir", p.dir,
		"--include-dir", p.includeDir,
		"--schema", hwconfig.SchemaMinimal,
	)
	require.NoError(t, err)

	got, err := os.ReadFile(p.headerPath())
	require.NoError(t, err)
	assert.Contains(t, string(got),
		"#define HW_I2C_SDA 21\n#define HW_I2C_SCL 22\n#define HW_I2C_MUX_ADDR 112\n")
}

func TestGenerate_RegenerationIsByteIdentical(t *testing.T) {
	p := newTestProject(t, fullDocument)
	args := []string{"--project-dir", p.dir, "--include-dir", p.includeDir}

	_, _, err := runCommand(t, args...)
	require.NoError(t, err)
	first, err := os.ReadFile(p.headerPath())
	require.NoError(t, err)

	_, _, err = runCommand(t, args...)
	require.NoError(t, err)
	second, err := os.ReadFile(p.headerPath())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerate_DryRunPrintsHeader(t *testing.T) {
	p := newTestProject(t, fullDocument)

	stdout, _, err := runCommand(t, "--project-dir", p.dir, "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, stdout, "#pragma once\n")
	assert.Contains(t, stdout, "#define COMM_RX_PIN 16\n")

	_, statErr := os.Stat(p.headerPath())
	assert.ErrorIs(t, statErr, fs.ErrNotExist)
}

func TestGenerate_MissingPhyGroupWritesNothing(t *testing.T) {
	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(fullDocument), &doc))
	delete(doc, "phy")
	data, err := json.Marshal(doc)
	require.NoError(t, err)
	p := newTestProject(t, string(data))

	_, stderr, err := runCommand(t, "--project-dir", p.dir, "--include-dir", p.includeDir)
	require.ErrorIs(t, err, hwconfig.ErrMissingField)
	assert.Contains(t, err.Error(), "phy.wh_dist_center")
	assert.NotContains(t, stderr, "header generation failed")

	_, statErr := os.Stat(p.headerPath())
	assert.ErrorIs(t, statErr, fs.ErrNotExist)
}

func TestGenerate_ExistingHeaderKeptOnFailure(t *testing.T) {
	p := newTestProject(t, `{"i2c": {"sda": 21}}`)
	require.NoError(t, os.WriteFile(p.headerPath(), []byte("previous\n"), 0o644))

	_, _, err := runCommand(t, "--project-dir", p.dir, "--include-dir", p.includeDir)
	require.ErrorIs(t, err, hwconfig.ErrMissingField)

	got, err := os.ReadFile(p.headerPath())
	require.NoError(t, err)
	assert.Equal(t, "previous\n", string(got))
}

func TestGenerate_Errors(t *testing.T) {
	tests := []struct {
		name        string
		document    string
		args        func(p testProject) []string
		expectedErr error
	}{
		{
			name: "configuration not found",
			args: func(p testProject) []string {
				return []string{"--project-dir", p.dir, "--include-dir", p.includeDir}
			},
			expectedErr: store.ErrConfigNotFound,
		},
		{
			name:     "malformed configuration",
			document: `{"i2c": `,
			args: func(p testProject) []string {
				return []string{"--project-dir", p.dir, "--include-dir", p.includeDir}
			},
			expectedErr: hwconfig.ErrMalformedDocument,
		},
		{
			name:     "include directory does not exist",
			document: fullDocument,
			args: func(p testProject) []string {
				return []string{"--project-dir", p.dir, "--include-dir", filepath.Join(p.dir, "missing")}
			},
			expectedErr: store.ErrOutputWrite,
		},
		{
			name:     "no include directory supplied",
			document: fullDocument,
			args: func(p testProject) []string {
				return []string{"--project-dir", p.dir}
			},
			expectedErr: config.ErrMissingIncludeDir,
		},
		{
			name:     "unknown schema",
			document: fullDocument,
			args: func(p testProject) []string {
				return []string{"--project-dir", p.dir, "--include-dir", p.includeDir, "--schema", "v9"}
			},
			expectedErr: hwconfig.ErrUnknownSchema,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestProject(t, tt.document)

			_, _, err := runCommand(t, tt.args(p)...)
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

// ── schema ────────────────────────────────────────────────────────────────────

func TestSchema_PrintsJSONSchema(t *testing.T) {
	stdout, _, err := runCommand(t, "schema", "--schema", hwconfig.SchemaSensors)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &decoded))
	assert.Equal(t, "object", decoded["type"])
	assert.ElementsMatch(t, []any{"i2c", "s_cs", "s_op", "s_en", "en_chip"}, decoded["required"])
}

// ── version ───────────────────────────────────────────────────────────────────

func TestVersion_PrintsBuildInfo(t *testing.T) {
	stdout, _, err := runCommand(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "Build version: 1.0.0\nBuild date: 2026-10-19\nBuild commit: abc1234\n", stdout)
}

func TestRoot_RejectsPositionalArgs(t *testing.T) {
	_, _, err := runCommand(t, "extra")
	assert.Error(t, err)
}

func TestGenerate_ExplicitNoDryRunBeatsEnv(t *testing.T) {
	p := newTestProject(t, fullDocument)
	t.Setenv("HWCONFIG_DRY_RUN", "true")

	stdout, _, err := runCommand(t, "--project-dir", p.dir, "--include-dir", p.includeDir, "--dry-run=false")
	require.NoError(t, err)
	assert.Empty(t, stdout)

	_, err = os.Stat(p.headerPath())
	assert.NoError(t, err)
}

func TestGenerate_FailureLoggedOnceAtDebug(t *testing.T) {
	p := newTestProject(t, `{"i2c": {"sda": 21}}`)

	_, stderr, err := runCommand(t, "--project-dir", p.dir, "--include-dir", p.includeDir, "--log-level", "debug")
	require.ErrorIs(t, err, hwconfig.ErrMissingField)
	assert.Equal(t, 1, strings.Count(stderr, "header generation failed"))
	assert.NotContains(t, stderr, " ERR ")
}
