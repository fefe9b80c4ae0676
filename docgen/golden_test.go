package docgen_test

import (
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kitty-conf/docgen/docgen"
	"github.com/kitty-conf/docgen/kittydef"
)

var update = flag.Bool("update", false, "update golden files")

// TestGenerateGolden runs the full pipeline over a representative definition
// dump and compares the artifact against a golden file. Comparison is
// semantic (JSON equality) to tolerate formatter differences.
func TestGenerateGolden(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "definition.yaml"))
	require.NoError(t, err)

	def, err := kittydef.Load(data)
	require.NoError(t, err)

	doc, err := docgen.NewGenerator().Generate(def)
	require.NoError(t, err)

	got, err := json.MarshalIndent(doc, "", "  ")
	require.NoError(t, err)

	got = append(got, '\n')

	goldenPath := filepath.Join("testdata", "kitty_options.golden.json")

	if *update {
		require.NoError(t, os.WriteFile(goldenPath, got, 0o644))

		return
	}

	want, err := os.ReadFile(goldenPath)
	require.NoError(t, err, "golden file %s not found; run with -update to create", goldenPath)

	assert.JSONEq(t, string(want), string(got))
}
