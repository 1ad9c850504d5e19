package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var farmerProfile = filepath.Join("..", "..", "internal", "config", "testdata", "farmer.yaml")

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	cmd.SetArgs(args)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	err := cmd.Execute()
	return buf.String(), err
}

func TestRootCommand(t *testing.T) {
	require.NotNil(t, rootCmd)
	assert.Equal(t, "pensionfit", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("catalog"))
}

func TestRootCommand_Help(t *testing.T) {
	out, err := execute(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "evaluate")
	assert.Contains(t, out, "lookup")
}

func TestCommandSubcommands(t *testing.T) {
	expected := []string{"evaluate", "lookup", "validate", "schemes", "scenario", "serve", "version"}
	var names []string
	for _, c := range newRootCmd().Commands() {
		names = append(names, c.Name())
	}
	for _, name := range expected {
		assert.Contains(t, names, name)
	}
}

func TestRootCommand_InvalidCommand(t *testing.T) {
	_, err := execute(t, "invalid-command")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "pensionfit dev")
}

func TestEvaluate_Console(t *testing.T) {
	out, err := execute(t, "evaluate", farmerProfile)
	require.NoError(t, err)
	assert.Contains(t, out, "PENSION SCHEME ASSESSMENT")
	assert.Contains(t, out, "Ramesh Kumar")
	assert.Contains(t, out, "SUMMARY")
}

func TestEvaluate_JSON(t *testing.T) {
	out, err := execute(t, "evaluate", farmerProfile, "--format", "json")
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Contains(t, decoded, "schemes")
	assert.Contains(t, decoded, "topRecommendations")
}

func TestEvaluate_UnknownFormat(t *testing.T) {
	_, err := execute(t, "evaluate", farmerProfile, "--format", "html")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestEvaluate_Save(t *testing.T) {
	abs, err := filepath.Abs(farmerProfile)
	require.NoError(t, err)
	chdirForTest(t, t.TempDir())

	out, err := execute(t, "evaluate", abs, "--format", "csv", "--save")
	require.NoError(t, err)
	assert.Contains(t, out, "Report written to pension_report_")

	matches, err := filepath.Glob("pension_report_*.csv")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	content, err := os.ReadFile(matches[0])
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), "Rank,SchemeID"))
}

func TestLookup(t *testing.T) {
	out, err := execute(t, "lookup", "--age", "65", "--origin", "india", "--salary", "200000", "--format", "csv")
	require.NoError(t, err)
	assert.Contains(t, out, "CEN_NSAP_IGNOAPS")
	assert.Contains(t, out, "CEN_SCSS")
}

func TestLookup_Validation(t *testing.T) {
	_, err := execute(t, "lookup", "--age", "30")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "origin: is required")

	_, err = execute(t, "lookup", "--age", "30", "--origin", "Germany", "--salary", "1000")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported country")
}

func TestValidate(t *testing.T) {
	out, err := execute(t, "validate", farmerProfile)
	require.NoError(t, err)
	assert.Contains(t, out, "is valid (Ramesh Kumar")
}

func TestSchemes(t *testing.T) {
	out, err := execute(t, "schemes", "--country", "uk")
	require.NoError(t, err)
	assert.Contains(t, out, "UK_STATE_NEW")
	assert.NotContains(t, out, "CEN_APY")

	out, err = execute(t, "schemes", "--json")
	require.NoError(t, err)
	var records []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	assert.NotEmpty(t, records)

	_, err = execute(t, "schemes", "--catalog", "does-not-exist.json")
	assert.Error(t, err)
}

func TestScenario(t *testing.T) {
	out, err := execute(t, "scenario")
	require.NoError(t, err)
	assert.Contains(t, out, "Saving ₹10,000/month from age 30 to 60 (30 years)")

	out, err = execute(t, "scenario", "--contribution", "500", "--country", "UK", "--json")
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.EqualValues(t, 30, decoded["yearsToRetirement"])

	_, err = execute(t, "scenario", "--current-age", "70")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "retirement age must be greater than current age")

	_, err = execute(t, "scenario", "--return", "ten")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --return")
}

// chdirForTest changes the working directory to dir for the duration of the
// test and restores it on cleanup (equivalent of testing.T.Chdir, Go 1.24+).
func chdirForTest(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
