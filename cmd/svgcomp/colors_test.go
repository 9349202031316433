package main

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorsCommand(t *testing.T) {
	dir := writeIcons(t, map[string]string{"circle.svg": circleSVG})

	output, err := executeCommand(t, "colors", dir, "--config", filepath.Join(dir, "none.yaml"), "--no-color")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "circle.svg")+" (1 color)\n  red\n", output)
}

func TestColorsCommand_JSON(t *testing.T) {
	dir := writeIcons(t, map[string]string{
		"arrow.svg":  arrowSVG,
		"broken.svg": `<svg>`,
		"circle.svg": circleSVG,
	})

	output, err := executeCommand(t,
		"colors", dir,
		"--output-format", "json",
		"--config", filepath.Join(dir, "none.yaml"),
	)
	require.Error(t, err)
	assert.Equal(t, "1 of 3 files could not be processed", err.Error())

	var report []fileColors
	require.NoError(t, json.Unmarshal([]byte(output), &report))
	require.Len(t, report, 3)

	assert.Equal(t, fileColors{File: filepath.Join(dir, "arrow.svg"), Colors: []string{"#333"}}, report[0])
	assert.Equal(t, filepath.Join(dir, "broken.svg"), report[1].File)
	assert.Empty(t, report[1].Colors)
	assert.NotEmpty(t, report[1].Error)
	assert.Equal(t, fileColors{File: filepath.Join(dir, "circle.svg"), Colors: []string{"red"}}, report[2])
}
