package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/fairy-core/internal/infrastructure/config"
)

func TestRunDemoLoop_SingleFairy(t *testing.T) {
	var out, errOut bytes.Buffer
	in := strings.NewReader("Tink\n10\nyes\nno\nn\n")

	err := runDemoLoop(context.Background(), config.Default(), in, &out, &errOut, false)

	require.NoError(t, err)
	assert.Empty(t, errOut.String())

	output := out.String()
	assert.True(t, strings.HasPrefix(output, "Hello! We are going to make a fairy today.\n"))
	assert.Contains(t, output, "How many cm tall is Tink? ")
	assert.Contains(t, output, "Do you want to add Pinecone to your collection?\n")
	assert.Contains(t, output, "You have added Pinecone to your collection!\n")
	assert.Contains(t, output, "OK! Snail will not be added to your collection.\n")
	assert.Contains(t, output, "You have walked 1 m straight\n")
	assert.Contains(t, output, "Tink: 10 cm (normal 10 cm), energy 80/100, 2/15 items\n")
	assert.Equal(t, 1, strings.Count(output, "Would you like to make another fairy? "))
}

func TestRunDemoLoop_DefaultsAndRepeat(t *testing.T) {
	var out, errOut bytes.Buffer
	in := strings.NewReader("\n\n\n\ny\nPuck\n25\nno\n")

	err := runDemoLoop(context.Background(), config.Default(), in, &out, &errOut, false)

	require.NoError(t, err)
	output := out.String()
	assert.Contains(t, output, "How many cm tall is <Name Unknown>? ")
	assert.Contains(t, output, "Error! already at height bound: cannot shrink below 1 cm\n")
	assert.Contains(t, output, "1 of 15 steps failed.\n")
	assert.Contains(t, output, "How many cm tall is Puck? ")
	assert.Equal(t, 2, strings.Count(output, "Would you like to make another fairy? "))
	assert.Contains(t, errOut.String(), "error: creating fairy: height out of range: 25")
}

func TestRunDemoLoop_BadHeight(t *testing.T) {
	var out, errOut bytes.Buffer
	in := strings.NewReader("Tink\ntall\nno\n")

	err := runDemoLoop(context.Background(), config.Default(), in, &out, &errOut, false)

	require.NoError(t, err)
	assert.Contains(t, errOut.String(), `height must be a whole number of cm: parsing number "tall"`)
	assert.NotContains(t, out.String(), "Actions your fairy can take:")
}

func TestRunDemoLoop_ConfiguredDefaults(t *testing.T) {
	var out, errOut bytes.Buffer
	cfg := config.Default()
	cfg.Fairy.Name = "Tink"
	cfg.Fairy.Height = 12
	in := strings.NewReader("\n\nno\nno\nno\n")

	err := runDemoLoop(context.Background(), cfg, in, &out, &errOut, false)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Tink: 12 cm (normal 12 cm), energy 80/100, 1/15 items\n")
}

func TestRunDemoLoop_JSON(t *testing.T) {
	var out, errOut bytes.Buffer
	in := strings.NewReader("Tink\n5\nyes\nyes\n")

	err := runDemoLoop(context.Background(), config.Default(), in, &out, &errOut, true)

	require.NoError(t, err)
	output := out.String()
	assert.Contains(t, output, `{"notice":"You have added Leaf to your collection!"}`)
	assert.Contains(t, output, `"name":"Tink"`)
	assert.Contains(t, output, `"items":["Pinecone","Snail","Leaf"]`)
	assert.Contains(t, output, `"shrunk_height":1`)
	assert.Contains(t, output, `"restored_height":5`)

	lines := requireJSONLines(t, output)
	require.NotEmpty(t, lines)
	assert.Contains(t, lines[len(lines)-1], "fairy")

	prompts := errOut.String()
	assert.Contains(t, prompts, "Hello! We are going to make a fairy today.\n")
	assert.Contains(t, prompts, "What is your fairy's name? ")
	assert.Contains(t, prompts, "Do you want to add Pinecone to your collection?\n")
	assert.Contains(t, prompts, "Would you like to make another fairy? ")
}

func TestRunDemoLoop_EmptyInput(t *testing.T) {
	var out, errOut bytes.Buffer

	err := runDemoLoop(context.Background(), config.Default(), strings.NewReader(""), &out, &errOut, false)

	require.NoError(t, err)
	assert.Equal(t, "Hello! We are going to make a fairy today.\nWhat is your fairy's name? ", out.String())
}
