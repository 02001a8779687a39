package console

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextNotifier(t *testing.T) {
	var buf bytes.Buffer
	n := NewTextNotifier(&buf)

	n.Notify("You have added Acorn to your collection!")
	n.Notify("Leaf")

	assert.Equal(t, "You have added Acorn to your collection!\nLeaf\n", buf.String())
}

func TestJSONNotifier(t *testing.T) {
	var buf bytes.Buffer
	n := NewJSONNotifier(&buf)

	n.Notify("You have walked 1 m north")
	n.Notify(`say "hi"`)

	assert.Equal(t, "{\"notice\":\"You have walked 1 m north\"}\n{\"notice\":\"say \\\"hi\\\"\"}\n", buf.String())
}
