// Package console provides terminal adapters for the fairy ports.
package console

import (
	"encoding/json"
	"fmt"
	"io"
)

// TextNotifier writes each notice as a plain line.
type TextNotifier struct {
	w io.Writer
}

// NewTextNotifier creates a notifier writing to w.
func NewTextNotifier(w io.Writer) *TextNotifier {
	return &TextNotifier{w: w}
}

// Notify writes message followed by a newline. Write errors are ignored.
func (n *TextNotifier) Notify(message string) {
	fmt.Fprintln(n.w, message)
}

// Notice is the JSON form of a notice.
type Notice struct {
	Notice string `json:"notice"`
}

// JSONNotifier writes each notice as a JSON object on its own line.
type JSONNotifier struct {
	enc *json.Encoder
}

// NewJSONNotifier creates a notifier writing JSON lines to w.
func NewJSONNotifier(w io.Writer) *JSONNotifier {
	return &JSONNotifier{enc: json.NewEncoder(w)}
}

// Notify encodes message as a Notice. Write errors are dropped, as in
// TextNotifier: a notice sink has no caller to report them to.
func (n *JSONNotifier) Notify(message string) {
	_ = n.enc.Encode(Notice{Notice: message})
}
