package commands

import (
	"encoding/json"
	"io"
	"os"

	"golang.org/x/term"
)

// wantJSON reports whether output to w should be JSON: when forced, or when w is not a terminal.
func wantJSON(w io.Writer, force bool) bool {
	if force {
		return true
	}
	if f, ok := w.(*os.File); ok {
		return !term.IsTerminal(int(f.Fd()))
	}
	return true
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
