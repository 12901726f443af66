package main

import (
	"fmt"
	"io"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// writeColored writes the unified diff in to w, colored with 256 color terminal escape codes.
func writeColored(w io.Writer, in string) error {
	lexer := lexers.Get("diff")
	if lexer == nil {
		lexer = lexers.Fallback
	}
	it, err := chroma.Coalesce(lexer).Tokenise(nil, in)
	if err != nil {
		return fmt.Errorf("parsing diff: %v", err)
	}
	if err := formatters.TTY256.Format(w, styles.Get("monokai"), it); err != nil {
		return fmt.Errorf("coloring diff: %v", err)
	}
	return nil
}
