/*
Command filestream dumps a char stream's runes one per line, each with
its (line, column) position, from a file or from stdin. It exists to
exercise charstream.Stream in isolation from the lexer.

Usage:

	filestream [path]
*/
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/akashmaji946/kaleidoscope/charstream"
)

var (
	redColor = color.New(color.FgRed)
)

func main() {
	var r *os.File = os.Stdin
	if len(os.Args) > 1 {
		f, err := os.Open(os.Args[1])
		if err != nil {
			redColor.Fprintf(os.Stderr, "[FILE ERROR] could not open %q: %v\n", os.Args[1], err)
			os.Exit(1)
		}
		defer f.Close()
		r = f
	}

	s := charstream.New(r)
	for {
		pos := s.Position()
		ch, ok := s.Advance()
		if !ok {
			break
		}
		fmt.Printf("%s %q\n", pos.String(), ch)
	}
	if err := s.Err(); err != nil {
		redColor.Fprintf(os.Stderr, "[STREAM ERROR] %s\n", err.Error())
		os.Exit(1)
	}
}
