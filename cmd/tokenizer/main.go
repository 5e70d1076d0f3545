/*
Command tokenizer dumps the token stream of a Kaleidoscope source file
(or stdin) in one of three formats: a human-readable debug dump
(grounded on the teacher's Token.Print()), a JSON array of tagged-union
token records, or the structurally equivalent TOML.

Usage:

	tokenizer [-F debug|json|toml] [input]
*/
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/pelletier/go-toml/v2"

	"github.com/akashmaji946/kaleidoscope/charstream"
	"github.com/akashmaji946/kaleidoscope/lexer"
)

var redColor = color.New(color.FgRed)

// positionRecord is the wire shape of a charstream.Position.
type positionRecord struct {
	Line   *int `json:"line" toml:"line"`
	Column int  `json:"column" toml:"column"`
}

// tokenRecord is the tagged-union wire shape of a lexer.Token: Type
// selects which payload field is meaningful, matching spec.md's
// {"type": <kind-tag>, "span": ..., "start": {...}, "end": {...}} shape.
type tokenRecord struct {
	Type     string         `json:"type" toml:"type"`
	Span     string         `json:"span" toml:"span"`
	Start    positionRecord `json:"start" toml:"start"`
	End      positionRecord `json:"end" toml:"end"`
	Keyword  string         `json:"keyword,omitempty" toml:"keyword,omitempty"`
	Operator string         `json:"operator,omitempty" toml:"operator,omitempty"`
	Bracket  string         `json:"bracket,omitempty" toml:"bracket,omitempty"`
	Side     string         `json:"side,omitempty" toml:"side,omitempty"`
}

func toPosition(p charstream.Position) positionRecord {
	var line *int
	if p.Line != nil {
		l := *p.Line
		line = &l
	}
	return positionRecord{Line: line, Column: p.Column}
}

func toRecord(tok lexer.Token) tokenRecord {
	rec := tokenRecord{
		Type:  tok.Kind.String(),
		Span:  tok.Span,
		Start: toPosition(tok.Start),
		End:   toPosition(tok.End),
	}
	switch tok.Kind {
	case lexer.KeywordTok:
		rec.Keyword = string(tok.Keyword)
	case lexer.OperatorTok:
		rec.Operator = string(tok.Operator)
	case lexer.BracketTok:
		rec.Bracket = tok.BracketKind.String()
		rec.Side = tok.BracketSide.String()
	}
	return rec
}

func main() {
	format := flag.String("F", "debug", "output format: debug, json, or toml")
	flag.Parse()

	var r *os.File = os.Stdin
	if args := flag.Args(); len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			redColor.Fprintf(os.Stderr, "[FILE ERROR] could not open %q: %v\n", args[0], err)
			os.Exit(1)
		}
		defer f.Close()
		r = f
	}

	lx := lexer.New(charstream.New(r))
	var records []tokenRecord
	for {
		tok, err := lx.NextToken()
		if err != nil {
			redColor.Fprintf(os.Stderr, "[LEX ERROR] %s\n", err.Error())
			os.Exit(1)
		}
		if tok.Kind == lexer.Eof {
			break
		}
		if *format == "debug" {
			fmt.Println(tok.String())
			continue
		}
		records = append(records, toRecord(tok))
	}

	switch *format {
	case "debug":
		return
	case "json":
		out, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			redColor.Fprintf(os.Stderr, "[ENCODE ERROR] %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(out))
	case "toml":
		out, err := toml.Marshal(struct {
			Tokens []tokenRecord `toml:"tokens"`
		}{Tokens: records})
		if err != nil {
			redColor.Fprintf(os.Stderr, "[ENCODE ERROR] %v\n", err)
			os.Exit(1)
		}
		fmt.Print(string(out))
	default:
		redColor.Fprintf(os.Stderr, "[USAGE ERROR] unknown format %q (want debug, json, or toml)\n", *format)
		os.Exit(1)
	}
}
