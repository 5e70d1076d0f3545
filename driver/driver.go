/*
Package driver bundles the char stream, lexer, parser, and IR emitter
into the single-session object cmd/repl drives. An
Interpreter owns its Stream/Lexer/Parser and one emitter.Builder for the
duration of a session, the way the teacher's REPL owns one evaluator per
connection in main/main.go's startServer/handleClient.
*/
package driver

import (
	"fmt"
	"io"

	"github.com/akashmaji946/kaleidoscope/ast"
	"github.com/akashmaji946/kaleidoscope/charstream"
	"github.com/akashmaji946/kaleidoscope/emitter"
	"github.com/akashmaji946/kaleidoscope/kerr"
	"github.com/akashmaji946/kaleidoscope/lexer"
	"github.com/akashmaji946/kaleidoscope/parser"
)

// Verbosity controls how much an Interpreter reports about a successful
// Step, independent of error reporting (which is always on).
type Verbosity int

const (
	// Quiet reports nothing on success.
	Quiet Verbosity = iota
	// Normal reports the value each top-level expression produced.
	Normal
	// Verbose additionally echoes the parsed form before emitting it.
	Verbose
)

// Interpreter runs the parse-then-emit loop over one input source. It
// bundles a *charstream.Stream, *lexer.Lexer, *parser.Parser, and an
// emitter.Builder for the duration of a session.
type Interpreter struct {
	stream *charstream.Stream
	parser *parser.Parser
	build  emitter.Builder

	// Verbosity controls success reporting; see Verbosity.
	Verbosity Verbosity
	// ProceedOnError keeps Run looping after a *kerr.Error instead of
	// stopping at the first one, mirroring the REPL's "keep the prompt
	// alive after a bad line" behavior rather than file mode's
	// report-and-exit behavior.
	ProceedOnError bool
}

// New builds an Interpreter reading from r and emitting through build.
func New(r io.Reader, build emitter.Builder) *Interpreter {
	s := charstream.New(r)
	l := lexer.New(s)
	return &Interpreter{
		stream: s,
		parser: parser.New(l),
		build:  build,
	}
}

// Builder returns the emitter.Builder this Interpreter emits through, so
// a caller can inspect declared functions or bound values after Run.
func (it *Interpreter) Builder() emitter.Builder {
	return it.build
}

// Step parses and emits exactly one top-level form. ok is false once the
// stream is exhausted with nothing left to parse.
func (it *Interpreter) Step() (node ast.Node, value emitter.Num, ok bool, err *kerr.Error) {
	node, ok, err = it.parser.ParseTop()
	if err != nil || !ok {
		return node, emitter.Num{}, ok, err
	}
	value, err = emitter.Emit(node, it.build)
	return node, value, true, err
}

// resync discards whatever look-ahead token a failed Step left buffered
// in the parser, so the next Step reads forward instead of re-failing on
// the same token. Emit-time errors (e.g. an undefined variable) already
// consumed their token during a successful parse, so this is a harmless
// no-op for those; it only matters for parse-time errors.
func (it *Interpreter) resync() {
	it.parser.Resync()
}

// Run drives Step to completion, writing a line of report per
// successful step (per Verbosity) and per error to w. It stops at the
// first error unless ProceedOnError is set, in which case it resyncs
// past the offending token and keeps pulling top-level forms. A parse
// error leaves its offending token buffered in the parser's one-slot
// look-ahead rather than consumed, so resyncing requires discarding that
// buffered token (see parser.Parser.Resync) — without it, the next
// ParseTop would Peek the same token and return the same error forever.
// A read error from the underlying stream is sticky, so Run always stops
// at one and returns it, even when ProceedOnError is set.
func (it *Interpreter) Run(w io.Writer) error {
	for {
		node, value, ok, kerrv := it.Step()
		if kerrv != nil {
			fmt.Fprintf(w, "error: %s\n", kerrv.Error())
			if it.ProceedOnError && it.stream.Err() == nil {
				it.resync()
				continue
			}
			return kerrv
		}
		if !ok {
			if serr := it.stream.Err(); serr != nil {
				return serr
			}
			return nil
		}
		it.report(w, node, value)
	}
}

func (it *Interpreter) report(w io.Writer, node ast.Node, value emitter.Num) {
	if it.Verbosity == Quiet {
		return
	}
	if it.Verbosity == Verbose {
		fmt.Fprintf(w, "parsed: %s\n", describe(node))
	}
	switch node.Kind() {
	case ast.KindFunctionPrototype:
		fn, _ := ast.AsFunctionPrototype(node)
		fmt.Fprintf(w, "declared %s\n", fn.Name.Name)
	case ast.KindExternFunction:
		ext, _ := ast.AsExternFunction(node)
		fmt.Fprintf(w, "declared %s\n", ext.Prototype.Name.Name)
	case ast.KindFunction:
		fn, _ := ast.AsFunction(node)
		fmt.Fprintf(w, "defined %s\n", fn.Prototype.Name.Name)
	default:
		if value.IsInt {
			fmt.Fprintf(w, "=> %s\n", value.Int.String())
		} else {
			fmt.Fprintf(w, "=> %v\n", value.Float)
		}
	}
}

func describe(node ast.Node) string {
	if s, ok := node.(fmt.Stringer); ok {
		return s.String()
	}
	return node.Kind().String()
}

// Close releases the Interpreter's underlying stream error state. It is
// always safe to call, including after Run has already returned an
// error, and is the scoped-release counterpart of the teacher's
// defer listener.Close() / defer conn.Close() pattern.
func (it *Interpreter) Close() error {
	it.stream.ClearErr()
	return nil
}
