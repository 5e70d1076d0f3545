/*
Command repl is the Kaleidoscope front-end's interactive driver. It
mirrors the teacher's main/main.go dispatch (file mode / REPL mode /
server mode) and repl/repl.go's banner-and-readline interactive loop,
generalized to drive a driver.Interpreter instead of an evaluator.

Usage:

	repl                  - interactive REPL on stdin/stdout
	repl <path>           - parse and emit a source file
	repl server <port>    - one driver.Interpreter per TCP connection
	repl -O {0,1,2,3} ... - optimization-level hint, accepted but not used
*/
package main

import (
	"flag"
	"fmt"
	"io"
	"net"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/akashmaji946/kaleidoscope/driver"
	"github.com/akashmaji946/kaleidoscope/emitter/mock"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

const (
	version = "v1.0.0"
	author  = "kaleidoscope"
	license = "MIT"
	prompt  = "kaleidoscope>>> "
	line    = "----------------------------------------------------------------"
)

const banner = `
  _  __     _      _     _                           _
 | |/ /__ _| | ___(_) __| | ___  ___  ___ ___  _ __ (_)
 | ' // _` + "`" + ` | |/ _ \ |/ _` + "`" + ` |/ _ \/ __|/ __/ _ \| '_ \| |
 | . \ (_| | |  __/ | (_| | (_) \__ \ (_| (_) | |_) | |
 |_|\_\__,_|_|\___|_|\__,_|\___/|___/\___\___/| .__/|_|
                                               |_|
`

func main() {
	optLevel := flag.Int("O", 0, "optimization level hint (0-3), accepted but not passed to the builder")
	flag.Parse()
	_ = optLevel // accepted for interface parity with a real LLVM-backed builder; the mock builder never optimizes

	args := flag.Args()
	if len(args) == 0 {
		runInteractive(os.Stdin, os.Stdout)
		return
	}

	if args[0] == "server" {
		if len(args) < 2 {
			redColor.Fprintf(os.Stderr, "[USAGE ERROR] missing port for server mode. Usage: repl server <port>\n")
			os.Exit(1)
		}
		startServer(args[1])
		return
	}

	runFile(args[0])
}

func printBanner(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", line)
	greenColor.Fprintf(w, "%s\n", banner)
	blueColor.Fprintf(w, "%s\n", line)
	yellowColor.Fprintln(w, "Version: "+version+" | Author: "+author+" | License: "+license)
	blueColor.Fprintf(w, "%s\n", line)
	cyanColor.Fprintf(w, "%s\n", "Type a definition, extern declaration, or expression and press enter.")
	cyanColor.Fprintf(w, "%s\n", "Type '.exit' to quit.")
	blueColor.Fprintf(w, "%s\n", line)
}

// runInteractive drives one driver.Interpreter per readline session,
// feeding it one line at a time through an io.Pipe so the Interpreter's
// own charstream.Stream does the reading, exactly as a file-mode
// Interpreter would.
func runInteractive(r io.Reader, w io.Writer) {
	printBanner(w)

	rl, err := readline.NewEx(&readline.Config{Prompt: prompt, Stdin: io.NopCloser(r)})
	if err != nil {
		redColor.Fprintf(w, "[REPL ERROR] could not start readline: %v\n", err)
		return
	}
	defer rl.Close()

	pr, pw := io.Pipe()
	it := driver.New(pr, mock.NewMockBuilder())
	it.Verbosity = driver.Normal
	it.ProceedOnError = true
	defer it.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		it.Run(&reportWriter{w: w})
	}()

	for {
		text, err := rl.Readline()
		if err != nil {
			break
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		if text == ".exit" {
			break
		}
		rl.SaveHistory(text)
		fmt.Fprintln(pw, text)
	}
	pw.Close()
	<-done
	w.Write([]byte("Good Bye!\n"))
}

// reportWriter colors a driver.Interpreter's "error:" lines red and
// everything else yellow, matching the teacher's red-for-errors,
// yellow-for-results convention.
type reportWriter struct {
	w io.Writer
}

func (rw *reportWriter) Write(p []byte) (int, error) {
	s := string(p)
	if strings.HasPrefix(s, "error:") {
		redColor.Fprint(rw.w, s)
	} else {
		yellowColor.Fprint(rw.w, s)
	}
	return len(p), nil
}

func runFile(path string) {
	f, err := os.Open(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] could not open %q: %v\n", path, err)
		os.Exit(1)
	}
	defer f.Close()

	it := driver.New(f, mock.NewMockBuilder())
	defer it.Close()
	it.Verbosity = driver.Normal

	if err := it.Run(os.Stdout); err != nil {
		redColor.Fprintf(os.Stderr, "[ERROR] %s\n", err.Error())
		os.Exit(1)
	}
}

func startServer(port string) {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[SERVER ERROR] failed to start server on port %s: %v\n", port, err)
		os.Exit(1)
	}
	cyanColor.Printf("kaleidoscope REPL server listening on :%s\n", port)
	defer listener.Close()

	for {
		conn, err := listener.Accept()
		if err != nil {
			redColor.Fprintf(os.Stderr, "[SERVER ERROR] failed to accept connection: %v\n", err)
			continue
		}
		go handleClient(conn)
	}
}

func handleClient(conn net.Conn) {
	defer conn.Close()
	cyanColor.Printf("new client connected from %s\n", conn.RemoteAddr())
	it := driver.New(conn, mock.NewMockBuilder())
	defer it.Close()
	it.Verbosity = driver.Normal
	it.ProceedOnError = true
	it.Run(conn)
	cyanColor.Printf("client disconnected from %s\n", conn.RemoteAddr())
}
