// Command lazyrpn evaluates lazy postfix expressions, one per line.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"fortio.org/log"
	"github.com/mattn/go-isatty"
	"github.com/mattn/lazyrpn"
	"github.com/mattn/lazyrpn/internal/history"
)

type session struct {
	calc  *lazyrpn.Calculator
	store history.Store
	out   io.Writer
}

// eval calculates expr and records it. Division by zero in the default /
// panics inside the calculator; here it is reported like any other error.
func (s *session) eval(expr string) (n int, err error) {
	defer func() {
		if r := recover(); r != nil {
			re, ok := r.(runtime.Error)
			if !ok {
				panic(r)
			}
			n, err = 0, re
		}
		e := history.Entry{Expr: expr, Result: n}
		if err != nil {
			e.Err = err.Error()
		}
		if serr := s.store.Add(&e); serr != nil {
			log.Warnf("history: %v", serr)
		}
	}()
	return s.calc.Calculate(expr)
}

// run evaluates every line of r, skipping blank lines and lines starting
// with '#'. It returns the number of expressions that failed.
func (s *session) run(r io.Reader) (int, error) {
	failed := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		n, err := s.eval(line)
		if err != nil {
			log.Errf("%q: %v", line, err)
			failed++
			continue
		}
		fmt.Fprintln(s.out, n)
	}
	return failed, scanner.Err()
}

func (s *session) repl(in io.Reader) {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(s.out, "> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		n, err := s.eval(line)
		if err != nil {
			fmt.Fprintln(s.out, err)
			continue
		}
		fmt.Fprintln(s.out, n)
	}
}

func printHistory(w io.Writer, store history.Store, n int) error {
	entries, err := store.Last(n)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.Failed() {
			fmt.Fprintf(w, "%d\t%s\t%q\terror: %s\n", e.ID, e.Ts.Format("2006-01-02 15:04:05"), e.Expr, e.Err)
			continue
		}
		fmt.Fprintf(w, "%d\t%s\t%q\t%d\n", e.ID, e.Ts.Format("2006-01-02 15:04:05"), e.Expr, e.Result)
	}
	return nil
}

func openStore(path string) (history.Store, error) {
	if path == "" {
		return history.NewMemory(), nil
	}
	return history.NewSQLite(path)
}

func main() {
	var (
		evalStr = flag.String("e", "", "evaluate expression")
		file    = flag.String("f", "", "evaluate each line of file")
		useLib  = flag.Bool("lib", true, "load the extension functions (! , ? $ P 1)")
		dbPath  = flag.String("db", "", "SQLite history database path (empty keeps history in memory)")
		last    = flag.Int("history", 0, "print the last n history entries and exit")
		verbose = flag.Bool("v", false, "trace parsing")
	)
	flag.Parse()

	if flag.NArg() > 0 {
		flag.Usage()
		os.Exit(2)
	}
	if *verbose {
		log.SetLogLevel(log.Verbose)
	}

	store, err := openStore(*dbPath)
	if err != nil {
		log.Fatalf("history: %v", err)
	}
	os.Exit(run(store, *evalStr, *file, *useLib, *last))
}

func run(store history.Store, evalStr, file string, useLib bool, last int) int {
	defer store.Close()

	if last > 0 {
		if err := printHistory(os.Stdout, store, last); err != nil {
			log.Errf("history: %v", err)
			return 1
		}
		return 0
	}

	calc := lazyrpn.New()
	if useLib {
		if err := lazyrpn.LoadLib(calc, os.Stdout); err != nil {
			log.Errf("%v", err)
			return 1
		}
	}
	s := &session{calc: calc, store: store, out: os.Stdout}

	var in io.Reader
	switch {
	case evalStr != "":
		in = strings.NewReader(evalStr)
	case file != "":
		f, err := os.Open(file)
		if err != nil {
			log.Errf("%v", err)
			return 1
		}
		defer f.Close()
		in = f
	case isatty.IsTerminal(os.Stdin.Fd()):
		s.repl(os.Stdin)
		return 0
	default:
		in = os.Stdin
	}

	failed, err := s.run(in)
	if err != nil {
		log.Errf("%v", err)
		return 1
	}
	if failed > 0 {
		return 1
	}
	return 0
}
