package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/twinfer/gomatch"
)

var (
	ErrTooLong       = errors.New("input exceeds the length limit")
	ErrUnknownEngine = errors.New("unknown engine")
)

// Engines selectable with --engine.
const (
	EngineBacktrack = "backtrack"
	EngineNFA       = "nfa"
)

type rootCommand struct {
	cobra.Command
	runes      bool
	ignoreCase bool
	engine     string
	maxLength  int
	file       string
}

func newRootCommand() *rootCommand {
	cmd := &rootCommand{
		Command: cobra.Command{
			Use:   "gomatch [flags] PATTERN [TEXT...]",
			Short: "Search text with a minimal pattern language",
			Long: `Search text with a minimal pattern language.

With TEXT arguments, report for each one whether PATTERN matches it.
Without, print the lines of stdin (or --file) that PATTERN matches.

PATTERN TOKENS
   ^ As first symbol: match at the start of the text only
   $ As last symbol: match at the end of the text only
   . Any single symbol
   ? Zero or one of the preceding symbol
   * Zero or more of the preceding symbol`,
			Args:         cobra.MinimumNArgs(1),
			SilenceUsage: true,
		},
		engine: EngineBacktrack,
	}
	cmd.RunE = cmd.run

	flags := cmd.Flags()
	flags.BoolVarP(&cmd.runes, "runes", "r", cmd.runes,
		"Match rune by rune instead of byte by byte")
	flags.BoolVarP(&cmd.ignoreCase, "ignore-case", "i", cmd.ignoreCase,
		"Ignore case distinctions")
	flags.StringVarP(&cmd.engine, "engine", "e", cmd.engine,
		"Matching engine: backtrack or nfa")
	flags.IntVarP(&cmd.maxLength, "max-length", "m", cmd.maxLength,
		"Reject patterns and texts longer than this many symbols (0 = no limit)")
	flags.StringVarP(&cmd.file, "file", "f", cmd.file,
		"Read lines from this file instead of stdin")
	return cmd
}

func (cmd *rootCommand) run(_ *cobra.Command, args []string) error {
	pattern, texts := args[0], args[1:]
	if err := cmd.checkLength("pattern", pattern); err != nil {
		return err
	}
	search, err := cmd.searcher(pattern)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(texts) > 0 {
		for _, text := range texts {
			if err := cmd.checkLength("text", text); err != nil {
				return err
			}
			report(out, pattern, text, search(text))
		}
		return nil
	}

	in := cmd.InOrStdin()
	if cmd.file != "" {
		f, err := os.Open(cmd.file)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	return cmd.filter(in, out, search)
}

// report prints the verdict for one text as a sentence.
func report(w io.Writer, pattern, text string, matched bool) {
	verdict := "does not matches"
	if matched {
		verdict = "matches"
	}
	fmt.Fprintf(w, "\"%s\" %s to \"%s\"\n", pattern, verdict, text)
}

// filter copies the lines of rd that search accepts to wr. Lines over the
// length limit are logged and skipped.
func (cmd *rootCommand) filter(rd io.Reader, wr io.Writer, search func(string) bool) error {
	scn := bufio.NewScanner(rd)
	lineNo := 0
	for scn.Scan() {
		lineNo++
		line := scn.Text()
		if err := cmd.checkLength("line", line); err != nil {
			log.Printf("line %d: %s", lineNo, err)
			continue
		}
		if search(line) {
			fmt.Fprintln(wr, line)
		}
	}
	return scn.Err()
}

func (cmd *rootCommand) checkLength(what, s string) error {
	if cmd.maxLength <= 0 {
		return nil
	}
	n := len(s)
	if cmd.runes {
		n = utf8.RuneCountInString(s)
	}
	if n > cmd.maxLength {
		return fmt.Errorf("%s of length %d: %w (%d)", what, n, ErrTooLong, cmd.maxLength)
	}
	return nil
}

// searcher builds the search function selected by the flags.
func (cmd *rootCommand) searcher(pattern string) (func(string) bool, error) {
	fold := func(s string) string { return s }
	if cmd.ignoreCase {
		fold = strings.ToLower
		pattern = fold(pattern)
	}

	switch cmd.engine {
	case EngineBacktrack:
		if cmd.runes {
			return func(text string) bool {
				return gomatch.SearchByRune(pattern, fold(text))
			}, nil
		}
		return func(text string) bool {
			return gomatch.Search(pattern, fold(text))
		}, nil
	case EngineNFA:
		m := gomatch.Compile(pattern)
		if cmd.runes {
			return func(text string) bool {
				return m.SearchByRune(fold(text))
			}, nil
		}
		return func(text string) bool {
			return m.Search(fold(text))
		}, nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownEngine, cmd.engine)
}
