package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/librescoot/mealy"
	"github.com/librescoot/mealy/automata"
	"github.com/librescoot/mealy/internal/config"
)

// lineFunc runs one automaton over a line and writes its result. It reports
// whether the line was accepted.
type lineFunc func(line string, out io.Writer) (bool, error)

// scan runs the configured automaton over every line from args, or from in
// when args is empty. It returns the number of rejected lines.
func scan(cfg config.Config, args []string, in io.Reader, out io.Writer, logger *slog.Logger) (int, error) {
	fn, err := newLineFunc(cfg.Automaton, logger)
	if err != nil {
		return 0, err
	}

	rejected := 0
	handle := func(n int, line string) error {
		if cfg.Normalize {
			line = norm.NFC.String(line)
		}
		ok, err := fn(line, out)
		if err != nil {
			return fmt.Errorf("line %d: %w", n, err)
		}
		if !ok {
			rejected++
		}
		logger.Debug("line scanned", "line", n, "accepted", ok)
		return nil
	}

	if len(args) > 0 {
		for i, line := range args {
			if err := handle(i+1, line); err != nil {
				return rejected, err
			}
		}
		return rejected, nil
	}

	sc := bufio.NewScanner(in)
	n := 0
	for sc.Scan() {
		n++
		if err := handle(n, sc.Text()); err != nil {
			return rejected, err
		}
	}
	if err := sc.Err(); err != nil {
		return rejected, fmt.Errorf("read input: %w", err)
	}
	return rejected, nil
}

func newLineFunc(name string, logger *slog.Logger) (lineFunc, error) {
	switch name {
	case config.AutomatonFloat:
		return floatLines(automata.Float()), nil
	case config.AutomatonCount:
		m, err := automata.NewCountingMachine(mealy.WithLogger[automata.CounterEffect](logger))
		if err != nil {
			return nil, fmt.Errorf("build counter: %w", err)
		}
		return countLines(m), nil
	case config.AutomatonSplit:
		m, err := automata.NewSplittingMachine(mealy.WithLogger[automata.SplitEffect](logger))
		if err != nil {
			return nil, fmt.Errorf("build splitter: %w", err)
		}
		return splitLines(m), nil
	default:
		return nil, fmt.Errorf("%w: automaton %q", config.ErrInvalidValue, name)
	}
}

func floatLines(m *mealy.Machine[automata.FloatState, automata.NoEffect]) lineFunc {
	return func(line string, out io.Writer) (bool, error) {
		err := m.Run(line, nil)

		var reject *mealy.RejectError[automata.FloatState]
		switch {
		case err == nil:
			_, werr := fmt.Fprintf(out, "accept\t%s\n", line)
			return true, werr
		case errors.As(err, &reject):
			_, werr := fmt.Fprintf(out, "reject\t%s\tstate=%s index=%d char=%q\n",
				line, reject.From, reject.Input.Index, reject.Input.Char)
			return false, werr
		default:
			return false, err
		}
	}
}

func countLines(m *mealy.Machine[automata.WordState, automata.CounterEffect]) lineFunc {
	var counter automata.Counter
	return func(line string, out io.Writer) (bool, error) {
		counter.Reset()
		if err := m.Run(line, &counter); err != nil {
			return false, err
		}
		_, err := fmt.Fprintf(out, "words=%d numbers=%d\t%s\n", counter.Words, counter.Numbers, line)
		return true, err
	}
}

func splitLines(m *mealy.Machine[automata.WordState, automata.SplitEffect]) lineFunc {
	splitter := automata.NewSplitter()
	return func(line string, out io.Writer) (bool, error) {
		splitter.Reset()
		if err := m.Run(line, splitter); err != nil {
			return false, err
		}
		if err := splitter.Err(); err != nil {
			return false, err
		}
		_, err := fmt.Fprintf(out, "words=[%s] sum=%s\t%s\n",
			strings.Join(splitter.Words(), " "),
			strconv.FormatFloat(splitter.Sum(), 'g', -1, 64),
			line)
		return true, err
	}
}
