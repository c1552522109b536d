package main

import (
	"bufio"
	"flag"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/zephyrtronium/rpn"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run is the whole program. The result is the exit status: 0 if every
// expression was solved, 1 if any failed, and 2 for usage errors.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var (
		cfgname, inname string
		flags           config
	)
	fs := flag.NewFlagSet("rpn", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfgname, "config", "", "TOML configuration file")
	fs.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	fs.StringVar(&flags.Format, "fmt", defaultFormat, "result formatting string")
	fs.StringVar(&flags.Output, "o", outputText, "output format (text, yaml)")
	fs.BoolVar(&flags.Lines, "n", false, "parse separate input lines as separate expressions")
	fs.BoolVar(&flags.Echo, "echo", false, "print postfix forms")
	fs.StringVar(&flags.LogLevel, "log-level", defaultLogLevel, "log level (debug, info, warn, error)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr}).With().Timestamp().Logger()
	cfg, err := loadConfig(cfgname)
	if err != nil {
		logger.Error().Err(err).Msg("bad configuration")
		return 2
	}
	fs.Visit(func(f *flag.Flag) { cfg.override(f.Name, flags) })
	if err := cfg.check(); err != nil {
		logger.Error().Err(err).Msg("bad configuration")
		return 2
	}
	level, _ := zerolog.ParseLevel(cfg.LogLevel)
	logger = logger.Level(level)

	var srcs []string
	f, err := infile(inname, fs.NArg() == 0, stdin)
	if err != nil {
		logger.Error().Err(err).Msg("can't open input")
		return 2
	}
	if f != nil {
		s, err := readExprs(f, cfg.Lines)
		f.Close()
		if err != nil {
			logger.Error().Err(err).Msg("can't read input")
			return 2
		}
		srcs = append(srcs, s...)
	}
	for _, arg := range fs.Args() {
		s, err := readExprs(strings.NewReader(arg), cfg.Lines)
		if err != nil {
			logger.Error().Err(err).Msg("can't read argument")
			return 2
		}
		srcs = append(srcs, s...)
	}
	logger.Debug().Int("count", len(srcs)).Msg("solving")

	status := 0
	results := make([]result, 0, len(srcs))
	for _, src := range srcs {
		r := solve(src)
		if r.err != nil {
			logger.Warn().Err(r.err).Str("expression", src).Msg("expression failed")
			status = 1
		}
		results = append(results, r)
	}

	switch cfg.Output {
	case outputYAML:
		err = writeYAML(stdout, results, cfg.Echo)
	default:
		err = writeText(stdout, results, cfg.Format, cfg.Echo)
	}
	if err != nil {
		logger.Error().Err(err).Msg("can't write results")
		return 2
	}
	return status
}

// solve parses and evaluates a single expression.
func solve(src string) result {
	r := result{Expression: src}
	e, err := rpn.Parse(src)
	if err != nil {
		r.setErr(err)
		return r
	}
	r.Postfix = e.String()
	v, err := e.Eval()
	if err != nil {
		r.setErr(err)
		return r
	}
	r.Result = &v
	return r
}

// readExprs reads the expressions in r. If lines is true, each non-blank line
// is an expression. Otherwise, the entire input is one expression, unless it
// is blank.
func readExprs(r io.Reader, lines bool) ([]string, error) {
	if !lines {
		b, err := io.ReadAll(r)
		if err != nil {
			return nil, errors.Wrap(err, "reading expression")
		}
		s := strings.TrimSpace(string(b))
		if s == "" {
			return nil, nil
		}
		return []string{s}, nil
	}
	var srcs []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" {
			continue
		}
		srcs = append(srcs, s)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "reading expressions")
	}
	return srcs, nil
}

// infile opens the input named by inname. The result is nil if there is no
// input file and std is false.
func infile(inname string, std bool, stdin io.Reader) (io.ReadCloser, error) {
	switch {
	case inname != "" && inname != "-":
		f, err := os.Open(inname)
		if err != nil {
			return nil, errors.Wrapf(err, "opening %s", inname)
		}
		return f, nil
	case inname == "-", std:
		return io.NopCloser(stdin), nil
	}
	return nil, nil
}
