// Command querydump decodes query strings and prints them as JSON, one line per input.
//
//	querydump 'a=1&a=2&flag'           {"a":["1","2"],"flag":""}
//	querydump -pairs 'https://x/?q=a+b' [{"name":"q","value":"a b"}]
//
// Without arguments, inputs are read line by line from stdin.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/indigo-web/weblinq/query"
	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog"
)

type options struct {
	Pairs bool
}

// jsonPair is a query.Pair as printed: flags have a null value.
type jsonPair struct {
	Name  string  `json:"name"`
	Value *string `json:"value"`
}

func main() {
	var opts options
	flag.BoolVar(&opts.Pairs, "pairs", false, "print decoded pairs in order instead of grouping them")
	level := flag.String("log-level", "info", "logging level: trace, debug, info, warn, error")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	lvl, err := zerolog.ParseLevel(*level)
	if err != nil {
		logger.Fatal().Err(err).Str("level", *level).Msg("bad log level")
	}
	logger = logger.Level(lvl)

	var in io.Reader
	if flag.NArg() == 0 {
		in = os.Stdin
	}

	if err := run(opts, flag.Args(), in, os.Stdout, logger); err != nil {
		logger.Fatal().Err(err).Msg("querydump failed")
	}
}

// run dumps every input. If args are empty, inputs are read from in.
func run(opts options, args []string, in io.Reader, out io.Writer, logger zerolog.Logger) error {
	enc := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(out)

	dump := func(input string) error {
		raw := rawQuery(input)
		logger.Debug().Str("input", input).Str("query", raw).Msg("parsing")

		if opts.Pairs {
			pairs := []jsonPair{}
			for pair := range query.Parse(raw) {
				p := jsonPair{Name: pair.Name}
				if pair.HasValue {
					p.Value = &pair.Value
				}
				pairs = append(pairs, p)
			}

			return enc.Encode(pairs)
		}

		return enc.Encode(query.ParseParams(raw))
	}

	if len(args) > 0 {
		for _, arg := range args {
			if err := dump(arg); err != nil {
				return fmt.Errorf("writing %q: %w", arg, err)
			}
		}

		return nil
	}

	if in == nil {
		return nil
	}

	scanner := bufio.NewScanner(in)
	lines := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 {
			continue
		}

		lines++
		if err := dump(line); err != nil {
			return fmt.Errorf("writing line %d: %w", lines, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	logger.Debug().Int("lines", lines).Msg("done")
	return nil
}

// rawQuery extracts the query part out of an URL (anything containing a scheme or starting
// with a slash). Any other input is considered to be a query string already.
func rawQuery(input string) string {
	if !strings.Contains(input, "://") && !strings.HasPrefix(input, "/") {
		return input
	}

	if hash := strings.IndexByte(input, '#'); hash != -1 {
		input = input[:hash]
	}

	_, raw, found := strings.Cut(input, "?")
	if !found {
		return ""
	}

	return raw
}
