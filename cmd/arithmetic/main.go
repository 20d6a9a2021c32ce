package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/weezy20/arithmetic"
)

const quit = "quitexit"

var dumper = &spew.ConfigState{
	Indent:                  "  ",
	DisableMethods:          true,
	DisablePointerAddresses: true,
}

type config struct {
	tree        bool
	dump        bool
	tokens      bool
	check       bool
	interactive bool
}

func removeCRLF(s string) string {
	if strings.HasSuffix(s, "\n") {
		s = s[:len(s)-1]
		s = strings.TrimSuffix(s, "\r")
	}
	return s
}

func evalLine(cfg config, w io.Writer, line string) error {
	if cfg.tokens {
		toks := arithmetic.Tokens(line)
		strs := make([]string, len(toks))
		for i, tok := range toks {
			strs[i] = tok.String()
		}
		fmt.Fprintln(w, strings.Join(strs, " "))
	}

	ast, err := arithmetic.Parse(line)
	if err != nil {
		return err
	}
	if cfg.tree {
		fmt.Fprintln(w, ast)
	}
	if cfg.dump {
		dumper.Fdump(w, ast)
	}
	ret, err := ast.Eval()
	if err != nil {
		return err
	}
	if cfg.check {
		want, err := arithmetic.Oracle(ast)
		if err != nil {
			log.Warn().Err(err).Str("expr", line).Msg("oracle failed")
		} else if !arithmetic.Agree(want, ret) {
			log.Warn().Str("expr", line).Float64("got", ret).Float64("oracle", want).Msg("result disagrees with oracle")
		}
	}
	fmt.Fprintln(w, ret)
	return nil
}

func repl(cfg config, r io.Reader, w io.Writer) error {
	br := bufio.NewReader(r)
	for {
		if cfg.interactive {
			fmt.Fprintln(w, "Enter an expression to evaluate")
			fmt.Fprint(w, "> ")
		}
		s, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return err
		}
		if s == "" && err == io.EOF {
			return nil
		}
		line := removeCRLF(s)
		if line == quit {
			if cfg.interactive {
				fmt.Fprintln(w, "Exiting ...")
			}
			return nil
		}
		if strings.TrimSpace(line) != "" {
			if perr := evalLine(cfg, w, line); perr != nil {
				ev := log.Error().Err(perr).Str("expr", line)
				if kind, ok := arithmetic.KindOfError(perr); ok {
					ev = ev.Stringer("kind", kind)
				}
				ev.Msg("cannot evaluate")
			}
		}
		if err == io.EOF {
			return nil
		}
	}
}

func runSamples(w io.Writer) error {
	samples, err := arithmetic.LoadSamples()
	if err != nil {
		return err
	}
	failed := 0
	for _, s := range samples {
		if err := s.Check(); err != nil {
			fmt.Fprintln(w, "FAIL", err)
			failed++
			continue
		}
		log.Debug().Stringer("sample", s).Msg("ok")
	}
	fmt.Fprintf(w, "%d samples, %d failed\n", len(samples), failed)
	if failed > 0 {
		return fmt.Errorf("%d samples failed", failed)
	}
	return nil
}

func main() {
	var cfg config
	var verbose, samples bool
	flag.BoolVar(&verbose, "v", false, "debug logging")
	flag.BoolVar(&cfg.tree, "tree", false, "print the parenthesised tree")
	flag.BoolVar(&cfg.dump, "dump", false, "dump the syntax tree")
	flag.BoolVar(&cfg.tokens, "tokens", false, "print the token stream")
	flag.BoolVar(&cfg.check, "check", false, "cross-check results with anko")
	flag.BoolVar(&samples, "samples", false, "run the embedded sample corpus")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if samples {
		if err := runSamples(os.Stdout); err != nil {
			log.Fatal().Err(err).Msg("samples")
		}
		return
	}

	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}

	var f *os.File
	var err error

	if flag.NArg() == 0 {
		f = os.Stdin
		cfg.interactive = isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	if flag.NArg() == 1 {
		f, err = os.Open(flag.Arg(0))
		if err != nil {
			log.Fatal().Err(err).Msg("open")
		}
		defer f.Close()
	}

	if err := repl(cfg, f, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("read")
	}
}
