package arithmetic

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"path"
	"strconv"
	"strings"

	"github.com/rakyll/statik/fs"

	_ "github.com/weezy20/arithmetic/statik"
)

//go:generate statik -src=samples -f

// Sample is one line of the embedded corpus: an expression and either the
// value it evaluates to or the parse error it fails with.
type Sample struct {
	File    string
	Line    int
	Expr    string
	Want    float64
	WantErr ErrorKind
}

func (s Sample) String() string {
	if s.WantErr != 0 {
		return fmt.Sprintf("%s:%d: %s !! %v", s.File, s.Line, s.Expr, s.WantErr)
	}
	return fmt.Sprintf("%s:%d: %s => %v", s.File, s.Line, s.Expr, s.Want)
}

// Check runs the sample and reports any disagreement.
func (s Sample) Check() error {
	got, err := Eval(s.Expr)
	if s.WantErr != 0 {
		if err == nil {
			return fmt.Errorf("%v: got %v, want error", s, got)
		}
		kind, ok := KindOfError(err)
		if !ok || kind != s.WantErr {
			return fmt.Errorf("%v: got error %v", s, err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("%v: %w", s, err)
	}
	if !Agree(got, s.Want) {
		return fmt.Errorf("%v: got %v", s, got)
	}
	return nil
}

// Agree reports whether two results match to within rounding. Two NaNs
// agree.
func Agree(a, b float64) bool {
	if a == b || (math.IsNaN(a) && math.IsNaN(b)) {
		return true
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return false
	}
	return math.Abs(a-b) <= 1e-9*math.Max(math.Abs(a), math.Abs(b))
}

// ReadSamples parses the corpus format: "expr => value" or
// "expr !! ErrorKind" per line, '#' comments and blank lines skipped.
func ReadSamples(name string, r io.Reader) ([]Sample, error) {
	var samples []Sample
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		s := Sample{File: name, Line: lineno}
		if i := strings.LastIndex(line, "=>"); i >= 0 {
			want, err := strconv.ParseFloat(strings.TrimSpace(line[i+2:]), 64)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: %w", name, lineno, err)
			}
			s.Expr = strings.TrimSpace(line[:i])
			s.Want = want
		} else if i := strings.LastIndex(line, "!!"); i >= 0 {
			kind, err := ParseErrorKind(strings.TrimSpace(line[i+2:]))
			if err != nil {
				return nil, fmt.Errorf("%s:%d: %w", name, lineno, err)
			}
			s.Expr = strings.TrimSpace(line[:i])
			s.WantErr = kind
		} else {
			return nil, fmt.Errorf("%s:%d: missing => or !!", name, lineno)
		}
		samples = append(samples, s)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return samples, nil
}

// LoadSamples reads every corpus file embedded in the binary.
func LoadSamples() ([]Sample, error) {
	statikFS, err := fs.New()
	if err != nil {
		return nil, err
	}
	dir, err := statikFS.Open("/")
	if err != nil {
		return nil, err
	}
	defer dir.Close()

	fis, err := dir.Readdir(-1)
	if err != nil {
		return nil, err
	}
	var samples []Sample
	for _, fi := range fis {
		if fi.IsDir() {
			continue
		}
		f, err := statikFS.Open(path.Join("/", fi.Name()))
		if err != nil {
			return nil, err
		}
		ss, err := ReadSamples(fi.Name(), f)
		f.Close()
		if err != nil {
			return nil, err
		}
		samples = append(samples, ss...)
	}
	return samples, nil
}
