package dataset

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/YuminosukeSato/gaussnb/pkg/errors"
)

// ParseFloat parses a real number accepting ',' as the decimal separator.
// NaN and infinities are rejected.
func ParseFloat(token string) (float64, error) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(token, ",", "."), 64)
	if err != nil {
		return 0, err
	}
	if err := errors.CheckFinite("dataset.ParseFloat", v); err != nil {
		return 0, err
	}
	return v, nil
}

// ParseFeatures parses an unlabeled whitespace-separated vector such as an
// interactive query line.
func ParseFeatures(line string) ([]float64, error) {
	return parseTokens("input", 0, strings.Fields(line))
}

func parseTokens(source string, line int, tokens []string) ([]float64, error) {
	values := make([]float64, len(tokens))
	for i, tok := range tokens {
		v, err := ParseFloat(tok)
		if err != nil {
			return nil, errors.NewInputFormatError(source, line, tok, err)
		}
		values[i] = v
	}
	return values, nil
}

// Parse reads one sample per line from r: feature tokens followed by a label
// token, separated by runs of whitespace. Blank lines are skipped. The first
// malformed record aborts parsing.
func Parse(r io.Reader, name string) (*Dataset, error) {
	ds := &Dataset{name: name}
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		tokens := strings.Fields(scanner.Text())
		if len(tokens) == 0 {
			continue
		}
		if len(tokens) < 2 {
			return nil, errors.NewInputFormatError(name, lineNo, tokens[0],
				errors.New("record needs at least one feature and a label"))
		}
		features, err := parseTokens(name, lineNo, tokens[:len(tokens)-1])
		if err != nil {
			return nil, err
		}
		if err := ds.add(Sample{features: features, label: tokens[len(tokens)-1]}); err != nil {
			return nil, errors.Wrapf(err, "%s:%d", name, lineNo)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading %s", name)
	}
	return ds, nil
}

// LoadFile parses the file at path into a Dataset named name.
// The file is closed before LoadFile returns.
func LoadFile(path, name string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", path)
	}
	defer f.Close()

	ds, err := Parse(f, name)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load %s", filepath.Base(path))
	}
	return ds, nil
}
