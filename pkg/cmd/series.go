package cmd

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// readSeries loads a data series with one sample per line. "-" reads from
// stdin.
func readSeries(path string) ([]float64, error) {
	var reader io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrapf(err, "can not open series file %s", path)
		}
		defer f.Close()
		reader = f
	}

	var series []float64
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		value, err := strconv.ParseFloat(line, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid sample %q", line)
		}
		series = append(series, value)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading series")
	}

	return series, nil
}
