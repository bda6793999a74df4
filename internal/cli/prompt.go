// internal/cli/prompt.go
package cli

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// promptLine prints the label and reads one trimmed input line. The
// error is io.EOF when input ends.
func (r *Runner) promptLine(label string) (string, error) {
	r.printf("%s: ", label)
	line, err := r.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptInt reads a whole number; ok is false on malformed input so the
// caller can cancel the action instead of retrying.
func (r *Runner) promptInt(label string) (int, bool, error) {
	line, err := r.promptLine(label)
	if err != nil {
		return 0, false, err
	}
	n, convErr := strconv.Atoi(line)
	if convErr != nil {
		return 0, false, nil
	}
	return n, true, nil
}

// promptDecimal reads a decimal amount; ok is false on malformed input.
func (r *Runner) promptDecimal(label string) (decimal.Decimal, bool, error) {
	line, err := r.promptLine(label)
	if err != nil {
		return decimal.Zero, false, err
	}
	d, convErr := decimal.NewFromString(line)
	if convErr != nil {
		return decimal.Zero, false, nil
	}
	return d, true, nil
}
