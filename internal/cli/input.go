// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvdet/internal/loader"
	"github.com/katalvlaran/lvdet/matrix"
	"github.com/katalvlaran/lvdet/samples"
	"github.com/pkg/errors"
)

var (
	// ErrNoInput is returned when a command gets neither a file nor --sample.
	ErrNoInput = errors.New("no input: pass a matrix file or --sample NAME")

	// ErrAmbiguousInput is returned when a command gets both a file and --sample.
	ErrAmbiguousInput = errors.New("pass either a matrix file or --sample, not both")

	// ErrUnknownSample is returned for a --sample name that is not built in.
	ErrUnknownSample = errors.New("unknown sample")
)

// square is what the commands need from a matrix, whatever its element type.
type square interface {
	fmt.Stringer
	Size() int
	Det(opts ...matrix.Option) float64
}

// readInput resolves the matrix named by the positional file argument or the
// --sample flag.
func readInput(args []string, sample string) (square, error) {
	switch {
	case len(args) > 0 && sample != "":
		return nil, ErrAmbiguousInput
	case len(args) > 0:
		return loader.Load(args[0])
	case sample != "":
		c, ok := samples.Lookup(sample)
		if !ok {
			return nil, errors.Wrapf(ErrUnknownSample, "%q (known: %s)", sample, strings.Join(samples.Names(), ", "))
		}
		return c.Matrix, nil
	default:
		return nil, ErrNoInput
	}
}

// formatFloat prints x in plain decimal notation where that stays readable
// and in exponent notation otherwise.
func formatFloat(x float64) string {
	if a := math.Abs(x); a != 0 && (a < 1e-4 || a >= 1e21) {
		return strconv.FormatFloat(x, 'g', -1, 64)
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}
