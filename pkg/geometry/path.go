package geometry

import (
	"strconv"
	"strings"

	"github.com/vennlab/venn/pkg/errors"
)

// CirclePath encodes a circle as a closed SVG-style path built from two
// semicircular arcs:
//
//	M x y m -r 0 a r r 0 1 0 2r 0 a r r 0 1 0 -2r 0
//
// Rendering collaborators use this for animated transitions between layouts,
// so the encoding must stay reversible: [CircleFromPath] recovers the circle
// from the first five tokens alone.
func CirclePath(c Circle) string {
	num := func(v float64) string {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	parts := []string{
		"M", num(c.X), num(c.Y),
		"m", num(-c.Radius), "0",
		"a", num(c.Radius), num(c.Radius), "0", "1", "0", num(2 * c.Radius), "0",
		"a", num(c.Radius), num(c.Radius), "0", "1", "0", num(-2 * c.Radius), "0",
	}
	return strings.Join(parts, " ")
}

// CircleFromPath parses a path produced by [CirclePath] back into the exact
// circle it encodes. Only the leading "M x y m -r" tokens are consulted.
func CircleFromPath(path string) (Circle, error) {
	tokens := strings.Fields(path)
	if len(tokens) < 5 {
		return Circle{}, errors.New(errors.ErrCodeInvalidPath, "circle path needs at least 5 tokens, got %d", len(tokens))
	}

	x, err := strconv.ParseFloat(tokens[1], 64)
	if err != nil {
		return Circle{}, errors.Wrap(errors.ErrCodeInvalidPath, err, "circle path x coordinate %q", tokens[1])
	}
	y, err := strconv.ParseFloat(tokens[2], 64)
	if err != nil {
		return Circle{}, errors.Wrap(errors.ErrCodeInvalidPath, err, "circle path y coordinate %q", tokens[2])
	}
	r, err := strconv.ParseFloat(tokens[4], 64)
	if err != nil {
		return Circle{}, errors.Wrap(errors.ErrCodeInvalidPath, err, "circle path radius %q", tokens[4])
	}

	return Circle{X: x, Y: y, Radius: -r}, nil
}
