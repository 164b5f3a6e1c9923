package functional

import (
	"fmt"
	"strings"

	"github.com/dpln-ml/dpln/internal/tensor"
)

// Pair is a (height, width) argument such as stride or dilation.
type Pair [2]int

// Padding holds ((top, bottom), (left, right)) border widths.
type Padding [2][2]int

// String formats p as ((top, bottom), (left, right)).
func (p Padding) String() string {
	return fmt.Sprintf("((%d, %d), (%d, %d))", p[0][0], p[0][1], p[1][0], p[1][1])
}

// IsZero reports whether p adds no border.
func (p Padding) IsZero() bool {
	return p == Padding{}
}

// Valid reports whether every border width is non-negative.
func (p Padding) Valid() bool {
	for _, side := range p {
		if side[0] < 0 || side[1] < 0 {
			return false
		}
	}
	return true
}

// ParsePair normalizes a stride or dilation argument.
//
// Accepted forms: int, [2]int, Pair, []int of length 2. Components must be
// positive.
func ParsePair(v any) (Pair, error) {
	var p Pair
	switch x := v.(type) {
	case int:
		p = Pair{x, x}
	case [2]int:
		p = Pair(x)
	case Pair:
		p = x
	case []int:
		if len(x) != 2 {
			return Pair{}, tensor.ValueErrorf("value must be an int or a pair of ints, got %v", x)
		}
		p = Pair{x[0], x[1]}
	default:
		return Pair{}, tensor.ValueErrorf("value must be an int or a pair of ints, got %T", v)
	}
	if p[0] <= 0 || p[1] <= 0 {
		return Pair{}, tensor.ValueErrorf("value must be positive, got %v", p)
	}
	return p, nil
}

// ParsePadding normalizes a padding argument into ((top, bottom), (left, right)).
//
// Accepted forms:
//
//	p                      → ((p, p), (p, p))
//	(h, w)                 → ((h, h), (w, w))
//	((t, b), (l, r))       → as given
//	(t, b, l, r)           → ((t, b), (l, r))
//
// The two entries of the 2-element form may independently be an int or a
// pair, e.g. []any{1, [2]int{0, 2}}. Widths must be non-negative.
func ParsePadding(v any) (Padding, error) {
	p, err := parsePadding(v)
	if err != nil {
		return Padding{}, err
	}
	for _, side := range p {
		if side[0] < 0 || side[1] < 0 {
			return Padding{}, tensor.ValueErrorf("padding must be non-negative, got %v", p)
		}
	}
	return p, nil
}

func parsePadding(v any) (Padding, error) {
	switch x := v.(type) {
	case int:
		return Padding{{x, x}, {x, x}}, nil
	case Padding:
		return x, nil
	case [2][2]int:
		return Padding(x), nil
	case [2]int:
		return Padding{{x[0], x[0]}, {x[1], x[1]}}, nil
	case Pair:
		return Padding{{x[0], x[0]}, {x[1], x[1]}}, nil
	case [4]int:
		return Padding{{x[0], x[1]}, {x[2], x[3]}}, nil
	case []int:
		switch len(x) {
		case 2:
			return Padding{{x[0], x[0]}, {x[1], x[1]}}, nil
		case 4:
			return Padding{{x[0], x[1]}, {x[2], x[3]}}, nil
		}
	case [][]int:
		if len(x) == 2 && len(x[0]) == 2 && len(x[1]) == 2 {
			return Padding{{x[0][0], x[0][1]}, {x[1][0], x[1][1]}}, nil
		}
	case [][2]int:
		if len(x) == 2 {
			return Padding{x[0], x[1]}, nil
		}
	case []any:
		switch len(x) {
		case 2:
			top, err := paddingSide(x[0])
			if err != nil {
				return Padding{}, err
			}
			left, err := paddingSide(x[1])
			if err != nil {
				return Padding{}, err
			}
			return Padding{top, left}, nil
		case 4:
			var out [4]int
			for i, e := range x {
				n, ok := e.(int)
				if !ok {
					return Padding{}, paddingError(v)
				}
				out[i] = n
			}
			return Padding{{out[0], out[1]}, {out[2], out[3]}}, nil
		}
	}
	return Padding{}, paddingError(v)
}

// paddingSide normalizes one axis of the 2-element padding form.
func paddingSide(v any) ([2]int, error) {
	switch x := v.(type) {
	case int:
		return [2]int{x, x}, nil
	case [2]int:
		return x, nil
	case []int:
		if len(x) == 2 {
			return [2]int{x[0], x[1]}, nil
		}
	}
	return [2]int{}, paddingError(v)
}

func paddingError(v any) error {
	return tensor.ValueErrorf("padding must be an int or a sequence of 2, 2x2 or 4 ints, got %#v", v)
}

// PaddingMode selects how Padding2D fills the border.
type PaddingMode int

// Padding modes.
const (
	PaddingZeros     PaddingMode = iota // zero fill
	PaddingReflect                      // mirror without repeating the edge
	PaddingReplicate                    // repeat the edge value
	PaddingCircular                     // mirror including the edge
)

// String returns the mode's name as accepted by ParsePaddingMode.
func (m PaddingMode) String() string {
	switch m {
	case PaddingZeros:
		return "zeros"
	case PaddingReflect:
		return "reflect"
	case PaddingReplicate:
		return "replicate"
	case PaddingCircular:
		return "circular"
	default:
		return fmt.Sprintf("PaddingMode(%d)", int(m))
	}
}

// Valid reports whether m is one of the defined modes.
func (m PaddingMode) Valid() bool {
	return m >= PaddingZeros && m <= PaddingCircular
}

// padMode maps m onto the array-level padding it uses. Circular padding is
// a symmetric mirror here, not wrap-around.
func (m PaddingMode) padMode() (tensor.PadMode, error) {
	switch m {
	case PaddingZeros:
		return tensor.PadConstant, nil
	case PaddingReflect:
		return tensor.PadReflect, nil
	case PaddingReplicate:
		return tensor.PadEdge, nil
	case PaddingCircular:
		return tensor.PadSymmetric, nil
	default:
		return 0, tensor.ValueErrorf("padding mode must be zeros, reflect, replicate or circular, got %v", m)
	}
}

// ParsePaddingMode parses "zeros", "reflect", "replicate" or "circular".
// The empty string selects zeros.
func ParsePaddingMode(s string) (PaddingMode, error) {
	switch strings.ToLower(s) {
	case "", "zeros":
		return PaddingZeros, nil
	case "reflect":
		return PaddingReflect, nil
	case "replicate":
		return PaddingReplicate, nil
	case "circular":
		return PaddingCircular, nil
	default:
		return 0, tensor.ValueErrorf("padding mode must be 'zeros', 'reflect', 'replicate' or 'circular', got %q", s)
	}
}

// Reduction selects how a loss combines per-element values.
type Reduction int

// Reductions. The zero value averages.
const (
	ReductionMean Reduction = iota
	ReductionSum
	ReductionNone
)

// String returns the reduction's name as accepted by ParseReduction.
func (r Reduction) String() string {
	switch r {
	case ReductionMean:
		return "mean"
	case ReductionSum:
		return "sum"
	case ReductionNone:
		return "none"
	default:
		return fmt.Sprintf("Reduction(%d)", int(r))
	}
}

// ParseReduction parses "mean", "sum" or "none". The empty string selects mean.
func ParseReduction(s string) (Reduction, error) {
	switch strings.ToLower(s) {
	case "", "mean":
		return ReductionMean, nil
	case "sum":
		return ReductionSum, nil
	case "none":
		return ReductionNone, nil
	default:
		return 0, tensor.ValueErrorf("reduction must be 'mean', 'sum' or 'none', got %q", s)
	}
}
