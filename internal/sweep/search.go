package sweep

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/san-kum/boltjoint/internal/joint"
)

// GridSearch tries every combination of the given case parameters and keeps
// the case whose best preload yields the largest minimum safety factor.
type GridSearch struct {
	paramNames []string
	ranges     [][]float64
	apply      func(c *joint.Case, name string, value float64) error
}

var (
	ErrUnknownParam = errors.New("sweep: unknown search parameter")
	ErrParamRanges  = errors.New("sweep: one value range is required per parameter")
)

// Params understood by ApplyParam.
const (
	ParamGripLength     = "grip_length"
	ParamThreadedLength = "threaded_length"
	ParamMemberModulus  = "member_modulus"
	ParamLoadMax        = "load_max"
)

// NewGridSearch pairs each parameter with its range of values.
func NewGridSearch(params []string, ranges [][]float64) (*GridSearch, error) {
	if len(params) != len(ranges) {
		return nil, fmt.Errorf("%w: %d parameters, %d ranges", ErrParamRanges, len(params), len(ranges))
	}
	for i, name := range params {
		if !IsParam(name) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownParam, name)
		}
		if len(ranges[i]) == 0 {
			return nil, fmt.Errorf("%w: %q has no values", ErrParamRanges, name)
		}
	}
	return &GridSearch{paramNames: params, ranges: ranges, apply: ApplyParam}, nil
}

// IsParam reports whether ApplyParam understands name.
func IsParam(name string) bool {
	switch name {
	case ParamGripLength, ParamThreadedLength, ParamMemberModulus, ParamLoadMax:
		return true
	}
	return false
}

func ApplyParam(c *joint.Case, name string, value float64) error {
	switch name {
	case ParamGripLength:
		c.Geometry.GripLength = value
	case ParamThreadedLength:
		c.Geometry.ThreadedLength = value
	case ParamMemberModulus:
		c.Material.MemberModulus = value
	case ParamLoadMax:
		c.Load.Max = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownParam, name)
	}
	return nil
}

// SearchResult is the winning combination.
type SearchResult struct {
	Params map[string]float64
	Case   joint.Case
	Best   Row
}

func (g *GridSearch) Search(ctx context.Context, base joint.Case, opts Options) (*SearchResult, error) {
	best := &SearchResult{Best: Row{Min: math.Inf(-1)}}
	if err := g.searchRecursive(ctx, 0, base, make(map[string]float64), opts, best); err != nil {
		return nil, err
	}
	if best.Params == nil {
		return nil, ErrEmptyResult
	}
	return best, nil
}

func (g *GridSearch) searchRecursive(
	ctx context.Context,
	depth int,
	c joint.Case,
	current map[string]float64,
	opts Options,
	best *SearchResult,
) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if depth == len(g.paramNames) {
		res, err := Run(ctx, c, opts)
		if err != nil {
			// invalid combinations are skipped
			return nil
		}
		row, err := res.Best()
		if err != nil {
			return nil
		}
		if row.Min > best.Best.Min {
			best.Best = row
			best.Case = c
			best.Params = make(map[string]float64, len(current))
			for k, v := range current {
				best.Params[k] = v
			}
		}
		return nil
	}

	name := g.paramNames[depth]
	for _, val := range g.ranges[depth] {
		next := c
		if err := g.apply(&next, name, val); err != nil {
			return err
		}

		params := make(map[string]float64, len(current)+1)
		for k, v := range current {
			params[k] = v
		}
		params[name] = val

		if err := g.searchRecursive(ctx, depth+1, next, params, opts, best); err != nil {
			return err
		}
	}
	return nil
}
