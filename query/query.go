// Package query evaluates set algebra expressions over a catalog of named sets.
package query

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/a-peyrard/setalgebra/runner"
	"github.com/a-peyrard/setalgebra/set"
	"github.com/rs/zerolog"
)

var (
	ErrUnknownOp  = errors.New("unknown operation")
	ErrUnknownSet = errors.New("unknown set")
	ErrArity      = errors.New("wrong number of operands")
)

type (
	// Catalog holds the sets a query can refer to by name.
	Catalog map[string]set.Set[string]

	// Query applies Op to the catalog sets named by Operands, in order.
	Query struct {
		Name     string
		Op       Op
		Operands []string
	}

	// Result is the outcome of a Query, Set is filled for set operations and Bool for predicates.
	Result struct {
		Query Query
		Set   set.Set[string]
		Bool  *bool
	}

	// Evaluator runs queries against a catalog. The catalog is only read, so an
	// Evaluator can be shared by concurrent callers as long as nobody mutates the catalog.
	Evaluator struct {
		catalog     Catalog
		logger      *zerolog.Logger
		concurrency int
	}

	// Option customizes an Evaluator.
	Option func(e *Evaluator)
)

// WithLogger sets the logger used to trace evaluations.
func WithLogger(logger *zerolog.Logger) Option {
	return func(e *Evaluator) {
		e.logger = logger
	}
}

// WithConcurrency bounds the number of queries evaluated at the same time by EvaluateAll.
func WithConcurrency(concurrency int) Option {
	return func(e *Evaluator) {
		e.concurrency = concurrency
	}
}

// NewEvaluator creates an evaluator over the given catalog.
func NewEvaluator(catalog Catalog, opts ...Option) *Evaluator {
	nop := zerolog.Nop()
	e := &Evaluator{
		catalog: catalog,
		logger:  &nop,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate resolves the operands of the query and applies its operation.
func (e *Evaluator) Evaluate(ctx context.Context, q Query) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	if _, ok := knownOps[q.Op]; !ok {
		return Result{}, fmt.Errorf("query %s: %w: %q", q.Name, ErrUnknownOp, q.Op)
	}
	if !q.Op.IsVariadic() && len(q.Operands) != 2 {
		return Result{}, fmt.Errorf("query %s: %w: %s expects 2, got %d", q.Name, ErrArity, q.Op, len(q.Operands))
	}

	operands := make([]set.Set[string], 0, len(q.Operands))
	for _, name := range q.Operands {
		s, ok := e.catalog[name]
		if !ok {
			return Result{}, fmt.Errorf("query %s: %w: %q", q.Name, ErrUnknownSet, name)
		}
		operands = append(operands, s)
	}

	result := apply(q, operands)
	e.logger.Debug().
		Str("query", q.Name).
		Str("op", string(q.Op)).
		Strs("operands", q.Operands).
		Str("result", result.String()).
		Msg("query evaluated")

	return result, nil
}

// EvaluateAll evaluates the queries concurrently and returns the results in the order of the queries.
//
// The first failing query stops the evaluation.
func (e *Evaluator) EvaluateAll(ctx context.Context, queries []Query) ([]Result, error) {
	tasks := make([]runner.Task[Result], len(queries))
	for i, q := range queries {
		q := q // per-iteration copy (go.mod targets go 1.21)
		tasks[i] = func(ctx context.Context) (Result, error) {
			return e.Evaluate(ctx, q)
		}
	}
	return runner.Collect(ctx, e.concurrency, tasks...)
}

func apply(q Query, operands []set.Set[string]) Result {
	var b bool
	switch q.Op {
	case OpUnion:
		return Result{Query: q, Set: set.Union(operands...)}
	case OpIntersection:
		return Result{Query: q, Set: set.Intersection(operands...)}
	case OpSymmetricDifference:
		return Result{Query: q, Set: set.SymmetricDifference(operands...)}
	case OpDifference:
		return Result{Query: q, Set: set.Difference(operands[0], operands[1])}
	case OpDisjoint:
		b = set.Disjoint(operands[0], operands[1])
	case OpSubset:
		b = set.Subset(operands[0], operands[1])
	case OpProperSubset:
		b = set.ProperSubset(operands[0], operands[1])
	case OpEqual:
		b = set.Equal(operands[0], operands[1])
	}
	return Result{Query: q, Bool: &b}
}

// String renders predicates as true or false, and sets as their sorted members between braces.
func (r Result) String() string {
	if r.Bool != nil {
		return strconv.FormatBool(*r.Bool)
	}
	return "{" + strings.Join(set.Sorted(r.Set), ", ") + "}"
}
