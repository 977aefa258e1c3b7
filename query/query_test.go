package query

import (
	"bytes"
	"context"
	"testing"

	"github.com/a-peyrard/setalgebra/set"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() Catalog {
	return Catalog{
		"a": set.NewWithValues("1", "2", "3"),
		"b": set.NewWithValues("3", "4", "5"),
		"c": set.NewWithValues("4", "5"),
		"e": set.New[string](),
	}
}

func TestEvaluator_Evaluate(t *testing.T) {
	t.Run("it should evaluate set operations", func(t *testing.T) {
		// GIVEN
		evaluator := NewEvaluator(testCatalog())
		cases := map[Op]set.Set[string]{
			OpUnion:               set.NewWithValues("1", "2", "3", "4", "5"),
			OpIntersection:        set.NewWithValues("3"),
			OpDifference:          set.NewWithValues("1", "2"),
			OpSymmetricDifference: set.NewWithValues("1", "2", "4", "5"),
		}

		for op, expected := range cases {
			// WHEN
			result, err := evaluator.Evaluate(context.Background(), Query{Name: string(op), Op: op, Operands: []string{"a", "b"}})

			// THEN
			require.NoError(t, err)
			assert.Nil(t, result.Bool)
			assert.Equal(t, expected, result.Set, op)
		}
	})

	t.Run("it should evaluate predicates", func(t *testing.T) {
		// GIVEN
		evaluator := NewEvaluator(testCatalog())
		cases := []struct {
			op       Op
			operands []string
			expected bool
		}{
			{OpDisjoint, []string{"a", "b"}, false},
			{OpDisjoint, []string{"a", "c"}, true},
			{OpSubset, []string{"b", "c"}, true},
			{OpSubset, []string{"c", "b"}, false},
			{OpProperSubset, []string{"b", "c"}, true},
			{OpProperSubset, []string{"e", "e"}, false},
			{OpEqual, []string{"a", "a"}, true},
			{OpEqual, []string{"a", "b"}, false},
		}

		for _, c := range cases {
			// WHEN
			result, err := evaluator.Evaluate(context.Background(), Query{Op: c.op, Operands: c.operands})

			// THEN
			require.NoError(t, err)
			require.NotNil(t, result.Bool)
			assert.Nil(t, result.Set)
			assert.Equal(t, c.expected, *result.Bool, "%s %v", c.op, c.operands)
		}
	})

	t.Run("it should accept no operands for variadic operations", func(t *testing.T) {
		// GIVEN
		evaluator := NewEvaluator(testCatalog())

		// WHEN
		result, err := evaluator.Evaluate(context.Background(), Query{Op: OpIntersection})

		// THEN
		require.NoError(t, err)
		assert.Equal(t, set.New[string](), result.Set)
	})

	t.Run("it should not alias catalog sets", func(t *testing.T) {
		// GIVEN
		catalog := testCatalog()
		evaluator := NewEvaluator(catalog)

		// WHEN
		result, err := evaluator.Evaluate(context.Background(), Query{Op: OpUnion, Operands: []string{"a"}})
		require.NoError(t, err)
		result.Set.Add("42")

		// THEN
		assert.False(t, catalog["a"].Contains("42"))
	})

	t.Run("it should reject unknown sets", func(t *testing.T) {
		// GIVEN
		evaluator := NewEvaluator(testCatalog())

		// WHEN
		_, err := evaluator.Evaluate(context.Background(), Query{Name: "q", Op: OpUnion, Operands: []string{"a", "z"}})

		// THEN
		assert.ErrorIs(t, err, ErrUnknownSet)
		assert.Contains(t, err.Error(), "query q")
	})

	t.Run("it should reject unknown operations", func(t *testing.T) {
		// GIVEN
		evaluator := NewEvaluator(testCatalog())

		// WHEN
		_, err := evaluator.Evaluate(context.Background(), Query{Op: Op("xor"), Operands: []string{"a", "b"}})

		// THEN
		assert.ErrorIs(t, err, ErrUnknownOp)
	})

	t.Run("it should reject binary operations without two operands", func(t *testing.T) {
		// GIVEN
		evaluator := NewEvaluator(testCatalog())

		// WHEN
		_, err := evaluator.Evaluate(context.Background(), Query{Op: OpSubset, Operands: []string{"a", "b", "c"}})

		// THEN
		assert.ErrorIs(t, err, ErrArity)
	})

	t.Run("it should stop on a cancelled context", func(t *testing.T) {
		// GIVEN
		evaluator := NewEvaluator(testCatalog())
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		// WHEN
		_, err := evaluator.Evaluate(ctx, Query{Op: OpUnion, Operands: []string{"a"}})

		// THEN
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("it should log evaluations at debug level", func(t *testing.T) {
		// GIVEN
		var buf bytes.Buffer
		logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
		evaluator := NewEvaluator(testCatalog(), WithLogger(&logger))

		// WHEN
		_, err := evaluator.Evaluate(context.Background(), Query{Name: "both", Op: OpIntersection, Operands: []string{"a", "b"}})

		// THEN
		require.NoError(t, err)
		assert.Contains(t, buf.String(), `"query":"both"`)
		assert.Contains(t, buf.String(), `"result":"{3}"`)
	})
}

func TestEvaluator_EvaluateAll(t *testing.T) {
	t.Run("it should return results in query order", func(t *testing.T) {
		// GIVEN
		evaluator := NewEvaluator(testCatalog(), WithConcurrency(2))
		queries := []Query{
			{Name: "all", Op: OpUnion, Operands: []string{"a", "b", "c"}},
			{Name: "shared", Op: OpIntersection, Operands: []string{"a", "b"}},
			{Name: "contained", Op: OpSubset, Operands: []string{"b", "c"}},
		}

		// WHEN
		results, err := evaluator.EvaluateAll(context.Background(), queries)

		// THEN
		require.NoError(t, err)
		require.Len(t, results, 3)
		assert.Equal(t, "all", results[0].Query.Name)
		assert.Equal(t, "{1, 2, 3, 4, 5}", results[0].String())
		assert.Equal(t, "{3}", results[1].String())
		assert.Equal(t, "true", results[2].String())
	})

	t.Run("it should fail when one query fails", func(t *testing.T) {
		// GIVEN
		evaluator := NewEvaluator(testCatalog())
		queries := []Query{
			{Name: "ok", Op: OpUnion, Operands: []string{"a"}},
			{Name: "ko", Op: OpUnion, Operands: []string{"missing"}},
		}

		// WHEN
		results, err := evaluator.EvaluateAll(context.Background(), queries)

		// THEN
		assert.ErrorIs(t, err, ErrUnknownSet)
		assert.Nil(t, results)
	})
}

func TestResult_String(t *testing.T) {
	yes := true
	assert.Equal(t, "true", Result{Bool: &yes}.String())
	assert.Equal(t, "{}", Result{Set: set.New[string]()}.String())
	assert.Equal(t, "{a, b}", Result{Set: set.NewWithValues("b", "a")}.String())
}
