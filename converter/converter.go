package converter

import (
	"github.com/erraggy/rpntools/rpnerrors"
)

// Converter turns infix token sequences into postfix (Reverse Polish Notation).
//
// A Converter is immutable after construction apart from MaxDepth, which must
// be set before first use. Convert may then be called from multiple goroutines.
type Converter[T comparable] struct {
	// MaxDepth limits parenthesis nesting. Zero means unlimited, in which case
	// very deep nesting is bounded only by the goroutine stack.
	MaxDepth int

	classifier *Classifier[T]
}

// New creates a Converter with the given open parentheses, close parentheses,
// unary operators and binary operators. Every other symbol is an operand.
//
// New panics if a symbol is registered more than once.
func New[T comparable](openParens, closeParens, unaryOps, binaryOps []T) *Converter[T] {
	return NewWithClassifier(NewClassifier(openParens, closeParens, unaryOps, binaryOps))
}

// NewWithClassifier creates a Converter around an existing classifier.
func NewWithClassifier[T comparable](classifier *Classifier[T]) *Converter[T] {
	return &Converter[T]{classifier: classifier}
}

// Classifier returns the symbol classifier used by c.
func (c *Converter[T]) Classifier() *Classifier[T] {
	return c.classifier
}

// Convert converts tokens from infix to postfix, removing every parenthesis.
//
// The input slice is not modified. On malformed input the returned error is a
// *rpnerrors.StructuralError describing the first violation found; when
// MaxDepth is exceeded it is a *rpnerrors.ResourceLimitError.
//
// Example:
//
//	c := converter.New([]string{"("}, []string{")"}, []string{"!"}, []string{"+", "^", "|"})
//	postfix, err := c.Convert(strings.Fields("B + ( ! A | C )"))
//	// postfix: [B A ! C | +]
func (c *Converter[T]) Convert(tokens []T) ([]T, error) {
	out, _, err := c.run(tokens)
	return out, err
}

// runStats describes one completed conversion.
type runStats struct {
	deepest int
	groups  int
}

func (c *Converter[T]) run(tokens []T) ([]T, runStats, error) {
	r := &conversion[T]{
		classifier: c.classifier,
		maxDepth:   c.MaxDepth,
		queue:      newTokenQueue(tokens),
	}
	out, err := r.process(false, 0)
	if err != nil {
		return nil, runStats{}, err
	}
	return out, runStats{deepest: r.deepest, groups: r.groups}, nil
}

// conversion holds what every recursion level of one Convert call shares.
type conversion[T comparable] struct {
	classifier *Classifier[T]
	maxDepth   int
	queue      *tokenQueue[T]

	deepest int
	groups  int
}

// process converts tokens up to the end of input or, when expectsClose is set,
// up to and including the matching closing parenthesis.
func (r *conversion[T]) process(expectsClose bool, depth int) ([]T, error) {
	st := newLevelState[T](expectsClose, depth)

	if err := r.readLevel(st); err != nil {
		return nil, err
	}

	return r.checkIntegrity(st)
}

// readLevel drains the queue into st until input ends or st's group closes.
func (r *conversion[T]) readLevel(st *levelState[T]) error {
	for {
		tok, ok := r.queue.pop()
		if !ok {
			return nil
		}

		switch r.classifier.Role(tok) {
		case RoleOpenParen:
			group, err := r.enterGroup(st.depth + 1)
			if err != nil {
				return err
			}
			st.setGroup(group)

		case RoleCloseParen:
			if !st.expectsClose {
				return r.fail(st, rpnerrors.KindUnexpectedClosingParenthesis)
			}
			st.expectsClose = false
			return nil

		case RoleUnary:
			st.pushUnary(tok)

		case RoleBinary:
			if st.hasBinary {
				return r.fail(st, rpnerrors.KindSuccessiveTwoBinaryOperands)
			}
			st.setBinary(tok)

		default:
			if st.hasValue() {
				return r.fail(st, rpnerrors.KindSuccessiveTwoValues)
			}
			st.setValue(tok)
		}

		if err := r.reduce(st); err != nil {
			return err
		}
	}
}

// enterGroup converts a parenthesized group one level deeper.
func (r *conversion[T]) enterGroup(depth int) ([]T, error) {
	if r.maxDepth > 0 && depth > r.maxDepth {
		return nil, &rpnerrors.ResourceLimitError{
			ResourceType: "nesting_depth",
			Limit:        int64(r.maxDepth),
			Actual:       int64(depth),
			Message:      "parenthesis groups nested too deeply",
		}
	}
	r.groups++
	if depth > r.deepest {
		r.deepest = depth
	}
	return r.process(true, depth)
}

// reduce folds the pending operand, unary chain and binary operator into the
// result as soon as they form a complete term.
func (r *conversion[T]) reduce(st *levelState[T]) error {
	hasResult := len(st.result) > 0

	switch {
	case hasResult && st.hasBinary && st.hasValue():
		// The left operand is already in result: value, its unary chain, then the operator.
		st.flushValue()
		st.flushBinary()
	case !hasResult && !st.hasBinary && st.hasValue():
		st.flushValue()
	case hasResult && !st.hasBinary && st.hasValue():
		return r.fail(st, rpnerrors.KindSuccessiveTwoValues)
	case !hasResult && st.hasBinary:
		return r.fail(st, rpnerrors.KindMissingLeftSideValueBinary)
	}

	return nil
}

// checkIntegrity releases st's result once the level has ended cleanly.
func (r *conversion[T]) checkIntegrity(st *levelState[T]) ([]T, error) {
	switch {
	case len(st.result) == 0:
		return nil, r.fail(st, rpnerrors.KindEmptyResult)
	case st.expectsClose:
		return nil, r.fail(st, rpnerrors.KindMissingClosingParenthesis)
	case len(st.unary) > 0:
		return nil, r.fail(st, rpnerrors.KindMissingRightSideValueUnary)
	case st.hasBinary:
		return nil, r.fail(st, rpnerrors.KindMissingRightSideValueBinary)
	}
	return st.result, nil
}

func (r *conversion[T]) fail(st *levelState[T], kind rpnerrors.Kind) error {
	return &rpnerrors.StructuralError{
		Kind:     kind,
		Position: r.queue.lastRead(),
		Depth:    st.depth,
	}
}
