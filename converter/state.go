package converter

// tokenQueue is the input shared by every recursion level of one conversion.
// Levels drain it front to back; none of them copies or splits it.
type tokenQueue[T comparable] struct {
	tokens []T
	next   int
}

func newTokenQueue[T comparable](tokens []T) *tokenQueue[T] {
	return &tokenQueue[T]{tokens: tokens}
}

// pop removes and returns the front token.
func (q *tokenQueue[T]) pop() (T, bool) {
	if q.next >= len(q.tokens) {
		var zero T
		return zero, false
	}
	tok := q.tokens[q.next]
	q.next++
	return tok, true
}

// lastRead is the index of the most recently popped token, -1 before the first pop.
func (q *tokenQueue[T]) lastRead() int {
	return q.next - 1
}

// levelState accumulates one recursion level's output.
type levelState[T comparable] struct {
	result []T
	// value holds one operand: a single token or a whole resolved group
	value     []T
	binary    T
	hasBinary bool
	unary     []T

	expectsClose bool
	depth        int
}

func newLevelState[T comparable](expectsClose bool, depth int) *levelState[T] {
	return &levelState[T]{
		expectsClose: expectsClose,
		depth:        depth,
	}
}

func (s *levelState[T]) hasValue() bool {
	return len(s.value) > 0
}

func (s *levelState[T]) setValue(tok T) {
	s.value = append(s.value, tok)
}

// setGroup stores a resolved sub-expression as this level's operand.
func (s *levelState[T]) setGroup(group []T) {
	s.value = group
}

func (s *levelState[T]) setBinary(tok T) {
	s.binary = tok
	s.hasBinary = true
}

func (s *levelState[T]) pushUnary(tok T) {
	s.unary = append(s.unary, tok)
}

// flushValue moves the operand, then its unary chain, into the result.
func (s *levelState[T]) flushValue() {
	s.result = append(s.result, s.value...)
	s.value = nil
	s.result = append(s.result, s.unary...)
	s.unary = s.unary[:0]
}

// flushBinary moves the pending binary operator into the result.
func (s *levelState[T]) flushBinary() {
	s.result = append(s.result, s.binary)
	var zero T
	s.binary = zero
	s.hasBinary = false
}
