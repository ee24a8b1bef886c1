// Package converter converts infix expressions into Reverse Polish Notation
// (postfix), removing parentheses by resolving nested groups recursively.
//
// The converter is symbol-agnostic and generic over any comparable symbol type.
// The caller registers which symbols open and close groups, which are unary
// prefix operators and which are binary infix operators; every other symbol is
// an operand. There is no precedence table: grouping comes from parentheses
// alone, and operators apply left to right within a group.
//
// # Quick Start
//
// Convert a token sequence with a reusable Converter:
//
//	c := converter.New([]string{"("}, []string{")"}, []string{"!"}, []string{"+", "^", "|"})
//	postfix, err := c.Convert(strings.Fields("( A | B ) ^ C"))
//	// postfix: [A B | C ^]
//
// Symbols need not be strings:
//
//	c := converter.New([]rune{'('}, []rune{')'}, []rune{'-'}, []rune{'+', '*'})
//	postfix, err := c.Convert([]rune("(a+b)*-c"))
//	// postfix: [a b + c - *]
//
// Or use functional options with a symbol table:
//
//	result, err := converter.ConvertWithOptions(
//		converter.WithExpression("B + ( ! A | C )"),
//		converter.WithSymbolTableFile("symbols.toml"),
//		converter.WithMaxDepth(128),
//	)
//	fmt.Println(result.Expression()) // B A ! C | +
//
// # Unary Operators
//
// A chain of unary operators is emitted directly after the operand it precedes,
// in the order it was read, whether that operand is a single symbol or a whole
// group: "! ( ! C + B )" becomes "C ! B + !".
//
// # Errors
//
// Malformed input fails with a *rpnerrors.StructuralError naming the first
// violation found; nothing is returned on failure. Registering a symbol under
// two roles panics, since it is a programming error rather than bad input.
// Use symboltable.Table.Validate (or NewFromTable) for tables read at runtime.
//
// # Concurrency
//
// A Converter is safe for concurrent use once built. ConvertBatch converts many
// independent expressions in parallel with bounded concurrency.
//
// # Nesting Depth
//
// Each parenthesis group costs one level of recursion. Set MaxDepth (or
// WithMaxDepth) when converting untrusted input; exceeding it fails with a
// *rpnerrors.ResourceLimitError.
package converter
