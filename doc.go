// Package rpntools converts parenthesized infix expressions into Reverse Polish
// Notation (postfix).
//
// The conversion is symbol-agnostic: the caller decides which symbols open and
// close groups, which are unary prefix operators and which are binary infix
// operators. Every other symbol is an operand. There is no precedence table;
// grouping is driven entirely by parentheses.
//
// # Packages
//
//   - converter: the symbol classifier and the recursive conversion engine
//   - rpnerrors: structural error types for errors.Is and errors.As
//   - symboltable: symbol tables loaded from YAML, JSON or TOML files
//
// # Quick Start
//
// Convert a generic token sequence:
//
//	c := converter.New([]string{"("}, []string{")"}, []string{"!"}, []string{"+", "^", "|"})
//	postfix, err := c.Convert(strings.Fields("( A | B ) ^ C"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(postfix) // [A B | C ^]
//
// Or use the functional options API with a symbol table:
//
//	result, err := converter.ConvertWithOptions(
//		converter.WithExpression("B + ( ! A | C )"),
//		converter.WithSymbolTableFile("symbols.yaml"),
//	)
//
// Structural errors can be inspected with errors.Is:
//
//	if errors.Is(err, rpnerrors.ErrMissingClosingParenthesis) {
//		// unbalanced input
//	}
//
// # Command Line
//
// The rpntools command wraps the library:
//
//	rpntools convert "( A | B ) ^ C"
//	rpntools convert -f expressions.txt --format json
//	rpntools symbols -s symbols.toml
//	rpntools mcp
package rpntools
