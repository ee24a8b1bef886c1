package converter

import "fmt"

// Role is the part a symbol plays in an infix expression.
type Role int

const (
	// RoleValue is the implicit role of every unregistered symbol
	RoleValue Role = iota
	// RoleOpenParen opens a group
	RoleOpenParen
	// RoleCloseParen closes the innermost open group
	RoleCloseParen
	// RoleUnary is a prefix operator taking one operand
	RoleUnary
	// RoleBinary is an infix operator taking two operands
	RoleBinary
)

var roleNames = [...]string{
	RoleValue:      "value",
	RoleOpenParen:  "open parenthesis",
	RoleCloseParen: "close parenthesis",
	RoleUnary:      "unary operator",
	RoleBinary:     "binary operator",
}

// String returns the human-readable role name.
func (r Role) String() string {
	if r >= 0 && int(r) < len(roleNames) {
		return roleNames[r]
	}
	return fmt.Sprintf("role(%d)", int(r))
}

// Roles returns the registrable roles in table order.
func Roles() []Role {
	return []Role{RoleOpenParen, RoleCloseParen, RoleUnary, RoleBinary}
}

// Classifier maps symbols to their roles. It is immutable once built and safe
// for concurrent use.
type Classifier[T comparable] struct {
	roles   map[T]Role
	ordered map[Role][]T
}

// NewClassifier registers each symbol under its role.
//
// Registering a symbol twice, under the same role or a different one, is a
// programming error and panics. Validate tables built from untrusted input
// first (see symboltable.Table.Validate).
func NewClassifier[T comparable](openParens, closeParens, unaryOps, binaryOps []T) *Classifier[T] {
	c := &Classifier[T]{
		roles:   make(map[T]Role, len(openParens)+len(closeParens)+len(unaryOps)+len(binaryOps)),
		ordered: make(map[Role][]T, 4),
	}
	c.register(RoleOpenParen, openParens)
	c.register(RoleCloseParen, closeParens)
	c.register(RoleUnary, unaryOps)
	c.register(RoleBinary, binaryOps)
	return c
}

func (c *Classifier[T]) register(role Role, symbols []T) {
	for _, sym := range symbols {
		if existing, ok := c.roles[sym]; ok {
			panic(fmt.Sprintf("converter: symbol %v registered as %s and %s", sym, existing, role))
		}
		c.roles[sym] = role
		c.ordered[role] = append(c.ordered[role], sym)
	}
}

// Classify returns the registered role of sym. The boolean is false when sym
// is not registered, in which case it is a value.
func (c *Classifier[T]) Classify(sym T) (Role, bool) {
	role, ok := c.roles[sym]
	return role, ok
}

// Role returns the role of sym, RoleValue when it is not registered.
func (c *Classifier[T]) Role(sym T) Role {
	return c.roles[sym]
}

// Symbols returns the symbols registered under role in registration order.
// RoleValue has no registered symbols.
func (c *Classifier[T]) Symbols(role Role) []T {
	return append([]T(nil), c.ordered[role]...)
}

// Len returns the number of registered symbols.
func (c *Classifier[T]) Len() int {
	return len(c.roles)
}
