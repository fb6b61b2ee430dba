// Package eval implements the arithmetic-expression evaluator: a symbol
// environment (Context) plus parseExpression over a configurable
// operator-precedence table.
package eval

import "fmt"

// UndeclaredSymbolError is returned when an expression references an
// identifier that has never been assigned in the Context.
type UndeclaredSymbolError struct {
	Name string
}

func (e *UndeclaredSymbolError) Error() string {
	return fmt.Sprintf("undeclared variable: %s", e.Name)
}

// RedeclaredSymbolError is returned when SetVariable is called twice for the
// same identifier.
type RedeclaredSymbolError struct {
	Name string
}

func (e *RedeclaredSymbolError) Error() string {
	return fmt.Sprintf("redeclared variable: %s", e.Name)
}

// Context is the assembler's symbol environment: an identifier->value map
// together with the current program counter. Each identifier may be bound at
// most once across the whole program.
type Context struct {
	ProgCounter int
	vars        map[string]int
}

// NewContext returns an empty Context with ProgCounter at 0.
func NewContext() *Context {
	return &Context{vars: make(map[string]int)}
}

// SetVariable binds name to val. Returns RedeclaredSymbolError if name is
// already bound.
func (c *Context) SetVariable(name string, val int) error {
	if _, ok := c.vars[name]; ok {
		return &RedeclaredSymbolError{Name: name}
	}
	c.vars[name] = val
	return nil
}

// GetVariable looks up name. Returns UndeclaredSymbolError if it is unbound.
func (c *Context) GetVariable(name string) (int, error) {
	v, ok := c.vars[name]
	if !ok {
		return 0, &UndeclaredSymbolError{Name: name}
	}
	return v, nil
}

// Defined reports whether name has been bound, without erroring.
func (c *Context) Defined(name string) bool {
	_, ok := c.vars[name]
	return ok
}
