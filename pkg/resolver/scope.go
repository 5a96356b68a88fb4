package resolver

import "github.com/AaronStGeorge/cat-lox/pkg/ast"

// scope maps a name to whether its declaration has finished (its
// initializer, if any, has been resolved).
type scope map[string]bool

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, make(scope))
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *Resolver) innermost() (scope, bool) {
	if len(r.scopes) == 0 {
		return nil, false
	}
	return r.scopes[len(r.scopes)-1], true
}

// declare adds name to the innermost scope. Global declarations are not
// tracked and may be repeated.
func (r *Resolver) declare(name *ast.Identifier) []Diagnostic {
	current, ok := r.innermost()
	if !ok {
		return nil
	}
	if _, exists := current[name.Name]; exists {
		return diag(name, "Already a variable named '%s' in this scope", name.Name)
	}
	current[name.Name] = false
	return nil
}

func (r *Resolver) define(name string) {
	if current, ok := r.innermost(); ok {
		current[name] = true
	}
}

// resolveLocal records the distance from the innermost scope to the first
// scope declaring name. Names found nowhere are left to the global frame.
func (r *Resolver) resolveLocal(expr ast.Expression, name string) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name]; ok {
			r.bindings[expr.ID()] = len(r.scopes) - 1 - i
			return
		}
	}
}
