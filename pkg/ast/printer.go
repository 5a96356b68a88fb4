package ast

import (
	"strconv"
	"strings"
)

// Print renders a node as a parenthesized S-expression for debug output,
// e.g. `(Grouping (Binary + (Literal 1) (Unary - (Literal 2))))`.
func Print(node Node) string {
	var b strings.Builder
	writeNode(&b, node)
	return b.String()
}

// PrintProgram renders one statement per line.
func PrintProgram(stmts []Statement) string {
	var b strings.Builder
	for _, stmt := range stmts {
		writeNode(&b, stmt)
		b.WriteByte('\n')
	}
	return b.String()
}

func writeNode(b *strings.Builder, node Node) {
	switch n := node.(type) {
	case nil:
		b.WriteString("nil")
	case *Identifier:
		b.WriteString(n.Name)
	case *NumberLiteral:
		b.WriteString("(Literal ")
		b.WriteString(strconv.FormatFloat(n.Value, 'f', -1, 64))
		b.WriteByte(')')
	case *StringLiteral:
		b.WriteString("(Literal ")
		b.WriteString(strconv.Quote(n.Value))
		b.WriteByte(')')
	case *BooleanLiteral:
		b.WriteString("(Literal ")
		b.WriteString(strconv.FormatBool(n.Value))
		b.WriteByte(')')
	case *NilLiteral:
		b.WriteString("(Literal nil)")
	case *Variable:
		list(b, "Variable", n.Name)
	case *Assignment:
		list(b, "Assign", n.Name, n.Value)
	case *UnaryExpression:
		list(b, "Unary", string(n.Operator), n.Operand)
	case *BinaryExpression:
		list(b, "Binary", string(n.Operator), n.Left, n.Right)
	case *LogicalExpression:
		list(b, "Logical", string(n.Operator), n.Left, n.Right)
	case *Grouping:
		list(b, "Grouping", n.Expression)
	case *CallExpression:
		parts := []any{n.Callee}
		for _, arg := range n.Arguments {
			parts = append(parts, arg)
		}
		list(b, "Call", parts...)
	case *GetExpression:
		list(b, "Get", n.Object, n.Name)
	case *SetExpression:
		list(b, "Set", n.Object, n.Name, n.Value)
	case *ThisExpression:
		b.WriteString("(This)")
	case *SuperExpression:
		list(b, "Super", n.Method)
	case *ExpressionStatement:
		list(b, "Expr", n.Expression)
	case *BlockStatement:
		list(b, "Block", statements(n.Body)...)
	case *VariableDeclaration:
		if n.Initializer == nil {
			list(b, "Let", n.Name)
			return
		}
		list(b, "Let", n.Name, n.Initializer)
	case *FunctionDeclaration:
		params := make([]string, 0, len(n.Params))
		for _, p := range n.Params {
			params = append(params, p.Name)
		}
		parts := []any{n.Name, "(" + strings.Join(params, " ") + ")"}
		list(b, "Fn", append(parts, statements(n.Body)...)...)
	case *ClassDeclaration:
		parts := []any{n.Name}
		if n.Superclass != nil {
			parts = append(parts, "< "+n.Superclass.Name)
		}
		for _, m := range n.Methods {
			parts = append(parts, m)
		}
		list(b, "Class", parts...)
	case *IfStatement:
		if n.Else == nil {
			list(b, "If", n.Condition, n.Then)
			return
		}
		list(b, "If", n.Condition, n.Then, n.Else)
	case *WhileLoop:
		list(b, "While", n.Condition, n.Body)
	case *ReturnStatement:
		if n.Argument == nil {
			b.WriteString("(Return)")
			return
		}
		list(b, "Return", n.Argument)
	default:
		b.WriteString("(")
		b.WriteString(string(node.NodeType()))
		b.WriteString(")")
	}
}

func statements(stmts []Statement) []any {
	out := make([]any, 0, len(stmts))
	for _, s := range stmts {
		out = append(out, s)
	}
	return out
}

func list(b *strings.Builder, tag string, parts ...any) {
	b.WriteByte('(')
	b.WriteString(tag)
	for _, part := range parts {
		b.WriteByte(' ')
		switch p := part.(type) {
		case string:
			b.WriteString(p)
		case Node:
			writeNode(b, p)
		}
	}
	b.WriteByte(')')
}
