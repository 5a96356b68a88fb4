package ast

// Identifier and literal helpers.

func ID(name string) *Identifier {
	return NewIdentifier(name)
}

func Num(value float64) *NumberLiteral {
	return NewNumberLiteral(value)
}

func Str(value string) *StringLiteral {
	return NewStringLiteral(value)
}

func Bool(value bool) *BooleanLiteral {
	return NewBooleanLiteral(value)
}

func Nil() *NilLiteral {
	return NewNilLiteral()
}

// Expression helpers.

func Var(name string) *Variable {
	return NewVariable(name)
}

func Assign(name string, value Expression) *Assignment {
	return NewAssignment(name, value)
}

func Un(operator Operator, operand Expression) *UnaryExpression {
	return NewUnaryExpression(operator, operand)
}

func Bin(operator Operator, left, right Expression) *BinaryExpression {
	return NewBinaryExpression(operator, left, right)
}

func And(left, right Expression) *LogicalExpression {
	return NewLogicalExpression(OpAnd, left, right)
}

func Or(left, right Expression) *LogicalExpression {
	return NewLogicalExpression(OpOr, left, right)
}

func Group(expr Expression) *Grouping {
	return NewGrouping(expr)
}

func CallExpr(callee Expression, args ...Expression) *CallExpression {
	return NewCallExpression(callee, args)
}

// Call invokes the function bound to name.
func Call(name string, args ...Expression) *CallExpression {
	return NewCallExpression(Var(name), args)
}

func Get(object Expression, name string) *GetExpression {
	return NewGetExpression(object, name)
}

func Set(object Expression, name string, value Expression) *SetExpression {
	return NewSetExpression(object, name, value)
}

func This() *ThisExpression {
	return NewThisExpression()
}

func Super(method string) *SuperExpression {
	return NewSuperExpression(method)
}

// Statement helpers.

func Expr(expr Expression) *ExpressionStatement {
	return NewExpressionStatement(expr)
}

func Block(statements ...Statement) *BlockStatement {
	return NewBlockStatement(statements)
}

// Let declares name; pass a nil initializer for `let name;`.
func Let(name string, initializer Expression) *VariableDeclaration {
	return NewVariableDeclaration(ID(name), initializer)
}

func Fn(name string, params []string, body ...Statement) *FunctionDeclaration {
	ids := make([]*Identifier, 0, len(params))
	for _, p := range params {
		ids = append(ids, ID(p))
	}
	return NewFunctionDeclaration(ID(name), ids, body)
}

// Class declares a class; an empty superclass means none.
func Class(name string, superclass string, methods ...*FunctionDeclaration) *ClassDeclaration {
	var super *Variable
	if superclass != "" {
		super = Var(superclass)
	}
	return NewClassDeclaration(ID(name), super, methods)
}

func If(condition Expression, then Statement, elseBranch Statement) *IfStatement {
	return NewIfStatement(condition, then, elseBranch)
}

func While(condition Expression, body Statement) *WhileLoop {
	return NewWhileLoop(condition, body)
}

func Ret(argument Expression) *ReturnStatement {
	return NewReturnStatement(argument)
}

// PrintStmt is shorthand for an expression statement calling the print native.
func PrintStmt(value Expression) *ExpressionStatement {
	return Expr(Call("print", value))
}
