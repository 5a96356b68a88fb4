package ast

import "sync/atomic"

type NodeType string

const (
	NodeIdentifier          NodeType = "Identifier"
	NodeNumberLiteral       NodeType = "NumberLiteral"
	NodeStringLiteral       NodeType = "StringLiteral"
	NodeBooleanLiteral      NodeType = "BooleanLiteral"
	NodeNilLiteral          NodeType = "NilLiteral"
	NodeVariable            NodeType = "Variable"
	NodeAssignment          NodeType = "Assignment"
	NodeUnaryExpression     NodeType = "UnaryExpression"
	NodeBinaryExpression    NodeType = "BinaryExpression"
	NodeLogicalExpression   NodeType = "LogicalExpression"
	NodeGrouping            NodeType = "Grouping"
	NodeCallExpression      NodeType = "CallExpression"
	NodeGetExpression       NodeType = "GetExpression"
	NodeSetExpression       NodeType = "SetExpression"
	NodeThisExpression      NodeType = "ThisExpression"
	NodeSuperExpression     NodeType = "SuperExpression"
	NodeExpressionStatement NodeType = "ExpressionStatement"
	NodeBlockStatement      NodeType = "BlockStatement"
	NodeVariableDeclaration NodeType = "VariableDeclaration"
	NodeFunctionDeclaration NodeType = "FunctionDeclaration"
	NodeClassDeclaration    NodeType = "ClassDeclaration"
	NodeIfStatement         NodeType = "IfStatement"
	NodeWhileLoop           NodeType = "WhileLoop"
	NodeReturnStatement     NodeType = "ReturnStatement"
)

// NodeID identifies an expression node for the lifetime of the process.
// Resolver output is keyed by it.
type NodeID uint64

var lastNodeID atomic.Uint64

func nextNodeID() NodeID {
	return NodeID(lastNodeID.Add(1))
}

// Position is a 1-based line/column location in source text.
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// Span covers the source text a node was parsed from. The zero Span means
// the node was built programmatically.
type Span struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// IsZero reports whether the span carries no location.
func (s Span) IsZero() bool {
	return s.Start.Line == 0
}

type Node interface {
	NodeType() NodeType
	Span() Span
	isNode()
}

type nodeImpl struct {
	Type NodeType `json:"type"`
	span Span
}

func newNodeImpl(kind NodeType) nodeImpl {
	return nodeImpl{Type: kind}
}

func (n nodeImpl) NodeType() NodeType { return n.Type }
func (n nodeImpl) Span() Span         { return n.span }
func (nodeImpl) isNode()              {}

func (n *nodeImpl) setSpan(span Span) { n.span = span }

type spanSetter interface {
	setSpan(Span)
}

// WithSpan attaches a source span to a node and returns it.
func WithSpan[T Node](node T, span Span) T {
	if setter, ok := any(node).(spanSetter); ok {
		setter.setSpan(span)
	}
	return node
}

// Marker interfaces.

type Expression interface {
	Node
	ID() NodeID
	expressionNode()
}

type exprImpl struct {
	nodeImpl
	id NodeID
}

func newExprImpl(kind NodeType) exprImpl {
	return exprImpl{nodeImpl: newNodeImpl(kind), id: nextNodeID()}
}

func (e exprImpl) ID() NodeID      { return e.id }
func (exprImpl) expressionNode() {}

type Statement interface {
	Node
	statementNode()
}

type statementMarker struct{}

func (statementMarker) statementNode() {}

type Literal interface {
	Expression
	literalNode()
}

type literalMarker struct{}

func (literalMarker) literalNode() {}

// Identifier names a declaration site: a variable, function, class,
// parameter or property.
type Identifier struct {
	nodeImpl

	Name string `json:"name"`
}

func NewIdentifier(name string) *Identifier {
	return &Identifier{nodeImpl: newNodeImpl(NodeIdentifier), Name: name}
}

// Literals

type NumberLiteral struct {
	exprImpl
	literalMarker

	Value float64 `json:"value"`
}

func NewNumberLiteral(value float64) *NumberLiteral {
	return &NumberLiteral{exprImpl: newExprImpl(NodeNumberLiteral), Value: value}
}

type StringLiteral struct {
	exprImpl
	literalMarker

	Value string `json:"value"`
}

func NewStringLiteral(value string) *StringLiteral {
	return &StringLiteral{exprImpl: newExprImpl(NodeStringLiteral), Value: value}
}

type BooleanLiteral struct {
	exprImpl
	literalMarker

	Value bool `json:"value"`
}

func NewBooleanLiteral(value bool) *BooleanLiteral {
	return &BooleanLiteral{exprImpl: newExprImpl(NodeBooleanLiteral), Value: value}
}

type NilLiteral struct {
	exprImpl
	literalMarker
}

func NewNilLiteral() *NilLiteral {
	return &NilLiteral{exprImpl: newExprImpl(NodeNilLiteral)}
}

// Operators

type Operator string

const (
	OpPlus         Operator = "+"
	OpMinus        Operator = "-"
	OpStar         Operator = "*"
	OpSlash        Operator = "/"
	OpBang         Operator = "!"
	OpEqual        Operator = "=="
	OpNotEqual     Operator = "!="
	OpLess         Operator = "<"
	OpLessEqual    Operator = "<="
	OpGreater      Operator = ">"
	OpGreaterEqual Operator = ">="
	OpAnd          Operator = "and"
	OpOr           Operator = "or"
)

// Expressions

type Variable struct {
	exprImpl

	Name string `json:"name"`
}

func NewVariable(name string) *Variable {
	return &Variable{exprImpl: newExprImpl(NodeVariable), Name: name}
}

type Assignment struct {
	exprImpl

	Name  string     `json:"name"`
	Value Expression `json:"value"`
}

func NewAssignment(name string, value Expression) *Assignment {
	return &Assignment{exprImpl: newExprImpl(NodeAssignment), Name: name, Value: value}
}

type UnaryExpression struct {
	exprImpl

	Operator Operator   `json:"operator"`
	Operand  Expression `json:"operand"`
}

func NewUnaryExpression(operator Operator, operand Expression) *UnaryExpression {
	return &UnaryExpression{exprImpl: newExprImpl(NodeUnaryExpression), Operator: operator, Operand: operand}
}

type BinaryExpression struct {
	exprImpl

	Operator Operator   `json:"operator"`
	Left     Expression `json:"left"`
	Right    Expression `json:"right"`
}

func NewBinaryExpression(operator Operator, left, right Expression) *BinaryExpression {
	return &BinaryExpression{exprImpl: newExprImpl(NodeBinaryExpression), Operator: operator, Left: left, Right: right}
}

// LogicalExpression is `and`/`or`; it short-circuits, unlike BinaryExpression.
type LogicalExpression struct {
	exprImpl

	Operator Operator   `json:"operator"`
	Left     Expression `json:"left"`
	Right    Expression `json:"right"`
}

func NewLogicalExpression(operator Operator, left, right Expression) *LogicalExpression {
	return &LogicalExpression{exprImpl: newExprImpl(NodeLogicalExpression), Operator: operator, Left: left, Right: right}
}

type Grouping struct {
	exprImpl

	Expression Expression `json:"expression"`
}

func NewGrouping(expr Expression) *Grouping {
	return &Grouping{exprImpl: newExprImpl(NodeGrouping), Expression: expr}
}

type CallExpression struct {
	exprImpl

	Callee    Expression   `json:"callee"`
	Arguments []Expression `json:"arguments"`
}

func NewCallExpression(callee Expression, arguments []Expression) *CallExpression {
	return &CallExpression{exprImpl: newExprImpl(NodeCallExpression), Callee: callee, Arguments: arguments}
}

type GetExpression struct {
	exprImpl

	Object Expression `json:"object"`
	Name   string     `json:"name"`
}

func NewGetExpression(object Expression, name string) *GetExpression {
	return &GetExpression{exprImpl: newExprImpl(NodeGetExpression), Object: object, Name: name}
}

type SetExpression struct {
	exprImpl

	Object Expression `json:"object"`
	Name   string     `json:"name"`
	Value  Expression `json:"value"`
}

func NewSetExpression(object Expression, name string, value Expression) *SetExpression {
	return &SetExpression{exprImpl: newExprImpl(NodeSetExpression), Object: object, Name: name, Value: value}
}

type ThisExpression struct {
	exprImpl
}

func NewThisExpression() *ThisExpression {
	return &ThisExpression{exprImpl: newExprImpl(NodeThisExpression)}
}

// SuperExpression is `super.method`; it always names a method.
type SuperExpression struct {
	exprImpl

	Method string `json:"method"`
}

func NewSuperExpression(method string) *SuperExpression {
	return &SuperExpression{exprImpl: newExprImpl(NodeSuperExpression), Method: method}
}
