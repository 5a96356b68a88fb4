package resolver

type functionKind int

const (
	functionNone functionKind = iota
	functionPlain
	functionMethod
	functionInitializer
)

type classKind int

const (
	classNone classKind = iota
	classPlain
	classSubclass
)

// enterFunction switches the function context and returns a func that
// restores the previous one.
func (r *Resolver) enterFunction(kind functionKind) func() {
	enclosing := r.function
	r.function = kind
	return func() { r.function = enclosing }
}

func (r *Resolver) enterClass(kind classKind) func() {
	enclosing := r.class
	r.class = kind
	return func() { r.class = enclosing }
}
