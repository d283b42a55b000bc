package lisp

// Func implements a named function. Args are the evaluated arguments, function name excluded.
type Func func(args []Value) (*Node, error)

// Library maps function names to implementations. The evaluator only reads it.
type Library map[string]Func

func (l Library) Lookup(name string) (Func, bool) {
	fn, ok := l[name]
	return fn, ok
}
