package interpreter

import "github.com/AaronStGeorge/cat-lox/pkg/runtime"

// completion is how a statement finished. A return travels outward as a
// completion with returning set until a call boundary consumes it; it never
// shares the error channel.
type completion struct {
	returning bool
	value     runtime.Value
}

var normalCompletion = completion{}

func returnCompletion(value runtime.Value) completion {
	return completion{returning: true, value: value}
}
