package chatbot

import "go.uber.org/fx"

// Module provides the chat resolver with default randomness.
var Module = fx.Provide(func() *Resolver {
	return NewResolver(Options{})
})
