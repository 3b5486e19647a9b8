package cli

import (
	"github.com/TheReeds/turisync/internal/result"
)

// render drains one sync invocation, printing every state as it arrives.
// The channel is closed by the sync engine after the terminal result.
func render[T any](ch <-chan result.Result[T], show func(T) string) {
	for r := range ch {
		switch r.State() {
		case result.StateLoading:
			printlnFn("loading...")
		case result.StateSuccess:
			printlnFn(show(r.Data()))
		case result.StateError:
			printlnFn("error:", r.Message())
		}
	}
}
