package testhelpers

import (
	"context"
	"strings"

	"gitmenu.dev/gitmenu/internal/git"
)

type stub struct {
	prefix string
	result git.Result
}

// FakeRunner is a git.Runner that records every command and answers from
// stubbed results. Unstubbed commands succeed with empty output.
type FakeRunner struct {
	Calls []string
	stubs []stub
}

// Stub registers a result for commands whose full text starts with prefix.
// Later stubs win over earlier ones.
func (f *FakeRunner) Stub(prefix string, result git.Result) {
	f.stubs = append([]stub{{prefix: prefix, result: result}}, f.stubs...)
}

// Run records the command and returns the first matching stub.
func (f *FakeRunner) Run(_ context.Context, name string, args ...string) git.Result {
	command := strings.Join(append([]string{name}, args...), " ")
	f.Calls = append(f.Calls, command)
	for _, s := range f.stubs {
		if strings.HasPrefix(command, s.prefix) {
			return s.result
		}
	}
	return git.Result{}
}
