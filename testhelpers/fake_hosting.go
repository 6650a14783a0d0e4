package testhelpers

import (
	"context"

	"gitmenu.dev/gitmenu/internal/git"
)

// IssueCall records one CreateIssue invocation.
type IssueCall struct {
	Title string
	Body  string
}

// RepoCall records one CreateRepo invocation.
type RepoCall struct {
	Name    string
	Private bool
}

// FakeHosting is a hosting client that records calls and returns canned
// results.
type FakeHosting struct {
	Issues      []IssueCall
	Repos       []RepoCall
	IssueResult git.Result
	RepoResult  git.Result
}

func (f *FakeHosting) CreateIssue(_ context.Context, title, body string) git.Result {
	f.Issues = append(f.Issues, IssueCall{Title: title, Body: body})
	return f.IssueResult
}

func (f *FakeHosting) CreateRepo(_ context.Context, name string, private bool) git.Result {
	f.Repos = append(f.Repos, RepoCall{Name: name, Private: private})
	return f.RepoResult
}
