package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	args  []string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) Sync(ctx context.Context) error { f.calls = append(f.calls, "sync"); return nil }
func (f *fakeExec) List(ctx context.Context, filter string) error {
	f.calls = append(f.calls, "list")
	f.args = append(f.args, filter)
	return nil
}
func (f *fakeExec) Categories(ctx context.Context) error {
	f.calls = append(f.calls, "categories")
	return nil
}
func (f *fakeExec) Assign(ctx context.Context, idxArg, categoryArg string) error {
	f.calls = append(f.calls, "assign")
	f.args = append(f.args, idxArg, categoryArg)
	return nil
}
func (f *fakeExec) Clear(ctx context.Context, idxArg string) error {
	f.calls = append(f.calls, "clear")
	f.args = append(f.args, idxArg)
	return nil
}
func (f *fakeExec) Suggest(ctx context.Context, idxArg string) error {
	f.calls = append(f.calls, "suggest")
	f.args = append(f.args, idxArg)
	return nil
}

func muteOutput(t *testing.T) {
	t.Helper()
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	muteOutput(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"sync",
		"list sheet",
		"categories",
		"assign 2 Work stuff",
		"clear 2",
		"suggest 3",
		"foobar",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	wantOrder := []string{"login", "sync", "list", "categories", "assign", "clear", "suggest"}
	if len(exec.calls) < len(wantOrder) {
		t.Fatalf("few calls: %+v", exec.calls)
	}
	idx := 0
	for _, c := range exec.calls {
		if idx < len(wantOrder) && c == wantOrder[idx] {
			idx++
		}
	}
	if idx != len(wantOrder) {
		t.Fatalf("commands order mismatch: got %v, want subseq %v", exec.calls, wantOrder)
	}

	wantArgs := []string{"sheet", "2", "Work stuff", "2", "3"}
	for i, w := range wantArgs {
		if i >= len(exec.args) || exec.args[i] != w {
			t.Fatalf("args mismatch: got %v, want %v", exec.args, wantArgs)
		}
	}
}

func TestRunREPL_UsageAndQuit(t *testing.T) {
	muteOutput(t)

	input := strings.NewReader("assign\nclear\nsuggest\nquit\n")
	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}

func TestRunREPL_EmptyLinesSkipped(t *testing.T) {
	muteOutput(t)

	input := strings.NewReader("\n\n   \nexit\n")
	exec := &fakeExec{}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}
