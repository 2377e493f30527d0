package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	args  [][]string
}

func (f *fakeExec) record(name string, args ...string) error {
	f.calls = append(f.calls, name)
	f.args = append(f.args, args)
	return nil
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	return f.record("register")
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.record("login")
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.record("logout")
}
func (f *fakeExec) Profile(ctx context.Context) error { return f.record("profile") }
func (f *fakeExec) Forgot(ctx context.Context) error  { return f.record("forgot") }
func (f *fakeExec) Reset(ctx context.Context) error   { return f.record("reset") }
func (f *fakeExec) Analyze(ctx context.Context, files []string) error {
	return f.record("analyze", files...)
}
func (f *fakeExec) History(ctx context.Context) error { return f.record("history") }
func (f *fakeExec) Cases(ctx context.Context, args []string) error {
	return f.record("cases", args...)
}
func (f *fakeExec) Flag(ctx context.Context, id string) error { return f.record("flag", id) }
func (f *fakeExec) Show(ctx context.Context, id string) error { return f.record("show", id) }
func (f *fakeExec) Preview(ctx context.Context, id, path string) error {
	return f.record("preview", id, path)
}
func (f *fakeExec) Messages(ctx context.Context, id string) error { return f.record("messages", id) }
func (f *fakeExec) Send(ctx context.Context, id, text string) error {
	return f.record("send", id, text)
}
func (f *fakeExec) Watch(ctx context.Context, id string) error { return f.record("watch", id) }

func capturePrints(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		parts := make([]string, len(a))
		for i, v := range a {
			parts[i] = strings.TrimSpace(toString(v))
		}
		lines = append(lines, strings.Join(parts, " "))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func toString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case error:
		return x.Error()
	default:
		return ""
	}
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	capturePrints(t)

	input := strings.Join([]string{
		"help",
		"login",
		"analyze a.png b.jpg",
		"history",
		"cases -flagged -sort risk-desc Atopic dermatitis",
		"show c1",
		"flag c1",
		"preview c1 out.png",
		"messages c1",
		"send c1 hello   there doctor",
		"watch c1",
		"profile",
		"logout",
		"exit",
		"register",
	}, "\n")

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader(input)))

	require.Equal(t, []string{
		"login", "analyze", "history", "cases", "show", "flag", "preview",
		"messages", "send", "watch", "profile", "logout",
	}, exec.calls)
	assert.Equal(t, []string{"a.png", "b.jpg"}, exec.args[1])
	assert.Equal(t, []string{"-flagged", "-sort", "risk-desc", "Atopic", "dermatitis"}, exec.args[3])
	assert.Equal(t, []string{"c1", "out.png"}, exec.args[6])
	assert.Equal(t, []string{"c1", "hello there doctor"}, exec.args[8])
}

func TestRunREPL_UsageAndUnknown(t *testing.T) {
	lines := capturePrints(t)

	input := "analyze\nshow\npreview c1\nsend c1\nfoobar\nquit\n"
	exec := &fakeExec{loggedIn: true}
	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewReader(strings.NewReader(input)))

	assert.Empty(t, exec.calls)
	out := strings.Join(*lines, "\n")
	assert.Contains(t, out, "Usage: analyze <file>...")
	assert.Contains(t, out, "Usage: show <case id>")
	assert.Contains(t, out, "Usage: preview <case id> <file>")
	assert.Contains(t, out, "Usage: send <case id> <text>")
	assert.Contains(t, out, "Unknown command: foobar")
	assert.Contains(t, out, "Bye!")
}

func TestRunREPL_HelpDependsOnLogin(t *testing.T) {
	lines := capturePrints(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader("help\nlogin\nhelp")))

	out := strings.Join(*lines, "\n")
	assert.Contains(t, out, helpSignedOut)
	assert.Contains(t, out, helpSignedIn)
	assert.Equal(t, []string{"login"}, exec.calls, "last line without newline still runs")
}
