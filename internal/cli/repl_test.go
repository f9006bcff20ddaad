package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	calls []string
}

func (f *fakeExec) record(name string) error {
	f.calls = append(f.calls, name)
	return nil
}

func (f *fakeExec) Add(ctx context.Context) error          { return f.record("add") }
func (f *fakeExec) Update(ctx context.Context) error       { return f.record("update") }
func (f *fakeExec) Delete(ctx context.Context) error       { return f.record("delete") }
func (f *fakeExec) List(ctx context.Context) error         { return f.record("list") }
func (f *fakeExec) Past(ctx context.Context) error         { return f.record("past") }
func (f *fakeExec) AddTask(ctx context.Context) error      { return f.record("addtask") }
func (f *fakeExec) CompleteTask(ctx context.Context) error { return f.record("donetask") }
func (f *fakeExec) RemoveTask(ctx context.Context) error   { return f.record("rmtask") }
func (f *fakeExec) Tasks(ctx context.Context) error        { return f.record("tasks") }
func (f *fakeExec) Undo(ctx context.Context) error         { return f.record("undo") }
func (f *fakeExec) History(ctx context.Context) error      { return f.record("history") }
func (f *fakeExec) Reminders(ctx context.Context) error    { return f.record("reminders") }
func (f *fakeExec) Sweep(ctx context.Context) error        { return f.record("sweep") }
func (f *fakeExec) Export(ctx context.Context) error       { return f.record("export") }

func TestRunREPL_DispatchesCommandsInOrder(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader(strings.Join([]string{
		"help",
		"add",
		"list",
		"l",
		"past",
		"addtask",
		"donetask",
		"rmtask",
		"tasks",
		"update",
		"undo",
		"history",
		"reminders",
		"sweep",
		"export",
		"delete",
		"foobar",
		"",
		"exit",
	}, "\n"))

	exec := &fakeExec{}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "0 upcoming" }, sc)

	want := []string{
		"add", "list", "list", "past",
		"addtask", "donetask", "rmtask", "tasks",
		"update", "undo", "history", "reminders", "sweep", "export", "delete",
	}
	if len(exec.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", exec.calls, want)
	}
	for i, c := range exec.calls {
		if c != want[i] {
			t.Fatalf("call %d = %q, want %q (all: %v)", i, c, want[i], exec.calls)
		}
	}
}

func TestRunREPL_QuitAndEOF(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	t.Run("quit stops the loop", func(t *testing.T) {
		exec := &fakeExec{}
		sc := bufio.NewScanner(strings.NewReader("quit\nadd\n"))

		runREPL(context.Background(), exec, func() string { return "s" }, sc)

		if len(exec.calls) != 0 {
			t.Fatalf("unexpected calls: %v", exec.calls)
		}
	})

	t.Run("EOF stops the loop", func(t *testing.T) {
		exec := &fakeExec{}
		sc := bufio.NewScanner(strings.NewReader("list\n"))

		runREPL(context.Background(), exec, func() string { return "s" }, sc)

		if len(exec.calls) != 1 || exec.calls[0] != "list" {
			t.Fatalf("calls = %v", exec.calls)
		}
	})
}
