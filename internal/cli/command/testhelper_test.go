package command

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// syncBuffer is a bytes.Buffer safe for a writer goroutine and a reader.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// isolate points HOME at a temp dir and clears DEV_* variables so the
// developer's own configuration never leaks into a test.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("NO_COLOR", "1")
	for _, kv := range os.Environ() {
		if strings.HasPrefix(kv, "DEV_") {
			key := strings.SplitN(kv, "=", 2)[0]
			t.Setenv(key, "")
			os.Unsetenv(key)
		}
	}
	return home
}

// testEnv runs the CLI against a private settings directory.
type testEnv struct {
	t   *testing.T
	dir string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	isolate(t)
	return &testEnv{t: t, dir: filepath.Join(t.TempDir(), "settings")}
}

// run executes "dev --settings-dir <dir> args..." and captures its output.
func (e *testEnv) run(args ...string) (stdout, stderr string, err error) {
	return e.runContext(context.Background(), nil, args...)
}

func (e *testEnv) runContext(ctx context.Context, out *syncBuffer, args ...string) (stdout, stderr string, err error) {
	e.t.Helper()

	if out == nil {
		out = &syncBuffer{}
	}
	errOut := &syncBuffer{}

	app := App()
	app.Writer = out
	app.ErrWriter = errOut

	full := append([]string{"dev", "--settings-dir", e.dir}, args...)
	err = app.RunContext(ctx, full)
	return out.String(), errOut.String(), err
}

// mustRun fails the test when the command returns an error.
func (e *testEnv) mustRun(args ...string) string {
	e.t.Helper()
	stdout, stderr, err := e.run(args...)
	if err != nil {
		e.t.Fatalf("dev %s: %v (stderr: %s)", strings.Join(args, " "), err, stderr)
	}
	return stdout
}

func (e *testEnv) writeFile(name, content string) {
	e.t.Helper()
	if err := os.MkdirAll(e.dir, 0o700); err != nil {
		e.t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(e.dir, name), []byte(content), 0o600); err != nil {
		e.t.Fatal(err)
	}
}
