package command

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/yndnr/dev-go/internal/core/domain"
	"github.com/yndnr/dev-go/internal/storage/filestore"
)

func TestConfig_Watch(t *testing.T) {
	e := newTestEnv(t)
	if err := os.MkdirAll(e.dir, 0o700); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	out := &syncBuffer{}
	errCh := make(chan error, 1)
	go func() {
		_, _, err := e.runContext(ctx, out, "config", "watch")
		errCh <- err
	}()

	// The watcher registers asynchronously; keep writing the same value
	// until it is reported. Unchanged values are printed once.
	store := filestore.New(e.dir)
	deadline := time.Now().Add(5 * time.Second)
	for !strings.Contains(out.String(), "example hello\n") {
		if time.Now().After(deadline) {
			t.Fatalf("watch output = %q, want example hello", out.String())
		}
		if err := store.Set("example", "hello"); err != nil {
			t.Fatal(err)
		}
		time.Sleep(50 * time.Millisecond)
	}

	cancel()
	select {
	case err := <-errCh:
		if err != nil {
			t.Errorf("watch returned %v after cancel", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}

	if n := strings.Count(out.String(), "example hello\n"); n != 1 {
		t.Errorf("example printed %d times, want 1: %q", n, out.String())
	}
}

func TestConfig_Watch_MissingDirectory(t *testing.T) {
	e := newTestEnv(t)

	_, _, err := e.run("config", "watch")
	if !domain.IsDomainError(err, "DEV-SYS-5002") {
		t.Errorf("error = %v, want DEV-SYS-5002", err)
	}
	if ExitCode(err) != ExitStorage {
		t.Errorf("ExitCode = %d, want %d", ExitCode(err), ExitStorage)
	}
}

func TestConfig_Watch_RejectsArguments(t *testing.T) {
	e := newTestEnv(t)

	_, _, err := e.run("config", "watch", "extra")
	if !domain.IsDomainError(err, "DEV-ARG-1001") {
		t.Errorf("error = %v, want DEV-ARG-1001", err)
	}
}
