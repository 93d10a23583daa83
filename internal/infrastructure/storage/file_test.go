package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	f, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}

	if err := f.Set(context.Background(), "session.token", "tok"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got, _ := f.Get(context.Background(), "session.token"); got != "tok" {
		t.Fatalf("Get = %q, want tok", got)
	}
	if got, _ := f.Get(context.Background(), "missing"); got != "" {
		t.Fatalf("missing key returned %q", got)
	}
}

func TestFile_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	f, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	_ = f.Set(context.Background(), "cart", `{"items":[]}`)
	_ = f.Set(context.Background(), "session.role", "CUSTOMER")
	_ = f.Delete(context.Background(), "cart")

	reopened, err := OpenFile(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if got, _ := reopened.Get(context.Background(), "session.role"); got != "CUSTOMER" {
		t.Fatalf("role lost across reopen: %q", got)
	}
	if got, _ := reopened.Get(context.Background(), "cart"); got != "" {
		t.Fatalf("deleted key came back: %q", got)
	}
}

func TestFile_CorruptDocumentDegradesToEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	if err := os.WriteFile(path, []byte("}}not json"), 0o600); err != nil {
		t.Fatalf("seed corrupt file: %v", err)
	}

	f, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile on corrupt document: %v", err)
	}
	if got, _ := f.Get(context.Background(), "session.token"); got != "" {
		t.Fatalf("corrupt document yielded data: %q", got)
	}
}

func TestFile_CreatesStateDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "state.json")
	f, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	if err := f.Set(context.Background(), "k", "v"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("state file not created: %v", err)
	}
}
