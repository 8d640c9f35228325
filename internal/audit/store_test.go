package audit

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func TestAppendAndRecent(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "audit.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	records := []Record{
		{Tool: "slack_post_message", Outcome: "ok", Duration: 120 * time.Millisecond},
		{Tool: "slack_list_channels", Outcome: "error", ErrorKind: "rate_limit", Retryable: true, Duration: 40 * time.Millisecond},
	}
	for _, rec := range records {
		if err := store.Append(ctx, rec); err != nil {
			t.Fatalf("Append(%q) error = %v", rec.Tool, err)
		}
	}

	got, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Recent() returned %d records, want 2", len(got))
	}
	// Newest first.
	if got[0].Tool != "slack_list_channels" {
		t.Errorf("got[0].Tool = %q, want %q", got[0].Tool, "slack_list_channels")
	}
	if got[0].ErrorKind != "rate_limit" {
		t.Errorf("got[0].ErrorKind = %q, want %q", got[0].ErrorKind, "rate_limit")
	}
	if !got[0].Retryable {
		t.Error("got[0].Retryable = false, want true")
	}
	if got[0].Duration != 40*time.Millisecond {
		t.Errorf("got[0].Duration = %v, want 40ms", got[0].Duration)
	}
	if got[1].Tool != "slack_post_message" {
		t.Errorf("got[1].Tool = %q, want %q", got[1].Tool, "slack_post_message")
	}
	if got[1].CreatedAt == "" {
		t.Error("got[1].CreatedAt is empty")
	}
}

func TestRecentLimit(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "audit.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		if err := store.Append(ctx, Record{Tool: "slack_auth_test", Outcome: "ok"}); err != nil {
			t.Fatalf("Append() error = %v", err)
		}
	}
	got, err := store.Recent(ctx, 3)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if len(got) != 3 {
		t.Errorf("Recent(3) returned %d records, want 3", len(got))
	}
}

func TestOpenCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "audit.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer store.Close()

	if err := store.Append(context.Background(), Record{Tool: "slack_auth_test", Outcome: "ok"}); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
}

func TestOpenIdempotentSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.db")
	first, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if err := first.Append(context.Background(), Record{Tool: "slack_auth_test", Outcome: "ok"}); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	second, err := Open(path)
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer second.Close()

	got, err := second.Recent(context.Background(), 10)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if len(got) != 1 {
		t.Errorf("records survived reopen = %d, want 1", len(got))
	}
}
