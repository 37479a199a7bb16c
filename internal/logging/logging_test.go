package logging

import "testing"

func TestNew(t *testing.T) {
	t.Parallel()

	logger, err := New("debug")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if logger == nil {
		t.Fatalf("expected logger instance")
	}
	_ = logger.Sync()
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	if _, err := New("chatty"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}
