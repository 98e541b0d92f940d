package core

import (
	"errors"
	"testing"
	"time"

	goerrors "github.com/go-errors/errors"
)

func TestNewRecordAt(t *testing.T) {
	r := NewRecordAt(1462349832000, InfoLevel, "hello")

	want := time.Date(2016, 5, 4, 8, 17, 12, 0, time.UTC)
	if !r.Time.Equal(want) {
		t.Errorf("Time = %v, want %v", r.Time, want)
	}
	if r.Level != InfoLevel {
		t.Errorf("Level = %v, want %v", r.Level, InfoLevel)
	}
	if r.Message != "hello" {
		t.Errorf("Message = %q, want %q", r.Message, "hello")
	}
}

func TestWithStack(t *testing.T) {
	if WithStack(nil) != nil {
		t.Error("WithStack(nil) should be nil")
	}

	err := WithStack(errors.New("boom"))
	if err.Error() != "boom" {
		t.Errorf("Error() = %q, want %q", err.Error(), "boom")
	}

	var traced *goerrors.Error
	if !errors.As(err, &traced) {
		t.Fatal("expected a stack-carrying error")
	}
	if traced.ErrorStack() == "" {
		t.Error("expected a non-empty stack rendering")
	}
}
