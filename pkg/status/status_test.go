package status_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formsheet/pkg/status"
)

func TestSlot_LastWriteWins(t *testing.T) {
	var seen []status.Message
	slot := status.NewSlot(status.DisplayFunc(func(msg status.Message) {
		seen = append(seen, msg)
	}))

	slot.Set("first", status.LevelInfo)
	slot.Set("second", status.LevelError)
	slot.Set("third", status.Level("warning"))

	want := status.Message{Text: "third", Level: status.LevelNone}
	if diff := cmp.Diff(want, slot.Current()); diff != "" {
		t.Fatalf("current mismatch (-want +got):\n%s", diff)
	}
	if len(seen) != 3 {
		t.Fatalf("expected 3 display notifications, got %d", len(seen))
	}
}

func TestSlot_Clear(t *testing.T) {
	slot := status.NewSlot()
	slot.Set("oops", status.LevelError)
	slot.Clear()

	if !slot.Current().Empty() {
		t.Fatalf("expected empty message after clear, got %+v", slot.Current())
	}
}
