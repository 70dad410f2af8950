package kafka

import (
	"context"
	"errors"
	"testing"
)

type testPayload struct {
	UUID string `json:"uuid"`
	Text string `json:"text"`
}

func TestTypedHandlerProcessesValidMessage(t *testing.T) {
	var processed *testPayload
	h := &TypedMessageHandler[testPayload]{
		Validate: func(msg *testPayload) bool { return msg.UUID != "" },
		Process: func(_ context.Context, msg *testPayload) error {
			processed = msg
			return nil
		},
		AlwaysMark: true,
	}

	mark, err := h.HandleMessage(context.Background(), []byte(`{"uuid":"u1","text":"hi"}`))
	if err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	if !mark {
		t.Fatalf("successful processing should mark the message")
	}
	if processed == nil || processed.Text != "hi" {
		t.Fatalf("processed = %+v", processed)
	}
}

func TestTypedHandlerMarksInvalidJSON(t *testing.T) {
	h := &TypedMessageHandler[testPayload]{
		Process:    func(context.Context, *testPayload) error { t.Fatal("should not process"); return nil },
		Validate:   func(*testPayload) bool { t.Fatal("should not validate"); return false },
		AlwaysMark: true,
	}

	mark, err := h.HandleMessage(context.Background(), []byte(`{not json`))
	if err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	if !mark {
		t.Fatalf("garbage messages should be marked to avoid poison loops")
	}
}

func TestTypedHandlerValidationFailure(t *testing.T) {
	h := &TypedMessageHandler[testPayload]{
		Validate: func(msg *testPayload) bool { return msg.UUID != "" },
		Process:  func(context.Context, *testPayload) error { t.Fatal("should not process"); return nil },
	}

	mark, err := h.HandleMessage(context.Background(), []byte(`{"text":"no uuid"}`))
	if err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	if mark {
		t.Fatalf("AlwaysMark=false validation failures must stay unmarked")
	}
}

func TestTypedHandlerProcessErrorLeavesUnmarked(t *testing.T) {
	h := &TypedMessageHandler[testPayload]{
		Process: func(context.Context, *testPayload) error { return errors.New("broker hiccup") },
	}

	mark, err := h.HandleMessage(context.Background(), []byte(`{"uuid":"u1"}`))
	if err == nil {
		t.Fatalf("process errors should propagate")
	}
	if mark {
		t.Fatalf("failed messages must stay unmarked for retry")
	}
}
