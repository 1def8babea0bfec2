package errors

import (
	"bytes"
	stderrors "errors"
	"strings"
	"testing"
	"time"
)

func TestGraphErrorString(t *testing.T) {
	err := &GraphError{
		Op:   "config.Load",
		Kind: KindConfig,
		Err:  stderrors.New("file not found"),
	}
	want := "config.Load [config]: file not found"
	if got := err.Error(); got != want {
		t.Errorf("GraphError.Error() = %q, want %q", got, want)
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindConfig, "config"},
		{KindValidation, "validation"},
		{KindRender, "render"},
		{KindPanic, "panic"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestInvalidWrapsSentinel(t *testing.T) {
	err := Invalid("ring.NewState", "max_value", 0, ErrInvalidMax)

	if !stderrors.Is(err, ErrInvalidMax) {
		t.Errorf("expected errors.Is(err, ErrInvalidMax), got %v", err)
	}
	var ve *ValidationError
	if !stderrors.As(err, &ve) {
		t.Fatal("expected a ValidationError in the chain")
	}
	if ve.Field != "max_value" {
		t.Errorf("Field = %q, want %q", ve.Field, "max_value")
	}
	if KindOf(err) != KindValidation {
		t.Errorf("KindOf = %v, want validation", KindOf(err))
	}
	want := "ring.NewState [validation]: invalid max_value 0: max value must be at least 1"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestKindOfPlainError(t *testing.T) {
	if got := KindOf(stderrors.New("plain")); got != KindUnknown {
		t.Errorf("KindOf(plain) = %v, want unknown", got)
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{
		Value:     "test panic",
		Timestamp: time.Now(),
	}
	want := "panic: test panic"
	if got := err.Error(); got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}

	err.Op = "widgets.CircularGraph.Paint"
	want = "panic in widgets.CircularGraph.Paint: test panic"
	if got := err.Error(); got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestReport(t *testing.T) {
	var captured *GraphError
	handler := &testHandler{
		onError: func(err *GraphError) {
			captured = err
		},
	}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	Report(&GraphError{
		Op:   "test.op",
		Kind: KindRender,
		Err:  stderrors.New("boom"),
	})

	if captured == nil {
		t.Fatal("expected error to be captured")
	}
	if captured.Op != "test.op" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.op")
	}
	if captured.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestRecover(t *testing.T) {
	var captured *PanicError
	handler := &testHandler{
		onPanic: func(err *PanicError) {
			captured = err
		},
	}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	func() {
		defer Recover("test.recover")
		panic("intentional test panic")
	}()

	if captured == nil {
		t.Fatal("expected panic to be recovered and captured")
	}
	if captured.Value != "intentional test panic" {
		t.Errorf("Value = %v, want %q", captured.Value, "intentional test panic")
	}
	if captured.Op != "test.recover" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.recover")
	}
	if captured.StackTrace == "" {
		t.Error("expected a stack trace")
	}
}

func TestSetHandlerNil(t *testing.T) {
	oldHandler := DefaultHandler
	defer SetHandler(oldHandler)

	SetHandler(nil)
	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Errorf("SetHandler(nil) should set LogHandler, got %T", DefaultHandler)
	}
}

func TestLogHandler(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Out: &buf}

	h.HandleError(&GraphError{Op: "raster.EncodePNG", Kind: KindRender, Err: stderrors.New("short write")})
	h.HandlePanic(&PanicError{Op: "cmd.render", Value: "oops"})

	out := buf.String()
	for _, want := range []string{
		"[circulargraph error] raster.EncodePNG: short write",
		"[circulargraph panic] cmd.render: oops",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q should contain %q", out, want)
		}
	}
}

type testHandler struct {
	onError func(*GraphError)
	onPanic func(*PanicError)
}

func (h *testHandler) HandleError(err *GraphError) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}
