package life

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
)

func TestStringRendersOneLinePerRow(t *testing.T) {
	b := boardOf([]uint8{
		1, 0, 1,
		0, 1, 0,
	}, 3)

	if got, want := b.String(), "101\n010\n"; got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}

	// A single row still ends with its newline.
	if got, want := boardOf([]uint8{0, 0, 0, 0}, 4).String(), "0000\n"; got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestRendererWritesBoardText(t *testing.T) {
	b := boardOf([]uint8{
		0, 1,
		1, 0,
	}, 2)

	var buf bytes.Buffer
	if err := NewRenderer(&buf).Render(b); err != nil {
		t.Fatalf("Expected no error rendering to a buffer, got %v", err)
	}
	if got := buf.String(); got != b.String() {
		t.Errorf("Expected %q, got %q", b.String(), got)
	}
}

var errSink = errors.New("sink closed")

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errSink }

func TestRenderReportsWriteFailure(t *testing.T) {
	err := NewRenderer(failingWriter{}).Render(Dead(2, 2))
	if err == nil {
		t.Fatal("Expected an error from a failing writer")
	}
	if errors.Cause(err) != errSink {
		t.Errorf("Expected the writer's error as the cause, got %v", err)
	}
}
