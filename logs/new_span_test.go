package logs

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/quirl/modes"
)

func withLevel(t *testing.T, l slog.Level) {
	old := level.Level()
	level.Set(l)
	t.Cleanup(func() {
		level.Set(old)
	})
}

func TestNewSpan(t *testing.T) {
	withLevel(t, slog.LevelDebug)
	buf := new(bytes.Buffer)
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		newSpan NewSpan,
	) {
		ctx := context.Background()

		ctx1, span1 := newSpan(ctx, "")

		ctx11, span11 := newSpan(ctx1, "")

		ctx12, span12 := newSpan(ctx11, span1)

		lines := strings.Split(buf.String(), "\n")
		if !strings.Contains(lines[0], "logs.span="+string(span1)) {
			t.Fatalf("got %v", lines[0])
		}
		if !strings.Contains(lines[1], "logs.span="+string(span11)) {
			t.Fatalf("got %v", lines[1])
		}
		if !strings.Contains(lines[2], "logs.span="+string(span12)) {
			t.Fatalf("got %v", lines[2])
		}
		if !strings.Contains(lines[1], "parent="+string(span1)) {
			t.Fatalf("got %v", lines[1])
		}
		if !strings.Contains(lines[2], "parent="+string(span1)) {
			t.Fatalf("got %v", lines[2])
		}
		if !strings.Contains(lines[2], "creator="+string(span11)) {
			t.Fatalf("got %v", lines[2])
		}

		err := WrapSpan(ctx12, errors.New("foo"))
		if !strings.Contains(err.Error(), "span: "+string(span12)) {
			t.Fatalf("got %v", err)
		}
	})
}

func TestWrapSpanWithoutSpan(t *testing.T) {
	err := errors.New("foo")
	if WrapSpan(context.Background(), err) != err {
		t.Fatal()
	}
	if WrapSpan(context.Background(), nil) != nil {
		t.Fatal()
	}
}

func TestConfigureLevel(t *testing.T) {
	withLevel(t, slog.LevelWarn)
	if err := ConfigureLevel("debug"); err != nil {
		t.Fatal(err)
	}
	if Level() != slog.LevelDebug {
		t.Fatalf("got %v", Level())
	}
	if err := ConfigureLevel("loud"); err == nil {
		t.Fatal("should error")
	}
}
