package sink_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap/zaptest"

	"mwc/assembler"
	"mwc/sink"
	"mwc/sink/trace"
)

func TestTee(t *testing.T) {
	one, two := trace.New(), trace.New()
	page := assembler.PageSpan{Width: 612, Height: 792, PageCount: 1}
	a, err := assembler.New(assembler.FlavorText, sink.Tee(one, two), []assembler.PageSpan{page}, zaptest.NewLogger(t))
	if err != nil {
		t.Fatal(err)
	}
	a.InsertUnicodeString("hello  world")
	a.InsertTab()
	a.InsertEOL(false)
	a.InsertBreak(assembler.BreakKindPage)
	a.InsertUnicodeString("next")
	if err := a.EndDocument(); err != nil {
		t.Fatal(err)
	}

	if len(one.Events()) == 0 {
		t.Fatal("no events recorded")
	}
	if diff := cmp.Diff(one.Shape(), two.Shape()); diff != "" {
		t.Errorf("event streams differ (-first +second):\n%s", diff)
	}
	if one.Text() != two.Text() {
		t.Errorf("text differs: %q and %q", one.Text(), two.Text())
	}
	if err := two.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestTeeSingle(t *testing.T) {
	rec := trace.New()
	if got := sink.Tee(rec); got != assembler.Sink(rec) {
		t.Error("Tee of a single sink should return it unchanged")
	}
}
