package textutil

import (
	"bytes"
	"strings"
	"testing"
)

func TestCenterHeader(t *testing.T) {
	got := centerHeader("title", '-', 40)
	if len(got) != 40 {
		t.Errorf("header length = %d, want 40", len(got))
	}
	if !strings.Contains(got, " title ") {
		t.Errorf("header %q missing padded title", got)
	}
	if !strings.HasPrefix(got, "-") || !strings.HasSuffix(got, "-") {
		t.Errorf("header %q not framed by rule characters", got)
	}
}

func TestCenterHeaderTrimsTitle(t *testing.T) {
	got := centerHeader("  spaced  ", '=', 30)
	if !strings.Contains(got, " spaced ") {
		t.Errorf("header %q should trim the title before padding", got)
	}
	if strings.Contains(got, "  spaced") {
		t.Errorf("header %q kept interior double spaces", got)
	}
}

func TestCenterHeaderTitleWiderThanTerminal(t *testing.T) {
	long := strings.Repeat("x", 50)
	got := centerHeader(long, '-', 30)
	if !strings.Contains(got, long) {
		t.Errorf("header %q should keep the full title", got)
	}
}

func TestTerminalWidthFallback(t *testing.T) {
	// Under go test, stdout is not a terminal: expect the fallback.
	if got := TerminalWidth(); got != 80 {
		t.Logf("TerminalWidth = %d (stdout appears to be a tty)", got)
	}
}

func TestMessage(t *testing.T) {
	tests := []struct {
		name   string
		header string
		tag    string
		msg    string
		want   string
	}{
		{name: "no tag", header: "ERROR", msg: "boom", want: "[ERROR] - boom"},
		{name: "plain tag", header: "ERROR", tag: "io", msg: "boom", want: "[ERROR][IO] - boom"},
		{name: "pre-bracketed tag", header: "WARN", tag: "[NET]", msg: "slow", want: "[WARN][NET] - slow"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Message(tc.header, tc.tag, tc.msg); got != tc.want {
				t.Errorf("Message = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestFprintError(t *testing.T) {
	var buf bytes.Buffer
	FprintError(&buf, "disk full", "io")

	got := buf.String()
	if !strings.Contains(got, "[ERROR]") {
		t.Errorf("output %q missing [ERROR] header", got)
	}
	if !strings.Contains(got, "[IO] - disk full") {
		t.Errorf("output %q missing tag and message", got)
	}
}

func TestProgressBar(t *testing.T) {
	var buf bytes.Buffer

	bar := NewProgressBar(4)
	bar.SetOutput(&buf)

	for i := 0; i < 4; i++ {
		bar.Next()
	}
	bar.Finish()

	out := buf.String()
	if !strings.Contains(out, "100.00%") {
		t.Errorf("output missing 100%% mark: %q", out)
	}
	if !strings.Contains(out, strings.Repeat("█", 20)) {
		t.Errorf("output missing full bar: %q", out)
	}
	if bar.Index() != 4 {
		t.Errorf("Index = %d, want 4", bar.Index())
	}
	if !strings.HasSuffix(out, "\n") {
		t.Error("Finish should terminate the line")
	}
}

func TestProgressBarDoesNotOvershoot(t *testing.T) {
	var buf bytes.Buffer

	bar := NewProgressBar(2)
	bar.SetOutput(&buf)

	bar.Next()
	bar.Next()
	bar.Next() // extra call past the end

	if bar.Index() != 2 {
		t.Errorf("Index = %d, want 2 after overshoot", bar.Index())
	}
}

func TestProgressBarDisabledWhenNotTerminal(t *testing.T) {
	// Under go test, stderr is not a terminal.
	bar := NewProgressBar(3)
	if bar.enabled {
		t.Skip("stderr is a terminal in this environment")
	}
	bar.Next() // must not panic or write anywhere
	bar.Finish()
}

func TestMediumPercentageFormat(t *testing.T) {
	var buf bytes.Buffer

	bar := NewProgressBar(3)
	bar.SetOutput(&buf)
	bar.Next()

	if !strings.Contains(buf.String(), "33.33%") {
		t.Errorf("output = %q, want 33.33%%", buf.String())
	}
}
