package easygame

import "testing"

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hello", "hello"},
		{"after-click", "after-click"},
		{"frame.01", "frame.01"},
		{"has spaces", "has_spaces"},
		{"path/to/thing", "path_to_thing"},
		{"special!@#$%", "special_____"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
		{"MixedCase123", "MixedCase123"},
	}
	for _, tt := range tests {
		if got := sanitizeLabel(tt.in); got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScreenshotQueue(t *testing.T) {
	ctx, _ := newTestContext(t)
	e := NewEngine(ctx, "Test", 60, nil)

	e.Screenshot("a")
	e.Screenshot("b")

	if len(e.screenshotQueue) != 2 {
		t.Fatalf("queue len = %d, want 2", len(e.screenshotQueue))
	}
	if e.screenshotQueue[0] != "a" || e.screenshotQueue[1] != "b" {
		t.Errorf("queue = %v, want [a b]", e.screenshotQueue)
	}
}

func TestScreenshotDirDefault(t *testing.T) {
	ctx, _ := newTestContext(t)
	e := NewEngine(ctx, "Test", 60, nil)
	if e.ScreenshotDir != "screenshots" {
		t.Errorf("ScreenshotDir = %q, want %q", e.ScreenshotDir, "screenshots")
	}
}
