package command

import (
	"strings"
	"testing"

	"i3mcp/internal/model"
)

func intPtr(v int) *int { return &v }

func TestFocusWindow(t *testing.T) {
	cases := []struct {
		name    string
		in      FocusWindow
		want    string
		wantErr bool
	}{
		{"direction", FocusWindow{Direction: "left"}, "focus left", false},
		{"target parent", FocusWindow{Target: "parent"}, "focus parent", false},
		{"both set", FocusWindow{Direction: "left", Target: "parent"}, "", true},
		{"neither set", FocusWindow{}, "", true},
		{"bad direction", FocusWindow{Direction: "sideways"}, "", true},
		{"bad target", FocusWindow{Target: "sibling"}, "", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.in.Build()
			if (err != nil) != tc.wantErr {
				t.Fatalf("err = %v, wantErr = %v", err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestMoveWindow_ChainsUnitsInOrder(t *testing.T) {
	got, err := MoveWindow{Workspace: "2", Direction: "left", Center: true}.Build()
	if err != nil {
		t.Fatal(err)
	}
	want := `move container to workspace "2", move left, move position center`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestMoveWindow_PositioningOptionsAreExclusive(t *testing.T) {
	if _, err := (MoveWindow{Center: true, ToMouse: true}).Build(); err == nil {
		t.Error("expected error for center with to_mouse")
	}
	if _, err := (MoveWindow{ToMark: "m", X: intPtr(1), Y: intPtr(2)}).Build(); err == nil {
		t.Error("expected error for to_mark with coordinates")
	}
}

func TestMoveWindow_Coordinates(t *testing.T) {
	got, err := MoveWindow{X: intPtr(100), Y: intPtr(200)}.Build()
	if err != nil {
		t.Fatal(err)
	}
	if got != "move position 100 px 200 px" {
		t.Errorf("got %q", got)
	}
}

func TestMoveWindow_CoordinateRequiresBoth(t *testing.T) {
	if _, err := (MoveWindow{X: intPtr(100)}).Build(); err == nil {
		t.Error("expected error for x without y")
	}
	if _, err := (MoveWindow{Y: intPtr(100)}).Build(); err == nil {
		t.Error("expected error for y without x")
	}
}

func TestMoveWindow_Empty(t *testing.T) {
	if _, err := (MoveWindow{}).Build(); err == nil {
		t.Error("expected error when nothing to do")
	}
}

func TestMoveWindow_ToMark(t *testing.T) {
	got, err := MoveWindow{ToMark: "notes"}.Build()
	if err != nil {
		t.Fatal(err)
	}
	if got != `move window to mark "notes"` {
		t.Errorf("got %q", got)
	}
}

func TestResizeWindow_Absolute(t *testing.T) {
	got, err := ResizeWindow{Width: intPtr(800), Height: intPtr(600)}.Build()
	if err != nil {
		t.Fatal(err)
	}
	if got != "floating enable, resize set 800 600" {
		t.Errorf("got %q", got)
	}
}

func TestResizeWindow_AbsoluteRequiresBoth(t *testing.T) {
	if _, err := (ResizeWindow{Width: intPtr(800)}).Build(); err == nil {
		t.Error("expected error for width without height")
	}
}

func TestResizeWindow_Relative(t *testing.T) {
	got, err := ResizeWindow{GrowShrink: "grow", Dimension: "width", Amount: 50}.Build()
	if err != nil {
		t.Fatal(err)
	}
	if got != "resize grow width 50 px" {
		t.Errorf("got %q", got)
	}
}

func TestResizeWindow_DefaultAmount(t *testing.T) {
	got, err := ResizeWindow{GrowShrink: "shrink", Dimension: "height"}.Build()
	if err != nil {
		t.Fatal(err)
	}
	if got != "resize shrink height 10 px" {
		t.Errorf("got %q", got)
	}
}

func TestResizeWindow_Empty(t *testing.T) {
	if _, err := (ResizeWindow{}).Build(); err == nil {
		t.Error("expected error when no resize specified")
	}
}

func TestExec_Steps(t *testing.T) {
	steps, err := Exec{Command: "firefox", Workspace: "3"}.Steps()
	if err != nil {
		t.Fatal(err)
	}
	want := []string{`workspace "3"`, "exec --no-startup-id firefox"}
	if len(steps) != 2 || steps[0] != want[0] || steps[1] != want[1] {
		t.Errorf("steps = %v, want %v", steps, want)
	}
}

func TestExec_NoWorkspace(t *testing.T) {
	steps, err := Exec{Command: "firefox"}.Steps()
	if err != nil {
		t.Fatal(err)
	}
	if len(steps) != 1 || steps[0] != "exec --no-startup-id firefox" {
		t.Errorf("steps = %v", steps)
	}
}

func TestExec_Validate(t *testing.T) {
	if err := (Exec{}).Validate(); err == nil {
		t.Error("expected error for missing command")
	}
	if err := (Exec{Command: "   "}).Validate(); err == nil {
		t.Error("expected error for whitespace-only command")
	}
	if err := (Exec{Command: "x", MarkAs: "m"}).Validate(); err == nil {
		t.Error("expected error for mark_as without move_to_scratchpad")
	}
	if err := (Exec{Command: "x", MarkAs: "m", MoveToScratchpad: true}).Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestMoveToOutput(t *testing.T) {
	got, err := MoveToOutput{Output: "HDMI-1"}.Build()
	if err != nil {
		t.Fatal(err)
	}
	if got != "move container to output HDMI-1" {
		t.Errorf("got %q", got)
	}

	got, err = MoveToOutput{Direction: "right"}.Build()
	if err != nil {
		t.Fatal(err)
	}
	if got != "move container to output right" {
		t.Errorf("got %q", got)
	}

	if _, err := (MoveToOutput{Output: "HDMI-1", Direction: "right"}).Build(); err == nil {
		t.Error("expected error when both output and direction are set")
	}
	if _, err := (MoveToOutput{}).Build(); err == nil {
		t.Error("expected error when neither output nor direction is set")
	}
}

func TestTristateBuilders(t *testing.T) {
	got, err := Floating{}.Build()
	if err != nil || got != "floating toggle" {
		t.Errorf("got %q, %v", got, err)
	}
	got, err = Sticky{Mode: "enable"}.Build()
	if err != nil || got != "sticky enable" {
		t.Errorf("got %q, %v", got, err)
	}
	if _, err := (Floating{Mode: "on"}).Build(); err == nil {
		t.Error("expected error for invalid mode")
	}
}

func TestFullscreen(t *testing.T) {
	got, err := Fullscreen{Mode: "enable", Global: true}.Build()
	if err != nil {
		t.Fatal(err)
	}
	if got != "fullscreen enable global" {
		t.Errorf("got %q", got)
	}
}

func TestBorder(t *testing.T) {
	got, err := Border{Style: "pixel", Width: intPtr(3)}.Build()
	if err != nil || got != "border pixel 3" {
		t.Errorf("got %q, %v", got, err)
	}
	got, err = Border{Style: "normal"}.Build()
	if err != nil || got != "border normal" {
		t.Errorf("got %q, %v", got, err)
	}
	if _, err := (Border{Style: "toggle", Width: intPtr(3)}).Build(); err == nil {
		t.Error("expected error for toggle with width")
	}
	if _, err := (Border{}).Build(); err == nil {
		t.Error("expected error for missing style")
	}
}

func TestSwapContainers_Validate(t *testing.T) {
	if err := (SwapContainers{}).Validate(); err == nil {
		t.Error("expected error with no target")
	}
	if err := (SwapContainers{TargetID: 1, TargetMark: "m"}).Validate(); err == nil {
		t.Error("expected error with two targets")
	}
	if err := (SwapContainers{TargetID: 1, SourceID: 2, SourceMark: "m"}).Validate(); err == nil {
		t.Error("expected error with two sources")
	}
	if err := (SwapContainers{TargetMark: "m", SourceID: 2}).Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestSwapContainers_Commands(t *testing.T) {
	s := SwapContainers{TargetMark: "browser", SourceID: 42}
	if !s.HasSource() {
		t.Fatal("expected a source")
	}
	if got := s.FocusCommand(); got != "[id=42] focus" {
		t.Errorf("focus = %q", got)
	}
	if got := s.SwapCommand(); got != `swap container with mark "browser"` {
		t.Errorf("swap = %q", got)
	}

	s = SwapContainers{TargetConID: 7, SourceMark: "term"}
	if got := s.FocusCommand(); got != `[con_mark="term"] focus` {
		t.Errorf("focus = %q", got)
	}
	if got := s.SwapCommand(); got != "swap container with con_id 7" {
		t.Errorf("swap = %q", got)
	}
}

func TestFocusByCriteria(t *testing.T) {
	urgent := true
	got, err := FocusByCriteria(model.Criteria{Class: "Firefox", Urgent: &urgent})
	if err != nil {
		t.Fatal(err)
	}
	if got != `[class="Firefox" urgent=yes] focus` {
		t.Errorf("got %q", got)
	}
	if _, err := FocusByCriteria(model.Criteria{}); err == nil {
		t.Error("expected error for empty criteria")
	}
}

func TestQuote_EscapesLiterals(t *testing.T) {
	got, err := MoveWindow{ToMark: `a "quoted" \mark`}.Build()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, `"a \"quoted\" \\mark"`) {
		t.Errorf("literal not escaped: %q", got)
	}
}
