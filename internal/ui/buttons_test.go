package ui

import "testing"

func TestControlBarLayout(t *testing.T) {
	b := NewControlBar()
	views := b.Views()
	if len(views) != 3 {
		t.Fatalf("got %d buttons, want 3", len(views))
	}
	for i, v := range views {
		if v.Rect.Dx() != buttonWidth || v.Rect.Dy() != buttonHeight {
			t.Fatalf("button %s is %dx%d", v.Button.Label(), v.Rect.Dx(), v.Rect.Dy())
		}
		if i > 0 && !views[i-1].Rect.Intersect(v.Rect).Empty() {
			t.Fatalf("buttons %d and %d overlap", i-1, i)
		}
	}
}

func TestControlBarClick(t *testing.T) {
	b := NewControlBar()
	stop := b.Views()[1].Rect

	if _, ok := b.Update(stop.Min.X+1, stop.Min.Y+1, false, false); ok {
		t.Fatal("hover alone should not click")
	}
	if got := b.Views()[1].State; got != StateHovered {
		t.Fatalf("state = %v, want hovered", got)
	}

	btn, ok := b.Update(stop.Min.X+1, stop.Min.Y+1, true, true)
	if !ok || btn != ButtonStop {
		t.Fatalf("click = (%v, %v), want Stop", btn, ok)
	}
	if got := b.Views()[1].State; got != StatePressed {
		t.Fatalf("state = %v, want pressed", got)
	}
	if got := b.Views()[0].State; got != StateNormal {
		t.Fatalf("start state = %v, want normal", got)
	}
}

func TestControlBarContains(t *testing.T) {
	b := NewControlBar()
	exit := b.Views()[2].Rect
	if !b.Contains(exit.Max.X-1, exit.Max.Y-1) {
		t.Fatal("inner corner should be inside")
	}
	if b.Contains(exit.Max.X, exit.Min.Y) {
		t.Fatal("right edge is exclusive")
	}
	if b.Contains(400, 400) {
		t.Fatal("grid area reported as a button")
	}
	if _, ok := b.Update(400, 400, true, true); ok {
		t.Fatal("click off the bar reported a button")
	}
}

func TestButtonStateColors(t *testing.T) {
	if StateNormal.Color() != NormalButton || StateHovered.Color() != HoveredButton || StatePressed.Color() != PressedButton {
		t.Fatal("state colors mismatched")
	}
}
