package camera

import "testing"

func TestNew(t *testing.T) {
	cam := New(1280, 720, 1440)

	if cam.ScrollY != 0 {
		t.Errorf("expected camera at top, got %f", cam.ScrollY)
	}
	if cam.MaxScroll() != 720 {
		t.Errorf("expected max scroll 720, got %f", cam.MaxScroll())
	}
}

func TestScrollClamps(t *testing.T) {
	cam := New(1280, 720, 1440)

	cam.Scroll(-50)
	if cam.ScrollY != 0 {
		t.Errorf("expected scroll clamped to 0, got %f", cam.ScrollY)
	}

	cam.Scroll(400)
	if cam.ScrollY != 400 {
		t.Errorf("expected scroll 400, got %f", cam.ScrollY)
	}

	cam.Scroll(1000)
	if cam.ScrollY != 720 {
		t.Errorf("expected scroll clamped to 720, got %f", cam.ScrollY)
	}
}

func TestSceneToScreenRoundtrip(t *testing.T) {
	cam := New(1280, 720, 1440)
	cam.ScrollTo(300)

	for _, y := range []float32{0, 160, 300, 1000} {
		if got := cam.ScreenToScene(cam.SceneToScreen(y)); got != y {
			t.Errorf("roundtrip failed: %f -> %f", y, got)
		}
	}

	// The surface bottom scrolls off the top of the screen
	if got := cam.SceneToScreen(160); got != -140 {
		t.Errorf("expected surface at -140, got %f", got)
	}
}

func TestIsVisible(t *testing.T) {
	cam := New(1280, 720, 1440)
	cam.ScrollTo(500)

	if !cam.IsVisible(600, 10) {
		t.Error("expected span inside viewport to be visible")
	}
	if cam.IsVisible(100, 50) {
		t.Error("expected span above viewport to be hidden")
	}
	if !cam.IsVisible(480, 30) {
		t.Error("expected span crossing the top edge to be visible")
	}
}

func TestResizeKeepsScrollInRange(t *testing.T) {
	cam := New(1280, 720, 1440)
	cam.ScrollTo(720)

	cam.Resize(1280, 1000)
	if cam.ScrollY != 440 {
		t.Errorf("expected scroll pulled back to 440, got %f", cam.ScrollY)
	}

	cam.Resize(1280, 2000)
	if cam.ScrollY != 0 || cam.MaxScroll() != 0 {
		t.Errorf("expected no scroll when viewport exceeds scene, got %f", cam.ScrollY)
	}
}
