package export

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"seehuhn.de/go/badge"
	"seehuhn.de/go/badge/pattern"
	"seehuhn.de/go/badge/progress"
)

func testScene(t *testing.T, checkAll bool) *badge.Scene {
	t.Helper()
	return newScene(t, pattern.NewSource(1), checkAll)
}

func newScene(t *testing.T, src pattern.Source, checkAll bool) *badge.Scene {
	t.Helper()
	ctx := context.Background()

	b, err := badge.New(badge.DefaultConfig(), progress.NewMemStore(),
		badge.WithSource(src))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := b.Render(ctx); err != nil {
		t.Fatal(err)
	}
	if checkAll {
		for c := range 5 {
			for i := range 3 {
				if _, err := b.Toggle(ctx, progress.Key{Item: i, Category: c}, true); err != nil {
					t.Fatal(err)
				}
			}
		}
	} else {
		if _, err := b.Toggle(ctx, progress.Key{Item: 0, Category: 1}, true); err != nil {
			t.Fatal(err)
		}
	}
	return b.Scene()
}

func TestWriteSVG(t *testing.T) {
	sc := testScene(t, false)
	buf := &bytes.Buffer{}
	if err := WriteSVG(buf, sc); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, "<svg ") {
		t.Fatalf("output does not start with an svg element: %.40q", out)
	}
	if got := strings.Count(out, `<g id="slice-`); got != 15 {
		t.Errorf("got %d slice groups, want 15", got)
	}
	if got := strings.Count(out, "<clipPath "); got != 15 {
		t.Errorf("got %d clip paths, want 15", got)
	}
	if !strings.Contains(out, `transform="rotate(-108 300 300)"`) {
		t.Error("missing rotation of the focused category")
	}
	if strings.Contains(out, "spinning") {
		t.Error("incomplete badge marked as spinning")
	}
	// slice 3 is the checked item 0 of category 1
	if !strings.Contains(out, `fill="#005234"`) {
		t.Error("checked slice not painted in its palette colour")
	}
}

func TestWriteSVGSpinning(t *testing.T) {
	sc := testScene(t, true)
	buf := &bytes.Buffer{}
	if err := WriteSVG(buf, sc); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `class="spinning"`) {
		t.Error("complete badge is not spinning")
	}
}

func TestRasterise(t *testing.T) {
	// zero samples make every cell visible
	sc := newScene(t, &pattern.Sequence{Values: []float64{0}}, true)

	img, err := Rasterise(sc, 1)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 600 || b.Dy() != 600 {
		t.Fatalf("got image size %v", b)
	}
	// corners lie outside the badge
	if c := img.RGBAAt(0, 0); c.R != 255 || c.G != 255 || c.B != 255 {
		t.Errorf("corner pixel %v, want white", c)
	}

	painted := 0
	for x := 100; x < 500; x += 10 {
		if c := img.RGBAAt(x, 300); c.R != 255 || c.G != 255 || c.B != 255 {
			painted++
		}
	}
	if painted < 35 {
		t.Errorf("only %d of 40 samples painted", painted)
	}

	half, err := Rasterise(sc, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if b := half.Bounds(); b.Dx() != 300 {
		t.Errorf("scaled image has width %d", b.Dx())
	}

	if _, err := Rasterise(sc, 0); err == nil {
		t.Error("zero scale accepted")
	}
}

func TestWritePNG(t *testing.T) {
	sc := testScene(t, false)
	buf := &bytes.Buffer{}
	if err := WritePNG(buf, sc, 1); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG\r\n\x1a\n")) {
		t.Error("missing PNG signature")
	}
}

func TestWritePDF(t *testing.T) {
	sc := testScene(t, false)
	fname := filepath.Join(t.TempDir(), "badge.pdf")
	if err := WritePDF(fname, sc); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("not a PDF file: %.10q", data)
	}
}
