package xpath

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

func TestSVG(t *testing.T) {
	els := []PathElement{
		MoveTo(Pt(1, 2)),
		LineTo(Pt(3, -4)),
		QuadTo(Pt(5, 6), Pt(7, 8)),
		CubicTo(Pt(9, 10), Pt(11.5, 12), Pt(13, 14)),
		ClosePath(),
	}
	diff(t, "M1,2 L3,-4 Q5,6 7,8 C9,10 11.5,12 13,14 Z", SVG(slices.Values(els), SVGOptions{}))
	diff(t, "M1,2 L3,-4 Q5,6 7,8 C9,10 11.5,12 13,14 Z", SVG(slices.Values(els), SVGOptions{MaxPrecision: 2}))
	diff(t, "", SVG(slices.Values([]PathElement(nil)), SVGOptions{}))
}

type failingWriter struct{ n int }

func (w *failingWriter) Write(b []byte) (int, error) {
	if w.n == 0 {
		return 0, errors.New("write failed")
	}
	w.n--
	return len(b), nil
}

func TestWriteSVGError(t *testing.T) {
	var p XPath
	p.MoveTo(0, 0).LineTo(1, 1).LineTo(2, 0)
	if err := p.WriteSVG(&failingWriter{n: 1}, SVGOptions{}); err == nil {
		t.Error("expected an error")
	}

	sb := &strings.Builder{}
	if err := p.WriteSVG(sb, SVGOptions{}); err != nil {
		t.Fatal(err)
	}
	diff(t, "M0,0 L1,1 L2,0", sb.String())
}

func TestPathElementEndPoint(t *testing.T) {
	for _, tc := range []struct {
		el   PathElement
		want Point
		ok   bool
	}{
		{MoveTo(Pt(1, 2)), Pt(1, 2), true},
		{LineTo(Pt(3, 4)), Pt(3, 4), true},
		{QuadTo(Pt(0, 0), Pt(5, 6)), Pt(5, 6), true},
		{CubicTo(Pt(0, 0), Pt(0, 0), Pt(7, 8)), Pt(7, 8), true},
		{ClosePath(), Point{}, false},
	} {
		pt, ok := tc.el.EndPoint()
		if ok != tc.ok {
			t.Errorf("%v: got ok = %t, want %t", tc.el, ok, tc.ok)
		}
		diff(t, tc.want, pt, pointComparer)
	}
}

func TestPathElementString(t *testing.T) {
	diff(t, "LineTo((1, 2), (0, 0), (0, 0))", LineTo(Pt(1, 2)).String())
	diff(t, "InvalidPathElement((0, 0), (0, 0), (0, 0))", PathElement{}.String())
}

func TestSVGOptionsFormat(t *testing.T) {
	for _, tt := range []struct {
		prec int
		n    float64
		want string
	}{
		{0, 100, "100"},
		{0, 0.1, "0.1"},
		{3, 1, "1"},
		{3, 100, "100"},
		{3, 0.1234, "0.123"},
		{2, -0.5, "-0.5"},
	} {
		if got := (SVGOptions{MaxPrecision: tt.prec}).format(tt.n); got != tt.want {
			t.Errorf("format(%v) with precision %d = %q, want %q", tt.n, tt.prec, got, tt.want)
		}
	}
}
