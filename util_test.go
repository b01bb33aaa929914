package xpath

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func assertNear(t *testing.T, p0 Point, p1 Point, epsilon float64) {
	t.Helper()
	if d := p0.Distance(p1); d > epsilon {
		t.Fatalf("got %s, expected %s", p0, p1)
	}
}

var pointComparer = cmp.Comparer(func(p1, p2 Point) bool {
	return p1.Distance(p2) <= 1e-12
})
