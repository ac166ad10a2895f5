package fun_test

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/npillmayer/fun"
)

func TestComposition(t *testing.T) {
	g := func(n int) float32 {
		return float32(n) + 0.5
	}
	f := func(x float32) string {
		return fmt.Sprintf("%.3f", x)
	}
	// h := Compose[int, float32, string](f, g) // works, but type-inference helps
	h := fun.Compose(g, f)
	h7 := h(7)
	if h7 != "7.500" {
		t.Logf("composition h(7) = %q", h(7))
		t.Error("expected h(7) to return string 7.500")
	}
}

func TestPipe(t *testing.T) {
	p := fun.Pipe(strconv.Itoa, strings.ToUpper, func(s string) int {
		return len(s)
	})
	if p(4711) != 4 {
		t.Logf("pipe(4711) = %v", p(4711))
		t.Error("expected pipe(4711) to be 4")
	}
}

func TestConst(t *testing.T) {
	seven := fun.Const(7)
	if seven() != 7 {
		t.Logf("const = %v", seven())
		t.Error("expected const to be integer 7")
	}
}

func TestUnit(t *testing.T) {
	nothing := fun.Unit(7)
	if nothing != 0 {
		t.Logf("Unit(7) = %v", nothing)
		t.Error("expected Unit(7) to be nothing = 0")
	}
}

func TestCurry(t *testing.T) {
	add := func(a, b int) int { return a + b }
	inc := fun.Curry(add)(1)
	if inc(7) != 8 {
		t.Logf("inc(7) = %d", inc(7))
		t.Error("expected curried inc(7) to be 8")
	}
	add2 := fun.Uncurry(fun.Curry(add))
	if add2(3, 4) != 7 {
		t.Error("expected uncurried add(3, 4) to be 7")
	}
}

func TestFlipPartial(t *testing.T) {
	div := func(a, b float64) float64 { return a / b }
	vid := fun.Flip(div)
	if vid(2, 8) != 4 {
		t.Logf("flip(div)(2, 8) = %v", vid(2, 8))
		t.Error("expected flip(div)(2, 8) to be 4")
	}
	half := fun.Partial(fun.Flip(div), 2)
	if half(9) != 4.5 {
		t.Error("expected half(9) to be 4.5")
	}
}
