package physics_test

import (
	"fmt"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
)

// Two equal balls approach head-on over five half-second ticks. The
// first two ticks carry no contact (the impact time lies outside the
// tick window), the third resolves an exact-touch contact mid-tick and
// swaps the velocities, and the last two ticks separate. Every number
// in the scenario is exactly representable, so the trace is expected to
// match to the digit.
func TestHeadOnSimulationTrace(t *testing.T) {
	a := newBall(0, 0, 5, 8, 0)
	b := newBall(30, 0, 5, -8, 0)
	world := newTestWorld(a, b)

	output := ""
	for i := 0; i < 5; i++ {
		world.Update(0.5)
		output += fmt.Sprintf("%v(a): %4.3f %4.3f | %4.3f %4.3f\n",
			i, a.Position().X(), a.Position().Y(), a.Velocity().X(), a.Velocity().Y())
		output += fmt.Sprintf("%v(b): %4.3f %4.3f | %4.3f %4.3f\n",
			i, b.Position().X(), b.Position().Y(), b.Velocity().X(), b.Velocity().Y())
	}

	expected := `0(a): 4.000 0.000 | 8.000 0.000
0(b): 26.000 0.000 | -8.000 0.000
1(a): 8.000 0.000 | 8.000 0.000
1(b): 22.000 0.000 | -8.000 0.000
2(a): 8.000 0.000 | -8.000 0.000
2(b): 22.000 0.000 | 8.000 0.000
3(a): 4.000 0.000 | -8.000 0.000
3(b): 26.000 0.000 | 8.000 0.000
4(a): 0.000 0.000 | -8.000 0.000
4(b): 30.000 0.000 | 8.000 0.000
`

	if output != expected {
		diff := difflib.UnifiedDiff{
			A:        difflib.SplitLines(expected),
			B:        difflib.SplitLines(output),
			FromFile: "Expected",
			ToFile:   "Current",
			Context:  0,
		}
		text, _ := difflib.GetUnifiedDiffString(diff)
		t.Fatalf("simulation trace diverged from reference:\n%s", text)
	}
}
