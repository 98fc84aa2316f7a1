package transit

import (
	"math"
	"testing"

	"github.com/tanema/gween"
)

const epsilonTest = 1e-9

func near(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

// --- Boundaries ---

func TestEaseBoundariesExact(t *testing.T) {
	for _, d := range []float64{1, 0.5, 0.3, 2.75, 1.0 / 60} {
		for _, k := range EasingKinds() {
			if got := Ease(k, 0, d); got != 0 {
				t.Errorf("Ease(%s, 0, %v) = %v, want 0", k, d, got)
			}
			if got := Ease(k, d, d); got != 1 {
				t.Errorf("Ease(%s, %v, %v) = %v, want 1", k, d, d, got)
			}
		}
	}
}

func TestEaseClampsOutsideDuration(t *testing.T) {
	for _, k := range EasingKinds() {
		if got := Ease(k, -0.5, 1); got != 0 {
			t.Errorf("Ease(%s, -0.5, 1) = %v, want 0", k, got)
		}
		if got := Ease(k, 3, 1); got != 1 {
			t.Errorf("Ease(%s, 3, 1) = %v, want 1", k, got)
		}
	}
}

func TestEaseInvalidInputs(t *testing.T) {
	if got := Ease(numEasingKinds, 0.5, 1); got != 0 {
		t.Errorf("unknown kind = %v, want 0", got)
	}
	if got := Ease(Linear, 0.5, 0); got != 0 {
		t.Errorf("zero duration = %v, want 0", got)
	}
	if got := Ease(Linear, 0.5, -1); got != 0 {
		t.Errorf("negative duration = %v, want 0", got)
	}
}

// --- Scenarios ---

func TestEaseScenarios(t *testing.T) {
	tests := []struct {
		kind EasingKind
		t, d float64
		want float64
	}{
		{Linear, 0.5, 1, 0.5},
		{EaseOutBounce, 1, 1, 1},
		{EaseInQuad, 0.5, 1, 0.25},
		{EaseOutQuad, 0.5, 1, 0.75},
		{EaseInCubic, 0.5, 1, 0.125},
		{EaseOutCubic, 0.5, 1, 0.875},
		{EaseInOutQuad, 0.5, 1, 0.5},
		{EaseInOutCubic, 0.5, 1, 0.5},
		{EaseInOutSine, 0.5, 1, 0.5},
		{EaseInOutExpo, 0.5, 1, 0.5},
		{EaseInOutBounce, 0.5, 1, 0.5},
		{EaseInExpo, 0.5, 1, math.Pow(2, -5)},
		{EaseOutExpo, 0.5, 1, 1 - math.Pow(2, -5)},
		{EaseInSine, 1, 2, 1 - math.Cos(math.Pi/4)},
		{EaseOutSine, 1, 2, math.Sin(math.Pi / 4)},
	}
	for _, tt := range tests {
		if got := Ease(tt.kind, tt.t, tt.d); !near(got, tt.want, epsilonTest) {
			t.Errorf("Ease(%s, %v, %v) = %v, want %v", tt.kind, tt.t, tt.d, got, tt.want)
		}
	}
}

func TestInOutBounceMidpointExact(t *testing.T) {
	for _, d := range []float64{1, 0.4, 3} {
		if got := InOutBounce(d/2, d); got != 0.5 {
			t.Errorf("InOutBounce(%v, %v) = %v, want exactly 0.5", d/2, d, got)
		}
	}
}

func TestInBounceMirrorsOutBounce(t *testing.T) {
	const d = 1.3
	for i := 0; i <= 100; i++ {
		tm := d * float64(i) / 100
		want := 1 - OutBounce(d-tm, d)
		if got := InBounce(tm, d); got != want {
			t.Errorf("InBounce(%v) = %v, want %v", tm, got, want)
		}
	}
}

func TestExpoEndpointsExact(t *testing.T) {
	if got := InExpo(0, 1); got != 0 {
		t.Errorf("InExpo(0, 1) = %v, want 0", got)
	}
	if got := OutExpo(1, 1); got != 1 {
		t.Errorf("OutExpo(1, 1) = %v, want 1", got)
	}
	if got := InOutExpo(0, 1); got != 0 {
		t.Errorf("InOutExpo(0, 1) = %v, want 0", got)
	}
	if got := InOutExpo(1, 1); got != 1 {
		t.Errorf("InOutExpo(1, 1) = %v, want 1", got)
	}
}

// --- Shape ---

func TestEaseMonotonic(t *testing.T) {
	const steps = 500
	for _, k := range EasingKinds() {
		if k.Bounces() {
			continue
		}
		prev := Ease(k, 0, 1)
		for i := 1; i <= steps; i++ {
			v := Ease(k, float64(i)/steps, 1)
			if v < prev-epsilonTest {
				t.Errorf("%s decreases at t=%v: %v < %v", k, float64(i)/steps, v, prev)
				break
			}
			prev = v
		}
	}
}

func TestEaseStaysInRange(t *testing.T) {
	const steps = 1000
	for _, k := range EasingKinds() {
		for i := 0; i <= steps; i++ {
			v := Ease(k, float64(i)/steps, 1)
			if v < -0.1 || v > 1.1 || math.IsNaN(v) {
				t.Errorf("%s at t=%v = %v, outside [-0.1, 1.1]", k, float64(i)/steps, v)
				break
			}
		}
	}
}

func TestBounceKinds(t *testing.T) {
	for _, k := range EasingKinds() {
		want := k == EaseInBounce || k == EaseOutBounce || k == EaseInOutBounce
		if k.Bounces() != want {
			t.Errorf("%s.Bounces() = %v, want %v", k, k.Bounces(), want)
		}
	}
}

// --- Names ---

func TestEasingKindsCount(t *testing.T) {
	if got := len(EasingKinds()); got != 16 {
		t.Errorf("len(EasingKinds()) = %d, want 16", got)
	}
}

func TestParseEasingKind(t *testing.T) {
	tests := []struct {
		in   string
		want EasingKind
	}{
		{"Linear", Linear},
		{"linear", Linear},
		{"EaseInQuad", EaseInQuad},
		{"InQuad", EaseInQuad},
		{"outbounce", EaseOutBounce},
		{" EaseInOutSine ", EaseInOutSine},
	}
	for _, tt := range tests {
		got, err := ParseEasingKind(tt.in)
		if err != nil {
			t.Errorf("ParseEasingKind(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseEasingKind(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
	if _, err := ParseEasingKind("OutElastic"); err == nil {
		t.Error("expected error for unknown curve")
	}
}

func TestEasingKindText(t *testing.T) {
	for _, k := range EasingKinds() {
		b, err := k.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%d): %v", k, err)
		}
		var back EasingKind
		if err := back.UnmarshalText(b); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", b, err)
		}
		if back != k {
			t.Errorf("text of %s parsed back as %s", k, back)
		}
	}
	if _, err := numEasingKinds.MarshalText(); err == nil {
		t.Error("expected error marshaling an invalid kind")
	}
	if got := EasingKind(200).String(); got != "EasingKind(200)" {
		t.Errorf("String() = %q", got)
	}
}

// --- gween adapter ---

func TestTweenFuncDrivesGween(t *testing.T) {
	tw := gween.New(10, 20, 1, EaseInQuad.TweenFunc())
	val, finished := tw.Update(0.5)
	if finished {
		t.Error("finished at half time")
	}
	if !near(float64(val), 12.5, 1e-4) {
		t.Errorf("value at half time = %v, want 12.5", val)
	}
	val, finished = tw.Update(0.5)
	if !finished {
		t.Error("not finished at full time")
	}
	if val != 20 {
		t.Errorf("final value = %v, want 20", val)
	}
}
