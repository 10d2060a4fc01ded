package colour

import (
	"testing"
)

func TestRamps(t *testing.T) {
	base := NewHSL(200, 50, 60)

	tests := []struct {
		name   string
		got    []Colour
		field  func(HSL) float64
		want   []float64
		others func(HSL) bool
	}{
		{
			name:   "tints",
			got:    Tints(base, 5),
			field:  func(h HSL) float64 { return h.L },
			want:   []float64{70, 80, 90, 100, 100},
			others: func(h HSL) bool { return h.H == 200 && h.S == 50 && h.A == 1 },
		},
		{
			name:   "shades",
			got:    Shades(base, 5),
			field:  func(h HSL) float64 { return h.L },
			want:   []float64{50, 40, 30, 20, 10},
			others: func(h HSL) bool { return h.H == 200 && h.S == 50 && h.A == 1 },
		},
		{
			name:   "tones",
			got:    Tones(base, 4),
			field:  func(h HSL) float64 { return h.S },
			want:   []float64{30, 10, 0, 0},
			others: func(h HSL) bool { return h.H == 200 && h.L == 60 && h.A == 1 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if len(tt.got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(tt.got), len(tt.want))
			}
			for i, c := range tt.got {
				hsl := c.HSL()
				if got := tt.field(hsl); got != tt.want[i] {
					t.Errorf("[%d] = %v, want %v", i, got, tt.want[i])
				}
				if !tt.others(hsl) {
					t.Errorf("[%d] = %v changed a fixed component", i, hsl)
				}
			}
		})
	}
}

func TestRampMonotonic(t *testing.T) {
	samples := []Colour{
		NewHSL(0, 100, 50), NewHSL(120, 20, 5), NewHSL(240, 60, 95),
		MustParse("#6439ff"), NewHSL(45, 0, 50),
	}

	for _, c := range samples {
		v := GenerateVariations(c)
		for i := 1; i < len(v.Tints); i++ {
			prev, cur := v.Tints[i-1].HSL().L, v.Tints[i].HSL().L
			if cur < prev || (cur == prev && cur != 100) {
				t.Errorf("%s tints not increasing at %d: %v -> %v", c, i, prev, cur)
			}
		}
		for i := 1; i < len(v.Shades); i++ {
			prev, cur := v.Shades[i-1].HSL().L, v.Shades[i].HSL().L
			if cur > prev || (cur == prev && cur != 0) {
				t.Errorf("%s shades not decreasing at %d: %v -> %v", c, i, prev, cur)
			}
		}
		for i := 1; i < len(v.Tones); i++ {
			prev, cur := v.Tones[i-1].HSL().S, v.Tones[i].HSL().S
			if cur > prev || (cur == prev && cur != 0) {
				t.Errorf("%s tones not decreasing at %d: %v -> %v", c, i, prev, cur)
			}
		}
	}
}

func TestGenerateVariationsWithOptions(t *testing.T) {
	v := GenerateVariationsWithOptions(NewHSL(10, 50, 50), RampOptions{TintSteps: 2, ShadeSteps: 0, ToneSteps: 1})
	if len(v.Tints) != 2 || len(v.Shades) != 0 || len(v.Tones) != 1 {
		t.Errorf("got %d/%d/%d steps, want 2/0/1", len(v.Tints), len(v.Shades), len(v.Tones))
	}

	d := GenerateVariations(NewHSL(10, 50, 50))
	if len(d.Tints) != 5 || len(d.Shades) != 5 || len(d.Tones) != 4 {
		t.Errorf("default steps %d/%d/%d, want 5/5/4", len(d.Tints), len(d.Shades), len(d.Tones))
	}
}

func TestScaleSteps(t *testing.T) {
	v := GenerateVariations(NewHSL(200, 50, 50))
	steps := v.ScaleSteps()

	wantScale := TailwindScale()
	if len(steps) != len(wantScale) {
		t.Fatalf("len(ScaleSteps()) = %d, want %d", len(steps), len(wantScale))
	}
	for i, s := range steps {
		if s.Scale != wantScale[i] {
			t.Errorf("steps[%d].Scale = %d, want %d", i, s.Scale, wantScale[i])
		}
	}

	checks := map[int]Colour{
		50:  v.Tints[4],
		400: v.Tints[0],
		500: v.Base,
		600: v.Shades[0],
		950: v.Shades[4],
	}
	for _, s := range steps {
		if want, ok := checks[s.Scale]; ok && s.Colour.HSL() != want.HSL() {
			t.Errorf("scale %d = %v, want %v", s.Scale, s.Colour, want)
		}
	}

	short := GenerateVariationsWithOptions(NewHSL(0, 50, 50), RampOptions{TintSteps: 2, ShadeSteps: 1})
	if got := len(short.ScaleSteps()); got != 4 {
		t.Errorf("short ramp ScaleSteps() = %d entries, want 4", got)
	}
}
