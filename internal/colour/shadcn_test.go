package colour

import (
	"testing"
)

func TestShadcnFromSemantic(t *testing.T) {
	p := mustPalette(t, MustParse("#6439ff"), HarmonyComplementary)
	sem := GenerateSemanticColours(p)
	s := ShadcnFromSemantic(sem.Light, p.Harmony.Colours)

	tests := []struct {
		name string
		got  Colour
		want Colour
	}{
		{"background", s.Background, sem.Light.Surface},
		{"foreground", s.Foreground, sem.Light.SurfaceForeground},
		{"card", s.Card, sem.Light.SurfaceContainer},
		{"popover", s.Popover, sem.Light.SurfaceContainerHigh},
		{"primary", s.Primary, sem.Light.Primary},
		{"destructive", s.Destructive, sem.Light.Error},
		{"destructive foreground", s.DestructiveForeground, sem.Light.ErrorForeground},
		{"border", s.Border, sem.Light.OutlineVariant},
		{"input", s.Input, sem.Light.OutlineVariant},
		{"ring", s.Ring, sem.Light.Outline},
		{"sidebar", s.Sidebar, sem.Light.SurfaceContainerLow},
		{"chart 1", s.Charts[0], p.Harmony.Colours[0]},
		{"chart 2", s.Charts[1], p.Harmony.Colours[1]},
		{"chart 3 fallback", s.Charts[2], p.Harmony.Colours[0].Rotate(120)},
		{"chart 5 fallback", s.Charts[4], p.Harmony.Colours[0].Rotate(240)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.Equal(tt.want, 1e-9) {
				t.Errorf("%s = %v, want %v", tt.name, tt.got.HSL(), tt.want.HSL())
			}
		})
	}
}

func TestShadcnDarkCharts(t *testing.T) {
	p := mustPalette(t, NewHSL(30, 70, 50), HarmonySquare)
	pair := GenerateShadcn(p, GenerateSemanticColours(p))

	for i := 0; i < 4; i++ {
		if want := p.Harmony.Colours[i].Lighten(5); !pair.Dark.Charts[i].Equal(want, 1e-9) {
			t.Errorf("Dark.Charts[%d] = %v, want %v", i, pair.Dark.Charts[i].HSL(), want.HSL())
		}
		if want := p.Harmony.Colours[i]; !pair.Light.Charts[i].Equal(want, 1e-9) {
			t.Errorf("Light.Charts[%d] = %v, want %v", i, pair.Light.Charts[i].HSL(), want.HSL())
		}
	}
	if want := p.Harmony.Colours[0].Rotate(240).Lighten(5); !pair.Dark.Charts[4].Equal(want, 1e-9) {
		t.Errorf("Dark.Charts[4] = %v, want %v", pair.Dark.Charts[4].HSL(), want.HSL())
	}
}

func TestShadcnVariables(t *testing.T) {
	p := mustPalette(t, MustParse("#6439ff"), HarmonyTriadic)
	vars := GenerateShadcn(p, GenerateSemanticColours(p)).Light.Variables()

	if len(vars) != 32 {
		t.Fatalf("len(Variables()) = %d, want 32", len(vars))
	}
	names := make(map[string]bool, len(vars))
	for _, v := range vars {
		names[v.Name] = true
	}
	for _, want := range []string{"background", "card-foreground", "destructive", "chart-5", "sidebar-ring"} {
		if !names[want] {
			t.Errorf("Variables() missing %s", want)
		}
	}
}
