package colour

import (
	"math"
	"testing"
)

func mustPalette(t *testing.T, primary Colour, h Harmony) *FullPalette {
	t.Helper()
	p, err := GenerateFullPalette(primary, h)
	if err != nil {
		t.Fatalf("GenerateFullPalette() error = %v", err)
	}
	return p
}

func TestSelectAccent(t *testing.T) {
	tests := []struct {
		name    string
		harmony Harmony
		want    int
	}{
		{"square picks opposite", HarmonySquare, 2},
		{"complementary", HarmonyComplementary, 1},
		// Colours sit at -30, 0 and +30 around the primary.
		{"analogous", HarmonyAnalogous, 2},
		{"triadic tie keeps first", HarmonyTriadic, 1},
		{"rectangle", HarmonyRectangle, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := mustPalette(t, NewHSL(40, 70, 50), tt.harmony)
			if got := SelectAccent(p); got != tt.want {
				t.Errorf("SelectAccent() = %d, want %d", got, tt.want)
			}
		})
	}

	single := GenerateFullPaletteFromHarmony(GenerateCustomHarmony(NewHSL(0, 50, 50), 1, func(int) float64 { return 0 }), 7)
	if got := SelectAccent(single); got != 0 {
		t.Errorf("SelectAccent(single) = %d, want 0", got)
	}
}

func TestSemanticAccentSquare(t *testing.T) {
	p := mustPalette(t, NewHSL(40, 70, 50), HarmonySquare)
	sem := GenerateSemanticColours(p)

	if got, want := sem.Light.Accent.HSL(), p.Palettes[2].Base.HSL(); got != want {
		t.Errorf("Light.Accent = %v, want %v", got, want)
	}
	if got, want := sem.Dark.Accent.HSL(), p.Palettes[2].Base.Lighten(10).HSL(); got != want {
		t.Errorf("Dark.Accent = %v, want %v", got, want)
	}
}

func TestSemanticLight(t *testing.T) {
	primary := NewHSL(200, 80, 40)
	p := mustPalette(t, primary, HarmonyTriadic)
	s := GenerateSemanticColoursForMode(p, ModeLight, SemanticOptions{})
	pv := p.Palettes[0]

	tests := []struct {
		name string
		got  Colour
		want Colour
	}{
		{"surface", s.Surface, pv.Tints[4]},
		{"surface dim", s.SurfaceDim, pv.Tints[3]},
		{"surface bright", s.SurfaceBright, NewHSL(200, 10, 99)},
		{"surface container", s.SurfaceContainer, pv.Tints[4].Desaturate(15)},
		{"surface container high", s.SurfaceContainerHigh, pv.Tints[3].Desaturate(10)},
		{"surface container low", s.SurfaceContainerLow, pv.Tints[4].Desaturate(25)},
		{"primary", s.Primary, pv.Base},
		{"secondary", s.Secondary, p.Palettes[1].Base},
		{"tertiary", s.Tertiary, p.Palettes[2].Base},
		{"primary container", s.PrimaryContainer, pv.Tints[2].Desaturate(10)},
		{"secondary container", s.SecondaryContainer, p.Palettes[1].Tints[2].Desaturate(10)},
		{"muted", s.Muted, pv.Tones[1]},
		{"muted container", s.MutedContainer, pv.Tones[2]},
		{"error", s.Error, NewHSL(0, 85, 45)},
		{"error container", s.ErrorContainer, NewHSL(0, 45, 85)},
		{"outline", s.Outline, NewHSL(200, 10, 55)},
		{"outline variant", s.OutlineVariant, NewHSL(200, 8, 80)},
		{"inverse surface", s.InverseSurface, pv.Shades[3]},
		{"inverse primary", s.InversePrimary, pv.Tints[1]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.Equal(tt.want, 1e-9) {
				t.Errorf("%s = %v, want %v", tt.name, tt.got.HSL(), tt.want.HSL())
			}
		})
	}

	if s.Mode != ModeLight {
		t.Errorf("Mode = %s, want light", s.Mode)
	}
	if s.Surface.HSL().L < 45 {
		t.Errorf("light surface lightness %v below 45", s.Surface.HSL().L)
	}
}

func TestSemanticDark(t *testing.T) {
	primary := NewHSL(200, 80, 40)
	p := mustPalette(t, primary, HarmonyTriadic)
	s := GenerateSemanticColoursForMode(p, ModeDark, SemanticOptions{})
	pv := p.Palettes[0]

	tests := []struct {
		name string
		got  Colour
		want Colour
	}{
		{"surface", s.Surface, NewHSL(200, 20, 10)},
		{"surface dim", s.SurfaceDim, NewHSL(200, 15, 6)},
		{"surface bright", s.SurfaceBright, NewHSL(200, 20, 22)},
		{"surface container", s.SurfaceContainer, NewHSL(200, 15, 14)},
		{"surface container high", s.SurfaceContainerHigh, NewHSL(200, 15, 18)},
		{"surface container low", s.SurfaceContainerLow, NewHSL(200, 10, 8)},
		{"primary", s.Primary, pv.Base.Lighten(10)},
		{"secondary", s.Secondary, p.Palettes[1].Base.Lighten(10)},
		{"tertiary", s.Tertiary, p.Palettes[2].Base.Lighten(10)},
		{"primary container", s.PrimaryContainer, pv.Shades[3].Desaturate(30)},
		{"muted", s.Muted, NewHSL(200, 15, 22)},
		{"muted container", s.MutedContainer, NewHSL(200, 12, 18)},
		{"error", s.Error, NewHSL(0, 95, 55)},
		{"error container", s.ErrorContainer, NewHSL(0, 65, 30)},
		{"outline", s.Outline, NewHSL(200, 10, 45)},
		{"outline variant", s.OutlineVariant, NewHSL(200, 8, 30)},
		{"inverse surface", s.InverseSurface, pv.Tints[3]},
		{"inverse primary", s.InversePrimary, pv.Shades[1]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.Equal(tt.want, 1e-9) {
				t.Errorf("%s = %v, want %v", tt.name, tt.got.HSL(), tt.want.HSL())
			}
		})
	}

	for _, c := range []Colour{s.Surface, s.SurfaceDim, s.SurfaceBright, s.SurfaceContainer, s.SurfaceContainerHigh, s.SurfaceContainerLow} {
		if l := c.HSL().L; l < 5 || l > 22 {
			t.Errorf("dark surface lightness %v outside 5..22", l)
		}
	}
}

func TestSemanticTertiaryFallback(t *testing.T) {
	primary := NewHSL(250, 60, 50)
	p := mustPalette(t, primary, HarmonyComplementary)
	sem := GenerateSemanticColours(p)

	rotated := primary.Rotate(120)
	if !sem.Light.Tertiary.Equal(rotated, 1e-9) {
		t.Errorf("Light.Tertiary = %v, want %v", sem.Light.Tertiary.HSL(), rotated.HSL())
	}
	if want := rotated.Lighten(30).Desaturate(10); !sem.Light.TertiaryContainer.Equal(want, 1e-9) {
		t.Errorf("Light.TertiaryContainer = %v, want %v", sem.Light.TertiaryContainer.HSL(), want.HSL())
	}
	if want := rotated.Lighten(10); !sem.Dark.Tertiary.Equal(want, 1e-9) {
		t.Errorf("Dark.Tertiary = %v, want %v", sem.Dark.Tertiary.HSL(), want.HSL())
	}
	if want := rotated.Darken(40).Desaturate(30); !sem.Dark.TertiaryContainer.Equal(want, 1e-9) {
		t.Errorf("Dark.TertiaryContainer = %v, want %v", sem.Dark.TertiaryContainer.HSL(), want.HSL())
	}
}

func TestSemanticSecondaryFallback(t *testing.T) {
	primary := NewHSL(90, 60, 50)
	p := GenerateFullPaletteFromHarmony(GenerateCustomHarmony(primary, 1, func(int) float64 { return 0 }), 7)
	s := GenerateSemanticColoursForMode(p, ModeLight, SemanticOptions{})

	if !s.Secondary.Equal(primary, 1e-9) {
		t.Errorf("Secondary = %v, want primary %v", s.Secondary.HSL(), primary.HSL())
	}
	if !s.Accent.Equal(primary, 1e-9) {
		t.Errorf("Accent = %v, want primary %v", s.Accent.HSL(), primary.HSL())
	}
}

func TestSemanticEmptyPalette(t *testing.T) {
	primary := NewHSL(200, 60, 50)
	p := GenerateFullPaletteFromHarmony(GenerateCustomHarmony(primary, 0, func(int) float64 { return 0 }), 7)
	if len(p.Palettes) != 0 {
		t.Fatalf("len(Palettes) = %d, want 0", len(p.Palettes))
	}

	sem := GenerateSemanticColours(p)
	for _, s := range []SemanticColours{sem.Light, sem.Dark} {
		if !s.Primary.Equal(primary, 1e-9) {
			t.Errorf("%s Primary = %v, want %v", s.Mode, s.Primary.HSL(), primary.HSL())
		}
		if !s.Secondary.Equal(primary, 1e-9) || !s.Accent.Equal(primary, 1e-9) {
			t.Errorf("%s Secondary/Accent = %v/%v, want primary", s.Mode, s.Secondary.HSL(), s.Accent.HSL())
		}
	}
	if len(p.Palettes) != 0 {
		t.Error("GenerateSemanticColours() modified the palette")
	}
}

func TestErrorColour(t *testing.T) {
	tests := []struct {
		primaryHue float64
		wantHue    float64
	}{
		{0, 15},
		{39, 15},
		{40, 0},
		{200, 0},
		{340, 0},
		{341, 15},
		{-10, 15},
	}

	for _, tt := range tests {
		got := ErrorColour(tt.primaryHue).HSL()
		if got.H != tt.wantHue || got.S != 85 || got.L != 45 {
			t.Errorf("ErrorColour(%v) = %v, want hue %v s85 l45", tt.primaryHue, got, tt.wantHue)
		}
	}
}

func TestSemanticForegroundsMeetAAFloor(t *testing.T) {
	for _, hex := range []string{"#6439ff", "#ff0000", "#ffd400", "#00a86b", "#1e1e1e", "#f5f5f5", "#777777"} {
		for _, h := range []Harmony{HarmonyComplementary, HarmonyAnalogous, HarmonySquare, HarmonyAurelian} {
			p := mustPalette(t, MustParse(hex), h)
			sem := GenerateSemanticColours(p)
			for _, s := range []SemanticColours{sem.Light, sem.Dark} {
				for _, pair := range s.ForegroundPairs() {
					if want := AccessibleTextColour(pair.Background); pair.Foreground.Hex() != want.Hex() {
						t.Errorf("%s %s %s %s: foreground %s, want %s", hex, h, s.Mode, pair.Name, pair.Foreground, want)
					}
					if ratio := ContrastRatio(pair.Foreground, pair.Background); ratio < 4.4 {
						t.Errorf("%s %s %s %s: ratio %v below AA floor", hex, h, s.Mode, pair.Name, ratio)
					}
				}
			}
		}
	}
}

func TestSemanticContrastTarget(t *testing.T) {
	p := mustPalette(t, NewHSL(0, 0, 47), HarmonyComplementary)
	s := GenerateSemanticColoursForMode(p, ModeLight, SemanticOptions{ContrastTarget: 3})

	for _, pair := range s.ForegroundPairs() {
		want := FindAccessibleTextColour(pair.Background, 3, DefaultMaxIterations)
		if pair.Foreground.Hex() != want.Hex() {
			t.Errorf("%s: foreground %s, want %s", pair.Name, pair.Foreground, want)
		}
	}
}

func TestSemanticTokens(t *testing.T) {
	p := mustPalette(t, MustParse("#6439ff"), HarmonyAnalogous)
	s := GenerateSemanticColours(p).Light

	tokens := s.Tokens()
	if len(tokens) != 36 {
		t.Errorf("len(Tokens()) = %d, want 36", len(tokens))
	}
	seen := make(map[string]bool)
	for _, tok := range tokens {
		if seen[tok.Name] {
			t.Errorf("duplicate token %s", tok.Name)
		}
		seen[tok.Name] = true
	}
	if tokens[0].Name != "surface" || !tokens[0].Colour.Equal(s.Surface, 0) {
		t.Errorf("first token = %+v, want surface", tokens[0])
	}
}

func TestGenerateBackgrounds(t *testing.T) {
	b := GenerateBackgrounds(NewHSL(200, 80, 50))
	if want := (HSL{200, 20, 96, 1}); !closeHSL(b.Light.HSL(), want, 1e-9) {
		t.Errorf("Light = %v, want %v", b.Light.HSL(), want)
	}
	if want := (HSL{200, 30, 5, 1}); !closeHSL(b.Dark.HSL(), want, 1e-9) {
		t.Errorf("Dark = %v, want %v", b.Dark.HSL(), want)
	}

	low := GenerateBackgrounds(NewHSL(10, 20, 50))
	if got := low.Light.HSL().S; math.Abs(got-6) > 1e-9 {
		t.Errorf("low saturation Light.S = %v, want 6", got)
	}
	if got := low.Dark.HSL().S; math.Abs(got-8) > 1e-9 {
		t.Errorf("low saturation Dark.S = %v, want 8", got)
	}
}
