package colour

// ShadcnColours are the shadcn/ui CSS variables for one mode.
type ShadcnColours struct {
	Background            Colour `json:"background"`
	Foreground            Colour `json:"foreground"`
	Card                  Colour `json:"card"`
	CardForeground        Colour `json:"cardForeground"`
	Popover               Colour `json:"popover"`
	PopoverForeground     Colour `json:"popoverForeground"`
	Primary               Colour `json:"primary"`
	PrimaryForeground     Colour `json:"primaryForeground"`
	Secondary             Colour `json:"secondary"`
	SecondaryForeground   Colour `json:"secondaryForeground"`
	Muted                 Colour `json:"muted"`
	MutedForeground       Colour `json:"mutedForeground"`
	Accent                Colour `json:"accent"`
	AccentForeground      Colour `json:"accentForeground"`
	Destructive           Colour `json:"destructive"`
	DestructiveForeground Colour `json:"destructiveForeground"`
	Border                Colour `json:"border"`
	Input                 Colour `json:"input"`
	Ring                  Colour `json:"ring"`

	Charts [5]Colour `json:"charts"`

	Sidebar                  Colour `json:"sidebar"`
	SidebarForeground        Colour `json:"sidebarForeground"`
	SidebarPrimary           Colour `json:"sidebarPrimary"`
	SidebarPrimaryForeground Colour `json:"sidebarPrimaryForeground"`
	SidebarAccent            Colour `json:"sidebarAccent"`
	SidebarAccentForeground  Colour `json:"sidebarAccentForeground"`
	SidebarBorder            Colour `json:"sidebarBorder"`
	SidebarRing              Colour `json:"sidebarRing"`
}

// ShadcnPair holds the light and dark shadcn variables.
type ShadcnPair struct {
	Light ShadcnColours `json:"light"`
	Dark  ShadcnColours `json:"dark"`
}

// Variables returns the shadcn variable names (without the leading "--") and
// their colours in stylesheet order.
func (s ShadcnColours) Variables() []NamedColour {
	return []NamedColour{
		{"background", s.Background},
		{"foreground", s.Foreground},
		{"card", s.Card},
		{"card-foreground", s.CardForeground},
		{"popover", s.Popover},
		{"popover-foreground", s.PopoverForeground},
		{"primary", s.Primary},
		{"primary-foreground", s.PrimaryForeground},
		{"secondary", s.Secondary},
		{"secondary-foreground", s.SecondaryForeground},
		{"muted", s.Muted},
		{"muted-foreground", s.MutedForeground},
		{"accent", s.Accent},
		{"accent-foreground", s.AccentForeground},
		{"destructive", s.Destructive},
		{"destructive-foreground", s.DestructiveForeground},
		{"border", s.Border},
		{"input", s.Input},
		{"ring", s.Ring},
		{"chart-1", s.Charts[0]},
		{"chart-2", s.Charts[1]},
		{"chart-3", s.Charts[2]},
		{"chart-4", s.Charts[3]},
		{"chart-5", s.Charts[4]},
		{"sidebar", s.Sidebar},
		{"sidebar-foreground", s.SidebarForeground},
		{"sidebar-primary", s.SidebarPrimary},
		{"sidebar-primary-foreground", s.SidebarPrimaryForeground},
		{"sidebar-accent", s.SidebarAccent},
		{"sidebar-accent-foreground", s.SidebarAccentForeground},
		{"sidebar-border", s.SidebarBorder},
		{"sidebar-ring", s.SidebarRing},
	}
}

// NamedColour pairs a token name with its colour.
type NamedColour struct {
	Name   string
	Colour Colour
}

// chartFallbackRotation is the hue rotation used for chart slots the harmony
// does not fill.
var chartFallbackRotation = [5]float64{0, 60, 120, 180, 240}

// ShadcnFromSemantic relabels semantic tokens as shadcn variables. Chart
// colours come from the harmony; missing slots use the primary rotated by a
// fixed step, and dark mode lifts every chart colour by 5 lightness.
func ShadcnFromSemantic(sem SemanticColours, harmony []Colour) ShadcnColours {
	s := ShadcnColours{
		Background:            sem.Surface,
		Foreground:            sem.SurfaceForeground,
		Card:                  sem.SurfaceContainer,
		CardForeground:        sem.SurfaceContainerForeground,
		Popover:               sem.SurfaceContainerHigh,
		PopoverForeground:     sem.SurfaceContainerForeground,
		Primary:               sem.Primary,
		PrimaryForeground:     sem.PrimaryForeground,
		Secondary:             sem.Secondary,
		SecondaryForeground:   sem.SecondaryForeground,
		Muted:                 sem.Muted,
		MutedForeground:       sem.MutedForeground,
		Accent:                sem.AccentContainer,
		AccentForeground:      sem.AccentContainerForeground,
		Destructive:           sem.Error,
		DestructiveForeground: sem.ErrorForeground,
		Border:                sem.OutlineVariant,
		Input:                 sem.OutlineVariant,
		Ring:                  sem.Outline,

		Sidebar:                  sem.SurfaceContainerLow,
		SidebarForeground:        sem.SurfaceForeground,
		SidebarPrimary:           sem.Primary,
		SidebarPrimaryForeground: sem.PrimaryForeground,
		SidebarAccent:            sem.AccentContainer,
		SidebarAccentForeground:  sem.AccentContainerForeground,
		SidebarBorder:            sem.OutlineVariant,
		SidebarRing:              sem.Outline,
	}

	var primary Colour
	if len(harmony) > 0 {
		primary = harmony[0]
	} else {
		primary = sem.Primary
	}
	for i := range s.Charts {
		c := primary.Rotate(chartFallbackRotation[i])
		if i < len(harmony) {
			c = harmony[i]
		}
		if sem.Mode == ModeDark {
			c = c.Lighten(5)
		}
		s.Charts[i] = c
	}
	return s
}

// GenerateShadcn builds both shadcn modes from a palette and its semantic tokens.
func GenerateShadcn(p *FullPalette, sem SemanticPair) ShadcnPair {
	harmony := p.Harmony.Colours
	return ShadcnPair{
		Light: ShadcnFromSemantic(sem.Light, harmony),
		Dark:  ShadcnFromSemantic(sem.Dark, harmony),
	}
}
