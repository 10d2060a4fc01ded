package cli

import (
	"strings"
	"testing"
)

func TestNewTable(t *testing.T) {
	table := NewTable([]string{"Name", "Hex", "Ratio"})

	if len(table.headers) != 3 {
		t.Errorf("Expected 3 headers, got %d", len(table.headers))
	}
	if table.padding != 2 {
		t.Errorf("Expected padding of 2, got %d", table.padding)
	}
}

func TestTableAddRow(t *testing.T) {
	table := NewTable([]string{"Name", "Hex"})

	table.AddRow([]string{"primary", "#6439ff"})
	table.AddRow([]string{"secondary"})
	table.AddRow([]string{"tertiary", "#39ff64", "extra"})

	if len(table.rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(table.rows))
	}
	for i, row := range table.rows {
		if len(row) != 2 {
			t.Errorf("row %d has %d columns, want 2", i, len(row))
		}
	}
	if table.rows[1][1] != "" {
		t.Errorf("Expected empty string for padded column, got %q", table.rows[1][1])
	}
}

func TestTableRender(t *testing.T) {
	table := NewTable([]string{"Name", "Hex", "Level"})
	table.AddRow([]string{"primary", "#6439ff", "AA"})
	table.AddRow([]string{"secondary", "#daff39", "AAA"})

	want := "" +
		"Name       Hex      Level\n" +
		"---------  -------  -----\n" +
		"primary    #6439ff  AA\n" +
		"secondary  #daff39  AAA\n"

	if got := table.Render(); got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
}

func TestTableRenderEmpty(t *testing.T) {
	table := NewTable(nil)
	if got := table.Render(); got != "" {
		t.Errorf("Render() = %q, want empty string", got)
	}
}

func TestTableRenderNoRows(t *testing.T) {
	table := NewTable([]string{"Column1", "Column2"})

	want := "Column1  Column2\n-------  -------\n"
	if got := table.Render(); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestTableRightAlign(t *testing.T) {
	table := NewTable([]string{"Token", "Ratio"})
	table.SetColumnRightAlign(1)
	table.AddRow([]string{"surface", "7.02"})
	table.AddRow([]string{"primary", "12.40"})

	lines := strings.Split(table.Render(), "\n")
	if lines[2] != "surface   7.02" {
		t.Errorf("row = %q, want %q", lines[2], "surface   7.02")
	}
	if lines[3] != "primary  12.40" {
		t.Errorf("row = %q, want %q", lines[3], "primary  12.40")
	}
}

func TestTableWidthIgnoresEscapes(t *testing.T) {
	table := NewTable([]string{"Swatch", "Hex"})
	table.AddRow([]string{"\x1b[31mred\x1b[0m", "#ff0000"})
	table.AddRow([]string{"café", "#000000"})

	lines := strings.Split(table.Render(), "\n")
	if lines[1] != "------  -------" {
		t.Errorf("separator = %q, want column widths from visible text", lines[1])
	}
	if !strings.HasSuffix(lines[2], "\x1b[0m     #ff0000") {
		t.Errorf("styled row misaligned: %q", lines[2])
	}
	if lines[3] != "café    #000000" {
		t.Errorf("wide row = %q", lines[3])
	}
}

func TestTableWrapping(t *testing.T) {
	table := NewTable([]string{"Type", "Description"})
	table.SetColumnMaxWidth(1, 12)
	table.AddRow([]string{"triadic", "Three colors equally spaced"})

	want := "" +
		"Type     Description\n" +
		"-------  ------------\n" +
		"triadic  Three colors\n" +
		"         equally\n" +
		"         spaced\n"

	if got := table.Render(); got != want {
		t.Errorf("Render() =\n%q\nwant\n%q", got, want)
	}
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{"no limit", "two colors opposite", 0, []string{"two colors opposite"}},
		{"fits", "short", 10, []string{"short"}},
		{"words", "two colors opposite", 10, []string{"two colors", "opposite"}},
		{"long word", "split-complementary", 8, []string{"split-co", "mplement", "ary"}},
		{"blank", "   ", 2, []string{"   "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapText(tt.text, tt.width)
			if strings.Join(got, "|") != strings.Join(tt.want, "|") {
				t.Errorf("wrapText(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
			}
		})
	}
}
