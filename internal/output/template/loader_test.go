package template

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"main.css.tmpl":  {Data: []byte("embedded main")},
		"extra.css.tmpl": {Data: []byte("embedded extra")},
		"README.md":      {Data: []byte("not a template")},
	}
}

func TestLoadEmbedded(t *testing.T) {
	l := New("css", testFS()).WithCustomBase(t.TempDir())

	content, custom, err := l.Load("main.css.tmpl")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if custom {
		t.Error("Load() fromCustom = true, want false")
	}
	if string(content) != "embedded main" {
		t.Errorf("Load() = %q, want embedded main", content)
	}

	if _, _, err := l.Load("missing.tmpl"); err == nil {
		t.Error("Load() of a missing template should fail")
	}
}

func TestLoadCustomOverride(t *testing.T) {
	base := t.TempDir()
	l := New("css", testFS()).WithCustomBase(base)

	dir := filepath.Join(base, "css")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "main.css.tmpl"), []byte("custom main"), 0o644); err != nil {
		t.Fatal(err)
	}

	content, custom, err := l.Load("main.css.tmpl")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !custom || string(content) != "custom main" {
		t.Errorf("Load() = %q custom=%v, want custom main", content, custom)
	}

	if info := l.Info("main.css.tmpl"); !info.UsingCustom {
		t.Errorf("Info() = %+v, want UsingCustom", info)
	}
	if info := l.Info("extra.css.tmpl"); info.UsingCustom {
		t.Errorf("Info(extra) = %+v, want embedded", info)
	}
}

func TestList(t *testing.T) {
	l := New("css", testFS())
	names, err := l.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(names) != 2 {
		t.Errorf("List() = %v, want 2 templates", names)
	}
}

func TestDump(t *testing.T) {
	base := t.TempDir()
	l := New("css", testFS()).WithCustomBase(base)

	out, err := l.Dump("main.css.tmpl", false)
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}
	if out != filepath.Join(base, "css", "main.css.tmpl") {
		t.Errorf("Dump() path = %s", out)
	}

	if _, err := l.Dump("main.css.tmpl", false); !errors.Is(err, ErrTemplateExists) {
		t.Errorf("second Dump() error = %v, want ErrTemplateExists", err)
	}
	if _, err := l.Dump("main.css.tmpl", true); err != nil {
		t.Errorf("forced Dump() error = %v", err)
	}
}

func TestDumpAll(t *testing.T) {
	base := t.TempDir()
	l := New("css", testFS()).WithCustomBase(base)

	dumped, err := l.DumpAll(false)
	if err != nil {
		t.Fatalf("DumpAll() error = %v", err)
	}
	if len(dumped) != 2 {
		t.Errorf("DumpAll() dumped %d, want 2", len(dumped))
	}

	dumped, err = l.DumpAll(false)
	if !errors.Is(err, ErrTemplateExists) {
		t.Errorf("DumpAll() error = %v, want ErrTemplateExists", err)
	}
	if len(dumped) != 0 {
		t.Errorf("DumpAll() dumped %d on rerun, want 0", len(dumped))
	}
}
