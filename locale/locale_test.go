package locale

import (
	"strings"
	"testing"
)

func TestEnglishLookup(t *testing.T) {
	m, err := New("en")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := m.T("program_paused"); got != "program paused" {
		t.Errorf("T(program_paused) = %q", got)
	}
}

func TestRussianLookup(t *testing.T) {
	m, err := New("ru")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := m.T("program_paused"); got == "program paused" || got == "program_paused" {
		t.Errorf("T(program_paused) in ru = %q, want translated string", got)
	}
}

func TestTemplateData(t *testing.T) {
	m, err := New("en")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got := m.TF("press_start", map[string]any{"Key": "s"})
	if !strings.Contains(got, "s") || strings.Contains(got, "{{") {
		t.Errorf("TF(press_start) = %q", got)
	}
}

func TestUnknownLanguageFallsBack(t *testing.T) {
	m, err := New("de")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := m.T("program_resumed"); got != "program resumed" {
		t.Errorf("T(program_resumed) = %q, want english fallback", got)
	}
}

func TestUnknownIDResolvesToID(t *testing.T) {
	m, err := New("en")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := m.T("no_such_message"); got != "no_such_message" {
		t.Errorf("T(no_such_message) = %q", got)
	}
}
