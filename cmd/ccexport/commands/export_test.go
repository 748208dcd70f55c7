package commands

import (
	"testing"
	"time"
)

func TestParseTargetDate(t *testing.T) {
	got, err := parseTargetDate("2026-01-12")
	if err != nil {
		t.Fatalf("failed to parse date: %v", err)
	}

	want := time.Date(2026, 1, 12, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestParseTargetDateDefaultsToToday(t *testing.T) {
	got, err := parseTargetDate("")
	if err != nil {
		t.Fatalf("empty date should default to now: %v", err)
	}

	ny, nm, nd := time.Now().Date()
	gy, gm, gd := got.Date()
	if ny != gy || nm != gm || nd != gd {
		t.Errorf("expected today's date, got %v", got)
	}
}

func TestParseTargetDateRejectsGarbage(t *testing.T) {
	if _, err := parseTargetDate("12/01/2026"); err == nil {
		t.Error("non ISO date should be rejected")
	}
}

func TestRootCommandWiring(t *testing.T) {
	root := NewRootCommand()

	want := []string{"export", "list", "init", "hook", "config"}
	for _, name := range want {
		found := false
		for _, sub := range root.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command is missing subcommand %q", name)
		}
	}
}
