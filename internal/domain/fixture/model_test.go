package fixture

import (
	"testing"
	"time"
)

func TestIsTerminalStatus(t *testing.T) {
	t.Parallel()

	terminal := []string{"FT", "ft", " AET ", "PEN", "FT_PEN", "ENDED", "CANCELLED", "POSTPONED", "ABANDONED"}
	for _, status := range terminal {
		if !IsTerminalStatus(status) {
			t.Fatalf("expected %q to be terminal", status)
		}
	}

	open := []string{"", "NS", "LIVE", "HT", "1H", "2H", "ET", "INPLAY"}
	for _, status := range open {
		if IsTerminalStatus(status) {
			t.Fatalf("expected %q to be non-terminal", status)
		}
	}
}

func TestAllTerminal_EmptySetIsNotTerminal(t *testing.T) {
	t.Parallel()

	if AllTerminal(nil) {
		t.Fatalf("empty fixture set must not read as all finished")
	}
	if AllTerminal([]Fixture{}) {
		t.Fatalf("empty fixture set must not read as all finished")
	}
}

func TestAllTerminal_MixedStatuses(t *testing.T) {
	t.Parallel()

	fixtures := []Fixture{
		{ExternalID: 1, Status: "FT"},
		{ExternalID: 2, Status: "LIVE"},
	}
	if AllTerminal(fixtures) {
		t.Fatalf("one live fixture must keep the week open")
	}

	fixtures[1].Status = "POSTPONED"
	if !AllTerminal(fixtures) {
		t.Fatalf("finished + postponed should be terminal")
	}
}

func TestStarted(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 7, 15, 30, 0, 0, time.UTC)

	f := Fixture{KickoffAt: now.Add(-time.Minute), Status: "NS"}
	if !f.Started(now) {
		t.Fatalf("kickoff in the past must count as started")
	}

	f = Fixture{KickoffAt: now.Add(time.Hour), Status: "NS"}
	if f.Started(now) {
		t.Fatalf("future kickoff must not count as started")
	}

	// Shifted schedule: kickoff in the future but feed already reports play.
	f = Fixture{KickoffAt: now.Add(time.Hour), Status: "1H"}
	if !f.Started(now) {
		t.Fatalf("live status must count as started regardless of kickoff")
	}
}
