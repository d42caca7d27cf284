package manifest

import (
	"errors"
	"testing"
)

func wellFormed() *Manifest {
	return &Manifest{
		Default: "26.01",
		Versions: []Entry{
			{Path: "24.06", Title: "24.06", Version: "24.06"},
			{Path: "25.12", Title: "25.12 LTS", Version: "25.12 LTS"},
			{Path: "26.01", Title: "26.01 (latest)", Version: "26.01", Latest: true},
		},
	}
}

func TestValidateWellFormed(t *testing.T) {
	if err := wellFormed().Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestValidateEmptyVersions(t *testing.T) {
	m := &Manifest{Default: "26.01"}
	err := m.Validate()
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}

func TestValidateMissingFields(t *testing.T) {
	tests := []struct {
		name  string
		entry Entry
	}{
		{"no path", Entry{Title: "t", Version: "v"}},
		{"no title", Entry{Path: "26.01", Version: "v"}},
		{"no version", Entry{Path: "26.01", Title: "t"}},
	}
	for _, tt := range tests {
		m := &Manifest{Versions: []Entry{tt.entry}}
		if err := m.Validate(); !errors.Is(err, ErrMalformed) {
			t.Errorf("%s: expected ErrMalformed, got %v", tt.name, err)
		}
	}
}

func TestValidateDuplicatePath(t *testing.T) {
	m := wellFormed()
	m.Versions = append(m.Versions, Entry{Path: "25.12", Title: "dup", Version: "dup"})
	if err := m.Validate(); !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}

func TestFind(t *testing.T) {
	m := wellFormed()
	if e := m.Find("25.12"); e == nil || e.Title != "25.12 LTS" {
		t.Errorf("Find(25.12) = %+v", e)
	}
	if e := m.Find("99.99"); e != nil {
		t.Errorf("Find(99.99) = %+v, want nil", e)
	}
}

func TestLatestUnique(t *testing.T) {
	e, err := wellFormed().Latest()
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if e.Path != "26.01" {
		t.Errorf("Latest path = %q, want 26.01", e.Path)
	}
}

func TestLatestNone(t *testing.T) {
	m := wellFormed()
	for i := range m.Versions {
		m.Versions[i].Latest = false
	}
	if _, err := m.Latest(); !errors.Is(err, ErrNoLatest) {
		t.Fatalf("expected ErrNoLatest, got %v", err)
	}
}

func TestLatestMultiple(t *testing.T) {
	m := wellFormed()
	m.Versions[0].Latest = true
	if _, err := m.Latest(); !errors.Is(err, ErrMultipleLatest) {
		t.Fatalf("expected ErrMultipleLatest, got %v", err)
	}
}
