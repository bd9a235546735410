package theme

import "testing"

func TestParse(t *testing.T) {
	cases := map[string]Mode{
		"dark":   Dark,
		"DARK":   Light,
		"Dark":   Light,
		" dark ": Light,
		"light":  Light,
		"":       Light,
		"purple": Light,
		"dark2":  Light,
	}
	for in, want := range cases {
		if got := Parse(in); got != want {
			t.Fatalf("Parse(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestStoreToggle(t *testing.T) {
	var s Store
	if s.Mode() != Light {
		t.Fatalf("zero store should be light, got %v", s.Mode())
	}
	if m := s.Toggle(); m != Dark || s.Mode() != Dark {
		t.Fatalf("toggle from light: got %v / %v", m, s.Mode())
	}
	if m := s.Toggle(); m != Light {
		t.Fatalf("toggle from dark: got %v", m)
	}
	s.Set(Dark)
	if s.Mode().String() != "dark" {
		t.Fatalf("unexpected string %q", s.Mode().String())
	}
}

func TestStoreUnknownValueIsLight(t *testing.T) {
	s := NewStore(Mode(7))
	if s.Mode() != Light {
		t.Fatalf("unknown mode should read as light, got %v", s.Mode())
	}
}

func TestNilStoreReadsLight(t *testing.T) {
	var s *Store
	if s.Mode() != Light {
		t.Fatal("nil store should read as light")
	}
}
