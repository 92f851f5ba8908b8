package nucleotide

import (
	"errors"
	"testing"
)

func TestFromAbbreviation(t *testing.T) {
	testCases := []struct {
		name    string
		c       byte
		want    Nucleotide
		wantErr bool
	}{
		{name: "lower_a", c: 'a', want: Adenine},
		{name: "upper_a", c: 'A', want: Adenine},
		{name: "lower_c", c: 'c', want: Cytosine},
		{name: "upper_t", c: 'T', want: Thymine},
		{name: "gap", c: '_', want: Gap},
		{name: "any", c: 'n', want: Any},
		{name: "unknown", c: 'x', wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := FromAbbreviation(tc.c)
			if tc.wantErr {
				if !errors.Is(err, ErrUnknownAbbreviation) {
					t.Fatalf("expected ErrUnknownAbbreviation, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestAbbreviationRoundTrip(t *testing.T) {
	for _, n := range []Nucleotide{Adenine, Cytosine, Guanine, Thymine, Gap, Any} {
		c := n.Abbreviation()
		got, err := FromAbbreviation(c)
		if err != nil {
			t.Fatalf("FromAbbreviation(%q): %v", c, err)
		}
		if got != n {
			t.Fatalf("round trip mismatch: %v -> %q -> %v", n, c, got)
		}
	}
}

func TestFromExtendedAbbreviation(t *testing.T) {
	testCases := []struct {
		name    string
		c       byte
		want    []Nucleotide
		wantErr bool
	}{
		{name: "plain_g", c: 'G', want: []Nucleotide{Guanine}},
		{name: "gap_dash", c: '-', want: []Nucleotide{Gap}},
		{name: "r_purine", c: 'r', want: []Nucleotide{Adenine, Guanine}},
		{name: "n_any_base", c: 'N', want: []Nucleotide{Adenine, Cytosine, Guanine, Thymine}},
		{name: "unknown", c: 'z', wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := FromExtendedAbbreviation(tc.c)
			if tc.wantErr {
				if !errors.Is(err, ErrUnknownAbbreviation) {
					t.Fatalf("expected ErrUnknownAbbreviation, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("got %v, want %v", got, tc.want)
				}
			}
		})
	}
}

func TestNamePanicsOnInvalid(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic for invalid nucleotide")
		}
	}()
	Nucleotide(200).Name()
}
