package service

import (
	"errors"
	"testing"
)

func TestParseID(t *testing.T) {
	cases := []struct {
		raw     string
		want    uint
		wantErr error
	}{
		{raw: "12", want: 12},
		{raw: " 7 ", want: 7},
		{raw: "0", want: 0},
		{raw: "-1", wantErr: ErrNegativeID},
		{raw: "abc", wantErr: ErrInvalidID},
		{raw: "12.5", wantErr: ErrInvalidID},
		{raw: "", wantErr: ErrInvalidID},
		{raw: "99999999999999999999", wantErr: ErrInvalidID},
	}
	for _, tc := range cases {
		got, err := ParseID(tc.raw)
		if tc.wantErr != nil {
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("ParseID(%q) err want %v got %v", tc.raw, tc.wantErr, err)
			}
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("ParseID(%q) should wrap ErrInvalidInput", tc.raw)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseID(%q) unexpected err: %v", tc.raw, err)
		}
		if got != tc.want {
			t.Fatalf("ParseID(%q) want %d got %d", tc.raw, tc.want, got)
		}
	}
}

func TestParseQuantity(t *testing.T) {
	if got, err := ParseQuantity("0"); err != nil || got != 0 {
		t.Fatalf("ParseQuantity(0) want 0 got %d err=%v", got, err)
	}
	if got, err := ParseQuantity("3"); err != nil || got != 3 {
		t.Fatalf("ParseQuantity(3) want 3 got %d err=%v", got, err)
	}
	if _, err := ParseQuantity("-2"); !errors.Is(err, ErrNegativeQuantity) {
		t.Fatalf("negative quantity want ErrNegativeQuantity got %v", err)
	}
	if _, err := ParseQuantity("two"); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("non numeric quantity want ErrInvalidQuantity got %v", err)
	}
}

func TestParseRating(t *testing.T) {
	for _, raw := range []string{"1", "3", "5"} {
		if _, err := ParseRating(raw); err != nil {
			t.Fatalf("ParseRating(%s) unexpected err: %v", raw, err)
		}
	}
	for _, raw := range []string{"0", "6", "-1", "4.5", "great"} {
		if _, err := ParseRating(raw); !errors.Is(err, ErrInvalidRating) {
			t.Fatalf("ParseRating(%s) want ErrInvalidRating got %v", raw, err)
		}
	}
}
