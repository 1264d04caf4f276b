package model

import (
	"testing"
)

func TestParseChoice(t *testing.T) {
	if a, err := ParseChoice("Yes"); err != nil || a != Yes {
		t.Errorf("Yes: got %v, %v", a, err)
	}
	if a, err := ParseChoice("No"); err != nil || a != No {
		t.Errorf("No: got %v, %v", a, err)
	}
	for _, bad := range []string{"", "yes", "1", "maybe"} {
		if _, err := ParseChoice(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}

func TestParseAnswerIsLenient(t *testing.T) {
	cases := map[string]Answer{
		"":      Unknown,
		" YES ": Yes,
		"1":     Yes,
		"true":  Yes,
		"no":    No,
		"0":     No,
		"False": No,
	}
	for in, want := range cases {
		got, err := ParseAnswer(in)
		if err != nil {
			t.Errorf("%q: unexpected error %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("%q: expected %v, got %v", in, want, got)
		}
	}
	if _, err := ParseAnswer("sometimes"); err == nil {
		t.Error("expected error for unrecognised answer")
	}
}

func TestAnswerValueAndScan(t *testing.T) {
	for _, a := range []Answer{Unknown, Yes, No} {
		v, err := a.Value()
		if err != nil {
			t.Fatalf("Value(%v): %v", a, err)
		}
		var back Answer
		if err := back.Scan(v); err != nil {
			t.Fatalf("Scan(%v): %v", v, err)
		}
		if back != a {
			t.Errorf("expected %v after scan, got %v", a, back)
		}
	}

	var a Answer
	if err := a.Scan(int64(1)); err != nil || a != Yes {
		t.Errorf("int64 1: got %v, %v", a, err)
	}
	if err := a.Scan([]byte("f")); err != nil || a != No {
		t.Errorf("bytes f: got %v, %v", a, err)
	}
	if err := a.Scan(3.5); err == nil {
		t.Error("expected error scanning float")
	}
}

func TestAnswerJSON(t *testing.T) {
	for a, want := range map[Answer]string{Yes: "true", No: "false", Unknown: "null"} {
		b, _ := a.MarshalJSON()
		if string(b) != want {
			t.Errorf("%v: expected %s, got %s", a, want, b)
		}
	}
}
