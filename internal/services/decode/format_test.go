package decode_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"epochs/internal/services/decode"
)

func TestFormat_Layouts(t *testing.T) {
	ts := time.Date(2020, 9, 13, 12, 26, 40, 0, time.UTC)
	cases := []struct {
		t      time.Time
		layout decode.Layout
		want   string
	}{
		{ts, decode.LayoutDefault, "2020-09-13 12:26:40"},
		{ts, decode.LayoutISO, "2020-09-13T12:26:40"},
		{ts, decode.LayoutRFC3339, "2020-09-13T12:26:40Z"},
		{ts.Add(500 * time.Millisecond), decode.LayoutDefault, "2020-09-13 12:26:40.500"},
		{ts.Add(1500 * time.Microsecond), decode.LayoutDefault, "2020-09-13 12:26:40.001500"},
		{ts.Add(7), decode.LayoutISO, "2020-09-13T12:26:40.000000007"},
		{time.Unix(0, -1), decode.LayoutISO, "1969-12-31T23:59:59.999999999"},
		{ts.In(time.FixedZone("X", 3600)), decode.LayoutDefault, "2020-09-13 12:26:40"},
	}
	for _, c := range cases {
		if got := decode.Format(c.t, c.layout); got != c.want {
			t.Errorf("Format(%v, %v) = %q, want %q", c.t, c.layout, got, c.want)
		}
	}
}

func TestParseLayout(t *testing.T) {
	for in, want := range map[string]decode.Layout{
		"":        decode.LayoutDefault,
		"default": decode.LayoutDefault,
		"ISO":     decode.LayoutISO,
		"rfc3339": decode.LayoutRFC3339,
	} {
		got, err := decode.ParseLayout(in)
		if err != nil {
			t.Fatalf("ParseLayout(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseLayout(%q) = %v, want %v", in, got, want)
		}
		if in != "" && got.String() == "" {
			t.Fatalf("layout %v has no name", got)
		}
	}
	if _, err := decode.ParseLayout("rfc822"); !errors.Is(err, decode.ErrUnknownLayout) {
		t.Fatalf("want ErrUnknownLayout, got %v", err)
	}
}

func TestParseFallback(t *testing.T) {
	for in, want := range map[string]decode.Fallback{
		"":       decode.FallbackNone,
		"none":   decode.FallbackNone,
		"error":  decode.FallbackNone,
		"Origin": decode.FallbackOrigin,
	} {
		got, err := decode.ParseFallback(in)
		if err != nil || got != want {
			t.Fatalf("ParseFallback(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := decode.ParseFallback("zero"); err == nil {
		t.Fatal("expected error for unknown fallback")
	}
}

func TestParseTime(t *testing.T) {
	want := time.Date(2020, 9, 13, 12, 26, 40, 0, time.UTC)
	for _, in := range []string{
		"2020-09-13T12:26:40Z",
		"2020-09-13T14:26:40+02:00",
		"2020-09-13T12:26:40",
		"2020-09-13 12:26:40",
		" 2020-09-13 12:26:40 ",
	} {
		got, err := decode.ParseTime(in)
		if err != nil {
			t.Fatalf("ParseTime(%q): %v", in, err)
		}
		if !got.Equal(want) {
			t.Fatalf("ParseTime(%q) = %v", in, got)
		}
	}
	got, err := decode.ParseTime("1969-12-31 23:59:59.999999999")
	if err != nil {
		t.Fatalf("ParseTime fraction: %v", err)
	}
	if got.Nanosecond() != 999_999_999 {
		t.Fatalf("fraction lost: %v", got)
	}
	if _, err := decode.ParseTime("yesterday"); err == nil {
		t.Fatal("expected error")
	}
}

func TestParseRaw(t *testing.T) {
	for in, want := range map[string]int64{
		"0":                    0,
		"1600000000":           1_600_000_000,
		"1_600_000_000":        1_600_000_000,
		"-1":                   -1,
		"+7":                   7,
		"0x10":                 16,
		"-0x10":                -16,
		"010":                  10,
		"9223372036854775807":  math.MaxInt64,
		"-9223372036854775808": math.MinInt64,
		"0x7fffffffffffffff":   math.MaxInt64,
		" 42 ":                 42,
	} {
		got, err := decode.ParseRaw(in)
		if err != nil {
			t.Fatalf("ParseRaw(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseRaw(%q) = %d, want %d", in, got, want)
		}
	}
	for _, in := range []string{"", "-", "0x", "abc", "1.5", "--1", "+-1", "9223372036854775808", "-9223372036854775809"} {
		if _, err := decode.ParseRaw(in); err == nil {
			t.Fatalf("ParseRaw(%q) should fail", in)
		}
	}
}
