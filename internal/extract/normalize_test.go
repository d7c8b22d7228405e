package extract

import "testing"

func TestNormalizeRules(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "crlf to lf", in: "a\r\nb\rc", want: "a\nb\nc"},
		{name: "excess blank lines collapsed", in: "a\n\n\n\n\nb", want: "a\n\nb"},
		{name: "paragraph break preserved", in: "a\n\nb", want: "a\n\nb"},
		{name: "tabs become spaces", in: "a\tb", want: "a b"},
		{name: "space runs collapsed", in: "a    b", want: "a b"},
		{name: "tab runs collapse to one space", in: "a\t\t\tb", want: "a b"},
		{name: "trimmed", in: "  \n hello \n  ", want: "hello"},
		{name: "whitespace only", in: " \t \r\n ", want: ""},
		{name: "combined", in: "Title\r\n\r\n\r\n\r\nBody\twith\t\tgaps   here.  ", want: "Title\n\nBody with gaps here."},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if got != tt.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	samples := []string{
		"",
		"plain text",
		"a\r\nb\r\n\r\n\r\nc\t\td    e",
		"  leading and trailing  ",
		"p1\n\np2\n\np3",
		"\r\r\r",
	}
	for _, s := range samples {
		once := Normalize(s)
		twice := Normalize(once)
		if once != twice {
			t.Fatalf("Normalize not idempotent for %q: first %q, second %q", s, once, twice)
		}
	}
}
