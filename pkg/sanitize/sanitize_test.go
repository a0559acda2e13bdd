package sanitize

import "testing"

func TestClean(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{
			name:   "plain input unchanged",
			input:  "Jane Doe",
			maxLen: 100,
			want:   "Jane Doe",
		},
		{
			name:   "trims surrounding whitespace",
			input:  "  Jane Doe \t",
			maxLen: 100,
			want:   "Jane Doe",
		},
		{
			name:   "strips html tags",
			input:  "<b>hi</b>",
			maxLen: 100,
			want:   "hi",
		},
		{
			name:   "strips nested tag-like substrings",
			input:  "hello <script>alert(1)</script> world",
			maxLen: 100,
			want:   "hello alert(1) world",
		},
		{
			name:   "strips control characters",
			input:  "ab\x00cd\x1Fef",
			maxLen: 100,
			want:   "abcdef",
		},
		{
			name:   "truncates to max length",
			input:  "abcdefgh",
			maxLen: 5,
			want:   "abcde",
		},
		{
			name:   "empty input",
			input:  "",
			maxLen: 100,
			want:   "",
		},
		{
			name:   "zero max length",
			input:  "abc",
			maxLen: 0,
			want:   "",
		},
		{
			name:   "whitespace only",
			input:  "   ",
			maxLen: 100,
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clean(tt.input, tt.maxLen)
			if got != tt.want {
				t.Errorf("Clean(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
			}
		})
	}
}

func TestCleanTruncatesBeforeStripping(t *testing.T) {
	got := Clean("abcdefgh", 5)
	if len([]rune(got)) > 5 {
		t.Errorf("Clean result %q longer than max 5", got)
	}
}

func TestCleanIdempotent(t *testing.T) {
	inputs := []string{
		"Jane Doe",
		"hello world",
		"jane@acme.com",
		"short",
		"",
	}

	for _, in := range inputs {
		once := Clean(in, 100)
		twice := Clean(once, 100)
		if once != twice {
			t.Errorf("Clean not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}

func TestTrim(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{"trims whitespace", "  Jane Doe  ", 100, "Jane Doe"},
		{"truncates", "abcdefgh", 3, "abc"},
		{"keeps html", "<b>hi</b>", 100, "<b>hi</b>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Trim(tt.input, tt.maxLen)
			if got != tt.want {
				t.Errorf("Trim(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
			}
		})
	}
}
