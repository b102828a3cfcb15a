package sanitize

import "testing"

func TestUGC(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text untouched", "A nice plain description.", "A nice plain description."},
		{"keeps formatting", "<p>Hello <strong>world</strong></p>", "<p>Hello <strong>world</strong></p>"},
		{"strips scripts", `before <script>alert("x")</script>after`, "before after"},
		{"strips event handlers", `<a href="https://example.com" onclick="steal()">link</a>`, `<a href="https://example.com" rel="nofollow">link</a>`},
		{"trims whitespace", "  padded  ", "padded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UGC(tt.input); got != tt.want {
				t.Errorf("UGC(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestUGCPtr(t *testing.T) {
	if UGCPtr(nil) != nil {
		t.Error("UGCPtr(nil) should stay nil")
	}

	dirty := "x<script>y</script>z"
	got := UGCPtr(&dirty)
	if got == nil || *got != "xz" {
		t.Errorf("UGCPtr() = %v, want xz", got)
	}
}
