package wiki

import "testing"

func TestRemoveMarkup(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text", "no markup here", "no markup here"},
		{"template", "before {{Infobox|x=1}} after", "before  after"},
		{"nested template", "a {{outer {{inner}} tail}} b", "a  b"},
		{"comment", "a <!-- hidden --> b", "a  b"},
		{"template in comment", "a <!-- {{tmpl}} --> b", "a  b"},
		{"unbalanced closer suppresses", "a }} b", "a "},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RemoveMarkup(tt.in); got != tt.want {
				t.Errorf("RemoveMarkup(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFirstParagraph(t *testing.T) {
	in := "First paragraph\ncontinues here.\n\nSecond paragraph."
	want := "First paragraph\ncontinues here."
	if got := FirstParagraph(in); got != want {
		t.Errorf("FirstParagraph = %q, want %q", got, want)
	}
}

// Text without templates or comments must round-trip through the abstract
// extraction unchanged, up to the first paragraph break.
func TestAbstractRoundTrip(t *testing.T) {
	in := "Madonna is an American singer.\nShe rose to fame in 1982.\n\nEarly life follows."
	want := "Madonna is an American singer.\nShe rose to fame in 1982."
	if got := FirstParagraph(RemoveMarkup(in)); got != want {
		t.Errorf("abstract = %q, want %q", got, want)
	}
}
