package script

import "testing"

func TestContains(t *testing.T) {
	c := Default()
	tests := []struct {
		name    string
		text    string
		scripts []string
		want    bool
	}{
		{"katakana run", "モーニング娘。", []string{"Katakana", "Hiragana", "Han"}, true},
		{"latin only", "Madonna", []string{"Katakana", "Hiragana", "Han"}, false},
		{"mixed", "Perfume(パフューム)", []string{"Katakana"}, true},
		{"empty", "", []string{"Latin"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Contains(tt.text, tt.scripts...); got != tt.want {
				t.Errorf("Contains(%q, %v) = %v, want %v", tt.text, tt.scripts, got, tt.want)
			}
		})
	}
}

func TestEntirely(t *testing.T) {
	c := Default()
	tests := []struct {
		name    string
		text    string
		scripts []string
		want    bool
	}{
		{"all latin", "Madonna", []string{"Latin"}, true},
		{"space breaks it", "Like a Prayer", []string{"Latin"}, false},
		{"all kana", "ひらがな", []string{"Hiragana"}, true},
		{"union", "ひらがなカタカナ", []string{"Hiragana", "Katakana"}, true},
		{"empty string", "", []string{"Latin"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Entirely(tt.text, tt.scripts...); got != tt.want {
				t.Errorf("Entirely(%q, %v) = %v, want %v", tt.text, tt.scripts, got, tt.want)
			}
		})
	}
}

func TestUnknownScriptPanics(t *testing.T) {
	c := Default()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unknown script name")
		}
	}()
	c.Contains("abc", "Klingon")
}
