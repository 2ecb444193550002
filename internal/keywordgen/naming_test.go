package keywordgen

import "testing"

func TestToConstName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"public", "Public"},
		{"Public", "Public"},
		{"PUBLIC", "Public"},
		{"foreach", "Foreach"},
		{"null", "Null"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := toConstName(tt.input)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("toConstName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestToConstNameInvalid(t *testing.T) {
	for _, input := range []string{"", "pub lic", "3d", "get_value", "naïve"} {
		t.Run(input, func(t *testing.T) {
			if _, err := toConstName(input); err == nil {
				t.Errorf("toConstName(%q) should fail", input)
			}
		})
	}
}

func TestNormalizeNames(t *testing.T) {
	got, err := normalizeNames([]string{"public", "Static", "VOID"})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"Public", "Static", "Void"}
	if len(got) != len(want) {
		t.Fatalf("normalizeNames = %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("names[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestNormalizeNamesDuplicate(t *testing.T) {
	_, err := normalizeNames([]string{"public", "Public"})
	if err == nil {
		t.Fatal("duplicate keywords should fail")
	}
}
