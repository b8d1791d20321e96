package font

import "testing"

import "golang.org/x/image/font/gofont/goregular"

func TestProperties(t *testing.T) {
	font, _, err := ParseFromBytes(goregular.TTF, 0)
	if err != nil { t.Fatalf("unexpected error: %s", err.Error()) }

	family, err := GetFamily(font)
	if err != nil { t.Fatalf("unexpected error: %s", err.Error()) }
	if family == "" { t.Fatal("expected a non-empty family name") }

	_, err = GetSubfamily(font)
	if err != nil { t.Fatalf("unexpected error: %s", err.Error()) }

	name, err := GetName(font)
	if err != nil { t.Fatalf("unexpected error: %s", err.Error()) }
	if name == "" { t.Fatal("expected a non-empty font name") }
}

func TestGetMissingRunes(t *testing.T) {
	font, _, err := ParseFromBytes(goregular.TTF, 0)
	if err != nil { t.Fatalf("unexpected error: %s", err.Error()) }

	missing, err := GetMissingRunes(font, "Hello 123")
	if err != nil { t.Fatalf("unexpected error: %s", err.Error()) }
	if len(missing) != 0 {
		t.Fatalf("expected no missing runes, got %v", missing)
	}

	// Go Regular has no CJK coverage
	missing, err = GetMissingRunes(font, "漢字")
	if err != nil { t.Fatalf("unexpected error: %s", err.Error()) }
	if len(missing) != 2 {
		t.Fatalf("expected 2 missing runes, got %v", missing)
	}
}
