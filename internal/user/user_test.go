package user

import "testing"

func TestCurrentName_NonEmptyOnTypicalSystems(t *testing.T) {
	t.Setenv("USER", "fallback")
	if got := CurrentName(); got == "" {
		t.Error("expected a username from the OS or USER env")
	}
}

func TestDisplayName_Capitalizes(t *testing.T) {
	// DisplayName derives from CurrentName, so only check the shape.
	got := DisplayName()
	if got == "" {
		t.Skip("no resolvable user on this system")
	}
	first := []rune(got)[0]
	if first >= 'a' && first <= 'z' {
		t.Errorf("DisplayName = %q, first letter should be upper-cased", got)
	}
}
