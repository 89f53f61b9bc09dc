package config

import "testing"

func TestLoadProfilesIncludesDefaults(t *testing.T) {
	profiles, err := LoadProfiles()
	if err != nil {
		t.Fatalf("LoadProfiles: %v", err)
	}
	for _, name := range []string{"SSSD40", "SSSD80", "DSSD40", "DSSD80", "DSDD40", "DSDD80"} {
		if _, ok := profiles[name]; !ok {
			t.Errorf("missing default profile %q", name)
		}
	}
}

func TestLookupKnownProfile(t *testing.T) {
	p, err := Lookup("DSDD80")
	if err != nil {
		t.Fatalf("Lookup(DSDD80): %v", err)
	}
	if p.Tracks != 80 || p.Sides != 2 || !p.DD() {
		t.Errorf("DSDD80 = %+v, want tracks=80 sides=2 dd=true", p)
	}
}

func TestLookupUnknownProfile(t *testing.T) {
	if _, err := Lookup("NOSUCHPROFILE"); err == nil {
		t.Fatal("expected error for unknown profile name")
	}
}

func TestSSFormatIsSD(t *testing.T) {
	p, err := Lookup("SSSD40")
	if err != nil {
		t.Fatalf("Lookup(SSSD40): %v", err)
	}
	if p.DD() {
		t.Errorf("SSSD40.DD() = true, want false")
	}
}
