// Package config loads named TI 99 disk-geometry profiles ("SSSD40",
// "DSDD80", ...) that the tohfe command's --profile flag stamps into a
// sector image's track/side/encoding header bytes before building an HFE
// image.
//
// Adapted from the teacher's config package (embedded TOML default,
// optional user override file, BurntSushi/toml), repurposed from
// physical-drive geometry to HFE/sector-image geometry presets.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

//go:embed profiles.toml
var defaultProfilesData []byte

// Profile is one named disk geometry.
type Profile struct {
	Name     string `toml:"name"`
	Tracks   int    `toml:"tracks"`
	Sides    int    `toml:"sides"`
	Encoding string `toml:"encoding"` // "sd" or "dd"
}

type profilesFile struct {
	Profile []Profile `toml:"profile"`
}

// DD reports whether the profile's encoding is double density.
func (p Profile) DD() bool {
	return p.Encoding == "dd"
}

// overridePath returns ~/.hfe99/profiles.toml, the optional user override.
func overridePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine user home directory: %w", err)
	}
	return filepath.Join(home, ".hfe99", "profiles.toml"), nil
}

// LoadProfiles returns the embedded default profile set, with any profile
// from ~/.hfe99/profiles.toml added or overridden by name.
func LoadProfiles() (map[string]Profile, error) {
	var defaults profilesFile
	if _, err := toml.Decode(string(defaultProfilesData), &defaults); err != nil {
		return nil, fmt.Errorf("failed to parse embedded default profiles: %w", err)
	}

	profiles := make(map[string]Profile, len(defaults.Profile))
	for _, p := range defaults.Profile {
		profiles[p.Name] = p
	}

	path, err := overridePath()
	if err != nil {
		return profiles, nil
	}
	if _, statErr := os.Stat(path); statErr != nil {
		return profiles, nil
	}

	var override profilesFile
	if _, err := toml.DecodeFile(path, &override); err != nil {
		return nil, fmt.Errorf("failed to parse override profiles at %s: %w", path, err)
	}
	for _, p := range override.Profile {
		profiles[p.Name] = p
	}
	return profiles, nil
}

// Lookup loads the profile set and returns the named profile.
func Lookup(name string) (Profile, error) {
	profiles, err := LoadProfiles()
	if err != nil {
		return Profile{}, err
	}
	p, ok := profiles[name]
	if !ok {
		return Profile{}, fmt.Errorf("unknown disk profile %q", name)
	}
	return p, nil
}
