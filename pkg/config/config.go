// Package config loads name-source profiles: YAML documents listing
// names, name-list files and generation defaults kept on disk.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Profile represents a usernamegen name-source profile
type Profile struct {
	FirstNames []string `yaml:"first_names"`
	LastNames  []string `yaml:"last_names"`
	Prefixes   []string `yaml:"prefixes"`
	Suffixes   []string `yaml:"suffixes"`

	FirstNamesFiles []string `yaml:"first_names_files"`
	LastNamesFiles  []string `yaml:"last_names_files"`
	PrefixesFiles   []string `yaml:"prefixes_files"`
	SuffixesFiles   []string `yaml:"suffixes_files"`

	// Pointers so a profile can leave an option unset without
	// overriding the CLI default.
	NumFirstNameChars *int  `yaml:"num_first_name_chars"`
	NumLastNameChars  *int  `yaml:"num_last_name_chars"`
	PermitAao         *bool `yaml:"permit_aao"`
}

// Load reads a profile from a file
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Profile{}, nil
		}
		return nil, err
	}

	var profile Profile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, err
	}

	return &profile, nil
}
