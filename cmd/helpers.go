package cmd

import (
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vphpersson/usernamegen/pkg/config"
	"github.com/vphpersson/usernamegen/pkg/namelist"
)

// newLogger builds the CLI logger; --verbose raises the level to Debug
func newLogger() hclog.Logger {
	level := hclog.Warn
	if verbose {
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "usernamegen",
		Level:  level,
		Output: os.Stderr,
	})
}

// settingInt returns an int setting from flag, env/config (viper), or flag default
func settingInt(cmd *cobra.Command, flag, key string) int {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetInt(flag)
		return v
	}
	if viper.IsSet(key) {
		return viper.GetInt(key)
	}
	v, _ := cmd.Flags().GetInt(flag)
	return v
}

// settingBool returns a bool setting from flag, env/config (viper), or flag default
func settingBool(cmd *cobra.Command, flag, key string) bool {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetBool(flag)
		return v
	}
	if viper.IsSet(key) {
		return viper.GetBool(key)
	}
	v, _ := cmd.Flags().GetBool(flag)
	return v
}

// settingString returns a string setting from flag, env/config (viper), or flag default
func settingString(cmd *cobra.Command, flag, key string) string {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetString(flag)
		return v
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	v, _ := cmd.Flags().GetString(flag)
	return v
}

// nameSources holds the four merged name collections and the file paths
// that fed them (the watchable inputs).
type nameSources struct {
	firstNames *namelist.Collection
	lastNames  *namelist.Collection
	prefixes   *namelist.Collection
	suffixes   *namelist.Collection
	files      []string
}

// collectSources merges inline flag values, flag-referenced files and the
// profile (if any) into one collection per axis. Files are re-read on every
// call so a watch-triggered rerun picks up edits.
func collectSources(cmd *cobra.Command, profile *config.Profile) (*nameSources, error) {
	if profile == nil {
		profile = &config.Profile{}
	}

	sources := &nameSources{
		firstNames: namelist.New("first names"),
		lastNames:  namelist.New("last names"),
		prefixes:   namelist.New("prefixes"),
		suffixes:   namelist.New("suffixes"),
	}

	collect := func(c *namelist.Collection, inlineFlag, filesFlag string, profileValues, profileFiles []string) error {
		values, _ := cmd.Flags().GetStringSlice(inlineFlag)
		c.Add(values...)
		c.Add(profileValues...)

		flagFiles, _ := cmd.Flags().GetStringSlice(filesFlag)
		files := append(append([]string{}, flagFiles...), profileFiles...)
		if err := c.AddFiles(files); err != nil {
			return err
		}
		sources.files = append(sources.files, files...)

		return nil
	}

	if err := collect(sources.firstNames, "first-names", "first-names-files", profile.FirstNames, profile.FirstNamesFiles); err != nil {
		return nil, err
	}
	if err := collect(sources.lastNames, "last-names", "last-names-files", profile.LastNames, profile.LastNamesFiles); err != nil {
		return nil, err
	}
	if err := collect(sources.prefixes, "prefixes", "prefixes-files", profile.Prefixes, profile.PrefixesFiles); err != nil {
		return nil, err
	}
	if err := collect(sources.suffixes, "suffixes", "suffixes-files", profile.Suffixes, profile.SuffixesFiles); err != nil {
		return nil, err
	}

	return sources, nil
}
