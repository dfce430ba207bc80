package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vphpersson/usernamegen/pkg/config"
	"github.com/vphpersson/usernamegen/pkg/output"
	"github.com/vphpersson/usernamegen/pkg/usernamegen"
	"github.com/vphpersson/usernamegen/pkg/watcher"
	"github.com/vphpersson/usernamegen/pkg/wordlists"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "usernamegen",
	Short: "Generate candidate usernames from name lists",
	Long: `Usernamegen combines first names, last names, prefixes and suffixes
into candidate usernames, e.g. for pre-populating a username namespace
during onboarding.

Names can be passed inline, read from files (one name per line), taken
from a YAML profile, or left out entirely to fall back on the bundled
name lists. All sources for the same collection merge into one set.

Examples:
  usernamegen --first-names Anna,Erik --last-names Svensson
  usernamegen --first-names-files staff.txt --suffixes 01,02 -o usernames.txt
  usernamegen --names-config onboarding.yaml --sort
  usernamegen --first-names-files staff.txt -o usernames.txt --watch`,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runGenerate,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/usernamegen/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	flags := rootCmd.Flags()
	flags.StringSlice("first-names", nil, "First names to combine")
	flags.StringSlice("first-names-files", nil, "Files to read first names from, one per line")
	flags.StringSlice("last-names", nil, "Last names to combine")
	flags.StringSlice("last-names-files", nil, "Files to read last names from, one per line")
	flags.StringSlice("prefixes", nil, "Prefixes to prepend to the usernames")
	flags.StringSlice("prefixes-files", nil, "Files to read prefixes from, one per line")
	flags.StringSlice("suffixes", nil, "Suffixes to append to the usernames")
	flags.StringSlice("suffixes-files", nil, "Files to read suffixes from, one per line")
	flags.Int("num-first-name-chars", 3, "Number of characters to extract from the first names")
	flags.Int("num-last-name-chars", 3, "Number of characters to extract from the last names")
	flags.Bool("permit-aao", false, "Permit åäö in the usernames")
	flags.StringP("output", "o", "", "Path to which the output should be written (default stdout)")
	flags.Bool("sort", false, "Sort the output")
	flags.String("names-config", "", "YAML name-source profile to load")
	flags.Bool("watch", false, "Keep running and regenerate when a name-list file changes")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home + "/.config/usernamegen")
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("USERNAMEGEN")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		// Config loaded
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	numFirstNameChars := settingInt(cmd, "num-first-name-chars", "num_first_name_chars")
	numLastNameChars := settingInt(cmd, "num-last-name-chars", "num_last_name_chars")
	permitAao := settingBool(cmd, "permit-aao", "permit_aao")
	outputPath := settingString(cmd, "output", "output")
	sorted, _ := cmd.Flags().GetBool("sort")
	watch, _ := cmd.Flags().GetBool("watch")

	var profile *config.Profile
	if path, _ := cmd.Flags().GetString("names-config"); path != "" {
		var err error
		if profile, err = config.Load(path); err != nil {
			return fmt.Errorf("failed to load names config %s: %w", path, err)
		}
		logger.Debug("loaded names config", "path", path)

		if profile.NumFirstNameChars != nil && !cmd.Flags().Changed("num-first-name-chars") {
			numFirstNameChars = *profile.NumFirstNameChars
		}
		if profile.NumLastNameChars != nil && !cmd.Flags().Changed("num-last-name-chars") {
			numLastNameChars = *profile.NumLastNameChars
		}
		if profile.PermitAao != nil && !cmd.Flags().Changed("permit-aao") {
			permitAao = *profile.PermitAao
		}
	}

	if numFirstNameChars < 0 || numLastNameChars < 0 {
		return fmt.Errorf("character counts must be non-negative (got %d and %d)", numFirstNameChars, numLastNameChars)
	}

	opts := usernamegen.Options{
		NumFirstNameChars: numFirstNameChars,
		NumLastNameChars:  numLastNameChars,
		PermitAao:         permitAao,
	}

	run := func() error {
		sources, err := collectSources(cmd, profile)
		if err != nil {
			return err
		}

		firstNames := sources.firstNames.Values()
		if len(firstNames) == 0 {
			if firstNames, err = wordlists.FirstNames(); err != nil {
				return err
			}
			logger.Debug("using bundled first names", "count", len(firstNames))
		}

		lastNames := sources.lastNames.Values()
		if len(lastNames) == 0 {
			if lastNames, err = wordlists.LastNames(); err != nil {
				return err
			}
			logger.Debug("using bundled last names", "count", len(lastNames))
		}

		usernames := usernamegen.Generate(firstNames, lastNames, sources.prefixes.Values(), sources.suffixes.Values(), opts)
		logger.Debug("generated usernames",
			"count", len(usernames),
			"first_names", len(firstNames),
			"last_names", len(lastNames),
			"prefixes", sources.prefixes.Len(),
			"suffixes", sources.suffixes.Len())

		return output.WriteFile(outputPath, usernames, sorted)
	}

	if err := run(); err != nil {
		return err
	}

	if !watch {
		return nil
	}

	// The watchable inputs are the name-list files; resolve them again so a
	// bad flag combination fails before blocking.
	sources, err := collectSources(cmd, profile)
	if err != nil {
		return err
	}
	if len(sources.files) == 0 {
		return fmt.Errorf("--watch requires at least one name-list file")
	}
	if outputPath == "" {
		return fmt.Errorf("--watch requires --output")
	}

	w, err := watcher.New(sources.files, run, logger)
	if err != nil {
		return err
	}
	w.Start()
	logger.Info("watching name-list files", "files", len(sources.files), "output", outputPath)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	return w.Stop()
}
