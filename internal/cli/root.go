package cli

import (
	"github.com/spf13/cobra"

	"github.com/chordial/chordial/dictionary"
	"github.com/chordial/chordial/identify"
	"github.com/chordial/chordial/logging"
	"github.com/chordial/chordial/lookup"
	"github.com/chordial/chordial/naming"
)

var (
	flagDictionary string
	flagAliases    string
	flagMode       string
	flagStyle      string
	flagBackend    string
	flagVerbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "chordial",
	Short: "Name chords from MIDI notes",
	Long: `Chordial identifies chords from MIDI note numbers: one-shot lookup,
whole-file MIDI analysis and a small HTTP API.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagVerbose {
			logging.GetGlobalLogger().SetLevel(logging.DebugLevel)
		} else {
			logging.GetGlobalLogger().SetLevel(logging.WarnLevel)
		}
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagDictionary, "dictionary", "", "YAML chord dictionary replacing the built-in table")
	pf.StringVar(&flagAliases, "aliases", "", "YAML alias file merged into the dictionary")
	pf.StringVar(&flagMode, "mode", "standard", "identification mode: fast, standard, comprehensive, analytical")
	pf.StringVar(&flagStyle, "style", "jazz", "naming style: jazz, classical, popular, minimal")
	pf.StringVar(&flagBackend, "backend", "map", "lookup backend: map, robinhood, perfect, eytzinger")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "debug logging")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

// newIdentifier builds the identifier the subcommands share, honoring the
// persistent flags
func newIdentifier() (*identify.Identifier, error) {
	cfg := identify.DefaultConfig()
	cfg.Mode = identify.ParseMode(flagMode)
	cfg.Style = naming.ParseStyle(flagStyle)
	cfg.Lookup.Backend = lookup.BackendKind(flagBackend)

	if flagDictionary == "" {
		return identify.New(cfg)
	}
	store, err := dictionary.NewStoreFromFile(flagDictionary)
	if err != nil {
		return nil, err
	}
	if flagAliases != "" {
		if err := store.LoadAliases(flagAliases); err != nil {
			return nil, err
		}
	}
	return identify.NewWithStore(store, cfg)
}
