package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chordial/chordial/dictionary"
)

func init() {
	rootCmd.AddCommand(dictCmd)
}

var dictCmd = &cobra.Command{
	Use:   "dict",
	Short: "List and validate the chord dictionary",
	RunE: func(cmd *cobra.Command, args []string) error {
		var store *dictionary.Store
		if flagDictionary != "" {
			var err error
			store, err = dictionary.NewStoreFromFile(flagDictionary)
			if err != nil {
				return err
			}
			if flagAliases != "" {
				if err := store.LoadAliases(flagAliases); err != nil {
					return err
				}
			}
		} else {
			store = dictionary.NewStore()
		}

		keys := store.Keys()
		sort.Strings(keys)
		for _, key := range keys {
			ci, _ := store.FindKey(key)
			line := fmt.Sprintf("%-24s %s", key, ci.Name)
			if len(ci.Aliases) > 0 {
				line += "  (" + strings.Join(ci.Aliases, ", ") + ")"
			}
			fmt.Println(line)
		}
		fmt.Printf("%d patterns\n", store.Len())

		for _, warning := range store.Validate() {
			fmt.Printf("warning: %s\n", warning)
		}
		return nil
	},
}
