package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/birmacher/content-gen/store"
	"github.com/spf13/cobra"
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Show or update writing preferences",
}

var prefsGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show the saved preferences",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		user := resolveUser(cmd)
		if user == "" {
			return fmt.Errorf("pass --user or set user_id in content-gen.yml")
		}

		st, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		prefs, err := st.GetPreferences(user)
		if errors.Is(err, store.ErrNotFound) {
			cmd.PrintErrln("No preferences saved yet.")
			return nil
		}
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Tone:  %s\n", prefs.Tone)
		fmt.Fprintf(out, "Niche: %s\n", prefs.Niche)
		return nil
	},
}

var prefsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Save writing preferences",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		user := resolveUser(cmd)
		if user == "" {
			return fmt.Errorf("pass --user or set user_id in content-gen.yml")
		}
		tone, _ := cmd.Flags().GetString("tone")
		niche, _ := cmd.Flags().GetString("niche")

		st, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		err = st.SavePreferences(store.Preferences{
			UserID:    user,
			Tone:      strings.TrimSpace(tone),
			Niche:     strings.TrimSpace(niche),
			UpdatedAt: time.Now().UTC(),
		})
		if err != nil {
			return err
		}

		cmd.PrintErrln("Preferences saved.")
		return nil
	},
}

func init() {
	addUserFlag(prefsGetCmd)
	addUserFlag(prefsSetCmd)
	prefsSetCmd.Flags().String("tone", "", "Writing tone, e.g. Professional, Casual, Humorous")
	prefsSetCmd.Flags().String("niche", "", "Content niche, e.g. Tech, Marketing")

	prefsCmd.AddCommand(prefsGetCmd, prefsSetCmd)
	rootCmd.AddCommand(prefsCmd)
}
