package cmd

import (
	"github.com/birmacher/content-gen/config"
	"github.com/birmacher/content-gen/generate"
	"github.com/birmacher/content-gen/llm"
	"github.com/birmacher/content-gen/logger"
	"github.com/birmacher/content-gen/store"
	"github.com/spf13/cobra"
)

// newLLM is swapped in tests
var newLLM = llm.NewLLM

// newGenerator builds the generation client from configuration. A missing
// credential fails here, before any request is made.
func newGenerator(c *config.Config) (*generate.Client, error) {
	apiKey, err := c.APIKey()
	if err != nil {
		logger.Error(err)
		return nil, err
	}

	opts := []llm.Option{
		llm.WithAPITimeout(c.Timeout),
		llm.WithRetryMax(c.RetryMax),
	}
	if c.Model != "" {
		opts = append(opts, llm.WithModel(c.Model))
	}
	if c.BaseURL != "" {
		opts = append(opts, llm.WithBaseURL(c.BaseURL))
	}

	model, err := newLLM(c.Provider, apiKey, opts...)
	if err != nil {
		return nil, err
	}
	return generate.NewClient(model), nil
}

func openStore(c *config.Config) (store.Store, error) {
	return store.NewStore(c.StoreDriver, store.WithDSN(c.DatabaseURL))
}

// addUserFlag registers --user, falling back to the defaults file
func addUserFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("user", "u", "", "User ID that owns saved content (defaults to user_id from content-gen.yml)")
}

func resolveUser(cmd *cobra.Command) string {
	user, _ := cmd.Flags().GetString("user")
	if user == "" {
		user = defaults.UserID
	}
	return user
}

// saveRecord persists a generated result when --save is set
func saveRecord(cmd *cobra.Command, build func(user string) (store.SavedContent, error)) error {
	save, _ := cmd.Flags().GetBool("save")
	if !save {
		return nil
	}

	user := resolveUser(cmd)
	if user == "" {
		return errMissingUser
	}

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	record, err := build(user)
	if err != nil {
		return err
	}
	if err := st.SaveContent(record); err != nil {
		return err
	}

	cmd.PrintErrf("Saved as %s\n", record.ID)
	return nil
}
