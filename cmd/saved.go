package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/birmacher/content-gen/store"
	"github.com/spf13/cobra"
)

var savedCmd = &cobra.Command{
	Use:   "saved",
	Short: "Review saved content",
}

var savedListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved content, newest first",
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

		list, err := st.ListContent(user)
		if err != nil {
			return err
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			if list == nil {
				list = []store.SavedContent{}
			}
			return printJSON(cmd, list)
		}
		if len(list) == 0 {
			cmd.PrintErrln("No saved content yet.")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTYPE\tCREATED\tCONTENT")
		for _, c := range list {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", c.ID, c.ContentType, c.CreatedAt.Local().Format("2006-01-02 15:04"), preview(c))
		}
		return w.Flush()
	},
}

var savedDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a saved item",
	Args:  cobra.ExactArgs(1),
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

		record, err := st.GetContent(args[0])
		if err != nil {
			return err
		}
		if record.UserID != user {
			return store.ErrNotFound
		}
		if err := st.DeleteContent(args[0]); err != nil {
			return err
		}

		cmd.PrintErrln("Content deleted.")
		return nil
	},
}

// preview renders a record on one line
func preview(c store.SavedContent) string {
	text := c.Content
	if c.ContentType == store.ContentTypeThread {
		if items, err := c.ThreadItems(); err == nil && len(items) > 0 {
			text = fmt.Sprintf("[%d] %s", len(items), items[0])
		}
	}
	text = strings.Join(strings.Fields(text), " ")
	if runes := []rune(text); len(runes) > 60 {
		text = string(runes[:57]) + "..."
	}
	return text
}

func init() {
	addUserFlag(savedListCmd)
	savedListCmd.Flags().Bool("json", false, "Print the records as JSON")
	addUserFlag(savedDeleteCmd)

	savedCmd.AddCommand(savedListCmd, savedDeleteCmd)
	rootCmd.AddCommand(savedCmd)
}
