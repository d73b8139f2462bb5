package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/birmacher/content-gen/generate"
	"github.com/birmacher/content-gen/store"
	"github.com/spf13/cobra"
)

var errMissingUser = errors.New("--save needs a user: pass --user or set user_id in content-gen.yml")

// checkSaveUser rejects --save without a user before anything is generated
func checkSaveUser(cmd *cobra.Command, args []string) error {
	save, _ := cmd.Flags().GetBool("save")
	if save && resolveUser(cmd) == "" {
		return errMissingUser
	}
	return nil
}

func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("save", false, "Save the generated content")
	cmd.Flags().Bool("json", false, "Print the result as JSON")
	addUserFlag(cmd)
}

var postCmd = &cobra.Command{
	Use:     "post <topic>",
	Short:   "Generate a single post",
	Long:    `Generate a single short post about the given topic.`,
	Args:    cobra.MinimumNArgs(1),
	PreRunE: checkSaveUser,
	RunE: func(cmd *cobra.Command, args []string) error {
		topic := strings.TrimSpace(strings.Join(args, " "))
		if topic == "" {
			return fmt.Errorf("%w: please enter a topic", generate.ErrInvalidInput)
		}

		client, err := newGenerator(cfg)
		if err != nil {
			return err
		}

		post, err := client.GenerateSinglePost(cmd.Context(), topic)
		if err != nil {
			return err
		}
		if post == "" {
			cmd.PrintErrln("The model returned no content, try again.")
			return nil
		}

		if err := printText(cmd, post); err != nil {
			return err
		}
		return saveRecord(cmd, func(user string) (store.SavedContent, error) {
			return store.NewPostRecord(user, topic, post), nil
		})
	},
}

var threadCmd = &cobra.Command{
	Use:   "thread <topic>",
	Short: "Generate a multi-part thread",
	Long: fmt.Sprintf(`Generate a thread of connected posts about the given topic.
The length is clamped to %d-%d posts.`, generate.MinThreadLength, generate.MaxThreadLength),
	Args:    cobra.MinimumNArgs(1),
	PreRunE: checkSaveUser,
	RunE: func(cmd *cobra.Command, args []string) error {
		topic := strings.TrimSpace(strings.Join(args, " "))
		if topic == "" {
			return fmt.Errorf("%w: please enter a topic", generate.ErrInvalidInput)
		}

		length := defaults.ThreadLength
		if cmd.Flags().Changed("length") {
			length, _ = cmd.Flags().GetInt("length")
		}
		length = generate.ClampThreadLength(length)

		client, err := newGenerator(cfg)
		if err != nil {
			return err
		}

		items, err := client.GenerateThread(cmd.Context(), topic, length)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			cmd.PrintErrln("The model returned no content, try again.")
			return nil
		}

		if err := printThread(cmd, items); err != nil {
			return err
		}
		return saveRecord(cmd, func(user string) (store.SavedContent, error) {
			return store.NewThreadRecord(user, topic, items)
		})
	},
}

var bioCmd = &cobra.Command{
	Use:     "bio",
	Short:   "Generate a profile bio",
	Long:    `Generate a short profile bio from an introduction, a niche and a current role.`,
	Args:    cobra.NoArgs,
	PreRunE: checkSaveUser,
	RunE: func(cmd *cobra.Command, args []string) error {
		intro, _ := cmd.Flags().GetString("intro")
		niche, _ := cmd.Flags().GetString("niche")
		role, _ := cmd.Flags().GetString("role")
		intro, niche, role = strings.TrimSpace(intro), strings.TrimSpace(niche), strings.TrimSpace(role)
		if intro == "" || niche == "" || role == "" {
			return fmt.Errorf("%w: --intro, --niche and --role are all required", generate.ErrInvalidInput)
		}

		client, err := newGenerator(cfg)
		if err != nil {
			return err
		}

		bio, err := client.GenerateBio(cmd.Context(), intro, niche, role)
		if err != nil {
			return err
		}
		if bio == "" {
			cmd.PrintErrln("The model returned no content, try again.")
			return nil
		}

		if err := printText(cmd, bio); err != nil {
			return err
		}
		return saveRecord(cmd, func(user string) (store.SavedContent, error) {
			return store.NewBioRecord(user, store.BioPrompt{Intro: intro, Niche: niche, WhatTheyDo: role}, bio)
		})
	},
}

func printText(cmd *cobra.Command, text string) error {
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return printJSON(cmd, map[string]string{"content": text})
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), text)
	return err
}

func printThread(cmd *cobra.Command, items []string) error {
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return printJSON(cmd, map[string][]string{"items": items})
	}
	out := cmd.OutOrStdout()
	for i, item := range items {
		if _, err := fmt.Fprintf(out, "%d/%d %s\n\n", i+1, len(items), item); err != nil {
			return err
		}
	}
	return nil
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func init() {
	addOutputFlags(postCmd)

	addOutputFlags(threadCmd)
	threadCmd.Flags().IntP("length", "n", 0, "Number of posts in the thread (defaults to thread_length from content-gen.yml, or 5)")

	addOutputFlags(bioCmd)
	bioCmd.Flags().String("intro", "", "A short introduction")
	bioCmd.Flags().String("niche", "", "Niche or expertise")
	bioCmd.Flags().String("role", "", "Current role or achievements")

	rootCmd.AddCommand(postCmd, threadCmd, bioCmd)
}
