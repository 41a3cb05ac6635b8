package cmd

import (
	"github.com/spf13/cobra"
)

// popularCmd represents the popular command
var popularCmd = &cobra.Command{
	Use:   "popular",
	Short: "Show the popular timeline",
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := client.Popular(cmd.Context(), pageOptions())
		if err != nil {
			return err
		}
		return printPosts(result)
	},
}

// promotedCmd represents the promoted command
var promotedCmd = &cobra.Command{
	Use:   "promoted",
	Short: "Show the promoted timeline",
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := client.Promoted(cmd.Context(), pageOptions())
		if err != nil {
			return err
		}
		return printPosts(result)
	},
}

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <tag>",
	Short: "Search posts by tag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := client.Search(cmd.Context(), args[0], pageOptions())
		if err != nil {
			return err
		}
		return printPosts(result)
	},
}

// searchPostsCmd represents the search-posts command
var searchPostsCmd = &cobra.Command{
	Use:   "search-posts <query>",
	Short: "Search posts by free-text query",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := client.SearchPosts(cmd.Context(), args[0], pageOptions())
		if err != nil {
			return err
		}
		return printPosts(result)
	},
}

// postCmd represents the post command
var postCmd = &cobra.Command{
	Use:   "post <id>",
	Short: "Show a single post by id or shortcode",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := client.SinglePost(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printRecord(result)
	},
}

func init() {
	addListFlags(popularCmd, promotedCmd, searchCmd, searchPostsCmd)
	rootCmd.AddCommand(popularCmd, promotedCmd, searchCmd, searchPostsCmd, postCmd)
}
