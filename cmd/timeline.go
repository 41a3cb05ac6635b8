package cmd

import (
	"github.com/spf13/cobra"
)

// timelineCmd represents the timeline command
var timelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Show your home timeline (requires authentication)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := connect(cmd.Context()); err != nil {
			return err
		}
		result, err := client.Timeline(cmd.Context(), pageOptions())
		if err != nil {
			return err
		}
		return printPosts(result)
	},
}

// likesCmd represents the likes command
var likesCmd = &cobra.Command{
	Use:   "likes",
	Short: "Show the posts you have liked (requires authentication)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := connect(cmd.Context()); err != nil {
			return err
		}
		result, err := client.Likes(cmd.Context(), pageOptions())
		if err != nil {
			return err
		}
		return printPosts(result)
	},
}

func init() {
	addListFlags(timelineCmd, likesCmd)
	rootCmd.AddCommand(timelineCmd, likesCmd)
}
