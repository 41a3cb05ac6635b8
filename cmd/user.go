package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Shuttlerock/redvine/vine"
)

// profileCmd represents the profile command
var profileCmd = &cobra.Command{
	Use:   "profile <id>",
	Short: "Show a user profile by account id or vanity name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := client.UserProfile(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printRecord(result)
	},
}

// userTimelineCmd represents the user-timeline command
var userTimelineCmd = &cobra.Command{
	Use:   "user-timeline <id>",
	Short: "Show a user's posts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := client.UserTimeline(cmd.Context(), args[0], pageOptions())
		if err != nil {
			return err
		}
		return printPosts(result)
	},
}

// userLikesCmd represents the user-likes command
var userLikesCmd = &cobra.Command{
	Use:   "user-likes <id>",
	Short: "Show the posts a user has liked",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := client.UserLikes(cmd.Context(), args[0], pageOptions())
		if err != nil {
			return err
		}
		return printPosts(result)
	},
}

// followingCmd represents the following command
var followingCmd = &cobra.Command{
	Use:   "following <id>",
	Short: "Show the users someone follows (requires authentication)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := connect(cmd.Context()); err != nil {
			return err
		}
		result, err := client.Following(cmd.Context(), args[0], pageOptions())
		if err != nil {
			return err
		}
		return printUsers(result)
	},
}

// followersCmd represents the followers command
var followersCmd = &cobra.Command{
	Use:   "followers <id>",
	Short: "Show someone's followers (requires authentication)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := connect(cmd.Context()); err != nil {
			return err
		}
		result, err := client.Followers(cmd.Context(), args[0], pageOptions())
		if err != nil {
			return err
		}
		return printUsers(result)
	},
}

// userCmd represents the user overview command
var userCmd = &cobra.Command{
	Use:   "user <id>",
	Short: "Show a combined overview of a user: profile, recent posts, recent likes",
	Args:  cobra.ExactArgs(1),
	RunE:  runUserOverview,
}

func runUserOverview(cmd *cobra.Command, args []string) error {
	userID := args[0]

	var profile, timeline, likes vine.Result

	// The three reads are independent; fetch them concurrently.
	g, ctx := errgroup.WithContext(cmd.Context())
	g.Go(func() error {
		var err error
		profile, err = client.UserProfile(ctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		timeline, err = client.UserTimeline(ctx, userID, vine.Options{"page": 1})
		return err
	})
	g.Go(func() error {
		var err error
		likes, err = client.UserLikes(ctx, userID, vine.Options{"page": 1})
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	if !profile.Success() {
		return fmt.Errorf("profile lookup failed: %s", failureMessage(profile))
	}

	fmt.Printf("%s (%s)\n", profile.Record.String("data", "username"), userID)
	if desc := profile.Record.String("data", "description"); desc != "" {
		fmt.Println(desc)
	}
	fmt.Printf("followers: %d  following: %d  posts: %d  likes: %d\n\n",
		profile.Record.Int("data", "followerCount"),
		profile.Record.Int("data", "followingCount"),
		profile.Record.Int("data", "postCount"),
		profile.Record.Int("data", "likeCount"),
	)

	fmt.Println("Recent posts:")
	if err := printPosts(timeline); err != nil {
		logger.Warn().Err(err).Msg("Could not list recent posts")
	}

	fmt.Println("\nRecent likes:")
	if err := printPosts(likes); err != nil {
		logger.Warn().Err(err).Msg("Could not list recent likes")
	}

	return nil
}

func init() {
	addListFlags(userTimelineCmd, userLikesCmd, followingCmd, followersCmd)
	rootCmd.AddCommand(profileCmd, userTimelineCmd, userLikesCmd, followingCmd, followersCmd, userCmd)
}
