package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Shuttlerock/redvine/filter"
	"github.com/Shuttlerock/redvine/vine"
)

// failureMessage renders the envelope failure for humans.
func failureMessage(result vine.Result) string {
	if msg := result.Message(); msg != "" {
		return msg
	}
	return "the API reported a failure or the request timed out"
}

// printJSON dumps the raw envelope, for --json.
func printJSON(result vine.Result) error {
	var payload any = result.Record
	if result.IsList() {
		payload = result.Records
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

// postRecords extracts the post list from either envelope shape.
func postRecords(result vine.Result) []vine.Record {
	if result.IsList() {
		return result.Records
	}
	return result.Record.Records("data", "records")
}

// printPosts renders a list response, applying the --filter expression
// when one is set.
func printPosts(result vine.Result) error {
	if !result.Success() {
		return fmt.Errorf("request failed: %s", failureMessage(result))
	}
	if jsonOutput {
		return printJSON(result)
	}

	posts := postRecords(result)
	if filterExpr != "" {
		f, err := filter.Compile(filterExpr)
		if err != nil {
			return err
		}
		if posts, err = f.Apply(posts); err != nil {
			return err
		}
	}

	if len(posts) == 0 {
		fmt.Println("no posts")
		return nil
	}

	for _, post := range posts {
		username := post.String("username")
		if username == "" {
			username = post.String("user", "username")
		}
		fmt.Printf("%s  %s\n", username, post.String("description"))
		fmt.Printf("    likes %d  comments %d  reposts %d\n",
			post.Int("likes", "count"),
			post.Int("comments", "count"),
			post.Int("reposts", "count"),
		)
		if videoURL := post.String("videoUrl"); videoURL != "" {
			fmt.Printf("    %s\n", videoURL)
		}
	}

	return nil
}

// printUsers renders a social-graph response (following/followers).
func printUsers(result vine.Result) error {
	if !result.Success() {
		return fmt.Errorf("request failed: %s", failureMessage(result))
	}
	if jsonOutput {
		return printJSON(result)
	}

	users := result.Record.Records("data", "records")
	if result.IsList() {
		users = result.Records
	}
	if len(users) == 0 {
		fmt.Println("no users")
		return nil
	}

	for _, user := range users {
		fmt.Printf("%-20s %v\n", user.String("username"), user.Get("userId"))
	}

	return nil
}

// printRecord renders a single-record response (profile, post).
func printRecord(result vine.Result) error {
	if !result.Success() {
		return fmt.Errorf("request failed: %s", failureMessage(result))
	}

	// Single records vary too much per endpoint for a fixed layout;
	// pretty JSON is the readable form.
	return printJSON(result)
}
