package vine

import (
	"context"
	"fmt"
	"net/url"
)

// Search returns posts tagged with the given tag.
func (c *Client) Search(ctx context.Context, tag string, opts Options) (Result, error) {
	if tag == "" {
		return Result{}, fmt.Errorf("%w: you must specify a tag", ErrInvalidArgument)
	}
	return c.get(ctx, "timelines/tags/"+url.PathEscape(tag), opts)
}

// Popular returns the popular timeline.
func (c *Client) Popular(ctx context.Context, opts Options) (Result, error) {
	return c.get(ctx, "timelines/popular", opts)
}

// Promoted returns the promoted timeline.
func (c *Client) Promoted(ctx context.Context, opts Options) (Result, error) {
	return c.get(ctx, "timelines/promoted", opts)
}

// Timeline returns the authenticated user's home timeline.
func (c *Client) Timeline(ctx context.Context, opts Options) (Result, error) {
	if !c.IsAuthenticated() {
		return Result{}, ErrAuthRequired
	}
	return c.get(ctx, "timelines/graph", opts)
}

// Likes returns the posts the authenticated user has liked.
func (c *Client) Likes(ctx context.Context, opts Options) (Result, error) {
	if !c.IsAuthenticated() {
		return Result{}, ErrAuthRequired
	}
	return c.UserLikes(ctx, "me", opts)
}

// Following returns the users the given user follows.
func (c *Client) Following(ctx context.Context, userID string, opts Options) (Result, error) {
	if !c.IsAuthenticated() {
		return Result{}, ErrAuthRequired
	}
	if userID == "" {
		return Result{}, fmt.Errorf("%w: you must specify a user id", ErrInvalidArgument)
	}
	return c.get(ctx, "users/"+url.PathEscape(userID)+"/following", opts)
}

// Followers returns the given user's followers.
func (c *Client) Followers(ctx context.Context, userID string, opts Options) (Result, error) {
	if !c.IsAuthenticated() {
		return Result{}, ErrAuthRequired
	}
	if userID == "" {
		return Result{}, fmt.Errorf("%w: you must specify a user id", ErrInvalidArgument)
	}
	return c.get(ctx, "users/"+url.PathEscape(userID)+"/followers", opts)
}

// UserProfile returns a user's profile. Numeric ids route to the account
// profile endpoint, anything else to the vanity endpoint.
func (c *Client) UserProfile(ctx context.Context, userID string) (Result, error) {
	if userID == "" {
		return Result{}, fmt.Errorf("%w: you must specify a user id", ErrInvalidArgument)
	}
	if numericID(userID) {
		return c.get(ctx, "users/profiles/"+url.PathEscape(userID), nil)
	}
	return c.get(ctx, "users/profiles/vanity/"+url.PathEscape(userID), nil)
}

// UserTimeline returns the given user's posts.
func (c *Client) UserTimeline(ctx context.Context, userID string, opts Options) (Result, error) {
	if userID == "" {
		return Result{}, fmt.Errorf("%w: you must specify a user id", ErrInvalidArgument)
	}
	return c.get(ctx, "timelines/users/"+url.PathEscape(userID), opts)
}

// UserLikes returns the posts the given user has liked.
func (c *Client) UserLikes(ctx context.Context, userID string, opts Options) (Result, error) {
	if userID == "" {
		return Result{}, fmt.Errorf("%w: you must specify a user id", ErrInvalidArgument)
	}
	return c.get(ctx, "timelines/users/"+url.PathEscape(userID)+"/likes", opts)
}

// SinglePost returns one post. Numeric ids route to the post endpoint,
// shortcodes to the shortcode endpoint. When the API answers with a
// sequence, the first element is returned as the single record; an
// empty sequence yields the failure envelope.
func (c *Client) SinglePost(ctx context.Context, postID string) (Result, error) {
	if postID == "" {
		return Result{}, fmt.Errorf("%w: you must specify a post id", ErrInvalidArgument)
	}

	endpoint := "timelines/posts/" + url.PathEscape(postID)
	if !numericID(postID) {
		endpoint = "timelines/posts/s/" + url.PathEscape(postID)
	}

	result, err := c.get(ctx, endpoint, nil)
	if err != nil {
		return Result{}, err
	}
	if result.IsList() {
		if len(result.Records) == 0 {
			return failureResult(), nil
		}
		return Result{Record: result.Records[0]}, nil
	}
	return result, nil
}

// SearchPosts returns posts matching a free-text query.
func (c *Client) SearchPosts(ctx context.Context, query string, opts Options) (Result, error) {
	if query == "" {
		return Result{}, fmt.Errorf("%w: you must specify a query", ErrInvalidArgument)
	}
	return c.get(ctx, "posts/search/"+url.PathEscape(query), opts)
}

// Popular is a one-shot helper: a fresh unauthenticated client fetching
// the popular timeline. No state survives the call.
func Popular(ctx context.Context, opts Options) (Result, error) {
	return NewClient().Popular(ctx, opts)
}

// UserProfile is a one-shot helper around Client.UserProfile.
func UserProfile(ctx context.Context, userID string) (Result, error) {
	return NewClient().UserProfile(ctx, userID)
}

// SinglePost is a one-shot helper around Client.SinglePost.
func SinglePost(ctx context.Context, postID string) (Result, error) {
	return NewClient().SinglePost(ctx, postID)
}
