// Package vine provides a client for the Vine HTTP API.
//
// The client authenticates a user session and issues signed requests
// against the timeline, search, profile and social-graph endpoints,
// normalizing every response into a uniform envelope.
//
// # Usage
//
// Create a client, connect, and call any of the read methods:
//
//	client := vine.NewClient(vine.WithLogger(logger))
//	token, err := client.Connect(ctx, vine.Credentials{
//		Email:    "user@example.com",
//		Password: "secret",
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	result, err := client.Search(ctx, "cat", vine.Options{"page": 2})
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, post := range result.Record.Records("data", "records") {
//		fmt.Println(post.String("videoUrl"))
//	}
//
// # Error Handling
//
// Read methods never return an error for API-reported failures or
// transport timeouts; both are folded into the returned Result, whose
// Success and IsError methods expose a uniform discriminant. The only
// errors a read method returns are the two precondition failures,
// raised before any network call:
//
//   - ErrInvalidArgument: a required tag, query or identifier is missing
//   - ErrAuthRequired: a protected method was called before Connect
//
// plus non-timeout transport faults, which propagate as-is.
//
// Connect is the exception: it returns *ConnectionError when the API
// rejects the credentials (suppressible via Credentials.SkipError) and
// does not normalize transport faults.
package vine
