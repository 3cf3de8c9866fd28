// Package moviesdk is a Go client for the movies API.
//
// Public catalog reads go through SDKClient directly. Anything that needs a
// bearer token goes through a Session, obtained with Login:
//
//	client := moviesdk.NewSDKClient("http://localhost:8080")
//	sess, err := client.Login(ctx, "marco", "marco123")
//	if err != nil {
//		// *moviesdk.APIError carries the status code and detail
//	}
//	me, err := sess.Me(ctx)
//
// Tokens are short-lived and cannot be refreshed; log in again when a call
// fails with IsUnauthorized.
package moviesdk
