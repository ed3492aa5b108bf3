/*
Minimal client for Mastodon-compatible federated social network APIs.

[Client] wraps request construction and dispatch for one API host: URL
composition under the api/ namespace, bearer-token auth, argument encoding
as query strings, JSON bodies, or multipart form data, optional
Idempotency-Key derivation for status posts, and JSON response decoding.
[Client.Do] is the generic entry point; [Client.Get], [Client.Post], and
[Client.PostStatus] are thin wrappers over it. [Client.RequestBearerToken]
performs the final code-for-token OAuth exchange.

Responses are returned as [encoding/json.RawMessage] without schema
validation, and HTTP status codes are not interpreted: callers receive
whatever JSON the server sent, including error payloads. This package does
not retry, paginate, or persist tokens; callers own those policies.
*/
package mastodon
