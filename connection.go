package databricks

import "context"

// Connection holds the material needed to reach a workspace. It is
// supplied by a [ConnectionProvider] and only ever read by this client.
type Connection struct {
	// Host is the workspace hostname, with or without a scheme.
	// "https://xx.cloud.databricks.com" and "xx.cloud.databricks.com"
	// are both accepted.
	Host string

	// Token is a personal access token. When set, requests carry an
	// "Authorization: Bearer <token>" header and Login/Password are
	// ignored.
	Token string

	// HostOverride, when set together with Token, replaces Host as the
	// request target. Some credential stores keep the token's workspace
	// next to the token rather than in the connection's host field.
	HostOverride string

	// Login and Password are used for HTTP basic auth when Token is
	// empty.
	Login    string
	Password string
}

// ConnectionProvider supplies the connection for an API call.
//
// The client resolves the connection fresh on every call and caches
// nothing, so a provider backed by a credential store can rotate tokens
// at any time. Implementations must be safe for concurrent use.
type ConnectionProvider interface {
	Connection(ctx context.Context) (*Connection, error)
}

// StaticConnection is a ConnectionProvider that always returns the same
// connection. Use it when credentials are fixed for the process
// lifetime:
//
//	client, err := databricks.NewClient(databricks.StaticConnection{
//	    Host:  "xx.cloud.databricks.com",
//	    Token: token,
//	})
type StaticConnection Connection

// Connection implements [ConnectionProvider].
func (s StaticConnection) Connection(ctx context.Context) (*Connection, error) {
	conn := Connection(s)
	return &conn, nil
}
