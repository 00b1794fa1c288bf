package databricks

import (
	"net/http"
	"net/url"
)

// authenticator attaches credentials to an outgoing request.
type authenticator interface {
	sign(req *http.Request)
}

// tokenAuth signs requests with a bearer token.
type tokenAuth struct {
	token string
}

func (a tokenAuth) sign(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+a.token)
}

// basicAuth signs requests with HTTP basic credentials.
type basicAuth struct {
	login    string
	password string
}

func (a basicAuth) sign(req *http.Request) {
	req.SetBasicAuth(a.login, a.password)
}

// resolveAuth picks the signing strategy and target host for a
// connection. A connection carrying a token uses bearer auth, honoring
// the host override when one is set; otherwise basic credentials and
// the default host are used.
func (c *Client) resolveAuth(conn *Connection) (authenticator, string) {
	if conn.Token != "" {
		c.logger.Debug("using token auth")
		host := conn.Host
		if conn.HostOverride != "" {
			host = conn.HostOverride
		}
		return tokenAuth{token: conn.Token}, parseHost(host)
	}
	c.logger.Debug("using basic auth")
	return basicAuth{login: conn.Login, password: conn.Password}, parseHost(conn.Host)
}

// parseHost is robust to improper connection settings in the host
// field. Users supply either a bare hostname or a full URL:
//
//	parseHost("https://xx.cloud.databricks.com") == "xx.cloud.databricks.com"
//	parseHost("xx.cloud.databricks.com") == "xx.cloud.databricks.com"
//
// When the value parses as a URL with a host component, the host is
// extracted (scheme and path stripped, any port kept); otherwise the
// value is used verbatim.
func parseHost(host string) string {
	u, err := url.Parse(host)
	if err == nil && u.Host != "" {
		return u.Host
	}
	return host
}
