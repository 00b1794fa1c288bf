package databricks

import "context"

// Library describes a single library to install on a cluster, keyed by
// library type as the libraries API expects:
//
//	databricks.Library{"jar": "dbfs:/mnt/libraries/library.jar"}
//	databricks.Library{"pypi": map[string]any{"package": "simplejson"}}
type Library map[string]any

// InstallLibraries installs libraries on the cluster via
// api/2.0/libraries/install. Installation is asynchronous; completion is
// reported through the cluster's library status, not this call.
func (c *Client) InstallLibraries(ctx context.Context, clusterID string, libraries []Library) error {
	return c.doAPICall(ctx, installLibrariesEndpoint, libraryParams(clusterID, libraries), nil)
}

// UninstallLibraries marks libraries for removal via
// api/2.0/libraries/uninstall. Libraries are only removed when the
// cluster restarts.
func (c *Client) UninstallLibraries(ctx context.Context, clusterID string, libraries []Library) error {
	return c.doAPICall(ctx, uninstallLibrariesEndpoint, libraryParams(clusterID, libraries), nil)
}

func libraryParams(clusterID string, libraries []Library) map[string]any {
	return map[string]any{
		"cluster_id": clusterID,
		"libraries":  libraries,
	}
}
