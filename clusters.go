package databricks

import "context"

// RestartCluster restarts the cluster via api/2.0/clusters/restart.
//
// clusterSpec is the request body, carrying at least the cluster_id.
func (c *Client) RestartCluster(ctx context.Context, clusterSpec map[string]any) error {
	return c.doAPICall(ctx, restartClusterEndpoint, clusterSpec, nil)
}

// StartCluster starts a terminated cluster via api/2.0/clusters/start.
func (c *Client) StartCluster(ctx context.Context, clusterSpec map[string]any) error {
	return c.doAPICall(ctx, startClusterEndpoint, clusterSpec, nil)
}

// TerminateCluster terminates the cluster via api/2.0/clusters/delete.
// The cluster is removed asynchronously once it stops.
func (c *Client) TerminateCluster(ctx context.Context, clusterSpec map[string]any) error {
	return c.doAPICall(ctx, terminateClusterEndpoint, clusterSpec, nil)
}
