package databricks

import "net/http"

// endpoint is one of the fixed (HTTP method, path) pairs this client
// supports. The set is defined below and never changes at runtime.
type endpoint struct {
	method string
	path   string
}

var (
	submitRunEndpoint = endpoint{http.MethodPost, "api/2.0/jobs/runs/submit"}
	runNowEndpoint    = endpoint{http.MethodPost, "api/2.0/jobs/run-now"}
	getRunEndpoint    = endpoint{http.MethodGet, "api/2.0/jobs/runs/get"}
	cancelRunEndpoint = endpoint{http.MethodPost, "api/2.0/jobs/runs/cancel"}

	restartClusterEndpoint   = endpoint{http.MethodPost, "api/2.0/clusters/restart"}
	startClusterEndpoint     = endpoint{http.MethodPost, "api/2.0/clusters/start"}
	terminateClusterEndpoint = endpoint{http.MethodPost, "api/2.0/clusters/delete"}

	installLibrariesEndpoint   = endpoint{http.MethodPost, "api/2.0/libraries/install"}
	uninstallLibrariesEndpoint = endpoint{http.MethodPost, "api/2.0/libraries/uninstall"}
)
