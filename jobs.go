package databricks

import "context"

// runResponse is the subset of the jobs API run payloads the client
// extracts fields from.
type runResponse struct {
	RunID      int64         `json:"run_id"`
	JobID      int64         `json:"job_id"`
	RunPageURL string        `json:"run_page_url"`
	State      *runStateJSON `json:"state"`
}

type runStateJSON struct {
	LifeCycleState string `json:"life_cycle_state"`
	ResultState    string `json:"result_state"`
	StateMessage   string `json:"state_message"`
}

// SubmitRun submits a one-time run via the api/2.0/jobs/runs/submit
// endpoint and returns its run id.
//
// runSpec is the request body for the submit endpoint: cluster spec,
// task, timeouts and so on, as documented by the jobs API.
func (c *Client) SubmitRun(ctx context.Context, runSpec map[string]any) (int64, error) {
	var resp runResponse
	if err := c.doAPICall(ctx, submitRunEndpoint, runSpec, &resp); err != nil {
		return 0, err
	}
	return resp.RunID, nil
}

// RunNow triggers a run of an existing job via the api/2.0/jobs/run-now
// endpoint and returns its run id.
//
// jobSpec is the request body for the run-now endpoint, carrying the
// job_id and any notebook, jar or python parameter overrides.
func (c *Client) RunNow(ctx context.Context, jobSpec map[string]any) (int64, error) {
	var resp runResponse
	if err := c.doAPICall(ctx, runNowEndpoint, jobSpec, &resp); err != nil {
		return 0, err
	}
	return resp.RunID, nil
}

// GetRunPageURL returns the URL of the run's page in the workspace UI.
func (c *Client) GetRunPageURL(ctx context.Context, runID int64) (string, error) {
	var resp runResponse
	if err := c.doAPICall(ctx, getRunEndpoint, runIDParams(runID), &resp); err != nil {
		return "", err
	}
	return resp.RunPageURL, nil
}

// GetJobID returns the id of the job the run belongs to.
func (c *Client) GetJobID(ctx context.Context, runID int64) (int64, error) {
	var resp runResponse
	if err := c.doAPICall(ctx, getRunEndpoint, runIDParams(runID), &resp); err != nil {
		return 0, err
	}
	return resp.JobID, nil
}

// GetRunState returns the current state of the run.
//
// The result state is empty while the run has not reached a terminal
// life-cycle state.
func (c *Client) GetRunState(ctx context.Context, runID int64) (RunState, error) {
	var resp runResponse
	if err := c.doAPICall(ctx, getRunEndpoint, runIDParams(runID), &resp); err != nil {
		return RunState{}, err
	}
	if resp.State == nil {
		return RunState{}, newError(CodeInvalidResponse, "run response is missing the state object", 0, nil)
	}
	return RunState{
		LifeCycleState: LifeCycleState(resp.State.LifeCycleState),
		ResultState:    resp.State.ResultState,
		StateMessage:   resp.State.StateMessage,
	}, nil
}

// CancelRun cancels the run.
func (c *Client) CancelRun(ctx context.Context, runID int64) error {
	return c.doAPICall(ctx, cancelRunEndpoint, runIDParams(runID), nil)
}

func runIDParams(runID int64) map[string]any {
	return map[string]any{"run_id": runID}
}
