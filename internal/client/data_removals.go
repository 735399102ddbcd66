package client

import (
	"context"
	"fmt"
	"time"

	"github.com/fivetwenty-io/postmark-client/internal/constants"
	"github.com/fivetwenty-io/postmark-client/internal/http"
	"github.com/fivetwenty-io/postmark-client/pkg/postmark"
)

const dataRemovalsPath = "/data-removals"

// DataRemovalsClient implements postmark.DataRemovalsClient.
type DataRemovalsClient struct {
	httpClient   *http.Client
	pollInterval time.Duration
	pollTimeout  time.Duration
}

// NewDataRemovalsClient creates a new data removals client.
func NewDataRemovalsClient(httpClient *http.Client) *DataRemovalsClient {
	return &DataRemovalsClient{
		httpClient:   httpClient,
		pollInterval: constants.DefaultPollInterval,
		pollTimeout:  constants.DefaultDataRemovalPollTimeout,
	}
}

// Request implements postmark.DataRemovalsClient.Request.
func (c *DataRemovalsClient) Request(ctx context.Context, request *postmark.DataRemovalRequest) (*postmark.DataRemovalStatus, error) {
	resp, err := c.httpClient.Post(ctx, dataRemovalsPath, request)
	if err != nil {
		return nil, fmt.Errorf("requesting data removal: %w", err)
	}

	return decodeJSON[postmark.DataRemovalStatus](resp, "data removal status")
}

// Get implements postmark.DataRemovalsClient.Get.
func (c *DataRemovalsClient) Get(ctx context.Context, id int) (*postmark.DataRemovalStatus, error) {
	resp, err := c.httpClient.Get(ctx, idPath(dataRemovalsPath, int64(id)), nil)
	if err != nil {
		return nil, fmt.Errorf("getting data removal status: %w", err)
	}

	return decodeJSON[postmark.DataRemovalStatus](resp, "data removal status")
}

// PollUntilComplete implements postmark.DataRemovalsClient.PollUntilComplete.
// It polls the removal until it leaves the Pending state.
func (c *DataRemovalsClient) PollUntilComplete(ctx context.Context, id int) (*postmark.DataRemovalStatus, error) {
	pollCtx, cancel := context.WithTimeout(ctx, c.pollTimeout)
	defer cancel()

	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	status, err := c.Get(pollCtx, id)
	if err != nil {
		return nil, fmt.Errorf("getting data removal status: %w", err)
	}

	for status.Status == constants.DataRemovalStatusPending {
		select {
		case <-pollCtx.Done():
			// last known state is returned with the timeout
			return status, fmt.Errorf("timeout waiting for data removal: %w", pollCtx.Err())
		case <-ticker.C:
			next, err := c.Get(pollCtx, id)
			if err != nil {
				if pollCtx.Err() != nil {
					return status, fmt.Errorf("timeout waiting for data removal: %w", pollCtx.Err())
				}

				return nil, fmt.Errorf("getting data removal status: %w", err)
			}

			status = next
		}
	}

	if status.Status != constants.DataRemovalStatusDone {
		return status, fmt.Errorf("%w: status %q", constants.ErrDataRemovalFailed, status.Status)
	}

	return status, nil
}
