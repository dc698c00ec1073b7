// Remote endpoint status reporting
package llm

import "time"

// DefaultHealthCheckInterval defines how often health checks should be
// refreshed to avoid excessive API calls to the remote service
const DefaultHealthCheckInterval = 5 * time.Minute

// RemoteInfo represents information about a remote endpoint
type RemoteInfo struct {
	Name   string
	Status *RemoteStatus
}

// RemoteStatus represents the health of a remote endpoint
type RemoteStatus struct {
	Healthy     *bool
	LastChecked *time.Time
}
