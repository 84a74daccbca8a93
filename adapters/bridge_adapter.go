// bridge_adapter.go
// -----------------
// The bridge transport serves in-platform deployments. The host runtime
// supplies a request primitive that performs the actual network hop and
// auth; this transport only forwards the already-resolved logical call and
// normalizes what comes back. No socket, no credentials, no base URL.
package adapters

import (
	"context"
	"errors"

	"go.uber.org/zap"

	jiracloud "github.com/perigee-io/jira-cloud-sdk"
)

type BridgeTransport struct {
	invoke jiracloud.BridgeInvoker
	logger *zap.Logger
}

// NewBridgeTransport builds the bridge-mode transport from a Config carrying
// the host's invoker.
func NewBridgeTransport(cfg *jiracloud.Config) *BridgeTransport {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BridgeTransport{invoke: cfg.Bridge, logger: logger}
}

func (t *BridgeTransport) Execute(ctx context.Context, req *jiracloud.NormalizedRequest) (*jiracloud.NormalizedResponse, error) {
	if t.invoke == nil {
		return nil, errors.New("bridge invoker not configured")
	}

	resp, err := t.invoke(ctx, req)
	if err != nil {
		return nil, err
	}

	t.logger.Debug("bridge call",
		zap.String("method", req.Method),
		zap.String("endpoint", req.Endpoint),
		zap.Int("status", resp.StatusCode))
	return resp, nil
}
