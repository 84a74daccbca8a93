package jiracloud

import "context"

// Transport performs the single network (or bridge) hop for one dispatched
// request. Implementations must be safe for concurrent use: the dispatcher
// issues calls from any number of goroutines with no coordination between
// them.
type Transport interface {
	Execute(ctx context.Context, req *NormalizedRequest) (*NormalizedResponse, error)
}

// BridgeInvoker is the host-provided request primitive used in bridge mode.
// The host routes the logical call internally and performs auth itself; the
// SDK never touches a network socket in this mode.
type BridgeInvoker func(ctx context.Context, req *NormalizedRequest) (*NormalizedResponse, error)
