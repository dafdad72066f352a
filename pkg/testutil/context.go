package testutil

import (
	"context"
	"time"

	"roster/pkg/requestcontext"
)

// AtTime returns a context whose request clock reads now.
func AtTime(now time.Time) context.Context {
	return requestcontext.WithTime(context.Background(), now)
}

// OnBehalfOf tags ctx the way the request middleware does for a call made by
// actor under requestID.
func OnBehalfOf(ctx context.Context, actor, requestID string) context.Context {
	return requestcontext.WithRequestID(requestcontext.WithActor(ctx, actor), requestID)
}
