package services

import (
	"context"
	"fmt"
	"time"

	"github.com/yigit/registrar/internal/pkg/listing"
	"github.com/yigit/registrar/internal/pkg/metrics"
)

// ListOptions bounds list queries and records their cost.
type ListOptions struct {
	Timeout time.Duration
	Metrics *metrics.Metrics
}

func runList[T any](ctx context.Context, opts ListOptions, entity string, fn func(context.Context) (*listing.Result[T], error)) (*listing.Result[T], error) {
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	start := time.Now()
	res, err := fn(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing %ss: %w", entity, err)
	}

	opts.Metrics.ObserveList(entity, time.Since(start), res.Total)
	return res, nil
}
