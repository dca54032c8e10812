package view_refresh

import (
	"context"
	"time"

	"storefront/pkg/logger"
)

type View interface {
	Poll(ctx context.Context) error
}

type ViewRefresh struct {
	log      logger.Logger
	view     View
	name     string
	interval time.Duration
}

func NewViewRefresh(log logger.Logger, view View, name string, interval time.Duration) *ViewRefresh {
	return &ViewRefresh{
		log:      log,
		view:     view,
		name:     name,
		interval: interval,
	}
}

func (v *ViewRefresh) TTL() time.Duration {
	return v.interval
}

func (v *ViewRefresh) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, v.interval)
	defer cancel()

	start := time.Now()
	err := v.view.Poll(ctxWithTimeout)

	v.log.With(
		logger.NewField("view", v.name),
		logger.NewField("elapsed", time.Since(start)),
	).Debug("view refreshed")

	return err
}

func (v *ViewRefresh) Info() string {
	return v.name + " view refresh"
}
