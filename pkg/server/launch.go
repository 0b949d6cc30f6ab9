package server

import (
	"context"

	"github.com/cubestats/analytics/pkg/config"
)

func Launch(ctx context.Context, cfg *config.Config) error {
	return launchServer(ctx, cfg)
}
