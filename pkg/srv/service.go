package srv

import (
	"context"
	"errors"
	"fmt"

	"github.com/sandevgo/replkit/pkg/log"
)

type Service interface {
	Start(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

// Run starts every service in its own goroutine and blocks until ctx is done
// or the first service returns from Start. All services are then shut down in
// registration order. The error is the first Start failure joined with any
// shutdown failures.
func Run(ctx context.Context, services []Service) error {
	logger := log.FromCtx(ctx)
	if len(services) == 0 {
		return nil
	}

	finished := make(chan error, len(services))
	for _, service := range services {
		go func(service Service) {
			err := service.Start(ctx)
			if err != nil {
				err = fmt.Errorf("%T: %w", service, err)
			}
			finished <- err
		}(service)
	}

	var startErr error
	select {
	case <-ctx.Done():
	case startErr = <-finished:
		if startErr != nil {
			logger.Error().Err(startErr).Msg("service failed")
		}
	}

	errs := []error{startErr}
	for _, service := range services {
		if err := service.Shutdown(ctx); err != nil {
			logger.Error().Err(err).Msgf("%T failed to shutdown", service)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
