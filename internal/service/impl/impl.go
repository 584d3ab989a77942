// Package impl is implementation of service interfaces.
package impl

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"

	"github.com/Decentr-net/kudos/internal/service"
)

// nolint:gochecknoglobals
var (
	log    = logrus.WithField("layer", "service").WithField("package", "impl")
	tracer = otel.Tracer("github.com/Decentr-net/kudos/internal/service/impl")
)

func unavailable(msg string, err error) error {
	return fmt.Errorf("%w: %s: %w", service.ErrUnavailable, msg, err)
}
