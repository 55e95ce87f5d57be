// Package generative defines the boundary to the external generative-image
// service and the fallback orchestration around it. The render pipelines
// themselves never touch this package.
package generative

import (
	"context"
	"time"

	"garment-render/internal/logging"
	"garment-render/internal/render"
)

// Provider is the external generative-image service. Implementations live
// outside this module; the renderer only needs the call shape.
type Provider interface {
	// GenerateImage asks the service to render the flat with the given
	// options and returns the produced image bytes. An empty result with a
	// nil error means the service answered but produced no image.
	GenerateImage(ctx context.Context, flat []byte, opts render.Options) ([]byte, error)
}

// Service tries the provider first and runs the procedural fallback renderer
// when the call fails, times out, or returns no payload.
type Service struct {
	provider Provider
	timeout  time.Duration
}

// NewService wires a provider with a per-call timeout. A nil provider means
// every render uses the fallback.
func NewService(p Provider, timeout time.Duration) *Service {
	return &Service{provider: p, timeout: timeout}
}

// Render produces the final image for a flat. The returned bool reports
// whether the local fallback produced it.
func (s *Service) Render(ctx context.Context, flat []byte, opts render.Options) ([]byte, bool, error) {
	if s.provider != nil {
		callCtx := ctx
		if s.timeout > 0 {
			var cancel context.CancelFunc
			callCtx, cancel = context.WithTimeout(ctx, s.timeout)
			defer cancel()
		}

		img, err := s.provider.GenerateImage(callCtx, flat, opts)
		switch {
		case err != nil:
			logging.Warn("generative render failed, using fallback: %v", err)
		case len(img) == 0:
			logging.Warn("generative render returned no image, using fallback")
		default:
			return img, false, nil
		}
	}

	out, err := render.SyntheticFinal(flat, opts)
	if err != nil {
		return nil, true, err
	}
	return out, true, nil
}
