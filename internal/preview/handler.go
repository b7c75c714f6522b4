package preview

import (
	"fmt"

	"github.com/gobokeh/gobokeh/internal/cli"
	"github.com/gobokeh/gobokeh/internal/httpserver"
)

// PreviewHandler implements cli.CommandHandler for the preview server.
type PreviewHandler struct{}

// NewPreviewHandler creates a new preview command handler.
func NewPreviewHandler() *PreviewHandler {
	return &PreviewHandler{}
}

// Start starts the preview server with the given configuration.
func (h *PreviewHandler) Start(config cli.Configurable) error {
	cfg, ok := config.(*Config)
	if !ok {
		return fmt.Errorf("invalid config type for preview server")
	}

	srv, err := NewPreviewServer(cfg)
	if err != nil {
		return err
	}
	return httpserver.StartFromConfig(cfg, srv)
}
