// Package bundler implements the gobokeh-bundle command: resolve an asset
// bundle for a deployment mode and print it as JSON, an HTML head snippet,
// or a complete page. It can also extract the bundled assets to a
// directory so the local modes have something to point at.
package bundler

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/gobokeh/gobokeh/internal/assets"
	"github.com/gobokeh/gobokeh/internal/cli"
	"github.com/gobokeh/gobokeh/internal/htmlpage"
	"github.com/gobokeh/gobokeh/internal/resources"
)

// BundleHandler implements cli.CommandHandler for the bundle command.
type BundleHandler struct {
	stdout io.Writer
}

// NewBundleHandler creates a new bundle command handler writing to stdout.
// A nil writer means os.Stdout.
func NewBundleHandler(stdout io.Writer) *BundleHandler {
	if stdout == nil {
		stdout = os.Stdout
	}
	return &BundleHandler{stdout: stdout}
}

// Start resolves and prints the bundle described by the configuration.
func (h *BundleHandler) Start(config cli.Configurable) error {
	cfg, ok := config.(*Config)
	if !ok {
		return fmt.Errorf("invalid config type for bundle command")
	}

	if cfg.ExtractTo != "" {
		if err := assets.ExtractTo(cfg.ExtractTo); err != nil {
			return fmt.Errorf("failed to extract assets to %s: %w", cfg.ExtractTo, err)
		}
		log.Printf("extracted bundled assets to %s", cfg.ExtractTo)
		return nil
	}

	mode, err := resources.FromString(cfg.Mode)
	if err != nil {
		return err
	}
	mode.RootDir = cfg.Root

	refs, err := buildRefs(cfg)
	if err != nil {
		return err
	}

	bundle, err := resources.Resolve(mode, refs)
	if err != nil {
		return err
	}

	return h.write(cfg, mode, bundle)
}

// buildRefs translates the command flags into model references.
func buildRefs(cfg *Config) ([]resources.ModelRef, error) {
	refs := []resources.ModelRef{resources.PlotRef()}
	if cfg.Widgets {
		refs = append(refs, resources.WidgetRef())
	}

	switch cfg.Custom {
	case "":
	case "precompiled":
		refs = append(refs, resources.CustomRef(false))
	case "compiled":
		refs = append(refs, resources.CustomRef(true))
	default:
		return nil, fmt.Errorf("unknown custom model kind %q (want precompiled or compiled)", cfg.Custom)
	}

	return refs, nil
}

type refJSON struct {
	Kind    string `json:"kind"`
	Content string `json:"content"`
}

type bundleJSON struct {
	Mode    string    `json:"mode"`
	Scripts []refJSON `json:"scripts"`
	Styles  []refJSON `json:"styles"`
}

func (h *BundleHandler) write(cfg *Config, mode resources.Mode, bundle *resources.Bundle) error {
	switch cfg.Format {
	case FormatJSON:
		return h.writeJSON(cfg, mode, bundle)
	case FormatHTML:
		_, err := fmt.Fprint(h.stdout, htmlpage.HeadTags(bundle))
		return err
	case FormatPage:
		page, err := htmlpage.Render(htmlpage.PageData{
			Title: cfg.Title,
			Head:  htmlpage.HeadTags(bundle),
		})
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(h.stdout, page)
		return err
	default:
		return fmt.Errorf("unknown output format %q (want json, html, or page)", cfg.Format)
	}
}

// writeJSON prints the bundle as JSON, pretty-printed when the mode
// carries the development indent.
func (h *BundleHandler) writeJSON(cfg *Config, mode resources.Mode, bundle *resources.Bundle) error {
	out := bundleJSON{
		Mode:    cfg.Mode,
		Scripts: toRefJSON(bundle.Scripts),
		Styles:  toRefJSON(bundle.Styles),
	}

	var data []byte
	var err error
	if mode.Indent > 0 {
		data, err = json.MarshalIndent(out, "", strings.Repeat(" ", mode.Indent))
	} else {
		data, err = json.Marshal(out)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal bundle: %w", err)
	}

	_, err = fmt.Fprintln(h.stdout, string(data))
	return err
}

func toRefJSON(refs []resources.Ref) []refJSON {
	out := make([]refJSON, 0, len(refs))
	for _, ref := range refs {
		out = append(out, refJSON{Kind: ref.Kind.String(), Content: ref.Content})
	}
	return out
}
