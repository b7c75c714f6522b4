package resources

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/gobokeh/gobokeh/internal/assets"
)

const (
	scriptExt = "js"
	styleExt  = "css"
)

// resourceRootEnv overrides the search for an extracted asset directory.
const resourceRootEnv = "GOBOKEH_RESOURCE_ROOT"

// Resolve computes the ordered asset bundle for the given deployment mode
// and model references. Resolution is all or nothing: any lookup failure
// aborts, and no partial bundle is returned. Failures indicate broken
// packaging or a mode that cannot work in this installation, so callers
// should treat them as startup-time configuration errors.
func Resolve(mode Mode, refs []ModelRef) (*Bundle, error) {
	comps := selectComponents(refs)

	var bundle Bundle
	for _, comp := range comps {
		if !comp.HasScript {
			continue
		}
		ref, err := resolveAsset(mode, comp.Name, scriptExt)
		if err != nil {
			return nil, err
		}
		bundle.Scripts = append(bundle.Scripts, ref)
	}
	bundle.Scripts = append(bundle.Scripts, logLevelRef(mode))

	for _, comp := range comps {
		if !comp.HasStyle {
			continue
		}
		ref, err := resolveAsset(mode, comp.Name, styleExt)
		if err != nil {
			return nil, err
		}
		bundle.Styles = append(bundle.Styles, ref)
	}

	return &bundle, nil
}

// selectComponents decides which components the given refs require. The
// core runtime is always present; widgets and compiler follow in a fixed
// priority order, so the result never contains duplicates.
func selectComponents(refs []ModelRef) []Component {
	needWidgets := false
	needCompiler := false
	for _, ref := range refs {
		switch ref.Kind {
		case RefWidget:
			needWidgets = true
		case RefCustom:
			if ref.NeedsCompiler {
				needCompiler = true
			}
		}
	}

	comps := []Component{CoreComponent}
	if needWidgets {
		comps = append(comps, WidgetsComponent)
	}
	if needCompiler {
		comps = append(comps, CompilerComponent)
	}
	return comps
}

// logLevelRef is the synthetic script that pins the browser-side log level.
// It is always the last script in a bundle.
func logLevelRef(mode Mode) Ref {
	return Ref{Kind: RefInline, Content: fmt.Sprintf("Bokeh.set_log_level(%q);", mode.LogLevel)}
}

// fileName builds the filename for one component asset. Only remote lookups
// carry the version segment: local and embedded layouts always match the
// running binding's own release, so a version tag there would be
// meaningless. Minification is on unless the mode's dev overlay turned it
// off.
func fileName(name, ext string, minified, withVersion bool) string {
	if withVersion {
		name += "-" + Version
	}
	if minified {
		name += ".min"
	}
	return name + "." + ext
}

func resolveAsset(mode Mode, name, ext string) (Ref, error) {
	switch mode.Location {
	case LocationEmbedded:
		return resolveEmbedded(mode, name, ext)
	case LocationRelative, LocationAbsolute:
		return resolveLocal(mode, name, ext)
	case LocationRemote:
		return resolveRemote(mode, name, ext)
	default:
		return Ref{}, fmt.Errorf("%w: location kind %d", ErrUnknownMode, mode.Location)
	}
}

// resolveEmbedded reads the full asset text from the compiled-in copies.
// A missing asset means the binary was built from a broken tree.
func resolveEmbedded(mode Mode, name, ext string) (Ref, error) {
	fname := fileName(name, ext, mode.Minified, false)
	data, err := assets.Read(ext, fname)
	if err != nil {
		return Ref{}, fmt.Errorf("%w: %s/%s", ErrResourceNotFound, ext, fname)
	}
	return Ref{Kind: RefInline, Content: string(data)}, nil
}

// resolveLocal emits a file reference under an extracted asset directory.
// The compiled-in assets have no filesystem path, so local modes require an
// extracted copy; without one the mode is unusable here.
func resolveLocal(mode Mode, name, ext string) (Ref, error) {
	root := mode.RootDir
	if root == "" {
		var err error
		root, err = defaultResourceRoot()
		if err != nil {
			return Ref{}, err
		}
	}

	path := filepath.Join(root, ext, fileName(name, ext, mode.Minified, false))
	if _, err := os.Stat(path); err != nil {
		return Ref{}, fmt.Errorf("%w: %s", ErrResourceNotFound, path)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return Ref{}, fmt.Errorf("%w: %s: %v", ErrUnsupportedLocation, path, err)
	}

	if mode.Location == LocationAbsolute {
		return Ref{Kind: RefFile, Content: abs}, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return Ref{}, fmt.Errorf("%w: cannot determine working directory: %v", ErrUnsupportedLocation, err)
	}
	rel, err := filepath.Rel(cwd, abs)
	if err != nil {
		return Ref{}, fmt.Errorf("%w: %s is not reachable from %s: %v", ErrUnsupportedLocation, abs, cwd, err)
	}
	return Ref{Kind: RefFile, Content: rel}, nil
}

// resolveRemote joins the mode's base URL with the versioned filename. No
// existence check is made; a malformed base URL is a configuration error.
func resolveRemote(mode Mode, name, ext string) (Ref, error) {
	u, err := url.JoinPath(mode.BaseURL, fileName(name, ext, mode.Minified, true))
	if err != nil {
		return Ref{}, fmt.Errorf("%w: malformed base URL %q: %v", ErrUnsupportedLocation, mode.BaseURL, err)
	}
	return Ref{Kind: RefURL, Content: u}, nil
}

// defaultResourceRoot probes the conventional locations for an extracted
// asset tree.
func defaultResourceRoot() (string, error) {
	candidates := []string{
		os.Getenv(resourceRootEnv),
		filepath.Join(xdg.DataHome, "gobokeh", "static"),
	}
	for _, dir := range candidates {
		if dir == "" {
			continue
		}
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir, nil
		}
	}
	return "", fmt.Errorf("%w: no extracted resource directory found (set %s or extract the bundled assets first)",
		ErrUnsupportedLocation, resourceRootEnv)
}
