package assets

import (
	"embed"
	"io/fs"
	"os"
	"path"
	"path/filepath"
)

// BokehJS runtime bundles embedded at build time
//
//go:embed js/*.js css/*.css
var bundled embed.FS

// FS returns the embedded asset tree, rooted at the directory containing
// the js/ and css/ subdirectories.
func FS() fs.FS {
	return bundled
}

// Read returns the contents of one bundled asset, addressed by lookup root
// ("js" or "css") and filename, e.g. Read("js", "bokeh.min.js").
func Read(root, name string) ([]byte, error) {
	return bundled.ReadFile(path.Join(root, name))
}

// ExtractTo writes the embedded asset tree under dir, creating the js/ and
// css/ subdirectories. The compiled-in files cannot be addressed by
// filesystem path, so local deployment modes need an extracted copy.
func ExtractTo(dir string) error {
	return fs.WalkDir(bundled, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(dir, filepath.FromSlash(p))
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		data, err := bundled.ReadFile(p)
		if err != nil {
			return err
		}
		return os.WriteFile(target, data, 0o644)
	})
}
