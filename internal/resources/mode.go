package resources

import (
	"fmt"
	"sort"
)

// Version is the BokehJS release the bundled assets and CDN filenames are
// pinned to.
const Version = "0.12.9"

// CDNBaseURL is the release CDN that remote modes resolve against.
const CDNBaseURL = "https://cdn.bokeh.org/bokeh/release/"

// LocationKind selects where asset bytes come from.
type LocationKind int

const (
	// LocationEmbedded reads asset text from the compiled-in copies and
	// produces inline references.
	LocationEmbedded LocationKind = iota
	// LocationRelative produces file references relative to the current
	// working directory.
	LocationRelative
	// LocationAbsolute produces absolute file references.
	LocationAbsolute
	// LocationRemote produces CDN URLs without touching the filesystem.
	LocationRemote
)

// Mode describes one asset deployment strategy: a location kind plus the
// development/production overlay. The overlay changes three things:
// minification, browser log level, and JSON indentation.
type Mode struct {
	Location LocationKind
	Minified bool
	LogLevel string
	Indent   int
	BaseURL  string // remote modes only
	RootDir  string // local modes only; empty means discover a default root
}

// Dev reports whether this mode carries the development overlay.
func (m Mode) Dev() bool {
	return !m.Minified
}

func prodMode(loc LocationKind) Mode {
	return Mode{Location: loc, Minified: true, LogLevel: "info"}
}

func devMode(loc LocationKind) Mode {
	return Mode{Location: loc, LogLevel: "debug", Indent: 2}
}

func remoteMode(dev bool) Mode {
	var m Mode
	if dev {
		m = devMode(LocationRemote)
	} else {
		m = prodMode(LocationRemote)
	}
	m.BaseURL = CDNBaseURL
	return m
}

var modesByName = map[string]Mode{
	"cdn":          remoteMode(false),
	"cdn-dev":      remoteMode(true),
	"inline":       prodMode(LocationEmbedded),
	"inline-dev":   devMode(LocationEmbedded),
	"relative":     prodMode(LocationRelative),
	"relative-dev": devMode(LocationRelative),
	"absolute":     prodMode(LocationAbsolute),
	"absolute-dev": devMode(LocationAbsolute),
}

// FromString looks up a deployment mode by its selector string. Matching is
// exact and case sensitive; an unrecognized selector is an error, never a
// silent fallback to the default.
func FromString(name string) (Mode, error) {
	mode, ok := modesByName[name]
	if !ok {
		return Mode{}, fmt.Errorf("%w: %s", ErrUnknownMode, name)
	}
	return mode, nil
}

// Default returns the mode used when no selector is given.
func Default() Mode {
	return modesByName["cdn"]
}

// ModeNames returns all recognized selector strings, sorted.
func ModeNames() []string {
	names := make([]string, 0, len(modesByName))
	for name := range modesByName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
