// Package assets embeds the BokehJS runtime bundles (scripts and
// stylesheets) that ship with this module. Every component has a regular
// and a minified form under js/ and css/, except the compiler bundle,
// which has no stylesheet.
package assets
