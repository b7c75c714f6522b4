// Package resources resolves the BokehJS browser runtime assets a document
// needs. Given the model references that will appear in a document and a
// deployment mode, it computes the ordered set of script and style
// references (inline text, filesystem paths, or CDN URLs) to embed in the
// page that displays the document.
package resources
