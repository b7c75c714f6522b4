package resources

// Component is a named group of script and style assets shipped together
// with the BokehJS runtime.
type Component struct {
	Name      string
	HasScript bool
	HasStyle  bool
}

// The components shipped with the pinned BokehJS release, in load order.
// The compiler bundle is script-only; it never contributes a stylesheet.
var (
	CoreComponent     = Component{Name: "bokeh", HasScript: true, HasStyle: true}
	WidgetsComponent  = Component{Name: "bokeh-widgets", HasScript: true, HasStyle: true}
	CompilerComponent = Component{Name: "bokeh-compiler", HasScript: true}
)

// Components returns all known components in load order.
func Components() []Component {
	return []Component{CoreComponent, WidgetsComponent, CompilerComponent}
}
