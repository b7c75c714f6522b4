package resources

// RefKind identifies what runtime support a model reference needs.
type RefKind int

const (
	// RefPlot is an ordinary plot model; it needs only the core runtime.
	RefPlot RefKind = iota
	// RefWidget is a widget model; it pulls in the widgets component.
	RefWidget
	// RefCustom is a user-defined model extension.
	RefCustom
)

// ModelRef describes one model object that will appear in a document. The
// requirements are carried as explicit fields rather than inferred from the
// model's concrete type: NeedsCompiler is set for custom models whose
// implementation ships as compilable source instead of precompiled script.
type ModelRef struct {
	Kind          RefKind
	NeedsCompiler bool
}

// PlotRef returns a reference to an ordinary plot model.
func PlotRef() ModelRef {
	return ModelRef{Kind: RefPlot}
}

// WidgetRef returns a reference to a widget model.
func WidgetRef() ModelRef {
	return ModelRef{Kind: RefWidget}
}

// CustomRef returns a reference to a custom model extension. needsCompiler
// is true when the model's implementation must be compiled in the browser.
func CustomRef(needsCompiler bool) ModelRef {
	return ModelRef{Kind: RefCustom, NeedsCompiler: needsCompiler}
}
