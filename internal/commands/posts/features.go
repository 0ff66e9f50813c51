package postscmd

// FeatureGates exposes runtime feature toggles required by post command
// handlers. Callers supply closures that read from blog.Config.Features so
// handlers stay decoupled from configuration while honouring feature flags.
type FeatureGates struct {
	RenderingEnabled func() bool
}

func (g FeatureGates) renderingEnabled() bool {
	if g.RenderingEnabled == nil {
		return true
	}
	return g.RenderingEnabled()
}
