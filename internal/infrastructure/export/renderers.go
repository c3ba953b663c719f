package export

import "suprimentos/internal/usecase/interfaces"

// Renderers returns every supported export format keyed by its name.
func Renderers() map[string]interfaces.ITableRenderer {
	renderers := map[string]interfaces.ITableRenderer{}
	for _, r := range []interfaces.ITableRenderer{NewCSVRenderer(), NewXLSXRenderer(), NewPDFRenderer()} {
		renderers[r.Extension()] = r
	}
	return renderers
}
