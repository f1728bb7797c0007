package dispatch

import "github.com/google/uuid"

// Renderer turns button specs into controls and replaces the surface's button group.
type Renderer struct {
	surface Surface
}

func NewRenderer(s Surface) *Renderer {
	return &Renderer{surface: s}
}

// Render discards the previous group and shows one control per ButtonSpec, in input order.
func (r *Renderer) Render(buttons []ButtonSpec) []Control {
	controls := make([]Control, len(buttons))
	for i, b := range buttons {
		controls[i] = Control{
			ID:    uuid.NewString(),
			Label: b.Text,
			Style: b.Style.Normalize(),
			Spec:  b,
		}
	}
	r.surface.ReplaceButtonGroup(controls)
	return controls
}
