package service

import (
	"sort"

	"github.com/guttosm/boxpack-service/internal/domain/model"
)

// layerStabiliser reorders finished layers so greater footprint supports
// lesser footprint: a physically plausible stack has its widest slab at the
// bottom. Layers keep their internal arrangement; only the vertical position
// of each layer changes.
type layerStabiliser struct{}

func newLayerStabiliser() layerStabiliser {
	return layerStabiliser{}
}

// Stabilise returns the layers sorted by decreasing footprint, bottom first,
// with every item's Z rewritten to the layer's new start depth. Footprint
// ties keep their original order. The input layers are not mutated.
func (s layerStabiliser) Stabilise(layers []*model.PackedLayer) []*model.PackedLayer {
	sorted := make([]*model.PackedLayer, len(layers))
	copy(sorted, layers)
	sort.SliceStable(sorted, func(a, b int) bool {
		return sorted[a].Footprint() > sorted[b].Footprint()
	})

	stabilised := make([]*model.PackedLayer, 0, len(sorted))
	currentDepth := 0
	for _, layer := range sorted {
		stabilised = append(stabilised, layer.ShiftedTo(currentDepth))
		currentDepth += layer.Depth()
	}
	return stabilised
}
