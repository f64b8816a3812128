package contract

import (
	"github.com/globular-cat/homotopy/diagram"
	"github.com/globular-cat/homotopy/rewrite"
	"github.com/globular-cat/homotopy/scaffold"
)

// Cocone is the colimit of a Graph: the colimit diagram itself, plus one
// rewrite (leg) from each input node into it.
type Cocone struct {
	Colimit diagram.Diagram
	Legs    map[scaffold.NodeID]rewrite.Rewrite
}
