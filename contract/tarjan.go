package contract

import "github.com/globular-cat/homotopy/scaffold"

// tarjanSCC computes the strongly-connected components of the graph named
// by nodes and adj, returning them in topological order: if some component
// has an edge into another, the source component comes first. Tarjan's
// algorithm naturally discovers components in the reverse of this order
// (sinks first), so the result is reversed once before returning.
func tarjanSCC(nodes []scaffold.NodeID, adj map[scaffold.NodeID][]scaffold.NodeID) [][]scaffold.NodeID {
	index := 0
	indices := make(map[scaffold.NodeID]int, len(nodes))
	low := make(map[scaffold.NodeID]int, len(nodes))
	onStack := make(map[scaffold.NodeID]bool, len(nodes))
	var stack []scaffold.NodeID
	var sccs [][]scaffold.NodeID

	var strongconnect func(v scaffold.NodeID)
	strongconnect = func(v scaffold.NodeID) {
		indices[v] = index
		low[v] = index
		index++
		stack = append(stack, v)
		onStack[v] = true

		for _, w := range adj[v] {
			if _, seen := indices[w]; !seen {
				strongconnect(w)
				if low[w] < low[v] {
					low[v] = low[w]
				}
			} else if onStack[w] {
				if indices[w] < low[v] {
					low[v] = indices[w]
				}
			}
		}

		if low[v] == indices[v] {
			var scc []scaffold.NodeID
			for {
				w := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				onStack[w] = false
				scc = append(scc, w)
				if w == v {
					break
				}
			}
			sccs = append(sccs, scc)
		}
	}

	for _, v := range nodes {
		if _, seen := indices[v]; !seen {
			strongconnect(v)
		}
	}

	for i, j := 0, len(sccs)-1; i < j; i, j = i+1, j-1 {
		sccs[i], sccs[j] = sccs[j], sccs[i]
	}

	return sccs
}
