package splitengine

import (
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"
)

// nodeLabel describes a single tree node for graph rendering.
func nodeLabel(tree *Tree, node int32) string {
	var sb strings.Builder
	if tree.isLeaf(node) {
		_, cols := tree.Values.Dims()
		sb.WriteString(fmt.Sprintln("leaf", node))
		for o := 0; o < cols; o++ {
			sb.WriteString(fmt.Sprintf("  %6.2f\n", tree.Values.At(int(node), o)))
		}
		return sb.String()
	}
	sb.WriteString(fmt.Sprintf("f_%d <= %6.5f", tree.Feature[node], tree.Threshold[node]))
	return sb.String()
}

func drawNode(g *cgraph.Graph, tree *Tree, node int32, parent *cgraph.Node) error {
	current, err := g.CreateNode(fmt.Sprint(node))
	if err != nil {
		return err
	}
	if parent != nil {
		if _, err := g.CreateEdge("", parent, current); err != nil {
			return err
		}
	}

	if tree.isLeaf(node) {
		current.Set("label", nodeLabel(tree, node))
		current.Set("shape", "box")
		return nil
	}

	current.Set("label", nodeLabel(tree, node))
	if err := drawNode(g, tree, tree.Children[node][0], current); err != nil {
		return err
	}
	return drawNode(g, tree, tree.Children[node][1], current)
}

// DrawGraph renders tree into a graphviz graph, the way the boosting
// driver's DrawGraph/RenderTrees does for debugging a fitted model. This
// only visualizes a tree that already exists; it does not grow one.
func DrawGraph(tree *Tree) (*graphviz.Graphviz, *cgraph.Graph, error) {
	gv := graphviz.New()
	graph, err := gv.Graph()
	if err != nil {
		return nil, nil, err
	}
	if err := drawNode(graph, tree, 0, nil); err != nil {
		return nil, nil, err
	}
	return gv, graph, nil
}

// RenderTreePNG renders tree directly to a PNG file at path.
func RenderTreePNG(tree *Tree, path string) error {
	gv, graph, err := DrawGraph(tree)
	if err != nil {
		return err
	}
	return gv.RenderFilename(graph, graphviz.PNG, path)
}
