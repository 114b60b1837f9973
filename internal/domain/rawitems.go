package domain

// CollectRawItems recorre un árbol resuelto y suma las cantidades de todo lo
// que realmente se compra: hojas y nodos "purchased directly", a cualquier
// profundidad. La cantidad de cada nodo se multiplica por el producto de los
// counts de sus ancestros; el mismo item alcanzado por ramas distintas suma.
func CollectRawItems(root *CostNode) map[string]float64 {
	raw := make(map[string]float64)
	collectRaw(root, 1, raw)
	return raw
}

func collectRaw(n *CostNode, multiplier float64, raw map[string]float64) {
	total := n.Count * multiplier

	if n.IsContribution() {
		raw[n.Name] += total
		return
	}

	for _, child := range n.Children {
		collectRaw(child, total, raw)
	}
}
