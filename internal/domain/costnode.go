package domain

// Note anota cómo se resolvió un nodo del árbol de costes.
type Note string

const (
	// NoteBaseItem: sin receta, precio tomado del bazaar.
	NoteBaseItem Note = "base item"
	// NoteBaseAuction: sin receta ni precio de bazaar, precio del lowest BIN.
	NoteBaseAuction Note = "base item (from auction)"
	// NoteBaseNoPrice: sin receta y sin precio en ninguna fuente. Cost 0.
	NoteBaseNoPrice Note = "base item (no price)"
	// NotePurchased: tenía receta pero comprar el item hecho gana a craftearlo.
	NotePurchased Note = "purchased directly"
	// NoteCycle: el item ya estaba en la cadena de ancestros activa.
	NoteCycle Note = "cycle detected"
	// NoteCrafted (vacío): el nodo se resuelve crafteando sus hijos.
	NoteCrafted Note = ""
)

// CostNode es un nodo del árbol de costes que produce el resolver.
// Invariante: tiene Children si y solo si se resolvió como craft; todo nodo
// comprado o base es una hoja.
type CostNode struct {
	Name     string
	Count    float64 // cantidad requerida en este nodo (el multiplicador de los ancestros se aplica al recorrer)
	Cost     float64 // coste por unidad; 0 para nodos sin precio y para ciclos
	Note     Note
	Children []*CostNode
}

// IsLeaf indica si el nodo es una hoja del árbol.
func (n *CostNode) IsLeaf() bool {
	return len(n.Children) == 0
}

// IsContribution indica si el nodo es un punto de contribución para la
// agregación de raw items: una hoja, o un nodo comprado directamente (la
// agregación no desciende más allá de "esto se compra, no se descompone").
func (n *CostNode) IsContribution() bool {
	return n.IsLeaf() || n.Note == NotePurchased
}
