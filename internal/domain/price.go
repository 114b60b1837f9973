package domain

// Method es el mecanismo de adquisición asumido para un precio del bazaar.
type Method string

const (
	// MethodInstabuy: el spread es estrecho, pagar el instabuy sale a cuenta.
	MethodInstabuy Method = "Instabuy"
	// MethodBuyOrder: spread ancho, se asume una orden de compra en reposo.
	MethodBuyOrder Method = "Buy Order"
)

// Quote es la cotización cruda de un producto del bazaar.
type Quote struct {
	ItemID         string
	BuyPrice       float64
	SellPrice      float64
	SellMovingWeek float64
	BuyMovingWeek  float64
}

// PriceEntry es el precio normalizado de un item con liquidez en el bazaar.
type PriceEntry struct {
	Price  float64
	Method Method
	// Flujos horarios derivados del moving week. El resolver no los consume,
	// pero forman parte del contrato para extensiones sensibles a liquidez.
	HourlyInstabuys  float64
	HourlyInstasells float64
}

// PriceIndex mapea item ID → PriceEntry. Solo items con cotización en ambos
// lados del mercado tienen entrada.
type PriceIndex map[string]PriceEntry

const hoursPerWeek = 168

// BuildPriceIndex normaliza las cotizaciones del bazaar en un índice único.
// spreadThreshold es el ratio buy/sell máximo para preferir instabuy (1.07
// por defecto): por debajo el slippage del instant-fill es aceptable, por
// encima se asume más barata una orden en reposo al sellPrice.
func BuildPriceIndex(quotes []Quote, spreadThreshold float64) PriceIndex {
	index := make(PriceIndex, len(quotes))

	for _, q := range quotes {
		if q.BuyPrice <= 0 || q.SellPrice <= 0 {
			continue // mercado de un solo lado o vacío: sin entrada
		}

		entry := PriceEntry{
			HourlyInstabuys:  q.SellMovingWeek / hoursPerWeek,
			HourlyInstasells: q.BuyMovingWeek / hoursPerWeek,
		}
		if q.BuyPrice/q.SellPrice < spreadThreshold {
			entry.Price = q.BuyPrice
			entry.Method = MethodInstabuy
		} else {
			entry.Price = q.SellPrice
			entry.Method = MethodBuyOrder
		}
		index[q.ItemID] = entry
	}
	return index
}

// Price devuelve el precio unitario de un item si tiene entrada en el índice.
func (p PriceIndex) Price(itemID string) (float64, bool) {
	entry, ok := p[itemID]
	if !ok {
		return 0, false
	}
	return entry.Price, true
}
