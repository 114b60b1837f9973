package hypixel

// bazaarResponse es la respuesta de /v2/skyblock/bazaar.
type bazaarResponse struct {
	Success     bool                     `json:"success"`
	LastUpdated int64                    `json:"lastUpdated"`
	Products    map[string]bazaarProduct `json:"products"`
}

type bazaarProduct struct {
	ProductID   string      `json:"product_id"`
	QuickStatus quickStatus `json:"quick_status"`
}

// quickStatus trae el resumen del order book. buyPrice es el precio de
// instabuy (el mejor sell offer) y sellPrice el de instasell (el mejor
// buy order); los movingWeek son volúmenes de los últimos 7 días.
type quickStatus struct {
	BuyPrice       float64 `json:"buyPrice"`
	SellPrice      float64 `json:"sellPrice"`
	BuyMovingWeek  float64 `json:"buyMovingWeek"`
	SellMovingWeek float64 `json:"sellMovingWeek"`
	BuyOrders      int     `json:"buyOrders"`
	SellOrders     int     `json:"sellOrders"`
}
