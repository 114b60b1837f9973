package domain

import "sort"

// CraftProfit es una entrada del ranking de crafts rentables.
type CraftProfit struct {
	ItemID        string
	Name          string
	Profit        float64
	ProfitPercent int // truncado hacia cero, no redondeado
	CraftingCost  float64
	SellPrice     float64
}

// RankProfitable resuelve el árbol de cada item del catálogo (resolución
// independiente, sin cache entre items), compara el coste de craftearlo con
// su precio de venta en el bazaar y devuelve los topN con mayor margen
// porcentual. minSellPrice filtra el ruido de items baratos/ilíquidos.
func RankProfitable(r *Resolver, minSellPrice float64, topN int) []CraftProfit {
	var profits []CraftProfit

	for itemID, item := range r.catalog {
		tree := r.Resolve(itemID)
		craftingCost := tree.Cost

		sellPrice, ok := r.prices.Price(itemID)
		if !ok {
			continue
		}
		// craftingCost > 0 evita dividir por cero cuando el árbol entero
		// quedó sin precio; esos items no tienen margen calculable.
		if sellPrice <= minSellPrice || craftingCost <= 0 || craftingCost >= sellPrice {
			continue
		}

		profit := sellPrice - craftingCost
		profits = append(profits, CraftProfit{
			ItemID:        itemID,
			Name:          item.Name,
			Profit:        profit,
			ProfitPercent: int(profit / craftingCost * 100),
			CraftingCost:  craftingCost,
			SellPrice:     sellPrice,
		})
	}

	sort.Slice(profits, func(i, j int) bool {
		if profits[i].ProfitPercent != profits[j].ProfitPercent {
			return profits[i].ProfitPercent > profits[j].ProfitPercent
		}
		if profits[i].Profit != profits[j].Profit {
			return profits[i].Profit > profits[j].Profit
		}
		return profits[i].ItemID < profits[j].ItemID
	})

	if len(profits) > topN {
		profits = profits[:topN]
	}
	return profits
}
