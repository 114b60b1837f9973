package report

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/alejandrodnm/craftbot/internal/domain"
)

// Console implementa ports.Reporter escribiendo texto plano.
type Console struct {
	out io.Writer
}

// NewConsole crea un reporter que escribe a stdout.
func NewConsole() *Console {
	return &Console{out: os.Stdout}
}

// NewConsoleWriter crea un reporter para tests.
func NewConsoleWriter(w io.Writer) *Console {
	return &Console{out: w}
}

// ReportRanking imprime el ranking de crafts rentables en tabla.
func (c *Console) ReportRanking(ranked []domain.CraftProfit) {
	if len(ranked) == 0 {
		fmt.Fprintln(c.out, "No profitable crafts found.")
		return
	}

	fmt.Fprintf(c.out, "\nTop %d Most Profitable Crafts:\n", len(ranked))

	table := tablewriter.NewWriter(c.out)
	table.Header("#", "Item", "Profit", "Profit %", "Craft Cost", "Sell Price")

	for i, craft := range ranked {
		name := craft.Name
		if name == "" {
			name = craft.ItemID
		}
		table.Append(
			strconv.Itoa(i+1),
			name,
			coins(craft.Profit),
			fmt.Sprintf("%d%%", craft.ProfitPercent),
			coins(craft.CraftingCost),
			coins(craft.SellPrice),
		)
	}

	table.Render()
}

// ReportTree imprime el árbol de costes con los multiplicadores acumulados.
func (c *Console) ReportTree(tree *domain.CostNode, prices domain.PriceIndex) {
	fmt.Fprintln(c.out, "Recipe Tree:")
	c.printNode(tree, prices, 0, 1)
}

// printNode imprime un nodo y desciende con el multiplicador acumulado:
// cada línea muestra las unidades totales que ese nodo aporta al craft raíz.
func (c *Console) printNode(n *domain.CostNode, prices domain.PriceIndex, level int, multiplier float64) {
	indent := strings.Repeat("  ", level)
	totalCount := n.Count * multiplier

	note := ""
	if n.Note != domain.NoteCrafted {
		note = fmt.Sprintf(" (%s)", n.Note)
	}

	line := fmt.Sprintf("%s- %s x%s%s", indent, n.Name, coins(totalCount), note)
	if entry, ok := prices[n.Name]; ok && entry.Price > 0 {
		line += fmt.Sprintf(" %s per unit (%s @ %s - %s)",
			coins(entry.Price), coins(totalCount), coins(entry.Price*totalCount), entry.Method)
	} else {
		line += " No price"
	}
	fmt.Fprintln(c.out, line)

	for _, child := range n.Children {
		c.printNode(child, prices, level+1, totalCount)
	}
}

// ReportRawItems imprime la lista agregada de compras y el coste total
// normalizado por las unidades que produce la receta.
func (c *Console) ReportRawItems(raw map[string]float64, prices domain.PriceIndex, auctions domain.AuctionIndex, units float64) {
	fmt.Fprintln(c.out, "\n--- Raw Items Needed ---")

	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	sort.Strings(names)

	total := 0.0
	for _, name := range names {
		quantity := raw[name]

		price, ok := prices.Price(name)
		if !ok {
			price, _ = auctions.LowestAsk(name)
		}

		if price > 0 {
			total += price * quantity
			fmt.Fprintf(c.out, "- %s: %s @ %s each = %s\n",
				name, coins(quantity), coins(price), coins(price*quantity))
		} else {
			fmt.Fprintf(c.out, "- %s: %s (No price available)\n", name, coins(quantity))
		}
	}

	if units < 1 {
		units = 1
	}
	fmt.Fprintf(c.out, "\nTotal cost of raw items: %s\n", coins(total/units))
}

// coins formatea una cantidad con separadores de miles y dos decimales.
// Los precios del juego llegan a los cientos de millones; sin separadores
// las tablas son ilegibles.
func coins(v float64) string {
	s := fmt.Sprintf("%.2f", v)

	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}

	intPart, decPart, _ := strings.Cut(s, ".")
	var sb strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(digit)
	}

	out := sb.String() + "." + decPart
	if neg {
		out = "-" + out
	}
	return out
}
