package stock

// LotGroup is one distinct product name with the combined stock of its lots.
type LotGroup struct {
	Name           string `json:"name"`
	TotalAvailable int    `json:"totalAvailable"`
	Lots           int    `json:"lots"`
}

// GroupByName sums available stock per product name.
// Lots without stock are skipped; groups keep the order in which names first appear.
func GroupByName(lots []LotStock) []LotGroup {
	pos := make(map[string]int)
	var groups []LotGroup

	for _, l := range lots {
		if l.Available <= 0 {
			continue
		}
		i, ok := pos[l.Product.Name]
		if !ok {
			i = len(groups)
			pos[l.Product.Name] = i
			groups = append(groups, LotGroup{Name: l.Product.Name})
		}
		groups[i].TotalAvailable += l.Available
		groups[i].Lots++
	}

	return groups
}

// LotsByName returns the lots with stock behind one group, so a sale can
// pick the cost basis it is sold against.
func LotsByName(lots []LotStock, name string) []LotStock {
	var out []LotStock
	for _, l := range lots {
		if l.Available > 0 && l.Product.Name == name {
			out = append(out, l)
		}
	}
	return out
}
