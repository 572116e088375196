package ledger

// Index maps lot ids to lots. Later duplicates win.
func Index(products []Product) map[string]*Product {
	m := make(map[string]*Product, len(products))
	for i := range products {
		m[products[i].ID] = &products[i]
	}
	return m
}

// FindProduct returns the position of the lot with the given id, or -1.
func FindProduct(products []Product, productID string) int {
	for i := range products {
		if products[i].ID == productID {
			return i
		}
	}
	return -1
}

// FindSale returns the position of the sale with the given id, or -1.
func FindSale(sales []Sale, saleID string) int {
	for i := range sales {
		if sales[i].ID == saleID {
			return i
		}
	}
	return -1
}

// SalesOf returns the sales that reference the given lot.
func SalesOf(sales []Sale, productID string) []Sale {
	var out []Sale
	for _, s := range sales {
		if s.ProductID == productID {
			out = append(out, s)
		}
	}
	return out
}

// SoldQuantity sums the quantity of all sales against the given lot.
func SoldQuantity(sales []Sale, productID string) int {
	total := 0
	for _, s := range sales {
		if s.ProductID == productID {
			total += s.Quantity
		}
	}
	return total
}

// Orphans returns the sales whose lot is not in products.
func Orphans(products []Product, sales []Sale) []Sale {
	index := Index(products)
	var out []Sale
	for _, s := range sales {
		if _, ok := index[s.ProductID]; !ok {
			out = append(out, s)
		}
	}
	return out
}

// WithoutProduct returns a copy of products without the given lot.
func WithoutProduct(products []Product, productID string) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if p.ID != productID {
			out = append(out, p)
		}
	}
	return out
}

// WithoutSale returns a copy of sales without the given sale.
func WithoutSale(sales []Sale, saleID string) []Sale {
	out := make([]Sale, 0, len(sales))
	for _, s := range sales {
		if s.ID != saleID {
			out = append(out, s)
		}
	}
	return out
}
