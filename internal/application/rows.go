package application

import (
	"strconv"

	"github.com/hailam/genfixture/internal/ports"
)

const (
	// ProductPrefix starts every generated product name.
	ProductPrefix = "test_product_"
	// RowCount is the number of data rows in every fixture.
	RowCount = 1000

	productRange = 1000 // product numbers are drawn from [1, productRange]
	priceCents   = 1000 // prices are drawn from [1, priceCents] cents
)

// Header names the two fixture columns.
var Header = []string{"PRODUCT NAME", "PRICE"}

// NewRow draws one row from src: the product number first, then the price.
func NewRow(src ports.RandomSource) ports.Row {
	product := ProductPrefix + strconv.Itoa(src.IntN(productRange)+1)
	price := float64(src.IntN(priceCents)+1) / 100.0
	return ports.Row{Product: product, Price: price}
}
