package constant

// ProductStock is the availability flag of a product, not a counter.
type ProductStock string

const (
	ProductStockReady    ProductStock = "ready"
	ProductStockPreorder ProductStock = "preorder"
)

func (s ProductStock) Valid() bool {
	return s == ProductStockReady || s == ProductStockPreorder
}
