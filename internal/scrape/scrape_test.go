package scrape

import (
	"testing"

	_ "embed"

	"github.com/stretchr/testify/require"
)

//go:embed product_in_stock_test.html
var productInStockTest []byte

//go:embed product_sold_out_test.html
var productSoldOutTest []byte

func TestPageInStock(t *testing.T) {
	result, err := Page(productInStockTest, "add-to-cart", ".price")
	require.NoError(t, err)
	require.Equal(t, InStock, result.Availability)
	require.Equal(t, "₹275.00", result.Price)
}

func TestPageSoldOutOverridesBuyButton(t *testing.T) {
	// Sold-out pages often keep a disabled add-to-cart button in the
	// markup; the unavailability phrase must win.
	result, err := Page(productSoldOutTest, "add-to-cart", ".price")
	require.NoError(t, err)
	require.Equal(t, OutOfStock, result.Availability)
	require.Empty(t, result.Price)
}

func TestPageCustomSelector(t *testing.T) {
	body := []byte(`<html><body><div data-stock="ready-to-ship">Widget</div></body></html>`)
	result, err := Page(body, "ready-to-ship", "")
	require.NoError(t, err)
	require.Equal(t, InStock, result.Availability)
}

func TestPageNoMarkers(t *testing.T) {
	body := []byte(`<html><body><h1>Widget</h1></body></html>`)
	result, err := Page(body, "", "")
	require.NoError(t, err)
	require.Equal(t, OutOfStock, result.Availability)
}

func TestPageMissingPriceSelector(t *testing.T) {
	body := []byte(`<html><body><p>In Stock</p></body></html>`)
	result, err := Page(body, "", ".price")
	require.NoError(t, err)
	require.Equal(t, InStock, result.Availability)
	require.Empty(t, result.Price)
}

func TestAvailabilityKnown(t *testing.T) {
	require.True(t, InStock.Known())
	require.True(t, OutOfStock.Known())
	require.False(t, Unknown.Known())
}
