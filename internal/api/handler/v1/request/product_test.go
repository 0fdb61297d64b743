package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(f float64) *float64 { return &f }

func TestProductQueryFilterPriceRange(t *testing.T) {
	tests := []struct {
		name      string
		req       ProductQuery
		wantRange bool
	}{
		{name: "no bounds", req: ProductQuery{}},
		{name: "min only", req: ProductQuery{MinPrice: floatPtr(50)}},
		{name: "max only", req: ProductQuery{MaxPrice: floatPtr(100)}},
		{name: "both", req: ProductQuery{MinPrice: floatPtr(50), MaxPrice: floatPtr(100)}, wantRange: true},
		{name: "inverted", req: ProductQuery{MinPrice: floatPtr(100), MaxPrice: floatPtr(50)}, wantRange: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := tt.req.Filter()
			if !tt.wantRange {
				assert.Nil(t, f.PriceRange)
				return
			}
			require.NotNil(t, f.PriceRange)
			assert.Equal(t, *tt.req.MinPrice, f.PriceRange.Min)
			assert.Equal(t, *tt.req.MaxPrice, f.PriceRange.Max)
		})
	}
}
