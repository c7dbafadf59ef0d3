package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsDesignProduct(t *testing.T) {
	cases := []struct {
		product string
		want    bool
	}{
		{"Custom Design Wrap", true},
		{"Race Livery Package", true},
		{"Custom Graphic Kit", true},
		{"Design Proof Review", true},
		{"Full Color Change Wrap", false},
		{"Matte Black Wrap", false},
		{"", false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, isDesignProduct(tc.product), "product: %s", tc.product)
	}
}
