package catalog_test

import (
	"testing"

	"github.com/AreveiHQ/jenii-Admin/catalog"
	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Rings", "rings"},
		{"Gold Ring", "gold-ring"},
		{"Gold & Silver", "gold-silver"},
		{"  spaced   out  ", "spaced-out"},
		{"Pendants!!", "pendants"},
		{"22k Gold", "22k-gold"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, catalog.Slugify(tt.in), "Slugify(%q)", tt.in)
	}
}
