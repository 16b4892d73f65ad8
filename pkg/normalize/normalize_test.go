package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/almacen-wms/pkg/normalize"
)

func TestSearch(t *testing.T) {
	cases := map[string]string{
		"  Cajón Grande ": "cajon grande",
		"AZÚCAR":          "azucar",
		"ñoño":            "nono", // la tilde de la ñ también es marca combinante
		"pcs":             "pcs",
		"":                "",
	}
	for in, want := range cases {
		assert.Equal(t, want, normalize.Search(in), "entrada %q", in)
	}
}
