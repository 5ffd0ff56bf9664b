package scan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ithesk/odoo-scanner/internal/domain/scan"
)

func TestNewMultiset_CuentaOcurrencias(t *testing.T) {
	m := scan.NewMultiset([]string{"111", "222", "111", "333", "111"})

	assert.Equal(t, 3, m.Distinct())
	assert.Equal(t, 5, m.Total())
	assert.Equal(t, 3, m.Count("111"))
	assert.Equal(t, 1, m.Count("222"))
	assert.Equal(t, 0, m.Count("999"), "un código no escaneado cuenta 0")
}

func TestMultiset_ConservaOrdenDePrimeraAparicion(t *testing.T) {
	m := scan.NewMultiset([]string{"bbb", "aaa", "bbb", "ccc", "aaa"})

	assert.Equal(t, []string{"bbb", "aaa", "ccc"}, m.Codes(),
		"el orden debe ser el de primera aparición, no alfabético")
}

func TestMultiset_IgnoraVaciosYCantidadesNoPositivas(t *testing.T) {
	m := scan.NewMultiset([]string{"111", ""})
	m.Add("", 5)
	m.Add("222", 0)
	m.Add("222", -3)

	assert.Equal(t, 1, m.Distinct())
	assert.Equal(t, 1, m.Total())
}

func TestMultiset_CodesDevuelveCopia(t *testing.T) {
	m := scan.NewMultiset([]string{"111", "222"})
	codes := m.Codes()
	codes[0] = "mutado"

	assert.Equal(t, []string{"111", "222"}, m.Codes())
}
