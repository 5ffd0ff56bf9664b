// Package scan modela la entrada del escáner: un multiconjunto de códigos de
// barras con su cantidad solicitada.
package scan

// Multiset conteo de códigos de barras. Conserva el orden de primera
// aparición para que los truncamientos sean deterministas.
type Multiset struct {
	counts map[string]int
	order  []string
}

// NewMultiset construye el multiconjunto contando ocurrencias de codes.
func NewMultiset(codes []string) *Multiset {
	m := &Multiset{counts: make(map[string]int)}
	for _, code := range codes {
		m.Add(code, 1)
	}
	return m
}

// Add suma qty ocurrencias del código (qty <= 0 se ignora).
func (m *Multiset) Add(code string, qty int) {
	if code == "" || qty <= 0 {
		return
	}
	if _, seen := m.counts[code]; !seen {
		m.order = append(m.order, code)
	}
	m.counts[code] += qty
}

// Count devuelve la cantidad solicitada para un código.
func (m *Multiset) Count(code string) int {
	return m.counts[code]
}

// Distinct número de códigos distintos.
func (m *Multiset) Distinct() int {
	return len(m.order)
}

// Total unidades totales (suma de cantidades).
func (m *Multiset) Total() int {
	total := 0
	for _, qty := range m.counts {
		total += qty
	}
	return total
}

// Codes devuelve los códigos en orden de primera aparición.
func (m *Multiset) Codes() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}
