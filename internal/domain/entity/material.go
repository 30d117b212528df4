package entity

import "regexp"

var hexColorRe = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Material filamento/resina disponible para imprimir.
type Material struct {
	ID       string
	Color    string // nombre del color, ej. "Rojo mate"
	ColorHex string // "#RRGGBB"; puede venir vacío o mal formado
}

// ValidHex indica si ColorHex tiene la forma #RRGGBB.
func (m Material) ValidHex() bool {
	return hexColorRe.MatchString(m.ColorHex)
}
