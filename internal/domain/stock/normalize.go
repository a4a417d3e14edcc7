package stock

import "strings"

// Normalize recorta y colapsa corridas internas de espacios a uno solo.
// Es la normalización canónica aplicada a nombres de producto (y de
// maestros resueltos por nombre) antes de cualquier comparación.
func Normalize(raw string) string {
	return strings.Join(strings.Fields(raw), " ")
}

// Key devuelve la clave de identidad de un nombre: normalizado y en
// minúsculas. "Bolsa   Negra" y "bolsa negra" producen la misma clave.
func Key(raw string) string {
	return strings.ToLower(Normalize(raw))
}
