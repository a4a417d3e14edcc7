package timezone

import (
	"time"
)

// La bodega opera en hora de Chile continental. Los instantes se almacenan
// en UTC; este paquete concentra la conversión a hora local para filtros por
// fecha y presentación.
var santiago = mustLoad("America/Santiago")

func mustLoad(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		// Sin tzdata disponible se degrada a UTC en vez de abortar.
		return time.UTC
	}
	return loc
}

// Location devuelve la zona horaria local de la operación.
func Location() *time.Location {
	return santiago
}

// ToLocal convierte un instante UTC a hora local.
func ToLocal(t time.Time) time.Time {
	return t.In(santiago)
}

// ParseDate interpreta una fecha YYYY-MM-DD como medianoche local y devuelve
// el instante UTC correspondiente.
func ParseDate(s string) (time.Time, error) {
	d, err := time.ParseInLocation("2006-01-02", s, santiago)
	if err != nil {
		return time.Time{}, err
	}
	return d.UTC(), nil
}

// DayAfter devuelve el inicio (UTC) del día local siguiente a la fecha dada,
// para usar como límite superior exclusivo en filtros por rango.
func DayAfter(s string) (time.Time, error) {
	d, err := time.ParseInLocation("2006-01-02", s, santiago)
	if err != nil {
		return time.Time{}, err
	}
	return d.AddDate(0, 0, 1).UTC(), nil
}

// ParseDateTime interpreta una fecha-hora local sin zona (2006-01-02T15:04:05)
// y devuelve el instante UTC. Acepta también fecha sola.
func ParseDateTime(s string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02T15:04:05", "2006-01-02T15:04", "2006-01-02"} {
		if d, err := time.ParseInLocation(layout, s, santiago); err == nil {
			return d.UTC(), nil
		}
	}
	d, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return d.UTC(), nil
}

// FormatLocal presenta un instante en hora local con precisión de segundos,
// el formato histórico de la API.
func FormatLocal(t time.Time) string {
	return t.In(santiago).Format("2006-01-02T15:04:05-07:00")
}

// MonthStart devuelve el inicio (UTC) del mes local en curso para el instante
// dado.
func MonthStart(t time.Time) time.Time {
	local := t.In(santiago)
	start := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, santiago)
	return start.UTC()
}

// LocalDay devuelve el día del mes (1..31) del instante en hora local.
func LocalDay(t time.Time) int {
	return t.In(santiago).Day()
}
