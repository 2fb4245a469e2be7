package timezone

import "time"

// O calendário é um recurso único compartilhado; todo o agendamento
// acontece no fuso do salão.
const SalonTimezone = "America/Sao_Paulo"

func Location() *time.Location {
	loc, err := time.LoadLocation(SalonTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func Now() time.Time {
	return time.Now().In(Location())
}
