package localtime

import (
	"strings"
	"time"
)

// Todos os horários do motor de agenda são wall-clock locais,
// sem conversão de fuso. Datas viram meia-noite local e horários
// "15:04" são combinados sobre a data. Artistas multi-fuso estão
// fora do escopo.

const (
	ClockLayout = "15:04"
	DateLayout  = "2006-01-02"
)

func IsClock(hm string) bool {
	_, err := time.Parse(ClockLayout, hm)
	return err == nil
}

func ParseDate(s string) (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s), time.Local)
	if err != nil {
		return time.Time{}, err
	}
	return d, nil
}

// Midnight normaliza qualquer instante para a meia-noite local do dia.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// OnDate combina um horário "15:04" com a data informada.
// Entrada inválida devolve a meia-noite do dia; valide antes com IsClock.
func OnDate(date time.Time, hm string) time.Time {
	t, err := time.Parse(ClockLayout, hm)
	if err != nil {
		return Midnight(date)
	}
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), 0, 0,
		date.Location(),
	)
}

func Clock(t time.Time) string {
	return t.Format(ClockLayout)
}

// ClockBefore compara dois horários "15:04" no mesmo dia.
func ClockBefore(a, b string) bool {
	ref := time.Date(2000, 1, 1, 0, 0, 0, 0, time.Local)
	return OnDate(ref, a).Before(OnDate(ref, b))
}

func Now() time.Time {
	return time.Now().Local()
}
