package appointment

import (
	"time"

	"github.com/karlwennerstrom/paltattoo-2025-sub000/internal/localtime"
	"github.com/karlwennerstrom/paltattoo-2025-sub000/internal/models"
)

// Passo fixo entre candidatos de início de slot.
const SlotStep = 30 * time.Minute

type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Interval é um intervalo ocupado no dia, semiaberto [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps: [a1,a2) e [b1,b2) se cruzam sse a1 < b2 && b1 < a2.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// GenerateSlots calcula os horários livres de um dia: anda de 30 em 30
// minutos a partir do início da janela, descartando candidatos que
// estourem o fechamento, cruzem a pausa ou cruzem um agendamento ativo.
//
// Função pura: recalculada a cada chamada, nunca cacheada. Duração maior
// que a janela inteira devolve lista vazia, não erro.
func GenerateSlots(
	w *models.AvailabilityWindow,
	date time.Time,
	duration time.Duration,
	busy []Interval,
) []TimeSlot {

	if w == nil || !w.IsAvailable || duration <= 0 {
		return []TimeSlot{}
	}
	if w.StartTime == "" || w.EndTime == "" {
		return []TimeSlot{}
	}

	dayStart := localtime.OnDate(date, w.StartTime)
	dayEnd := localtime.OnDate(date, w.EndTime)

	hasBreak := w.BreakStart != "" && w.BreakEnd != ""
	var breakStart, breakEnd time.Time
	if hasBreak {
		breakStart = localtime.OnDate(date, w.BreakStart)
		breakEnd = localtime.OnDate(date, w.BreakEnd)
	}

	slots := []TimeSlot{}

	for cur := dayStart; ; cur = cur.Add(SlotStep) {
		slotEnd := cur.Add(duration)

		// passou do fechamento: nenhum candidato posterior cabe
		if slotEnd.After(dayEnd) {
			break
		}

		if hasBreak && Overlaps(cur, slotEnd, breakStart, breakEnd) {
			continue
		}

		if overlapsAny(cur, slotEnd, busy) {
			continue
		}

		slots = append(slots, TimeSlot{
			Start: localtime.Clock(cur),
			End:   localtime.Clock(slotEnd),
		})
	}

	return slots
}

func overlapsAny(start, end time.Time, busy []Interval) bool {
	for _, b := range busy {
		if Overlaps(start, end, b.Start, b.End) {
			return true
		}
	}
	return false
}

// WithinWindow diz se [start,end) cabe na janela do dia sem cruzar a
// pausa. Janela ausente ou inativa nunca aceita.
func WithinWindow(w *models.AvailabilityWindow, date, start, end time.Time) bool {
	if w == nil || !w.IsAvailable || w.StartTime == "" || w.EndTime == "" {
		return false
	}

	dayStart := localtime.OnDate(date, w.StartTime)
	dayEnd := localtime.OnDate(date, w.EndTime)

	if start.Before(dayStart) || end.After(dayEnd) {
		return false
	}

	if w.BreakStart != "" && w.BreakEnd != "" {
		breakStart := localtime.OnDate(date, w.BreakStart)
		breakEnd := localtime.OnDate(date, w.BreakEnd)
		if Overlaps(start, end, breakStart, breakEnd) {
			return false
		}
	}

	return true
}

// BusyIntervals projeta agendamentos ativos em intervalos ocupados.
func BusyIntervals(aps []models.Appointment) []Interval {
	out := make([]Interval, 0, len(aps))
	for _, ap := range aps {
		out = append(out, Interval{Start: ap.StartTime, End: ap.EndTime})
	}
	return out
}
