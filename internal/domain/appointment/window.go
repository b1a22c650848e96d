package appointment

import (
	"fmt"

	"github.com/karlwennerstrom/paltattoo-2025-sub000/internal/localtime"
	"github.com/karlwennerstrom/paltattoo-2025-sub000/internal/models"
)

// ValidateWeek valida a agenda semanal inteira antes da substituição:
// exatamente uma entrada por dia 0–6 e invariantes de cada janela.
// Qualquer falha aborta a operação por completo (nada é gravado).
func ValidateWeek(windows []models.AvailabilityWindow) error {
	if len(windows) != 7 {
		return ErrValidation(fmt.Sprintf("a agenda semanal exige 7 dias, recebidos %d", len(windows)))
	}

	seen := [7]bool{}
	for _, w := range windows {
		if w.DayOfWeek < 0 || w.DayOfWeek > 6 {
			return ErrValidation(fmt.Sprintf("dia da semana inválido: %d", w.DayOfWeek))
		}
		if seen[w.DayOfWeek] {
			return ErrValidation(fmt.Sprintf("dia da semana duplicado: %d", w.DayOfWeek))
		}
		seen[w.DayOfWeek] = true

		if err := validateWindow(w); err != nil {
			return err
		}
	}

	return nil
}

func validateWindow(w models.AvailabilityWindow) error {
	if !w.IsAvailable {
		// dia fechado: horários são ignorados
		return nil
	}

	if !localtime.IsClock(w.StartTime) || !localtime.IsClock(w.EndTime) {
		return ErrValidation(fmt.Sprintf("dia %d: horários devem estar no formato 15:04", w.DayOfWeek))
	}
	if !localtime.ClockBefore(w.StartTime, w.EndTime) {
		return ErrValidation(fmt.Sprintf("dia %d: início deve ser antes do fim", w.DayOfWeek))
	}

	hasBreakStart := w.BreakStart != ""
	hasBreakEnd := w.BreakEnd != ""
	if hasBreakStart != hasBreakEnd {
		return ErrValidation(fmt.Sprintf("dia %d: pausa exige início e fim", w.DayOfWeek))
	}
	if !hasBreakStart {
		return nil
	}

	if !localtime.IsClock(w.BreakStart) || !localtime.IsClock(w.BreakEnd) {
		return ErrValidation(fmt.Sprintf("dia %d: pausa deve estar no formato 15:04", w.DayOfWeek))
	}
	if !localtime.ClockBefore(w.BreakStart, w.BreakEnd) {
		return ErrValidation(fmt.Sprintf("dia %d: início da pausa deve ser antes do fim", w.DayOfWeek))
	}
	// startTime <= breakStart  e  breakEnd <= endTime
	if localtime.ClockBefore(w.BreakStart, w.StartTime) || localtime.ClockBefore(w.EndTime, w.BreakEnd) {
		return ErrValidation(fmt.Sprintf("dia %d: pausa deve caber dentro da janela", w.DayOfWeek))
	}

	return nil
}
