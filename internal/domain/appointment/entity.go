package appointment

import (
	"time"

	"github.com/karlwennerstrom/paltattoo-2025-sub000/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Confirm(ap *models.Appointment, now time.Time) error {
	if err := CanConfirm(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusConfirmed)
	ap.ConfirmedAt = &now
	return nil
}

func Cancel(ap *models.Appointment, reason string, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancellationReason = reason
	ap.CancelledAt = &now
	return nil
}

// Complete conclui o agendamento; preço final e observações são
// opcionais e só aplicados quando informados.
func Complete(ap *models.Appointment, finalPrice *float64, notes *string, now time.Time) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	if finalPrice != nil {
		ap.EstimatedPrice = *finalPrice
	}
	if notes != nil {
		ap.Notes = *notes
	}
	return nil
}

func NoShow(ap *models.Appointment) error {
	if err := CanNoShow(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusNoShow)
	return nil
}

// ApplyReschedule troca o intervalo mantendo a duração denormalizada
// consistente. O chamador já validou disponibilidade e conflito.
func ApplyReschedule(ap *models.Appointment, date, start, end time.Time) {
	ap.Date = date
	ap.StartTime = start
	ap.EndTime = end
	ap.DurationHours = DurationHours(start, end)
}

func DurationHours(start, end time.Time) float64 {
	return end.Sub(start).Hours()
}
