package appointment

import (
	"context"
	"errors"
	"testing"

	domain "github.com/karlwennerstrom/paltattoo-2025-sub000/internal/domain/appointment"
)

func TestRescheduleAppointment(t *testing.T) {
	repo, dateStr := setupRepo(t)
	id := createScheduled(t, repo, dateStr)

	uc := NewRescheduleAppointment(repo, nil, nil)

	ap, err := uc.Execute(context.Background(), RescheduleAppointmentInput{
		ArtistID:      1,
		AppointmentID: id,
		Date:          dateStr,
		StartTime:     "14:00",
		EndTime:       "16:00",
	})
	if err != nil {
		t.Fatalf("reschedule: %v", err)
	}

	if got := ap.StartTime.Format("15:04"); got != "14:00" {
		t.Errorf("início não mudou: %s", got)
	}
	if ap.DurationHours != 2 {
		t.Errorf("duração deveria ser recalculada: %v", ap.DurationHours)
	}
	if ap.Status != string(domain.StatusScheduled) {
		t.Errorf("reschedule não muda status: %s", ap.Status)
	}
}

// O agendamento movido não pode conflitar com ele mesmo: mover para um
// horário que cruza o atual é válido.
func TestRescheduleSelfOverlap(t *testing.T) {
	repo, dateStr := setupRepo(t)
	id := createScheduled(t, repo, dateStr) // 10:00-11:00

	uc := NewRescheduleAppointment(repo, nil, nil)

	if _, err := uc.Execute(context.Background(), RescheduleAppointmentInput{
		ArtistID:      1,
		AppointmentID: id,
		Date:          dateStr,
		StartTime:     "10:30",
		EndTime:       "11:30",
	}); err != nil {
		t.Fatalf("mover sobre o próprio horário deveria valer: %v", err)
	}
}

func TestRescheduleConflictsWithOthers(t *testing.T) {
	repo, dateStr := setupRepo(t)
	id := createScheduled(t, repo, dateStr) // 10:00-11:00

	// segundo agendamento às 14:00-15:00
	createUC := NewCreateAppointment(repo, nil, nil)
	in := validCreateInput(dateStr)
	in.StartTime = "14:00"
	in.EndTime = "15:00"
	if _, err := createUC.Execute(context.Background(), in); err != nil {
		t.Fatalf("segundo create: %v", err)
	}

	uc := NewRescheduleAppointment(repo, nil, nil)

	_, err := uc.Execute(context.Background(), RescheduleAppointmentInput{
		ArtistID:      1,
		AppointmentID: id,
		Date:          dateStr,
		StartTime:     "14:30",
		EndTime:       "15:30",
	})
	var sErr *domain.SlotUnavailableError
	if !errors.As(err, &sErr) {
		t.Fatalf("mover para cima de outro deveria conflitar, veio %v", err)
	}
}

func TestRescheduleTerminalFails(t *testing.T) {
	repo, dateStr := setupRepo(t)
	id := createScheduled(t, repo, dateStr)

	cancelUC := NewCancelAppointment(repo, nil, nil)
	if _, err := cancelUC.Execute(context.Background(), 1, id, ""); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	uc := NewRescheduleAppointment(repo, nil, nil)
	_, err := uc.Execute(context.Background(), RescheduleAppointmentInput{
		ArtistID:      1,
		AppointmentID: id,
		Date:          dateStr,
		StartTime:     "15:00",
		EndTime:       "16:00",
	})
	var tErr *domain.InvalidTransitionError
	if !errors.As(err, &tErr) {
		t.Fatalf("reschedule de cancelado deveria falhar, veio %v", err)
	}
}

// Um cancel que chega entre a leitura do agendamento e a gravação do
// novo intervalo não pode ser ressuscitado: o status que vale é o
// armazenado no momento da escrita.
func TestRescheduleStaleReadDoesNotResurrect(t *testing.T) {
	repo, dateStr := setupRepo(t)
	id := createScheduled(t, repo, dateStr)

	// cópia lida antes do cancel concorrente
	stale, err := repo.GetAppointmentForArtist(context.Background(), id, 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	cancelUC := NewCancelAppointment(repo, nil, nil)
	if _, err := cancelUC.Execute(context.Background(), 1, id, ""); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	date, start, end, perr := parseInterval(dateStr, "15:00", "16:00")
	if perr != nil {
		t.Fatalf("parseInterval: %v", perr)
	}

	err = repo.RescheduleAppointment(context.Background(), stale, date, start, end)
	var tErr *domain.InvalidTransitionError
	if !errors.As(err, &tErr) {
		t.Fatalf("reschedule de cópia obsoleta deveria falhar, veio %v", err)
	}

	after, err := repo.GetAppointmentForArtist(context.Background(), id, 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if after.Status != string(domain.StatusCancelled) {
		t.Errorf("agendamento cancelado foi ressuscitado: %s", after.Status)
	}
}

func TestRescheduleOutsideWindowFails(t *testing.T) {
	repo, dateStr := setupRepo(t)
	id := createScheduled(t, repo, dateStr)

	uc := NewRescheduleAppointment(repo, nil, nil)
	_, err := uc.Execute(context.Background(), RescheduleAppointmentInput{
		ArtistID:      1,
		AppointmentID: id,
		Date:          dateStr,
		StartTime:     "19:00",
		EndTime:       "20:00",
	})
	var sErr *domain.SlotUnavailableError
	if !errors.As(err, &sErr) {
		t.Fatalf("fora da janela deveria falhar, veio %v", err)
	}
}
