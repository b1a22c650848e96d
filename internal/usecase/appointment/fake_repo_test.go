package appointment

import (
	"context"
	"time"

	domain "github.com/karlwennerstrom/paltattoo-2025-sub000/internal/domain/appointment"
	"github.com/karlwennerstrom/paltattoo-2025-sub000/internal/localtime"
	"github.com/karlwennerstrom/paltattoo-2025-sub000/internal/models"
)

// fakeRepo é um repositório em memória com a mesma semântica de
// conflito do repositório real: agendamentos ativos do mesmo artista
// não podem cruzar intervalo.
type fakeRepo struct {
	artists map[uint]*models.Artist
	clients map[uint]*models.Client
	windows map[uint]map[int]*models.AvailabilityWindow

	appointments map[uint]*models.Appointment
	nextID       uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		artists:      map[uint]*models.Artist{},
		clients:      map[uint]*models.Client{},
		windows:      map[uint]map[int]*models.AvailabilityWindow{},
		appointments: map[uint]*models.Appointment{},
		nextID:       1,
	}
}

func (f *fakeRepo) addArtist(a *models.Artist) *models.Artist {
	f.artists[a.ID] = a
	return a
}

func (f *fakeRepo) addClient(c *models.Client) *models.Client {
	f.clients[c.ID] = c
	return c
}

func (f *fakeRepo) addWindow(artistID uint, w *models.AvailabilityWindow) {
	if f.windows[artistID] == nil {
		f.windows[artistID] = map[int]*models.AvailabilityWindow{}
	}
	f.windows[artistID][w.DayOfWeek] = w
}

// --------------------------------------------------
// Artist / Client
// --------------------------------------------------

func (f *fakeRepo) GetArtistByID(_ context.Context, id uint) (*models.Artist, error) {
	if a, ok := f.artists[id]; ok {
		return a, nil
	}
	return nil, domain.ErrNotFound("artista")
}

func (f *fakeRepo) GetArtistBySlug(_ context.Context, slug string) (*models.Artist, error) {
	for _, a := range f.artists {
		if a.Slug == slug {
			return a, nil
		}
	}
	return nil, domain.ErrNotFound("artista")
}

func (f *fakeRepo) GetClientByID(_ context.Context, id uint) (*models.Client, error) {
	if c, ok := f.clients[id]; ok {
		return c, nil
	}
	return nil, domain.ErrNotFound("cliente")
}

// --------------------------------------------------
// Agenda semanal
// --------------------------------------------------

func (f *fakeRepo) ReplaceWeeklySchedule(
	_ context.Context,
	artistID uint,
	windows []models.AvailabilityWindow,
) ([]models.AvailabilityWindow, error) {

	f.windows[artistID] = map[int]*models.AvailabilityWindow{}
	for i := range windows {
		w := windows[i]
		w.ArtistID = artistID
		f.windows[artistID][w.DayOfWeek] = &w
	}
	return f.GetWeeklySchedule(context.Background(), artistID)
}

func (f *fakeRepo) GetWeeklySchedule(_ context.Context, artistID uint) ([]models.AvailabilityWindow, error) {
	var out []models.AvailabilityWindow
	for day := 0; day < 7; day++ {
		if w, ok := f.windows[artistID][day]; ok {
			out = append(out, *w)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetWindowForDay(_ context.Context, artistID uint, dayOfWeek int) (*models.AvailabilityWindow, error) {
	if w, ok := f.windows[artistID][dayOfWeek]; ok {
		return w, nil
	}
	return nil, domain.ErrNotFound("janela de disponibilidade")
}

// --------------------------------------------------
// Appointment (criação / conflito)
// --------------------------------------------------

func (f *fakeRepo) overlapping(artistID uint, date, start, end time.Time, excludeID *uint) int64 {
	var n int64
	for _, ap := range f.appointments {
		if ap.ArtistID != artistID {
			continue
		}
		if excludeID != nil && ap.ID == *excludeID {
			continue
		}
		if !domain.Status(ap.Status).IsActive() {
			continue
		}
		if !ap.Date.Equal(localtime.Midnight(date)) {
			continue
		}
		if domain.Overlaps(start, end, ap.StartTime, ap.EndTime) {
			n++
		}
	}
	return n
}

func (f *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	if f.overlapping(ap.ArtistID, ap.Date, ap.StartTime, ap.EndTime, nil) > 0 {
		return domain.ErrSlotUnavailable("já existe um agendamento nesse horário")
	}

	ap.ID = f.nextID
	f.nextID++
	if c, ok := f.clients[ap.ClientID]; ok {
		ap.Client = *c
	}
	stored := *ap
	f.appointments[ap.ID] = &stored
	return nil
}

func (f *fakeRepo) RescheduleAppointment(
	_ context.Context,
	ap *models.Appointment,
	date, start, end time.Time,
) error {

	// mesma releitura do repositório real: o status que vale é o
	// armazenado, não o da cópia do chamador
	fresh, ok := f.appointments[ap.ID]
	if !ok || fresh.ArtistID != ap.ArtistID {
		return domain.ErrNotFound("agendamento")
	}
	if err := domain.CanReschedule(domain.Status(fresh.Status)); err != nil {
		return err
	}

	if f.overlapping(ap.ArtistID, date, start, end, &ap.ID) > 0 {
		return domain.ErrSlotUnavailable("já existe um agendamento no novo horário")
	}

	updated := *fresh
	domain.ApplyReschedule(&updated, localtime.Midnight(date), start, end)
	updated.Client = ap.Client
	f.appointments[ap.ID] = &updated
	*ap = updated
	return nil
}

func (f *fakeRepo) CountOverlapping(
	_ context.Context,
	artistID uint,
	date, start, end time.Time,
	excludeID *uint,
) (int64, error) {
	return f.overlapping(artistID, date, start, end, excludeID), nil
}

// --------------------------------------------------
// Appointment (mudança de estado)
// --------------------------------------------------

func (f *fakeRepo) GetAppointmentForArtist(_ context.Context, appointmentID, artistID uint) (*models.Appointment, error) {
	ap, ok := f.appointments[appointmentID]
	if !ok || ap.ArtistID != artistID {
		return nil, domain.ErrNotFound("agendamento")
	}
	found := *ap
	return &found, nil
}

func (f *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	stored := *ap
	f.appointments[ap.ID] = &stored
	return nil
}

func (f *fakeRepo) UpdateAppointmentFields(_ context.Context, appointmentID uint, patch domain.Patch) error {
	ap, ok := f.appointments[appointmentID]
	if !ok {
		return domain.ErrNotFound("agendamento")
	}

	if patch.Notes != nil {
		ap.Notes = *patch.Notes
	}
	if patch.Location != nil {
		ap.Location = *patch.Location
	}
	if patch.EstimatedPrice != nil {
		ap.EstimatedPrice = *patch.EstimatedPrice
	}
	if patch.DepositAmount != nil {
		ap.DepositAmount = *patch.DepositAmount
	}
	if patch.DepositPaid != nil {
		ap.DepositPaid = *patch.DepositPaid
	}
	return nil
}

// --------------------------------------------------
// Leituras
// --------------------------------------------------

func (f *fakeRepo) ListActiveForDay(_ context.Context, artistID uint, date time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.ArtistID == artistID &&
			domain.Status(ap.Status).IsActive() &&
			ap.Date.Equal(localtime.Midnight(date)) {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListForArtist(_ context.Context, artistID uint, filt domain.ListFilter) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.ArtistID != artistID {
			continue
		}
		if filt.From != nil && ap.Date.Before(localtime.Midnight(*filt.From)) {
			continue
		}
		if filt.To != nil && ap.Date.After(localtime.Midnight(*filt.To)) {
			continue
		}
		if filt.Status != nil && ap.Status != string(*filt.Status) {
			continue
		}
		out = append(out, *ap)
	}
	return out, nil
}

func (f *fakeRepo) ListUpcoming(_ context.Context, artistID uint, daysAhead int) ([]models.Appointment, error) {
	today := localtime.Midnight(localtime.Now())
	limit := today.AddDate(0, 0, daysAhead)

	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.ArtistID == artistID &&
			domain.Status(ap.Status).IsActive() &&
			!ap.Date.Before(today) && !ap.Date.After(limit) {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetStats(_ context.Context, artistID uint) (*domain.Stats, error) {
	stats := &domain.Stats{ByStatus: map[string]int64{}}

	var completed int64
	for _, ap := range f.appointments {
		if ap.ArtistID != artistID {
			continue
		}
		stats.TotalAppointments++
		stats.ByStatus[ap.Status]++
		if ap.Status == string(domain.StatusCompleted) {
			completed++
			stats.TotalRevenue += ap.EstimatedPrice
			stats.AvgDurationHours += ap.DurationHours
		}
	}
	if completed > 0 {
		stats.AvgDurationHours /= float64(completed)
	}
	return stats, nil
}

var _ domain.Repository = (*fakeRepo)(nil)
