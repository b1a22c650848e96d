package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/karlwennerstrom/paltattoo-2025-sub000/internal/domain/appointment"
	"github.com/karlwennerstrom/paltattoo-2025-sub000/internal/httperr"
	"github.com/karlwennerstrom/paltattoo-2025-sub000/internal/localtime"
	"github.com/karlwennerstrom/paltattoo-2025-sub000/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Artist / Client
// --------------------------------------------------

func (r *AppointmentGormRepository) GetArtistByID(
	ctx context.Context,
	id uint,
) (*models.Artist, error) {

	var artist models.Artist
	if err := r.db.WithContext(ctx).First(&artist, id).Error; err != nil {
		return nil, domain.ErrNotFound("artista")
	}
	return &artist, nil
}

func (r *AppointmentGormRepository) GetArtistBySlug(
	ctx context.Context,
	slug string,
) (*models.Artist, error) {

	var artist models.Artist
	if err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&artist).Error; err != nil {
		return nil, domain.ErrNotFound("artista")
	}
	return &artist, nil
}

func (r *AppointmentGormRepository) GetClientByID(
	ctx context.Context,
	id uint,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).First(&client, id).Error; err != nil {
		return nil, domain.ErrNotFound("cliente")
	}
	return &client, nil
}

// --------------------------------------------------
// Agenda semanal (substituição atômica)
// --------------------------------------------------

func (r *AppointmentGormRepository) ReplaceWeeklySchedule(
	ctx context.Context,
	artistID uint,
	windows []models.AvailabilityWindow,
) ([]models.AvailabilityWindow, error) {

	// delete-7 + insert-7 numa transação só: leitores nunca veem
	// uma semana pela metade
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("artist_id = ?", artistID).
			Delete(&models.AvailabilityWindow{}).Error; err != nil {
			return err
		}

		for i := range windows {
			windows[i].ID = 0
			windows[i].ArtistID = artistID
		}

		return tx.Create(&windows).Error
	})
	if err != nil {
		return nil, err
	}

	return r.GetWeeklySchedule(ctx, artistID)
}

func (r *AppointmentGormRepository) GetWeeklySchedule(
	ctx context.Context,
	artistID uint,
) ([]models.AvailabilityWindow, error) {

	var windows []models.AvailabilityWindow
	if err := r.db.WithContext(ctx).
		Where("artist_id = ?", artistID).
		Order("day_of_week ASC").
		Find(&windows).Error; err != nil {
		return nil, err
	}

	return windows, nil
}

func (r *AppointmentGormRepository) GetWindowForDay(
	ctx context.Context,
	artistID uint,
	dayOfWeek int,
) (*models.AvailabilityWindow, error) {

	var w models.AvailabilityWindow
	if err := r.db.WithContext(ctx).
		Where("artist_id = ? AND day_of_week = ?", artistID, dayOfWeek).
		First(&w).Error; err != nil {
		return nil, domain.ErrNotFound("janela de disponibilidade")
	}

	return &w, nil
}

// --------------------------------------------------
// Appointment (criação / conflito)
// --------------------------------------------------

// lockConflicts trava (FOR UPDATE) os agendamentos ativos do dia que
// cruzam [start,end) e devolve quantos são. Só faz sentido dentro de
// uma transação.
func lockConflicts(
	tx *gorm.DB,
	artistID uint,
	date, start, end time.Time,
	excludeID *uint,
) (int, error) {

	q := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"artist_id = ? AND date = ? AND status IN ? AND start_time < ? AND end_time > ?",
			artistID,
			localtime.Midnight(date),
			domain.ActiveStatuses(),
			end,
			start,
		)
	if excludeID != nil {
		q = q.Where("id <> ?", *excludeID)
	}

	var conflicts []models.Appointment
	if err := q.Find(&conflicts).Error; err != nil {
		return 0, err
	}

	return len(conflicts), nil
}

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		n, err := lockConflicts(tx, ap.ArtistID, ap.Date, ap.StartTime, ap.EndTime, nil)
		if err != nil {
			return err
		}
		if n > 0 {
			return domain.ErrSlotUnavailable("já existe um agendamento nesse horário")
		}

		return tx.Create(ap).Error
	})

	// a constraint de exclusão é a segunda linha de defesa: se dois
	// escritores passarem pelo gate, o Postgres rejeita o segundo
	if httperr.IsExclusionConflict(err) {
		return domain.ErrSlotUnavailable("já existe um agendamento nesse horário")
	}

	return err
}

func (r *AppointmentGormRepository) RescheduleAppointment(
	ctx context.Context,
	ap *models.Appointment,
	date, start, end time.Time,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// relê a linha com lock: um cancel concorrente entre a leitura
		// do chamador e esta transação não pode ser ressuscitado
		var fresh models.Appointment
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND artist_id = ?", ap.ID, ap.ArtistID).
			First(&fresh).Error; err != nil {
			return domain.ErrNotFound("agendamento")
		}
		if err := domain.CanReschedule(domain.Status(fresh.Status)); err != nil {
			return err
		}

		n, err := lockConflicts(tx, ap.ArtistID, date, start, end, &ap.ID)
		if err != nil {
			return err
		}
		if n > 0 {
			return domain.ErrSlotUnavailable("já existe um agendamento no novo horário")
		}

		domain.ApplyReschedule(&fresh, localtime.Midnight(date), start, end)
		if err := tx.Save(&fresh).Error; err != nil {
			return err
		}

		fresh.Client = ap.Client // associação pré-carregada não volta no reread
		*ap = fresh
		return nil
	})

	if httperr.IsExclusionConflict(err) {
		return domain.ErrSlotUnavailable("já existe um agendamento no novo horário")
	}

	return err
}

func (r *AppointmentGormRepository) CountOverlapping(
	ctx context.Context,
	artistID uint,
	date, start, end time.Time,
	excludeID *uint,
) (int64, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"artist_id = ? AND date = ? AND status IN ? AND start_time < ? AND end_time > ?",
			artistID,
			localtime.Midnight(date),
			domain.ActiveStatuses(),
			end,
			start,
		)
	if excludeID != nil {
		q = q.Where("id <> ?", *excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

// --------------------------------------------------
// Appointment (mudança de estado)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointmentForArtist(
	ctx context.Context,
	appointmentID uint,
	artistID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Where("id = ? AND artist_id = ?", appointmentID, artistID).
		First(&ap).Error; err != nil {
		return nil, domain.ErrNotFound("agendamento")
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *AppointmentGormRepository) UpdateAppointmentFields(
	ctx context.Context,
	appointmentID uint,
	patch domain.Patch,
) error {

	updates := map[string]any{}
	if patch.Notes != nil {
		updates["notes"] = *patch.Notes
	}
	if patch.Location != nil {
		updates["location"] = *patch.Location
	}
	if patch.EstimatedPrice != nil {
		updates["estimated_price"] = *patch.EstimatedPrice
	}
	if patch.DepositAmount != nil {
		updates["deposit_amount"] = *patch.DepositAmount
	}
	if patch.DepositPaid != nil {
		updates["deposit_paid"] = *patch.DepositPaid
	}
	if len(updates) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", appointmentID).
		Updates(updates).Error
}

// --------------------------------------------------
// Leituras
// --------------------------------------------------

func (r *AppointmentGormRepository) ListActiveForDay(
	ctx context.Context,
	artistID uint,
	date time.Time,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("id", "start_time", "end_time", "status").
		Where(
			"artist_id = ? AND date = ? AND status IN ?",
			artistID,
			localtime.Midnight(date),
			domain.ActiveStatuses(),
		).
		Order("start_time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

func (r *AppointmentGormRepository) ListForArtist(
	ctx context.Context,
	artistID uint,
	f domain.ListFilter,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("Client").
		Where("artist_id = ?", artistID)

	if f.From != nil {
		q = q.Where("date >= ?", localtime.Midnight(*f.From))
	}
	if f.To != nil {
		q = q.Where("date <= ?", localtime.Midnight(*f.To))
	}
	if f.Status != nil {
		q = q.Where("status = ?", string(*f.Status))
	}

	var aps []models.Appointment
	if err := q.
		Order("date ASC, start_time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

func (r *AppointmentGormRepository) ListUpcoming(
	ctx context.Context,
	artistID uint,
	daysAhead int,
) ([]models.Appointment, error) {

	today := localtime.Midnight(localtime.Now())
	limit := today.AddDate(0, 0, daysAhead)

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Where(
			"artist_id = ? AND status IN ? AND date >= ? AND date <= ?",
			artistID,
			domain.ActiveStatuses(),
			today,
			limit,
		).
		Order("date ASC, start_time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

func (r *AppointmentGormRepository) GetStats(
	ctx context.Context,
	artistID uint,
) (*domain.Stats, error) {

	type statusCount struct {
		Status string
		Total  int64
	}

	var counts []statusCount
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Select("status, COUNT(*) AS total").
		Where("artist_id = ?", artistID).
		Group("status").
		Scan(&counts).Error; err != nil {
		return nil, err
	}

	stats := &domain.Stats{ByStatus: map[string]int64{}}
	for _, c := range counts {
		stats.ByStatus[c.Status] = c.Total
		stats.TotalAppointments += c.Total
	}

	type completedAgg struct {
		Revenue     float64
		AvgDuration float64
	}

	var agg completedAgg
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Select("COALESCE(SUM(estimated_price), 0) AS revenue, COALESCE(AVG(duration_hours), 0) AS avg_duration").
		Where("artist_id = ? AND status = ?", artistID, string(domain.StatusCompleted)).
		Scan(&agg).Error; err != nil {
		return nil, err
	}

	stats.TotalRevenue = agg.Revenue
	stats.AvgDurationHours = agg.AvgDuration

	return stats, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
