package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/consultation-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/consultation-scheduler/internal/httperr"
	"github.com/BruksfildServices01/consultation-scheduler/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Offices
// --------------------------------------------------

func (r *AppointmentGormRepository) ListOffices(
	ctx context.Context,
) ([]domain.Office, error) {

	var rows []models.Office
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Office, 0, len(rows))
	for _, o := range rows {
		out = append(out, domain.Office{ID: o.ID, Name: o.Name})
	}
	return out, nil
}

// --------------------------------------------------
// Appointment (create / list)
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap domain.Appointment,
) (domain.Appointment, error) {

	row := toModel(ap)
	if err := r.db.WithContext(ctx).
		Omit("Office").
		Create(&row).Error; err != nil {

		if httperr.IsUniqueViolation(err) {
			return domain.Appointment{}, fmt.Errorf("appointment %s already stored: %w", ap.ID, err)
		}
		return domain.Appointment{}, err
	}

	row.Office = models.Office{ID: ap.Office.ID, Name: ap.Office.Name}
	return toDomain(row)
}

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
) ([]domain.Appointment, error) {

	var rows []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Office").
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Appointment, 0, len(rows))
	for _, row := range rows {
		ap, err := toDomain(row)
		if err != nil {
			return nil, err
		}
		out = append(out, ap)
	}
	return out, nil
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

// UpdateAppointmentStatus re-checks the workflow against the locked row so
// that two service instances cannot both apply a transition from a stale
// status.
func (r *AppointmentGormRepository) UpdateAppointmentStatus(
	ctx context.Context,
	id string,
	target domain.Status,
) (domain.Appointment, error) {

	var updated models.Appointment

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row models.Appointment
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).
			First(&row).Error; err != nil {

			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &domain.TransitionError{Kind: domain.TransitionNotFound, ID: id, To: target}
			}
			return err
		}

		if !domain.CanTransition(domain.Status(row.Status), target) {
			return &domain.TransitionError{
				Kind: domain.TransitionIllegal,
				ID:   id,
				From: domain.Status(row.Status),
				To:   target,
			}
		}

		row.Status = string(target)
		if err := tx.Omit("Office").Save(&row).Error; err != nil {
			return err
		}

		return tx.Preload("Office").First(&updated, "id = ?", id).Error
	})
	if err != nil {
		return domain.Appointment{}, err
	}

	return toDomain(updated)
}

// --------------------------------------------------
// Mapping
// --------------------------------------------------

func toModel(ap domain.Appointment) models.Appointment {
	return models.Appointment{
		ID:            ap.ID,
		Title:         ap.Title,
		RequesterName: ap.RequesterName,
		OfficeID:      ap.Office.ID,
		ServiceType:   string(ap.ServiceType),
		Status:        string(ap.Status),
		Date:          ap.Date.String(),
		Time:          ap.Time,
		Description:   ap.Description,
		GroupMembers:  ap.GroupMembers,
		Attachment:    ap.Attachment,
		CreatedAt:     ap.CreatedAt,
		UpdatedAt:     ap.UpdatedAt,
	}
}

func toDomain(row models.Appointment) (domain.Appointment, error) {
	date, err := domain.ParseDate(row.Date)
	if err != nil {
		return domain.Appointment{}, fmt.Errorf("appointment %s: %w", row.ID, err)
	}

	return domain.Appointment{
		ID:            row.ID,
		Title:         row.Title,
		RequesterName: row.RequesterName,
		Office:        domain.Office{ID: row.Office.ID, Name: row.Office.Name},
		ServiceType:   domain.ServiceType(row.ServiceType),
		Status:        domain.Status(row.Status),
		Date:          date,
		Time:          row.Time,
		Description:   row.Description,
		GroupMembers:  row.GroupMembers,
		Attachment:    row.Attachment,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}, nil
}

// Compile-time check
var _ domain.Backend = (*AppointmentGormRepository)(nil)
