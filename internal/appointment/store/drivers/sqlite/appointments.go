package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/petpalhq/petpal/internal/appointment/domain"
	"github.com/petpalhq/petpal/internal/appointment/store"
)

type appointmentsRepo struct {
	db *sql.DB
}

func (r *appointmentsRepo) CreateAppointment(ctx context.Context, a domain.Appointment) (domain.Appointment, error) {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO appointments
			(id, owner_id, pet_id, appointment_date, appointment_type, veterinarian, reason, notes, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.OwnerID, a.PetID, a.AppointmentDate.UTC().Format(time.RFC3339Nano),
		a.AppointmentType, a.Veterinarian, a.Reason, a.Notes, a.Status,
		now.Format(time.RFC3339Nano), now.Format(time.RFC3339Nano))
	if err != nil {
		return domain.Appointment{}, err
	}

	a.CreatedAt = now
	a.UpdatedAt = now
	return a, nil
}

func (r *appointmentsRepo) GetAppointment(ctx context.Context, id, ownerID string) (domain.Appointment, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, owner_id, pet_id, appointment_date, appointment_type, veterinarian, reason, notes, status, created_at, updated_at
		FROM appointments
		WHERE id = ? AND owner_id = ?`, id, ownerID)

	a, err := scanAppointment(row)
	if err != nil {
		return domain.Appointment{}, mapNotFound(err)
	}
	return a, nil
}

func (r *appointmentsRepo) ListAppointmentsByOwner(ctx context.Context, ownerID string) ([]domain.Appointment, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, owner_id, pet_id, appointment_date, appointment_type, veterinarian, reason, notes, status, created_at, updated_at
		FROM appointments
		WHERE owner_id = ?
		ORDER BY appointment_date ASC`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	appts := make([]domain.Appointment, 0)
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		appts = append(appts, a)
	}
	return appts, rows.Err()
}

func (r *appointmentsRepo) ListAppointmentsByPet(ctx context.Context, ownerID, petID string) ([]domain.Appointment, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, owner_id, pet_id, appointment_date, appointment_type, veterinarian, reason, notes, status, created_at, updated_at
		FROM appointments
		WHERE owner_id = ? AND pet_id = ?
		ORDER BY appointment_date ASC`, ownerID, petID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	appts := make([]domain.Appointment, 0)
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		appts = append(appts, a)
	}
	return appts, rows.Err()
}

func (r *appointmentsRepo) UpdateAppointment(ctx context.Context, a domain.Appointment) (domain.Appointment, error) {
	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx, `
		UPDATE appointments
		SET appointment_date = ?, appointment_type = ?, veterinarian = ?, reason = ?, notes = ?, status = ?, updated_at = ?
		WHERE id = ? AND owner_id = ?`,
		a.AppointmentDate.UTC().Format(time.RFC3339Nano), a.AppointmentType, a.Veterinarian,
		a.Reason, a.Notes, a.Status, now.Format(time.RFC3339Nano), a.ID, a.OwnerID)
	if err != nil {
		return domain.Appointment{}, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return domain.Appointment{}, err
	}
	if affected == 0 {
		return domain.Appointment{}, store.ErrNotFound
	}

	a.UpdatedAt = now
	return a, nil
}

func (r *appointmentsRepo) DeleteAppointment(ctx context.Context, id, ownerID string) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM appointments
		WHERE id = ? AND owner_id = ?`, id, ownerID)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAppointment(row rowScanner) (domain.Appointment, error) {
	var a domain.Appointment
	var apptDate, createdAt, updatedAt string

	err := row.Scan(&a.ID, &a.OwnerID, &a.PetID, &apptDate, &a.AppointmentType,
		&a.Veterinarian, &a.Reason, &a.Notes, &a.Status, &createdAt, &updatedAt)
	if err != nil {
		return domain.Appointment{}, err
	}

	a.AppointmentDate, _ = time.Parse(time.RFC3339Nano, apptDate)
	a.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
	a.UpdatedAt, _ = time.Parse(time.RFC3339Nano, updatedAt)
	return a, nil
}
