package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/petpalhq/petpal/internal/medical/domain"
	"github.com/petpalhq/petpal/internal/medical/store"
)

type medicalRecordsRepo struct {
	db *sql.DB
}

func (r *medicalRecordsRepo) CreateMedicalRecord(ctx context.Context, rec domain.MedicalRecord) (domain.MedicalRecord, error) {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO medical_records
			(id, owner_id, pet_id, visit_date, record_type, veterinarian, diagnosis, treatment, medications, follow_up_date, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.OwnerID, rec.PetID, rec.VisitDate.UTC().Format(time.RFC3339Nano),
		rec.RecordType, rec.Veterinarian, rec.Diagnosis, rec.Treatment, rec.Medications,
		timePtrToString(rec.FollowUpDate), rec.Notes,
		now.Format(time.RFC3339Nano), now.Format(time.RFC3339Nano))
	if err != nil {
		return domain.MedicalRecord{}, err
	}

	rec.CreatedAt = now
	rec.UpdatedAt = now
	return rec, nil
}

func (r *medicalRecordsRepo) GetMedicalRecord(ctx context.Context, id, ownerID string) (domain.MedicalRecord, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, owner_id, pet_id, visit_date, record_type, veterinarian, diagnosis, treatment, medications, follow_up_date, notes, created_at, updated_at
		FROM medical_records
		WHERE id = ? AND owner_id = ?`, id, ownerID)

	rec, err := scanMedicalRecord(row)
	if err != nil {
		return domain.MedicalRecord{}, mapNotFound(err)
	}
	return rec, nil
}

func (r *medicalRecordsRepo) ListMedicalRecordsByOwner(ctx context.Context, ownerID string) ([]domain.MedicalRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, owner_id, pet_id, visit_date, record_type, veterinarian, diagnosis, treatment, medications, follow_up_date, notes, created_at, updated_at
		FROM medical_records
		WHERE owner_id = ?
		ORDER BY visit_date DESC`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]domain.MedicalRecord, 0)
	for rows.Next() {
		rec, err := scanMedicalRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *medicalRecordsRepo) ListMedicalRecordsByPet(ctx context.Context, ownerID, petID string) ([]domain.MedicalRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, owner_id, pet_id, visit_date, record_type, veterinarian, diagnosis, treatment, medications, follow_up_date, notes, created_at, updated_at
		FROM medical_records
		WHERE owner_id = ? AND pet_id = ?
		ORDER BY visit_date DESC`, ownerID, petID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]domain.MedicalRecord, 0)
	for rows.Next() {
		rec, err := scanMedicalRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *medicalRecordsRepo) UpdateMedicalRecord(ctx context.Context, rec domain.MedicalRecord) (domain.MedicalRecord, error) {
	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx, `
		UPDATE medical_records
		SET visit_date = ?, record_type = ?, veterinarian = ?, diagnosis = ?, treatment = ?, medications = ?, follow_up_date = ?, notes = ?, updated_at = ?
		WHERE id = ? AND owner_id = ?`,
		rec.VisitDate.UTC().Format(time.RFC3339Nano), rec.RecordType, rec.Veterinarian,
		rec.Diagnosis, rec.Treatment, rec.Medications, timePtrToString(rec.FollowUpDate),
		rec.Notes, now.Format(time.RFC3339Nano), rec.ID, rec.OwnerID)
	if err != nil {
		return domain.MedicalRecord{}, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return domain.MedicalRecord{}, err
	}
	if affected == 0 {
		return domain.MedicalRecord{}, store.ErrNotFound
	}

	rec.UpdatedAt = now
	return rec, nil
}

func (r *medicalRecordsRepo) DeleteMedicalRecord(ctx context.Context, id, ownerID string) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM medical_records
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

func scanMedicalRecord(row rowScanner) (domain.MedicalRecord, error) {
	var rec domain.MedicalRecord
	var visitDate, createdAt, updatedAt string
	var followUp sql.NullString

	err := row.Scan(&rec.ID, &rec.OwnerID, &rec.PetID, &visitDate, &rec.RecordType,
		&rec.Veterinarian, &rec.Diagnosis, &rec.Treatment, &rec.Medications,
		&followUp, &rec.Notes, &createdAt, &updatedAt)
	if err != nil {
		return domain.MedicalRecord{}, err
	}

	rec.VisitDate, _ = time.Parse(time.RFC3339Nano, visitDate)
	rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
	rec.UpdatedAt, _ = time.Parse(time.RFC3339Nano, updatedAt)

	if followUp.Valid && followUp.String != "" {
		if t, err := time.Parse(time.RFC3339Nano, followUp.String); err == nil {
			rec.FollowUpDate = &t
		}
	}
	return rec, nil
}

func timePtrToString(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: t.UTC().Format(time.RFC3339Nano), Valid: true}
}
