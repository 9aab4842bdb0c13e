package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"stipendtriage/internal/model"
)

// Postgres-backed stores, selected when a database URI is configured.
type PostgresApplicationStore struct {
	db *sql.DB
}

func NewPostgresApplicationStore(db *sql.DB) *PostgresApplicationStore {
	return &PostgresApplicationStore{db: db}
}

func (s *PostgresApplicationStore) Save(ctx context.Context, app model.Application) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO applications (
			application_id, first_name, last_name, email, phone, date_of_birth,
			ssn, address_line1, address_line2, city, state, zip_code,
			program_name, amount_requested, agreement_accepted, submitted_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		ON CONFLICT (application_id) DO UPDATE SET
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			email = EXCLUDED.email,
			phone = EXCLUDED.phone,
			date_of_birth = EXCLUDED.date_of_birth,
			ssn = EXCLUDED.ssn,
			address_line1 = EXCLUDED.address_line1,
			address_line2 = EXCLUDED.address_line2,
			city = EXCLUDED.city,
			state = EXCLUDED.state,
			zip_code = EXCLUDED.zip_code,
			program_name = EXCLUDED.program_name,
			amount_requested = EXCLUDED.amount_requested,
			agreement_accepted = EXCLUDED.agreement_accepted,
			submitted_at = EXCLUDED.submitted_at
	`,
		app.ApplicationID, app.FirstName, app.LastName, app.Email, app.Phone,
		app.DateOfBirth, app.SSN, app.AddressLine1, app.AddressLine2, app.City,
		app.State, app.ZipCode, app.ProgramName, app.AmountRequested,
		app.AgreementAccepted, app.SubmittedAt,
	)
	if err != nil {
		return fmt.Errorf("insert application: %w", err)
	}
	return nil
}

const applicationColumns = `
	application_id, first_name, last_name, email, phone, date_of_birth,
	ssn, address_line1, address_line2, city, state, zip_code,
	program_name, amount_requested, agreement_accepted, submitted_at
`

func (s *PostgresApplicationStore) GetByID(ctx context.Context, id string) (model.Application, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+applicationColumns+` FROM applications WHERE application_id = $1`, id)

	app, err := scanApplication(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Application{}, ErrNotFound
	}
	if err != nil {
		return model.Application{}, fmt.Errorf("get application: %w", err)
	}
	return app, nil
}

func (s *PostgresApplicationStore) GetAll(ctx context.Context) ([]model.Application, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+applicationColumns+` FROM applications ORDER BY submitted_at ASC, application_id ASC`)
	if err != nil {
		return nil, fmt.Errorf("query applications: %w", err)
	}
	defer rows.Close()

	apps := []model.Application{}
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("scan application: %w", err)
		}
		apps = append(apps, app)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %w", err)
	}
	return apps, nil
}

func (s *PostgresApplicationStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM applications`); err != nil {
		return fmt.Errorf("clear applications: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanApplication(row rowScanner) (model.Application, error) {
	var app model.Application
	err := row.Scan(
		&app.ApplicationID, &app.FirstName, &app.LastName, &app.Email, &app.Phone,
		&app.DateOfBirth, &app.SSN, &app.AddressLine1, &app.AddressLine2, &app.City,
		&app.State, &app.ZipCode, &app.ProgramName, &app.AmountRequested,
		&app.AgreementAccepted, &app.SubmittedAt,
	)
	return app, err
}

type PostgresHandoffStore struct {
	db *sql.DB
}

func NewPostgresHandoffStore(db *sql.DB) *PostgresHandoffStore {
	return &PostgresHandoffStore{db: db}
}

func (s *PostgresHandoffStore) Save(ctx context.Context, rec model.HandoffRecord) error {
	flags, err := json.Marshal(flagsOrEmpty(rec.RiskFlags))
	if err != nil {
		return fmt.Errorf("marshal risk flags: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO handoff_records (
			application_id, applicant_name, email, program_name,
			amount_requested, review_tier, risk_flags, submitted_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (application_id) DO UPDATE SET
			applicant_name = EXCLUDED.applicant_name,
			email = EXCLUDED.email,
			program_name = EXCLUDED.program_name,
			amount_requested = EXCLUDED.amount_requested,
			review_tier = EXCLUDED.review_tier,
			risk_flags = EXCLUDED.risk_flags,
			submitted_at = EXCLUDED.submitted_at
	`,
		rec.ApplicationID, rec.ApplicantName, rec.Email, rec.ProgramName,
		rec.AmountRequested, string(rec.ReviewTier), flags, rec.SubmittedAt,
	)
	if err != nil {
		return fmt.Errorf("insert handoff record: %w", err)
	}
	return nil
}

const handoffColumns = `
	application_id, applicant_name, email, program_name,
	amount_requested, review_tier, risk_flags, submitted_at
`

func (s *PostgresHandoffStore) GetByID(ctx context.Context, id string) (model.HandoffRecord, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+handoffColumns+` FROM handoff_records WHERE application_id = $1`, id)

	rec, err := scanHandoff(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.HandoffRecord{}, ErrNotFound
	}
	if err != nil {
		return model.HandoffRecord{}, fmt.Errorf("get handoff record: %w", err)
	}
	return rec, nil
}

func (s *PostgresHandoffStore) GetAll(ctx context.Context) ([]model.HandoffRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+handoffColumns+` FROM handoff_records ORDER BY submitted_at ASC, application_id ASC`)
	if err != nil {
		return nil, fmt.Errorf("query handoff records: %w", err)
	}
	defer rows.Close()
	return collectHandoffs(rows)
}

func (s *PostgresHandoffStore) GetUndelivered(ctx context.Context, limit int) ([]model.HandoffRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+handoffColumns+`
		FROM handoff_records
		WHERE delivered_at IS NULL
		ORDER BY submitted_at ASC, application_id ASC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query undelivered handoffs: %w", err)
	}
	defer rows.Close()
	return collectHandoffs(rows)
}

func (s *PostgresHandoffStore) MarkDelivered(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE handoff_records SET delivered_at = NOW() WHERE application_id = $1`, id)
	if err != nil {
		return fmt.Errorf("mark delivered: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("mark delivered: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresHandoffStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM handoff_records`); err != nil {
		return fmt.Errorf("clear handoff records: %w", err)
	}
	return nil
}

func scanHandoff(row rowScanner) (model.HandoffRecord, error) {
	var rec model.HandoffRecord
	var tier string
	var flags []byte
	err := row.Scan(
		&rec.ApplicationID, &rec.ApplicantName, &rec.Email, &rec.ProgramName,
		&rec.AmountRequested, &tier, &flags, &rec.SubmittedAt,
	)
	if err != nil {
		return model.HandoffRecord{}, err
	}
	rec.ReviewTier = model.ReviewTier(tier)
	if err := json.Unmarshal(flags, &rec.RiskFlags); err != nil {
		return model.HandoffRecord{}, fmt.Errorf("unmarshal risk flags: %w", err)
	}
	return rec, nil
}

func collectHandoffs(rows *sql.Rows) ([]model.HandoffRecord, error) {
	records := []model.HandoffRecord{}
	for rows.Next() {
		rec, err := scanHandoff(rows)
		if err != nil {
			return nil, fmt.Errorf("scan handoff record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %w", err)
	}
	return records, nil
}

func flagsOrEmpty(flags []string) []string {
	if flags == nil {
		return []string{}
	}
	return flags
}
