package service

import (
	"context"
	"fmt"
	"time"

	"stipendtriage/internal/model"
	"stipendtriage/internal/store"
)

// ApplicationService runs the submission pipeline: assign an identifier,
// persist the full application, triage it, and persist the minimal-PII
// handoff record.
type ApplicationService struct {
	apps     store.ApplicationStore
	handoffs store.HandoffStore
	now      func() time.Time
}

func NewApplicationService(apps store.ApplicationStore, handoffs store.HandoffStore) *ApplicationService {
	return &ApplicationService{
		apps:     apps,
		handoffs: handoffs,
		now:      time.Now,
	}
}

// Submit accepts an already-validated input and returns the response payload
// for the submitter. The triage reference instant is the submission timestamp,
// so re-running triage on the stored application reproduces the same result.
func (s *ApplicationService) Submit(ctx context.Context, in model.ApplicationInput) (model.SubmissionResponse, error) {
	now := s.now().UTC()

	app := model.Application{
		ApplicationInput: in,
		ApplicationID:    GenerateApplicationID(now),
		SubmittedAt:      now,
	}

	if err := s.apps.Save(ctx, app); err != nil {
		return model.SubmissionResponse{}, fmt.Errorf("save application: %w", err)
	}

	triage := Triage(app, now)

	handoff := BuildHandoffRecord(app, triage)
	if err := s.handoffs.Save(ctx, handoff); err != nil {
		return model.SubmissionResponse{}, fmt.Errorf("save handoff record: %w", err)
	}

	return model.SubmissionResponse{
		ApplicationID: app.ApplicationID,
		ReviewTier:    triage.ReviewTier,
		RiskFlags:     triage.RiskFlags,
		Message:       "Application submitted successfully",
	}, nil
}

// ListApplications returns every stored application, raw. Callers exposing
// the result must mask the SSN first.
func (s *ApplicationService) ListApplications(ctx context.Context) ([]model.Application, error) {
	apps, err := s.apps.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	return apps, nil
}

// ListHandoffRecords returns every stored handoff record. These are safe to
// expose as-is since they never contain raw PII beyond name and email.
func (s *ApplicationService) ListHandoffRecords(ctx context.Context) ([]model.HandoffRecord, error) {
	records, err := s.handoffs.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list handoff records: %w", err)
	}
	return records, nil
}
