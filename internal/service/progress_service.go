package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jinzhu/copier"
	"github.com/pukkaew/LearnHub-sub000/config"
	"github.com/pukkaew/LearnHub-sub000/internal/dto"
	"github.com/pukkaew/LearnHub-sub000/internal/model"
	"github.com/pukkaew/LearnHub-sub000/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ProgressService owns the per-(person, test) lifecycle: assignment,
// attempts, outcome reflection and expiry.
type ProgressService interface {
	// EnsureAssigned resolves the position and creates a pending
	// progress row for every resolved test the person does not have
	// yet. Idempotent; existing rows are never touched or removed.
	EnsureAssigned(ctx context.Context, personID, positionID uint) ([]dto.ProgressDTO, error)
	GetProgress(ctx context.Context, personID, positionID uint) ([]dto.ProgressDTO, error)
	StartAttempt(ctx context.Context, personID, testID uint) (*dto.AttemptDTO, error)
	GetAttempt(ctx context.Context, attemptID uint) (*dto.AttemptDTO, error)
	CompleteAttempt(ctx context.Context, attemptID uint, req dto.CompleteAttemptRequest) (*dto.ProgressDTO, error)
	// ExpireStale flips every pending or in_progress row older than its
	// position's expiry window to expired. Expiry is terminal.
	ExpireStale(ctx context.Context, now time.Time) (int64, error)
	// ResetProgress deletes a person's progress rows for a position,
	// attempts included. The administrative escape hatch.
	ResetProgress(ctx context.Context, personID, positionID uint) (int64, error)
}

type progressService struct {
	resolver       ResolverService
	personRepo     repository.PersonRepository
	positionRepo   repository.PositionRepository
	progressRepo   repository.ProgressRepository
	attemptRepo    repository.AttemptRepository
	configRepo     repository.EvaluationConfigRepository
	assignmentRepo repository.AssignmentRepository
	engineCfg      config.Engine
	db             *gorm.DB
}

func NewProgressService(
	resolver ResolverService,
	personRepo repository.PersonRepository,
	positionRepo repository.PositionRepository,
	progressRepo repository.ProgressRepository,
	attemptRepo repository.AttemptRepository,
	configRepo repository.EvaluationConfigRepository,
	assignmentRepo repository.AssignmentRepository,
	cfg *config.Config,
	db *gorm.DB,
) ProgressService {
	return &progressService{
		resolver:       resolver,
		personRepo:     personRepo,
		positionRepo:   positionRepo,
		progressRepo:   progressRepo,
		attemptRepo:    attemptRepo,
		configRepo:     configRepo,
		assignmentRepo: assignmentRepo,
		engineCfg:      cfg.Engine,
		db:             db,
	}
}

func (s *progressService) EnsureAssigned(ctx context.Context, personID, positionID uint) ([]dto.ProgressDTO, error) {
	if _, err := s.personRepo.FindByID(ctx, personID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("person %d: %w", personID, ErrPersonNotFound)
		}
		return nil, fmt.Errorf("load person %d: %w", personID, err)
	}

	resolved, err := s.resolver.Resolve(ctx, positionID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	rows := make([]model.PersonTestProgress, 0, len(resolved))
	for _, rt := range resolved {
		rows = append(rows, model.PersonTestProgress{
			PersonID:    personID,
			TestID:      rt.TestID,
			PositionID:  positionID,
			Source:      rt.Source,
			SourceSetID: rt.SourceSetID,
			Status:      model.ProgressPending,
			AssignedAt:  now,
		})
	}

	// Conflicting rows already exist, either from an earlier assignment
	// or a concurrent caller. Both are benign.
	created, err := s.progressRepo.CreateIgnoreConflicts(ctx, rows)
	if err != nil {
		log.Error().Err(err).Uint("personID", personID).Uint("positionID", positionID).Msg("EnsureAssigned: creating progress rows failed")
		return nil, fmt.Errorf("assign tests to person %d: %w", personID, err)
	}
	log.Info().Uint("personID", personID).Uint("positionID", positionID).
		Int("resolved", len(resolved)).Int64("created", created).
		Msg("EnsureAssigned: assignment reconciled")

	return s.GetProgress(ctx, personID, positionID)
}

func (s *progressService) GetProgress(ctx context.Context, personID, positionID uint) ([]dto.ProgressDTO, error) {
	if _, err := s.personRepo.FindByID(ctx, personID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("person %d: %w", personID, ErrPersonNotFound)
		}
		return nil, fmt.Errorf("load person %d: %w", personID, err)
	}
	if _, err := s.positionRepo.FindByID(ctx, positionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("position %d: %w", positionID, ErrPositionNotFound)
		}
		return nil, fmt.Errorf("load position %d: %w", positionID, err)
	}

	rows, err := s.progressRepo.ListByPersonAndPosition(ctx, personID, positionID)
	if err != nil {
		return nil, fmt.Errorf("list progress for person %d: %w", personID, err)
	}

	dtos := make([]dto.ProgressDTO, 0, len(rows))
	for i := range rows {
		d, err := toProgressDTO(&rows[i])
		if err != nil {
			return nil, err
		}
		dtos = append(dtos, *d)
	}
	return dtos, nil
}

func (s *progressService) StartAttempt(ctx context.Context, personID, testID uint) (*dto.AttemptDTO, error) {
	progress, err := s.progressRepo.FindByPersonAndTest(ctx, personID, testID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("person %d test %d: %w", personID, testID, ErrProgressNotFound)
		}
		return nil, fmt.Errorf("load progress for person %d test %d: %w", personID, testID, err)
	}
	if progress.Status == model.ProgressExpired {
		return nil, fmt.Errorf("progress %d: %w", progress.ID, ErrAttemptAlreadyExpired)
	}

	cfg := s.configForPosition(ctx, progress.PositionID)
	now := time.Now()
	attempt := model.TestAttempt{
		ProgressID: progress.ID,
		Status:     model.AttemptInProgress,
		StartedAt:  now,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if cfg.MaxAttemptsPerTest > 0 {
			var count int64
			if err := tx.Model(&model.TestAttempt{}).Where("progress_id = ?", progress.ID).Count(&count).Error; err != nil {
				return fmt.Errorf("count attempts: %w", err)
			}
			if count >= int64(cfg.MaxAttemptsPerTest) {
				return fmt.Errorf("progress %d has %d of %d attempts: %w", progress.ID, count, cfg.MaxAttemptsPerTest, ErrAttemptLimitExceeded)
			}
		}

		// The partial unique index on open attempts makes this insert
		// the atomic exclusivity check: a concurrent starter loses here.
		if err := tx.Create(&attempt).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("progress %d: %w", progress.ID, ErrAlreadyInProgress)
			}
			return fmt.Errorf("create attempt: %w", err)
		}

		updates := map[string]interface{}{}
		if progress.Status == model.ProgressPending {
			updates["status"] = model.ProgressInProgress
		}
		if progress.StartedAt == nil {
			updates["started_at"] = now
		}
		if len(updates) == 0 {
			return nil
		}
		res := tx.Model(&model.PersonTestProgress{}).
			Where("id = ? AND status <> ?", progress.ID, model.ProgressExpired).
			Updates(updates)
		if res.Error != nil {
			return fmt.Errorf("advance progress %d: %w", progress.ID, res.Error)
		}
		if res.RowsAffected == 0 {
			// Expired between our read and this write; roll the attempt back.
			return fmt.Errorf("progress %d: %w", progress.ID, ErrAttemptAlreadyExpired)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info().Uint("personID", personID).Uint("testID", testID).Uint("attemptID", attempt.ID).Msg("StartAttempt: attempt opened")

	var d dto.AttemptDTO
	if err := copier.Copy(&d, &attempt); err != nil {
		return nil, fmt.Errorf("prepare attempt response: %w", err)
	}
	d.Status = string(attempt.Status)
	return &d, nil
}

func (s *progressService) GetAttempt(ctx context.Context, attemptID uint) (*dto.AttemptDTO, error) {
	attempt, err := s.attemptRepo.FindByID(ctx, attemptID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("attempt %d: %w", attemptID, ErrAttemptNotFound)
		}
		return nil, fmt.Errorf("load attempt %d: %w", attemptID, err)
	}
	var d dto.AttemptDTO
	if err := copier.Copy(&d, attempt); err != nil {
		return nil, fmt.Errorf("prepare attempt response: %w", err)
	}
	d.Status = string(attempt.Status)
	return &d, nil
}

func (s *progressService) CompleteAttempt(ctx context.Context, attemptID uint, req dto.CompleteAttemptRequest) (*dto.ProgressDTO, error) {
	attempt, err := s.attemptRepo.FindByIDWithProgress(ctx, attemptID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("attempt %d: %w", attemptID, ErrAttemptNotFound)
		}
		return nil, fmt.Errorf("load attempt %d: %w", attemptID, err)
	}
	progress := attempt.Progress

	if progress.Status == model.ProgressExpired {
		// A late completion must not resurrect an expired assignment.
		if _, abErr := s.attemptRepo.AbandonOpenByProgress(ctx, []uint{progress.ID}); abErr != nil {
			log.Warn().Err(abErr).Uint("attemptID", attemptID).Msg("CompleteAttempt: abandoning late attempt failed")
		}
		return nil, fmt.Errorf("attempt %d: %w", attemptID, ErrAttemptAlreadyExpired)
	}
	if attempt.Status != model.AttemptInProgress {
		return nil, fmt.Errorf("attempt %d is %s: %w", attemptID, attempt.Status, ErrAttemptNotOpen)
	}

	threshold := s.passingThreshold(ctx, &progress)
	passed := req.Percentage >= threshold
	now := time.Now()

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		attemptUpdates := map[string]interface{}{
			"status":       model.AttemptCompleted,
			"score":        req.Score,
			"percentage":   req.Percentage,
			"completed_at": now,
		}
		if req.Meta != nil {
			attemptUpdates["meta"] = datatypes.JSONMap(req.Meta)
		}
		res := tx.Model(&model.TestAttempt{}).
			Where("id = ? AND status = ?", attempt.ID, model.AttemptInProgress).
			Updates(attemptUpdates)
		if res.Error != nil {
			return fmt.Errorf("complete attempt %d: %w", attempt.ID, res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("attempt %d: %w", attempt.ID, ErrAttemptNotOpen)
		}

		// Reflect the outcome onto the progress row unless expiry won
		// the race; in that case everything above rolls back.
		res = tx.Model(&model.PersonTestProgress{}).
			Where("id = ? AND status <> ?", progress.ID, model.ProgressExpired).
			Updates(map[string]interface{}{
				"status":       model.ProgressCompleted,
				"score":        req.Score,
				"percentage":   req.Percentage,
				"passed":       passed,
				"completed_at": now,
			})
		if res.Error != nil {
			return fmt.Errorf("reflect outcome onto progress %d: %w", progress.ID, res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("progress %d: %w", progress.ID, ErrAttemptAlreadyExpired)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrAttemptAlreadyExpired) {
			if _, abErr := s.attemptRepo.AbandonOpenByProgress(ctx, []uint{progress.ID}); abErr != nil {
				log.Warn().Err(abErr).Uint("attemptID", attemptID).Msg("CompleteAttempt: abandoning raced attempt failed")
			}
		}
		return nil, err
	}

	log.Info().Uint("attemptID", attemptID).Uint("progressID", progress.ID).
		Float64("percentage", req.Percentage).Float64("threshold", threshold).Bool("passed", passed).
		Msg("CompleteAttempt: outcome recorded")

	updated, err := s.progressRepo.FindByPersonAndTest(ctx, progress.PersonID, progress.TestID)
	if err != nil {
		return nil, fmt.Errorf("reload progress %d: %w", progress.ID, err)
	}
	return toProgressDTO(updated)
}

func (s *progressService) ExpireStale(ctx context.Context, now time.Time) (int64, error) {
	candidates, err := s.progressRepo.StaleCandidates(ctx)
	if err != nil {
		return 0, fmt.Errorf("load stale candidates: %w", err)
	}

	var ids []uint
	for _, c := range candidates {
		if c.AssignedAt.AddDate(0, 0, c.TestCodeExpiryDays).Before(now) {
			ids = append(ids, c.PersonTestProgress.ID)
		}
	}
	if len(ids) == 0 {
		return 0, nil
	}

	expired, err := s.progressRepo.MarkExpired(ctx, ids)
	if err != nil {
		return 0, fmt.Errorf("mark expired: %w", err)
	}
	abandoned, err := s.attemptRepo.AbandonOpenByProgress(ctx, ids)
	if err != nil {
		return expired, fmt.Errorf("abandon open attempts: %w", err)
	}

	log.Info().Int64("expired", expired).Int64("abandoned", abandoned).Msg("ExpireStale: sweep finished")
	return expired, nil
}

func (s *progressService) ResetProgress(ctx context.Context, personID, positionID uint) (int64, error) {
	rows, err := s.progressRepo.ListByPersonAndPosition(ctx, personID, positionID)
	if err != nil {
		return 0, fmt.Errorf("list progress for reset: %w", err)
	}
	if len(rows) == 0 {
		return 0, nil
	}

	ids := make([]uint, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ID)
	}

	var deleted int64
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("progress_id IN ?", ids).Delete(&model.TestAttempt{}).Error; err != nil {
			return fmt.Errorf("delete attempts: %w", err)
		}
		res := tx.Where("id IN ?", ids).Delete(&model.PersonTestProgress{})
		if res.Error != nil {
			return fmt.Errorf("delete progress rows: %w", res.Error)
		}
		deleted = res.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}

	log.Info().Uint("personID", personID).Uint("positionID", positionID).Int64("deleted", deleted).Msg("ResetProgress: assignment wiped")
	return deleted, nil
}

// configForPosition falls back to the system default policy when the
// position has no stored config.
func (s *progressService) configForPosition(ctx context.Context, positionID uint) model.PositionEvaluationConfig {
	cfg, err := s.configRepo.FindByPosition(ctx, positionID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn().Err(err).Uint("positionID", positionID).Msg("configForPosition: load failed, using default policy")
		}
		return model.DefaultEvaluationConfig(positionID)
	}
	return *cfg
}

// passingThreshold resolves the pass mark for one progress row:
// assignment override, then the test's own score, then the engine
// default.
func (s *progressService) passingThreshold(ctx context.Context, progress *model.PersonTestProgress) float64 {
	if progress.SourceSetID != nil {
		var override *float64
		switch progress.Source {
		case model.SourcePositionLink:
			if link, err := s.assignmentRepo.FindLinkByID(ctx, *progress.SourceSetID); err == nil {
				override = link.PassingScoreOverride
			}
		case model.SourceLegacy:
			if set, err := s.assignmentRepo.FindLegacySetByID(ctx, *progress.SourceSetID); err == nil {
				override = set.PassingScoreOverride
			}
		}
		if override != nil {
			return *override
		}
	}
	if progress.Test.PassingScore > 0 {
		return progress.Test.PassingScore
	}
	return s.engineCfg.DefaultPassingScore
}

func toProgressDTO(row *model.PersonTestProgress) (*dto.ProgressDTO, error) {
	var d dto.ProgressDTO
	if err := copier.Copy(&d, row); err != nil {
		return nil, fmt.Errorf("prepare progress response: %w", err)
	}
	d.Source = string(row.Source)
	d.Status = string(row.Status)
	if row.Test.ID != 0 {
		d.TestTitle = row.Test.Title
	}
	return &d, nil
}
