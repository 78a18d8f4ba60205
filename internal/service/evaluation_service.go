package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/pukkaew/LearnHub-sub000/config"
	"github.com/pukkaew/LearnHub-sub000/internal/dto"
	"github.com/pukkaew/LearnHub-sub000/internal/model"
	"github.com/pukkaew/LearnHub-sub000/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// EvaluationService projects per-test outcomes into one overall
// verdict under the position's policy. Pure read path: it never
// mutates state and is safe to call repeatedly and concurrently.
type EvaluationService interface {
	EvaluateOverall(ctx context.Context, personID, positionID uint) (*dto.EvaluationResultDTO, error)
}

type evaluationService struct {
	resolver     ResolverService
	personRepo   repository.PersonRepository
	progressRepo repository.ProgressRepository
	configRepo   repository.EvaluationConfigRepository
	engineCfg    config.Engine
}

func NewEvaluationService(
	resolver ResolverService,
	personRepo repository.PersonRepository,
	progressRepo repository.ProgressRepository,
	configRepo repository.EvaluationConfigRepository,
	cfg *config.Config,
) EvaluationService {
	return &evaluationService{
		resolver:     resolver,
		personRepo:   personRepo,
		progressRepo: progressRepo,
		configRepo:   configRepo,
		engineCfg:    cfg.Engine,
	}
}

func (s *evaluationService) EvaluateOverall(ctx context.Context, personID, positionID uint) (*dto.EvaluationResultDTO, error) {
	if _, err := s.personRepo.FindByID(ctx, personID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("person %d: %w", personID, ErrPersonNotFound)
		}
		return nil, fmt.Errorf("load person %d: %w", personID, err)
	}

	cfg, err := s.loadConfig(ctx, positionID)
	if err != nil {
		return nil, err
	}

	resolved, err := s.resolver.Resolve(ctx, positionID)
	if err != nil {
		return nil, err
	}

	required := make([]ResolvedTest, 0, len(resolved))
	for _, rt := range resolved {
		if rt.IsRequired {
			required = append(required, rt)
		}
	}

	result := &dto.EvaluationResultDTO{
		PersonID:        personID,
		PositionID:      positionID,
		PassingCriteria: string(cfg.PassingCriteria),
		RequiredCount:   len(required),
		Detail:          []dto.TestOutcomeDTO{},
	}

	if len(required) == 0 {
		// No testing requirement resolved. Whether that is a trivial
		// pass or an undefined requirement is deployment policy.
		result.Verdict = s.engineCfg.EmptyRequirementVerdict
		if result.Verdict != dto.VerdictIncomplete {
			result.Verdict = dto.VerdictPass
		}
		return result, nil
	}

	testIDs := make([]uint, 0, len(required))
	for _, rt := range required {
		testIDs = append(testIDs, rt.TestID)
	}
	rows, err := s.progressRepo.ListByPersonAndTests(ctx, personID, testIDs)
	if err != nil {
		return nil, fmt.Errorf("load progress for person %d: %w", personID, err)
	}
	byTest := make(map[uint]*model.PersonTestProgress, len(rows))
	for i := range rows {
		byTest[rows[i].TestID] = &rows[i]
	}

	allCompleted := true
	for _, rt := range required {
		outcome := dto.TestOutcomeDTO{
			TestID:        rt.TestID,
			Title:         rt.Test.Title,
			IsRequired:    true,
			WeightPercent: rt.WeightPercent,
			Source:        string(rt.Source),
			Status:        string(model.ProgressPending),
		}
		row, ok := byTest[rt.TestID]
		if ok {
			outcome.Status = string(row.Status)
			outcome.Score = row.Score
			outcome.Percentage = row.Percentage
			outcome.Passed = row.Passed
		}
		if !ok || row.Status != model.ProgressCompleted {
			allCompleted = false
		} else {
			result.CompletedCount++
			if row.Passed != nil && *row.Passed {
				result.PassedCount++
			}
		}
		result.Detail = append(result.Detail, outcome)
	}

	if !cfg.AllowPartialCompletion && !allCompleted {
		result.Verdict = dto.VerdictIncomplete
		return result, nil
	}

	switch cfg.PassingCriteria {
	case model.CriteriaAllPass:
		if result.PassedCount == len(required) {
			result.Verdict = dto.VerdictPass
		} else {
			result.Verdict = dto.VerdictFail
		}

	case model.CriteriaAverage:
		mean, ok := weightedAverage(required, byTest)
		if !ok {
			// Nothing completed yet: the mean is undefined, so there is
			// no verdict rather than a failure.
			result.Verdict = dto.VerdictIncomplete
			return result, nil
		}
		result.AveragePercentage = &mean
		if mean >= *cfg.MinAverageScore {
			result.Verdict = dto.VerdictPass
		} else {
			result.Verdict = dto.VerdictFail
		}

	case model.CriteriaMinTests:
		if result.PassedCount >= *cfg.MinTestsToPass {
			result.Verdict = dto.VerdictPass
		} else {
			result.Verdict = dto.VerdictFail
		}

	default:
		return nil, fmt.Errorf("criteria %q: %w", cfg.PassingCriteria, ErrInvalidConfig)
	}

	log.Debug().Uint("personID", personID).Uint("positionID", positionID).
		Str("verdict", result.Verdict).Int("required", result.RequiredCount).
		Int("completed", result.CompletedCount).Int("passed", result.PassedCount).
		Msg("EvaluateOverall: verdict computed")

	return result, nil
}

// loadConfig returns the stored policy or the system default, and
// rejects policies missing the parameter their criteria needs.
func (s *evaluationService) loadConfig(ctx context.Context, positionID uint) (*model.PositionEvaluationConfig, error) {
	cfg, err := s.configRepo.FindByPosition(ctx, positionID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("load config for position %d: %w", positionID, err)
		}
		def := model.DefaultEvaluationConfig(positionID)
		cfg = &def
	}

	switch cfg.PassingCriteria {
	case model.CriteriaAverage:
		if cfg.MinAverageScore == nil {
			return nil, fmt.Errorf("average criteria without min_average_score: %w", ErrInvalidConfig)
		}
	case model.CriteriaMinTests:
		if cfg.MinTestsToPass == nil || *cfg.MinTestsToPass < 1 {
			return nil, fmt.Errorf("min_tests criteria without min_tests_to_pass: %w", ErrInvalidConfig)
		}
	}
	return cfg, nil
}

// weightedAverage computes the weight-adjusted mean percentage across
// completed required tests, normalizing weights over the counted rows.
// ok is false when no required test has completed.
func weightedAverage(required []ResolvedTest, byTest map[uint]*model.PersonTestProgress) (float64, bool) {
	var weightSum, weighted float64
	for _, rt := range required {
		row, ok := byTest[rt.TestID]
		if !ok || row.Status != model.ProgressCompleted || row.Percentage == nil {
			continue
		}
		w := rt.WeightPercent
		if w <= 0 {
			w = 100
		}
		weightSum += w
		weighted += w * *row.Percentage
	}
	if weightSum == 0 {
		return 0, false
	}
	return weighted / weightSum, true
}
