package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/pukkaew/LearnHub-sub000/internal/dto"
	"github.com/pukkaew/LearnHub-sub000/internal/model"
	"github.com/pukkaew/LearnHub-sub000/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// AdminAssignmentService is the administrative surface around the
// engine: seeding positions, persons and tests, managing assignment
// links and the per-position evaluation policy.
type AdminAssignmentService interface {
	CreatePosition(ctx context.Context, req dto.CreatePositionRequest) (*model.Position, error)
	CreatePerson(ctx context.Context, req dto.CreatePersonRequest) (*model.Person, error)
	CreateTest(ctx context.Context, req dto.CreateTestRequest) (*model.Test, error)
	CreateLink(ctx context.Context, req dto.CreateLinkRequest) (*model.PositionTestLink, error)
	CreateLegacySet(ctx context.Context, req dto.CreateLegacySetRequest) (*model.LegacyPositionTestSet, error)
	// SetLinkActive flips a link in or out of resolution. Deactivating
	// lets a legacy row for the same (position, test) fall through.
	SetLinkActive(ctx context.Context, linkID uint, active bool) error
	SetLegacySetActive(ctx context.Context, setID uint, active bool) error
	UpsertEvaluationConfig(ctx context.Context, positionID uint, req dto.UpsertEvaluationConfigRequest) (*model.PositionEvaluationConfig, error)
}

type adminAssignmentService struct {
	positionRepo   repository.PositionRepository
	personRepo     repository.PersonRepository
	testRepo       repository.TestRepository
	assignmentRepo repository.AssignmentRepository
	configRepo     repository.EvaluationConfigRepository
}

func NewAdminAssignmentService(
	positionRepo repository.PositionRepository,
	personRepo repository.PersonRepository,
	testRepo repository.TestRepository,
	assignmentRepo repository.AssignmentRepository,
	configRepo repository.EvaluationConfigRepository,
) AdminAssignmentService {
	return &adminAssignmentService{
		positionRepo:   positionRepo,
		personRepo:     personRepo,
		testRepo:       testRepo,
		assignmentRepo: assignmentRepo,
		configRepo:     configRepo,
	}
}

func (s *adminAssignmentService) CreatePosition(ctx context.Context, req dto.CreatePositionRequest) (*model.Position, error) {
	position := model.Position{
		Title:       req.Title,
		Department:  req.Department,
		Description: req.Description,
	}
	if err := s.positionRepo.Create(ctx, &position); err != nil {
		log.Error().Err(err).Str("title", req.Title).Msg("CreatePosition: create failed")
		return nil, fmt.Errorf("create position: %w", err)
	}
	return &position, nil
}

func (s *adminAssignmentService) CreatePerson(ctx context.Context, req dto.CreatePersonRequest) (*model.Person, error) {
	person := model.Person{
		FullName: req.FullName,
		Email:    req.Email,
	}
	if err := s.personRepo.Create(ctx, &person); err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("CreatePerson: create failed")
		return nil, fmt.Errorf("create person: %w", err)
	}
	return &person, nil
}

func (s *adminAssignmentService) CreateTest(ctx context.Context, req dto.CreateTestRequest) (*model.Test, error) {
	status := model.TestStatus(req.Status)
	if status == "" {
		status = model.TestStatusDraft
	}
	test := model.Test{
		Title:        req.Title,
		Description:  req.Description,
		Type:         model.TestType(req.Type),
		Status:       status,
		IsGlobal:     req.IsGlobal,
		PassingScore: req.PassingScore,
	}
	if err := s.testRepo.Create(ctx, &test); err != nil {
		log.Error().Err(err).Str("title", req.Title).Msg("CreateTest: create failed")
		return nil, fmt.Errorf("create test: %w", err)
	}
	return &test, nil
}

func (s *adminAssignmentService) CreateLink(ctx context.Context, req dto.CreateLinkRequest) (*model.PositionTestLink, error) {
	if err := s.checkPositionAndTest(ctx, req.PositionID, req.TestID); err != nil {
		return nil, err
	}
	link := model.PositionTestLink{
		PositionID:           req.PositionID,
		TestID:               req.TestID,
		OrderInSet:           req.OrderInSet,
		IsRequired:           boolOrDefault(req.IsRequired, true),
		WeightPercent:        floatOrDefault(req.WeightPercent, 100),
		PassingScoreOverride: req.PassingScoreOverride,
		IsActive:             boolOrDefault(req.IsActive, true),
	}
	if err := s.assignmentRepo.CreateLink(ctx, &link); err != nil {
		log.Error().Err(err).Uint("positionID", req.PositionID).Uint("testID", req.TestID).Msg("CreateLink: create failed")
		return nil, fmt.Errorf("create position test link: %w", err)
	}
	return &link, nil
}

func (s *adminAssignmentService) CreateLegacySet(ctx context.Context, req dto.CreateLegacySetRequest) (*model.LegacyPositionTestSet, error) {
	if err := s.checkPositionAndTest(ctx, req.PositionID, req.TestID); err != nil {
		return nil, err
	}
	set := model.LegacyPositionTestSet{
		PositionID:           req.PositionID,
		TestID:               req.TestID,
		OrderInSet:           req.OrderInSet,
		IsRequired:           boolOrDefault(req.IsRequired, true),
		WeightPercent:        floatOrDefault(req.WeightPercent, 100),
		PassingScoreOverride: req.PassingScoreOverride,
		Category:             req.Category,
		IsActive:             boolOrDefault(req.IsActive, true),
	}
	if err := s.assignmentRepo.CreateLegacySet(ctx, &set); err != nil {
		log.Error().Err(err).Uint("positionID", req.PositionID).Uint("testID", req.TestID).Msg("CreateLegacySet: create failed")
		return nil, fmt.Errorf("create legacy test set: %w", err)
	}
	return &set, nil
}

func (s *adminAssignmentService) SetLinkActive(ctx context.Context, linkID uint, active bool) error {
	if _, err := s.assignmentRepo.FindLinkByID(ctx, linkID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("position test link %d: %w", linkID, ErrLinkNotFound)
		}
		return fmt.Errorf("load position test link %d: %w", linkID, err)
	}
	if err := s.assignmentRepo.SetLinkActive(ctx, linkID, active); err != nil {
		return fmt.Errorf("set link %d active=%t: %w", linkID, active, err)
	}
	log.Info().Uint("linkID", linkID).Bool("active", active).Msg("SetLinkActive: link toggled")
	return nil
}

func (s *adminAssignmentService) SetLegacySetActive(ctx context.Context, setID uint, active bool) error {
	if _, err := s.assignmentRepo.FindLegacySetByID(ctx, setID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("legacy test set %d: %w", setID, ErrLinkNotFound)
		}
		return fmt.Errorf("load legacy test set %d: %w", setID, err)
	}
	if err := s.assignmentRepo.SetLegacySetActive(ctx, setID, active); err != nil {
		return fmt.Errorf("set legacy set %d active=%t: %w", setID, active, err)
	}
	log.Info().Uint("setID", setID).Bool("active", active).Msg("SetLegacySetActive: legacy set toggled")
	return nil
}

func (s *adminAssignmentService) UpsertEvaluationConfig(ctx context.Context, positionID uint, req dto.UpsertEvaluationConfigRequest) (*model.PositionEvaluationConfig, error) {
	if _, err := s.positionRepo.FindByID(ctx, positionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("position %d: %w", positionID, ErrPositionNotFound)
		}
		return nil, fmt.Errorf("load position %d: %w", positionID, err)
	}

	criteria := model.PassingCriteria(req.PassingCriteria)
	switch criteria {
	case model.CriteriaAverage:
		if req.MinAverageScore == nil {
			return nil, fmt.Errorf("average criteria without min_average_score: %w", ErrInvalidConfig)
		}
	case model.CriteriaMinTests:
		if req.MinTestsToPass == nil {
			return nil, fmt.Errorf("min_tests criteria without min_tests_to_pass: %w", ErrInvalidConfig)
		}
	}

	cfg := model.PositionEvaluationConfig{
		PositionID:             positionID,
		PassingCriteria:        criteria,
		MinAverageScore:        req.MinAverageScore,
		MinTestsToPass:         req.MinTestsToPass,
		AllowPartialCompletion: req.AllowPartialCompletion,
		MaxAttemptsPerTest:     req.MaxAttemptsPerTest,
		TestCodeExpiryDays:     req.TestCodeExpiryDays,
	}
	if err := s.configRepo.Upsert(ctx, &cfg); err != nil {
		log.Error().Err(err).Uint("positionID", positionID).Msg("UpsertEvaluationConfig: upsert failed")
		return nil, fmt.Errorf("upsert evaluation config: %w", err)
	}
	return &cfg, nil
}

func (s *adminAssignmentService) checkPositionAndTest(ctx context.Context, positionID, testID uint) error {
	if _, err := s.positionRepo.FindByID(ctx, positionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("position %d: %w", positionID, ErrPositionNotFound)
		}
		return fmt.Errorf("load position %d: %w", positionID, err)
	}
	if _, err := s.testRepo.FindByID(ctx, testID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("test %d: %w", testID, ErrTestNotFound)
		}
		return fmt.Errorf("load test %d: %w", testID, err)
	}
	return nil
}

func boolOrDefault(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

func floatOrDefault(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}
