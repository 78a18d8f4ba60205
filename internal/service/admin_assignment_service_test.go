package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pukkaew/LearnHub-sub000/internal/dto"
	"github.com/pukkaew/LearnHub-sub000/internal/model"
)

func TestCreateLinkDefaults(t *testing.T) {
	t.Parallel()

	env := newEngineEnv(t)
	ctx := context.Background()
	position := env.createPosition(t, "Designer")
	test := env.createTest(t, "Portfolio Review", model.TestTypeApplication, model.TestStatusPublished, false, 0, baseTime)

	link, err := env.admin.CreateLink(ctx, dto.CreateLinkRequest{
		PositionID: position.ID,
		TestID:     test.ID,
		OrderInSet: 1,
	})
	if err != nil {
		t.Fatalf("CreateLink error: %v", err)
	}
	if !link.IsRequired || link.WeightPercent != 100 || !link.IsActive {
		t.Fatalf("omitted fields should default to required, weight 100, active: %+v", link)
	}
}

// Explicit false must survive the insert: a column default would make
// gorm drop the zero value and store true instead.
func TestCreateLinkPersistsExplicitFalse(t *testing.T) {
	t.Parallel()

	env := newEngineEnv(t)
	ctx := context.Background()
	position := env.createPosition(t, "Archivist")
	inactive := env.createTest(t, "Shelved Test", model.TestTypeAptitude, model.TestStatusPublished, false, 0, baseTime)
	optional := env.createTest(t, "Optional Quiz", model.TestTypePersonality, model.TestStatusPublished, false, 0, baseTime.Add(time.Second))

	if _, err := env.admin.CreateLink(ctx, dto.CreateLinkRequest{
		PositionID: position.ID,
		TestID:     inactive.ID,
		OrderInSet: 1,
		IsActive:   boolPtr(false),
	}); err != nil {
		t.Fatalf("CreateLink error: %v", err)
	}
	optLink, err := env.admin.CreateLink(ctx, dto.CreateLinkRequest{
		PositionID: position.ID,
		TestID:     optional.ID,
		OrderInSet: 2,
		IsRequired: boolPtr(false),
	})
	if err != nil {
		t.Fatalf("CreateLink error: %v", err)
	}

	var stored model.PositionTestLink
	if err := env.db.Where("position_id = ? AND test_id = ?", position.ID, inactive.ID).First(&stored).Error; err != nil {
		t.Fatalf("load link: %v", err)
	}
	if stored.IsActive {
		t.Fatal("is_active=false was stored as true")
	}
	stored = model.PositionTestLink{}
	if err := env.db.First(&stored, optLink.ID).Error; err != nil {
		t.Fatalf("load link: %v", err)
	}
	if stored.IsRequired {
		t.Fatal("is_required=false was stored as true")
	}

	resolved, err := env.resolver.Resolve(ctx, position.ID)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if len(resolved) != 1 {
		t.Fatalf("inactive link must not resolve, got %d entries", len(resolved))
	}
	if resolved[0].TestID != optional.ID || resolved[0].IsRequired {
		t.Fatalf("expected the optional test only, got %+v", resolved[0])
	}
}

func TestCreateLegacySetPersistsExplicitFalse(t *testing.T) {
	t.Parallel()

	env := newEngineEnv(t)
	ctx := context.Background()
	position := env.createPosition(t, "Clerk")
	test := env.createTest(t, "Dormant Legacy Test", model.TestTypeAptitude, model.TestStatusPublished, false, 0, baseTime)

	set, err := env.admin.CreateLegacySet(ctx, dto.CreateLegacySetRequest{
		PositionID: position.ID,
		TestID:     test.ID,
		IsActive:   boolPtr(false),
	})
	if err != nil {
		t.Fatalf("CreateLegacySet error: %v", err)
	}

	var stored model.LegacyPositionTestSet
	if err := env.db.First(&stored, set.ID).Error; err != nil {
		t.Fatalf("load legacy set: %v", err)
	}
	if stored.IsActive {
		t.Fatal("is_active=false was stored as true")
	}

	resolved, err := env.resolver.Resolve(ctx, position.ID)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if len(resolved) != 0 {
		t.Fatalf("inactive legacy set must not resolve, got %d entries", len(resolved))
	}
}

func TestCreateLinkUnknownPosition(t *testing.T) {
	t.Parallel()

	env := newEngineEnv(t)
	test := env.createTest(t, "Orphan Test", model.TestTypeAptitude, model.TestStatusPublished, false, 0, baseTime)

	_, err := env.admin.CreateLink(context.Background(), dto.CreateLinkRequest{
		PositionID: 404,
		TestID:     test.ID,
	})
	if !errors.Is(err, ErrPositionNotFound) {
		t.Fatalf("expected ErrPositionNotFound, got %v", err)
	}
}

func TestSetLinkActiveChangesResolution(t *testing.T) {
	t.Parallel()

	env := newEngineEnv(t)
	ctx := context.Background()
	position := env.createPosition(t, "Sales Rep")
	test := env.createTest(t, "Sales Aptitude", model.TestTypeAptitude, model.TestStatusPublished, false, 0, baseTime)
	link := env.createLink(t, position.ID, test.ID, 1, true, 100, nil, true)

	resolved, err := env.resolver.Resolve(ctx, position.ID)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if len(resolved) != 1 {
		t.Fatalf("expected 1 resolved test before deactivation, got %d", len(resolved))
	}

	if err := env.admin.SetLinkActive(ctx, link.ID, false); err != nil {
		t.Fatalf("SetLinkActive error: %v", err)
	}

	resolved, err = env.resolver.Resolve(ctx, position.ID)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if len(resolved) != 0 {
		t.Fatalf("deactivated link must drop out of resolution, got %d entries", len(resolved))
	}

	if err := env.admin.SetLinkActive(ctx, link.ID, true); err != nil {
		t.Fatalf("SetLinkActive error: %v", err)
	}
	resolved, err = env.resolver.Resolve(ctx, position.ID)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if len(resolved) != 1 {
		t.Fatalf("reactivated link should resolve again, got %d entries", len(resolved))
	}
}

func TestSetLegacySetActiveUnknown(t *testing.T) {
	t.Parallel()

	env := newEngineEnv(t)
	if err := env.admin.SetLegacySetActive(context.Background(), 404, false); !errors.Is(err, ErrLinkNotFound) {
		t.Fatalf("expected ErrLinkNotFound, got %v", err)
	}
}

func TestUpsertEvaluationConfig(t *testing.T) {
	t.Parallel()

	env := newEngineEnv(t)
	ctx := context.Background()
	position := env.createPosition(t, "Support Agent")

	cfg, err := env.admin.UpsertEvaluationConfig(ctx, position.ID, dto.UpsertEvaluationConfigRequest{
		PassingCriteria:    string(model.CriteriaMinTests),
		MinTestsToPass:     intPtr(2),
		MaxAttemptsPerTest: 3,
	})
	if err != nil {
		t.Fatalf("UpsertEvaluationConfig error: %v", err)
	}
	if cfg.PassingCriteria != model.CriteriaMinTests || *cfg.MinTestsToPass != 2 {
		t.Fatalf("stored config does not match request: %+v", cfg)
	}

	// Second upsert replaces the policy instead of duplicating the row.
	cfg, err = env.admin.UpsertEvaluationConfig(ctx, position.ID, dto.UpsertEvaluationConfigRequest{
		PassingCriteria:    string(model.CriteriaAverage),
		MinAverageScore:    floatPtr(55),
		TestCodeExpiryDays: 14,
	})
	if err != nil {
		t.Fatalf("second UpsertEvaluationConfig error: %v", err)
	}
	if cfg.PassingCriteria != model.CriteriaAverage || *cfg.MinAverageScore != 55 {
		t.Fatalf("upsert should replace the policy: %+v", cfg)
	}

	var count int64
	if err := env.db.Model(&model.PositionEvaluationConfig{}).Where("position_id = ?", position.ID).Count(&count).Error; err != nil {
		t.Fatalf("count configs: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected a single config row, got %d", count)
	}
}

func TestUpsertEvaluationConfigRejectsMissingParams(t *testing.T) {
	t.Parallel()

	env := newEngineEnv(t)
	ctx := context.Background()
	position := env.createPosition(t, "Analyst")

	_, err := env.admin.UpsertEvaluationConfig(ctx, position.ID, dto.UpsertEvaluationConfigRequest{
		PassingCriteria: string(model.CriteriaAverage),
	})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("average without min_average_score: expected ErrInvalidConfig, got %v", err)
	}

	_, err = env.admin.UpsertEvaluationConfig(ctx, position.ID, dto.UpsertEvaluationConfigRequest{
		PassingCriteria: string(model.CriteriaMinTests),
	})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("min_tests without min_tests_to_pass: expected ErrInvalidConfig, got %v", err)
	}
}

func TestCreateTestDefaultsToDraft(t *testing.T) {
	t.Parallel()

	env := newEngineEnv(t)
	test, err := env.admin.CreateTest(context.Background(), dto.CreateTestRequest{
		Title: "New Screening",
		Type:  string(model.TestTypePreEmployment),
	})
	if err != nil {
		t.Fatalf("CreateTest error: %v", err)
	}
	if test.Status != model.TestStatusDraft {
		t.Fatalf("omitted status should default to draft, got %s", test.Status)
	}
}
