package service

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/pukkaew/LearnHub-sub000/config"
	"github.com/pukkaew/LearnHub-sub000/internal/model"
	"github.com/pukkaew/LearnHub-sub000/internal/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// engineEnv wires the full engine against a throwaway sqlite database.
type engineEnv struct {
	db         *gorm.DB
	resolver   ResolverService
	progress   ProgressService
	evaluation EvaluationService
	admin      AdminAssignmentService

	progressRepo repository.ProgressRepository
	attemptRepo  repository.AttemptRepository
}

func newEngineEnv(t *testing.T) *engineEnv {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "engine.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql DB: %v", err)
	}
	// One connection keeps concurrent transactions serialized instead
	// of tripping sqlite's writer lock.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(
		&model.Position{},
		&model.Person{},
		&model.Test{},
		&model.PositionTestLink{},
		&model.LegacyPositionTestSet{},
		&model.PositionEvaluationConfig{},
		&model.PersonTestProgress{},
		&model.TestAttempt{},
	); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}

	cfg := &config.Config{
		Engine: config.Engine{
			DefaultPassingScore:     70,
			EmptyRequirementVerdict: "pass",
		},
	}

	positionRepo := repository.NewPositionRepository(db)
	personRepo := repository.NewPersonRepository(db)
	testRepo := repository.NewTestRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	configRepo := repository.NewEvaluationConfigRepository(db)
	progressRepo := repository.NewProgressRepository(db)
	attemptRepo := repository.NewAttemptRepository(db)

	resolver := NewResolverService(positionRepo, testRepo, assignmentRepo)

	return &engineEnv{
		db:           db,
		resolver:     resolver,
		progress:     NewProgressService(resolver, personRepo, positionRepo, progressRepo, attemptRepo, configRepo, assignmentRepo, cfg, db),
		evaluation:   NewEvaluationService(resolver, personRepo, progressRepo, configRepo, cfg),
		admin:        NewAdminAssignmentService(positionRepo, personRepo, testRepo, assignmentRepo, configRepo),
		progressRepo: progressRepo,
		attemptRepo:  attemptRepo,
	}
}

func (e *engineEnv) createPosition(t *testing.T, title string) *model.Position {
	t.Helper()
	position := model.Position{Title: title}
	if err := e.db.Create(&position).Error; err != nil {
		t.Fatalf("create position: %v", err)
	}
	return &position
}

func (e *engineEnv) createPerson(t *testing.T, name, email string) *model.Person {
	t.Helper()
	person := model.Person{FullName: name, Email: email}
	if err := e.db.Create(&person).Error; err != nil {
		t.Fatalf("create person: %v", err)
	}
	return &person
}

// createTest fixes CreatedAt so resolution tie-breaks are deterministic.
func (e *engineEnv) createTest(t *testing.T, title string, typ model.TestType, status model.TestStatus, global bool, passingScore float64, createdAt time.Time) *model.Test {
	t.Helper()
	test := model.Test{
		Title:        title,
		Type:         typ,
		Status:       status,
		IsGlobal:     global,
		PassingScore: passingScore,
		CreatedAt:    createdAt,
	}
	if err := e.db.Create(&test).Error; err != nil {
		t.Fatalf("create test %q: %v", title, err)
	}
	return &test
}

func (e *engineEnv) createLink(t *testing.T, positionID, testID uint, order int, required bool, weight float64, override *float64, active bool) *model.PositionTestLink {
	t.Helper()
	link := model.PositionTestLink{
		PositionID:           positionID,
		TestID:               testID,
		OrderInSet:           order,
		IsRequired:           required,
		WeightPercent:        weight,
		PassingScoreOverride: override,
		IsActive:             active,
	}
	if err := e.db.Create(&link).Error; err != nil {
		t.Fatalf("create link: %v", err)
	}
	return &link
}

func (e *engineEnv) createLegacySet(t *testing.T, positionID, testID uint, order int, required bool, weight float64, override *float64, active bool) *model.LegacyPositionTestSet {
	t.Helper()
	set := model.LegacyPositionTestSet{
		PositionID:           positionID,
		TestID:               testID,
		OrderInSet:           order,
		IsRequired:           required,
		WeightPercent:        weight,
		PassingScoreOverride: override,
		Category:             "legacy",
		IsActive:             active,
	}
	if err := e.db.Create(&set).Error; err != nil {
		t.Fatalf("create legacy set: %v", err)
	}
	return &set
}

func (e *engineEnv) storeConfig(t *testing.T, cfg model.PositionEvaluationConfig) {
	t.Helper()
	if err := e.db.Create(&cfg).Error; err != nil {
		t.Fatalf("create evaluation config: %v", err)
	}
}

// backdateAssignment ages a progress row so expiry sweeps pick it up.
func (e *engineEnv) backdateAssignment(t *testing.T, progressID uint, to time.Time) {
	t.Helper()
	if err := e.db.Model(&model.PersonTestProgress{}).
		Where("id = ?", progressID).
		Update("assigned_at", to).Error; err != nil {
		t.Fatalf("backdate assignment: %v", err)
	}
}

func (e *engineEnv) progressRow(t *testing.T, personID, testID uint) *model.PersonTestProgress {
	t.Helper()
	var row model.PersonTestProgress
	if err := e.db.Where("person_id = ? AND test_id = ?", personID, testID).First(&row).Error; err != nil {
		t.Fatalf("load progress row: %v", err)
	}
	return &row
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }
func boolPtr(v bool) *bool        { return &v }
