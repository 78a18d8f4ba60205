package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/jinzhu/copier"
	"github.com/pukkaew/LearnHub-sub000/internal/dto"
	"github.com/pukkaew/LearnHub-sub000/internal/model"
	"github.com/pukkaew/LearnHub-sub000/internal/repository"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// ResolvedTest is one entry of a position's canonical required-test
// list, carrying the attributes of whichever assignment source won.
type ResolvedTest struct {
	TestID               uint
	Test                 model.Test
	OrderInSet           int
	IsRequired           bool
	WeightPercent        float64
	PassingScoreOverride *float64
	Source               model.AssignmentSource
	SourceSetID          *uint
}

// ResolverService computes the deduplicated, ordered list of tests a
// position requires, merging three assignment sources with a fixed
// priority: global > position link > legacy set.
type ResolverService interface {
	Resolve(ctx context.Context, positionID uint) ([]ResolvedTest, error)
	ResolveRequiredTests(ctx context.Context, positionID uint) ([]dto.ResolvedTestDTO, error)
}

type resolverService struct {
	positionRepo   repository.PositionRepository
	testRepo       repository.TestRepository
	assignmentRepo repository.AssignmentRepository
}

func NewResolverService(
	positionRepo repository.PositionRepository,
	testRepo repository.TestRepository,
	assignmentRepo repository.AssignmentRepository,
) ResolverService {
	return &resolverService{
		positionRepo:   positionRepo,
		testRepo:       testRepo,
		assignmentRepo: assignmentRepo,
	}
}

// Resolve is a pure read: running it twice against unchanged data
// yields an identical ordered list.
func (s *resolverService) Resolve(ctx context.Context, positionID uint) ([]ResolvedTest, error) {
	if _, err := s.positionRepo.FindByID(ctx, positionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("position %d: %w", positionID, ErrPositionNotFound)
		}
		return nil, fmt.Errorf("load position %d: %w", positionID, err)
	}

	var (
		globals []model.Test
		links   []model.PositionTestLink
		legacy  []model.LegacyPositionTestSet
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		globals, err = s.testRepo.FindPublishedGlobal(gctx, model.AllowedApplicantTypes)
		return err
	})
	g.Go(func() error {
		var err error
		links, err = s.assignmentRepo.ActiveLinksByPosition(gctx, positionID)
		return err
	})
	g.Go(func() error {
		var err error
		legacy, err = s.assignmentRepo.ActiveLegacySetsByPosition(gctx, positionID)
		return err
	})
	if err := g.Wait(); err != nil {
		log.Error().Err(err).Uint("positionID", positionID).Msg("Resolve: loading assignment sources failed")
		return nil, fmt.Errorf("load assignment sources for position %d: %w", positionID, err)
	}

	resolved := mergeAssignmentSources(globals, links, legacy)

	sort.SliceStable(resolved, func(i, j int) bool {
		if resolved[i].OrderInSet != resolved[j].OrderInSet {
			return resolved[i].OrderInSet < resolved[j].OrderInSet
		}
		return resolved[i].Test.CreatedAt.Before(resolved[j].Test.CreatedAt)
	})

	return resolved, nil
}

// mergeAssignmentSources applies the priority-ranked merge. A test
// appears at most once; global attributes beat a link for the same
// test, and an active link suppresses the legacy row for its pair.
// Legacy rows whose only competing link is inactive fall through,
// because inactive links never reach this merge.
func mergeAssignmentSources(
	globals []model.Test,
	links []model.PositionTestLink,
	legacy []model.LegacyPositionTestSet,
) []ResolvedTest {
	resolved := make([]ResolvedTest, 0, len(globals)+len(links)+len(legacy))
	seen := make(map[uint]struct{}, len(globals)+len(links))

	for _, t := range globals {
		resolved = append(resolved, ResolvedTest{
			TestID:        t.ID,
			Test:          t,
			OrderInSet:    0,
			IsRequired:    true,
			WeightPercent: 100,
			Source:        model.SourceGlobal,
		})
		seen[t.ID] = struct{}{}
	}

	for _, link := range links {
		if _, ok := seen[link.TestID]; ok {
			continue
		}
		link := link
		resolved = append(resolved, ResolvedTest{
			TestID:               link.TestID,
			Test:                 link.Test,
			OrderInSet:           link.OrderInSet,
			IsRequired:           link.IsRequired,
			WeightPercent:        link.WeightPercent,
			PassingScoreOverride: link.PassingScoreOverride,
			Source:               model.SourcePositionLink,
			SourceSetID:          &link.ID,
		})
		seen[link.TestID] = struct{}{}
	}

	for _, set := range legacy {
		if _, ok := seen[set.TestID]; ok {
			continue
		}
		set := set
		resolved = append(resolved, ResolvedTest{
			TestID:               set.TestID,
			Test:                 set.Test,
			OrderInSet:           set.OrderInSet,
			IsRequired:           set.IsRequired,
			WeightPercent:        set.WeightPercent,
			PassingScoreOverride: set.PassingScoreOverride,
			Source:               model.SourceLegacy,
			SourceSetID:          &set.ID,
		})
		seen[set.TestID] = struct{}{}
	}

	return resolved
}

func (s *resolverService) ResolveRequiredTests(ctx context.Context, positionID uint) ([]dto.ResolvedTestDTO, error) {
	resolved, err := s.Resolve(ctx, positionID)
	if err != nil {
		return nil, err
	}

	dtos := make([]dto.ResolvedTestDTO, 0, len(resolved))
	for _, rt := range resolved {
		var d dto.ResolvedTestDTO
		if err := copier.Copy(&d, &rt); err != nil {
			log.Error().Err(err).Uint("testID", rt.TestID).Msg("ResolveRequiredTests: copying resolved test to DTO failed")
			return nil, fmt.Errorf("prepare resolved test response: %w", err)
		}
		d.Title = rt.Test.Title
		d.Type = string(rt.Test.Type)
		dtos = append(dtos, d)
	}
	return dtos, nil
}
