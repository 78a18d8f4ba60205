package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pukkaew/LearnHub-sub000/internal/model"
)

var baseTime = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

func TestResolveMergesThreeSourcesInOrder(t *testing.T) {
	t.Parallel()

	env := newEngineEnv(t)
	ctx := context.Background()
	position := env.createPosition(t, "Backend Engineer")

	global := env.createTest(t, "Company Culture", model.TestTypeApplication, model.TestStatusPublished, true, 0, baseTime)
	linked := env.createTest(t, "Go Aptitude", model.TestTypeAptitude, model.TestStatusPublished, false, 0, baseTime.Add(time.Minute))
	legacyOnly := env.createTest(t, "Personality Profile", model.TestTypePersonality, model.TestStatusPublished, false, 0, baseTime.Add(2*time.Minute))

	env.createLink(t, position.ID, linked.ID, 1, true, 100, nil, true)
	env.createLegacySet(t, position.ID, legacyOnly.ID, 2, true, 100, nil, true)

	resolved, err := env.resolver.Resolve(ctx, position.ID)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if len(resolved) != 3 {
		t.Fatalf("expected 3 resolved tests, got %d", len(resolved))
	}

	if resolved[0].TestID != global.ID || resolved[0].Source != model.SourceGlobal {
		t.Fatalf("expected global test first, got %+v", resolved[0])
	}
	if resolved[0].OrderInSet != 0 || resolved[0].WeightPercent != 100 || !resolved[0].IsRequired {
		t.Fatalf("global entry should be order 0, weight 100, required: %+v", resolved[0])
	}
	if resolved[1].TestID != linked.ID || resolved[1].Source != model.SourcePositionLink {
		t.Fatalf("expected linked test second, got %+v", resolved[1])
	}
	if resolved[2].TestID != legacyOnly.ID || resolved[2].Source != model.SourceLegacy {
		t.Fatalf("expected legacy test third, got %+v", resolved[2])
	}
}

func TestResolveIsIdempotent(t *testing.T) {
	t.Parallel()

	env := newEngineEnv(t)
	ctx := context.Background()
	position := env.createPosition(t, "QA Engineer")

	a := env.createTest(t, "Test A", model.TestTypeAptitude, model.TestStatusPublished, false, 0, baseTime)
	b := env.createTest(t, "Test B", model.TestTypeAptitude, model.TestStatusPublished, false, 0, baseTime.Add(time.Second))
	env.createLink(t, position.ID, a.ID, 2, true, 50, nil, true)
	env.createLink(t, position.ID, b.ID, 1, true, 50, nil, true)

	first, err := env.resolver.Resolve(ctx, position.ID)
	if err != nil {
		t.Fatalf("first Resolve error: %v", err)
	}
	second, err := env.resolver.Resolve(ctx, position.ID)
	if err != nil {
		t.Fatalf("second Resolve error: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("resolution changed length: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].TestID != second[i].TestID || first[i].Source != second[i].Source {
			t.Fatalf("resolution not stable at index %d: %+v vs %+v", i, first[i], second[i])
		}
	}
	if first[0].TestID != b.ID {
		t.Fatalf("expected order_in_set to sort, got test %d first", first[0].TestID)
	}
}

func TestResolveDeduplicatesLinkOverLegacy(t *testing.T) {
	t.Parallel()

	env := newEngineEnv(t)
	ctx := context.Background()
	position := env.createPosition(t, "HR Specialist")

	shared := env.createTest(t, "Shared Test", model.TestTypeAptitude, model.TestStatusPublished, false, 0, baseTime)
	env.createLink(t, position.ID, shared.ID, 1, true, 100, nil, true)
	env.createLegacySet(t, position.ID, shared.ID, 5, false, 40, floatPtr(50), true)

	resolved, err := env.resolver.Resolve(ctx, position.ID)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if len(resolved) != 1 {
		t.Fatalf("expected exactly one entry for a shared test, got %d", len(resolved))
	}
	if resolved[0].Source != model.SourcePositionLink {
		t.Fatalf("link should win over legacy, got source %s", resolved[0].Source)
	}
}

func TestResolveLegacyFallthroughWhenLinkInactive(t *testing.T) {
	t.Parallel()

	env := newEngineEnv(t)
	ctx := context.Background()
	position := env.createPosition(t, "Accountant")

	shared := env.createTest(t, "Numerical Test", model.TestTypeAptitude, model.TestStatusPublished, false, 0, baseTime)
	env.createLink(t, position.ID, shared.ID, 1, true, 100, nil, false)
	env.createLegacySet(t, position.ID, shared.ID, 3, true, 100, nil, true)

	resolved, err := env.resolver.Resolve(ctx, position.ID)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if len(resolved) != 1 {
		t.Fatalf("expected the legacy row to fall through, got %d entries", len(resolved))
	}
	if resolved[0].Source != model.SourceLegacy {
		t.Fatalf("expected legacy source, got %s", resolved[0].Source)
	}
}

func TestResolveGlobalWinsOverLink(t *testing.T) {
	t.Parallel()

	env := newEngineEnv(t)
	ctx := context.Background()
	position := env.createPosition(t, "Sales Rep")

	global := env.createTest(t, "Global Screening", model.TestTypePreEmployment, model.TestStatusPublished, true, 0, baseTime)
	env.createLink(t, position.ID, global.ID, 4, true, 30, floatPtr(90), true)

	resolved, err := env.resolver.Resolve(ctx, position.ID)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if len(resolved) != 1 {
		t.Fatalf("expected one entry, got %d", len(resolved))
	}
	rt := resolved[0]
	if rt.Source != model.SourceGlobal || rt.OrderInSet != 0 || rt.WeightPercent != 100 || rt.PassingScoreOverride != nil {
		t.Fatalf("global attributes should take precedence over the link, got %+v", rt)
	}
}

func TestResolveSkipsUnpublishedAndDisallowed(t *testing.T) {
	t.Parallel()

	env := newEngineEnv(t)
	ctx := context.Background()
	position := env.createPosition(t, "Designer")

	draft := env.createTest(t, "Draft Test", model.TestTypeAptitude, model.TestStatusDraft, false, 0, baseTime)
	archivedGlobal := env.createTest(t, "Archived Global", model.TestTypeAptitude, model.TestStatusArchived, true, 0, baseTime)
	odd := env.createTest(t, "Internal Quiz", model.TestType("internal_quiz"), model.TestStatusPublished, false, 0, baseTime)
	env.createLink(t, position.ID, draft.ID, 1, true, 100, nil, true)
	env.createLink(t, position.ID, odd.ID, 2, true, 100, nil, true)
	_ = archivedGlobal

	resolved, err := env.resolver.Resolve(ctx, position.ID)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if len(resolved) != 0 {
		t.Fatalf("expected empty resolution, got %d entries", len(resolved))
	}
}

func TestResolveUnknownPosition(t *testing.T) {
	t.Parallel()

	env := newEngineEnv(t)
	_, err := env.resolver.Resolve(context.Background(), 999)
	if !errors.Is(err, ErrPositionNotFound) {
		t.Fatalf("expected ErrPositionNotFound, got %v", err)
	}
}

func TestResolveTieBreaksByCreationTime(t *testing.T) {
	t.Parallel()

	env := newEngineEnv(t)
	ctx := context.Background()
	position := env.createPosition(t, "Support Agent")

	later := env.createTest(t, "Later Test", model.TestTypeAptitude, model.TestStatusPublished, false, 0, baseTime.Add(time.Hour))
	earlier := env.createTest(t, "Earlier Test", model.TestTypeAptitude, model.TestStatusPublished, false, 0, baseTime)
	env.createLink(t, position.ID, later.ID, 1, true, 100, nil, true)
	env.createLink(t, position.ID, earlier.ID, 1, true, 100, nil, true)

	resolved, err := env.resolver.Resolve(ctx, position.ID)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if len(resolved) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(resolved))
	}
	if resolved[0].TestID != earlier.ID {
		t.Fatalf("equal order should tie-break by creation time, got test %d first", resolved[0].TestID)
	}
}
