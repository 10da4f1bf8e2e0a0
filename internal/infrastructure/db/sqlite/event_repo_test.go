package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/Tzuyuchae/ansonzaneproject/internal/application/event"
	"github.com/Tzuyuchae/ansonzaneproject/internal/domain"
)

func seedEvent(t *testing.T, repo *EventRepo, name string, start time.Time, mut func(*domain.Event)) int64 {
	t.Helper()

	e := domain.Event{
		CreatorID:   "creator",
		Name:        name,
		Description: "seeded for tests",
		Location:    "Hall B",
		Type:        "Workshops",
		Access:      domain.AccessPublic,
		StartAt:     start,
		EndAt:       start.Add(time.Hour),
	}
	if mut != nil {
		mut(&e)
	}
	id, err := repo.Create(context.Background(), e)
	if err != nil {
		t.Fatalf("seed %q: %v", name, err)
	}
	return id
}

func TestEventRepo_CreateAndGet(t *testing.T) {
	t.Parallel()

	repo := NewEventRepo(openTestDB(t))
	ctx := context.Background()
	start := time.Date(2026, 11, 3, 18, 30, 0, 0, time.UTC)

	cost := 12.5
	id := seedEvent(t, repo, "Paid Workshop", start, func(e *domain.Event) {
		e.IsPriced = true
		e.Cost = &cost
		e.RSVPRequired = true
		e.Categories = []string{"Science", "Workshops"}
	})

	got, err := repo.GetByID(ctx, id, false)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Paid Workshop" || got.CreatorID != "creator" {
		t.Fatalf("row mangled: %+v", got)
	}
	if !got.StartAt.Equal(start) || !got.EndAt.Equal(start.Add(time.Hour)) {
		t.Fatalf("timestamps did not round-trip: %v / %v", got.StartAt, got.EndAt)
	}
	if !got.IsPriced || got.Cost == nil || *got.Cost != 12.5 {
		t.Fatalf("cost did not round-trip: %+v", got.Cost)
	}
	if len(got.Categories) != 2 || got.Categories[0] != "Science" || got.Categories[1] != "Workshops" {
		t.Fatalf("categories did not round-trip: %v", got.Categories)
	}
}

func TestEventRepo_GetMissing(t *testing.T) {
	t.Parallel()

	repo := NewEventRepo(openTestDB(t))

	_, err := repo.GetByID(context.Background(), 404, false)
	requireDomainCode(t, err, "event_not_found")
}

func TestEventRepo_ListChronological(t *testing.T) {
	t.Parallel()

	repo := NewEventRepo(openTestDB(t))
	ctx := context.Background()
	base := time.Date(2026, 11, 1, 9, 0, 0, 0, time.UTC)

	seedEvent(t, repo, "later", base.Add(48*time.Hour), nil)
	seedEvent(t, repo, "earlier", base, nil)
	seedEvent(t, repo, "hidden", base.Add(24*time.Hour), func(e *domain.Event) {
		e.Access = domain.AccessInactive
	})

	got, err := repo.List(ctx, false)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 || got[0].Name != "earlier" || got[1].Name != "later" {
		t.Fatalf("wrong order or inactive leaked: %+v", got)
	}

	all, err := repo.List(ctx, true)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 with inactive, got %d", len(all))
	}
}

func TestEventRepo_UpdatePartial(t *testing.T) {
	t.Parallel()

	repo := NewEventRepo(openTestDB(t))
	ctx := context.Background()
	start := time.Date(2026, 11, 3, 18, 30, 0, 0, time.UTC)
	id := seedEvent(t, repo, "before", start, nil)

	name := "after"
	priced := true
	cost := 5.0
	err := repo.Update(ctx, id, event.Update{Name: &name, IsPriced: &priced, Cost: &cost})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	got, _ := repo.GetByID(ctx, id, false)
	if got.Name != "after" || !got.IsPriced || got.Cost == nil || *got.Cost != 5.0 {
		t.Fatalf("update not applied: %+v", got)
	}
	if got.Location != "Hall B" {
		t.Fatalf("untouched field changed: %q", got.Location)
	}

	// Turning pricing off clears the stored cost.
	unpriced := false
	if err := repo.Update(ctx, id, event.Update{IsPriced: &unpriced}); err != nil {
		t.Fatalf("unprice: %v", err)
	}
	got, _ = repo.GetByID(ctx, id, false)
	if got.IsPriced || got.Cost != nil {
		t.Fatalf("cost not cleared: %+v", got)
	}

	requireDomainCode(t, repo.Update(ctx, 404, event.Update{Name: &name}), "event_not_found")
}

func TestEventRepo_SetAccessAndDelete(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	repo := NewEventRepo(db)
	eng := NewEngagementRepo(db)
	ctx := context.Background()
	start := time.Date(2026, 11, 3, 18, 30, 0, 0, time.UTC)

	id := seedEvent(t, repo, "doomed", start, func(e *domain.Event) {
		e.Categories = []string{"Sports"}
	})
	if _, err := eng.Add(ctx, domain.KindLike, "uA", id); err != nil {
		t.Fatalf("like: %v", err)
	}

	if err := repo.SetAccess(ctx, id, domain.AccessInactive); err != nil {
		t.Fatalf("set access: %v", err)
	}
	_, err := repo.GetByID(ctx, id, false)
	requireDomainCode(t, err, "event_not_found")
	if _, err := repo.GetByID(ctx, id, true); err != nil {
		t.Fatalf("inactive row must stay readable with override: %v", err)
	}

	if err := repo.Delete(ctx, id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	_, err = repo.GetByID(ctx, id, true)
	requireDomainCode(t, err, "event_not_found")

	// Dependent rows cascade with the event.
	members, err := eng.MembersOf(ctx, domain.KindLike, id)
	if err != nil {
		t.Fatalf("members: %v", err)
	}
	if len(members) != 0 {
		t.Fatalf("engagements survived the delete: %v", members)
	}

	requireDomainCode(t, repo.SetAccess(ctx, 404, domain.AccessInactive), "event_not_found")
}

func TestEventRepo_Search(t *testing.T) {
	t.Parallel()

	repo := NewEventRepo(openTestDB(t))
	ctx := context.Background()
	base := time.Date(2026, 11, 1, 9, 0, 0, 0, time.UTC)

	seedEvent(t, repo, "Intro to Go", base, func(e *domain.Event) {
		e.Type = "Computer Science"
		e.Description = "hands-on coding session"
	})
	seedEvent(t, repo, "Go Deep Dive", base.Add(24*time.Hour), func(e *domain.Event) {
		e.Type = "Workshops"
		e.Categories = []string{"Computer Science"}
	})
	seedEvent(t, repo, "Pottery Night", base.Add(48*time.Hour), func(e *domain.Event) {
		e.Type = "Art"
	})
	seedEvent(t, repo, "Go Secrets", base.Add(72*time.Hour), func(e *domain.Event) {
		e.Access = domain.AccessInactive
	})

	byTitle, err := repo.Search(ctx, event.SearchFilter{TitleContains: "Go"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(byTitle) != 2 {
		t.Fatalf("title search: expected 2 active matches, got %d", len(byTitle))
	}

	// Category matches either the event type or an attached category.
	byCat, err := repo.Search(ctx, event.SearchFilter{Category: "Computer Science"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(byCat) != 2 {
		t.Fatalf("category search: expected 2, got %d", len(byCat))
	}

	byDesc, err := repo.Search(ctx, event.SearchFilter{DescriptionContains: "coding"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(byDesc) != 1 || byDesc[0].Name != "Intro to Go" {
		t.Fatalf("description search: %+v", byDesc)
	}

	from := base.Add(12 * time.Hour)
	until := base.Add(60 * time.Hour)
	byWindow, err := repo.Search(ctx, event.SearchFilter{StartFrom: &from, StartUntil: &until})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(byWindow) != 2 || byWindow[0].Name != "Go Deep Dive" || byWindow[1].Name != "Pottery Night" {
		t.Fatalf("window search: %+v", byWindow)
	}
}
