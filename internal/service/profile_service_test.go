package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"practicecoach/internal/model"
)

func TestProfileUpdateAndCache(t *testing.T) {
	repo := newFakeProfileRepo()
	institutions := &fakeInstitutionRepo{items: map[string]*model.Institution{}}
	pc := &fakeProfileCache{profiles: map[string]*model.UserProfile{}}
	svc := NewProfileService(repo, institutions, pc, zap.NewNop())
	ctx := context.Background()

	repo.Create(ctx, &model.UserProfile{ID: "u1", Email: "u1@example.com", DisplayName: "One"})
	institutions.Create(ctx, &model.Institution{Name: "Acme", Kind: model.InstitutionBusiness})

	p, err := svc.Get(ctx, "u1")
	if err != nil || p.DisplayName != "One" {
		t.Fatalf("Get: %v %+v", err, p)
	}
	if _, ok := pc.profiles["u1"]; !ok {
		t.Error("profile should be cached after first read")
	}

	name := "  Renamed "
	inst := "inst-Acme"
	updated, err := svc.Update(ctx, "u1", &model.UpdateProfileRequest{
		DisplayName:   &name,
		InstitutionID: &inst,
		Preferences:   map[string]string{"theme": "dark"},
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.DisplayName != "Renamed" || updated.InstitutionID != "inst-Acme" || updated.Preferences["theme"] != "dark" {
		t.Errorf("unexpected update %+v", updated)
	}
	if _, ok := pc.profiles["u1"]; ok {
		t.Error("update should invalidate the cache")
	}

	unknown := "inst-missing"
	if _, err := svc.Update(ctx, "u1", &model.UpdateProfileRequest{InstitutionID: &unknown}); !errors.Is(err, ErrValidation) {
		t.Errorf("expected validation error for unknown institution, got %v", err)
	}
	if _, err := svc.Get(ctx, "ghost"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestInstitutionService(t *testing.T) {
	svc := NewInstitutionService(&fakeInstitutionRepo{items: map[string]*model.Institution{}}, zap.NewNop())
	ctx := context.Background()

	school, err := svc.Create(ctx, "owner", &model.CreateInstitutionRequest{
		Name: "Northside High", Kind: model.InstitutionSchool, ContactEmail: "office@northside.edu", Seats: 120,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if school.OwnerID != "owner" {
		t.Errorf("owner not set: %+v", school)
	}

	if _, err := svc.Create(ctx, "owner", &model.CreateInstitutionRequest{
		Name: "Northside High", Kind: model.InstitutionSchool, ContactEmail: "x@y.edu",
	}); !errors.Is(err, ErrValidation) {
		t.Errorf("expected duplicate name rejection, got %v", err)
	}
	if _, err := svc.Create(ctx, "owner", &model.CreateInstitutionRequest{
		Name: "Club", Kind: "club", ContactEmail: "x@y.edu",
	}); !errors.Is(err, ErrValidation) {
		t.Errorf("expected kind rejection, got %v", err)
	}

	svc.Create(ctx, "owner", &model.CreateInstitutionRequest{Name: "Acme", Kind: model.InstitutionBusiness, ContactEmail: "hr@acme.com"})

	schools, err := svc.List(ctx, model.InstitutionSchool)
	if err != nil || len(schools) != 1 {
		t.Errorf("expected one school, got %d (%v)", len(schools), err)
	}
	all, _ := svc.List(ctx, "")
	if len(all) != 2 {
		t.Errorf("expected two institutions, got %d", len(all))
	}
	if _, err := svc.Get(ctx, "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
