package store

import (
	"context"

	"github.com/abhisek/numbond/ent"
	"github.com/abhisek/numbond/ent/childprofile"
)

// profileRepo implements ProfileRepo using the ent client.
type profileRepo struct {
	client *ent.Client
}

func (r *profileRepo) Get(ctx context.Context, childID string) (*Profile, error) {
	cp, err := r.client.ChildProfile.Query().
		Where(childprofile.ChildID(childID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, &StorageError{Op: "query", Err: err}
	}
	return toProfile(cp), nil
}

func (r *profileRepo) Upsert(ctx context.Context, p *Profile) error {
	existing, err := r.client.ChildProfile.Query().
		Where(childprofile.ChildID(p.ChildID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return &StorageError{Op: "query", Err: err}
	}

	if existing == nil {
		_, err = r.client.ChildProfile.Create().
			SetChildID(p.ChildID).
			SetName(p.Name).
			SetCurrentLevel(p.CurrentLevel).
			SetFavoriteNumbers(p.FavoriteNumbers).
			SetReviewMode(p.ReviewMode).
			SetTotalAttempts(p.TotalAttempts).
			Save(ctx)
	} else {
		_, err = existing.Update().
			SetName(p.Name).
			SetCurrentLevel(p.CurrentLevel).
			SetFavoriteNumbers(p.FavoriteNumbers).
			SetReviewMode(p.ReviewMode).
			SetTotalAttempts(p.TotalAttempts).
			Save(ctx)
	}
	if err != nil {
		return &StorageError{Op: "append", Err: err}
	}
	return nil
}

func (r *profileRepo) List(ctx context.Context) ([]Profile, error) {
	profiles, err := r.client.ChildProfile.Query().
		Order(ent.Asc(childprofile.FieldName)).
		All(ctx)
	if err != nil {
		return nil, &StorageError{Op: "query", Err: err}
	}

	out := make([]Profile, len(profiles))
	for i, cp := range profiles {
		out[i] = *toProfile(cp)
	}
	return out, nil
}

func toProfile(cp *ent.ChildProfile) *Profile {
	return &Profile{
		ChildID:         cp.ChildID,
		Name:            cp.Name,
		CurrentLevel:    cp.CurrentLevel,
		FavoriteNumbers: cp.FavoriteNumbers,
		ReviewMode:      cp.ReviewMode,
		TotalAttempts:   cp.TotalAttempts,
		CreatedAt:       cp.CreatedAt,
		UpdatedAt:       cp.UpdatedAt,
	}
}
