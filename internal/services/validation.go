package services

import "context"

type existenceChecker interface {
	Exists(ctx context.Context, id int) (bool, error)
}

type referenceCheck struct {
	Reference
	repo existenceChecker
}

func ref(repo existenceChecker, entity, field string, id int) referenceCheck {
	return referenceCheck{Reference: Reference{Entity: entity, Field: field, ID: id}, repo: repo}
}

// checkReferences runs every check and returns the references that do not resolve.
// An empty result means the payload may be written.
func checkReferences(ctx context.Context, checks ...referenceCheck) ([]Reference, error) {
	var missing []Reference
	for _, check := range checks {
		ok, err := check.repo.Exists(ctx, check.ID)
		if err != nil {
			return nil, &StorageError{Op: "validate", Err: err}
		}
		if !ok {
			missing = append(missing, check.Reference)
		}
	}
	return missing, nil
}

// requireExists fails with a NotFoundError naming entity when id is not stored.
func requireExists(ctx context.Context, repo existenceChecker, entity string, id int) error {
	ok, err := repo.Exists(ctx, id)
	if err != nil {
		return &StorageError{Op: "lookup", Err: err}
	}
	if !ok {
		return notFound(entity, id)
	}
	return nil
}

// validateReferences fails with an InvalidReferenceError when any check does not resolve.
func validateReferences(ctx context.Context, entity string, checks ...referenceCheck) error {
	missing, err := checkReferences(ctx, checks...)
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		return &InvalidReferenceError{Entity: entity, References: missing}
	}
	return nil
}
