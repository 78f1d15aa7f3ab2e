// Package entries persists vault entries.
//
// Every operation is scoped by owner: an entry id that belongs to another user
// behaves exactly like an id that does not exist. Secret columns hold cipher
// tokens produced by the service layer and are never interpreted here.
// Listings return only the non-secret projection (models.EntrySummary).
//
// Typical Usage
//
//	repo := entries.NewSQLiteRepository(db)
//	e, _ := repo.Create(ctx, entry)
//	list, _ := repo.ListByOwner(ctx, userID)
//	one, _ := repo.GetByID(ctx, userID, id)
//	_ = repo.DeleteByID(ctx, userID, id)
package entries
