// Package users persists vault owner credentials.
//
// A user row carries the bcrypt record used to verify the master password and
// the KDF salt used to derive the session key. Usernames are unique; inserting
// a duplicate reports common.ErrDuplicateUser so the service layer can map it
// to an account error.
//
// Typical Usage
//
//	repo := users.NewSQLiteRepository(db)
//	u, _ := repo.Create(ctx, &models.UserCredential{Username: "alice", ...})
//	u, err := repo.FindByUsername(ctx, "alice") // common.ErrorNotFound if absent
package users
