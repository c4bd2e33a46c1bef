// Package auth provides session-based identity for the application.
//
// There are no passwords: a login binds a username to a server-side
// session, and the identity middleware resolves that username to a user
// record on every request. Requests without a session proceed anonymously
// and each endpoint decides how to treat them.
//
// # Usage
//
// Initialize in entrypoint:
//
//	sessionManager, err := auth.NewSessionManager(sqlDB, cfg.Session)
//	authMiddleware := auth.NewMiddleware(sessionManager, usersRepo)
//	router.Use(sessionManager.SessionLoadSave())
//	router.Use(authMiddleware.Handler())
//
// Extract the user in handlers:
//
//	userID := auth.GetUserID(c) // AnonymousUserID when not logged in
package auth
