package utils

// ctxKey is unexported to prevent collisions.
type ctxKey string

// CtxKeyUserID stores the authenticated user's ID from the access token.
const CtxKeyUserID ctxKey = "userID"

// CtxKeyUsername stores the authenticated user's username from the access token.
const CtxKeyUsername ctxKey = "username"
