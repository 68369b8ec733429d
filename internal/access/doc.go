// Package access is the facade between the HTTP boundary and the stores.
//
// It resolves usernames to account ids for every account-scoped operation,
// owns the bcrypt hashing policy, and translates store outcomes into the
// domain errors callers match with errors.Is. Stores never call each other;
// all cross-entity orchestration happens here.
package access
