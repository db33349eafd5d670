// Package dashboard computes derived numeric views (totals, category
// spending, trends, quick stats) from pre-fetched household rows.
//
// Every function here is pure: no database access, no side effects, and no
// error returns. The inputs are display aggregates over already-authorized
// data, so malformed rows (e.g. a transaction whose category join is missing)
// degrade instead of failing.
package dashboard
