// Package server exposes the comparison engine to external front-ends
// over a small JSON API.
//
// Routes:
//
//	POST /compare      — run selected algorithms over a posted city list;
//	                     optionally record the best tour for a player.
//	GET  /scores       — top recorded scores (shortest first).
//	GET  /scores/stats — per-algorithm aggregates.
//
// The handlers are strictly glue: they decode coordinates, delegate to
// compare.Engine with the request context (so a dropped connection
// cancels long exact searches), and encode the batch. No algorithmic
// logic lives here.
package server
