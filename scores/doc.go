// Package scores persists comparison outcomes as high scores.
//
// The store keeps one row per recorded run - player, home city, instance
// size, the tour as a JSON identifier sequence, its length, the algorithm
// tag, execution time and timestamp - in a SQLite database through GORM.
// Ranking follows the classic arcade rule: shortest route first, faster
// run breaking ties.
//
// The store is glue around the engine, not part of it: nothing here feeds
// back into solving.
package scores
