package scores

import (
	"encoding/json"
	"errors"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tourlab/tourlab/solve"
)

// ErrFailedResult is returned when a failed solver result is offered for
// persistence; only successful tours are scoreable.
var ErrFailedResult = errors.New("scores: cannot record a failed result")

// GameResult is one persisted run.
type GameResult struct {
	ID            uint      `gorm:"primaryKey"`
	PlayerName    string    `gorm:"not null;index"`
	HomeCity      int       `gorm:"not null"`
	CitiesVisited int       `gorm:"not null"`
	Route         string    `gorm:"not null"` // JSON array of city identifiers
	RouteLength   float64   `gorm:"not null;index"`
	Algorithm     string    `gorm:"not null"`
	ExecutionTime float64   `gorm:"not null"` // seconds
	Timestamp     time.Time `gorm:"not null"`
}

// AlgorithmStat aggregates persisted runs per algorithm tag.
type AlgorithmStat struct {
	Algorithm  string
	Runs       int64
	AvgLength  float64
	BestLength float64
	AvgTime    float64
}

// Store wraps the SQLite-backed score database.
type Store struct {
	db *gorm.DB
}

// Open opens (or creates) the database at path and migrates the schema.
// Use ":memory:" for an ephemeral store in tests.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err = db.AutoMigrate(&GameResult{}); err != nil {
		return nil, err
	}

	return &Store{db: db}, nil
}

// Save records one successful solver result for player.
func (s *Store) Save(player string, homeCity int, r solve.Result) error {
	if !r.OK() {
		return ErrFailedResult
	}

	route, err := json.Marshal(r.Tour)
	if err != nil {
		return err
	}

	row := GameResult{
		PlayerName:    player,
		HomeCity:      homeCity,
		CitiesVisited: len(r.Tour),
		Route:         string(route),
		RouteLength:   r.Length,
		Algorithm:     r.Algorithm.String(),
		ExecutionTime: r.Elapsed.Seconds(),
		Timestamp:     time.Now(),
	}

	return s.db.Create(&row).Error
}

// TopScores returns up to limit rows ordered by route length, then
// execution time.
func (s *Store) TopScores(limit int) ([]GameResult, error) {
	var rows []GameResult
	err := s.db.
		Order("route_length asc, execution_time asc").
		Limit(limit).
		Find(&rows).Error

	return rows, err
}

// PlayerHistory returns the runs of one player, most recent first.
func (s *Store) PlayerHistory(player string) ([]GameResult, error) {
	var rows []GameResult
	err := s.db.
		Where("player_name = ?", player).
		Order("timestamp desc").
		Find(&rows).Error

	return rows, err
}

// AlgorithmStats aggregates run counts, average/best lengths and average
// times per algorithm tag.
func (s *Store) AlgorithmStats() ([]AlgorithmStat, error) {
	var stats []AlgorithmStat
	err := s.db.
		Model(&GameResult{}).
		Select("algorithm, count(*) as runs, avg(route_length) as avg_length, " +
			"min(route_length) as best_length, avg(execution_time) as avg_time").
		Group("algorithm").
		Order("algorithm asc").
		Scan(&stats).Error

	return stats, err
}
