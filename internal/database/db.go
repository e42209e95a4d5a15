package database

import (
	"github.com/jinzhu/gorm"
	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"juicetycoon/internal/game"
)

// InMemoryDSN keeps the serve log for the lifetime of the process
// only. Nothing is persisted across restarts.
const InMemoryDSN = "file::memory:?cache=shared"

// ServeRecord is one row of the session serve log: the outcome of a
// serve or an order timeout.
type ServeRecord struct {
	gorm.Model
	OrderID    uint64 `json:"order_id"`
	RecipeID   string `json:"recipe_id"`
	CustomerID string `json:"customer_id"`
	Result     string `json:"result"`
	Points     int    `json:"points"`
	Streak     int    `json:"streak"`
	Score      int    `json:"score"`
}

// TableName sets the table name for ServeRecord
func (ServeRecord) TableName() string {
	return "serve_log"
}

// Store is the gorm-backed serve log.
type Store struct {
	db *gorm.DB
}

// Open initializes the database connection and migrates the serve log
// table.
func Open(dsn string) (*Store, error) {
	db, err := gorm.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&ServeRecord{}).Error; err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Append writes one record to the serve log.
func (s *Store) Append(rec *ServeRecord) error {
	return s.db.Create(rec).Error
}

// Recent returns the newest n records, most recent first.
func (s *Store) Recent(n int) ([]ServeRecord, error) {
	var records []ServeRecord
	if err := s.db.Order("id desc").Limit(n).Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// Sink returns an event sink that records serve outcomes and order
// timeouts. Write failures are dropped: the log is an observer and
// must never stall the game.
func (s *Store) Sink() game.EventSink {
	return func(event game.Event) {
		switch data := event.Data.(type) {
		case game.ServeData:
			_ = s.Append(&ServeRecord{
				OrderID:    data.OrderID,
				RecipeID:   data.RecipeID,
				CustomerID: data.CustomerID,
				Result:     string(data.Result),
				Points:     data.Points,
				Streak:     data.Streak,
				Score:      data.Score,
			})
		case game.TimeoutData:
			_ = s.Append(&ServeRecord{
				OrderID:    data.OrderID,
				RecipeID:   data.RecipeID,
				CustomerID: data.CustomerID,
				Result:     string(game.ResultTimeout),
				Points:     -data.Penalty,
				Score:      data.Score,
			})
		}
	}
}
