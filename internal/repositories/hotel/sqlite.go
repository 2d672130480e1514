package hotel

import (
	"context"
	"database/sql"
	"time"

	"github.com/KirkDiggler/hotel-api/internal/entities"
	"github.com/KirkDiggler/hotel-api/internal/errors"
	"github.com/KirkDiggler/hotel-api/internal/pkg/clock"
)

// sqliteSchema is applied one statement at a time on every start.
var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS hotels (
		id         TEXT PRIMARY KEY,
		updated_at INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS rooms (
		hotel_id TEXT    NOT NULL REFERENCES hotels(id) ON DELETE CASCADE,
		room_id  INTEGER NOT NULL,
		floor    INTEGER NOT NULL,
		number   INTEGER NOT NULL,
		occupied INTEGER NOT NULL DEFAULT 0,
		selected INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (hotel_id, room_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_rooms_hotel_floor ON rooms (hotel_id, floor, number)`,
}

// SQLiteConfig contains configuration for the SQLite hotel repository.
type SQLiteConfig struct {
	DB    *sql.DB
	Clock clock.Clock
}

// Validate validates the SQLiteConfig.
func (cfg *SQLiteConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.DB == nil {
		return errors.InvalidArgument("db cannot be nil")
	}
	return nil
}

type sqliteRepository struct {
	db    *sql.DB
	clock clock.Clock
}

// NewSQLite creates a SQLite-backed hotel repository and ensures its tables exist
func NewSQLite(ctx context.Context, cfg *SQLiteConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	for _, stmt := range sqliteSchema {
		if _, err := cfg.DB.ExecContext(ctx, stmt); err != nil {
			return nil, errors.Wrap(err, "failed to create hotel schema")
		}
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &sqliteRepository{db: cfg.DB, clock: c}, nil
}

// Ensure sqliteRepository implements Repository
var _ Repository = (*sqliteRepository)(nil)

// Get loads the hotel rows. Floors are rebuilt from the rooms they hold.
func (r *sqliteRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.HotelID == "" {
		return nil, errors.InvalidArgument(errHotelIDEmpty)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to begin transaction")
	}
	defer func() { _ = tx.Rollback() }()

	var updatedAt int64
	err = tx.QueryRowContext(ctx, `SELECT updated_at FROM hotels WHERE id = ?`, input.HotelID).Scan(&updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundf("hotel %s not found", input.HotelID)
		}
		return nil, errors.Wrapf(err, "failed to load hotel %s", input.HotelID)
	}

	rows, err := tx.QueryContext(ctx,
		`SELECT room_id, floor, number, occupied, selected
		   FROM rooms WHERE hotel_id = ? ORDER BY floor, number`, input.HotelID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load rooms of hotel %s", input.HotelID)
	}
	defer func() { _ = rows.Close() }()

	hotel := &entities.Hotel{ID: input.HotelID}
	for rows.Next() {
		var room entities.Room
		if err := rows.Scan(&room.ID, &room.Floor, &room.Number, &room.IsOccupied, &room.IsSelected); err != nil {
			return nil, errors.Wrap(err, "failed to scan room")
		}

		last := len(hotel.Floors) - 1
		if last < 0 || hotel.Floors[last].FloorNumber != room.Floor {
			hotel.Floors = append(hotel.Floors, entities.Floor{FloorNumber: room.Floor})
			last++
		}
		hotel.Floors[last].Rooms = append(hotel.Floors[last].Rooms, room)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate rooms")
	}

	return &GetOutput{
		Hotel:     hotel,
		UpdatedAt: time.Unix(0, updatedAt).UTC(),
	}, nil
}

// Save replaces every room row of the hotel in one transaction
func (r *sqliteRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateHotel(input.Hotel); err != nil {
		return nil, err
	}

	now := r.clock.Now()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to begin transaction")
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO hotels (id, updated_at) VALUES (?, ?)
		 ON CONFLICT(id) DO UPDATE SET updated_at = excluded.updated_at`,
		input.Hotel.ID, now.UnixNano())
	if err != nil {
		return nil, errors.Wrapf(err, "failed to upsert hotel %s", input.Hotel.ID)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM rooms WHERE hotel_id = ?`, input.Hotel.ID); err != nil {
		return nil, errors.Wrapf(err, "failed to clear rooms of hotel %s", input.Hotel.ID)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO rooms (hotel_id, room_id, floor, number, occupied, selected) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return nil, errors.Wrap(err, "failed to prepare room insert")
	}
	defer func() { _ = stmt.Close() }()

	for _, floor := range input.Hotel.Floors {
		for _, room := range floor.Rooms {
			_, err := stmt.ExecContext(ctx, input.Hotel.ID, room.ID, room.Floor, room.Number,
				boolToInt(room.IsOccupied), boolToInt(room.IsSelected))
			if err != nil {
				return nil, errors.Wrapf(err, "failed to insert room %d", room.ID)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, errors.Wrap(err, "failed to commit hotel")
	}

	return &SaveOutput{UpdatedAt: now}, nil
}

// Delete removes the hotel and, through the foreign key, its rooms
func (r *sqliteRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.HotelID == "" {
		return nil, errors.InvalidArgument(errHotelIDEmpty)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to begin transaction")
	}
	defer func() { _ = tx.Rollback() }()

	// Rooms are removed explicitly as well in case foreign keys are off.
	if _, err := tx.ExecContext(ctx, `DELETE FROM rooms WHERE hotel_id = ?`, input.HotelID); err != nil {
		return nil, errors.Wrapf(err, "failed to delete rooms of hotel %s", input.HotelID)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM hotels WHERE id = ?`, input.HotelID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete hotel %s", input.HotelID)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read affected rows")
	}

	if err := tx.Commit(); err != nil {
		return nil, errors.Wrap(err, "failed to commit delete")
	}

	return &DeleteOutput{Deleted: affected > 0}, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
