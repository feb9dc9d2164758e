package progression

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	_ "modernc.org/sqlite"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

const createProgressionTable = `CREATE TABLE IF NOT EXISTS player_progression (
	player_id TEXT PRIMARY KEY,
	level INTEGER NOT NULL,
	total_xp INTEGER NOT NULL,
	games_played INTEGER NOT NULL,
	highest_score INTEGER NOT NULL,
	state TEXT NOT NULL
)`

type progressionRow struct {
	PlayerID     string `db:"player_id"`
	Level        int    `db:"level"`
	TotalXP      int    `db:"total_xp"`
	GamesPlayed  int    `db:"games_played"`
	HighestScore int    `db:"highest_score"`
	State        string `db:"state"`
}

// SQLStore keeps progression in sqlite or postgres. Summary columns are
// denormalized from the JSON state for querying.
type SQLStore struct {
	db *sqlx.DB
}

func NewSQLStore(driver string, dsn string) (*SQLStore, error) {
	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, errors.Wrapf(err, "Unable to open %s database", driver)
	}
	s := &SQLStore{db: db}
	if err := s.Migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func NewSQLStoreFromDB(db *sqlx.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) Migrate() error {
	if _, err := s.db.Exec(createProgressionTable); err != nil {
		return errors.Wrap(err, "Unable to create player_progression table")
	}
	return nil
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}

func (s *SQLStore) Load(ctx context.Context, playerID string) (*State, error) {
	var row progressionRow
	query := s.db.Rebind("SELECT player_id, level, total_xp, games_played, highest_score, state FROM player_progression WHERE player_id = ?")
	err := s.db.GetContext(ctx, &row, query, playerID)
	if err == sql.ErrNoRows {
		return nil, &NotFoundError{PlayerID: playerID}
	} else if err != nil {
		return nil, errors.Wrap(err, "sqlx Get returned an error")
	}
	state := &State{}
	if err := json.Unmarshal([]byte(row.State), state); err != nil {
		return nil, errors.Wrapf(err, "Malformed progression for player %s", playerID)
	}
	return state, nil
}

func (s *SQLStore) Save(ctx context.Context, playerID string, state *State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	row := progressionRow{
		PlayerID:     playerID,
		Level:        state.PlayerLevel.Level,
		TotalXP:      state.PlayerLevel.TotalXPEarned,
		GamesPlayed:  state.Statistics.GamesPlayed,
		HighestScore: state.Statistics.HighestScore,
		State:        string(data),
	}
	query := s.db.Rebind(`INSERT INTO player_progression (player_id, level, total_xp, games_played, highest_score, state)
	VALUES (?, ?, ?, ?, ?, ?)
	ON CONFLICT (player_id) DO UPDATE SET
		level = excluded.level,
		total_xp = excluded.total_xp,
		games_played = excluded.games_played,
		highest_score = excluded.highest_score,
		state = excluded.state`)
	_, err = s.db.ExecContext(ctx, query, row.PlayerID, row.Level, row.TotalXP, row.GamesPlayed, row.HighestScore, row.State)
	if err != nil {
		return errors.Wrapf(err, "Unable to save progression for player %s", playerID)
	}
	return nil
}

// Leaderboard returns the top players by highest score.
func (s *SQLStore) Leaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	var entries []LeaderboardEntry
	query := s.db.Rebind("SELECT player_id, level, highest_score, games_played FROM player_progression ORDER BY highest_score DESC, player_id LIMIT ?")
	if err := s.db.SelectContext(ctx, &entries, query, limit); err != nil {
		return nil, errors.Wrap(err, "sqlx Select returned an error")
	}
	return entries, nil
}

type LeaderboardEntry struct {
	PlayerID     string `db:"player_id"`
	Level        int    `db:"level"`
	HighestScore int    `db:"highest_score"`
	GamesPlayed  int    `db:"games_played"`
}
