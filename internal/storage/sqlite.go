package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/YungSonix/Smite2Mastery-sub002/internal/models"
)

// Store persists user-saved loadouts. The game dataset itself stays
// in memory; only user-created data touches the database.
type Store struct {
	db *sql.DB
}

// New creates a new Store with SQLite
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate runs database migrations
func (s *Store) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS loadouts (
			id TEXT PRIMARY KEY,
			god_name TEXT NOT NULL,
			name TEXT NOT NULL,
			role TEXT,
			items TEXT NOT NULL,
			share_code TEXT UNIQUE NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_loadouts_god ON loadouts(god_name)`,
		`CREATE INDEX IF NOT EXISTS idx_loadouts_share ON loadouts(share_code)`,
	}

	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	return nil
}

// generateShareCode creates a short unique share code
func generateShareCode() string {
	u := uuid.New()
	return u.String()[:8]
}

// CreateLoadout creates a new loadout
func (s *Store) CreateLoadout(lc *models.LoadoutCreate) (*models.Loadout, error) {
	id := uuid.New().String()
	shareCode := generateShareCode()
	items, _ := json.Marshal(lc.Items)
	now := time.Now()

	_, err := s.db.Exec(`
		INSERT INTO loadouts (id, god_name, name, role, items, share_code, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, id, lc.GodName, lc.Name, lc.Role, items, shareCode, now, now)
	if err != nil {
		return nil, err
	}

	return &models.Loadout{
		ID:        id,
		GodName:   lc.GodName,
		Name:      lc.Name,
		Role:      lc.Role,
		Items:     lc.Items,
		ShareCode: shareCode,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// GetLoadout returns a loadout by ID
func (s *Store) GetLoadout(id string) (*models.Loadout, error) {
	return s.getBy("id", id)
}

// GetLoadoutByShareCode returns a loadout by share code
func (s *Store) GetLoadoutByShareCode(code string) (*models.Loadout, error) {
	return s.getBy("share_code", code)
}

func (s *Store) getBy(column, value string) (*models.Loadout, error) {
	var l models.Loadout
	var itemsStr string

	err := s.db.QueryRow(fmt.Sprintf(`
		SELECT id, god_name, name, role, items, share_code, created_at, updated_at
		FROM loadouts WHERE %s = ?
	`, column), value).Scan(&l.ID, &l.GodName, &l.Name, &l.Role,
		&itemsStr, &l.ShareCode, &l.CreatedAt, &l.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	json.Unmarshal([]byte(itemsStr), &l.Items)
	return &l, nil
}

// ListLoadouts returns loadouts, optionally filtered by god name
func (s *Store) ListLoadouts(godName string) ([]models.Loadout, error) {
	var rows *sql.Rows
	var err error

	if godName != "" {
		rows, err = s.db.Query(`
			SELECT id, god_name, name, role, items, share_code, created_at, updated_at
			FROM loadouts WHERE god_name = ? ORDER BY updated_at DESC
		`, godName)
	} else {
		rows, err = s.db.Query(`
			SELECT id, god_name, name, role, items, share_code, created_at, updated_at
			FROM loadouts ORDER BY updated_at DESC
		`)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var loadouts []models.Loadout
	for rows.Next() {
		var l models.Loadout
		var itemsStr string
		err := rows.Scan(&l.ID, &l.GodName, &l.Name, &l.Role,
			&itemsStr, &l.ShareCode, &l.CreatedAt, &l.UpdatedAt)
		if err != nil {
			return nil, err
		}
		json.Unmarshal([]byte(itemsStr), &l.Items)
		loadouts = append(loadouts, l)
	}
	return loadouts, rows.Err()
}

// UpdateLoadout updates an existing loadout
func (s *Store) UpdateLoadout(id string, update *models.LoadoutUpdate) error {
	sets := []string{"updated_at = ?"}
	args := []any{time.Now()}

	if update.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *update.Name)
	}
	if update.Role != nil {
		sets = append(sets, "role = ?")
		args = append(args, *update.Role)
	}
	if update.Items != nil {
		items, _ := json.Marshal(update.Items)
		sets = append(sets, "items = ?")
		args = append(args, items)
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE loadouts SET %s WHERE id = ?", stringJoin(sets, ", "))

	_, err := s.db.Exec(query, args...)
	return err
}

// DeleteLoadout deletes a loadout by ID
func (s *Store) DeleteLoadout(id string) error {
	_, err := s.db.Exec(`DELETE FROM loadouts WHERE id = ?`, id)
	return err
}

func stringJoin(strs []string, sep string) string {
	if len(strs) == 0 {
		return ""
	}
	result := strs[0]
	for i := 1; i < len(strs); i++ {
		result += sep + strs[i]
	}
	return result
}
