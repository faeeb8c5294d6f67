package topology

import (
	"database/sql"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"github.com/Emeline-1/bgpsecsim/asgraph"
)

// Cache is an on-disk sqlite store of already-parsed as-rel edges, keyed by
// source file name and modification time, so repeated simulation runs
// against the same topology file skip re-parsing a multi-million-line
// relationship file. This lives outside the core asgraph/trial/policy/score
// packages, which never touch disk.
type Cache struct {
	db *sql.DB
}

// OpenCache opens (creating if needed) a sqlite cache database at path.
func OpenCache(path string) (*Cache, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, &asgraph.GraphError{Op: "OpenCache", Message: err.Error()}
	}
	const schema = `
CREATE TABLE IF NOT EXISTS edge (
	source_file TEXT NOT NULL,
	source_mtime INTEGER NOT NULL,
	a INTEGER NOT NULL,
	b INTEGER NOT NULL,
	relation INTEGER NOT NULL
)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, &asgraph.GraphError{Op: "OpenCache", Message: err.Error()}
	}
	return &Cache{db: db}, nil
}

func (c *Cache) Close() error { return c.db.Close() }

// Lookup returns the cached edges for sourceFile if its on-disk mtime
// matches the mtime recorded at cache time, and ok is false otherwise (no
// entry, or the file has changed since it was cached).
func (c *Cache) Lookup(sourceFile string) (edges []asgraph.Edge, ok bool, err error) {
	info, statErr := os.Stat(sourceFile)
	if statErr != nil {
		return nil, false, &asgraph.GraphError{Op: "Cache.Lookup", Message: statErr.Error()}
	}
	mtime := info.ModTime().Unix()

	rows, err := c.db.Query(
		`SELECT a, b, relation FROM edge WHERE source_file = ? AND source_mtime = ?`,
		sourceFile, mtime,
	)
	if err != nil {
		return nil, false, &asgraph.GraphError{Op: "Cache.Lookup", Message: err.Error()}
	}
	defer rows.Close()

	for rows.Next() {
		var a, b, rel int64
		if err := rows.Scan(&a, &b, &rel); err != nil {
			return nil, false, &asgraph.GraphError{Op: "Cache.Lookup", Message: err.Error()}
		}
		edges = append(edges, asgraph.Edge{A: asgraph.ASID(a), B: asgraph.ASID(b), Rel: asgraph.Relation(rel)})
	}
	if err := rows.Err(); err != nil {
		return nil, false, &asgraph.GraphError{Op: "Cache.Lookup", Message: err.Error()}
	}
	return edges, len(edges) > 0, nil
}

// Store replaces any cached entry for sourceFile with edges, recording the
// file's current mtime.
func (c *Cache) Store(sourceFile string, edges []asgraph.Edge) error {
	info, err := os.Stat(sourceFile)
	if err != nil {
		return &asgraph.GraphError{Op: "Cache.Store", Message: err.Error()}
	}
	mtime := info.ModTime().Unix()

	tx, err := c.db.Begin()
	if err != nil {
		return &asgraph.GraphError{Op: "Cache.Store", Message: err.Error()}
	}
	if _, err := tx.Exec(`DELETE FROM edge WHERE source_file = ?`, sourceFile); err != nil {
		tx.Rollback()
		return &asgraph.GraphError{Op: "Cache.Store", Message: err.Error()}
	}
	stmt, err := tx.Prepare(`INSERT INTO edge (source_file, source_mtime, a, b, relation) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return &asgraph.GraphError{Op: "Cache.Store", Message: err.Error()}
	}
	defer stmt.Close()
	for _, e := range edges {
		if _, err := stmt.Exec(sourceFile, mtime, int64(e.A), int64(e.B), int64(e.Rel)); err != nil {
			tx.Rollback()
			return &asgraph.GraphError{Op: "Cache.Store", Message: err.Error()}
		}
	}
	if err := tx.Commit(); err != nil {
		return &asgraph.GraphError{Op: "Cache.Store", Message: err.Error()}
	}
	return nil
}

// LoadGraphCached parses sourceFile via ParseASRel, transparently caching
// the result in cache. A cache hit (file unchanged since last Store) skips
// parsing entirely.
func LoadGraphCached(cache *Cache, sourceFile string) (*asgraph.Graph, error) {
	if edges, ok, err := cache.Lookup(sourceFile); err != nil {
		return nil, err
	} else if ok {
		return asgraph.New(edges)
	}

	edges, err := ParseASRel(sourceFile)
	if err != nil {
		return nil, err
	}
	if err := cache.Store(sourceFile, edges); err != nil {
		return nil, err
	}
	return asgraph.New(edges)
}
