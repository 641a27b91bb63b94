package main

import (
	"bufio"
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"aggregator/internal/config"
	"aggregator/internal/db"
)

const downMarker = "-- +migrate Down"

func main() {
	dir := flag.String("dir", "migrations", "directory holding NNN_name.sql files")
	down := flag.Bool("down", false, "roll back the most recent migration")
	flag.Parse()

	cfg := config.Load()
	database, err := db.Connect(context.Background(), cfg.DatabaseURL, db.DefaultPoolOptions())
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	defer database.Close()

	if _, err := database.Exec(`CREATE TABLE IF NOT EXISTS schema_migrations (filename text primary key, applied_at timestamptz default now())`); err != nil {
		log.Fatalf("failed to ensure schema_migrations: %v", err)
	}

	files, err := filepath.Glob(filepath.Join(*dir, "*.sql"))
	if err != nil {
		log.Fatalf("failed to read migrations: %v", err)
	}
	sort.Strings(files)

	if *down {
		var last string
		err := database.Get(&last, `SELECT filename FROM schema_migrations ORDER BY filename DESC LIMIT 1`)
		if err == sql.ErrNoRows {
			fmt.Println("nothing to roll back")
			return
		}
		if err != nil {
			log.Fatalf("failed to read migration state: %v", err)
		}
		if err := applyFile(database, filepath.Join(*dir, last), false); err != nil {
			log.Fatalf("failed to roll back %s: %v", last, err)
		}
		if _, err := database.Exec(`DELETE FROM schema_migrations WHERE filename = $1`, last); err != nil {
			log.Fatalf("failed to record rollback of %s: %v", last, err)
		}
		fmt.Printf("rolled back %s\n", last)
		return
	}

	for _, file := range files {
		filename := filepath.Base(file)
		var exists bool
		if err := database.Get(&exists, `SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE filename = $1)`, filename); err != nil {
			log.Fatalf("failed to read migration state: %v", err)
		}
		if exists {
			continue
		}
		if err := applyFile(database, file, true); err != nil {
			log.Fatalf("failed to apply %s: %v", filename, err)
		}
		if _, err := database.Exec(`INSERT INTO schema_migrations (filename) VALUES ($1)`, filename); err != nil {
			log.Fatalf("failed to record migration %s: %v", filename, err)
		}
		fmt.Printf("applied %s\n", filename)
	}
}

// applyFile runs the up section of a migration, or the down section when up is false.
func applyFile(db execer, path string, up bool) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	upSQL, downSQL, _ := strings.Cut(string(content), downMarker)
	section := upSQL
	if !up {
		section = downSQL
	}
	for _, stmt := range splitSQL(section) {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

func splitSQL(sqlText string) []string {
	var statements []string
	var current strings.Builder
	scanner := bufio.NewScanner(strings.NewReader(sqlText))
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(strings.TrimSpace(line), "--") {
			continue
		}
		current.WriteString(line)
		current.WriteRune('\n')
		if strings.HasSuffix(strings.TrimSpace(line), ";") {
			statements = append(statements, current.String())
			current.Reset()
		}
	}
	if strings.TrimSpace(current.String()) != "" {
		statements = append(statements, current.String())
	}
	return statements
}

type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}
