package schema

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/proullon/ramsql/driver"
)

func TestCreateDrop(t *testing.T) {
	db, err := sql.Open("ramsql", "TestCreateDrop")
	if err != nil {
		t.Fatalf("Test CreateDrop: Should open the database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := Create(context.Background(), db); err != nil {
		t.Fatalf("Test CreateDrop: Should create the schema: %v", err)
	}
	if _, err := db.Exec("INSERT INTO notebook_kv (k, v) VALUES (?, ?)", "notebook-notes", "[]"); err != nil {
		t.Fatalf("Test CreateDrop: Should be able to insert into the created table: %v", err)
	}
	if err := Drop(context.Background(), db); err != nil {
		t.Fatalf("Test CreateDrop: Should drop the schema: %v", err)
	}
	if _, err := db.Exec("INSERT INTO notebook_kv (k, v) VALUES (?, ?)", "notebook-notes", "[]"); err == nil {
		t.Fatalf("Test CreateDrop: Should not insert into a dropped table")
	}
}
