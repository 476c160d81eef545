package storage

import (
	"bytes"
	"context"
	"github.com/ribgsilva/notebook/persistence/v1/kv"
	"testing"
)

func TestDump(t *testing.T) {
	ctx := context.Background()
	m := kv.NewMemory()

	var out bytes.Buffer
	if err := Dump(ctx, m, "notebook-notes", &out); err != nil {
		t.Fatalf("Test Dump: Should dump a missing notebook: %v", err)
	}
	if out.String() != "[]\n" {
		t.Fatalf("Test Dump: Should write [] for a missing notebook: %q", out.String())
	}

	_ = m.Set(ctx, "notebook-notes", `[{"id":1}]`)
	out.Reset()
	if err := Dump(ctx, m, "notebook-notes", &out); err != nil {
		t.Fatalf("Test Dump: Should dump the notebook: %v", err)
	}
	if out.String() != "[{\"id\":1}]\n" {
		t.Fatalf("Test Dump: Should write the stored value: %q", out.String())
	}
}
