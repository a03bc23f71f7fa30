package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestOpen_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "again.db")
	for i := 0; i < 2; i++ {
		s, err := Open(path)
		if err != nil {
			t.Fatalf("open #%d: %v", i+1, err)
		}
		s.Close()
	}
}

func TestVerdictAppendAndRecent(t *testing.T) {
	s := openTestStore(t)
	repo := s.VerdictRepo()
	ctx := context.Background()

	got, err := repo.Recent(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("Recent on empty store: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no verdicts, got %d", len(got))
	}

	verdicts := []*Verdict{
		{Interaction: "RatioExpressionInput", Rule: "IsEquivalent", Answer: `{"type":"RATIO_EXPRESSION","value":[2,4]}`, Inputs: `{}`, Matched: true},
		{Interaction: "NumericInput", Rule: "Equals", Answer: `{"type":"REAL","value":1}`, Inputs: `{}`},
		{Interaction: "RatioExpressionInput", Rule: "Equals", Answer: `{"type":"REAL","value":1}`, Inputs: `{}`, Error: "Expected answer to be of type RATIO_EXPRESSION not REAL"},
	}
	for _, v := range verdicts {
		if err := repo.Append(ctx, v); err != nil {
			t.Fatalf("Append: %v", err)
		}
		if v.ID == "" {
			t.Error("expected ID to be assigned")
		}
		if v.CreatedAt.IsZero() {
			t.Error("expected CreatedAt to be assigned")
		}
	}

	all, err := repo.Recent(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("got %d verdicts, want 3", len(all))
	}
	if all[0].ID != verdicts[2].ID {
		t.Errorf("expected newest first, got %q", all[0].Rule)
	}
	if all[0].Error == "" || all[0].Matched {
		t.Errorf("expected error verdict, got %+v", all[0])
	}
	if !all[2].Matched {
		t.Errorf("expected matched verdict, got %+v", all[2])
	}
	if d := all[2].CreatedAt.Sub(verdicts[0].CreatedAt); d > time.Millisecond || d < -time.Millisecond {
		t.Errorf("CreatedAt round-trip drifted by %s", d)
	}

	ratio, err := repo.Recent(ctx, QueryOpts{Interaction: "RatioExpressionInput", Limit: 1})
	if err != nil {
		t.Fatalf("Recent filtered: %v", err)
	}
	if len(ratio) != 1 || ratio[0].Rule != "Equals" {
		t.Errorf("filtered query = %+v, want the latest RatioExpressionInput verdict", ratio)
	}

	byRule, err := repo.Recent(ctx, QueryOpts{Rule: "IsEquivalent"})
	if err != nil {
		t.Fatalf("Recent by rule: %v", err)
	}
	if len(byRule) != 1 || byRule[0].ID != verdicts[0].ID {
		t.Errorf("rule query = %+v", byRule)
	}
}
