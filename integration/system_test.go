//go:build integration
// +build integration

package integration

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"testing"
	"time"

	"MiniCatalog/internal/catalog"
)

// Runs against a live `catalog serve`. E2E_TOKEN must hold an admin token,
// e.g. from `catalog token`.
var (
	baseURL = getenv("E2E_BASE_URL", "http://localhost:8082")
	token   = os.Getenv("E2E_TOKEN")
)

func TestSystem_E2E_Catalog(t *testing.T) {
	if token == "" {
		t.Skip("E2E_TOKEN not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	waitReady(t, ctx, baseURL+"/readyz")

	c := catalog.NewClient(baseURL, token)
	name := fmt.Sprintf("e2e_%d_%d", time.Now().Unix(), rand.Intn(100000))

	before, err := c.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	first, err := c.Add(ctx, name, 9.99)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	second, err := c.Add(ctx, name, 1)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if second.ID <= first.ID {
		t.Fatalf("ids not increasing: %d then %d", first.ID, second.ID)
	}

	found, err := c.FindByName(ctx, name)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if found.ID != first.ID {
		t.Fatalf("found id=%d want=%d", found.ID, first.ID)
	}

	after, err := c.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(after) != len(before)+2 {
		t.Fatalf("len=%d want=%d", len(after), len(before)+2)
	}

	for _, id := range []uint64{first.ID, second.ID} {
		if ok, err := c.Remove(ctx, id); err != nil || !ok {
			t.Fatalf("remove %d ok=%v err=%v", id, ok, err)
		}
	}
}

func waitReady(t *testing.T, ctx context.Context, url string) {
	t.Helper()
	client := &http.Client{Timeout: 2 * time.Second}

	deadline := time.Now().Add(30 * time.Second)
	for time.Now().Before(deadline) {
		req, _ := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		resp, err := client.Do(req)
		if err == nil && resp != nil && resp.StatusCode == http.StatusOK {
			_ = resp.Body.Close()
			return
		}
		if resp != nil {
			_ = resp.Body.Close()
		}
		time.Sleep(500 * time.Millisecond)
	}
	t.Fatalf("service not ready: %s", url)
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
