package pricelist

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shandysiswandi/pricelist/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/pricelist/internal/pkg/pkguid"
)

type mapConfig map[string]string

func (m mapConfig) GetInt(string) int64         { return 0 }
func (m mapConfig) GetBool(string) bool         { return false }
func (m mapConfig) GetString(key string) string { return m[key] }
func (m mapConfig) Close() error                { return nil }

func (m mapConfig) GetArray(key string) []string {
	if m[key] == "" {
		return nil
	}
	return strings.Split(m[key], ",")
}

func TestModuleLoadsSearchesAndExports(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(t.TempDir(), "snapshot.html")

	data := "Товар;Розница;Вес\nЯблоки;120;2\nГруши;90;1\n"
	if err := os.WriteFile(filepath.Join(dir, "Price_fruit.csv"), []byte(data), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	router := pkgrouter.NewRouter(pkguid.NewUUID())
	var stdout bytes.Buffer

	m, err := New(Dependency{
		Config: mapConfig{
			"prices.dir":       dir,
			"prices.delimiter": ";",
			"export.file":      out,
		},
		Router: router,
		In:     strings.NewReader("ЯБЛОКИ\nexit\n"),
		Out:    &stdout,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	m.Load(context.Background())

	if err := m.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !strings.Contains(stdout.String(), "60") {
		t.Fatalf("expected price per kg 60 in output, got %q", stdout.String())
	}

	html, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read snapshot: %v", err)
	}
	if strings.Index(string(html), "Груши") > strings.Index(string(html), "Яблоки") {
		t.Fatalf("snapshot not ordered by name: %s", html)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/prices/report", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("report status = %d, want 200", rec.Code)
	}
}

func TestModuleRejectsBadReaderConfig(t *testing.T) {
	if _, err := New(Dependency{Config: mapConfig{"prices.encoding": "no-such-charset"}}); err == nil {
		t.Fatal("expected error for unknown encoding")
	}
	if _, err := New(Dependency{Config: mapConfig{"prices.delimiter": ";;"}}); err == nil {
		t.Fatal("expected error for multi-character delimiter")
	}
}

func TestModuleLoadMissingDirKeepsEmptyData(t *testing.T) {
	out := filepath.Join(t.TempDir(), "output.html")
	m, err := New(Dependency{
		Config: mapConfig{"prices.dir": filepath.Join(t.TempDir(), "absent"), "export.file": out},
		In:     strings.NewReader(""),
		Out:    &bytes.Buffer{},
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	m.Load(context.Background())
	if err := m.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Fatalf("expected snapshot file: %v", err)
	}
}
