package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mkumar84/Insurance-Dashboard/config"
	"github.com/mkumar84/Insurance-Dashboard/model"
	"github.com/mkumar84/Insurance-Dashboard/service"
)

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Dataset.Seed = 7
	off := false
	cfg.Demo.DelaysEnabled = &off
	return cfg
}

func TestRouterHealthAndHeaders(t *testing.T) {
	cfg := testConfig()
	svc, err := newDashboardService(cfg)
	if err != nil {
		t.Fatalf("newDashboardService: %v", err)
	}
	router := newRouter(cfg, svc, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("Expected X-Request-ID header")
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("POST", "/api/claims/CLM20000/process", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if w.Header().Get("Cache-Control") != "no-cache, no-store, must-revalidate" {
		t.Errorf("Expected API responses to be uncacheable, got %q", w.Header().Get("Cache-Control"))
	}
}

func TestGenerateEntity(t *testing.T) {
	now := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)
	counts := config.Default().Dataset

	out, err := generateEntity(service.NewRand(3), now, "claims", counts, 4, true)
	if err != nil {
		t.Fatalf("generateEntity: %v", err)
	}
	claims, ok := out.([]model.Claim)
	if !ok || len(claims) != 4 {
		t.Fatalf("Expected 4 claims, got %T %v", out, out)
	}

	out, err = generateEntity(service.NewRand(3), now, "all", counts, 0, false)
	if err != nil {
		t.Fatalf("generateEntity all: %v", err)
	}
	if ds := out.(*model.Dataset); len(ds.Sales) != counts.Sales {
		t.Errorf("Expected %d sales, got %d", counts.Sales, len(ds.Sales))
	}

	if _, err := generateEntity(service.NewRand(3), now, "widgets", counts, 0, false); !errors.Is(err, service.ErrInvalidArgument) {
		t.Errorf("Expected ErrInvalidArgument for unknown entity, got %v", err)
	}
	if _, err := generateEntity(service.NewRand(3), now, "sales", counts, -1, true); !errors.Is(err, service.ErrInvalidArgument) {
		t.Errorf("Expected ErrInvalidArgument for negative count, got %v", err)
	}
}

func TestGenerateCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"generate", "--config", "testdata/missing.yaml", "--entity", "eapps", "--count", "2", "--seed", "11"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("generate: %v", err)
	}

	var apps []model.EApplication
	if err := json.Unmarshal(out.Bytes(), &apps); err != nil {
		t.Fatalf("Failed to parse output: %v", err)
	}
	if len(apps) != 2 || apps[0].ApplicationID != "EAPP60000" {
		t.Errorf("Unexpected applications %+v", apps)
	}
}
