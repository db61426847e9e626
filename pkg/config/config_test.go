package config

import "testing"

func TestLoadAutoMigrate(t *testing.T) {
	t.Setenv("GOOGLE_CLIENT_ID", "test-client")
	t.Setenv("GOOGLE_CLIENT_SECRET", "test-secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Database.AutoMigrate {
		t.Error("AutoMigrate should default to false")
	}

	t.Setenv("DB_AUTO_MIGRATE", "true")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Database.AutoMigrate {
		t.Error("AutoMigrate should be true when DB_AUTO_MIGRATE=true")
	}
}

func TestGetDatabaseDSN(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{
		Host:     "db",
		Port:     "5433",
		User:     "aura",
		Password: "secret",
		Name:     "aura",
		SSLMode:  "disable",
	}}

	want := "host=db port=5433 user=aura password=secret dbname=aura sslmode=disable"
	if got := cfg.GetDatabaseDSN(); got != want {
		t.Errorf("GetDatabaseDSN() = %q, want %q", got, want)
	}
}
