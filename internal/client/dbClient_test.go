package client

import (
	"paypal-subscribe/internal/config"
	"paypal-subscribe/internal/model"
	"testing"
)

func TestInitDBSqlite(t *testing.T) {
	db, err := InitDB(config.Database{Driver: "sqlite", URL: ":memory:"})
	if err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	if !db.Migrator().HasTable(&model.Plan{}) {
		t.Fatal("plans table not migrated")
	}
}

func TestInitDBUnknownDriver(t *testing.T) {
	if _, err := InitDB(config.Database{Driver: "oracle", URL: "x"}); err == nil {
		t.Fatal("want error for unknown driver")
	}
}
