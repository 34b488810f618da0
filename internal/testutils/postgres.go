package testutils

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/lib/pq"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpg "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/coachdesk/triage-go/models"
)

// SetupPostgresForIntegration returns a migrated gorm connection for
// integration tests. TEST_DB_DSN points at an external database;
// otherwise a throwaway postgres container is started.
func SetupPostgresForIntegration() (*gorm.DB, func()) {
	if dsn := os.Getenv("TEST_DB_DSN"); dsn != "" {
		return openAndMigrate(dsn, func() {})
	}

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image: "postgres:15",
		Env: map[string]string{
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_USER":     "test",
			"POSTGRES_DB":       "triage",
		},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForLog("database system is ready to accept connections").WithStartupTimeout(30 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		log.Fatal(err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		log.Fatal(err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		log.Fatal(err)
	}

	dsn := fmt.Sprintf("host=%s port=%s user=test password=test dbname=triage sslmode=disable", host, port.Port())

	return openAndMigrate(dsn, func() {
		_ = container.Terminate(ctx)
	})
}

func openAndMigrate(dsn string, terminate func()) (*gorm.DB, func()) {
	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatal(err)
	}

	// The container reports ready slightly before it accepts connections.
	deadline := time.Now().Add(15 * time.Second)
	for {
		if err = sqlDB.Ping(); err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatal(err)
		}
		time.Sleep(250 * time.Millisecond)
	}

	gormDB, err := gorm.Open(gormpg.New(gormpg.Config{Conn: sqlDB}), &gorm.Config{})
	if err != nil {
		log.Fatal(err)
	}
	if err := gormDB.AutoMigrate(&models.TicketRecord{}); err != nil {
		log.Fatal(err)
	}

	return gormDB, func() {
		_ = sqlDB.Close()
		terminate()
	}
}
