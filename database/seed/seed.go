// Package seed loads fixture data into a freshly migrated database.
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"ncnews/database"
	"ncnews/internal/http-api/models"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

//go:embed data/development.yaml
var developmentYAML []byte

// Data is one complete fixture set. Articles receive ids in list order.
type Data struct {
	Topics   []models.Topic   `yaml:"topics"`
	Users    []models.User    `yaml:"users"`
	Articles []models.Article `yaml:"articles"`
	Comments []models.Comment `yaml:"comments"`
}

// Development returns the embedded development fixtures.
func Development() (*Data, error) {
	return Parse(developmentYAML)
}

// LoadFile reads fixtures from a YAML file.
func LoadFile(path string) (*Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixtures: %w", err)
	}
	return Parse(raw)
}

func Parse(raw []byte) (*Data, error) {
	var data Data
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse fixtures: %w", err)
	}
	return &data, nil
}

// Run reverts and reapplies the migrations at databaseURL, then inserts data parents first.
func Run(ctx context.Context, db *gorm.DB, databaseURL string, data *Data, logger *zap.Logger) error {
	if err := database.Drop(databaseURL, logger); err != nil {
		return err
	}
	if err := database.Migrate(databaseURL, logger); err != nil {
		return err
	}

	tx := db.WithContext(ctx)
	if err := insert(tx, "topics", data.Topics); err != nil {
		return err
	}
	if err := insert(tx, "users", data.Users); err != nil {
		return err
	}
	if err := insert(tx, "articles", data.Articles); err != nil {
		return err
	}
	if err := insert(tx, "comments", data.Comments); err != nil {
		return err
	}

	logger.Info("database seeded",
		zap.Int("topics", len(data.Topics)),
		zap.Int("users", len(data.Users)),
		zap.Int("articles", len(data.Articles)),
		zap.Int("comments", len(data.Comments)),
	)
	return nil
}

func insert[T any](db *gorm.DB, table string, rows []T) error {
	if len(rows) == 0 {
		return nil
	}
	if err := db.Create(&rows).Error; err != nil {
		return fmt.Errorf("insert %s: %w", table, err)
	}
	return nil
}
