// Package catalog loads the default foods seeded for new users.
package catalog

import (
	_ "embed"
	"log/slog"
	"os"
	"strings"
	"time"

	"biofit/config"
	"biofit/internal/domain/entity"
	"biofit/internal/domain/service"
	"biofit/internal/errors"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
)

//go:embed default_foods.yaml
var embeddedCatalog []byte

type catalogFile struct {
	Date  string     `mapstructure:"date"`
	Foods []itemFile `mapstructure:"foods"`
}

type itemFile struct {
	Name            string  `mapstructure:"name"`
	Date            string  `mapstructure:"date"`
	Session         string  `mapstructure:"session"`
	Image           string  `mapstructure:"image"`
	ServingSize     float64 `mapstructure:"servingSize"`
	ServingSizeUnit string  `mapstructure:"servingSizeUnit"`
	Mass            float64 `mapstructure:"mass"`
	Calories        float64 `mapstructure:"calories"`
	Protein         float64 `mapstructure:"protein"`
	Carbohydrate    float64 `mapstructure:"carbohydrate"`
	Fat             float64 `mapstructure:"fat"`
	Sodium          float64 `mapstructure:"sodium"`
}

// staticCatalog implements service.FoodCatalog with an immutable list parsed once at startup.
type staticCatalog struct {
	items []entity.CatalogItem
}

// New loads the catalog from cfg.Catalog.Path, or the embedded catalog when no path is set.
func New(cfg *config.Config, logger *slog.Logger) (service.FoodCatalog, error) {
	source := "embedded"
	data := embeddedCatalog

	if cfg.Catalog != nil && strings.TrimSpace(cfg.Catalog.Path) != "" {
		source = cfg.Catalog.Path

		fileData, err := os.ReadFile(cfg.Catalog.Path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read catalog file %q", cfg.Catalog.Path)
		}
		data = fileData
	}

	items, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load %s catalog", source)
	}

	logger.Info("Default food catalog loaded", slog.String("source", source), slog.Int("items", len(items)))

	return &staticCatalog{items: items}, nil
}

// DefaultFoods returns a copy of the catalog in file order.
func (c *staticCatalog) DefaultFoods() []entity.CatalogItem {
	out := make([]entity.CatalogItem, len(c.items))
	copy(out, c.items)

	return out
}

// Parse decodes a YAML catalog. Items without a date inherit the top-level date.
func Parse(data []byte) ([]entity.CatalogItem, error) {
	raw, err := yaml.Parser().Unmarshal(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse catalog yaml")
	}

	var file catalogFile
	if err := mapstructure.Decode(raw, &file); err != nil {
		return nil, errors.Wrap(err, "failed to decode catalog")
	}

	items := make([]entity.CatalogItem, 0, len(file.Foods))
	for i, f := range file.Foods {
		item, err := f.toCatalogItem(file.Date)
		if err != nil {
			return nil, errors.Wrapf(err, "catalog item %d", i)
		}
		items = append(items, item)
	}

	return items, nil
}

func (f itemFile) toCatalogItem(defaultDate string) (entity.CatalogItem, error) {
	if strings.TrimSpace(f.Name) == "" {
		return entity.CatalogItem{}, errors.New("name is required")
	}

	session := entity.Session(f.Session)
	if !session.IsValid() {
		return entity.CatalogItem{}, errors.Errorf("%q has unknown session %q", f.Name, f.Session)
	}

	date := f.Date
	if date == "" {
		date = defaultDate
	}
	if _, err := time.Parse(entity.DateLayout, date); err != nil {
		return entity.CatalogItem{}, errors.Wrapf(err, "%q has invalid date", f.Name)
	}

	return entity.CatalogItem{
		Name:            f.Name,
		Date:            date,
		Session:         session,
		ImagePath:       f.Image,
		ServingSize:     f.ServingSize,
		ServingSizeUnit: f.ServingSizeUnit,
		Mass:            f.Mass,
		Nutrients: entity.Nutrients{
			Calories:     f.Calories,
			Protein:      f.Protein,
			Carbohydrate: f.Carbohydrate,
			Fat:          f.Fat,
			Sodium:       f.Sodium,
		},
	}, nil
}
