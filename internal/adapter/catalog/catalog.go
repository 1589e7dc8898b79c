// Package catalog loads the static product dataset for the session.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/niksmo/techmarket/internal/core/domain"
)

//go:embed products.json
var embedded []byte

type (
	product struct {
		ID            int64    `json:"id"`
		Name          string   `json:"name"`
		Description   string   `json:"description"`
		Category      string   `json:"category"`
		Price         int64    `json:"price"`
		DiscountPrice int64    `json:"discount_price,omitempty"`
		InStock       bool     `json:"in_stock"`
		IsNew         bool     `json:"is_new"`
		FastDelivery  bool     `json:"fast_delivery"`
		Popular       bool     `json:"popular"`
		Rating        float64  `json:"rating"`
		Reviews       int      `json:"reviews"`
		Specs         []string `json:"specs"`
	}

	category struct {
		ID   string `json:"id"`
		Icon string `json:"icon"`
	}

	dataset struct {
		Categories []category `json:"categories"`
		Products   []product  `json:"products"`
	}
)

// Load reads the dataset from path, or the embedded default dataset
// when path is empty.
func Load(path string) ([]domain.Product, domain.CategoryIndex, error) {
	const op = "catalog.Load"

	raw := embedded
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", op, err)
		}
		raw = b
	}

	var ds dataset
	if err := json.Unmarshal(raw, &ds); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	return toDomain(ds.Products), categoryIndex(ds.Categories), nil
}

func toDomain(ps []product) []domain.Product {
	domainPs := make([]domain.Product, 0, len(ps))
	for _, p := range ps {
		domainPs = append(domainPs, domain.Product{
			ID:            p.ID,
			Name:          p.Name,
			Description:   p.Description,
			Category:      p.Category,
			Price:         p.Price,
			DiscountPrice: p.DiscountPrice,
			InStock:       p.InStock,
			IsNew:         p.IsNew,
			FastDelivery:  p.FastDelivery,
			Popular:       p.Popular,
			Rating:        p.Rating,
			Reviews:       p.Reviews,
			Specs:         p.Specs,
		})
	}
	return domainPs
}

func categoryIndex(cs []category) domain.CategoryIndex {
	domainCs := make([]domain.Category, 0, len(cs))
	for _, c := range cs {
		domainCs = append(domainCs, domain.Category{ID: c.ID, Icon: c.Icon})
	}
	return domain.NewCategoryIndex(domainCs)
}
