package domain

import (
	"strconv"
	"strings"
	"time"
)

// Heat is the spice intensity category shown on the storefront.
type Heat string

const (
	HeatMild   Heat = "mild"
	HeatMedium Heat = "medium"
	HeatHot    Heat = "hot"
	HeatFiery  Heat = "fiery"
)

func (h Heat) Valid() bool {
	switch h {
	case HeatMild, HeatMedium, HeatHot, HeatFiery:
		return true
	}
	return false
}

type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	UsageNotes  string `json:"usage_notes,omitempty"`
	Price       int64  `json:"price"`
	Unit        string `json:"unit"`
	Heat        Heat   `json:"heat"`
	Origin      string `json:"origin,omitempty"`
	IsNew       bool   `json:"is_new,omitempty"`
	Signature   bool   `json:"signature,omitempty"`
	Image       string `json:"image,omitempty"`
}

// ProductDraft is the administrative entry form for a new product.
// Price is accepted as entered and rounded on commit.
type ProductDraft struct {
	Name        string
	Description string
	UsageNotes  string
	Price       float64
	Unit        string
	Heat        Heat
	Origin      string
	IsNew       bool
	Signature   bool
	Image       string
}

// SlugifyName lowers the name and collapses every run of
// non-alphanumeric characters into a single hyphen.
// Returns "" when nothing alphanumeric remains.
func SlugifyName(name string) string {
	var b strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(name) {
		alnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !alnum {
			pendingHyphen = b.Len() > 0
			continue
		}
		if pendingHyphen {
			b.WriteByte('-')
			pendingHyphen = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// TimeSuffix derives a compact base36 token from wall-clock time,
// used for identifier uniqueness.
func TimeSuffix(t time.Time) string {
	return strconv.FormatInt(t.UnixMilli(), 36)
}

// Catalog is the ordered product collection.
// Insertion order is the display order.
type Catalog struct {
	products []Product
}

func NewCatalog(products []Product) *Catalog {
	return &Catalog{products: products}
}

func (c *Catalog) Append(p Product) {
	c.products = append(c.products, p)
}

func (c *Catalog) Product(id string) (Product, bool) {
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

func (c *Catalog) HasID(id string) bool {
	_, ok := c.Product(id)
	return ok
}

func (c *Catalog) Len() int {
	return len(c.products)
}

// Products returns a copy, callers never see internal state.
func (c *Catalog) Products() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}
