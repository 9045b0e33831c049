package seller

import (
	"time"

	"github.com/shopspring/decimal"
)

// SizeQuantity is one entry of a per-size stock breakdown. Only Fashion
// products carry these; every other category uses Product.Quantity.
type SizeQuantity struct {
	Size     string `json:"size"`
	Quantity int64  `json:"quantity"`
}

// Product is a catalog entry as returned by the backend. The store holds a
// transient copy; the backend owns the record.
type Product struct {
	ID          string          `json:"_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	SubCategory string          `json:"subCategory"`
	Quantity    int64           `json:"quantity"`
	Sizes       []SizeQuantity  `json:"size,omitempty"`
	BestSeller  bool            `json:"bestSeller"`
	Images      []string        `json:"image"`
	Date        int64           `json:"date"`
}

// CreatedAt converts the backend millisecond timestamp.
func (p Product) CreatedAt() time.Time {
	return time.UnixMilli(p.Date)
}

// TotalQuantity sums per-size stock for sized products and falls back to
// the flat quantity otherwise.
func (p Product) TotalQuantity() int64 {
	if len(p.Sizes) == 0 {
		return p.Quantity
	}
	var total int64
	for _, s := range p.Sizes {
		total += s.Quantity
	}
	return total
}

// CategoryFashion is the only category with per-size stock.
const CategoryFashion = "Fashion"

// Category is a catalog category with its allowed subcategories.
type Category struct {
	Name          string
	Subcategories []string
}

// Categories is the catalog taxonomy offered when creating a product.
var Categories = []Category{
	{Name: CategoryFashion, Subcategories: []string{"Men", "Women", "Kids", "Accessories"}},
	{Name: "Books", Subcategories: []string{"Fiction", "Non-Fiction", "Educational", "Comics"}},
	{Name: "Beauty & Personal Care", Subcategories: []string{"Skincare", "Haircare", "Makeup", "Fragrances"}},
	{Name: "Toys", Subcategories: []string{"Soft Toys", "Learning Toys", "Outdoor Toys", "Action Figures"}},
	{Name: "Sports", Subcategories: []string{"Fitness Equipment", "Athletic Wear", "Sports Accessories", "Outdoor Gear"}},
	{Name: "Grocery", Subcategories: []string{"Fruits & Vegetables", "Dairy Products", "Snacks", "Beverages"}},
	{Name: "Electronics", Subcategories: []string{"Smartphones & Accessories", "Computers & Laptops", "Gaming Devices", "Home Automation", "Audio & Entertainment", "Wearables & Smart Gadgets"}},
	{Name: "Home & Kitchen", Subcategories: []string{"Kitchen Appliances", "Cleaning Devices", "Cooking Essentials", "Furniture & Décor", "Storage & Organization", "Lighting & Home Improvement"}},
}

// LookupCategory returns the category definition by name.
func LookupCategory(name string) (Category, bool) {
	for _, c := range Categories {
		if c.Name == name {
			return c, true
		}
	}
	return Category{}, false
}

// MaxProductImages is the number of image slots accepted by the backend's
// product creation endpoint (image1..image4).
const MaxProductImages = 4

// ImageFile is an image attached to a multipart write (product photos,
// registration profile photo).
type ImageFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// NewProduct is the input for creating a catalog entry. Fashion products
// must carry Sizes; all other categories use Quantity.
type NewProduct struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Category    string
	SubCategory string
	Quantity    int64
	Sizes       []SizeQuantity
	BestSeller  bool
	Images      []ImageFile
}
