package service

import "github.com/sitekit-io/sitekit/internal/pkg/schema"

// ModuleDefinition is a registry entry as written by hand, before storage.
type ModuleDefinition struct {
	Name        string
	Slug        string
	Description string
	Icon        string
	Schema      schema.Schema
}

// BuiltinModules is the catalogue every installation starts with.
func BuiltinModules() []ModuleDefinition {
	return []ModuleDefinition{
		{
			Name:        "Product Catalog",
			Slug:        "products",
			Description: "Manage your product inventory with pricing, SKUs, and stock levels",
			Icon:        "Package",
			Schema: schema.Schema{
				{Name: "name", Type: schema.TypeString, Required: true, Label: "Product Name"},
				{Name: "description", Type: schema.TypeText, Label: "Description"},
				{Name: "price", Type: schema.TypeNumber, Required: true, Label: "Price"},
				{Name: "sku", Type: schema.TypeString, Required: true, Label: "SKU"},
				{Name: "category", Type: schema.TypeString, Label: "Category"},
				{Name: "imageUrl", Type: schema.TypeURL, Label: "Image URL"},
				{Name: "inStock", Type: schema.TypeBoolean, Required: true, Default: true, Label: "In Stock"},
			},
		},
		{
			Name:        "Blog / News",
			Slug:        "blog",
			Description: "Create and manage blog posts and news articles",
			Icon:        "FileText",
			Schema: schema.Schema{
				{Name: "title", Type: schema.TypeString, Required: true, Label: "Title"},
				{Name: "content", Type: schema.TypeText, Required: true, Label: "Content"},
				{Name: "author", Type: schema.TypeString, Required: true, Label: "Author"},
				{Name: "publishedDate", Type: schema.TypeDate, Required: true, Label: "Published Date"},
				{Name: "category", Type: schema.TypeString, Label: "Category"},
				{Name: "tags", Type: schema.TypeArray, Label: "Tags"},
				{Name: "featured", Type: schema.TypeBoolean, Default: false, Label: "Featured"},
			},
		},
		{
			Name:        "Customer Database",
			Slug:        "customers",
			Description: "Store and manage customer information and contacts",
			Icon:        "Users",
			Schema: schema.Schema{
				{Name: "firstName", Type: schema.TypeString, Required: true, Label: "First Name"},
				{Name: "lastName", Type: schema.TypeString, Required: true, Label: "Last Name"},
				{Name: "email", Type: schema.TypeEmail, Required: true, Label: "Email"},
				{Name: "phone", Type: schema.TypeString, Label: "Phone"},
				{Name: "company", Type: schema.TypeString, Label: "Company"},
				{Name: "address", Type: schema.TypeText, Label: "Address"},
				{Name: "notes", Type: schema.TypeText, Label: "Notes"},
			},
		},
		{
			Name:        "Orders / Services",
			Slug:        "orders",
			Description: "Track orders, services, and transactions",
			Icon:        "ShoppingCart",
			Schema: schema.Schema{
				{Name: "orderNumber", Type: schema.TypeString, Required: true, Label: "Order Number"},
				{Name: "customerName", Type: schema.TypeString, Required: true, Label: "Customer Name"},
				{Name: "items", Type: schema.TypeArray, Required: true, Label: "Items"},
				{Name: "totalAmount", Type: schema.TypeNumber, Required: true, Label: "Total Amount"},
				{
					Name:     "status",
					Type:     schema.TypeSelect,
					Required: true,
					Options:  []string{"pending", "processing", "completed", "cancelled"},
					Default:  "pending",
					Label:    "Status",
				},
				{Name: "orderDate", Type: schema.TypeDate, Required: true, Label: "Order Date"},
			},
		},
	}
}
