package models

// AllModels returns models in migration order. Reference columns carry
// no foreign keys; migration must not add them (references are weak).
func AllModels() []interface{} {
	return []interface{}{
		&Category{},
		&Supplier{},
		&Item{},
		&Order{},
		&SupplierItem{},
		&OrderItem{},
	}
}
