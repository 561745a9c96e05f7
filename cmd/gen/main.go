package main

import (
	"storefront/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.AddressModel{},
		model.BrandModel{},
		model.CategoryModel{},
		model.ProductModel{},
		model.ShoppingBagModel{},
		model.ShoppingBagItemModel{},
		model.OrderModel{},
		model.OrderItemModel{},
		model.ReviewModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
