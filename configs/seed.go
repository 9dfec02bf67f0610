package configs

import (
	"log"

	"github.com/adeanumainah/coffe-corner/entity"
	"github.com/adeanumainah/coffe-corner/repository"
)

// SeedMenus writes a starter catalog the first time the store is used.
// A deliberately emptied catalog is left alone.
func SeedMenus(menus *repository.MenuRepository) error {
	seeded, err := menus.Seeded()
	if err != nil {
		return err
	}
	if seeded {
		return nil
	}

	starter := []entity.Menu{
		{ID: 1, Name: "Espresso", Category: "Coffee", Price: 18000, Status: entity.MenuAvailable},
		{ID: 2, Name: "Cappuccino", Category: "Coffee", Price: 25000, Status: entity.MenuAvailable},
		{ID: 3, Name: "Caffe Latte", Category: "Coffee", Price: 27000, Status: entity.MenuAvailable},
		{ID: 4, Name: "Matcha Latte", Category: "Non-Coffee", Price: 28000, Status: entity.MenuAvailable},
		{ID: 5, Name: "Chocolate", Category: "Non-Coffee", Price: 24000, Status: entity.MenuAvailable},
		{ID: 6, Name: "Croissant", Category: "Pastry", Price: 22000, Status: entity.MenuAvailable},
		{ID: 7, Name: "Banana Bread", Category: "Pastry", Price: 20000, Status: entity.MenuAvailable},
		{ID: 8, Name: "Cheesecake", Category: "Dessert", Price: 35000, Status: entity.MenuAvailable},
	}
	if err := menus.SaveAll(starter); err != nil {
		return err
	}
	log.Printf("seeded %d starter menus", len(starter))
	return nil
}
