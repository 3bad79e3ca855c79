package catalog

import "github.com/snacksprint/storefront/internal/domain/model"

// Seed returns the built-in demo catalog used when no catalog URL is
// configured or the remote fetch fails.
func Seed() []model.Restaurant {
	return []model.Restaurant{
		{ID: 1, Name: "Biryani Mahal", Rating: 4.6, Cuisines: []string{"Biryani", "Mughlai"}, DeliveryTime: "30-40 mins", CostForTwo: 450},
		{ID: 2, Name: "Green Leaf Kitchen", Rating: 4.3, Cuisines: []string{"South Indian", "Healthy"}, DeliveryTime: "25-35 mins", CostForTwo: 300, PureVeg: true},
		{ID: 3, Name: "Tandoor Express", Rating: 4.1, Cuisines: []string{"North Indian", "Tandoor"}, DeliveryTime: "35-45 mins", CostForTwo: 500},
		{ID: 4, Name: "Pizza Junction", Rating: 4.8, Cuisines: []string{"Italian", "Pizza"}, DeliveryTime: "20-30 mins", CostForTwo: 600},
		{ID: 5, Name: "Wok This Way", Rating: 4.0, Cuisines: []string{"Chinese", "Asian"}, DeliveryTime: "30-40 mins", CostForTwo: 400},
		{ID: 6, Name: "Chaat Chowk", Rating: 4.4, Cuisines: []string{"Street Food", "Snacks"}, DeliveryTime: "15-25 mins", CostForTwo: 200, PureVeg: true},
		{ID: 7, Name: "Burger Basti", Rating: 3.9, Cuisines: []string{"Burgers", "Fast Food"}, DeliveryTime: "25-35 mins", CostForTwo: 350},
		{ID: 8, Name: "Dosa Dock", Rating: 4.5, Cuisines: []string{"South Indian"}, DeliveryTime: "20-30 mins", CostForTwo: 250, PureVeg: true},
	}
}
