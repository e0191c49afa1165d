package fixture

import (
	"petsfeed/internal/domain/entity"

	"github.com/shopspring/decimal"
)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

var fixtureStores = []entity.Store{
	{
		ID:           "store-1",
		Name:         "ZooMax",
		Address:      "22 Khreshchatyk St, Kyiv",
		Phone:        "+380443334455",
		Latitude:     50.4501,
		Longitude:    30.5234,
		WorkingHours: "Mon-Sun: 09:00-21:00",
		Rating:       4.8,
	},
	{
		ID:           "store-2",
		Name:         "Pet Shop",
		Address:      "54 Peremohy Ave, Kyiv",
		Phone:        "+380445556677",
		Latitude:     50.4521,
		Longitude:    30.5294,
		WorkingHours: "Mon-Fri: 10:00-20:00, Sat-Sun: 10:00-18:00",
		Rating:       4.5,
	},
	{
		ID:           "store-3",
		Name:         "Kormoland",
		Address:      "121 Saksahanskoho St, Kyiv",
		Phone:        "+380447778899",
		Latitude:     50.4441,
		Longitude:    30.5174,
		WorkingHours: "Mon-Sun: 08:00-22:00",
		Rating:       4.9,
	},
	{
		ID:           "store-4",
		Name:         "Animals & Me",
		Address:      "72 Velyka Vasylkivska St, Kyiv",
		Phone:        "+380442223344",
		Latitude:     50.4381,
		Longitude:    30.5214,
		WorkingHours: "Mon-Sat: 09:00-20:00",
		Rating:       4.3,
	},
}

var fixtureProducts = []entity.Product{
	{
		ID:          "product-1",
		Name:        "Royal Canin Maxi Adult",
		Description: "Complete dry food for adult dogs of large breeds (26-44 kg) aged 15 months to 5 years.",
		Category:    "Dog food",
		ImageURL:    "https://picsum.photos/seed/dog-food-1/400/300",
		Brand:       "Royal Canin",
		Unit:        "15 kg",
		Tags:        []string{"premium", "dry food", "large breeds"},
	},
	{
		ID:          "product-2",
		Name:        "Whiskas with Chicken",
		Description: "Complete food for adult cats with chicken. Contains all essential vitamins and minerals.",
		Category:    "Cat food",
		ImageURL:    "https://picsum.photos/seed/cat-food-1/400/300",
		Brand:       "Whiskas",
		Unit:        "1.9 kg",
		Tags:        []string{"dry food", "chicken", "popular"},
	},
	{
		ID:          "product-3",
		Name:        "Dog Training Ball",
		Description: "Ball for training and playing with your pet. Made of quality rubber, safe for health.",
		Category:    "Toys",
		ImageURL:    "https://picsum.photos/seed/toy-1/400/300",
		Brand:       "Trixie",
		Unit:        "1 pc",
		Tags:        []string{"toys", "dogs", "rubber"},
	},
	{
		ID:          "product-4",
		Name:        "Pro Plan Cat Salmon",
		Description: "Complete premium food for adult cats with salmon. Supports skin and coat health.",
		Category:    "Cat food",
		ImageURL:    "https://picsum.photos/seed/cat-food-2/400/300",
		Brand:       "Pro Plan",
		Unit:        "3 kg",
		Tags:        []string{"premium", "salmon", "dry food"},
	},
	{
		ID:          "product-5",
		Name:        "Pedigree Beef",
		Description: "Complete dry food for adult dogs with beef and vegetables.",
		Category:    "Dog food",
		ImageURL:    "https://picsum.photos/seed/dog-food-2/400/300",
		Brand:       "Pedigree",
		Unit:        "2.4 kg",
		Tags:        []string{"beef", "dry food", "budget"},
	},
	{
		ID:          "product-6",
		Name:        "Cat Scratching Post",
		Description: "High quality scratching post with sisal rope. Helps protect your furniture.",
		Category:    "Accessories",
		ImageURL:    "https://picsum.photos/seed/scratcher-1/400/300",
		Brand:       "PetCraft",
		Unit:        "1 pc",
		Tags:        []string{"accessories", "cats", "scratcher"},
	},
	{
		ID:          "product-7",
		Name:        "Sheba Perfect Portions",
		Description: "Wet cat food in portion pouches. Delicate pate texture.",
		Category:    "Cat food",
		ImageURL:    "https://picsum.photos/seed/cat-food-3/400/300",
		Brand:       "Sheba",
		Unit:        "24 x 85g",
		Tags:        []string{"wet food", "pouches", "premium", "popular"},
	},
	{
		ID:          "product-8",
		Name:        "Collar Soft Dog Collar",
		Description: "Soft collar for medium breed dogs with padded lining.",
		Category:    "Accessories",
		ImageURL:    "https://picsum.photos/seed/collar-1/400/300",
		Brand:       "Collar",
		Unit:        "1 pc",
		Tags:        []string{"accessories", "collars", "dogs"},
	},
}

var fixtureOffers = map[string][]entity.StoreOffer{
	"product-1": {
		{ProductID: "product-1", StoreID: "store-1", StoreName: "ZooMax", Price: price("1299.99"), Availability: entity.AvailabilityInStock, Quantity: 15},
		{ProductID: "product-1", StoreID: "store-2", StoreName: "Pet Shop", Price: price("1349.99"), Availability: entity.AvailabilityLowStock, Quantity: 3},
		{ProductID: "product-1", StoreID: "store-3", StoreName: "Kormoland", Price: price("1249.99"), Availability: entity.AvailabilityInStock, Quantity: 20},
	},
	"product-2": {
		{ProductID: "product-2", StoreID: "store-1", StoreName: "ZooMax", Price: price("189.99"), Availability: entity.AvailabilityInStock, Quantity: 50},
		{ProductID: "product-2", StoreID: "store-2", StoreName: "Pet Shop", Price: price("199.99"), Availability: entity.AvailabilityInStock, Quantity: 30},
		{ProductID: "product-2", StoreID: "store-4", StoreName: "Animals & Me", Price: price("179.99"), Availability: entity.AvailabilityInStock, Quantity: 25},
	},
	"product-3": {
		{ProductID: "product-3", StoreID: "store-1", StoreName: "ZooMax", Price: price("89.99"), Availability: entity.AvailabilityInStock, Quantity: 40},
		{ProductID: "product-3", StoreID: "store-3", StoreName: "Kormoland", Price: price("85.99"), Availability: entity.AvailabilityLowStock, Quantity: 5},
	},
	"product-4": {
		{ProductID: "product-4", StoreID: "store-1", StoreName: "ZooMax", Price: price("599.99"), Availability: entity.AvailabilityInStock, Quantity: 12},
		{ProductID: "product-4", StoreID: "store-2", StoreName: "Pet Shop", Price: price("619.99"), Availability: entity.AvailabilityInStock, Quantity: 8},
		{ProductID: "product-4", StoreID: "store-3", StoreName: "Kormoland", Price: price("589.99"), Availability: entity.AvailabilityInStock, Quantity: 15},
	},
	"product-5": {
		{ProductID: "product-5", StoreID: "store-2", StoreName: "Pet Shop", Price: price("149.99"), Availability: entity.AvailabilityInStock, Quantity: 30},
		{ProductID: "product-5", StoreID: "store-4", StoreName: "Animals & Me", Price: price("145.99"), Availability: entity.AvailabilityInStock, Quantity: 20},
	},
	"product-6": {
		{ProductID: "product-6", StoreID: "store-1", StoreName: "ZooMax", Price: price("349.99"), Availability: entity.AvailabilityInStock, Quantity: 10},
		{ProductID: "product-6", StoreID: "store-3", StoreName: "Kormoland", Price: price("339.99"), Availability: entity.AvailabilityLowStock, Quantity: 2},
	},
	"product-7": {
		{ProductID: "product-7", StoreID: "store-1", StoreName: "ZooMax", Price: price("449.99"), Availability: entity.AvailabilityInStock, Quantity: 25},
		{ProductID: "product-7", StoreID: "store-2", StoreName: "Pet Shop", Price: price("459.99"), Availability: entity.AvailabilityInStock, Quantity: 18},
	},
	"product-8": {
		{ProductID: "product-8", StoreID: "store-1", StoreName: "ZooMax", Price: price("129.99"), Availability: entity.AvailabilityInStock, Quantity: 35},
		{ProductID: "product-8", StoreID: "store-4", StoreName: "Animals & Me", Price: price("119.99"), Availability: entity.AvailabilityInStock, Quantity: 20},
	},
}
