package store

import "fjacquet/expense-tracker/internal/models"

// DefaultCategoryRules returns the built-in keyword rules for the fixed labels.
func DefaultCategoryRules() []models.CategoryConfig {
	return []models.CategoryConfig{
		{Name: models.CategoryFood, Keywords: []string{
			"food", "lunch", "dinner", "breakfast", "restaurant", "cafe", "coffee", "tea",
			"pizza", "burger", "snacks", "groceries", "grocery", "vegetables", "fruits", "swiggy", "zomato",
		}},
		{Name: models.CategoryTransport, Keywords: []string{
			"taxi", "cab", "uber", "ola", "bus", "train", "metro", "auto", "rickshaw",
			"fuel", "petrol", "diesel", "parking", "flight", "toll",
		}},
		{Name: models.CategoryUtilities, Keywords: []string{
			"electricity", "water", "gas", "internet", "wifi", "broadband", "phone",
			"mobile", "recharge", "bill", "rent",
		}},
		{Name: models.CategoryEntertainment, Keywords: []string{
			"movie", "movies", "cinema", "netflix", "spotify", "concert", "game", "games",
			"party", "streaming", "show", "tickets",
		}},
		{Name: models.CategoryShopping, Keywords: []string{
			"shopping", "clothes", "shirt", "shoes", "amazon", "flipkart", "mall",
			"electronics", "gift", "bought", "purchase",
		}},
		{Name: models.CategoryHealthcare, Keywords: []string{
			"medicine", "medicines", "doctor", "hospital", "pharmacy", "clinic",
			"dentist", "checkup", "health", "tablets",
		}},
		{Name: models.CategoryOthers, Keywords: []string{}},
	}
}
