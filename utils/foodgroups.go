package utils

import "strings"

// The six food groups the variety score is measured against.
var foodGroupOrder = []string{"fruits", "vegetables", "proteins", "grains", "dairy", "healthy fats"}

// foodGroupKeywords maps each group to lowercase keywords matched as
// substrings against an entry's item text and notes.
var foodGroupKeywords = map[string][]string{
	"fruits": {
		"apple", "banana", "orange", "berry", "berries", "grape", "melon",
		"peach", "pear", "mango", "pineapple", "fruit",
	},
	"vegetables": {
		"broccoli", "spinach", "carrot", "tomato", "lettuce", "salad",
		"pepper", "cucumber", "onion", "cabbage", "kale", "vegetable", "veggie",
	},
	"proteins": {
		"chicken", "beef", "pork", "fish", "salmon", "tuna", "egg", "tofu",
		"beans", "lentil", "turkey", "shrimp", "protein",
	},
	"grains": {
		"bread", "rice", "pasta", "oat", "oatmeal", "cereal", "quinoa",
		"tortilla", "noodle", "cracker", "toast", "grain",
	},
	"dairy": {
		"milk", "cheese", "yogurt", "butter", "cream", "dairy",
	},
	"healthy fats": {
		"avocado", "olive oil", "nuts", "almond", "walnut", "peanut",
		"seeds", "flax", "chia",
	},
}

// FoodGroupNames returns the six groups in display order.
func FoodGroupNames() []string {
	out := make([]string, len(foodGroupOrder))
	copy(out, foodGroupOrder)
	return out
}

// FoodGroupsIn reports which food groups the given free text represents.
// Matching is case-insensitive substring search.
func FoodGroupsIn(text string) map[string]bool {
	lower := strings.ToLower(text)
	found := make(map[string]bool)
	for group, keywords := range foodGroupKeywords {
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				found[group] = true
				break
			}
		}
	}
	return found
}
