package wordlist

// Fruits returns the small demonstration list the service first shipped with
// (99 words, so it can address at most 970 299 cells). It is only suitable
// for coarse grids and tests.
func Fruits() []string {
	return []string{
		"apple", "banana", "cherry", "date", "elderberry", "fig", "grape", "honeydew",
		"kiwi", "lemon", "mango", "nectarine", "orange", "peach", "quince", "raspberry",
		"strawberry", "tangerine", "ugli", "vanilla", "watermelon", "ximenia", "yam", "zucchini",
		"avocado", "blueberry", "coconut", "dragonfruit", "eggplant", "feijoa", "guava", "huckleberry",
		"jackfruit", "kumquat", "lime", "mulberry", "olive", "papaya", "rambutan", "soursop",
		"tamarind", "ume", "voavanga", "wolfberry", "yuzu", "ziziphus", "apricot", "blackberry",
		"cranberry", "durian", "elderflower", "fennel", "ginger", "hibiscus", "indigo", "jasmine",
		"kale", "lavender", "mint", "nutmeg", "oregano", "parsley", "quinoa", "rosemary",
		"sage", "thyme", "turmeric", "wasabi", "xanthan", "yarrow", "zinc",
		"almond", "basil", "cinnamon", "dill", "eucalyptus", "garlic", "horseradish",
		"iris", "juniper", "kelp", "licorice", "marjoram", "pepper",
		"saffron", "tarragon", "uva", "verbena", "wormwood", "xylophone",
		"yew", "zephyr", "acacia", "birch", "cedar", "dogwood", "elm", "fir", "ginkgo",
	}
}
