package taxonomy

// DefaultCategories are the categories of the website idea generator.
// Together they cover every topic the generator draws from.
var DefaultCategories = []Category{
	{
		Name:        "Education",
		Icon:        "GraduationCap",
		Color:       "bg-blue-500",
		HoverColor:  "hover:bg-blue-600",
		Description: "Learning platforms, courses, and skill development",
		Topics:      []string{"education", "books", "productivity", "career", "freelancing"},
		Examples:    []string{"Online Course Platform", "Digital Library", "Career Coaching"},
		Popularity:  95,
		Trending:    true,
	},
	{
		Name:        "Health & Wellness",
		Icon:        "Heart",
		Color:       "bg-red-500",
		HoverColor:  "hover:bg-red-600",
		Description: "Fitness, mental health, and wellness solutions",
		Topics:      []string{"health", "fitness", "meditation", "beauty"},
		Examples:    []string{"Workout Tracker", "Meditation App", "Wellness Community"},
		Popularity:  88,
		Trending:    true,
	},
	{
		Name:        "Finance",
		Icon:        "DollarSign",
		Color:       "bg-green-500",
		HoverColor:  "hover:bg-green-600",
		Description: "Financial services, investment, and money management",
		Topics:      []string{"finance", "cryptocurrency", "real estate"},
		Examples:    []string{"Budget Planner", "Crypto Portfolio", "Investment Platform"},
		Popularity:  92,
		Trending:    true,
	},
	{
		Name:        "Entertainment",
		Icon:        "Gamepad2",
		Color:       "bg-purple-500",
		HoverColor:  "hover:bg-purple-600",
		Description: "Games, media, and entertainment platforms",
		Topics:      []string{"entertainment", "gaming", "music", "art"},
		Examples:    []string{"Gaming Community", "Music Streaming", "Art Marketplace"},
		Popularity:  85,
	},
	{
		Name:        "Social Impact",
		Icon:        "Globe",
		Color:       "bg-teal-500",
		HoverColor:  "hover:bg-teal-600",
		Description: "Community building and social good initiatives",
		Topics:      []string{"sustainability", "parenting", "dating", "pets"},
		Examples:    []string{"Eco-Friendly Marketplace", "Parent Support Network", "Pet Care"},
		Popularity:  78,
		Trending:    true,
	},
	{
		Name:        "Travel",
		Icon:        "MapPin",
		Color:       "bg-orange-500",
		HoverColor:  "hover:bg-orange-600",
		Description: "Travel planning, booking, and experience sharing",
		Topics:      []string{"travel"},
		Examples:    []string{"Trip Planner", "Travel Blog", "Local Experiences"},
		Popularity:  82,
	},
	{
		Name:        "Food",
		Icon:        "UtensilsCrossed",
		Color:       "bg-yellow-500",
		HoverColor:  "hover:bg-yellow-600",
		Description: "Culinary experiences, recipes, and food services",
		Topics:      []string{"food", "cooking", "recipes"},
		Examples:    []string{"Recipe Sharing", "Meal Planning", "Restaurant Reviews"},
		Popularity:  90,
		Trending:    true,
	},
	{
		Name:        "Technology",
		Icon:        "Laptop",
		Color:       "bg-indigo-500",
		HoverColor:  "hover:bg-indigo-600",
		Description: "Tech solutions, tools, and digital innovation",
		Topics:      []string{"technology", "photography"},
		Examples:    []string{"SaaS Platform", "Photo Editor", "Dev Tools"},
		Popularity:  96,
		Trending:    true,
	},
	{
		Name:        "Local Services",
		Icon:        "Users",
		Color:       "bg-pink-500",
		HoverColor:  "hover:bg-pink-600",
		Description: "Community services and local business solutions",
		Topics:      []string{"home improvement", "gardening", "sports", "fashion"},
		Examples:    []string{"Home Services", "Local Sports League", "Fashion Marketplace"},
		Popularity:  75,
	},
}

// GeneratorTopics is the topic list the idea generator picks from.
var GeneratorTopics = []string{
	"fitness", "education", "food", "travel", "technology", "health", "finance", "entertainment",
	"fashion", "beauty", "pets", "home improvement", "gardening", "sports", "music", "art",
	"books", "productivity", "meditation", "sustainability", "gaming", "parenting", "dating",
	"career", "freelancing", "real estate", "cryptocurrency", "photography", "cooking", "recipes",
}

var defaultRegistry = MustNew(DefaultCategories)

// Default returns the process-wide registry built from DefaultCategories.
func Default() *Registry {
	return defaultRegistry
}
