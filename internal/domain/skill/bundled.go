package skill

// Bundled returns the static catalog served when the upstream skills endpoint
// is unreachable and the fallback policy allows it. Each call returns a fresh
// slice, so callers are free to modify it.
func Bundled() []Record {
	return []Record{
		{
			ID:          NumberID("1"),
			Title:       "JavaScript Programming",
			Description: "Learn modern JavaScript including ES6+, async/await, and DOM manipulation. Perfect for beginners looking to start web development.",
			Category:    "technology",
			Level:       "beginner",
			Duration:    "4-6 weeks",
			Teacher:     Teacher{Name: "Alex Johnson", Rating: 4.9, CompletedTrades: 23, Bio: "Full-stack developer with 8 years experience"},
		},
		{
			ID:          NumberID("2"),
			Title:       "Spanish Conversation",
			Description: "Practice conversational Spanish with a native speaker. Focus on real-world scenarios and cultural context.",
			Category:    "languages",
			Level:       "intermediate",
			Duration:    "8-10 weeks",
			Teacher:     Teacher{Name: "Maria Rodriguez", Rating: 4.8, CompletedTrades: 34, Bio: "Native Spanish speaker and certified language teacher"},
		},
		{
			ID:          NumberID("3"),
			Title:       "Digital Photography",
			Description: "Master the fundamentals of digital photography including composition, lighting, and post-processing techniques.",
			Category:    "arts",
			Level:       "beginner",
			Duration:    "6-8 weeks",
			Teacher:     Teacher{Name: "David Chen", Rating: 4.7, CompletedTrades: 18, Bio: "Professional photographer specializing in portraits"},
		},
		{
			ID:          NumberID("4"),
			Title:       "Guitar Basics",
			Description: "Learn to play guitar from scratch. Covers basic chords, strumming patterns, and simple songs.",
			Category:    "music",
			Level:       "beginner",
			Duration:    "3-4 weeks",
			Teacher:     Teacher{Name: "Sarah Williams", Rating: 4.9, CompletedTrades: 41, Bio: "Music teacher with 12 years of guitar experience"},
		},
		{
			ID:          NumberID("5"),
			Title:       "Python Data Analysis",
			Description: "Dive into data analysis using Python, pandas, and matplotlib. Learn to clean, analyze, and visualize data effectively.",
			Category:    "technology",
			Level:       "intermediate",
			Duration:    "6-8 weeks",
			Teacher:     Teacher{Name: "Dr. Emily Foster", Rating: 4.8, CompletedTrades: 15, Bio: "Data scientist with PhD in Computer Science"},
		},
		{
			ID:          NumberID("6"),
			Title:       "Italian Cooking",
			Description: "Learn authentic Italian recipes and cooking techniques. From pasta to risotto, master the classics.",
			Category:    "cooking",
			Level:       "beginner",
			Duration:    "5-6 weeks",
			Teacher:     Teacher{Name: "Giuseppe Romano", Rating: 4.9, CompletedTrades: 28, Bio: "Professional chef from Rome with 20 years experience"},
		},
		{
			ID:          NumberID("7"),
			Title:       "Watercolor Painting",
			Description: "Explore the beautiful world of watercolor painting. Learn basic techniques, color theory, and composition.",
			Category:    "arts",
			Level:       "beginner",
			Duration:    "4-5 weeks",
			Teacher:     Teacher{Name: "Jennifer Park", Rating: 4.7, CompletedTrades: 22, Bio: "Fine arts graduate specializing in watercolor techniques"},
		},
		{
			ID:          NumberID("8"),
			Title:       "Business Strategy",
			Description: "Understand strategic planning, market analysis, and competitive positioning for growing businesses.",
			Category:    "business",
			Level:       "advanced",
			Duration:    "8-10 weeks",
			Teacher:     Teacher{Name: "Michael Thompson", Rating: 4.8, CompletedTrades: 12, Bio: "MBA and former Fortune 500 strategy consultant"},
		},
		{
			ID:          NumberID("9"),
			Title:       "French Language Basics",
			Description: "Start your French journey with essential vocabulary, pronunciation, and basic grammar structures.",
			Category:    "languages",
			Level:       "beginner",
			Duration:    "6-8 weeks",
			Teacher:     Teacher{Name: "Claire Dubois", Rating: 4.9, CompletedTrades: 31, Bio: "Native French speaker and certified language instructor"},
		},
		{
			ID:          NumberID("10"),
			Title:       "Yoga for Beginners",
			Description: "Learn fundamental yoga poses, breathing techniques, and mindfulness practices for physical and mental wellness.",
			Category:    "sports",
			Level:       "beginner",
			Duration:    "4-6 weeks",
			Teacher:     Teacher{Name: "Priya Sharma", Rating: 4.8, CompletedTrades: 37, Bio: "Certified yoga instructor with 10 years of teaching experience"},
		},
		{
			ID:          NumberID("11"),
			Title:       "Advanced React Development",
			Description: "Deep dive into React hooks, context API, performance optimization, and modern development patterns.",
			Category:    "technology",
			Level:       "advanced",
			Duration:    "8-12 weeks",
			Teacher:     Teacher{Name: "Kevin Wu", Rating: 4.9, CompletedTrades: 19, Bio: "Senior React developer at tech startup"},
		},
		{
			ID:          NumberID("12"),
			Title:       "Piano Fundamentals",
			Description: "Learn to read music, understand chord progressions, and play beautiful melodies on the piano.",
			Category:    "music",
			Level:       "beginner",
			Duration:    "6-8 weeks",
			Teacher:     Teacher{Name: "Anna Kozlov", Rating: 4.8, CompletedTrades: 26, Bio: "Classically trained pianist and music theory expert"},
		},
	}
}
