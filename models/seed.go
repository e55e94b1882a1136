package models

// Seed data for the demo deployment. The candidate pool and the default
// notification/confession sets are what a fresh store hydrates from when no
// snapshot exists yet.

// MockInterests is the interest catalogue offered at onboarding.
var MockInterests = []string{
	"Coding", "Gaming", "Anime", "Music", "Art", "Photography",
	"Reading", "Travel", "Fitness", "Coffee", "Startups", "AI",
}

// AvatarPresets are the selectable anonymous avatars. Indices 0-3 lean
// female, 4-7 lean male.
var AvatarPresets = []string{
	"https://api.dicebear.com/9.x/notionists/svg?seed=Lola",
	"https://api.dicebear.com/9.x/notionists/svg?seed=Zoe",
	"https://api.dicebear.com/9.x/notionists/svg?seed=Mila",
	"https://api.dicebear.com/9.x/notionists/svg?seed=Sara",
	"https://api.dicebear.com/9.x/notionists/svg?seed=Leo",
	"https://api.dicebear.com/9.x/notionists/svg?seed=Ryan",
	"https://api.dicebear.com/9.x/notionists/svg?seed=Caleb",
	"https://api.dicebear.com/9.x/notionists/svg?seed=Nathan",
}

// ChhattisgarhColleges is the university list offered at onboarding.
var ChhattisgarhColleges = []string{
	"National Institute of Technology (NIT), Raipur",
	"Indian Institute of Management (IIM), Raipur",
	"Indian Institute of Technology (IIT), Bhilai",
	"International Institute of Information Technology (IIIT), Naya Raipur",
	"Hidayatullah National Law University (HNLU), Raipur",
	"All India Institute of Medical Sciences (AIIMS), Raipur",
	"Pt. Ravishankar Shukla University (PRSU), Raipur",
	"Chhattisgarh Swami Vivekanand Technical University (CSVTU), Bhilai",
	"Guru Ghasidas Vishwavidyalaya (GGU), Bilaspur",
	"Indira Gandhi Krishi Vishwavidyalaya (IGKV), Raipur",
	"Kushabhau Thakre Journalism University (KTUJM), Raipur",
	"Ayush and Health Sciences University of Chhattisgarh, Raipur",
	"OP Jindal University, Raigarh",
	"ITM University, Raipur",
	"MATS University, Raipur",
	"Kalinga University, Raipur",
	"Amity University, Raipur",
	"ICFAI University, Raipur",
	"ISBM University, Gariyaband",
	"Dr. C.V. Raman University, Bilaspur",
	"Shri Shankaracharya Professional University, Bhilai",
	"AAFT University, Raipur",
	"Shri Rawatpura Sarkar University, Raipur",
	"Bhilai Institute of Technology (BIT), Bhilai",
	"Rungta College of Engineering and Technology, Bhilai",
	"Government Engineering College (GEC), Raipur",
	"Government Engineering College (GEC), Bilaspur",
	"Government Engineering College (GEC), Jagdalpur",
	"Pt. J.N.M. Medical College, Raipur",
	"Other",
}

// MockMatches is the static candidate pool served to the match queue.
var MockMatches = []MatchProfile{
	{
		ID:              "m1",
		AnonymousID:     "User#X92A",
		RealName:        "Sarah Chen",
		Gender:          GenderFemale,
		University:      "National Institute of Technology (NIT), Raipur",
		Branch:          "Computer Science",
		Year:            "Junior",
		Interests:       []string{"AI", "Sci-Fi", "Coffee"},
		Bio:             "Looking for a study buddy who loves neural networks.",
		MatchPercentage: 95,
		Distance:        "0.5 miles",
		IsVerified:      true,
		Avatar:          AvatarPresets[0],
	},
	{
		ID:              "m2",
		AnonymousID:     "User#B44Z",
		RealName:        "Marcus Cole",
		Gender:          GenderMale,
		University:      "AAFT University, Raipur",
		Branch:          "Fine Arts",
		Year:            "Senior",
		Interests:       []string{"Photography", "Indie Music", "Travel"},
		Bio:             "I capture moments. Let's find some neon lights.",
		MatchPercentage: 88,
		Distance:        "1.2 miles",
		IsVerified:      true,
		Avatar:          AvatarPresets[4],
	},
	{
		ID:              "m3",
		AnonymousID:     "User#L88Q",
		RealName:        "Alex Rivera",
		Gender:          GenderMale,
		University:      "Indian Institute of Technology (IIT), Bhilai",
		Branch:          "Mechanical Eng",
		Year:            "Sophomore",
		Interests:       []string{"Robotics", "Formula 1", "Gym"},
		Bio:             "Building things that move fast.",
		MatchPercentage: 82,
		Distance:        "Campus Dorm A",
		IsVerified:      true,
		Avatar:          AvatarPresets[5],
	},
	{
		ID:              "m4",
		AnonymousID:     "User#K22P",
		RealName:        "Emily Watson",
		Gender:          GenderFemale,
		University:      "Pt. Ravishankar Shukla University (PRSU), Raipur",
		Branch:          "Psychology",
		Year:            "Freshman",
		Interests:       []string{"Reading", "Meditation", "Jazz"},
		Bio:             "Trying to understand how minds work.",
		MatchPercentage: 75,
		Distance:        "Library",
		IsVerified:      true,
		Avatar:          AvatarPresets[2],
	},
	{
		ID:              "m5",
		AnonymousID:     "User#J77T",
		RealName:        "Jessica Lee",
		Gender:          GenderFemale,
		University:      "AIIMS, Raipur",
		Branch:          "Biology",
		Year:            "Senior",
		Interests:       []string{"Hiking", "Photography", "Sushi"},
		Bio:             "Nature lover and science geek.",
		MatchPercentage: 90,
		Distance:        "2.0 miles",
		IsVerified:      true,
		Avatar:          AvatarPresets[1],
	},
	{
		ID:              "m6",
		AnonymousID:     "User#D99R",
		RealName:        "David Kim",
		Gender:          GenderMale,
		University:      "IIM Raipur",
		Branch:          "Economics",
		Year:            "Junior",
		Interests:       []string{"Finance", "Basketball", "Stocks"},
		Bio:             "Stonks only go up. Lets hoop.",
		MatchPercentage: 85,
		Distance:        "1.0 miles",
		IsVerified:      true,
		Avatar:          AvatarPresets[6],
	},
}

// SeedNotifications returns the default notification set, timestamped
// relative to now (epoch milliseconds).
func SeedNotifications(now int64) []Notification {
	return []Notification{
		{
			ID:        "n1",
			Title:     "It's a Match!",
			Message:   "You and User#X92A liked each other. Start chatting now!",
			Timestamp: now - 1000*60*5,
			Read:      false,
			Type:      NotificationTypeMatch,
		},
		{
			ID:        "n2",
			Title:     "Welcome to Other Half",
			Message:   "Your student profile has been verified. You can now start swiping.",
			Timestamp: now - 1000*60*60*24,
			Read:      true,
			Type:      NotificationTypeSystem,
		},
		{
			ID:        "n3",
			Title:     "New Feature",
			Message:   "Video calls are now end-to-end encrypted for your safety.",
			Timestamp: now - 1000*60*60*48,
			Read:      true,
			Type:      NotificationTypeSystem,
		},
	}
}

// SeedConfessions returns the default confession set for the demo campus.
func SeedConfessions(now int64) []Confession {
	return []Confession{
		{
			ID:        "c1",
			UserID:    "User#A111",
			Text:      "Does anyone else think the library AC is set to arctic mode? 🥶",
			Timestamp: now - 1000000,
			Likes:     12,
			Comments: []Comment{
				{ID: "cm1", UserID: "User#Z999", Text: "Bring a hoodie lol", Timestamp: now - 500000},
			},
			University: "Amity University, Raipur",
		},
		{
			ID:         "c2",
			UserID:     "User#B222",
			Text:       "Saw the cutest person in the canteen today but was too shy to say hi. If you were wearing a red hoodie, hmu.",
			Timestamp:  now - 5000000,
			Likes:      45,
			Comments:   []Comment{},
			University: "Amity University, Raipur",
		},
	}
}
