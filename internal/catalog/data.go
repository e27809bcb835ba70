// Copyright (c) 2025 Pokecruise Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

package catalog

// The Pokemon Cruises offerings. Order is load-bearing; append only.

var cruises = []Cruise{
	{
		ID:               "ss-anne-kanto",
		Name:             "S.S. Anne Luxury Voyage",
		Region:           "Kanto",
		Description:      "Experience the legendary S.S. Anne, the most luxurious cruise ship in the Kanto region. This iconic vessel offers a perfect blend of elegance and adventure as you sail around the beautiful coastline of Kanto. Visit historic ports like Vermilion City and Cinnabar Island, with opportunities to explore ancient Pokemon habitats and participate in exclusive trainer workshops.",
		ShortDescription: "The legendary luxury cruise around Kanto's most iconic coastal cities.",
		Highlights: []string{
			"VIP tour of the Vermilion City Gym",
			"Exclusive access to the Cinnabar Island Research Lab",
			"Pokemon catching contest in Safari Zone waters",
			"Gourmet dining featuring Chef Siebold's signature dishes",
		},
		StartingPrice: 2500,
		Duration:      7,
		Itinerary: []ItineraryDay{
			{
				Day: 1,
				Port: Port{
					Name:        "Vermilion City",
					Description: "The beautiful coastal city known for its sunset views and bustling harbor.",
					Coordinates: [2]float64{35.6895, 139.6917},
					Activities:  []string{"Vermilion Gym Tour", "Harbor Market Shopping"},
					Image:       "https://picsum.photos/seed/ss-anne-kanto-Vermilion-City-1/400/300",
				},
				Activities: []string{"Embarkation", "Welcome Dinner", "Sunset Deck Party"},
			},
			{
				Day: 2,
				Port: Port{
					Name:        "Seafoam Islands",
					Description: "A mysterious island chain home to rare water and ice-type Pokemon.",
					Coordinates: [2]float64{34.9, 138.6},
					Activities:  []string{"Cave Exploration", "Ice Pokemon Spotting"},
					Image:       "https://picsum.photos/seed/ss-anne-kanto-Seafoam-Islands-2/400/300",
				},
				Activities: []string{"Guided Cave Tour", "Ice Sculpture Workshop", "Evening Legends Storytelling"},
			},
			{
				Day: 3,
				Port: Port{
					Name:        "Cinnabar Island",
					Description: "A volcanic island with hot springs and a famous Pokemon research laboratory.",
					Coordinates: [2]float64{33.8, 140.1},
					Activities:  []string{"Hot Springs Visit", "Pokemon Lab Tour"},
					Image:       "https://picsum.photos/seed/ss-anne-kanto-Cinnabar-Island-3/400/300",
				},
				Activities: []string{"Volcano Hiking", "Research Lab VIP Tour", "Hot Spring Relaxation"},
			},
			{
				Day: 4,
				Port: Port{
					Name:        "Pallet Town Bay",
					Description: "A peaceful coastal area near the famous starting point for many Pokemon trainers.",
					Coordinates: [2]float64{35.2, 139.9},
					Activities:  []string{"Oak Laboratory Visit", "Trainer School Workshop"},
					Image:       "https://picsum.photos/seed/ss-anne-kanto-Pallet-Town-Bay-4/400/300",
				},
				Activities: []string{"Professor Oak's Special Lecture", "Beginner Trainer Workshop", "Beach Barbecue"},
			},
			{
				Day: 5,
				Port: Port{
					Name:        "Safari Zone Coast",
					Description: "The coastal area of the famous Safari Zone, known for its diverse Pokemon.",
					Coordinates: [2]float64{36.1, 140.2},
					Activities:  []string{"Safari Boat Tour", "Fishing Competition"},
					Image:       "https://picsum.photos/seed/ss-anne-kanto-Safari-Zone-Coast-5/400/300",
				},
				Activities: []string{"Pokemon Watching Expedition", "Fishing Tournament", "Safari-themed Dinner"},
			},
			{
				Day: 6,
				Port: Port{
					Name:        "Cerulean Cape",
					Description: "A romantic cape north of Cerulean City with spectacular ocean views.",
					Coordinates: [2]float64{36.5, 140.5},
					Activities:  []string{"Lighthouse Tour", "Romantic Sunset Viewing"},
					Image:       "https://picsum.photos/seed/ss-anne-kanto-Cerulean-Cape-6/400/300",
				},
				Activities: []string{"Water Pokemon Show", "Lighthouse Tour", "Farewell Gala Dinner"},
			},
			{
				Day: 7,
				Port: Port{
					Name:        "Vermilion City",
					Description: "Return to the beautiful coastal city of Vermilion.",
					Coordinates: [2]float64{35.6895, 139.6917},
					Activities:  []string{"Souvenir Shopping", "City Tour"},
					Image:       "https://picsum.photos/seed/ss-anne-kanto-Vermilion-City-7/400/300",
				},
				Activities: []string{"Disembarkation", "Optional City Tour"},
			},
		},
		CabinTypes: []CabinType{
			{
				ID:          "interior-kanto-ss-anne",
				Name:        "Standard Interior Cabin",
				Description: "A comfortable and cozy cabin with all essential amenities for a relaxing voyage.",
				Price:       2500,
				Capacity:    2,
				Amenities:   []string{"Twin beds (convertible to queen)", "Private bathroom with shower", "Desk", "Television", "Safe"},
				Images:      []string{"https://picsum.photos/seed/cabins-kanto-interior-1/800/600", "https://picsum.photos/seed/cabins-kanto-interior-2/800/600"},
			},
			{
				ID:          "oceanview-kanto-ss-anne",
				Name:        "Oceanview Stateroom",
				Description: "Enjoy scenic sea views from your stateroom, equipped with a picture window.",
				Price:       3200,
				Capacity:    3,
				Amenities:   []string{"Queen bed", "Sofa bed", "Private bathroom with shower", "Picture window", "Desk", "Television", "Safe", "Mini-fridge"},
				Images:      []string{"https://picsum.photos/seed/cabins-kanto-oceanview-1/800/600", "https://picsum.photos/seed/cabins-kanto-oceanview-2/800/600"},
			},
			{
				ID:          "suite-kanto-ss-anne",
				Name:        "Captain's Suite",
				Description: "Luxurious and spacious suite with a private balcony and premium amenities.",
				Price:       4500,
				Capacity:    4,
				Amenities:   []string{"King bed", "Separate living area with sofa bed", "Private balcony", "Whirlpool bathtub", "Walk-in closet", "Priority embarkation/disembarkation", "Concierge service"},
				Images:      []string{"https://picsum.photos/seed/cabins-kanto-suite-1/800/600", "https://picsum.photos/seed/cabins-kanto-suite-2/800/600"},
			},
		},
		Images: []string{
			"https://picsum.photos/seed/cruises-kanto-ssanne-1/800/600",
			"https://picsum.photos/seed/cruises-kanto-ssanne-2/800/600",
			"https://picsum.photos/seed/cruises-kanto-ssanne-3/800/600",
			"https://picsum.photos/seed/cruises-kanto-ssanne-4/800/600",
		},
		Amenities: []string{
			"Grand Ballroom for events",
			"Multiple gourmet restaurants",
			"Luxury spa and wellness center",
			"Onboard Pokemon battle arena",
			"Casino and entertainment lounge",
			"Duty-free shopping boutiques",
			"Swimming pool and sundeck",
			"Kids and teens clubs",
		},
		MapImage: "https://picsum.photos/seed/maps-kanto-cruise-map/1024/768",
		Featured: true,
	},
	{
		ID:               "aqua-marina-johto",
		Name:             "Aqua Marina Johto Explorer",
		Region:           "Johto",
		Description:      "Discover the rich traditions and natural beauty of the Johto region aboard the elegant Aqua Marina. This cruise takes you on a journey through time, visiting ancient temples, historic lighthouses, and vibrant port cities. Experience the unique culture of Johto through traditional performances, local cuisine, and guided excursions to sacred sites.",
		ShortDescription: "Journey through Johto's rich history and cultural landmarks.",
		Highlights: []string{
			"Traditional tea ceremony at Ecruteak City",
			"Whirl Islands expedition with Lugia watching opportunity",
			"Night lantern festival in Olivine City",
			"Exclusive tour of the Shining Lighthouse",
		},
		StartingPrice: 2200,
		Duration:      6,
		Itinerary: []ItineraryDay{
			{
				Day: 1,
				Port: Port{
					Name:        "New Bark Town Harbor",
					Description: "A small, peaceful harbor known as the 'Town where the winds of new beginnings blow'.",
					Coordinates: [2]float64{34.5, 136.9},
					Activities:  []string{"Wind Chime Festival", "Professor Elm's Laboratory Tour"},
					Image:       "https://picsum.photos/seed/aqua-marina-johto-New-Bark-Town-Harbor-1/400/300",
				},
				Activities: []string{"Embarkation", "Welcome Ceremony", "Wind and Water Show"},
			},
			{
				Day: 2,
				Port: Port{
					Name:        "Cherrygrove Bay",
					Description: "A picturesque bay surrounded by cherry blossom trees when in season.",
					Coordinates: [2]float64{34.3, 137.1},
					Activities:  []string{"Cherry Blossom Viewing (seasonal)", "Guide Gent's Tour"},
					Image:       "https://picsum.photos/seed/aqua-marina-johto-Cherrygrove-Bay-2/400/300",
				},
				Activities: []string{"Guided Nature Walk", "Cherry Blossom Tea Party (seasonal)", "Stargazing"},
			},
			{
				Day: 3,
				Port: Port{
					Name:        "Whirl Islands",
					Description: "A group of four islands with strong whirlpools and complex cave systems.",
					Coordinates: [2]float64{33.9, 137.8},
					Activities:  []string{"Whirlpool Watching", "Cave Exploration"},
					Image:       "https://picsum.photos/seed/aqua-marina-johto-Whirl-Islands-3/400/300",
				},
				Activities: []string{"Lugia Watching Expedition", "Cave Adventure Tour", "Whirlpool Legends Dinner"},
			},
			{
				Day: 4,
				Port: Port{
					Name:        "Olivine City",
					Description: "A bustling port city famous for its steel industry and historic lighthouse.",
					Coordinates: [2]float64{33.6, 138.2},
					Activities:  []string{"Lighthouse Tour", "Steel Works Visit"},
					Image:       "https://picsum.photos/seed/aqua-marina-johto-Olivine-City-4/400/300",
				},
				Activities: []string{"Glitter Lighthouse Exclusive Tour", "Amphy Meet and Greet", "Night Lantern Festival"},
			},
			{
				Day: 5,
				Port: Port{
					Name:        "Cianwood Peninsula",
					Description: "A remote peninsula known for its medicinal herbs and martial arts traditions.",
					Coordinates: [2]float64{33.2, 137.5},
					Activities:  []string{"Pharmacy Tour", "Cliff Safari"},
					Image:       "https://picsum.photos/seed/aqua-marina-johto-Cianwood-Peninsula-5/400/300",
				},
				Activities: []string{"Medicinal Herb Workshop", "Martial Arts Demonstration", "Cliff-side Meditation"},
			},
			{
				Day: 6,
				Port: Port{
					Name:        "New Bark Town Harbor",
					Description: "Return to the peaceful harbor where your journey began.",
					Coordinates: [2]float64{34.5, 136.9},
					Activities:  []string{"Souvenir Shopping", "Farewell Ceremony"},
					Image:       "https://picsum.photos/seed/aqua-marina-johto-New-Bark-Town-Harbor-6/400/300",
				},
				Activities: []string{"Disembarkation", "Optional Wind Farm Tour"},
			},
		},
		CabinTypes: []CabinType{
			{
				ID:          "traveler-johto-aqua-marina",
				Name:        "Traveler's Cabin",
				Description: "A practical and comfortable cabin for explorers of the Johto region.",
				Price:       2200,
				Capacity:    2,
				Amenities:   []string{"Twin beds", "Private bathroom", "TV", "Storage space"},
				Images:      []string{"https://picsum.photos/seed/cabins-johto-traveler-1/800/600", "https://picsum.photos/seed/cabins-johto-traveler-2/800/600"},
			},
			{
				ID:          "coastalview-johto-aqua-marina",
				Name:        "Coastal View Cabin",
				Description: "Cabin with a window offering views of Johto's beautiful coastlines.",
				Price:       2900,
				Capacity:    2,
				Amenities:   []string{"Double bed", "Private bathroom", "Picture window", "TV", "Mini fridge"},
				Images:      []string{"https://picsum.photos/seed/cabins-johto-coastal-1/800/600", "https://picsum.photos/seed/cabins-johto-coastal-2/800/600"},
			},
			{
				ID:          "serene-suite-johto-aqua-marina",
				Name:        "Serene Suite",
				Description: "Spacious suite with traditional Johto decor and a private balcony.",
				Price:       4000,
				Capacity:    4,
				Amenities:   []string{"Queen bed", "Sofa bed", "Private bathroom with traditional bath", "Private balcony", "TV", "Tea ceremony set", "Sitting area"},
				Images:      []string{"https://picsum.photos/seed/cabins-johto-serene-1/800/600", "https://picsum.photos/seed/cabins-johto-serene-2/800/600"},
			},
		},
		Images: []string{
			"https://picsum.photos/seed/cruises-johto-aqua-marina-1/800/600",
			"https://picsum.photos/seed/cruises-johto-aqua-marina-2/800/600",
			"https://picsum.photos/seed/cruises-johto-aqua-marina-3/800/600",
		},
		Amenities: []string{
			"Traditional Tea Room",
			"Pokemon Contest Hall (miniature)",
			"Bell Tower replica observation deck",
			"Kimono rental and photoshoot service",
			"Johto-style gardens",
			"Local artisan craft shops",
		},
		MapImage: "https://picsum.photos/seed/maps-johto-cruise-map/1024/768",
		Featured: true,
	},
	{
		ID:               "hoenn-seafarer",
		Name:             "Hoenn Seafarer Adventure",
		Region:           "Hoenn",
		Description:      "Embark on an exciting adventure through the diverse Hoenn region, known for its unique mix of land and sea environments. The Hoenn Seafarer takes you on an unforgettable journey from the volcanic activity of Lavaridge to the tropical paradise of Mossdeep. Perfect for nature enthusiasts and those seeking variety in their Pokemon journey.",
		ShortDescription: "Navigate Hoenn's diverse environments from volcanic areas to tropical islands.",
		Highlights: []string{
			"Underwater exploration near Sootopolis City",
			"Hot spring experience at Lavaridge Town port",
			"Space Center exclusive tour at Mossdeep City",
			"Safari adventure at the special marine Safari Zone",
		},
		StartingPrice: 2800,
		Duration:      8,
		Itinerary: []ItineraryDay{
			{
				Day: 1,
				Port: Port{
					Name:        "Slateport City",
					Description: "A lively market city with a famous shipyard and beach.",
					Coordinates: [2]float64{31.5, 130.5},
					Activities:  []string{"Market Shopping", "Oceanic Museum Visit"},
					Image:       "https://picsum.photos/seed/hoenn-tropical-seafarer-Slateport-City-1/400/300",
				},
				Activities: []string{"Embarkation", "Welcome Feast", "Beach Party"},
			},
			{
				Day: 2,
				Port: Port{
					Name:        "Dewford Island",
					Description: "A small island with a fighting dojo and famous for its rough waves.",
					Coordinates: [2]float64{30.8, 131.0},
					Activities:  []string{"Granite Cave Exploration", "Surfing Lessons"},
					Image:       "https://picsum.photos/seed/hoenn-tropical-seafarer-Dewford-Town-2/400/300",
				},
				Activities: []string{"Cave Treasure Hunt", "Fighting-Type Pokemon Workshop", "Bonfire Night"},
			},
			{
				Day: 3,
				Port: Port{
					Name:        "Lavaridge Coast",
					Description: "The coastal area near the volcanic town famous for its healing hot springs.",
					Coordinates: [2]float64{31.2, 130.8},
					Activities:  []string{"Hot Springs Bath", "Mt. Chimney Observation"},
					Image:       "https://picsum.photos/seed/hoenn-tropical-seafarer-Lavaridge-Coast-3/400/300",
				},
				Activities: []string{"Volcanic Sand Therapy", "Hot Spring Onsen Experience", "Fire Pokemon Show"},
			},
			{
				Day: 4,
				Port: Port{
					Name:        "Fortree Riverside",
					Description: "The river port near the unique tree-house city built among the canopy.",
					Coordinates: [2]float64{31.8, 131.2},
					Activities:  []string{"Treehouse Village Tour", "Birdwatching"},
					Image:       "https://picsum.photos/seed/hoenn-tropical-seafarer-Fortree-Riverside-4/400/300",
				},
				Activities: []string{"Canopy Walk", "Flying Pokemon Air Show", "Riverside Picnic"},
			},
			{
				Day: 5,
				Port: Port{
					Name:        "Lilycove Harbor",
					Description: "A cultural hub with a famous department store and contest hall.",
					Coordinates: [2]float64{32.1, 131.8},
					Activities:  []string{"Department Store Shopping", "Contest Spectacular Viewing"},
					Image:       "https://picsum.photos/seed/hoenn-tropical-seafarer-Lilycove-City-5/400/300",
				},
				Activities: []string{"Pokemon Contest Workshop", "Art Museum Tour", "Gourmet Food Tasting"},
			},
			{
				Day: 6,
				Port: Port{
					Name:        "Mossdeep City",
					Description: "An island city famous for its space center and psychic gym.",
					Coordinates: [2]float64{32.4, 132.2},
					Activities:  []string{"Space Center Tour", "Psychic Show"},
					Image:       "https://picsum.photos/seed/hoenn-tropical-seafarer-Mossdeep-City-6/400/300",
				},
				Activities: []string{"Space Center VIP Tour", "Psychic Pokemon Demonstration", "Star Observation Night"},
			},
			{
				Day: 7,
				Port: Port{
					Name:        "Sootopolis City",
					Description: "A city built in the crater of an extinct volcano, with a unique lake in the center.",
					Coordinates: [2]float64{32.0, 131.5},
					Activities:  []string{"Cave of Origin Viewing", "Underwater Exploration"},
					Image:       "https://picsum.photos/seed/hoenn-tropical-seafarer-Sootopolis-City-7/400/300",
				},
				Activities: []string{"Underwater Submarine Tour", "Ancient Legends Lecture", "Crystal Cave Dinner"},
			},
			{
				Day: 8,
				Port: Port{
					Name:        "Slateport City",
					Description: "Return to the lively market city where your journey began.",
					Coordinates: [2]float64{31.5, 130.5},
					Activities:  []string{"Souvenir Shopping", "Beach Relaxation"},
					Image:       "https://picsum.photos/seed/hoenn-tropical-seafarer-Slateport-City-8/400/300",
				},
				Activities: []string{"Disembarkation", "Optional Market Tour"},
			},
		},
		CabinTypes: []CabinType{
			{
				ID:          "island-hoenn-seafarer",
				Name:        "Island Cabin",
				Description: "A cozy cabin perfect for adventurers exploring Hoenn's diverse islands.",
				Price:       2800,
				Capacity:    2,
				Amenities:   []string{"Twin beds", "Private bathroom", "TV", "Gear storage"},
				Images:      []string{"https://picsum.photos/seed/cabins-hoenn-island-1/800/600", "https://picsum.photos/seed/cabins-hoenn-island-2/800/600"},
			},
			{
				ID:          "panorama-hoenn-seafarer",
				Name:        "Aqua Panorama Cabin",
				Description: "Cabin with large windows offering panoramic views of Hoenn's waters.",
				Price:       3600,
				Capacity:    3,
				Amenities:   []string{"Queen bed", "Pull-out sofa", "Private bathroom", "Panoramic window", "TV", "Mini bar"},
				Images:      []string{"https://picsum.photos/seed/cabins-hoenn-panorama-1/800/600", "https://picsum.photos/seed/cabins-hoenn-panorama-2/800/600"},
			},
			{
				ID:          "explorer-suite-hoenn-seafarer",
				Name:        "Explorer's Suite",
				Description: "Luxurious suite with a private balcony, perfect for the avid Hoenn explorer.",
				Price:       5200,
				Capacity:    4,
				Amenities:   []string{"King bed", "Living area with sofa bed", "Private balcony with ocean view", "Deluxe bathroom", "Binoculars for Pokemon spotting", "Research desk"},
				Images:      []string{"https://picsum.photos/seed/cabins-hoenn-explorer-1/800/600", "https://picsum.photos/seed/cabins-hoenn-explorer-2/800/600"},
			},
		},
		Images: []string{
			"https://picsum.photos/seed/cruises-hoenn-seafarer-1/800/600",
			"https://picsum.photos/seed/cruises-hoenn-seafarer-2/800/600",
			"https://picsum.photos/seed/cruises-hoenn-seafarer-3/800/600",
			"https://picsum.photos/seed/cruises-hoenn-seafarer-4/800/600",
		},
		Amenities: []string{
			"Underwater Observation Lounge",
			"Volcano-themed Spa (non-active)",
			"Weather Institute Deck",
			"Secret Base Design Workshop",
			"Tropical Juice Bar",
			"Dive shop for excursions",
		},
		MapImage: "https://picsum.photos/seed/maps-hoenn-cruise-map/1024/768",
		Featured: false,
	},
	{
		ID:               "glacial-explorer-sinnoh",
		Name:             "Glacial Explorer Sinnoh",
		Region:           "Sinnoh",
		Description:      "Embark on an epic adventure through the diverse and majestic Sinnoh region. From the snowy peaks of Mt. Coronet to the mysterious Distortion World, this cruise offers unparalleled experiences. Explore ancient ruins, witness breathtaking natural phenomena, and encounter unique Pokémon native to Sinnoh.",
		ShortDescription: "Explore Sinnoh's majestic mountains, lakes, and ancient mysteries.",
		Highlights: []string{
			"Excursion to the summit of Mt. Coronet",
			"Visit to the Spear Pillar and Hall of Origin (simulated)",
			"Canalave City Library tour with ancient myths",
			"Stargazing night at Lake Verity",
		},
		StartingPrice: 2800,
		Duration:      8,
		Itinerary: []ItineraryDay{
			{
				Day: 1,
				Port: Port{
					Name:        "Canalave City",
					Description: "A historic port city with a famous library and access to Iron Island.",
					Coordinates: [2]float64{46.1523, 140.7407},
					Activities:  []string{"Canalave Library Tour", "Iron Island Ferry Trip"},
					Image:       "https://picsum.photos/seed/glacial-explorer-sinnoh-Canalave-City-1/400/300",
				},
				Activities: []string{"Embarkation", "Welcome Gala", "Sinnoh Myths & Legends Presentation"},
			},
			{
				Day: 2,
				Port: Port{
					Name:        "Snowpoint City",
					Description: "A remote, snow-covered city known for its Ice-type Gym and access to Lake Acuity.",
					Coordinates: [2]float64{45.4215, 141.0000},
					Activities:  []string{"Snowpoint Temple Visit", "Ice Sculpting Class"},
					Image:       "https://picsum.photos/seed/glacial-explorer-sinnoh-Snowpoint-City-2/400/300",
				},
				Activities: []string{"Guided Tour of Snowpoint Temple", "Optional Ice-type Pokemon Interaction", "Aurora Borealis Viewing (weather permitting)"},
			},
			{
				Day: 3,
				Port: Port{
					Name:        "Sunyshore City",
					Description: "A sunny coastal city famous for its solar panels and the Vista Lighthouse.",
					Coordinates: [2]float64{42.9667, 144.3667},
					Activities:  []string{"Vista Lighthouse Climb", "Solar Panel Farm Tour"},
					Image:       "https://picsum.photos/seed/glacial-explorer-sinnoh-Sunyshore-City-3/400/300",
				},
				Activities: []string{"Beach Day & Water Sports", "Electric Pokemon Showcase", "Sunyshore Market Exploration"},
			},
			{
				Day: 4,
				Port: Port{
					Name:        "Fight Area (Battle Zone)",
					Description: "An island dedicated to Pokemon battling, with challenging trainers and facilities.",
					Coordinates: [2]float64{44.5000, 142.5000},
					Activities:  []string{"Battle Tower Challenge (spectator)", "Tropical Pokemon Photography"},
					Image:       "https://picsum.photos/seed/glacial-explorer-sinnoh-Fight-Area-Battle-Zone-4/400/300",
				},
				Activities: []string{"Pokemon Battle Tournament (onboard)", "Strategy Workshops", "Survival Island Skills Demo"},
			},
			{
				Day: 5,
				Port: Port{
					Name:        "Celestic Town",
					Description: "An ancient town with a shrine dedicated to Sinnoh's legendary Pokemon.",
					Coordinates: [2]float64{43.7833, 142.3667},
					Activities:  []string{"Celestic Ruins Exploration", "Sinnoh History Lecture"},
					Image:       "https://picsum.photos/seed/glacial-explorer-sinnoh-Celestic-Town-5/400/300",
				},
				Activities: []string{"Guided Tour of Celestic Ruins", "Traditional Sinnoh Craft Workshop", "Stargazing from the Deck"},
			},
			{
				Day: 6,
				Port: Port{
					Name:        "Pastoria City",
					Description: "A city known for the Great Marsh and its unique Pokemon.",
					Coordinates: [2]float64{43.0620, 141.3544},
					Activities:  []string{"Great Marsh Safari Tour", "Berry Picking"},
					Image:       "https://picsum.photos/seed/glacial-explorer-sinnoh-Pastoria-City-6/400/300",
				},
				Activities: []string{"Great Marsh Bug Catching Contest (simulated)", "Water Pokemon Parade", "Pastoria-themed Dinner"},
			},
			{
				Day: 7,
				Port: Port{
					Name:        "Mt. Coronet Foothills",
					Description: "Access point to explore the lower trails of Sinnoh's iconic mountain range.",
					Coordinates: [2]float64{43.5000, 142.0000},
					Activities:  []string{"Guided Hike", "Cave Exploration (beginner level)"},
					Image:       "https://picsum.photos/seed/glacial-explorer-sinnoh-Mt-Coronet-Foothills-7/400/300",
				},
				Activities: []string{"Mt. Coronet Scenic Viewing", "Rock Climbing Wall Challenge", "Farewell Dinner & Show"},
			},
			{
				Day: 8,
				Port: Port{
					Name:        "Canalave City",
					Description: "Return to Canalave City.",
					Coordinates: [2]float64{46.1523, 140.7407},
					Activities:  []string{"Souvenir Shopping", "Last-minute Sightseeing"},
					Image:       "https://picsum.photos/seed/glacial-explorer-sinnoh-Canalave-City-8/400/300",
				},
				Activities: []string{"Disembarkation", "Optional Transfer to Jubilife City"},
			},
		},
		CabinTypes: []CabinType{
			{
				ID:          "interior-sinnoh-glacial",
				Name:        "Explorer Cabin",
				Description: "A cozy cabin perfect for adventurers, with all essential amenities.",
				Price:       2800,
				Capacity:    2,
				Amenities:   []string{"Twin beds", "Private bathroom", "TV", "Storage space for gear"},
				Images:      []string{"https://picsum.photos/seed/cabins-explorer-sinnoh-1/800/600", "https://picsum.photos/seed/cabins-explorer-sinnoh-2/800/600"},
			},
			{
				ID:          "summitview-sinnoh-glacial",
				Name:        "Summit View Cabin",
				Description: "Cabin with a window offering views of the passing landscapes and mountains.",
				Price:       3500,
				Capacity:    2,
				Amenities:   []string{"Queen bed", "Private bathroom", "Picture window", "TV", "Mini fridge", "Desk"},
				Images:      []string{"https://picsum.photos/seed/cabins-summitview-sinnoh-1/800/600", "https://picsum.photos/seed/cabins-summitview-sinnoh-2/800/600"},
			},
			{
				ID:          "legendary-sinnoh-glacial",
				Name:        "Legendary Suite",
				Description: "Spacious suite with a private balcony, themed after Sinnoh's legendary Pokemon.",
				Price:       5000,
				Capacity:    4,
				Amenities:   []string{"King bed", "Sofa bed", "Private bathroom with tub", "Private balcony", "TV", "Mini bar", "Sitting area", "Themed decor"},
				Images:      []string{"https://picsum.photos/seed/cabins-legendary-sinnoh-1/800/600", "https://picsum.photos/seed/cabins-legendary-sinnoh-2/800/600"},
			},
		},
		Images: []string{
			"https://picsum.photos/seed/cruises-sinnoh-glacial-1/800/600",
			"https://picsum.photos/seed/cruises-sinnoh-glacial-2/800/600",
			"https://picsum.photos/seed/cruises-sinnoh-glacial-3/800/600",
			"https://picsum.photos/seed/cruises-sinnoh-glacial-4/800/600",
		},
		Amenities: []string{
			"Heated indoor pool",
			"Observation deck with telescopes",
			"Pokemon research lab",
			"Ice skating rink (seasonal)",
			"Multiple dining options",
			"Lecture hall for guest speakers",
			"Library with Sinnoh lore",
			"Fitness center and spa",
		},
		MapImage: "https://picsum.photos/seed/maps-sinnoh-cruise-map/1024/768",
		Featured: true,
	},
}
