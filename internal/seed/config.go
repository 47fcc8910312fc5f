package seed

import "github.com/verdantgames/GardenGrove_Go/internal/domain"

const imageBaseURL = "https://static.verdantgames.io/garden"

// defaultSeeds returns the built-in seed table. Harvest levels are
// seed-specific; the faster crops mature in fewer stages.
func defaultSeeds() []domain.SeedDefinition {
	return []domain.SeedDefinition{
		{
			ID:           1,
			Name:         "Carrot",
			Icon:         imageBaseURL + "/carrot-icon.png",
			Cost:         0,
			Reward:       2,
			GrowthTime:   60,
			HarvestLevel: 10,
			ImageByLevel: map[int]string{
				0:  imageBaseURL + "/carrot-0.png",
				3:  imageBaseURL + "/carrot-1.png",
				6:  imageBaseURL + "/carrot-2.png",
				10: imageBaseURL + "/carrot-3.png",
			},
		},
		{
			ID:           2,
			Name:         "Wheat",
			Icon:         imageBaseURL + "/wheat-icon.png",
			Cost:         0,
			Reward:       3,
			GrowthTime:   480,
			HarvestLevel: 5,
			ImageByLevel: map[int]string{
				0: imageBaseURL + "/wheat-0.png",
				1: imageBaseURL + "/wheat-1.png",
				3: imageBaseURL + "/wheat-2.png",
				5: imageBaseURL + "/wheat-3.png",
			},
		},
		{
			ID:           3,
			Name:         "Tomato",
			Icon:         imageBaseURL + "/tomato-icon.png",
			Cost:         5,
			Reward:       8,
			GrowthTime:   720,
			HarvestLevel: 7,
			ImageByLevel: map[int]string{
				0: imageBaseURL + "/tomato-0.png",
				1: imageBaseURL + "/tomato-1.png",
				4: imageBaseURL + "/tomato-2.png",
				7: imageBaseURL + "/tomato-3.png",
			},
		},
		{
			ID:           4,
			Name:         "Pumpkin",
			Icon:         imageBaseURL + "/pumpkin-icon.png",
			Cost:         10,
			Reward:       25,
			GrowthTime:   300,
			HarvestLevel: 10,
			ImageByLevel: map[int]string{
				0:  imageBaseURL + "/pumpkin-0.png",
				2:  imageBaseURL + "/pumpkin-1.png",
				4:  imageBaseURL + "/pumpkin-2.png",
				7:  imageBaseURL + "/pumpkin-3.png",
				10: imageBaseURL + "/pumpkin-4.png",
			},
		},
	}
}
