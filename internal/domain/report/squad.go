package report

import (
	"sort"

	"github.com/okian/scouty/internal/domain/model"
)

// Skill-average thresholds for calling out a squad strength or weakness,
// and the cutoff below which a squad still counts as young.
const (
	strongSkillAverage = 12.0
	weakSkillAverage   = 10.0
	youngSquadAge      = 24.0
)

// Lineup slots per position group.
const (
	lineupDefenders   = 4
	lineupMidfielders = 4
	lineupForwards    = 2
)

// Lineup is the suggested starting eleven, strongest TSI first per
// position group. Goalkeeper is empty when the squad has none.
type Lineup struct {
	Goalkeeper  string   `json:"goalkeeper"`
	Defenders   []string `json:"defenders"`
	Midfielders []string `json:"midfielders"`
	Forwards    []string `json:"forwards"`
}

// squadStrengths reads the skill averages and age for callouts. A squad
// with nothing standing out reads as balanced rather than empty.
func squadStrengths(avgSkills map[model.Skill]float64, avgAge float64) []string {
	var strengths []string
	if avgSkills[model.SkillDefending] > strongSkillAverage {
		strengths = append(strengths, "Strong defense")
	}
	if avgSkills[model.SkillPlaymaking] > strongSkillAverage {
		strengths = append(strengths, "Good midfield control")
	}
	if avgSkills[model.SkillScoring] > strongSkillAverage {
		strengths = append(strengths, "Strong attack")
	}
	if avgAge < youngSquadAge {
		strengths = append(strengths, "Young squad with potential")
	}
	if len(strengths) == 0 {
		strengths = append(strengths, "Balanced team")
	}
	return strengths
}

func squadWeaknesses(avgSkills map[model.Skill]float64, positions map[model.Position]int) []string {
	var weaknesses []string
	if avgSkills[model.SkillDefending] < weakSkillAverage {
		weaknesses = append(weaknesses, "Weak defense")
	}
	if avgSkills[model.SkillPlaymaking] < weakSkillAverage {
		weaknesses = append(weaknesses, "Weak midfield")
	}
	if avgSkills[model.SkillScoring] < weakSkillAverage {
		weaknesses = append(weaknesses, "Weak attack")
	}
	if positions[model.PositionGK] == 0 {
		weaknesses = append(weaknesses, "Missing goalkeeper")
	}
	return weaknesses
}

// tacticalRecommendations maps each weakness to a training or transfer
// suggestion.
func tacticalRecommendations(weaknesses []string) []string {
	var recommendations []string
	for _, w := range weaknesses {
		switch w {
		case "Weak defense":
			recommendations = append(recommendations, "Consider training defending or buying defenders")
		case "Weak midfield":
			recommendations = append(recommendations, "Focus on playmaking training")
		case "Weak attack":
			recommendations = append(recommendations, "Train scoring or invest in forwards")
		case "Missing goalkeeper":
			recommendations = append(recommendations, "Sign or promote a goalkeeper")
		}
	}
	if len(weaknesses) == 0 {
		recommendations = append(recommendations, "Team is well balanced - focus on maintaining form")
	}
	return recommendations
}

// bestLineup fills each position group by descending TSI. Central
// defenders and wing backs share the back line; inner midfielders and
// wingers share the middle.
func bestLineup(players []*model.Player) Lineup {
	ranked := append([]*model.Player(nil), players...)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].TSI != ranked[j].TSI {
			return ranked[i].TSI > ranked[j].TSI
		}
		return ranked[i].ID < ranked[j].ID
	})

	var lineup Lineup
	for _, p := range ranked {
		switch p.Position {
		case model.PositionGK:
			if lineup.Goalkeeper == "" {
				lineup.Goalkeeper = p.Name
			}
		case model.PositionCD, model.PositionWB:
			if len(lineup.Defenders) < lineupDefenders {
				lineup.Defenders = append(lineup.Defenders, p.Name)
			}
		case model.PositionIM, model.PositionWI:
			if len(lineup.Midfielders) < lineupMidfielders {
				lineup.Midfielders = append(lineup.Midfielders, p.Name)
			}
		case model.PositionFW:
			if len(lineup.Forwards) < lineupForwards {
				lineup.Forwards = append(lineup.Forwards, p.Name)
			}
		}
	}
	return lineup
}
