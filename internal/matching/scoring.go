package matching

import (
	"math"
	"strings"

	"github.com/jonathan/autofill-engine/internal/extraction"
	"github.com/jonathan/autofill-engine/internal/similarity"
	"github.com/jonathan/autofill-engine/internal/types"
)

// computeSkillScore blends the ratio of required skills matched against the
// candidate's skill list (60%) with the ratio of extracted job keywords found
// in the candidate's keyword index or skills (40%).
func computeSkillScore(jobKeywords, requiredSkills []string, profile *types.UserProfile) types.SkillScore {
	userSkills := make([]string, 0, len(profile.Skills))
	for _, s := range profile.Skills {
		userSkills = append(userSkills, strings.ToLower(strings.TrimSpace(s)))
	}

	indexSet := make(map[string]bool, len(profile.KeywordIndex))
	for _, kw := range profile.KeywordIndex {
		indexSet[strings.ToLower(kw)] = true
	}

	var matched []string
	for _, skill := range requiredSkills {
		for _, us := range userSkills {
			if us == "" {
				continue
			}
			if strings.Contains(us, skill) || strings.Contains(skill, us) {
				matched = append(matched, skill)
				break
			}
		}
	}

	keywordMatches := 0
	for _, kw := range jobKeywords {
		if indexSet[kw] {
			keywordMatches++
			continue
		}
		for _, us := range userSkills {
			if us != "" && strings.Contains(us, kw) {
				keywordMatches++
				break
			}
		}
	}

	skillRatio := 0.5
	if len(requiredSkills) > 0 {
		skillRatio = float64(len(matched)) / float64(len(requiredSkills))
	}

	keywordRatio := 0.0
	if len(jobKeywords) > 0 {
		denom := len(jobKeywords)
		if denom > 20 {
			denom = 20
		}
		keywordRatio = float64(keywordMatches) / float64(denom)
		if keywordRatio > 1 {
			keywordRatio = 1
		}
	}

	score := int(math.Round(skillRatio*60 + keywordRatio*40))
	if score > 100 {
		score = 100
	}

	return types.SkillScore{
		Score:          score,
		MatchedSkills:  matched,
		TotalRequired:  len(requiredSkills),
		MatchRatio:     skillRatio,
		KeywordMatches: keywordMatches,
	}
}

// computeTitleScore combines trigram similarity between the job title and
// the candidate's stated title (50%), a flat bonus for preferred-role
// containment (+30), and a bonus when any past position title is similar
// (+20); capped at 100.
func computeTitleScore(jobTitle string, profile *types.UserProfile) types.TitleScore {
	title := strings.ToLower(jobTitle)
	userTitle := strings.ToLower(strings.TrimSpace(profile.ProfessionalTitle))

	roles := make([]string, 0, len(profile.PreferredRoles))
	for _, r := range profile.PreferredRoles {
		roles = append(roles, strings.ToLower(strings.TrimSpace(r)))
	}

	if userTitle == "" && len(roles) == 0 {
		return types.TitleScore{Score: 50}
	}

	sim := similarity.Score(title, userTitle)

	var matches []string
	roleBonus := 0
	for _, role := range roles {
		if role == "" {
			continue
		}
		if strings.Contains(title, role) || strings.Contains(role, title) {
			matches = append(matches, role)
			roleBonus = 30
		}
	}

	historyBonus := 0
	for _, exp := range profile.WorkExperience {
		expTitle := strings.ToLower(strings.TrimSpace(exp.Title))
		if expTitle == "" {
			continue
		}
		if similarity.Score(title, expTitle) > 0.5 {
			matches = append(matches, exp.Title)
			historyBonus = 20
		}
	}

	score := int(math.Round(sim*50)) + roleBonus + historyBonus
	if score > 100 {
		score = 100
	}

	return types.TitleScore{Score: score, Similarity: sim, Matches: matches}
}

// computeExperienceScore models both under- and over-qualification: 15 points
// off per missing year (floor 0), and 5 points off per year beyond twice the
// requirement (floor 70). No requirement scores 100 outright.
func computeExperienceScore(yearsRequired int, profile *types.UserProfile) types.ExperienceScore {
	userYears := profile.YearsExperience

	if yearsRequired == 0 {
		return types.ExperienceScore{Score: 100, UserYears: userYears}
	}

	difference := userYears - yearsRequired
	score := 100
	switch {
	case difference < 0:
		score = 100 + difference*15
		if score < 0 {
			score = 0
		}
	case difference > yearsRequired*2:
		score = 100 - (difference-yearsRequired*2)*5
		if score < 70 {
			score = 70
		}
	}

	return types.ExperienceScore{
		Score:      score,
		UserYears:  userYears,
		Required:   yearsRequired,
		Difference: difference,
	}
}

// degreeLevels maps degree keywords to ordinal ranks. Ordered slice so that
// the highest-held-degree scan is deterministic.
var degreeLevels = []struct {
	keyword string
	rank    int
}{
	{"doctorate", 4},
	{"phd", 4},
	{"m.b.a", 3},
	{"mba", 3},
	{"master", 3},
	{"m.s", 3},
	{"bachelor", 2},
	{"b.s", 2},
	{"b.a", 2},
	{"associate", 1},
}

func degreeRank(degree string) int {
	degree = strings.ToLower(degree)
	for _, dl := range degreeLevels {
		if strings.Contains(degree, dl.keyword) {
			return dl.rank
		}
	}
	return 0
}

// computeEducationScore compares the detected requirement against the
// candidate's highest held degree: 100 when met or exceeded, 70 when exactly
// one level short, 50 otherwise; 100 when nothing is required.
func computeEducationScore(requiredEducation string, profile *types.UserProfile) types.EducationScore {
	if requiredEducation == "" {
		return types.EducationScore{Score: 100, Meets: true, Level: "none required"}
	}

	requiredRank := degreeRank(requiredEducation)
	if requiredRank == 0 {
		requiredRank = 2 // unrecognized keywords default to bachelor level
	}

	highest := 0
	for _, edu := range profile.Education {
		if r := degreeRank(edu.Degree); r > highest {
			highest = r
		}
	}

	score := 50
	switch {
	case highest >= requiredRank:
		score = 100
	case highest == requiredRank-1:
		score = 70
	}

	return types.EducationScore{
		Score: score,
		Meets: highest >= requiredRank,
		Level: requiredEducation,
	}
}

// computeLocationScore scores 100 for remote-flagged jobs; a remote-only
// candidate against a non-remote job scores 30; otherwise preferred-location
// containment scores 100, hybrid acceptance 70, and anything else 50.
func computeLocationScore(jobLocation string, profile *types.UserProfile) types.LocationScore {
	loc := strings.ToLower(jobLocation)

	if strings.Contains(loc, "remote") || strings.Contains(loc, "anywhere") {
		return types.LocationScore{Score: 100, IsRemote: true, Matches: true}
	}

	preference := strings.ToLower(profile.RemotePreference)
	if preference == "remote" {
		return types.LocationScore{Score: 30}
	}

	matched := false
	for _, pl := range profile.PreferredLocations {
		pl = strings.ToLower(strings.TrimSpace(pl))
		if pl == "" {
			continue
		}
		if strings.Contains(loc, pl) || strings.Contains(pl, loc) {
			matched = true
			break
		}
	}

	score := 50
	switch {
	case matched:
		score = 100
	case preference == "hybrid":
		score = 70
	}

	return types.LocationScore{Score: score, Matches: matched}
}

// findMissingKeywords returns extracted keywords absent from the candidate's
// index, skipping short tokens and stop-words.
func findMissingKeywords(jobKeywords, userKeywords []string) []string {
	indexSet := make(map[string]bool, len(userKeywords))
	for _, kw := range userKeywords {
		indexSet[strings.ToLower(kw)] = true
	}

	var missing []string
	for _, kw := range jobKeywords {
		if indexSet[kw] || len(kw) <= 3 || extraction.IsStopWord(kw) {
			continue
		}
		missing = append(missing, kw)
	}
	return missing
}
