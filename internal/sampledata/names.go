package sampledata

import (
	"fmt"
	"strconv"
)

// Team names include a comma and a non-ASCII letter so generated files
// exercise quoting and case folding.
var teamNames = []string{
	"Norway", "Kenya", "Jamaica", "Korea, Republic of", "Côte d'Ivoire",
	"Brazil", "Japan", "Canada", "Ethiopia", "New Zealand",
	"Germany", "Chile", "Morocco", "Finland", "Peru", "Ireland",
}

var firstNames = []string{
	"Ada", "Bruno", "Chiara", "Dawit", "Elin", "Farah", "Goran", "Hana",
	"Ivo", "Jun", "Kofi", "Lena", "Mateo", "Nia", "Oskar", "Priya",
}

var lastNames = []string{
	"Achebe", "Berg", "Costa", "Dlamini", "Eriksen", "Fujita", "Garcia",
	"Haile", "Ivanova", "Jensen", "Kipchoge", "Larsen", "Moreau", "Nakamura",
}

var eventNames = []string{
	"100m", "200m", "400m", "800m", "1500m", "5000m", "10000m", "Marathon",
	"110m Hurdles", "High Jump", "Long Jump", "Triple Jump", "Pole Vault",
	"Shot Put", "Discus", "Javelin",
}

func teamName(i int) string {
	if i < len(teamNames) {
		return teamNames[i]
	}
	return fmt.Sprintf("Team %d", i+1)
}

// athleteName is unique for every i.
func athleteName(i int) string {
	first := firstNames[i%len(firstNames)]
	last := lastNames[(i/len(firstNames))%len(lastNames)]
	name := first + " " + last
	if round := i / (len(firstNames) * len(lastNames)); round > 0 {
		name += " " + strconv.Itoa(round+1)
	}
	return name
}

func eventName(i int) string {
	if i < len(eventNames) {
		return eventNames[i]
	}
	return fmt.Sprintf("Event %d", i+1)
}
