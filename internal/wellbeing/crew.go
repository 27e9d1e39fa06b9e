package wellbeing

import "time"

// Astronaut is one crew member shown in the dashboard selector.
type Astronaut struct {
	Name                 string `yaml:"name" json:"name"`
	Agency               string `yaml:"agency" json:"agency"`
	Mission              string `yaml:"mission" json:"mission"`
	Duration             string `yaml:"duration" json:"duration"`
	Specialization       string `yaml:"specialization" json:"specialization"`
	PsychologicalProfile string `yaml:"psychological_profile" json:"psychological_profile"`
}

// DefaultMissionStart is the day mission day counting starts from.
var DefaultMissionStart = time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

// DefaultCrew returns the built-in roster.
func DefaultCrew() []Astronaut {
	return []Astronaut{
		{"Sunita Williams", "NASA", "Extended ISS Mission", "9 months", "Flight Engineer", "High resilience, potential isolation stress"},
		{"Butch Wilmore", "NASA", "Extended ISS Mission", "9 months", "Commander", "Leadership stress, crew responsibility"},
		{"Nick Hague", "NASA", "ISS Expedition", "6 months", "Flight Engineer", "Experienced, stable mental health"},
		{"Don Pettit", "NASA", "ISS Expedition", "6 months", "Mission Specialist", "Creative, needs intellectual stimulation"},
		{"Anne McClain", "NASA", "Crew-10", "6 months", "Commander", "Military background, stress resilient"},
		{"Zena Cardman", "NASA", "Crew-11", "6 months", "Mission Specialist", "First flight, adaptation anxiety potential"},
	}
}

// FindAstronaut returns the crew member with the given name.
func FindAstronaut(crew []Astronaut, name string) (Astronaut, bool) {
	for _, a := range crew {
		if a.Name == name {
			return a, true
		}
	}
	return Astronaut{}, false
}

// MissionDay is the number of whole days elapsed since start. Days before the
// start are reported as zero.
func MissionDay(start, now time.Time) int {
	d := now.Sub(start)
	if d < 0 {
		return 0
	}
	return int(d / (24 * time.Hour))
}
