package utils

import "time"

// CalculateAge returns whole years since birthday.
func CalculateAge(birthday time.Time) int {
	now := time.Now()
	age := now.Year() - birthday.Year()
	if now.Before(birthday.AddDate(age, 0, 0)) {
		age--
	}
	return age
}

// AgeGroup maps an age in years to a reference-table age group. Ages under 19
// fall into the youngest adult group; the table carries adult values only.
func AgeGroup(age int) string {
	switch {
	case age <= 30:
		return "19-30"
	case age <= 50:
		return "31-50"
	case age <= 70:
		return "51-70"
	default:
		return "71+"
	}
}
