package models

import (
	"errors"
	"fmt"
)

type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

type ActivityLevel string

const (
	Sedentary  ActivityLevel = "sedentary"
	Light      ActivityLevel = "light"
	Moderate   ActivityLevel = "moderate"
	Active     ActivityLevel = "active"
	VeryActive ActivityLevel = "very-active"
)

type Goal string

const (
	Lose     Goal = "lose"
	Maintain Goal = "maintain"
	Gain     Goal = "gain"
)

var ErrInvalidProfile = errors.New("invalid profile")

// UserProfile is the biometric input of a single calculation. Weight is in kg, height in cm.
type UserProfile struct {
	Age           float64       `json:"age"`
	Gender        Gender        `json:"gender"`
	Weight        float64       `json:"weight"`
	Height        float64       `json:"height"`
	ActivityLevel ActivityLevel `json:"activity_level"`
	Goal          Goal          `json:"goal"`
}

// Validate applies the input form ranges. The calculators never call it.
func (p UserProfile) Validate() error {
	switch {
	case p.Age < 15 || p.Age > 120:
		return fmt.Errorf("%w: age %v outside 15-120", ErrInvalidProfile, p.Age)
	case p.Weight < 30 || p.Weight > 300:
		return fmt.Errorf("%w: weight %v outside 30-300 kg", ErrInvalidProfile, p.Weight)
	case p.Height < 100 || p.Height > 250:
		return fmt.Errorf("%w: height %v outside 100-250 cm", ErrInvalidProfile, p.Height)
	}

	switch p.Gender {
	case Male, Female:
	default:
		return fmt.Errorf("%w: unknown gender %q", ErrInvalidProfile, p.Gender)
	}

	switch p.ActivityLevel {
	case Sedentary, Light, Moderate, Active, VeryActive:
	default:
		return fmt.Errorf("%w: unknown activity level %q", ErrInvalidProfile, p.ActivityLevel)
	}

	switch p.Goal {
	case Lose, Maintain, Gain:
	default:
		return fmt.Errorf("%w: unknown goal %q", ErrInvalidProfile, p.Goal)
	}
	return nil
}
