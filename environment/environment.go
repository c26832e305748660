// This file is part of Zube.
//
// Zube is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Zube is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Zube.  If not, see <https://www.gnu.org/licenses/>.

// Package environment is the context in which a bridge instance runs. It
// collects together the things that are shared by every component of the
// bridge but which are not part of the hardware: preferences, the random
// number source and the label that identifies the instance.
//
// The Environment type implements the logger.Permission interface. Only the
// main instance is allowed to write to the central log.
package environment

import (
	"github.com/jetsetilly/zube/hardware/preferences"
	"github.com/jetsetilly/zube/random"
)

// Label is used to name the environment.
type Label string

// List of valid labels.
const (
	MainEmulation Label = ""
	SoakEmulation Label = "soak"
	ShadowModel   Label = "shadow"
	Regression    Label = "regression"
)

// Environment is used to provide context for a bridge instance.
type Environment struct {
	Label Label

	// any randomisation required by the bridge or a bench should be
	// retrieved through this structure
	Random *random.Random

	// the bridge preferences
	Prefs *preferences.Preferences
}

// NewEnvironment is the preferred method of initialisation for the
// Environment type. If prefs is nil then preferences are loaded from disk.
// The clock can be nil and plumbed in later with Random.Plumb().
func NewEnvironment(label Label, clock random.Clock, prefs *preferences.Preferences) (*Environment, error) {
	env := &Environment{
		Label:  label,
		Random: random.NewRandom(clock),
	}

	if prefs == nil {
		var err error
		prefs, err = preferences.NewPreferences()
		if err != nil {
			return nil, err
		}
	}
	env.Prefs = prefs

	return env, nil
}

// Normalise ensures the environment is in a known default state. Useful for
// testing and for replaying soak runs.
func (env *Environment) Normalise() {
	env.Random.ZeroSeed = true
	env.Random.Reseed(0)
	env.Prefs.SetDefaults()
}

// IsMainEmulation returns true if the environment is for the main instance.
func (env *Environment) IsMainEmulation() bool {
	return env.Label == MainEmulation
}

// AllowLogging implements the logger.Permission interface.
// A nil environment never logs.
func (env *Environment) AllowLogging() bool {
	if env == nil {
		return false
	}
	return env.IsMainEmulation()
}
