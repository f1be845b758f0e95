package topic

// thermalThrottle is the thermal-feedback micro-lesson.
func thermalThrottle() Topic {
	return Topic{
		ID:          "thermal-throttle",
		Title:       "Why Your Laptop Slows Down When Hot",
		Tagline:     "Power, heat flow and the hysteresis that stops the flapping",
		Kind:        KindThermal,
		PhaseLabels: standardLabels(),

		Hook: "Every watt a processor draws becomes heat that must flow out through a heatsink. " +
			"When heat arrives faster than the cooler removes it, the chip climbs toward " +
			"temperatures that would destroy it in seconds. The only lever firmware has left " +
			"is to make the chip slower on purpose.",

		Predict: Prediction{
			Prompt: "A laptop runs a sustained 100% workload with a modest cooler. What does its temperature do over the first minute?",
			Options: []Option{
				{ID: "a", Label: "Climbs linearly forever until shutdown"},
				{ID: "b", Label: "Rises quickly, then levels toward an equilibrium set by the cooler"},
				{ID: "c", Label: "Stays at ambient, the fan removes heat instantly"},
				{ID: "d", Label: "Oscillates wildly between hot and cold"},
			},
			CorrectID: "b",
		},

		PlayHint: "Push the workload up and watch temperature chase its equilibrium. Starve the cooling and find the throttle point.",

		Review: "Temperature approaches target = ambient + power × thermal resistance, exponentially, " +
			"like a capacitor charging. Better cooling lowers the resistance and therefore the " +
			"equilibrium; more power raises it. The chip only throttles when that equilibrium sits " +
			"above the limit the silicon can tolerate.",

		TwistPredict: Prediction{
			Prompt: "The throttle engages at 95°C. If it released again the instant temperature dipped below 95°C, what would you observe?",
			Options: []Option{
				{ID: "a", Label: "Smooth, stable clock speed"},
				{ID: "b", Label: "Rapid on/off flapping around the threshold", Correct: true},
				{ID: "c", Label: "Permanent throttling"},
				{ID: "d", Label: "Nothing, release timing is cosmetic"},
			},
			CorrectID: "b",
		},

		TwistPlayHint: "Hold the chip near the threshold and watch the throttle state. Note how far temperature must fall before it releases.",

		TwistReview: "Throttling cools the chip, which would immediately un-throttle it, which heats it " +
			"again, cycling many times a second. Real governors add a hysteresis band: engage at " +
			"95°C, release only below 85°C. Inside the band the state holds, trading a little " +
			"performance for stability.",

		Applications: []Application{
			{
				Title:       "Phone SoC governors",
				Description: "A fanless phone rides the throttle constantly under load; sustained-performance scores, not peak scores, tell you how good the thermal design is.",
				Stats: []Stat{
					{Label: "Peak vs sustained", Value: "up to -40%"},
					{Label: "Cooling", Value: "passive only"},
				},
			},
			{
				Title:       "Data center setpoints",
				Description: "Server rooms run as warm as reliability allows; every degree of allowed inlet temperature saves enormous chiller power across thousands of machines.",
				Stats: []Stat{
					{Label: "Typical inlet", Value: "27°C"},
					{Label: "Cooling share of power", Value: "~30%"},
				},
			},
			{
				Title:       "Thermostat dead-bands",
				Description: "Home thermostats use the same hysteresis trick: heat on at 19°C, off at 21°C, so the furnace cycles minutes apart instead of seconds.",
				Stats: []Stat{
					{Label: "Dead-band", Value: "1-2°C"},
					{Label: "Purpose", Value: "no short-cycling"},
				},
			},
			{
				Title:       "Laptop boost windows",
				Description: "Turbo modes deliberately overshoot sustainable power for tens of seconds, spending the heatsink's thermal mass as a budget before settling to steady state.",
				Stats: []Stat{
					{Label: "Boost budget", Value: "PL2 > PL1"},
					{Label: "Window", Value: "~28 s"},
				},
			},
		},

		Questions: []Question{
			{
				ID:       "q1",
				Scenario: "Dynamic power scales with the square of voltage times clock speed.",
				Prompt:   "Dropping voltage by 10% at constant clock cuts dynamic power by roughly…",
				Options: []Option{
					{ID: "a", Label: "10%"},
					{ID: "b", Label: "19%", Correct: true},
					{ID: "c", Label: "31%"},
					{ID: "d", Label: "50%"},
				},
				Explanation: "0.9² = 0.81, a 19% drop. The squared voltage term is why throttling lowers voltage along with clock.",
			},
			{
				ID:       "q2",
				Scenario: "A chip dissipates 50 W through a cooler with 1°C/W effective resistance, in a 25°C room.",
				Prompt:   "What equilibrium temperature does it approach?",
				Options: []Option{
					{ID: "a", Label: "50°C"},
					{ID: "b", Label: "75°C", Correct: true},
					{ID: "c", Label: "100°C"},
					{ID: "d", Label: "25°C"},
				},
				Explanation: "Target = ambient + power × resistance = 25 + 50×1 = 75°C.",
			},
			{
				ID:       "q3",
				Scenario: "The same chip gets a cooler twice as capable.",
				Prompt:   "The new equilibrium is…",
				Options: []Option{
					{ID: "a", Label: "50°C", Correct: true},
					{ID: "b", Label: "62.5°C"},
					{ID: "c", Label: "37.5°C"},
					{ID: "d", Label: "75°C, cooling capacity is irrelevant"},
				},
				Explanation: "Doubling capacity halves the resistance: 25 + 50×0.5 = 50°C.",
			},
			{
				ID:       "q4",
				Scenario: "Temperature rises fast at first, then flattens as it nears its target.",
				Prompt:   "Which everyday system behaves the same way?",
				Options: []Option{
					{ID: "a", Label: "A capacitor charging through a resistor", Correct: true},
					{ID: "b", Label: "A ball in free fall"},
					{ID: "c", Label: "A pendulum swinging"},
					{ID: "d", Label: "A rocket burning fuel"},
				},
				Explanation: "Exponential approach: the rate of change is proportional to the remaining gap, exactly like RC charging.",
			},
			{
				ID:       "q5",
				Scenario: "A governor throttles at 95°C and releases at 85°C.",
				Prompt:   "At a steady 90°C while throttled, the throttle state is…",
				Options: []Option{
					{ID: "a", Label: "Released, 90 is below 95"},
					{ID: "b", Label: "Held, 90 is inside the dead-band", Correct: true},
					{ID: "c", Label: "Flapping on and off"},
					{ID: "d", Label: "Undefined"},
				},
				Explanation: "Hysteresis keeps the current state anywhere between the two thresholds; only crossing 85°C downward releases it.",
			},
			{
				ID:       "q6",
				Scenario: "Leakage current grows as silicon heats up.",
				Prompt:   "Why does this make overheating self-reinforcing?",
				Options: []Option{
					{ID: "a", Label: "Hotter chips draw more static power, adding more heat", Correct: true},
					{ID: "b", Label: "Heat raises clock speed automatically"},
					{ID: "c", Label: "The fan slows down when hot"},
					{ID: "d", Label: "It does not, leakage falls with temperature"},
				},
				Explanation: "Static power rises with temperature, which raises temperature further, a positive feedback loop the cooler must overpower.",
			},
			{
				ID:       "q7",
				Scenario: "A throttling chip multiplies clock by 0.95 each control tick.",
				Prompt:   "Why decay gradually instead of jumping straight to the floor clock?",
				Options: []Option{
					{ID: "a", Label: "To shed only as much performance as the thermals require", Correct: true},
					{ID: "b", Label: "The clock circuit cannot change quickly"},
					{ID: "c", Label: "To keep benchmarks high"},
					{ID: "d", Label: "Voltage cannot follow a step change"},
				},
				Explanation: "Gradual decay finds the highest sustainable operating point instead of overshooting to worst-case slowness.",
			},
			{
				ID:       "q8",
				Scenario: "Two identical laptops run the same benchmark; one sits on a duvet.",
				Prompt:   "The duvet laptop scores lower because…",
				Options: []Option{
					{ID: "a", Label: "Blocked airflow raised thermal resistance, so it throttled sooner", Correct: true},
					{ID: "b", Label: "Static electricity slowed the CPU"},
					{ID: "c", Label: "The battery drained faster"},
					{ID: "d", Label: "Software detected the soft surface"},
				},
				Explanation: "Same power, worse heat path: the equilibrium temperature rose past the throttle point earlier in the run.",
			},
			{
				ID:       "q9",
				Scenario: "A chip hits its critical ceiling despite throttling to its floor clock.",
				Prompt:   "What does firmware do next?",
				Options: []Option{
					{ID: "a", Label: "Nothing, the ceiling is advisory"},
					{ID: "b", Label: "Emergency shutdown to protect the silicon", Correct: true},
					{ID: "c", Label: "Raise voltage to push through"},
					{ID: "d", Label: "Disable the temperature sensor"},
				},
				Explanation: "The critical trip is a hard safety line; if throttling cannot hold it, the platform powers off rather than cook the die.",
			},
			{
				ID:       "q10",
				Scenario: "A review praises a laptop's 'sustained performance'.",
				Prompt:   "That phrase tells you the machine…",
				Options: []Option{
					{ID: "a", Label: "Has a high peak turbo number"},
					{ID: "b", Label: "Holds clocks near peak at thermal equilibrium", Correct: true},
					{ID: "c", Label: "Never runs its fan"},
					{ID: "d", Label: "Uses the fastest memory"},
				},
				Explanation: "Sustained performance measures the steady state after the thermal mass is spent, where cooling design, not silicon, is the limit.",
			},
		},

		PassThreshold: 7,
	}
}
