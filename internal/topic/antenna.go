package topic

// antennaGain is the aperture/gain micro-lesson.
func antennaGain() Topic {
	return Topic{
		ID:          "antenna-gain",
		Title:       "Why Satellite Dishes Are Big",
		Tagline:     "Aperture, wavelength and the narrow beam you pay for gain with",
		Kind:        KindAntenna,
		PhaseLabels: standardLabels(),

		Hook: "An antenna cannot amplify anything; it has no power source. Yet a three-meter dish " +
			"is described as having 10,000 times the 'gain' of a bare wire. The trick is pure " +
			"geometry: focus all the radiated energy into a narrower cone, and whoever sits in " +
			"that cone hears you ten thousand times louder.",

		Predict: Prediction{
			Prompt: "You double a dish's diameter while keeping frequency fixed. Its gain…",
			Options: []Option{
				{ID: "a", Label: "Doubles (+3 dB)"},
				{ID: "b", Label: "Quadruples (+6 dB)"},
				{ID: "c", Label: "Is unchanged, gain depends only on frequency"},
				{ID: "d", Label: "Increases eightfold (+9 dB)"},
			},
			CorrectID: "b",
		},

		PlayHint: "Sweep the diameter and frequency sliders. Watch gain climb as the beam tightens.",

		Review: "Gain goes with the aperture area: (πD/λ)² times efficiency. Doubling the diameter " +
			"quadruples the area, which quadruples the linear gain, +6.02 dB. Raising the frequency " +
			"shrinks the wavelength and has exactly the same effect as growing the dish.",

		TwistPredict: Prediction{
			Prompt: "That high-gain dish is aimed 2° away from the satellite. What does the link see?",
			Options: []Option{
				{ID: "a", Label: "Nearly full gain, 2° is negligible"},
				{ID: "b", Label: "A drastic loss, the beam may be narrower than the pointing error"},
				{ID: "c", Label: "Exactly 3 dB loss, always"},
				{ID: "d", Label: "More gain, off-axis lobes are stronger"},
			},
			CorrectID: "b",
		},

		TwistPlayHint: "Fix the diameter, then walk the off-axis angle outward. Find where the pattern falls off a cliff.",

		TwistReview: "Beamwidth shrinks as roughly 70/(D/λ) degrees, so the same geometry that buys gain " +
			"narrows the cone. A dish with a 0.5° beam loses most of its advantage at a 1° pointing " +
			"error; the sinc-squared pattern has deep nulls between its sidelobes. High gain is a " +
			"contract: you must point it, and keep pointing it.",

		Applications: []Application{
			{
				Title:       "Deep space ground stations",
				Description: "70-meter dishes squeeze out enough gain to hear a 20-watt transmitter from beyond Pluto, at the cost of tracking the spacecraft to fractions of a degree.",
				Stats: []Stat{
					{Label: "Gain", Value: "~74 dBi"},
					{Label: "Beamwidth", Value: "< 0.02°"},
				},
			},
			{
				Title:       "Home satellite dishes",
				Description: "A 60 cm Ku-band dish is the sweet spot: enough gain for the link budget while a windy-day pointing error still stays inside the beam.",
				Stats: []Stat{
					{Label: "Gain", Value: "~35 dBi"},
					{Label: "Beamwidth", Value: "~3°"},
				},
			},
			{
				Title:       "5G millimeter-wave cells",
				Description: "Phone-sized arrays get dish-like gain at 28 GHz because the wavelength is tiny; the beam is steered electronically to follow you down the street.",
				Stats: []Stat{
					{Label: "Array", Value: "64+ elements"},
					{Label: "Steering", Value: "electronic"},
				},
			},
			{
				Title:       "Radio astronomy interferometers",
				Description: "Linking dishes kilometers apart synthesizes one giant aperture; resolution comes from the spacing, collecting area from the dishes themselves.",
				Stats: []Stat{
					{Label: "Baseline", Value: "up to 1000s of km"},
					{Label: "Technique", Value: "VLBI"},
				},
			},
		},

		Questions: []Question{
			{
				ID:       "q1",
				Scenario: "An antenna has no amplifier or power source.",
				Prompt:   "Where does its 'gain' come from?",
				Options: []Option{
					{ID: "a", Label: "Concentrating radiation into a narrower beam", Correct: true},
					{ID: "b", Label: "Resonance amplifying the signal"},
					{ID: "c", Label: "Reflector material boosting field strength"},
					{ID: "d", Label: "Induced currents adding energy"},
				},
				Explanation: "Gain is directivity: the same total power focused into less solid angle, measured against an isotropic radiator.",
			},
			{
				ID:       "q2",
				Scenario: "A dish grows from 1 m to 2 m diameter at fixed frequency.",
				Prompt:   "Its gain changes by…",
				Options: []Option{
					{ID: "a", Label: "+3 dB"},
					{ID: "b", Label: "+6 dB", Correct: true},
					{ID: "c", Label: "+10 dB"},
					{ID: "d", Label: "0 dB"},
				},
				Explanation: "Gain scales with (πD/λ)²; doubling D quadruples the linear gain, and 10·log10(4) ≈ 6.02 dB.",
			},
			{
				ID:       "q3",
				Scenario: "A signal at 10 GHz travels at the speed of light.",
				Prompt:   "Its wavelength is about…",
				Options: []Option{
					{ID: "a", Label: "3 m"},
					{ID: "b", Label: "30 cm"},
					{ID: "c", Label: "3 cm", Correct: true},
					{ID: "d", Label: "3 mm"},
				},
				Explanation: "λ = c/f = 3×10⁸ / 10¹⁰ = 0.03 m.",
			},
			{
				ID:       "q4",
				Scenario: "Two dishes have the same diameter; one operates at 4 GHz, the other at 12 GHz.",
				Prompt:   "The 12 GHz dish has…",
				Options: []Option{
					{ID: "a", Label: "More gain and a narrower beam", Correct: true},
					{ID: "b", Label: "Less gain and a wider beam"},
					{ID: "c", Label: "The same gain"},
					{ID: "d", Label: "More gain and a wider beam"},
				},
				Explanation: "Higher frequency means smaller λ, so the dish is electrically larger: more diameters-in-wavelengths, more gain, tighter beam.",
			},
			{
				ID:       "q5",
				Scenario: "A dish is 100 wavelengths across.",
				Prompt:   "Using the k≈70 rule, its half-power beamwidth is about…",
				Options: []Option{
					{ID: "a", Label: "7°"},
					{ID: "b", Label: "0.7°", Correct: true},
					{ID: "c", Label: "70°"},
					{ID: "d", Label: "0.07°"},
				},
				Explanation: "Beamwidth ≈ 70/(D/λ) = 70/100 = 0.7 degrees.",
			},
			{
				ID:       "q6",
				Scenario: "Aperture efficiency is 0.6 rather than the ideal 1.0.",
				Prompt:   "What does that 0.6 account for?",
				Options: []Option{
					{ID: "a", Label: "Spillover, blockage and surface imperfections", Correct: true},
					{ID: "b", Label: "Atmospheric absorption"},
					{ID: "c", Label: "Receiver noise"},
					{ID: "d", Label: "Cable loss"},
				},
				Explanation: "Real feeds miss some of the reflector, struts block part of it, and the surface is imperfect; only ~60% of the ideal aperture works.",
			},
			{
				ID:       "q7",
				Scenario: "The radiation pattern follows a sinc-squared shape off axis.",
				Prompt:   "The deep notches between sidelobes are called…",
				Options: []Option{
					{ID: "a", Label: "Nulls", Correct: true},
					{ID: "b", Label: "Beamwidths"},
					{ID: "c", Label: "Apertures"},
					{ID: "d", Label: "Harmonics"},
				},
				Explanation: "At pattern nulls, contributions across the aperture cancel; a source sitting in a null effectively disappears.",
			},
			{
				ID:       "q8",
				Scenario: "A 0.5°-beam dish is mispointed by 1°.",
				Prompt:   "The received level is…",
				Options: []Option{
					{ID: "a", Label: "Down a fraction of a dB"},
					{ID: "b", Label: "Down tens of dB, outside the main lobe", Correct: true},
					{ID: "c", Label: "Exactly half power"},
					{ID: "d", Label: "Higher, on a sidelobe peak"},
				},
				Explanation: "Twice the half-power beamwidth off axis lands well past the main lobe edge, where the pattern has collapsed.",
			},
			{
				ID:       "q9",
				Scenario: "mmWave 5G works at 28 GHz with phone-sized antennas.",
				Prompt:   "Why can so small an array achieve high gain?",
				Options: []Option{
					{ID: "a", Label: "The tiny wavelength makes it many wavelengths across", Correct: true},
					{ID: "b", Label: "5G radios transmit more power"},
					{ID: "c", Label: "Phones use superconducting elements"},
					{ID: "d", Label: "It cannot, gain is low"},
				},
				Explanation: "At 28 GHz, λ ≈ 1 cm; a 6 cm array is ~6λ across, comparable in electrical size to a much larger low-band antenna.",
			},
			{
				ID:       "q10",
				Scenario: "A link budget needs +12 dB more antenna gain.",
				Prompt:   "Diameter must grow by a factor of…",
				Options: []Option{
					{ID: "a", Label: "2"},
					{ID: "b", Label: "4", Correct: true},
					{ID: "c", Label: "12"},
					{ID: "d", Label: "16"},
				},
				Explanation: "Each doubling adds ~6 dB, so +12 dB needs two doublings: 4x the diameter, 16x the area.",
			},
		},

		PassThreshold: 7,
	}
}
