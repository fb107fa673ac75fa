package catalog

// builtin is the catalog shipped with the binary, validated once at startup.
var builtin *Catalog

func init() {
	c, err := New(seedPools())
	if err != nil {
		panic(err)
	}
	builtin = c
}

// Default returns the built-in question catalog.
func Default() *Catalog {
	return builtin
}

// seedPools returns the built-in question pools.
func seedPools() map[Domain][]Question {
	return map[Domain][]Question{
		DomainHeadThroat: {
			{ID: "ht_01", Text: "How long have you had the headache?", Priority: 5, Options: []Option{{Key: "a", Text: "< 1 day"}, {Key: "b", Text: "1-3 days"}, {Key: "c", Text: "> 1 week"}}},
			{ID: "ht_02", Text: "Is the pain localized to one side?", Priority: 5, Options: []Option{{Key: "a", Text: "Yes, right"}, {Key: "b", Text: "Yes, left"}, {Key: "c", Text: "No, generalized"}}},
			{ID: "ht_03", Text: "Do you have sensitivity to light?", Priority: 4, Options: []Option{{Key: "a", Text: "Severe"}, {Key: "b", Text: "Mild"}, {Key: "c", Text: "None"}}},
			{ID: "ht_04", Text: "Any difficulty swallowing?", Priority: 4, Options: []Option{{Key: "a", Text: "Yes, severe"}, {Key: "b", Text: "Yes, mild"}, {Key: "c", Text: "No"}}},
			{ID: "ht_05", Text: "Do you have a stiff neck?", Priority: 5, Options: []Option{{Key: "a", Text: "Cannot move"}, {Key: "b", Text: "Slightly stiff"}, {Key: "c", Text: "No"}}},
			{ID: "ht_06", Text: "Are you experiencing dizziness?", Priority: 3, Options: []Option{{Key: "a", Text: "Spinning sensation"}, {Key: "b", Text: "Lightheaded"}, {Key: "c", Text: "No"}}},
			{ID: "ht_07", Text: "Any vision changes?", Priority: 5, Options: []Option{{Key: "a", Text: "Blurry/Double"}, {Key: "b", Text: "Aura/Spots"}, {Key: "c", Text: "None"}}},
			{ID: "ht_08", Text: "Is the throat red or swollen?", Priority: 3, Options: []Option{{Key: "a", Text: "Very red/patches"}, {Key: "b", Text: "Slightly red"}, {Key: "c", Text: "Normal"}}},
			{ID: "ht_09", Text: "Do you have ear pain?", Priority: 3, Options: []Option{{Key: "a", Text: "Sharp pain"}, {Key: "b", Text: "Dull ache"}, {Key: "c", Text: "No"}}},
			{ID: "ht_10", Text: "Any nasal congestion?", Priority: 2, Options: []Option{{Key: "a", Text: "Thick discharge"}, {Key: "b", Text: "Runny nose"}, {Key: "c", Text: "Blocked only"}}},
			{ID: "ht_11", Text: "History of migraines?", Priority: 2, Options: []Option{{Key: "a", Text: "Frequent"}, {Key: "b", Text: "Occasional"}, {Key: "c", Text: "Never"}}},
			{ID: "ht_12", Text: "Did you experience head trauma recently?", Priority: 5, Options: []Option{{Key: "a", Text: "Yes, <24h"}, {Key: "b", Text: "Yes, <1 week"}, {Key: "c", Text: "No"}}},
			{ID: "ht_13", Text: "Is the pain throbbing?", Priority: 3, Options: []Option{{Key: "a", Text: "Yes"}, {Key: "b", Text: "No, constant"}, {Key: "c", Text: "No, shooting"}}},
			{ID: "ht_14", Text: "Does bending forward worsen pain?", Priority: 3, Options: []Option{{Key: "a", Text: "Significantly"}, {Key: "b", Text: "Slightly"}, {Key: "c", Text: "No"}}},
			{ID: "ht_15", Text: "Have you lost your voice?", Priority: 2, Options: []Option{{Key: "a", Text: "Fully"}, {Key: "b", Text: "Hoarse"}, {Key: "c", Text: "No"}}},
		},
		DomainChest: {
			{ID: "ch_01", Text: "Describe the chest pain.", Priority: 5, Options: []Option{{Key: "a", Text: "Crushing/Pressure"}, {Key: "b", Text: "Sharp/Stabbing"}, {Key: "c", Text: "Burning"}}},
			{ID: "ch_02", Text: "Does the pain radiate?", Priority: 5, Options: []Option{{Key: "a", Text: "To arm/jaw"}, {Key: "b", Text: "To back"}, {Key: "c", Text: "No"}}},
			{ID: "ch_03", Text: "Shortness of breath?", Priority: 5, Options: []Option{{Key: "a", Text: "At rest"}, {Key: "b", Text: "On exertion"}, {Key: "c", Text: "None"}}},
			{ID: "ch_04", Text: "Do you have a cough?", Priority: 4, Options: []Option{{Key: "a", Text: "Productive (phlegm)"}, {Key: "b", Text: "Dry"}, {Key: "c", Text: "No"}}},
			{ID: "ch_05", Text: "Is your heart beating fast?", Priority: 4, Options: []Option{{Key: "a", Text: "Racing/Fluttering"}, {Key: "b", Text: "Slightly fast"}, {Key: "c", Text: "Normal"}}},
			{ID: "ch_06", Text: "Any history of heart disease?", Priority: 4, Options: []Option{{Key: "a", Text: "Yes, diagnosed"}, {Key: "b", Text: "Family history"}, {Key: "c", Text: "No"}}},
			{ID: "ch_07", Text: "Does deep breathing hurt?", Priority: 3, Options: []Option{{Key: "a", Text: "Yes, sharp pain"}, {Key: "b", Text: "Uncomfortable"}, {Key: "c", Text: "No"}}},
			{ID: "ch_08", Text: "Have you fainted recently?", Priority: 5, Options: []Option{{Key: "a", Text: "Yes"}, {Key: "b", Text: "Felt nearly faint"}, {Key: "c", Text: "No"}}},
			{ID: "ch_09", Text: "Are your ankles swollen?", Priority: 3, Options: []Option{{Key: "a", Text: "Yes, both"}, {Key: "b", Text: "Yes, one"}, {Key: "c", Text: "No"}}},
			{ID: "ch_10", Text: "Is the pain triggered by stress?", Priority: 2, Options: []Option{{Key: "a", Text: "Usually"}, {Key: "b", Text: "Sometimes"}, {Key: "c", Text: "No"}}},
			{ID: "ch_11", Text: "Any recent long travel?", Priority: 4, Options: []Option{{Key: "a", Text: "Yes, flight/drive"}, {Key: "b", Text: "No"}}},
			{ID: "ch_12", Text: "Do you smoke?", Priority: 3, Options: []Option{{Key: "a", Text: "Current smoker"}, {Key: "b", Text: "Ex-smoker"}, {Key: "c", Text: "Never"}}},
			{ID: "ch_13", Text: "Is there wheezing?", Priority: 4, Options: []Option{{Key: "a", Text: "Audible wheeze"}, {Key: "b", Text: "Only on exertion"}, {Key: "c", Text: "No"}}},
			{ID: "ch_14", Text: "Fever presence?", Priority: 4, Options: []Option{{Key: "a", Text: "High (>38°C)"}, {Key: "b", Text: "Mild"}, {Key: "c", Text: "No"}}},
			{ID: "ch_15", Text: "Does nitroglycerin help?", Priority: 5, Options: []Option{{Key: "a", Text: "Yes, immediately"}, {Key: "b", Text: "No / Not prescribed"}, {Key: "c", Text: "Not applicable"}}},
		},
		DomainGeneral: {
			{ID: "gn_01", Text: "Current body temperature?", Priority: 5, Options: []Option{{Key: "a", Text: "High (>38.5°C)"}, {Key: "b", Text: "Elevated (37.5-38.5°C)"}, {Key: "c", Text: "Normal"}}},
			{ID: "gn_02", Text: "General energy level?", Priority: 3, Options: []Option{{Key: "a", Text: "Bedridden/Exhausted"}, {Key: "b", Text: "Tired but functional"}, {Key: "c", Text: "Normal"}}},
			{ID: "gn_03", Text: "Appetite changes?", Priority: 2, Options: []Option{{Key: "a", Text: "No appetite"}, {Key: "b", Text: "Reduced"}, {Key: "c", Text: "Normal"}}},
			{ID: "gn_04", Text: "Any recent weight loss?", Priority: 3, Options: []Option{{Key: "a", Text: "Unexplained >5kg"}, {Key: "b", Text: "Slight"}, {Key: "c", Text: "Stable"}}},
			{ID: "gn_05", Text: "Sleep quality?", Priority: 2, Options: []Option{{Key: "a", Text: "Insomnia/Disrupted"}, {Key: "b", Text: "Excessive sleep"}, {Key: "c", Text: "Normal"}}},
			{ID: "gn_06", Text: "Hydration status?", Priority: 4, Options: []Option{{Key: "a", Text: "Thirsty/Dry mouth"}, {Key: "b", Text: "Drinking less"}, {Key: "c", Text: "Normal"}}},
			{ID: "gn_07", Text: "Pain severity (1-10)?", Priority: 5, Options: []Option{{Key: "a", Text: "Severe (8-10)"}, {Key: "b", Text: "Moderate (4-7)"}, {Key: "c", Text: "Mild (1-3)"}}},
			{ID: "gn_08", Text: "Speed of onset?", Priority: 5, Options: []Option{{Key: "a", Text: "Sudden (mins/hours)"}, {Key: "b", Text: "Gradual (days)"}, {Key: "c", Text: "Chronic (weeks+)"}}},
			{ID: "gn_09", Text: "Do you have chills/shivers?", Priority: 4, Options: []Option{{Key: "a", Text: "Yes, shaking"}, {Key: "b", Text: "Mild feeling"}, {Key: "c", Text: "No"}}},
			{ID: "gn_10", Text: "Muscle aches?", Priority: 3, Options: []Option{{Key: "a", Text: "Generalized severe"}, {Key: "b", Text: "Local soreness"}, {Key: "c", Text: "None"}}},
			{ID: "gn_11", Text: "Any known allergies?", Priority: 4, Options: []Option{{Key: "a", Text: "Severe/Anaphylaxis"}, {Key: "b", Text: "Mild/Seasonal"}, {Key: "c", Text: "None"}}},
			{ID: "gn_12", Text: "Current medications?", Priority: 3, Options: []Option{{Key: "a", Text: "Multiple daily"}, {Key: "b", Text: "Occasional"}, {Key: "c", Text: "None"}}},
			{ID: "gn_13", Text: "Recent travel abroad?", Priority: 3, Options: []Option{{Key: "a", Text: "Yes, last 2 weeks"}, {Key: "b", Text: "Yes, >2 weeks ago"}, {Key: "c", Text: "No"}}},
			{ID: "gn_14", Text: "Any skin rash?", Priority: 3, Options: []Option{{Key: "a", Text: "Spreading/Itchy"}, {Key: "b", Text: "Localized"}, {Key: "c", Text: "None"}}},
			{ID: "gn_15", Text: "Mental state?", Priority: 4, Options: []Option{{Key: "a", Text: "Confused/Disoriented"}, {Key: "b", Text: "Anxious"}, {Key: "c", Text: "Clear"}}},
		},
	}
}
