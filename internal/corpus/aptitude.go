package corpus

import "practicecoach/internal/model"

var aptitudeQuestions = []model.Question{
	{
		ID: "apt-001", Type: model.QuestionTypeAptitude, Difficulty: model.DifficultyEasy, Category: "Quantitative",
		Text:            "A train travels 300 km in 5 hours. What is its average speed? Explain your working.",
		SkillsEvaluated: []string{"Arithmetic", "Explaining reasoning"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 40, KeyPoints: []string{
			"Speed equals distance over time", "Answer is 60 km/h",
		}},
	},
	{
		ID: "apt-002", Type: model.QuestionTypeAptitude, Difficulty: model.DifficultyEasy, Category: "Logical",
		Text:            "If all roses are flowers and some flowers fade quickly, can we conclude that some roses fade quickly?",
		SkillsEvaluated: []string{"Deductive reasoning", "Clarity"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 50, KeyPoints: []string{
			"Conclusion does not follow", "Counterexample or Venn reasoning",
		}},
	},
	{
		ID: "apt-003", Type: model.QuestionTypeAptitude, Difficulty: model.DifficultyMedium, Category: "Quantitative",
		Text:            "A price rises by 20% and then falls by 20%. What is the net change? Explain why.",
		SkillsEvaluated: []string{"Percentages", "Explaining reasoning"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 60, KeyPoints: []string{
			"Net change is a 4% decrease", "Second change applies to a larger base",
		}},
	},
	{
		ID: "apt-004", Type: model.QuestionTypeAptitude, Difficulty: model.DifficultyMedium, Category: "Verbal",
		Text:            "Summarise the main argument of a passage you recently read in three sentences, then critique it.",
		SkillsEvaluated: []string{"Summarisation", "Critical thinking"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 100, KeyPoints: []string{
			"Accurate summary", "Identifies the central claim", "Evaluates the evidence",
		}},
	},
	{
		ID: "apt-005", Type: model.QuestionTypeAptitude, Difficulty: model.DifficultyHard, Category: "Logical",
		Text:            "You have 8 identical-looking balls, one slightly heavier. Using a balance scale twice, how do you find it?",
		SkillsEvaluated: []string{"Problem solving", "Structured explanation"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 100, KeyPoints: []string{
			"Split into groups of 3, 3 and 2", "First weighing compares the groups of 3", "Second weighing isolates the ball",
		}},
	},
	{
		ID: "apt-006", Type: model.QuestionTypeAptitude, Difficulty: model.DifficultyHard, Category: "Quantitative",
		Text:            "Estimate how many coffee cups are sold in your city each day. Walk through your assumptions.",
		SkillsEvaluated: []string{"Estimation", "Structured thinking", "Communication"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 150, KeyPoints: []string{
			"State the population", "Share of coffee drinkers", "Cups per drinker", "Sanity check the result",
		}},
	},
	{
		ID: "apt-007", Type: model.QuestionTypeAptitude, Difficulty: model.DifficultyEasy, Category: "Quantitative",
		Text:            "If 5 pens cost 40 rupees, how much do 8 pens cost? Explain your working.",
		SkillsEvaluated: []string{"Arithmetic", "Explaining reasoning"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 40, KeyPoints: []string{
			"Unit price is 8", "Answer is 64",
		}},
	},
	{
		ID: "apt-008", Type: model.QuestionTypeAptitude, Difficulty: model.DifficultyEasy, Category: "Logical",
		Text:            "What comes next in the series 2, 6, 12, 20, 30? Explain the pattern.",
		SkillsEvaluated: []string{"Pattern recognition", "Clarity"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 50, KeyPoints: []string{
			"Differences increase by 2", "Next term is 42",
		}},
	},
	{
		ID: "apt-009", Type: model.QuestionTypeAptitude, Difficulty: model.DifficultyEasy, Category: "Verbal",
		Text:            "Explain the difference between 'affect' and 'effect' with an example sentence for each.",
		SkillsEvaluated: []string{"Vocabulary", "Precision"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 60, KeyPoints: []string{
			"Affect is usually a verb", "Effect is usually a noun", "Correct example sentences",
		}},
	},
	{
		ID: "apt-010", Type: model.QuestionTypeAptitude, Difficulty: model.DifficultyMedium, Category: "Quantitative",
		Text:            "Two workers finish a job in 6 days together; one alone takes 10 days. How long does the other take alone?",
		SkillsEvaluated: []string{"Work rates", "Explaining reasoning"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 70, KeyPoints: []string{
			"Combined rate is one sixth", "Subtract one tenth", "Answer is 15 days",
		}},
	},
	{
		ID: "apt-011", Type: model.QuestionTypeAptitude, Difficulty: model.DifficultyMedium, Category: "Logical",
		Text:            "Five people sit in a row. A is left of B, C is at one end, and D is next to E. Describe one valid arrangement and how you checked it.",
		SkillsEvaluated: []string{"Deductive reasoning", "Structured explanation"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 90, KeyPoints: []string{
			"A valid arrangement", "Each constraint checked", "Systematic approach",
		}},
	},
	{
		ID: "apt-012", Type: model.QuestionTypeAptitude, Difficulty: model.DifficultyMedium, Category: "Data interpretation",
		Text:            "Sales grew from 120 to 150 units, then fell to 135. Describe the trend in percentage terms.",
		SkillsEvaluated: []string{"Percentages", "Data communication"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 70, KeyPoints: []string{
			"25% increase", "10% decrease", "Net 12.5% growth",
		}},
	},
	{
		ID: "apt-013", Type: model.QuestionTypeAptitude, Difficulty: model.DifficultyHard, Category: "Quantitative",
		Text:            "A bag has 3 red and 5 blue balls. Two are drawn without replacement. What is the probability both are red? Explain.",
		SkillsEvaluated: []string{"Probability", "Explaining reasoning"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 80, KeyPoints: []string{
			"First draw 3 over 8", "Second draw 2 over 7", "Answer is 3 over 28",
		}},
	},
	{
		ID: "apt-014", Type: model.QuestionTypeAptitude, Difficulty: model.DifficultyHard, Category: "Logical",
		Text:            "Three boxes are labelled apples, oranges and mixed, and every label is wrong. Picking one fruit from one box, how do you relabel them all?",
		SkillsEvaluated: []string{"Problem solving", "Structured explanation"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 110, KeyPoints: []string{
			"Pick from the box labelled mixed", "That box holds the fruit drawn", "Deduce the other two labels",
		}},
	},
	{
		ID: "apt-015", Type: model.QuestionTypeAptitude, Difficulty: model.DifficultyHard, Category: "Data interpretation",
		Text:            "A survey shows ice cream sales and drowning incidents rise together. What can you conclude? Explain.",
		SkillsEvaluated: []string{"Critical thinking", "Communication"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 100, KeyPoints: []string{
			"Correlation is not causation", "Confounding variable such as temperature", "What further data is needed",
		}},
	},
}
