package corpus

import "practicecoach/internal/model"

var hrQuestions = []model.Question{
	{
		ID: "hr-001", Type: model.QuestionTypeHR, Difficulty: model.DifficultyEasy, Category: "Introduction",
		Text:            "Tell me about yourself.",
		SkillsEvaluated: []string{"Self-presentation", "Clarity", "Structure"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 120, KeyPoints: []string{
			"Current role or study", "Relevant experience", "Key strengths", "Why this opportunity",
		}},
	},
	{
		ID: "hr-002", Type: model.QuestionTypeHR, Difficulty: model.DifficultyEasy, Category: "Motivation",
		Text:            "Why do you want to work for our company?",
		SkillsEvaluated: []string{"Research", "Motivation", "Alignment"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 100, KeyPoints: []string{
			"Knowledge of the company", "Alignment with personal goals", "Contribution you can make",
		}},
	},
	{
		ID: "hr-003", Type: model.QuestionTypeHR, Difficulty: model.DifficultyEasy, Category: "Self-assessment",
		Text:            "What are your greatest strengths?",
		SkillsEvaluated: []string{"Self-awareness", "Evidence", "Confidence"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 90, KeyPoints: []string{
			"Two or three specific strengths", "Example backing each strength", "Relevance to the role",
		}},
	},
	{
		ID: "hr-004", Type: model.QuestionTypeHR, Difficulty: model.DifficultyEasy, Category: "Motivation",
		Text:            "Where do you see yourself in five years?",
		SkillsEvaluated: []string{"Goal setting", "Ambition", "Realism"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 90, KeyPoints: []string{
			"Career direction", "Skills to develop", "Link to the company's growth",
		}},
	},
	{
		ID: "hr-005", Type: model.QuestionTypeHR, Difficulty: model.DifficultyEasy, Category: "Teamwork",
		Text:            "Do you prefer working alone or in a team? Why?",
		SkillsEvaluated: []string{"Collaboration", "Adaptability", "Self-awareness"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 80, KeyPoints: []string{
			"Balanced preference", "Example of teamwork", "Example of independent work",
		}},
	},
	{
		ID: "hr-006", Type: model.QuestionTypeHR, Difficulty: model.DifficultyMedium, Category: "Self-assessment",
		Text:            "What is your biggest weakness and how are you working on it?",
		SkillsEvaluated: []string{"Honesty", "Self-improvement", "Reflection"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 110, KeyPoints: []string{
			"Genuine weakness", "Impact of the weakness", "Concrete improvement steps", "Progress so far",
		}},
	},
	{
		ID: "hr-007", Type: model.QuestionTypeHR, Difficulty: model.DifficultyMedium, Category: "Behavioral",
		Text:            "Describe a time you disagreed with a teammate. How did you resolve it?",
		SkillsEvaluated: []string{"Conflict resolution", "Communication", "Empathy"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 150, KeyPoints: []string{
			"Situation and stakes", "Your approach to the conversation", "Compromise or resolution", "What you learned",
		}},
	},
	{
		ID: "hr-008", Type: model.QuestionTypeHR, Difficulty: model.DifficultyMedium, Category: "Behavioral",
		Text:            "Tell me about a time you had to meet a tight deadline.",
		SkillsEvaluated: []string{"Time management", "Prioritisation", "Composure"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 140, KeyPoints: []string{
			"Context and deadline", "How you prioritised", "Outcome", "Reflection",
		}},
	},
	{
		ID: "hr-009", Type: model.QuestionTypeHR, Difficulty: model.DifficultyMedium, Category: "Situational",
		Text:            "How would you handle a customer who is angry about a delayed order?",
		SkillsEvaluated: []string{"Customer empathy", "Problem solving", "Professionalism"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 120, KeyPoints: []string{
			"Acknowledge the frustration", "Investigate the cause", "Offer a concrete remedy", "Follow up",
		}},
	},
	{
		ID: "hr-010", Type: model.QuestionTypeHR, Difficulty: model.DifficultyMedium, Category: "Teamwork",
		Text:            "Describe your ideal manager.",
		SkillsEvaluated: []string{"Self-awareness", "Diplomacy", "Working style"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 90, KeyPoints: []string{
			"Management style you respond to", "How you adapt to other styles", "Positive framing",
		}},
	},
	{
		ID: "hr-011", Type: model.QuestionTypeHR, Difficulty: model.DifficultyHard, Category: "Behavioral",
		Text:            "Tell me about a failure and what it taught you.",
		SkillsEvaluated: []string{"Accountability", "Resilience", "Learning"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 160, KeyPoints: []string{
			"Clear ownership of the failure", "Root cause", "Corrective action", "Lasting lesson applied later",
		}},
	},
	{
		ID: "hr-012", Type: model.QuestionTypeHR, Difficulty: model.DifficultyHard, Category: "Leadership",
		Text:            "Describe a situation where you led a team through change.",
		SkillsEvaluated: []string{"Leadership", "Change management", "Communication"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 170, KeyPoints: []string{
			"Nature of the change", "How you built buy-in", "Handling resistance", "Measured result",
		}},
	},
	{
		ID: "hr-013", Type: model.QuestionTypeHR, Difficulty: model.DifficultyHard, Category: "Situational",
		Text:            "What would you do if you discovered a colleague was falsifying reports?",
		SkillsEvaluated: []string{"Integrity", "Judgement", "Escalation"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 130, KeyPoints: []string{
			"Verify facts first", "Follow company policy", "Escalate through proper channels", "Protect confidentiality",
		}},
	},
	{
		ID: "hr-014", Type: model.QuestionTypeHR, Difficulty: model.DifficultyHard, Category: "Motivation",
		Text:            "Why should we hire you over other candidates with similar experience?",
		SkillsEvaluated: []string{"Persuasion", "Differentiation", "Confidence"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 120, KeyPoints: []string{
			"Unique combination of skills", "Evidence of impact", "Fit with team and culture",
		}},
	},
	{
		ID: "hr-015", Type: model.QuestionTypeHR, Difficulty: model.DifficultyHard, Category: "Leadership",
		Text:            "Tell me about a time you had to make a decision with incomplete information.",
		SkillsEvaluated: []string{"Decision making", "Risk assessment", "Ownership"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 150, KeyPoints: []string{
			"What was unknown", "How you weighed the risks", "The decision and its outcome", "What you would change",
		}},
	},
	{
		ID: "hr-016", Type: model.QuestionTypeHR, Difficulty: model.DifficultyEasy, Category: "Introduction",
		Text:            "Walk me through your resume.",
		SkillsEvaluated: []string{"Chronology", "Clarity", "Relevance"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 120, KeyPoints: []string{
			"Education or starting point", "Key roles and achievements", "Reasons for transitions", "Link to this role",
		}},
	},
	{
		ID: "hr-017", Type: model.QuestionTypeHR, Difficulty: model.DifficultyEasy, Category: "Motivation",
		Text:            "What do you know about this role?",
		SkillsEvaluated: []string{"Research", "Understanding", "Alignment"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 90, KeyPoints: []string{
			"Core responsibilities", "Required skills", "Why it appeals to you",
		}},
	},
	{
		ID: "hr-018", Type: model.QuestionTypeHR, Difficulty: model.DifficultyEasy, Category: "Self-assessment",
		Text:            "How would your friends describe you?",
		SkillsEvaluated: []string{"Self-awareness", "Authenticity", "Brevity"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 70, KeyPoints: []string{
			"Two or three traits", "Short example for one trait", "Relevance to work",
		}},
	},
	{
		ID: "hr-019", Type: model.QuestionTypeHR, Difficulty: model.DifficultyEasy, Category: "Motivation",
		Text:            "What motivates you at work?",
		SkillsEvaluated: []string{"Motivation", "Self-awareness", "Alignment"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 80, KeyPoints: []string{
			"Specific motivator", "Example of it in action", "Connection to this role",
		}},
	},
	{
		ID: "hr-020", Type: model.QuestionTypeHR, Difficulty: model.DifficultyEasy, Category: "Work style",
		Text:            "How do you organise your day?",
		SkillsEvaluated: []string{"Planning", "Time management", "Clarity"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 80, KeyPoints: []string{
			"Prioritisation method", "Tools you use", "Handling interruptions",
		}},
	},
	{
		ID: "hr-021", Type: model.QuestionTypeHR, Difficulty: model.DifficultyEasy, Category: "Learning",
		Text:            "How do you keep your skills up to date?",
		SkillsEvaluated: []string{"Curiosity", "Initiative", "Evidence"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 80, KeyPoints: []string{
			"Learning sources", "Recent example", "Applying what you learned",
		}},
	},
	{
		ID: "hr-022", Type: model.QuestionTypeHR, Difficulty: model.DifficultyEasy, Category: "Introduction",
		Text:            "What are your hobbies outside work?",
		SkillsEvaluated: []string{"Personality", "Communication", "Balance"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 60, KeyPoints: []string{
			"One or two hobbies", "What you gain from them", "Transferable skill",
		}},
	},
	{
		ID: "hr-023", Type: model.QuestionTypeHR, Difficulty: model.DifficultyEasy, Category: "Work style",
		Text:            "How do you handle feedback from a supervisor?",
		SkillsEvaluated: []string{"Receptiveness", "Maturity", "Growth mindset"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 80, KeyPoints: []string{
			"Listen without defending", "Ask clarifying questions", "Act on the feedback",
		}},
	},
	{
		ID: "hr-024", Type: model.QuestionTypeHR, Difficulty: model.DifficultyEasy, Category: "Motivation",
		Text:            "Why are you leaving your current role?",
		SkillsEvaluated: []string{"Tact", "Honesty", "Forward focus"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 80, KeyPoints: []string{
			"Positive framing", "Growth you are seeking", "No criticism of employer",
		}},
	},
	{
		ID: "hr-025", Type: model.QuestionTypeHR, Difficulty: model.DifficultyEasy, Category: "Teamwork",
		Text:            "What makes a good team member?",
		SkillsEvaluated: []string{"Collaboration", "Reflection", "Communication"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 80, KeyPoints: []string{
			"Reliability", "Open communication", "Supporting others", "Personal example",
		}},
	},
	{
		ID: "hr-026", Type: model.QuestionTypeHR, Difficulty: model.DifficultyEasy, Category: "Self-assessment",
		Text:            "What achievement are you most proud of?",
		SkillsEvaluated: []string{"Storytelling", "Evidence", "Confidence"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 110, KeyPoints: []string{
			"Context of the achievement", "Your specific contribution", "Measurable result", "Why it matters to you",
		}},
	},
	{
		ID: "hr-027", Type: model.QuestionTypeHR, Difficulty: model.DifficultyMedium, Category: "Behavioral",
		Text:            "Describe a time you went beyond what was asked of you.",
		SkillsEvaluated: []string{"Initiative", "Ownership", "Storytelling"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 130, KeyPoints: []string{
			"Situation", "Extra effort taken", "Outcome", "Recognition or learning",
		}},
	},
	{
		ID: "hr-028", Type: model.QuestionTypeHR, Difficulty: model.DifficultyMedium, Category: "Behavioral",
		Text:            "Tell me about a time you had to learn something quickly.",
		SkillsEvaluated: []string{"Adaptability", "Learning agility", "Structure"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 130, KeyPoints: []string{
			"What had to be learned", "Approach to learning", "Time frame", "Result",
		}},
	},
	{
		ID: "hr-029", Type: model.QuestionTypeHR, Difficulty: model.DifficultyMedium, Category: "Situational",
		Text:            "How would you prioritise three urgent tasks due on the same day?",
		SkillsEvaluated: []string{"Prioritisation", "Judgement", "Communication"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 120, KeyPoints: []string{
			"Assess impact and urgency", "Communicate with stakeholders", "Delegate or renegotiate", "Deliver in order",
		}},
	},
	{
		ID: "hr-030", Type: model.QuestionTypeHR, Difficulty: model.DifficultyMedium, Category: "Teamwork",
		Text:            "Describe a time you helped a struggling colleague.",
		SkillsEvaluated: []string{"Empathy", "Collaboration", "Tact"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 120, KeyPoints: []string{
			"Noticing the problem", "How you offered help", "Outcome for the colleague", "Effect on the team",
		}},
	},
	{
		ID: "hr-031", Type: model.QuestionTypeHR, Difficulty: model.DifficultyMedium, Category: "Behavioral",
		Text:            "Tell me about a mistake you made at work and how you handled it.",
		SkillsEvaluated: []string{"Accountability", "Honesty", "Problem solving"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 130, KeyPoints: []string{
			"The mistake", "Owning it promptly", "Corrective action", "Prevention afterwards",
		}},
	},
	{
		ID: "hr-032", Type: model.QuestionTypeHR, Difficulty: model.DifficultyMedium, Category: "Situational",
		Text:            "What would you do if you were given a task with unclear instructions?",
		SkillsEvaluated: []string{"Initiative", "Communication", "Judgement"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 100, KeyPoints: []string{
			"Clarify with the requester", "State your assumptions", "Check in early", "Deliver and confirm",
		}},
	},
	{
		ID: "hr-033", Type: model.QuestionTypeHR, Difficulty: model.DifficultyMedium, Category: "Communication",
		Text:            "Describe a time you explained a complex idea to a non-expert.",
		SkillsEvaluated: []string{"Communication", "Empathy", "Simplification"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 130, KeyPoints: []string{
			"Audience and context", "Technique used", "Checking understanding", "Result",
		}},
	},
	{
		ID: "hr-034", Type: model.QuestionTypeHR, Difficulty: model.DifficultyMedium, Category: "Behavioral",
		Text:            "Tell me about a time you received criticism you disagreed with.",
		SkillsEvaluated: []string{"Maturity", "Reflection", "Communication"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 130, KeyPoints: []string{
			"The criticism", "Your initial reaction", "How you responded", "What changed",
		}},
	},
	{
		ID: "hr-035", Type: model.QuestionTypeHR, Difficulty: model.DifficultyMedium, Category: "Motivation",
		Text:            "What would make you stay with a company for many years?",
		SkillsEvaluated: []string{"Self-awareness", "Values", "Alignment"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 90, KeyPoints: []string{
			"Growth opportunities", "Culture and values", "Meaningful work",
		}},
	},
	{
		ID: "hr-036", Type: model.QuestionTypeHR, Difficulty: model.DifficultyMedium, Category: "Situational",
		Text:            "How would you handle a teammate who consistently misses deadlines?",
		SkillsEvaluated: []string{"Conflict resolution", "Leadership", "Tact"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 120, KeyPoints: []string{
			"Private conversation first", "Understand root cause", "Agree on a plan", "Escalate if needed",
		}},
	},
	{
		ID: "hr-037", Type: model.QuestionTypeHR, Difficulty: model.DifficultyMedium, Category: "Work style",
		Text:            "Describe how you handle stress and pressure.",
		SkillsEvaluated: []string{"Resilience", "Self-awareness", "Evidence"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 110, KeyPoints: []string{
			"Recognising stress", "Coping techniques", "Example under pressure", "Outcome",
		}},
	},
	{
		ID: "hr-038", Type: model.QuestionTypeHR, Difficulty: model.DifficultyHard, Category: "Leadership",
		Text:            "Tell me about a time you influenced someone without authority.",
		SkillsEvaluated: []string{"Influence", "Persuasion", "Stakeholder management"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 150, KeyPoints: []string{
			"Who you needed to persuade", "Their concerns", "Evidence or approach used", "Outcome",
		}},
	},
	{
		ID: "hr-039", Type: model.QuestionTypeHR, Difficulty: model.DifficultyHard, Category: "Situational",
		Text:            "Your manager asks you to do something you believe is a bad idea. What do you do?",
		SkillsEvaluated: []string{"Judgement", "Courage", "Diplomacy"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 140, KeyPoints: []string{
			"Understand the reasoning", "Raise concerns with evidence", "Propose an alternative", "Commit once decided",
		}},
	},
	{
		ID: "hr-040", Type: model.QuestionTypeHR, Difficulty: model.DifficultyHard, Category: "Behavioral",
		Text:            "Describe the most difficult professional relationship you have had.",
		SkillsEvaluated: []string{"Emotional intelligence", "Conflict resolution", "Reflection"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 150, KeyPoints: []string{
			"Nature of the difficulty", "Steps you took", "Change in the relationship", "Lesson learned",
		}},
	},
	{
		ID: "hr-041", Type: model.QuestionTypeHR, Difficulty: model.DifficultyHard, Category: "Leadership",
		Text:            "How would you motivate a team after a major project was cancelled?",
		SkillsEvaluated: []string{"Leadership", "Empathy", "Vision"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 140, KeyPoints: []string{
			"Acknowledge the disappointment", "Explain the reasons", "Recognise the work done", "Set a new goal",
		}},
	},
	{
		ID: "hr-042", Type: model.QuestionTypeHR, Difficulty: model.DifficultyHard, Category: "Situational",
		Text:            "How would you handle two senior stakeholders giving you conflicting priorities?",
		SkillsEvaluated: []string{"Stakeholder management", "Negotiation", "Judgement"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 140, KeyPoints: []string{
			"Clarify each priority", "Surface the conflict openly", "Seek a joint decision", "Document the agreement",
		}},
	},
	{
		ID: "hr-043", Type: model.QuestionTypeHR, Difficulty: model.DifficultyHard, Category: "Behavioral",
		Text:            "Tell me about a time you took a calculated risk.",
		SkillsEvaluated: []string{"Risk assessment", "Ownership", "Storytelling"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 140, KeyPoints: []string{
			"The decision and alternatives", "How you assessed the risk", "Result", "What you would do differently",
		}},
	},
	{
		ID: "hr-044", Type: model.QuestionTypeHR, Difficulty: model.DifficultyHard, Category: "Ethics",
		Text:            "What would you do if a client asked you to bend a company policy?",
		SkillsEvaluated: []string{"Integrity", "Diplomacy", "Customer focus"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 130, KeyPoints: []string{
			"Decline respectfully", "Explain the policy", "Offer an acceptable alternative", "Escalate if pressured",
		}},
	},
	{
		ID: "hr-045", Type: model.QuestionTypeHR, Difficulty: model.DifficultyHard, Category: "Leadership",
		Text:            "Describe how you would give critical feedback to a high performer.",
		SkillsEvaluated: []string{"Leadership", "Tact", "Coaching"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 140, KeyPoints: []string{
			"Private and timely setting", "Specific behaviour and impact", "Acknowledge strengths", "Agree on next steps",
		}},
	},
	{
		ID: "hr-046", Type: model.QuestionTypeHR, Difficulty: model.DifficultyHard, Category: "Motivation",
		Text:            "What is the biggest professional risk you have not taken, and why?",
		SkillsEvaluated: []string{"Self-awareness", "Honesty", "Reflection"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 130, KeyPoints: []string{
			"The opportunity", "Reasons for holding back", "What you learned", "How you would decide now",
		}},
	},
	{
		ID: "hr-047", Type: model.QuestionTypeHR, Difficulty: model.DifficultyHard, Category: "Situational",
		Text:            "You are halfway through a project and realise the approach is wrong. What do you do?",
		SkillsEvaluated: []string{"Ownership", "Problem solving", "Communication"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 140, KeyPoints: []string{
			"Confirm the problem", "Assess cost of changing course", "Inform stakeholders early", "Propose a recovery plan",
		}},
	},
	{
		ID: "hr-048", Type: model.QuestionTypeHR, Difficulty: model.DifficultyHard, Category: "Behavioral",
		Text:            "Tell me about a time you had to deliver bad news to a customer or stakeholder.",
		SkillsEvaluated: []string{"Communication", "Empathy", "Accountability"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 140, KeyPoints: []string{
			"Preparing the message", "Delivering it directly", "Offering options", "Follow-up",
		}},
	},
}
