package corpus

import "practicecoach/internal/model"

var emailQuestions = []model.EmailQuestion{
	{
		ID: "email-001", Type: model.EmailQuestionType, Difficulty: model.DifficultyEasy, Category: "Request",
		Text:            "Write an email to your manager asking for a day off next Friday.",
		Scenario:        "You have a family event and your current tasks are on schedule.",
		SkillsEvaluated: []string{"Politeness", "Clarity", "Conciseness"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 80, KeyPoints: []string{
			"Clear subject line", "Specific date requested", "Reason for the request", "Plan for covering work",
		}},
	},
	{
		ID: "email-002", Type: model.EmailQuestionType, Difficulty: model.DifficultyEasy, Category: "Follow-up",
		Text:            "Write a thank-you email after a job interview.",
		Scenario:        "You interviewed yesterday for a junior analyst role.",
		SkillsEvaluated: []string{"Gratitude", "Professional tone", "Brevity"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 90, KeyPoints: []string{
			"Thank the interviewer", "Reference a topic from the interview", "Reaffirm interest", "Professional sign-off",
		}},
	},
	{
		ID: "email-003", Type: model.EmailQuestionType, Difficulty: model.DifficultyMedium, Category: "Complaint",
		Text:            "Write an email to a supplier about a delivery that arrived damaged.",
		Scenario:        "Half of the 200 units ordered last week were broken on arrival.",
		SkillsEvaluated: []string{"Assertiveness", "Factual reporting", "Professional tone"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 130, KeyPoints: []string{
			"Order reference", "Description of the damage", "Requested resolution", "Deadline for response",
		}},
	},
	{
		ID: "email-004", Type: model.EmailQuestionType, Difficulty: model.DifficultyMedium, Category: "Update",
		Text:            "Write a project status update to stakeholders.",
		Scenario:        "The project is one week behind because a vendor API changed.",
		SkillsEvaluated: []string{"Transparency", "Structure", "Stakeholder management"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 150, KeyPoints: []string{
			"Current status summary", "Cause of the delay", "Mitigation plan", "Revised timeline",
		}},
	},
	{
		ID: "email-005", Type: model.EmailQuestionType, Difficulty: model.DifficultyHard, Category: "Negotiation",
		Text:            "Write an email declining a client's request for a 30% discount while keeping the relationship.",
		Scenario:        "The client is a long-standing account renewing a yearly contract.",
		SkillsEvaluated: []string{"Diplomacy", "Persuasion", "Tone control"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 170, KeyPoints: []string{
			"Appreciation for the partnership", "Clear but polite refusal", "Justification of value", "Alternative offer",
		}},
	},
	{
		ID: "email-006", Type: model.EmailQuestionType, Difficulty: model.DifficultyHard, Category: "Incident",
		Text:            "Write an email informing customers about a service outage.",
		Scenario:        "Payments were unavailable for two hours this morning; no data was lost.",
		SkillsEvaluated: []string{"Crisis communication", "Empathy", "Clarity"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 160, KeyPoints: []string{
			"Apology", "What happened and when", "Impact on customers", "Steps taken to prevent recurrence", "Contact for help",
		}},
	},
	{
		ID: "email-007", Type: model.EmailQuestionType, Difficulty: model.DifficultyEasy, Category: "Request",
		Text:            "Write an email to IT support reporting that your laptop will not connect to the office Wi-Fi.",
		Scenario:        "It started this morning after a system update.",
		SkillsEvaluated: []string{"Clarity", "Conciseness", "Factual reporting"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 80, KeyPoints: []string{
			"Clear subject line", "Description of the problem", "Steps already tried", "Urgency and availability",
		}},
	},
	{
		ID: "email-008", Type: model.EmailQuestionType, Difficulty: model.DifficultyEasy, Category: "Introduction",
		Text:            "Write an email introducing yourself to your new team.",
		Scenario:        "You are joining the marketing team on Monday.",
		SkillsEvaluated: []string{"Friendliness", "Brevity", "Professional tone"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 90, KeyPoints: []string{
			"Greeting", "Your role and background", "Something personal but appropriate", "Invitation to connect",
		}},
	},
	{
		ID: "email-009", Type: model.EmailQuestionType, Difficulty: model.DifficultyEasy, Category: "Scheduling",
		Text:            "Write an email to schedule a meeting with a colleague to review a report.",
		Scenario:        "The report is due to your manager on Thursday.",
		SkillsEvaluated: []string{"Clarity", "Politeness", "Organisation"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 70, KeyPoints: []string{
			"Purpose of the meeting", "Proposed times", "Expected duration", "Preparation needed",
		}},
	},
	{
		ID: "email-010", Type: model.EmailQuestionType, Difficulty: model.DifficultyMedium, Category: "Request",
		Text:            "Write an email asking your manager for additional resources for a project.",
		Scenario:        "Your team of three has been asked to deliver a second product line.",
		SkillsEvaluated: []string{"Persuasion", "Structure", "Evidence"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 140, KeyPoints: []string{
			"Current workload", "Specific resources needed", "Impact on delivery", "Proposed next step",
		}},
	},
	{
		ID: "email-011", Type: model.EmailQuestionType, Difficulty: model.DifficultyMedium, Category: "Apology",
		Text:            "Write an email apologising to a client for a missed deadline.",
		Scenario:        "The report was promised last Friday and is now ready.",
		SkillsEvaluated: []string{"Accountability", "Empathy", "Professional tone"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 130, KeyPoints: []string{
			"Sincere apology", "Brief reason without excuses", "Delivery of the report", "Steps to avoid a repeat",
		}},
	},
	{
		ID: "email-012", Type: model.EmailQuestionType, Difficulty: model.DifficultyMedium, Category: "Follow-up",
		Text:            "Write a follow-up email to a prospect who has not replied to your proposal.",
		Scenario:        "You sent the proposal two weeks ago after a promising call.",
		SkillsEvaluated: []string{"Persistence", "Politeness", "Value framing"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 110, KeyPoints: []string{
			"Reference to the earlier proposal", "Restated value", "Clear call to action", "Easy way to decline",
		}},
	},
	{
		ID: "email-013", Type: model.EmailQuestionType, Difficulty: model.DifficultyHard, Category: "Escalation",
		Text:            "Write an email escalating a recurring production bug to another team's lead.",
		Scenario:        "The bug has affected customers three times this month despite two tickets.",
		SkillsEvaluated: []string{"Assertiveness", "Diplomacy", "Factual reporting"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 170, KeyPoints: []string{
			"Summary of the issue", "Business impact with evidence", "Previous attempts to resolve", "Specific request and timeline",
		}},
	},
	{
		ID: "email-014", Type: model.EmailQuestionType, Difficulty: model.DifficultyHard, Category: "Feedback",
		Text:            "Write an email giving constructive feedback to a vendor about poor service quality.",
		Scenario:        "The vendor has missed response-time targets for two months.",
		SkillsEvaluated: []string{"Tact", "Specificity", "Relationship management"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 160, KeyPoints: []string{
			"Acknowledge the relationship", "Specific examples of the problem", "Expected standard", "Consequences and next steps",
		}},
	},
	{
		ID: "email-015", Type: model.EmailQuestionType, Difficulty: model.DifficultyHard, Category: "Announcement",
		Text:            "Write an email to staff announcing a policy change that many will dislike.",
		Scenario:        "Remote work is being reduced from three days to two per week.",
		SkillsEvaluated: []string{"Change communication", "Empathy", "Clarity"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 180, KeyPoints: []string{
			"What is changing and when", "Reason for the change", "Acknowledge the impact", "Where to ask questions",
		}},
	},
}
