package model

import "time"

// AnswerFeedback is the subset of an AnalysisResult kept with a session
type AnswerFeedback struct {
	Strengths        []string         `json:"strengths" bson:"strengths"`
	Improvements     []string         `json:"improvements" bson:"improvements"`
	Recommendations  []string         `json:"recommendations" bson:"recommendations"`
	KeyPointsCovered []string         `json:"keyPointsCovered" bson:"keyPointsCovered"`
	KeyPointsMissed  []string         `json:"keyPointsMissed" bson:"keyPointsMissed"`
	Level            PerformanceLevel `json:"performanceLevel" bson:"performanceLevel"`
}

// AnswerRecord bundles a question, the raw answer and its feedback
type AnswerRecord struct {
	QuestionID   string         `json:"questionId" bson:"questionId"`
	QuestionText string         `json:"questionText" bson:"questionText"`
	Transcript   string         `json:"transcript" bson:"transcript"`
	Score        int            `json:"score" bson:"score"`
	Feedback     AnswerFeedback `json:"feedback" bson:"feedback"`
	DurationSec  int            `json:"durationSec" bson:"durationSec"`
	AnsweredAt   time.Time      `json:"answeredAt" bson:"answeredAt"`
}

// NewAnswerRecord maps an analysis result onto the persisted answer shape
func NewAnswerRecord(q QuestionLike, questionID, transcript string, durationSec int, res *AnalysisResult) AnswerRecord {
	return AnswerRecord{
		QuestionID:   questionID,
		QuestionText: q.Prompt(),
		Transcript:   transcript,
		Score:        res.OverallScore,
		Feedback: AnswerFeedback{
			Strengths:        res.Strengths,
			Improvements:     res.AreasForImprovement,
			Recommendations:  res.Recommendations,
			KeyPointsCovered: res.KeyPointsCovered,
			KeyPointsMissed:  res.KeyPointsMissed,
			Level:            res.PerformanceLevel,
		},
		DurationSec: durationSec,
		AnsweredAt:  time.Now(),
	}
}
