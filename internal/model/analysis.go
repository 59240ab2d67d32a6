package model

import "fmt"

// CriterionScore is one rubric sub-score
type CriterionScore struct {
	Score   int    `json:"score" bson:"score"`     // 0-100
	Comment string `json:"comment" bson:"comment"` // short justification
}

// DetailedFeedback is the closed set of rubric criteria
type DetailedFeedback struct {
	Clarity         CriterionScore `json:"clarity" bson:"clarity"`
	Professionalism CriterionScore `json:"professionalism" bson:"professionalism"`
	Structure       CriterionScore `json:"structure" bson:"structure"`
	Tone            CriterionScore `json:"tone" bson:"tone"`
	Completeness    CriterionScore `json:"completeness" bson:"completeness"`
}

// Criteria returns the five criteria in display order
func (d DetailedFeedback) Criteria() []NamedCriterion {
	return []NamedCriterion{
		{Name: "clarity", CriterionScore: d.Clarity},
		{Name: "professionalism", CriterionScore: d.Professionalism},
		{Name: "structure", CriterionScore: d.Structure},
		{Name: "tone", CriterionScore: d.Tone},
		{Name: "completeness", CriterionScore: d.Completeness},
	}
}

// NamedCriterion pairs a criterion name with its score
type NamedCriterion struct {
	Name string `json:"name"`
	CriterionScore
}

// AnalysisResult is the structured verdict for one submission
type AnalysisResult struct {
	OverallScore          int              `json:"overallScore"`
	Strengths             []string         `json:"strengths"`
	AreasForImprovement   []string         `json:"areasForImprovement"`
	GrammarAndStyle       []string         `json:"grammarAndStyle"`
	Recommendations       []string         `json:"recommendations"`
	DetailedFeedback      DetailedFeedback `json:"detailedFeedback"`
	KeyPointsCovered      []string         `json:"keyPointsCovered"`
	KeyPointsMissed       []string         `json:"keyPointsMissed"`
	SampleImprovement     string           `json:"sampleImprovement,omitempty"`
	KeyPointsReconciled   bool             `json:"keyPointsReconciled"`             // covered/missed were adjusted to partition the rubric
	UnrecognizedKeyPoints []string         `json:"unrecognizedKeyPoints,omitempty"` // echoed by the model but absent from the rubric
	PerformanceLevel      PerformanceLevel `json:"performanceLevel"`
}

// Validate checks that every score is within 0-100
func (r *AnalysisResult) Validate() error {
	if r.OverallScore < 0 || r.OverallScore > 100 {
		return fmt.Errorf("overallScore out of range: %d", r.OverallScore)
	}
	for _, c := range r.DetailedFeedback.Criteria() {
		if c.Score < 0 || c.Score > 100 {
			return fmt.Errorf("%s score out of range: %d", c.Name, c.Score)
		}
	}
	return nil
}

// PerformanceLevel is the qualitative tier derived from a score
type PerformanceLevel struct {
	Label   string `json:"label" bson:"label"`
	Color   string `json:"color" bson:"color"`
	Message string `json:"message" bson:"message"`
}
