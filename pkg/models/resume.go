package models

// ResumeAssessment is the evaluation block the analyzer persona appends to a
// parsed resume.
type ResumeAssessment struct {
	Strengths           []string `json:"Strengths"`
	AreasForImprovement []string `json:"Areas for Improvement"`
	ATSScore            int      `json:"ATS Score"`
	ATSSuggestions      []string `json:"ATS Suggestions"`
}

// ResumeKeys lists the required top-level keys of an analyzed resume: nine
// extracted sections plus the assessment block. Normalized analyzer output
// always contains every key, null/empty when the resume lacks the section.
var ResumeKeys = []string{
	"Contact Information",
	"Professional Summary",
	"Skills",
	"Work Experience",
	"Education",
	"Certifications",
	"Projects",
	"Areas of Expertise",
	"Career Highlights",
	"Assessment",
}

// AssessmentKeys lists the required keys of the embedded assessment block.
var AssessmentKeys = []string{
	"Strengths",
	"Areas for Improvement",
	"ATS Score",
	"ATS Suggestions",
}
