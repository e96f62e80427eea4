package models

// JobListing is the structured result of job-post summarization. The JSON
// keys match the document the model is instructed to emit; all eight keys are
// always present in normalized output, empty or null when the posting lacks
// the section.
type JobListing struct {
	PositionName        string   `json:"Position Name"`
	PositionOverview    string   `json:"Position Overview"`
	AboutTheRole        string   `json:"About the Role"`
	KeyResponsibilities []string `json:"Key Responsibilities"`
	RequiredSkills      []string `json:"Required Skills & Experience"`
	HighlyValued        string   `json:"Highly Valued Experience"`
	SoftSkills          []string `json:"Soft Skills"`
	Benefits            string   `json:"Benefits"`
}

// ListingKeys lists the required top-level keys of a summarized job listing,
// in document order.
var ListingKeys = []string{
	"Position Name",
	"Position Overview",
	"About the Role",
	"Key Responsibilities",
	"Required Skills & Experience",
	"Highly Valued Experience",
	"Soft Skills",
	"Benefits",
}

// ListingListKeys identifies which listing keys hold ordered string lists;
// the remaining keys hold plain text.
var ListingListKeys = map[string]bool{
	"Key Responsibilities":         true,
	"Required Skills & Experience": true,
	"Soft Skills":                  true,
}
