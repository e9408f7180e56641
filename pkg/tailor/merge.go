package tailor

// TailoredResult is the persisted output: {"profile": ..., <generated keys>}.
//
// Profile sits at depth 0 while the generated keys are promoted from depth 1,
// so encoding/json always lets the verified profile win a name clash.
type TailoredResult struct {
	Profile PersonalInfo `json:"profile"`
	GeneratedContent
}

// Merge combines verified identity with generated content.
func Merge(personal PersonalInfo, g GeneratedContent) TailoredResult {
	g.normalize()
	return TailoredResult{GeneratedContent: g, Profile: personal}
}
