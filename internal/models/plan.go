package models

import "fetcharr/internal/domain/consts"

// PostProcessStep is one transcoding operation applied after retrieval.
// Quality is string-typed because the transcoder takes a textual quality
// parameter (e.g. "192" for 192kbps audio).
type PostProcessStep struct {
	Kind    string `json:"kind"`
	Codec   string `json:"codec"`
	Quality string `json:"quality"`
}

// FetchPlan is the fully resolved, engine-facing instruction for a single
// item. It is created by the resolver, handed to the downloader, and
// discarded when the job finishes.
type FetchPlan struct {
	URL            string
	Kind           MediaKind
	Format         string // quality selector passed to the engine
	MergeFormat    string // container for video jobs, empty for audio
	PostProcess    []PostProcessStep
	OutputTemplate string // output dir joined with the filename template

	Proxy          string
	FFmpegLocation string
	CookieFile     string

	ConcurrentFragments int
	RateLimit           string   // verbatim, unit owned by the engine
	SponsorCategories   []string // nil unless sponsor removal is enabled
	DateAfter           string   // engine date form (YYYYMMDD), empty if unset
}

// ExtractAudioSteps counts the extract-audio post-processing steps in the plan.
func (p *FetchPlan) ExtractAudioSteps() int {
	n := 0
	for _, step := range p.PostProcess {
		if step.Kind == consts.PPExtractAudio {
			n++
		}
	}
	return n
}
