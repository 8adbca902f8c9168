package contextmgr

import "github.com/tiktoken-go/tokenizer"

// TokenEstimator estimates the token cost of a piece of text. The default
// is the length heuristic; callers who need tokenizer-accurate counts can
// supply a BPE-backed estimator via WithEstimator.
type TokenEstimator interface {
	Estimate(text string) int
}

// HeuristicEstimator estimates ceil(len / CharsPerToken). Cheap, total, and
// monotonic in text length.
type HeuristicEstimator struct {
	// CharsPerToken is the assumed character-to-token ratio.
	CharsPerToken int
}

// Estimate returns the length-based token estimate for text.
func (e HeuristicEstimator) Estimate(text string) int {
	cpt := e.CharsPerToken
	if cpt <= 0 {
		cpt = DefaultCharsPerToken
	}
	return (len(text) + cpt - 1) / cpt
}

// TiktokenEstimator counts tokens with a BPE codec. Encoding failures fall
// back to the length heuristic so estimation stays total.
type TiktokenEstimator struct {
	codec    tokenizer.Codec
	fallback HeuristicEstimator
}

// NewTiktokenEstimator creates an estimator backed by the cl100k encoding
// (GPT-4 family; a close proxy for most open-weight chat models).
func NewTiktokenEstimator() (*TiktokenEstimator, error) {
	codec, err := tokenizer.Get(tokenizer.Cl100kBase)
	if err != nil {
		return nil, err
	}
	return &TiktokenEstimator{
		codec:    codec,
		fallback: HeuristicEstimator{CharsPerToken: DefaultCharsPerToken},
	}, nil
}

// Estimate returns the BPE token count for text, falling back to the length
// heuristic if encoding fails.
func (e *TiktokenEstimator) Estimate(text string) int {
	if text == "" {
		return 0
	}
	ids, _, err := e.codec.Encode(text)
	if err != nil {
		return e.fallback.Estimate(text)
	}
	return len(ids)
}
