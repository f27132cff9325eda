package dto

// FearGreedResponse mirrors the alternative.me /fng/ payload. Value arrives
// as a string.
type FearGreedResponse struct {
	Data []FearGreedEntry `json:"data"`
}

type FearGreedEntry struct {
	Value               string `json:"value"`
	ValueClassification string `json:"value_classification"`
}
