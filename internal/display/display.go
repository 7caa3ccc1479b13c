package display

// Utterance is one finalized transcript segment paired with its translation,
// or with a translation-unavailable marker when retries were exhausted.
type Utterance struct {
	Index             uint64
	SourceText        string
	TranslatedText    string
	TranslationFailed bool
}

// Display is the output sink for the realtime pipeline. ShowInterim
// overwrites the previous partial text in place; ShowUtterance emits one
// permanent line pair per utterance, in utterance order.
type Display interface {
	ShowInterim(text string)
	ShowUtterance(u Utterance)
	ShowStatus(msg string)
}
