package strategy

// Placeholder base names used when an information source cannot answer.
const (
	AuthorNotSupported = "AuthorNotSupported"
	AuthorAbsent       = "UnknownAuthor"
	AuthorFailed       = "AuthorNotAvailable"

	SummaryNotSupported = "SummaryNotSupported"
	SummaryEmptyFile    = "EmptyFile"
	SummaryAIError      = "AI_Error"
	SummaryUnavailable  = "AI_Not_Available"
)
