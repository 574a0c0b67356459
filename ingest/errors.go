package ingest

import "errors"

var (
	// ErrRepositoryRequired is returned when a document repository is not provided.
	ErrRepositoryRequired = errors.New("document repository required")

	// ErrAIProviderRequired is returned when an AI provider is not provided.
	ErrAIProviderRequired = errors.New("AI provider required")

	// ErrBankMalformed is returned when the bank file is not a valid JSON array.
	ErrBankMalformed = errors.New("bank file is not valid JSON")

	// ErrBankEmpty is returned when the bank file contains no documents.
	ErrBankEmpty = errors.New("bank file contains no documents")

	// ErrNoDocuments is returned when BuildIndex is called without documents.
	ErrNoDocuments = errors.New("no documents to index")
)
