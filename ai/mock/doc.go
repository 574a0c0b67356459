// Package mock provides test doubles for the ai package interfaces.
//
// The mocks generate deterministic embeddings from an FNV hash of the input
// text, so the same text always produces the same vector. Function fields
// allow tests to inject custom behavior, including failures.
//
//	embedder := mock.NewMockEmbedder()
//	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
//	    return nil, errors.New("service unavailable")
//	}
package mock
