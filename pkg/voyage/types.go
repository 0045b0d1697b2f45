package voyage

// EmbedRequest is the request body for the embeddings endpoint.
type EmbedRequest struct {
	Input []string `json:"input"`
	Model string   `json:"model"`
}

// EmbedResponse is the response body from the embeddings endpoint.
type EmbedResponse struct {
	Data []EmbedData `json:"data"`
}

// EmbedData holds a single embedding vector.
type EmbedData struct {
	Embedding []float32 `json:"embedding"`
	Index     int       `json:"index"`
}
