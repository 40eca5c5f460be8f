package voyageai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/jbeshir/community-feed/internal/datasources"
)

var _ datasources.Embedder = (*Client)(nil)

const (
	defaultBaseURL  = "https://api.voyageai.com"
	outputDimension = 1024
)

const (
	InputTypeQuery    = "query"
	InputTypeDocument = "document"
)

// Client embeds text using the VoyageAI embeddings API. Profile text is
// embedded as a query and post text as a document, so both land in the
// same retrieval space.
type Client struct {
	apiKey     string
	model      string
	inputType  string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new VoyageAI client embedding text as inputType.
func NewClient(apiKey, model, inputType string) *Client {
	return &Client{
		apiKey:     apiKey,
		model:      model,
		inputType:  inputType,
		baseURL:    defaultBaseURL,
		httpClient: http.DefaultClient,
	}
}

// WithBaseURL returns a copy of the client sending requests to baseURL.
func (c *Client) WithBaseURL(baseURL string) *Client {
	clone := *c
	clone.baseURL = baseURL
	return &clone
}

// WithInputType returns a copy of the client embedding text as inputType.
func (c *Client) WithInputType(inputType string) *Client {
	clone := *c
	clone.inputType = inputType
	return &clone
}

type embeddingRequest struct {
	Input           []string `json:"input"`
	Model           string   `json:"model"`
	InputType       string   `json:"input_type"`
	OutputDimension int      `json:"output_dimension"`
}

type embeddingResponse struct {
	Data []struct {
		Embedding []float32 `json:"embedding"`
		Index     int       `json:"index"`
	} `json:"data"`
}

func (c *Client) EmbedText(ctx context.Context, text string) ([]float32, error) {
	if text == "" {
		return nil, nil
	}

	reqBody := embeddingRequest{
		Input:           []string{text},
		Model:           c.model,
		InputType:       c.inputType,
		OutputDimension: outputDimension,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshalling request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+"/v1/embeddings",
		bytes.NewReader(jsonBody),
	)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("VoyageAI API error (status %d): %s", resp.StatusCode, string(body))
	}

	var result embeddingResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	if len(result.Data) == 0 || len(result.Data[0].Embedding) == 0 {
		return nil, fmt.Errorf("empty embedding response")
	}

	return result.Data[0].Embedding, nil
}
